// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package storage provides the storage abstraction layer for the run ledger.
//
// The ledger records every batch invocation together with the per-document
// results it produced, so a later "history" query can show which notes were
// summarized, skipped or failed without re-running anything.
//
// # Architecture
//
//   - Repository: transaction support and lifecycle shared by all repositories
//   - RunRepository: save, fetch, list and delete runs
//
// Values are encoded with mus-go primitives (see serialization.go). Runs are
// stored as a header plus one record per result, so the header stays small
// when listing.
//
// # Usage
//
//	repo, err := badger.OpenRunRepository("/path/to/db")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer repo.Close()
//
// Use in tests with in-memory storage:
//
//	repo, err := badger.NewMemoryRunRepository()
//
// # Thread Safety
//
// All repository implementations must be thread-safe and support
// concurrent access from multiple goroutines.
//
// # Context Support
//
// All repository methods accept context.Context. A canceled context is
// reported before any database work starts.
package storage
