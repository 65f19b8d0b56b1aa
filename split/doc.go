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


// Package split turns a note body into size-bounded chunks for summarization.
//
// Splitting happens in two passes. SplitByHeaders cuts the body on heading
// lines and records the enclosing headings of each section as a breadcrumb.
// SplitDocument then packs adjacent sections into chunks no larger than the
// configured maximum, handing any section that is too large on its own to
// SplitRecursive, which divides text on progressively weaker separators and
// finally hard-cuts text that contains none of them.
//
// All sizes are measured in Unicode code points.
//
// # Usage
//
//	cfg := split.DefaultConfig()
//	cfg.MaxChunkSize = 12000
//	chunks := split.SplitDocument(body, cfg)
//
// Splitting is a pure in-memory operation: it never mutates its input and
// always produces chunks in document order.
package split
