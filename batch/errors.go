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

package batch

import "errors"

var (
	// ErrDocumentNotFound indicates the document identifier does not resolve to a file.
	ErrDocumentNotFound = errors.New("file not found")

	// ErrNotMarkdown indicates the document does not have the markdown extension.
	ErrNotMarkdown = errors.New("not a markdown file")

	// ErrNoContent indicates the document body is empty after the metadata block.
	ErrNoContent = errors.New("no content to summarize")

	// ErrNoChunks indicates splitting produced nothing to summarize.
	ErrNoChunks = errors.New("no content after splitting")

	// ErrSummarizationFailed wraps any generation failure for a document.
	ErrSummarizationFailed = errors.New("summarization failed")
)
