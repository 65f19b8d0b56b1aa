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


// Package ai provides abstractions for the text generation service used by
// the summarizer.
//
// The summarization core depends only on the TextGenerator interface: send a
// list of role-tagged messages, get generated text back. Concrete clients live
// in sub-packages so that splitting and orchestration can be tested against a
// fake with no live service.
//
// # Implementation Packages
//
//   - ai/ollama: native Ollama API client (default)
//   - ai/openai: OpenAI-compatible chat completions client
//   - ai/mock: test doubles for unit testing without external dependencies
//
// # Constructor Return Type Pattern
//
// Public constructors (ollama.NewProvider, openai.NewGenerator, etc.) return
// INTERFACE types to prevent accidental coupling to a concrete client. Test
// constructors (mock.NewMockGenerator) return CONCRETE types so tests can
// inject behavior and inspect recorded calls.
//
// # Usage Example
//
//	cfg := ai.NewConfig(ai.WithModel("qwen3:8b"))
//	provider, err := ollama.NewProvider(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
//
//	text, err := provider.TextGenerator().Generate(ctx, []ai.Message{
//	    ai.SystemMessage("You are a summarizer."),
//	    ai.UserMessage("Summarize: ..."),
//	})
package ai
