// Package ollama provides a text generator for the native Ollama API.
//
// It is the default provider: hosts are plain server addresses such as
// "http://localhost:11434" (a trailing /v1 is removed during normalization).
package ollama
