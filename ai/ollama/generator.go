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


package ollama

import (
	"context"
	"log/slog"
	"time"

	"github.com/poiesic/notesum/ai"
	"github.com/poiesic/notesum/ai/internal/chat"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
)

// Generator implements ai.TextGenerator using the Ollama chat API.
type Generator struct {
	client  llms.Model
	model   string
	timeout time.Duration
	options []llms.CallOption
	logger  *slog.Logger
}

func newGenerator(config *ai.Config) (*Generator, error) {
	cfg := *config
	cfg.Provider = ai.ProviderOllama
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client, err := ollama.New(
		ollama.WithServerURL(cfg.Host),
		ollama.WithModel(cfg.Model),
	)
	if err != nil {
		return nil, err
	}

	return &Generator{
		client:  client,
		model:   cfg.Model,
		timeout: cfg.Timeout,
		options: chat.CallOptions(&cfg),
		logger:  slog.Default().With("component", "ollama-generator"),
	}, nil
}

// NewGenerator creates a new Ollama text generator.
func NewGenerator(config *ai.Config) (ai.TextGenerator, error) {
	return newGenerator(config)
}

// Generate sends messages to the Ollama chat endpoint.
func (g *Generator) Generate(ctx context.Context, messages []ai.Message) (string, error) {
	start := time.Now()
	text, err := chat.Generate(ctx, g.client, messages, g.timeout, g.options...)
	if err != nil {
		g.logger.Error("failed to generate content", "model", g.model, "err", err)
		return "", err
	}
	g.logger.Debug("generated content", "model", g.model, "chars", len(text), "elapsed", time.Since(start))
	return text, nil
}

// Provider implements ai.AIProvider for Ollama.
type Provider struct {
	generator *Generator
}

// NewProvider creates a new AI provider backed by an Ollama server.
func NewProvider(config *ai.Config) (ai.AIProvider, error) {
	generator, err := newGenerator(config)
	if err != nil {
		return nil, err
	}
	return &Provider{generator: generator}, nil
}

// TextGenerator returns the text generation service.
func (p *Provider) TextGenerator() ai.TextGenerator {
	return p.generator
}

// Close is a no-op; the HTTP client needs no cleanup.
func (p *Provider) Close() error {
	return nil
}
