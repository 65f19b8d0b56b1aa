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

// Package notesum wires the summarization pipeline together: a generation
// provider, the map-reduce summarizer, the per-note processor and an
// optional run ledger.
package notesum

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/poiesic/notesum/ai"
	"github.com/poiesic/notesum/ai/ollama"
	"github.com/poiesic/notesum/ai/openai"
	"github.com/poiesic/notesum/batch"
	"github.com/poiesic/notesum/core"
	"github.com/poiesic/notesum/storage"
	"github.com/poiesic/notesum/storage/badger"
	"github.com/poiesic/notesum/summarize"
)

type Notesum struct {
	provider   ai.AIProvider
	ledger     storage.RunRepository
	summarizer *summarize.Summarizer
	store      batch.DocumentStore
	config     batch.Config
	model      string
	logger     *slog.Logger
}

// Option configures a Notesum.
type Option func(*options)

type options struct {
	aiConfig       *ai.Config
	provider       ai.AIProvider
	batchConfig    batch.Config
	store          batch.DocumentStore
	ledgerPath     string
	maxConcurrency int
}

// WithAIConfig sets the generation provider configuration.
func WithAIConfig(cfg *ai.Config) Option {
	return func(o *options) {
		o.aiConfig = cfg
	}
}

// WithProvider uses an existing provider instead of building one from the
// AI configuration. The provider is closed by Notesum.Close.
func WithProvider(p ai.AIProvider) Option {
	return func(o *options) {
		o.provider = p
	}
}

// WithBatchConfig sets how each note is processed.
func WithBatchConfig(cfg batch.Config) Option {
	return func(o *options) {
		o.batchConfig = cfg
	}
}

// WithDocumentStore replaces the filesystem document store.
func WithDocumentStore(store batch.DocumentStore) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithLedger records runs in the BadgerDB directory at path.
func WithLedger(path string) Option {
	return func(o *options) {
		o.ledgerPath = path
	}
}

// WithMaxConcurrency bounds concurrent map calls per note. Zero means one
// worker per chunk.
func WithMaxConcurrency(n int) Option {
	return func(o *options) {
		o.maxConcurrency = n
	}
}

// New builds a Notesum from options.
func New(opts ...Option) (*Notesum, error) {
	options := &options{
		aiConfig:    ai.DefaultConfig(),
		batchConfig: batch.DefaultConfig(),
		store:       batch.NewFileStore(""),
	}
	for _, opt := range opts {
		opt(options)
	}
	if options.maxConcurrency < 0 {
		return nil, errors.New("max concurrency cannot be negative")
	}
	if err := options.batchConfig.Validate(); err != nil {
		return nil, err
	}

	provider := options.provider
	if provider == nil {
		var err error
		provider, err = NewProvider(options.aiConfig)
		if err != nil {
			return nil, err
		}
	}

	summarizer, err := summarize.New(provider.TextGenerator(),
		summarize.WithMaxConcurrency(options.maxConcurrency))
	if err != nil {
		provider.Close()
		return nil, err
	}

	var ledger storage.RunRepository
	if options.ledgerPath != "" {
		ledger, err = badger.OpenRunRepository(options.ledgerPath)
		if err != nil {
			provider.Close()
			return nil, fmt.Errorf("failed to open run ledger: %w", err)
		}
	}

	return &Notesum{
		provider:   provider,
		ledger:     ledger,
		summarizer: summarizer,
		store:      options.store,
		config:     options.batchConfig,
		model:      options.aiConfig.Model,
		logger:     slog.Default(),
	}, nil
}

// NewProvider selects the client implementation for cfg.Provider.
func NewProvider(cfg *ai.Config) (ai.AIProvider, error) {
	if cfg == nil {
		return nil, errors.New("ai config is required")
	}
	cfg.Normalize()
	switch cfg.Provider {
	case ai.ProviderOllama:
		return ollama.NewProvider(cfg)
	case ai.ProviderOpenAI:
		return openai.NewProvider(cfg)
	default:
		return nil, fmt.Errorf("%w %q: must be one of ollama, openai", ai.ErrUnknownProvider, cfg.Provider)
	}
}

// Close releases the provider and the ledger.
func (n *Notesum) Close() error {
	// Close AI provider first
	if err := n.provider.Close(); err != nil {
		n.logger.Error("error closing AI provider", "err", err)
	}

	if n.ledger != nil {
		if err := n.ledger.Close(); err != nil {
			n.logger.Error("error closing run ledger", "err", err)
			return err
		}
	}
	return nil
}

// Ledger returns the run ledger, or nil when none was configured.
func (n *Notesum) Ledger() storage.RunRepository {
	return n.ledger
}

// Summarizer returns the configured map-reduce summarizer.
func (n *Notesum) Summarizer() *summarize.Summarizer {
	return n.summarizer
}

// NewProcessor creates a processor for single notes.
func (n *Notesum) NewProcessor() (*batch.Processor, error) {
	return batch.NewProcessor(n.store, n.summarizer, n.config, n.logger)
}

// NewRunner creates a batch runner that records runs in the ledger when one
// is configured. Extra options are applied last.
func (n *Notesum) NewRunner(opts ...batch.Option) (*batch.Runner, error) {
	processor, err := n.NewProcessor()
	if err != nil {
		return nil, err
	}
	base := []batch.Option{batch.WithModel(n.model), batch.WithLogger(n.logger)}
	if n.ledger != nil {
		base = append(base, batch.WithLedger(n.ledger))
	}
	return batch.NewRunner(processor, append(base, opts...)...)
}

// Summarize processes ids in order with a fresh runner.
func (n *Notesum) Summarize(ctx context.Context, ids []string) (*core.Run, error) {
	runner, err := n.NewRunner()
	if err != nil {
		return nil, err
	}
	return runner.Run(ctx, ids)
}
