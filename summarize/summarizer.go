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


package summarize

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/notesum/ai"
)

// Strategy names the path taken to build an abstract.
type Strategy string

const (
	// StrategyStuff summarizes a single chunk with one call.
	StrategyStuff Strategy = "stuff"
	// StrategyMapReduce summarizes each chunk concurrently, then combines them.
	StrategyMapReduce Strategy = "map_reduce"
)

// Summarizer turns an ordered chunk sequence into one abstract using a text
// generator. One chunk is summarized directly ("stuff"); several chunks are
// summarized concurrently ("map") and the per-chunk summaries are combined by
// one more call ("reduce").
type Summarizer struct {
	generator      ai.TextGenerator
	prompts        Prompts
	maxConcurrency int
	logger         *slog.Logger
}

// Option configures a Summarizer.
type Option func(*Summarizer) error

// WithMaxConcurrency bounds the number of map calls in flight.
// Zero or less means one worker per chunk, so every map call starts at once.
func WithMaxConcurrency(n int) Option {
	return func(s *Summarizer) error {
		s.maxConcurrency = n
		return nil
	}
}

// WithPrompts replaces the built-in prompt set.
func WithPrompts(p Prompts) Option {
	return func(s *Summarizer) error {
		s.prompts = p
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Summarizer) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger.With("component", "summarizer")
		return nil
	}
}

// New creates a Summarizer backed by generator.
func New(generator ai.TextGenerator, opts ...Option) (*Summarizer, error) {
	if generator == nil {
		return nil, ErrGeneratorRequired
	}

	s := &Summarizer{
		generator: generator,
		prompts:   DefaultPrompts(),
		logger:    slog.Default().With("component", "summarizer"),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Strategy reports which path Summarize takes for chunkCount chunks.
func (s *Summarizer) Strategy(chunkCount int) Strategy {
	if chunkCount == 1 {
		return StrategyStuff
	}
	return StrategyMapReduce
}

// Summarize produces the abstract for chunks, which must be in document order.
// Any failed generation call fails the whole summary; nothing is retried.
func (s *Summarizer) Summarize(ctx context.Context, chunks []string) (string, error) {
	if len(chunks) == 0 {
		return "", ErrNoChunks
	}

	if s.Strategy(len(chunks)) == StrategyStuff {
		prompt, err := render(s.prompts.Stuff, chunks[0])
		if err != nil {
			return "", fmt.Errorf("render stuff prompt: %w", err)
		}
		s.logger.Debug("summarizing single chunk", "chars", len(chunks[0]))
		abstract, err := s.call(ctx, prompt)
		if err != nil {
			return "", fmt.Errorf("stuff: %w", err)
		}
		return abstract, nil
	}

	summaries, err := s.MapChunks(ctx, chunks)
	if err != nil {
		return "", err
	}
	return s.Reduce(ctx, summaries)
}

// MapChunks summarizes every chunk concurrently. The result at index i is the
// summary of chunks[i] regardless of the order in which calls complete. The
// first failure cancels the calls still in flight; MapChunks returns only
// after every submitted call has finished.
func (s *Summarizer) MapChunks(ctx context.Context, chunks []string) ([]string, error) {
	if len(chunks) == 0 {
		return nil, ErrNoChunks
	}

	promptsByChunk := make([]string, len(chunks))
	for i, chunk := range chunks {
		p, err := render(s.prompts.Map, chunk)
		if err != nil {
			return nil, fmt.Errorf("render map prompt for chunk %d: %w", i+1, err)
		}
		promptsByChunk[i] = p
	}

	size := s.maxConcurrency
	if size <= 0 || size > len(chunks) {
		size = len(chunks)
	}
	pool, err := ants.NewPool(size)
	if err != nil {
		return nil, fmt.Errorf("create map pool: %w", err)
	}
	defer pool.Release()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg        sync.WaitGroup
		errOnce   sync.Once
		firstErr  error
		summaries = make([]string, len(chunks))
	)
	fail := func(err error) {
		errOnce.Do(func() {
			firstErr = err
			cancel()
		})
	}

	start := time.Now()
	for i := range promptsByChunk {
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					fail(fmt.Errorf("map chunk %d/%d: %w: %v", i+1, len(chunks), ErrGenerationPanic, r))
				}
			}()
			if ctx.Err() != nil {
				fail(ctx.Err())
				return
			}
			summary, err := s.call(ctx, promptsByChunk[i])
			if err != nil {
				fail(fmt.Errorf("map chunk %d/%d: %w", i+1, len(chunks), err))
				return
			}
			summaries[i] = summary
		})
		if submitErr != nil {
			wg.Done()
			fail(fmt.Errorf("submit chunk %d: %w", i+1, submitErr))
			break
		}
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	s.logger.Debug("map step complete", "chunks", len(chunks), "workers", size, "elapsed", time.Since(start))
	return summaries, nil
}

// Reduce combines per-chunk summaries into the final abstract. Summaries are
// labelled "Section N" by their 1-based position.
func (s *Summarizer) Reduce(ctx context.Context, summaries []string) (string, error) {
	prompt, err := render(s.prompts.Reduce, CombineSummaries(summaries))
	if err != nil {
		return "", fmt.Errorf("render reduce prompt: %w", err)
	}
	abstract, err := s.call(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("reduce: %w", err)
	}
	return abstract, nil
}

// CombineSummaries labels each summary with its position and joins them with
// blank lines.
func CombineSummaries(summaries []string) string {
	labelled := make([]string, len(summaries))
	for i, summary := range summaries {
		labelled[i] = fmt.Sprintf("Section %d: %s", i+1, summary)
	}
	return strings.Join(labelled, "\n\n")
}

func (s *Summarizer) call(ctx context.Context, prompt string) (string, error) {
	text, err := s.generator.Generate(ctx, []ai.Message{
		ai.SystemMessage(s.prompts.System),
		ai.UserMessage(prompt),
	})
	if err != nil {
		return "", err
	}
	return CleanOutput(text), nil
}
