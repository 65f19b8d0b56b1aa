package summarize

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/poiesic/notesum/ai"
	"github.com/poiesic/notesum/ai/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chunkIndex extracts N from a prompt that embeds "chunk-N".
func chunkIndex(prompt string) int {
	var n int
	idx := strings.Index(prompt, "chunk-")
	if idx < 0 {
		return 0
	}
	fmt.Sscanf(prompt[idx:], "chunk-%d", &n)
	return n
}

func isReduce(prompt string) bool {
	return strings.Contains(prompt, "Section 1:")
}

func lastContent(messages []ai.Message) string {
	return messages[len(messages)-1].Content
}

func TestNew(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrGeneratorRequired)

	s, err := New(mock.NewMockGenerator(), WithMaxConcurrency(2), WithLogger(nil))
	require.NoError(t, err)
	assert.Equal(t, 2, s.maxConcurrency)
}

func TestSummarizeSingleChunkUsesStuff(t *testing.T) {
	gen := mock.NewMockGenerator().WithGenerateFunc(func(ctx context.Context, messages []ai.Message) (string, error) {
		return "  \"The abstract.\"  ", nil
	})
	s, err := New(gen)
	require.NoError(t, err)

	abstract, err := s.Summarize(context.Background(), []string{"only chunk body"})
	require.NoError(t, err)

	assert.Equal(t, "The abstract.", abstract)
	assert.Equal(t, StrategyStuff, s.Strategy(1))
	require.Equal(t, 1, gen.CallCount())

	call := gen.Calls()[0]
	require.Len(t, call, 2)
	assert.Equal(t, ai.RoleSystem, call[0].Role)
	assert.Equal(t, SystemPrompt, call[0].Content)
	assert.Equal(t, ai.RoleUser, call[1].Role)
	assert.Contains(t, call[1].Content, "Below is a short markdown note.")
	assert.Contains(t, call[1].Content, "---\nonly chunk body\n---")
}

func TestSummarizeMultipleChunksUsesMapReduce(t *testing.T) {
	gen := mock.NewMockGenerator()
	s, err := New(gen)
	require.NoError(t, err)

	chunks := []string{"chunk-1 text", "chunk-2 text", "chunk-3 text", "chunk-4 text"}
	abstract, err := s.Summarize(context.Background(), chunks)
	require.NoError(t, err)

	assert.Equal(t, StrategyMapReduce, s.Strategy(len(chunks)))
	assert.Equal(t, len(chunks)+1, gen.CallCount(), "N map calls plus one reduce call")

	var mapPrompts, reducePrompts int
	for _, p := range gen.Prompts() {
		switch {
		case isReduce(p):
			reducePrompts++
		case strings.Contains(p, "Below is a chunk from a longer markdown note."):
			mapPrompts++
		}
	}
	assert.Equal(t, len(chunks), mapPrompts)
	assert.Equal(t, 1, reducePrompts)
	assert.True(t, strings.HasPrefix(abstract, "summary: "))
}

func TestMapReduceKeepsDocumentOrder(t *testing.T) {
	// Chunk 3 finishes first, then chunk 1, then chunk 2.
	delays := map[int]time.Duration{1: 40 * time.Millisecond, 2: 80 * time.Millisecond, 3: 0}

	var (
		mu        sync.Mutex
		completed []int
		reduce    string
	)
	gen := mock.NewMockGenerator().WithGenerateFunc(func(ctx context.Context, messages []ai.Message) (string, error) {
		prompt := lastContent(messages)
		if isReduce(prompt) {
			mu.Lock()
			reduce = prompt
			mu.Unlock()
			return "final", nil
		}
		n := chunkIndex(prompt)
		time.Sleep(delays[n])
		mu.Lock()
		completed = append(completed, n)
		mu.Unlock()
		return fmt.Sprintf("<think>chunk %d</think>S%d", n, n), nil
	})
	s, err := New(gen)
	require.NoError(t, err)

	abstract, err := s.Summarize(context.Background(), []string{"chunk-1", "chunk-2", "chunk-3"})
	require.NoError(t, err)

	assert.Equal(t, "final", abstract)
	assert.Equal(t, []int{3, 1, 2}, completed)
	assert.Contains(t, reduce, "---\nSection 1: S1\n\nSection 2: S2\n\nSection 3: S3\n---")
}

func TestMapChunksPositionalResults(t *testing.T) {
	gen := mock.NewMockGenerator().WithGenerateFunc(func(ctx context.Context, messages []ai.Message) (string, error) {
		n := chunkIndex(lastContent(messages))
		time.Sleep(time.Duration(10-n) * time.Millisecond)
		return fmt.Sprintf("summary-%d", n), nil
	})
	s, err := New(gen)
	require.NoError(t, err)

	chunks := make([]string, 10)
	for i := range chunks {
		chunks[i] = fmt.Sprintf("chunk-%d", i)
	}

	summaries, err := s.MapChunks(context.Background(), chunks)
	require.NoError(t, err)
	require.Len(t, summaries, len(chunks))
	for i, summary := range summaries {
		assert.Equal(t, fmt.Sprintf("summary-%d", i), summary)
	}
}

func TestMapChunksLaunchesAllCallsConcurrently(t *testing.T) {
	const n = 5
	var arrived atomic.Int32
	barrier := make(chan struct{})

	gen := mock.NewMockGenerator().WithGenerateFunc(func(ctx context.Context, messages []ai.Message) (string, error) {
		if arrived.Add(1) == n {
			close(barrier)
		}
		select {
		case <-barrier:
			return "ok", nil
		case <-time.After(2 * time.Second):
			return "", errors.New("calls were not in flight together")
		}
	})
	s, err := New(gen)
	require.NoError(t, err)

	summaries, err := s.MapChunks(context.Background(), make([]string, n))
	require.NoError(t, err)
	assert.Len(t, summaries, n)
}

func TestMapChunksBoundedConcurrency(t *testing.T) {
	var inFlight, peak atomic.Int32
	gen := mock.NewMockGenerator().WithGenerateFunc(func(ctx context.Context, messages []ai.Message) (string, error) {
		cur := inFlight.Add(1)
		defer inFlight.Add(-1)
		for {
			old := peak.Load()
			if cur <= old || peak.CompareAndSwap(old, cur) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		return "ok", nil
	})
	s, err := New(gen, WithMaxConcurrency(2))
	require.NoError(t, err)

	_, err = s.MapChunks(context.Background(), make([]string, 8))
	require.NoError(t, err)
	assert.LessOrEqual(t, peak.Load(), int32(2))
	assert.Equal(t, 8, gen.CallCount())
}

func TestSummarizeMapFailureFailsWholeDocument(t *testing.T) {
	boom := errors.New("service unavailable")
	gen := mock.NewMockGenerator().WithGenerateFunc(func(ctx context.Context, messages []ai.Message) (string, error) {
		prompt := lastContent(messages)
		if isReduce(prompt) {
			t.Error("reduce must not run after a map failure")
		}
		if chunkIndex(prompt) == 2 {
			return "", boom
		}
		return "ok", nil
	})
	s, err := New(gen, WithMaxConcurrency(1))
	require.NoError(t, err)

	_, err = s.Summarize(context.Background(), []string{"chunk-1", "chunk-2", "chunk-3"})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "map chunk 2/3")
}

func TestSummarizeMapPanicFailsWholeDocument(t *testing.T) {
	var reduced atomic.Bool
	gen := mock.NewMockGenerator().WithGenerateFunc(func(ctx context.Context, messages []ai.Message) (string, error) {
		prompt := lastContent(messages)
		if isReduce(prompt) {
			reduced.Store(true)
			return "abstract", nil
		}
		if chunkIndex(prompt) == 2 {
			panic("generator exploded")
		}
		return "ok", nil
	})
	s, err := New(gen, WithMaxConcurrency(1))
	require.NoError(t, err)

	abstract, err := s.Summarize(context.Background(), []string{"chunk-1", "chunk-2", "chunk-3"})
	require.Error(t, err)
	assert.Empty(t, abstract)
	assert.ErrorIs(t, err, ErrGenerationPanic)
	assert.Contains(t, err.Error(), "map chunk 2/3")
	assert.Contains(t, err.Error(), "generator exploded")
	assert.False(t, reduced.Load())
}

func TestSummarizeReduceFailure(t *testing.T) {
	boom := errors.New("timeout")
	gen := mock.NewMockGenerator().WithGenerateFunc(func(ctx context.Context, messages []ai.Message) (string, error) {
		if isReduce(lastContent(messages)) {
			return "", boom
		}
		return "ok", nil
	})
	s, err := New(gen)
	require.NoError(t, err)

	_, err = s.Summarize(context.Background(), []string{"a", "b"})
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "reduce")
	assert.Equal(t, 3, gen.CallCount())
}

func TestSummarizeStuffFailure(t *testing.T) {
	boom := errors.New("refused")
	gen := mock.NewMockGenerator().WithGenerateFunc(func(ctx context.Context, messages []ai.Message) (string, error) {
		return "", boom
	})
	s, err := New(gen)
	require.NoError(t, err)

	_, err = s.Summarize(context.Background(), []string{"a"})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, gen.CallCount())
}

func TestSummarizeNoChunks(t *testing.T) {
	gen := mock.NewMockGenerator()
	s, err := New(gen)
	require.NoError(t, err)

	_, err = s.Summarize(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoChunks)
	assert.Zero(t, gen.CallCount())
}

func TestMapChunksCanceledContext(t *testing.T) {
	gen := mock.NewMockGenerator()
	s, err := New(gen)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = s.MapChunks(ctx, []string{"a", "b", "c"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, gen.CallCount())
}
