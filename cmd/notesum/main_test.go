package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/poiesic/notesum/core"
	"github.com/poiesic/notesum/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := newApp(&stdout, &stderr).Run(append([]string{"notesum"}, args...))
	return stdout.String(), err
}

func findFlag[T cli.Flag](t *testing.T, cmd *cli.Command, name string) T {
	t.Helper()
	for _, flag := range cmd.Flags {
		if f, ok := flag.(T); ok && flag.Names()[0] == name {
			return f
		}
	}
	t.Fatalf("flag %q not found on %s", name, cmd.Name)
	var zero T
	return zero
}

func TestSummarizeCommandFlags(t *testing.T) {
	cmd := summarizeCommand()

	t.Run("model is required", func(t *testing.T) {
		_, err := runApp(t, "summarize", "a.md")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "model")
	})

	t.Run("base-url has default value", func(t *testing.T) {
		assert.Equal(t, "http://localhost:11434", findFlag[*cli.StringFlag](t, cmd, "base-url").Value)
	})

	t.Run("provider defaults to ollama", func(t *testing.T) {
		assert.Equal(t, "ollama", findFlag[*cli.StringFlag](t, cmd, "provider").Value)
	})

	t.Run("chunk-size defaults to 50000", func(t *testing.T) {
		assert.Equal(t, 50000, findFlag[*cli.IntFlag](t, cmd, "chunk-size").Value)
	})

	t.Run("concurrency defaults to one worker per chunk", func(t *testing.T) {
		assert.Equal(t, 0, findFlag[*cli.IntFlag](t, cmd, "concurrency").Value)
	})

	t.Run("files are required", func(t *testing.T) {
		_, err := runApp(t, "summarize", "--model", "m")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least one markdown file")
	})

	t.Run("unknown provider is rejected", func(t *testing.T) {
		_, err := runApp(t, "summarize", "--model", "m", "--provider", "bogus", "a.md")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bogus")
	})

	t.Run("negative concurrency is rejected", func(t *testing.T) {
		_, err := runApp(t, "summarize", "--model", "m", "--concurrency", "-1", "a.md")
		require.Error(t, err)
	})

	t.Run("bad chunk size is rejected", func(t *testing.T) {
		_, err := runApp(t, "summarize", "--model", "m", "--chunk-size", "0", "a.md")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "MaxChunkSize")
	})
}

func TestSetupLogger(t *testing.T) {
	_, err := runApp(t, "--log-level", "LOUD", "split", "a.md")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")

	_, err = runApp(t, "-l", "DEBUG", "history")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "invalid log level")
}

func fakeOpenAI(t *testing.T, reply string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			http.NotFound(w, r)
			return
		}
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"id":"c1","object":"chat.completion","created":1,"model":"m",`+
			`"choices":[{"index":0,"message":{"role":"assistant","content":%q},"finish_reason":"stop"}],`+
			`"usage":{"prompt_tokens":1,"completion_tokens":1,"total_tokens":2}}`, reply)
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func TestSummarizeEndToEnd(t *testing.T) {
	srv, calls := fakeOpenAI(t, "<think>x</think>A tidy abstract.")

	dir := t.TempDir()
	note := filepath.Join(dir, "note.md")
	human := filepath.Join(dir, "human.md")
	require.NoError(t, os.WriteFile(note, []byte("---\ntitle: N\n---\n# Head\nBody text.\n"), 0o644))
	require.NoError(t, os.WriteFile(human, []byte("---\nsummary: Mine\n---\nBody.\n"), 0o644))
	missing := filepath.Join(dir, "missing.md")
	dbPath := filepath.Join(dir, "ledger")

	out, err := runApp(t, "summarize",
		"--model", "m",
		"--provider", "openai",
		"--base-url", srv.URL,
		"--db", dbPath,
		note, human, missing)
	require.NoError(t, err)

	var results []core.Result
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 3)
	assert.Equal(t, core.StatusSuccess, results[0].Status)
	assert.Equal(t, "[AI] A tidy abstract.", results[0].NewSummary)
	assert.True(t, results[0].Updated)
	assert.Equal(t, core.StatusSkipped, results[1].Status)
	assert.Equal(t, core.StatusError, results[2].Status)
	assert.Equal(t, int32(1), calls.Load())
	assert.True(t, strings.HasPrefix(out, "[\n  {"), "report is indented JSON")

	data, err := os.ReadFile(note)
	require.NoError(t, err)
	assert.Equal(t, "---\ntitle: N\nsummary: \"[AI] A tidy abstract.\"\n---\n# Head\nBody text.\n", string(data))

	out, err = runApp(t, "history", "--db", dbPath)
	require.NoError(t, err)
	var runs []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &runs))
	require.Len(t, runs, 1)
	assert.Equal(t, "m", runs[0]["model"])
	assert.Equal(t, float64(3), runs[0]["documents"])
	assert.Equal(t, float64(1), runs[0]["success"])
	assert.Equal(t, float64(1), runs[0]["skipped"])
	assert.Equal(t, float64(1), runs[0]["failed"])

	out, err = runApp(t, "history", "--db", dbPath, "--run", runs[0]["id"].(string))
	require.NoError(t, err)
	var detail struct {
		Results []core.Result `json:"results"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &detail))
	require.Len(t, detail.Results, 3)
	assert.Equal(t, note, detail.Results[0].File)

	runID := runs[0]["id"].(string)
	out, err = runApp(t, "history", "--db", dbPath, "--delete", runID)
	require.NoError(t, err)
	assert.JSONEq(t, fmt.Sprintf(`{"deleted":%q}`, runID), out)

	out, err = runApp(t, "history", "--db", dbPath)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", out)

	_, err = runApp(t, "history", "--db", dbPath, "--delete", runID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestHistoryRejectsBadArguments(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "ledger")

	_, err := runApp(t, "history", "--db", dbPath, "--delete", "not-hex")
	assert.ErrorContains(t, err, "invalid run ID")

	_, err = runApp(t, "history", "--db", dbPath, "--run", "01", "--delete", "01")
	assert.ErrorContains(t, err, "mutually exclusive")
}

func TestSummarizeDryRunLeavesFile(t *testing.T) {
	srv, _ := fakeOpenAI(t, "Abstract.")

	dir := t.TempDir()
	note := filepath.Join(dir, "note.md")
	content := "---\ntitle: N\n---\nBody text.\n"
	require.NoError(t, os.WriteFile(note, []byte(content), 0o644))

	out, err := runApp(t, "summarize", "--model", "m", "--provider", "openai",
		"--base-url", srv.URL, "--dry-run", note)
	require.NoError(t, err)

	var results []core.Result
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "[AI] Abstract.", results[0].NewSummary)
	assert.False(t, results[0].Updated)

	data, err := os.ReadFile(note)
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
}

func TestSplitCommand(t *testing.T) {
	dir := t.TempDir()
	note := filepath.Join(dir, "note.md")
	body := "# A\n" + strings.Repeat("x", 30) + "\n# B\n" + strings.Repeat("y", 30)
	require.NoError(t, os.WriteFile(note, []byte("---\ntitle: N\n---\n"+body), 0o644))

	out, err := runApp(t, "split", "--chunk-size", "40", note, filepath.Join(dir, "missing.md"))
	require.NoError(t, err)

	var reports []splitReport
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 2)
	assert.Equal(t, 2, reports[0].Chunks)
	assert.Equal(t, []int{34, 34}, reports[0].Sizes)
	assert.Contains(t, reports[1].Error, "file not found")
}

func TestHistoryRequiresDB(t *testing.T) {
	_, err := runApp(t, "history")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db")
}
