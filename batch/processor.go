package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/poiesic/notesum/core"
	"github.com/poiesic/notesum/frontmatter"
	"github.com/poiesic/notesum/split"
)

// Summarizer turns ordered chunks into one abstract.
type Summarizer interface {
	Summarize(ctx context.Context, chunks []string) (string, error)
}

// Processor summarizes a single document and writes the abstract back into
// its metadata block.
type Processor struct {
	store      DocumentStore
	summarizer Summarizer
	config     Config
	logger     *slog.Logger
}

// NewProcessor creates a Processor. A nil logger uses slog.Default.
func NewProcessor(store DocumentStore, summarizer Summarizer, config Config, logger *slog.Logger) (*Processor, error) {
	if store == nil {
		return nil, errors.New("document store is required")
	}
	if summarizer == nil {
		return nil, errors.New("summarizer is required")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		store:      store,
		summarizer: summarizer,
		config:     config,
		logger:     logger.With("component", "processor"),
	}, nil
}

// Process handles one document. Failures are reported in the Result rather
// than returned, so one bad note never stops a batch.
func (p *Processor) Process(ctx context.Context, id string) *core.Result {
	res := &core.Result{File: id}

	path, err := p.store.Resolve(ctx, id)
	if err != nil {
		return p.fail(res, err)
	}
	res.ID = core.IDFromContent(absPath(path))

	if filepath.Ext(path) != p.config.Extension {
		return p.fail(res, ErrNotMarkdown)
	}

	p.logger.Info("Summarizing", "file", filepath.Base(path))

	doc, err := p.store.Load(ctx, path)
	if err != nil {
		return p.fail(res, err)
	}

	fm, err := frontmatter.Parse(doc.Content)
	if err != nil {
		return p.fail(res, err)
	}
	body := strings.TrimSpace(fm.Body)
	if body == "" {
		return p.fail(res, ErrNoContent)
	}

	old := fm.Field(p.config.Field)
	if old != "" && !p.config.isMachineWritten(old) {
		res.Status = core.StatusSkipped
		res.Reason = fmt.Sprintf("human %s exists (does not start with %s)",
			p.config.Field, strings.TrimSpace(p.config.Marker))
		res.Summary = old
		p.logger.Info("Skipped", "file", id, "reason", res.Reason)
		return res
	}

	chunks := split.SplitDocument(body, p.config.Split)
	p.logger.Info("chunk(s) to process", "file", id, "chunks", len(chunks))
	if len(chunks) == 0 {
		return p.fail(res, ErrNoChunks)
	}
	res.Chunks = len(chunks)

	summary, err := p.summarizer.Summarize(ctx, chunks)
	if err != nil {
		return p.fail(res, fmt.Errorf("%w: %w", ErrSummarizationFailed, err))
	}

	res.OldSummary = old
	res.NewSummary = p.config.Marker + summary

	if !p.config.DryRun {
		fm.SetField(p.config.Field, res.NewSummary, p.config.InsertBefore)
		doc.Content = fm.Render()
		if err := p.store.Save(ctx, doc); err != nil {
			return p.fail(res, err)
		}
		res.Updated = true
	}

	res.Status = core.StatusSuccess
	p.logger.Info("Done", "file", id, "updated", res.Updated)
	return res
}

func (p *Processor) fail(res *core.Result, err error) *core.Result {
	res.Status = core.StatusError
	res.Error = err.Error()
	p.logger.Error("Error", "file", res.File, "error", err)
	return res
}

func absPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
