package main

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/poiesic/notesum/batch"
	"github.com/poiesic/notesum/frontmatter"
	"github.com/poiesic/notesum/split"
	"github.com/urfave/cli/v2"
)

// splitReport describes how one note would be chunked.
type splitReport struct {
	File   string `json:"file"`
	Chunks int    `json:"chunks"`
	Sizes  []int  `json:"sizes,omitempty"`
	Error  string `json:"error,omitempty"`
}

func splitCommand() *cli.Command {
	return &cli.Command{
		Name:      "split",
		Usage:     "Show how notes would be chunked without calling the model",
		ArgsUsage: "FILE [FILE...]",
		Action:    runSplit,
		Flags:     splitFlags(),
	}
}

func runSplit(c *cli.Context) error {
	files := c.Args().Slice()
	if len(files) == 0 {
		return errors.New("at least one markdown file is required")
	}

	cfg := splitConfig(c)
	if err := cfg.Validate(); err != nil {
		return err
	}

	store := batch.NewFileStore("")
	reports := make([]splitReport, 0, len(files))
	for _, file := range files {
		reports = append(reports, splitOne(c, store, file, cfg))
	}
	return writeJSON(c.App.Writer, reports)
}

func splitOne(c *cli.Context, store batch.DocumentStore, file string, cfg split.Config) splitReport {
	report := splitReport{File: file}

	path, err := store.Resolve(c.Context, file)
	if err != nil {
		report.Error = err.Error()
		return report
	}
	doc, err := store.Load(c.Context, path)
	if err != nil {
		report.Error = err.Error()
		return report
	}

	// Notes without frontmatter are split whole.
	body := doc.Content
	if fm, err := frontmatter.Parse(doc.Content); err == nil {
		body = fm.Body
	}

	chunks := split.SplitDocument(strings.TrimSpace(body), cfg)
	report.Chunks = len(chunks)
	for _, chunk := range chunks {
		report.Sizes = append(report.Sizes, utf8.RuneCountInString(chunk))
	}
	return report
}
