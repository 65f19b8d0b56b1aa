package main

import (
	"errors"
	"log/slog"
	"time"

	"github.com/poiesic/notesum"
	"github.com/poiesic/notesum/ai"
	"github.com/poiesic/notesum/batch"
	"github.com/poiesic/notesum/split"
	"github.com/urfave/cli/v2"
)

func summarizeCommand() *cli.Command {
	return &cli.Command{
		Name:      "summarize",
		Usage:     "Summarize notes and write the abstract into their frontmatter",
		ArgsUsage: "FILE [FILE...]",
		Action:    runSummarize,
		Flags: append(splitFlags(),
			&cli.StringFlag{
				Name:     "model",
				Aliases:  []string{"m"},
				Usage:    "Generation model name (e.g. qwen3:8b)",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "base-url",
				Usage: "Generation service base URL",
				Value: "http://localhost:11434",
			},
			&cli.StringFlag{
				Name:  "provider",
				Usage: "Generation API flavor (ollama, openai)",
				Value: ai.ProviderOllama,
			},
			&cli.StringFlag{
				Name:    "api-key",
				Usage:   "API token for OpenAI-compatible services",
				EnvVars: []string{"NOTESUM_API_KEY"},
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Preview summaries without modifying files",
			},
			&cli.IntFlag{
				Name:  "concurrency",
				Usage: "Maximum concurrent map calls per note (0 = one per chunk)",
				Value: 0,
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "Timeout for each generation call (0 = none)",
				Value: 0,
			},
			&cli.StringFlag{
				Name:    "db",
				Aliases: []string{"d"},
				Usage:   "Path to BadgerDB run ledger directory (optional)",
			},
		),
	}
}

func runSummarize(c *cli.Context) error {
	files := c.Args().Slice()
	if len(files) == 0 {
		return errors.New("at least one markdown file is required")
	}
	if c.Int("concurrency") < 0 {
		return errors.New("concurrency cannot be negative")
	}

	cfg := batch.DefaultConfig()
	cfg.DryRun = c.Bool("dry-run")
	cfg.Split = splitConfig(c)
	if err := cfg.Validate(); err != nil {
		return err
	}

	aiConfig := ai.NewConfig(
		ai.WithProvider(c.String("provider")),
		ai.WithHost(c.String("base-url")),
		ai.WithModel(c.String("model")),
		ai.WithTimeout(c.Duration("timeout")),
	)
	if token := c.String("api-key"); token != "" {
		aiConfig.Token = token
	}

	opts := []notesum.Option{
		notesum.WithAIConfig(aiConfig),
		notesum.WithBatchConfig(cfg),
		notesum.WithMaxConcurrency(c.Int("concurrency")),
	}
	if dbPath := c.String("db"); dbPath != "" {
		opts = append(opts, notesum.WithLedger(dbPath))
	}

	ns, err := notesum.New(opts...)
	if err != nil {
		return err
	}
	defer ns.Close()

	runner, err := ns.NewRunner(batch.WithProgress(c.App.ErrWriter))
	if err != nil {
		return err
	}

	start := time.Now()
	run, runErr := runner.Run(c.Context, files)
	slog.Debug("summarize finished", "elapsed", time.Since(start).Round(time.Millisecond))

	if err := writeJSON(c.App.Writer, run.Results); err != nil {
		return err
	}
	return runErr
}

// splitFlags are shared by the summarize and split commands.
func splitFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:  "chunk-size",
			Usage: "Max chunk size in characters (~12K tokens at the default)",
			Value: split.DefaultMaxChunkSize,
		},
		&cli.IntSliceFlag{
			Name:  "heading-levels",
			Usage: "Heading levels that start a new section",
			Value: cli.NewIntSlice(split.DefaultHeadingLevels...),
		},
	}
}

func splitConfig(c *cli.Context) split.Config {
	cfg := split.DefaultConfig()
	cfg.MaxChunkSize = c.Int("chunk-size")
	if levels := c.IntSlice("heading-levels"); len(levels) > 0 {
		cfg.HeadingLevels = levels
	}
	return cfg
}
