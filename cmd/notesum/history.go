package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/poiesic/notesum/core"
	"github.com/poiesic/notesum/storage"
	"github.com/poiesic/notesum/storage/badger"
	"github.com/urfave/cli/v2"
)

// runSummary is one line of the history listing.
type runSummary struct {
	ID        core.ID   `json:"id"`
	StartedAt time.Time `json:"started_at"`
	Model     string    `json:"model"`
	DryRun    bool      `json:"dry_run"`
	Documents int       `json:"documents"`
	Success   int       `json:"success"`
	Skipped   int       `json:"skipped"`
	Failed    int       `json:"failed"`
}

// runDetail is a full run with its results.
type runDetail struct {
	runSummary
	Results []*core.Result `json:"results"`
}

func summarizeRun(run *core.Run) runSummary {
	success, skipped, failed := run.Counts()
	return runSummary{
		ID:        run.ID,
		StartedAt: run.StartedAt,
		Model:     run.Model,
		DryRun:    run.DryRun,
		Documents: len(run.Results),
		Success:   success,
		Skipped:   skipped,
		Failed:    failed,
	}
}

func historyCommand() *cli.Command {
	return &cli.Command{
		Name:   "history",
		Usage:  "List, show or delete recorded summarize runs",
		Action: runHistory,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "db",
				Aliases:  []string{"d"},
				Usage:    "Path to BadgerDB run ledger directory",
				Required: true,
			},
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of runs to list",
				Value: 10,
			},
			&cli.StringFlag{
				Name:  "run",
				Usage: "Show every result of the run with this ID",
			},
			&cli.StringFlag{
				Name:  "delete",
				Usage: "Delete the run with this ID and its results",
			},
		},
	}
}

func runHistory(c *cli.Context) error {
	repo, err := openLedger(c)
	if err != nil {
		return err
	}
	defer repo.Close()

	if c.IsSet("run") && c.IsSet("delete") {
		return errors.New("--run and --delete are mutually exclusive")
	}

	if runID := c.String("delete"); runID != "" {
		id, err := parseRunID(runID)
		if err != nil {
			return err
		}
		if err := repo.DeleteRun(c.Context, id); err != nil {
			return err
		}
		return writeJSON(c.App.Writer, map[string]core.ID{"deleted": id})
	}

	if runID := c.String("run"); runID != "" {
		id, err := parseRunID(runID)
		if err != nil {
			return err
		}
		run, err := repo.GetRun(c.Context, id)
		if err != nil {
			return err
		}
		return writeJSON(c.App.Writer, runDetail{runSummary: summarizeRun(run), Results: run.Results})
	}

	runs, err := repo.ListRuns(c.Context, c.Int("limit"))
	if err != nil {
		return err
	}
	summaries := make([]runSummary, 0, len(runs))
	for _, run := range runs {
		summaries = append(summaries, summarizeRun(run))
	}
	return writeJSON(c.App.Writer, summaries)
}

func parseRunID(s string) (core.ID, error) {
	id, err := core.ParseID(s)
	if err != nil {
		return 0, fmt.Errorf("invalid run ID %q: %w", s, err)
	}
	return id, nil
}

// openLedger opens the ledger named by the --db flag.
func openLedger(c *cli.Context) (storage.RunRepository, error) {
	dbPath := c.String("db")
	if dbPath == "" {
		return nil, errors.New("database path is required")
	}
	repo, err := badger.OpenRunRepository(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open run ledger: %w", err)
	}
	return repo, nil
}
