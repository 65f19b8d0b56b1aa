package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for documents and runs.
// It is generated using content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// String renders the ID as fixed-width hex.
func (id ID) String() string {
	return fmt.Sprintf("%016x", uint64(id))
}

// MarshalText encodes the ID in its hex form so JSON output keeps all 64 bits.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText decodes the hex form.
func (id *ID) UnmarshalText(b []byte) error {
	v, err := ParseID(string(b))
	if err != nil {
		return err
	}
	*id = v
	return nil
}

// ParseID parses the hex form produced by ID.String.
func ParseID(s string) (ID, error) {
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, err
	}
	return ID(v), nil
}

// Status is the outcome of processing one document.
type Status string

const (
	// StatusSuccess means a summary was generated.
	StatusSuccess Status = "success"
	// StatusSkipped means a human-written value was left alone.
	StatusSkipped Status = "skipped"
	// StatusError means the document could not be summarized.
	StatusError Status = "error"
)

// Result is the per-document report of a batch run.
type Result struct {
	File       string `json:"file"`
	ID         ID     `json:"id,omitempty"`
	Status     Status `json:"status"`
	Chunks     int    `json:"chunks,omitempty"`
	OldSummary string `json:"old_summary,omitempty"`
	NewSummary string `json:"new_summary,omitempty"`
	Updated    bool   `json:"updated"`
	Reason     string `json:"reason,omitempty"` // Why the document was skipped
	Summary    string `json:"summary,omitempty"` // Existing value kept on skip
	Error      string `json:"error,omitempty"`
}

// Run is one invocation of the batch summarizer.
type Run struct {
	ID        ID
	StartedAt time.Time
	Model     string
	DryRun    bool
	Results   []*Result
}

// RunHeader is the stored form of a run without its results.
type RunHeader struct {
	ID          ID
	StartedAt   time.Time
	Model       string
	DryRun      bool
	ResultCount int
}

// Header returns the run's header.
func (r *Run) Header() RunHeader {
	return RunHeader{
		ID:          r.ID,
		StartedAt:   r.StartedAt,
		Model:       r.Model,
		DryRun:      r.DryRun,
		ResultCount: len(r.Results),
	}
}

// Counts tallies results by status.
func (r *Run) Counts() (success, skipped, failed int) {
	for _, res := range r.Results {
		switch res.Status {
		case StatusSuccess:
			success++
		case StatusSkipped:
			skipped++
		case StatusError:
			failed++
		}
	}
	return success, skipped, failed
}

// NewRunID derives a run ID from the model and start time.
func NewRunID(model string, startedAt time.Time) ID {
	return IDFromContent(model + "@" + startedAt.UTC().Format(time.RFC3339Nano))
}
