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

package core

import (
	"fmt"
	"time"
)

// ValidateResult validates a Result according to domain rules.
//
// Validation rules:
//   - File must not be empty
//   - Status must be one of success, skipped or error
//   - Error results must carry a message
func ValidateResult(result *Result) error {
	if result == nil {
		return fmt.Errorf("%w: result is nil", ErrInvalidResult)
	}

	if result.File == "" {
		return fmt.Errorf("%w: %w", ErrInvalidResult, ErrEmptyFile)
	}

	if err := ValidateStatus(result.Status); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidResult, err)
	}

	if result.Status == StatusError && result.Error == "" {
		return fmt.Errorf("%w: error result without message", ErrInvalidResult)
	}

	return nil
}

// ValidateRun validates a Run and each of its results.
//
// NOT validated:
//   - ID (0 is valid and replaced when the run is saved)
//   - Results may be empty
func ValidateRun(run *Run) error {
	if run == nil {
		return fmt.Errorf("%w: run is nil", ErrInvalidRun)
	}

	if run.Model == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRun, ErrEmptyModel)
	}

	if !IsValidTimestamp(run.StartedAt) {
		return fmt.Errorf("%w: %w", ErrInvalidRun, ErrInvalidTimestamp)
	}

	for i, res := range run.Results {
		if err := ValidateResult(res); err != nil {
			return fmt.Errorf("%w: result %d: %w", ErrInvalidRun, i, err)
		}
	}

	return nil
}

// ValidateStatus validates that a Status has a known value.
func ValidateStatus(status Status) error {
	switch status {
	case StatusSuccess, StatusSkipped, StatusError:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidStatus, string(status))
}

// IsValidTimestamp checks if a timestamp is valid (not in the future).
func IsValidTimestamp(ts time.Time) bool {
	return !ts.After(time.Now())
}
