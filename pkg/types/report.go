// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// FileStatus indicates the outcome for a single input file.
type FileStatus string

const (
	StatusDone   FileStatus = "done"
	StatusFailed FileStatus = "failed"
)

// FileResult records what happened to one input of a dispatch.
type FileResult struct {
	// Input is the source path as given to the dispatcher.
	Input string `json:"input" yaml:"input"`

	// Outputs lists the files written for this input. Merge reports the
	// merged document on every input; Split reports one file per page.
	Outputs []string `json:"outputs,omitempty" yaml:"outputs,omitempty"`

	Status FileStatus `json:"status" yaml:"status"`

	// Error is the failure message when Status is failed.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Report summarises a single dispatch.
type Report struct {
	// RunID uniquely identifies the dispatch.
	RunID string `json:"run_id" yaml:"run_id"`

	Mode      Mode   `json:"mode" yaml:"mode"`
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	Files []FileResult `json:"files" yaml:"files"`

	StartedAt  time.Time `json:"started_at" yaml:"started_at"`
	FinishedAt time.Time `json:"finished_at" yaml:"finished_at"`
}

// Succeeded returns the number of inputs processed without error.
func (r *Report) Succeeded() int {
	n := 0
	for _, f := range r.Files {
		if f.Status == StatusDone {
			n++
		}
	}
	return n
}

// Failed returns the number of inputs that failed.
func (r *Report) Failed() int {
	return len(r.Files) - r.Succeeded()
}

// HasFailures reports whether any input failed.
func (r *Report) HasFailures() bool {
	return r.Failed() > 0
}

// Outputs returns every written file in order, without duplicates.
func (r *Report) Outputs() []string {
	seen := make(map[string]bool)
	var out []string
	for _, f := range r.Files {
		for _, o := range f.Outputs {
			if !seen[o] {
				seen[o] = true
				out = append(out, o)
			}
		}
	}
	return out
}
