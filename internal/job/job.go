// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package job reads and writes job files: a saved mode, output directory,
// and ordered path list that can be dispatched later without rebuilding the
// list by hand.
package job

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pdfdrop/pkg/types"
)

// Job is the on-disk representation of a pending dispatch.
type Job struct {
	Mode      types.Mode `yaml:"mode"`
	OutputDir string     `yaml:"output_dir"`
	// Paths is the final, user-ordered list. Order decides page order for
	// merge.
	Paths []string `yaml:"paths"`
}

// Validate checks that the job can be dispatched.
func (j *Job) Validate() error {
	if _, err := types.ParseMode(string(j.Mode)); err != nil {
		return err
	}
	if j.OutputDir == "" {
		return errors.New("job has no output_dir")
	}
	if len(j.Paths) == 0 {
		return errors.New("job has no paths")
	}
	return nil
}

// Read loads a job file. Relative paths inside the file are resolved against
// the file's directory so a job can be run from anywhere.
func Read(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading job file: %w", err)
	}
	var j Job
	if err := yaml.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parsing job file %s: %w", path, err)
	}
	if mode, err := types.ParseMode(string(j.Mode)); err == nil {
		j.Mode = mode
	}

	base := filepath.Dir(path)
	j.OutputDir = resolve(base, j.OutputDir)
	for i, p := range j.Paths {
		j.Paths[i] = resolve(base, p)
	}

	if err := j.Validate(); err != nil {
		return nil, fmt.Errorf("invalid job file %s: %w", path, err)
	}
	return &j, nil
}

// Write saves j to path as YAML.
func Write(path string, j *Job) error {
	data, err := yaml.Marshal(j)
	if err != nil {
		return fmt.Errorf("marshaling job file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func resolve(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}
