// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/pdfdrop/internal/container"
	"github.com/pdiddy/pdfdrop/pkg/types"
)

const (
	containerInDir  = "/data/in"
	containerOutDir = "/data/out"
)

// ContainerConverter runs pandoc inside a container image whose entrypoint
// is pandoc. The source directory is mounted read-only and the output
// directory read-write. It depends on a container.Runtime (docker or podman)
// injected at construction time.
type ContainerConverter struct {
	runtime container.Runtime
	image   string
	args    []string
	user    string

	// Trace, when set, receives each container command line before it runs.
	Trace io.Writer
}

// NewContainerConverter creates a converter that uses rt to run the
// configured image. It verifies that the image exists locally before
// returning.
func NewContainerConverter(rt container.Runtime, cfg types.ConverterConfig) (*ContainerConverter, error) {
	image := cfg.Image
	if image == "" {
		image = types.DefaultConverterImage
	}
	if err := rt.ImageExists(image); err != nil {
		return nil, fmt.Errorf("converter image not available in %s: %w", rt.Name(), err)
	}
	return &ContainerConverter{
		runtime: rt,
		image:   image,
		args:    cfg.Args,
		user:    currentUser(),
	}, nil
}

// Spec builds the container invocation for one file.
func (c *ContainerConverter) Spec(src, dst string) (container.RunSpec, error) {
	srcAbs, err := filepath.Abs(src)
	if err != nil {
		return container.RunSpec{}, fmt.Errorf("resolving %s: %w", src, err)
	}
	dstAbs, err := filepath.Abs(dst)
	if err != nil {
		return container.RunSpec{}, fmt.Errorf("resolving %s: %w", dst, err)
	}

	args := []string{
		containerInDir + "/" + filepath.Base(srcAbs),
		"-o", containerOutDir + "/" + filepath.Base(dstAbs),
	}
	return container.RunSpec{
		Image: c.image,
		User:  c.user,
		Mounts: []container.Mount{
			{Source: filepath.Dir(srcAbs), Target: containerInDir, ReadOnly: true},
			{Source: filepath.Dir(dstAbs), Target: containerOutDir},
		},
		Args: append(args, c.args...),
	}, nil
}

// Convert runs the containerised converter for a single file.
func (c *ContainerConverter) Convert(ctx context.Context, src, dst string) error {
	spec, err := c.Spec(src, dst)
	if err != nil {
		return err
	}
	if c.Trace != nil {
		fmt.Fprintf(c.Trace, "$ %s %s\n", c.runtime.Name(), strings.Join(container.RunArgs(spec), " "))
	}

	if err := c.runtime.Run(ctx, spec); err != nil {
		return &ConversionError{Path: src, Target: dst, ExitCode: ExitCode(err), Err: err}
	}
	return nil
}

// currentUser returns "uid:gid" for the calling process, or "" where the
// platform has no numeric ids.
func currentUser() string {
	uid, gid := os.Getuid(), os.Getgid()
	if uid < 0 || gid < 0 {
		return ""
	}
	return fmt.Sprintf("%d:%d", uid, gid)
}
