// Package resource turns resource files into C declarations that can be
// compiled straight into a binary.
package resource

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/afero"
)

var (
	// ErrInputUnreadable is returned when the input file cannot be read.
	ErrInputUnreadable = errors.New("input unreadable")
	// ErrOutputUnwritable is returned when the output file cannot be written.
	ErrOutputUnwritable = errors.New("output unwritable")
)

// Result describes one completed embed.
type Result struct {
	Mode        Mode
	Symbol      string
	InputBytes  int
	OutputBytes int
}

// Embedder reads resources from and writes generated sources to Fs.
type Embedder struct {
	Fs   afero.Fs
	Mode Mode
}

// New returns an Embedder for mode backed by fs. A nil fs means the host
// filesystem.
func New(fs afero.Fs, mode Mode) *Embedder {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Embedder{Fs: fs, Mode: mode}
}

// Embed reads in, renders it and writes the result to out, replacing any
// existing file. Nothing is written when in cannot be read.
func (e *Embedder) Embed(ctx context.Context, in, out string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	data, err := afero.ReadFile(e.Fs, in)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrInputUnreadable, err)
	}

	src, err := e.Mode.Render(in, data)
	if err != nil {
		return Result{}, err
	}

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := afero.WriteFile(e.Fs, out, src, 0644); err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrOutputUnwritable, err)
	}

	return Result{
		Mode:        e.Mode,
		Symbol:      e.Mode.Symbol(in),
		InputBytes:  len(data),
		OutputBytes: len(src),
	}, nil
}
