// Package export writes the dataset of every demo to files, one per demo,
// generating them concurrently.
package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/rshade/gridgallery/internal/demo"
	"github.com/rshade/gridgallery/internal/logging"
	"github.com/rshade/gridgallery/internal/render"
)

// ErrTableFormat is returned when an export is asked for table output.
var ErrTableFormat = errors.New("export needs a file format: json, ndjson or csv")

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Options configures an export run.
type Options struct {
	// Dir is created when missing.
	Dir    string
	Format render.Format
	// Sizes overrides the dataset size per demo id.
	Sizes map[string]int
	// Demos defaults to every registered demo.
	Demos []demo.Demo
	// OnDone is called from the worker goroutine after each file is written.
	OnDone func(Result)
}

// Result describes one written file.
type Result struct {
	Demo string `json:"demo"`
	Path string `json:"path"`
	Rows int    `json:"rows"`
}

// Run writes one file per demo into opts.Dir. Results are returned in demo
// order. The first failure cancels the remaining demos.
func Run(ctx context.Context, opts Options) ([]Result, error) {
	if opts.Format == render.FormatTable {
		return nil, ErrTableFormat
	}
	if _, err := render.ParseFormat(string(opts.Format)); err != nil {
		return nil, err
	}

	demos := opts.Demos
	if demos == nil {
		demos = demo.All()
	}

	if err := os.MkdirAll(opts.Dir, dirPerm); err != nil {
		return nil, fmt.Errorf("creating export directory: %w", err)
	}

	log := logging.FromContext(ctx)
	results := make([]Result, len(demos))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, d := range demos {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			res, err := writeDemo(d, opts)
			if err != nil {
				return fmt.Errorf("exporting %s: %w", d.ID, err)
			}
			log.Debug().
				Ctx(gCtx).
				Str("component", "export").
				Str("demo", d.ID).
				Str("path", res.Path).
				Int("rows", res.Rows).
				Msg("demo exported")
			results[i] = res
			if opts.OnDone != nil {
				opts.OnDone(res)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// FileName returns the name of the file a demo is written to.
func FileName(id string, format render.Format) string {
	return id + "." + string(format)
}

func writeDemo(d demo.Demo, opts Options) (Result, error) {
	sess := d.Open(opts.Sizes[d.ID])
	path := filepath.Join(opts.Dir, FileName(d.ID, opts.Format))

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePerm)
	if err != nil {
		return Result{}, fmt.Errorf("creating file: %w", err)
	}

	if err := render.Write(f, opts.Format, render.FullView(sess)); err != nil {
		_ = f.Close()
		return Result{}, err
	}
	if err := f.Close(); err != nil {
		return Result{}, fmt.Errorf("closing file: %w", err)
	}

	return Result{Demo: d.ID, Path: path, Rows: sess.Len()}, nil
}
