package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/logger"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// PageConverter is the interface for the conversion service.
type PageConverter interface {
	Convert(ctx context.Context, input md2html.Input) (*md2html.ConvertResult, error)
}

// Compile-time interface implementation check.
var _ PageConverter = (*md2html.Converter)(nil)

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath   string
	OutputPath  string
	Size        int // bytes written
	Headings    int
	GeneratedAt time.Time
	Err         error
	Duration    time.Duration
}

// batchOptions controls fan-out and failure handling.
type batchOptions struct {
	workers   int
	keepGoing bool // collect failures instead of aborting on the first one
	log       *logger.Logger
}

// batchOutcome collects results in completion order.
type batchOutcome struct {
	mu        sync.Mutex
	completed []ConversionResult
	failed    []ConversionResult
}

func (o *batchOutcome) record(r ConversionResult) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if r.Err != nil {
		o.failed = append(o.failed, r)
		return
	}
	o.completed = append(o.completed, r)
}

// convertBatch converts files concurrently, at most opts.workers at a time.
// Successful results are returned in completion order.
//
// Without keepGoing the first failure cancels the remaining conversions and
// is returned, naming the file; pages already written stay on disk. With
// keepGoing every file is attempted and failures are returned separately.
func convertBatch(ctx context.Context, conv PageConverter, files []FileToConvert, opts batchOptions) (completed, failed []ConversionResult, err error) {
	if len(files) == 0 {
		return nil, nil, nil
	}

	workers := opts.workers
	if workers < 1 {
		workers = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	outcome := &batchOutcome{}
	for _, f := range files {
		g.Go(func() error {
			r := convertFile(gctx, conv, f)
			if gctx.Err() != nil && errors.Is(r.Err, gctx.Err()) {
				return nil // skipped after cancellation
			}
			outcome.record(r)

			if r.Err != nil {
				opts.log.PageFailed(r.InputPath, r.Err)
				if !opts.keepGoing {
					return fmt.Errorf("%s: %w", r.InputPath, r.Err)
				}
				return nil
			}
			opts.log.PageConverted(r.InputPath, r.OutputPath, r.Size, r.Headings, r.Duration)
			return nil
		})
	}

	err = g.Wait()
	if err == nil && ctx.Err() != nil {
		err = ctx.Err()
	}
	return outcome.completed, outcome.failed, err
}

// convertFile reads, converts and writes a single page.
func convertFile(ctx context.Context, conv PageConverter, f FileToConvert) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}
	done := func(err error) ConversionResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	if ctx.Err() != nil {
		return done(ctx.Err())
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		return done(fmt.Errorf("%w: %v", md2html.ErrReadMarkdown, err))
	}

	page, err := conv.Convert(ctx, md2html.Input{
		Name:     f.InputPath,
		Markdown: string(content),
	})
	if err != nil {
		return done(err)
	}

	if err := fileutil.WriteFileAtomic(f.OutputPath, page.HTML, filePermissions); err != nil {
		return done(fmt.Errorf("%w: %v", md2html.ErrWriteHTML, err))
	}

	result.Size = len(page.HTML)
	result.Headings = len(page.TOC)
	result.GeneratedAt = page.GeneratedAt
	return done(nil)
}

// totalSize sums the bytes written for results.
func totalSize(results []ConversionResult) int {
	total := 0
	for _, r := range results {
		total += r.Size
	}
	return total
}
