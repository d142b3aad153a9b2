package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/hints"
)

// markdownExt is the only extension picked up from the input directory.
const markdownExt = ".md"

// indexFileName is the default index page name, written next to the input directory.
const indexFileName = "index.html"

// ErrInvalidWorkerCount is returned for a --workers value out of range.
var ErrInvalidWorkerCount = errors.New("invalid worker count")

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// resolveInputDir picks the input directory: positional argument first,
// then input.dir from config and environment.
func resolveInputDir(args []string, cfg *config.Config) (string, error) {
	dir := cfg.Input.Dir
	if len(args) > 0 {
		dir = args[0]
	}
	if dir == "" {
		return "", fmt.Errorf("%w: no input directory given%s", md2html.ErrNoInput, hints.ForInputDir(""))
	}

	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s%s", md2html.ErrNoInput, dir, hints.ForInputDir(dir))
		}
		return "", fmt.Errorf("%w: %v", md2html.ErrNoInput, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s%s", md2html.ErrInputNotDir, dir, hints.ForInputDir(dir))
	}
	return dir, nil
}

// resolveIndexPath returns the configured index path, or index.html in the
// parent of inputDir.
func resolveIndexPath(inputDir string, cfg *config.Config) string {
	if cfg.Output.Index != "" {
		return cfg.Output.Index
	}
	return filepath.Join(filepath.Dir(filepath.Clean(inputDir)), indexFileName)
}

// discoverFiles lists the markdown files directly inside dir, in name order.
// Subdirectories are not scanned; only regular files ending in exactly
// ".md" are kept. Each output goes next to its input with an .html extension.
func discoverFiles(dir string) ([]FileToConvert, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}

	var files []FileToConvert
	for _, e := range entries {
		if !e.Type().IsRegular() || filepath.Ext(e.Name()) != markdownExt {
			continue
		}
		inputPath := filepath.Join(dir, e.Name())
		outputPath, err := fileutil.ReplaceExt(inputPath, "html")
		if err != nil {
			return nil, err
		}
		files = append(files, FileToConvert{InputPath: inputPath, OutputPath: outputPath})
	}

	return files, nil
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > config.MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, config.MaxWorkers)
	}
	return nil
}
