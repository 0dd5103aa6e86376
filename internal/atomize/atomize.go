// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package atomize splits one flat notes file into a directory of single-note
// files. A run reads the whole input, cuts it into blocks, derives a file
// name per block and writes the blocks in document order.
package atomize

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pdiddy/note-atomizer/internal/naming"
	"github.com/pdiddy/note-atomizer/internal/split"
	"github.com/pdiddy/note-atomizer/pkg/types"
)

// Result holds the outcome of an atomize run.
type Result struct {
	// Written lists the output paths in document order.
	Written []string
}

// Total returns the number of files written.
func (r Result) Total() int {
	return len(r.Written)
}

// AtomizeNotes splits the file at inPath into one file per note block under
// outDir. cfg.OverwriteOK decides whether existing files may be replaced.
// Progress lines are printed to w. The run stops at the first error; files
// already written stay in place.
func AtomizeNotes(ctx context.Context, inPath, outDir string, cfg types.AtomizeConfig, w io.Writer) (Result, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	content, err := ReadInput(inPath)
	if err != nil {
		return Result{}, err
	}

	files, err := Plan(content, inPath, outDir, cfg)
	if err != nil {
		return Result{}, err
	}

	written, err := Write(ctx, files, outDir, cfg.OverwriteOK, w)
	result := Result{Written: written}
	if err != nil {
		return result, err
	}

	fmt.Fprintf(w, "\nAtomize summary: %d note(s) written to %s\n", result.Total(), outDir)
	return result, nil
}

// ReadInput reads the whole input file. A missing file yields ErrNotFound;
// any other failure yields ErrRead.
func ReadInput(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	return data, nil
}

// Plan runs the split and naming stages and renders every output file
// without touching the filesystem. source is recorded in frontmatter. Log
// entries get their title back as a leading heading.
func Plan(content []byte, source, outDir string, cfg types.AtomizeConfig) ([]types.OutputFile, error) {
	cfg = cfg.WithDefaults()

	blocks, err := split.Split(content, cfg.SplitConfig)
	if err != nil {
		return nil, fmt.Errorf("splitting %s: %w", source, err)
	}
	slog.Debug("split input", "source", source, "format", cfg.Format, "blocks", len(blocks))

	names, err := naming.Derive(blocks, cfg.NamingConfig)
	if err != nil {
		return nil, fmt.Errorf("naming notes from %s: %w", source, err)
	}

	files := make([]types.OutputFile, len(blocks))
	for i, b := range blocks {
		text := b.Body
		if cfg.Format == types.FormatLog {
			text = addTitleHeading(b)
		}
		if cfg.Frontmatter {
			text, err = addFrontmatter(b, text, source)
			if err != nil {
				return nil, err
			}
		}
		files[i] = types.OutputFile{
			Name:    names[i],
			Path:    filepath.Join(outDir, names[i]),
			Content: text,
			Block:   b,
		}
		slog.Debug("planned note", "index", b.Index, "title", b.Title, "name", names[i])
	}
	return files, nil
}
