// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package atomize

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/pdiddy/note-atomizer/pkg/types"
)

// Write creates outDir if needed and writes every file into it in order,
// printing one status line per file to w. It returns the paths written.
//
// When overwriteOK is false every target is checked before anything is
// written, and the first existing one aborts the run with ErrFileExists.
// Files are still opened exclusively, so a target that appears after the
// check is left untouched. A failure after the first write leaves earlier
// files in place.
func Write(ctx context.Context, files []types.OutputFile, outDir string, overwriteOK bool, w io.Writer) ([]string, error) {
	if err := ensureDir(outDir); err != nil {
		return nil, err
	}

	if !overwriteOK {
		for _, f := range files {
			_, err := os.Lstat(f.Path)
			if err == nil {
				return nil, fmt.Errorf("%w: %s (set overwrite to replace it): %w", ErrFileExists, f.Path, fs.ErrExist)
			}
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("checking %s: %w", f.Path, err)
			}
		}
	}

	written := make([]string, 0, len(files))
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		if err := writeFile(f, overwriteOK); err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", f.Path, err)
			return written, err
		}
		fmt.Fprintf(w, "wrote:   %s\n", f.Path)
		written = append(written, f.Path)
	}
	return written, nil
}

// ensureDir creates dir and its parents. An existing non-directory at dir is
// an error.
func ensureDir(dir string) error {
	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrDirectoryCreation, dir)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %w", ErrDirectoryCreation, err)
	}
	return nil
}

// writeFile writes one output file. Without overwriteOK the file must not
// exist yet.
func writeFile(f types.OutputFile, overwriteOK bool) error {
	flags := os.O_WRONLY | os.O_CREATE
	if overwriteOK {
		flags |= os.O_TRUNC
	} else {
		flags |= os.O_EXCL
	}

	file, err := os.OpenFile(f.Path, flags, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %w", ErrFileExists, err)
		}
		return fmt.Errorf("opening %s: %w", f.Path, err)
	}

	if _, err := io.WriteString(file, f.Content); err != nil {
		file.Close()
		return fmt.Errorf("writing %s: %w", f.Path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", f.Path, err)
	}
	return nil
}
