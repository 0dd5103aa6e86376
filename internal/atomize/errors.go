// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package atomize

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by AtomizeNotes. Callers match them with
// errors.Is; malformed blocks and duplicate names come from the split and
// naming packages.
var (
	// ErrRead is returned when the input file cannot be read.
	ErrRead = errors.New("reading input")

	// ErrNotFound is returned when the input file does not exist. It also
	// matches ErrRead.
	ErrNotFound = fmt.Errorf("input not found: %w", ErrRead)

	// ErrDirectoryCreation is returned when the output directory cannot be
	// created or is not a directory.
	ErrDirectoryCreation = errors.New("creating output directory")

	// ErrFileExists is returned when a target file exists and overwriting is
	// not allowed.
	ErrFileExists = errors.New("output file already exists")
)
