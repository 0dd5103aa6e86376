// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"strings"
)

// Format selects the delimiter rule used to cut the input into blocks.
type Format string

const (
	// FormatHeading starts a block at a markdown ATX heading of a fixed level.
	FormatHeading Format = "heading"
	// FormatLog starts a block at a "YYYY-MM-DD HH:MM:SS - " log line.
	FormatLog Format = "log"
)

// PreamblePolicy decides what happens to content before the first delimiter.
type PreamblePolicy string

const (
	// PreambleKeep emits non-blank leading content as an implicit block.
	PreambleKeep PreamblePolicy = "keep"
	// PreambleDrop discards leading content.
	PreambleDrop PreamblePolicy = "drop"
)

// CollisionPolicy decides how two blocks deriving the same file name are
// resolved.
type CollisionPolicy string

const (
	// CollisionSuffix appends _2, _3, ... in document order.
	CollisionSuffix CollisionPolicy = "suffix"
	// CollisionError fails on the first duplicate name.
	CollisionError CollisionPolicy = "error"
)

// EmptyTitlePolicy decides how a block without a usable title is named.
type EmptyTitlePolicy string

const (
	// EmptyTitleIndex names the block note_<index>.
	EmptyTitleIndex EmptyTitlePolicy = "index"
	// EmptyTitleError fails with a malformed block error.
	EmptyTitleError EmptyTitlePolicy = "error"
)

const (
	// DefaultHeadingLevel is the heading depth that delimits blocks.
	DefaultHeadingLevel = 1
	// DefaultExtension is appended to every derived file name.
	DefaultExtension = ".md"
)

// SplitConfig holds settings for the splitting stage.
type SplitConfig struct {
	// Format selects the delimiter rule: heading or log.
	Format Format `json:"format" yaml:"format"`

	// HeadingLevel is the number of '#' characters a delimiter line starts
	// with (default 1). Only used by the heading format.
	HeadingLevel int `json:"heading_level" yaml:"heading_level"`

	// Preamble selects what happens to content before the first delimiter.
	Preamble PreamblePolicy `json:"preamble" yaml:"preamble"`
}

// NamingConfig holds settings for the file naming stage.
type NamingConfig struct {
	// Extension is appended to each slug (default ".md").
	Extension string `json:"extension" yaml:"extension"`

	// Collision selects the duplicate name policy: suffix or error.
	Collision CollisionPolicy `json:"collision" yaml:"collision"`

	// EmptyTitle selects the empty title policy: index or error.
	EmptyTitle EmptyTitlePolicy `json:"empty_title" yaml:"empty_title"`
}

// AtomizeConfig groups the settings of one atomize run.
type AtomizeConfig struct {
	SplitConfig  `yaml:",inline"`
	NamingConfig `yaml:",inline"`

	// OverwriteOK allows existing output files to be replaced. When false
	// the run refuses to write if any target already exists.
	OverwriteOK bool `json:"overwrite_ok" yaml:"overwrite_ok"`

	// Frontmatter prepends a YAML frontmatter block to every output file.
	Frontmatter bool `json:"frontmatter" yaml:"frontmatter"`
}

// WithDefaults returns a copy of c with zero values replaced by defaults.
func (c AtomizeConfig) WithDefaults() AtomizeConfig {
	if c.Format == "" {
		c.Format = FormatHeading
	}
	if c.HeadingLevel == 0 {
		c.HeadingLevel = DefaultHeadingLevel
	}
	if c.Preamble == "" {
		c.Preamble = PreambleKeep
	}
	if c.Extension == "" {
		c.Extension = DefaultExtension
	}
	if c.Collision == "" {
		c.Collision = CollisionSuffix
	}
	if c.EmptyTitle == "" {
		c.EmptyTitle = EmptyTitleIndex
	}
	return c
}

// Validate reports the first setting that holds an unknown value.
func (c AtomizeConfig) Validate() error {
	switch c.Format {
	case FormatHeading, FormatLog:
	default:
		return fmt.Errorf("unknown format %q: want heading or log", c.Format)
	}
	if c.HeadingLevel < 1 || c.HeadingLevel > 6 {
		return fmt.Errorf("heading level %d out of range 1-6", c.HeadingLevel)
	}
	switch c.Preamble {
	case PreambleKeep, PreambleDrop:
	default:
		return fmt.Errorf("unknown preamble policy %q: want keep or drop", c.Preamble)
	}
	switch c.Collision {
	case CollisionSuffix, CollisionError:
	default:
		return fmt.Errorf("unknown collision policy %q: want suffix or error", c.Collision)
	}
	switch c.EmptyTitle {
	case EmptyTitleIndex, EmptyTitleError:
	default:
		return fmt.Errorf("unknown empty title policy %q: want index or error", c.EmptyTitle)
	}
	if c.Extension != "" && c.Extension[0] != '.' {
		return fmt.Errorf("extension %q must start with a dot", c.Extension)
	}
	if strings.ContainsAny(c.Extension, `/\`) || strings.Contains(c.Extension, "..") {
		return fmt.Errorf("extension %q must not contain path separators or \"..\"", c.Extension)
	}
	return nil
}
