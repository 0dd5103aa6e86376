// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// PreambleTitle is the title given to the implicit block that holds content
// found before the first delimiter.
const PreambleTitle = "preamble"

// Block is one note cut out of the input document. Blocks are produced in
// document order and carry no identity beyond their position and title.
type Block struct {
	// Index is the 1-based position of the block in document order. The
	// implicit preamble block, when kept, is index 1.
	Index int `json:"index" yaml:"index"`

	// Title is the whitespace-trimmed text taken from the delimiter line.
	// It may be empty; the naming stage decides what that means.
	Title string `json:"title" yaml:"title"`

	// Body holds every byte after the delimiter line up to the next
	// delimiter line or the end of the document.
	Body string `json:"body" yaml:"body"`

	// Preamble is true for the implicit block built from content preceding
	// the first delimiter.
	Preamble bool `json:"preamble,omitempty" yaml:"preamble,omitempty"`

	// Created is the timestamp carried by the delimiter line in log format.
	// Zero for heading format.
	Created time.Time `json:"created,omitempty" yaml:"created,omitempty"`

	// Tags lists the sorted, de-duplicated tags parsed from a log entry.
	Tags []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// OutputFile pairs a derived file name and its rendered content with the
// block it came from.
type OutputFile struct {
	// Name is the derived file name including its extension.
	Name string `json:"name" yaml:"name"`

	// Path is Name joined onto the output directory.
	Path string `json:"path" yaml:"path"`

	// Content is the exact text written to Path.
	Content string `json:"content" yaml:"content"`

	// Block is the source block.
	Block Block `json:"block" yaml:"block"`
}
