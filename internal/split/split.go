// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package split cuts a flat notes document into ordered note blocks.
//
// Two delimiter rules are supported: markdown ATX headings of a fixed level,
// and timestamped log lines ("2024-01-02 15:04:05 - Title. text"). Content
// before the first delimiter is kept as an implicit preamble block or dropped,
// depending on the configured policy.
package split

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pdiddy/note-atomizer/pkg/types"
)

// ErrMalformedBlock is returned when a delimiter line cannot be turned into a
// block: an unparseable log timestamp, a tag containing whitespace, or (from
// the naming stage) a block with no usable title under the strict policy.
var ErrMalformedBlock = errors.New("malformed block")

// delimiter marks one block start. start and end are the byte offsets of the
// delimiter line, end including its line terminator.
type delimiter struct {
	start, end int
	title      string
	lead       string
	created    time.Time
	tags       []string
}

// line is one line of the document. text excludes the terminator.
type line struct {
	start, end int
	num        int
	text       string
	eol        string
}

// Split returns the blocks of content in document order. Empty content yields
// no blocks. cfg zero values fall back to the heading format at level 1 with
// the preamble kept.
func Split(content []byte, cfg types.SplitConfig) ([]types.Block, error) {
	if len(content) == 0 {
		return nil, nil
	}

	format := cfg.Format
	if format == "" {
		format = types.FormatHeading
	}
	level := cfg.HeadingLevel
	if level == 0 {
		level = types.DefaultHeadingLevel
	}

	var delims []delimiter
	var err error
	switch format {
	case types.FormatHeading:
		delims = headingDelimiters(content, level)
	case types.FormatLog:
		delims, err = logDelimiters(content)
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return nil, err
	}

	blocks := assemble(content, delims, cfg.Preamble)

	if format == types.FormatLog {
		for i := range blocks {
			if blocks[i].Preamble {
				continue
			}
			body, tags, err := extractTags(blocks[i].Body)
			if err != nil {
				return nil, fmt.Errorf("block %d (%q): %w", blocks[i].Index, blocks[i].Title, err)
			}
			blocks[i].Body = body
			blocks[i].Tags = mergeTags(blocks[i].Tags, tags)
		}
	}
	return blocks, nil
}

// assemble turns delimiter positions into blocks. Each body runs from the end
// of its delimiter line to the start of the next one.
func assemble(content []byte, delims []delimiter, policy types.PreamblePolicy) []types.Block {
	var blocks []types.Block

	preambleEnd := len(content)
	if len(delims) > 0 {
		preambleEnd = delims[0].start
	}
	preamble := string(content[:preambleEnd])
	if policy != types.PreambleDrop && strings.TrimSpace(preamble) != "" {
		blocks = append(blocks, types.Block{
			Index:    1,
			Title:    types.PreambleTitle,
			Body:     preamble,
			Preamble: true,
		})
	}

	for i, d := range delims {
		bodyEnd := len(content)
		if i+1 < len(delims) {
			bodyEnd = delims[i+1].start
		}
		blocks = append(blocks, types.Block{
			Index:   len(blocks) + 1,
			Title:   d.title,
			Body:    d.lead + string(content[d.end:bodyEnd]),
			Created: d.created,
			Tags:    d.tags,
		})
	}
	return blocks
}

// splitLines breaks content into lines, keeping track of byte offsets and
// each line's terminator so bodies can be sliced out unchanged.
func splitLines(content []byte) []line {
	var lines []line
	start := 0
	for start < len(content) {
		end := start
		for end < len(content) && content[end] != '\n' {
			end++
		}
		textEnd := end
		if end < len(content) {
			end++ // include '\n'
		}
		if textEnd > start && content[textEnd-1] == '\r' {
			textEnd--
		}
		lines = append(lines, line{
			start: start,
			end:   end,
			num:   len(lines) + 1,
			text:  string(content[start:textEnd]),
			eol:   string(content[textEnd:end]),
		})
		start = end
	}
	return lines
}
