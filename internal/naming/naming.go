// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package naming derives filesystem-safe file names from note block titles
// and resolves collisions between them.
package naming

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/pdiddy/note-atomizer/internal/split"
	"github.com/pdiddy/note-atomizer/pkg/types"
)

// maxSlugRunes caps slug length well below common file name limits.
const maxSlugRunes = 100

// ErrDuplicateName is returned under the strict collision policy when two
// blocks derive the same file name.
var ErrDuplicateName = errors.New("duplicate note name")

// Slug turns a title into a file name stem: lower-cased, trailing punctuation
// dropped, whitespace runs joined with '_', and every rune other than
// letters, digits, '_', '-' and '.' removed. The result may be empty.
func Slug(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = strings.TrimRight(s, "?,. \t")

	var b strings.Builder
	pendingSep := false
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			pendingSep = b.Len() > 0
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '_', r == '-', r == '.':
			if pendingSep {
				b.WriteByte('_')
				pendingSep = false
			}
			b.WriteRune(r)
		}
	}

	out := strings.Trim(b.String(), "._-")
	if runes := []rune(out); len(runes) > maxSlugRunes {
		out = strings.TrimRight(string(runes[:maxSlugRunes]), "._-")
	}
	return out
}

// Derive returns one file name per block, in block order. Names are
// deterministic for a given block sequence and configuration.
func Derive(blocks []types.Block, cfg types.NamingConfig) ([]string, error) {
	ext := cfg.Extension
	if ext == "" {
		ext = types.DefaultExtension
	}

	names := make([]string, len(blocks))
	owner := make(map[string]int, len(blocks))
	for i, b := range blocks {
		stem := Slug(b.Title)
		if stem == "" {
			if cfg.EmptyTitle == types.EmptyTitleError {
				return nil, fmt.Errorf("block %d has no usable title %q: %w", b.Index, b.Title, split.ErrMalformedBlock)
			}
			stem = fmt.Sprintf("note_%d", b.Index)
		}

		name := stem + ext
		if first, taken := owner[name]; taken {
			if cfg.Collision == types.CollisionError {
				return nil, fmt.Errorf("%s: blocks %d and %d: %w", name, first, b.Index, ErrDuplicateName)
			}
			for n := 2; ; n++ {
				name = fmt.Sprintf("%s_%d%s", stem, n, ext)
				if _, taken := owner[name]; !taken {
					break
				}
			}
		}
		owner[name] = b.Index
		names[i] = name
	}
	return names, nil
}
