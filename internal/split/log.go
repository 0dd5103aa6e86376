// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package split

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"
)

// logTimeLayout is the timestamp layout that opens a log entry.
const logTimeLayout = "2006-01-02 15:04:05"

// logLinePattern matches "YYYY-MM-DD HH:MM:SS - rest".
var logLinePattern = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}) - (.*)$`)

// tagsPattern matches a trailing "tags: [a, b]" list.
var tagsPattern = regexp.MustCompile(`[ \t]*\btags:[ \t]*\[([^\]\n]*)\][ \t]*$`)

// logDelimiters returns one delimiter per log entry line. A trailing tag list
// is cut off the line first; the title is then the first sentence after the
// separator and the rest of the line opens the body.
func logDelimiters(content []byte) ([]delimiter, error) {
	var delims []delimiter
	for _, ln := range splitLines(content) {
		m := logLinePattern.FindStringSubmatch(ln.text)
		if m == nil {
			continue
		}
		created, err := time.Parse(logTimeLayout, m[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: timestamp %q: %w", ln.num, m[1], ErrMalformedBlock)
		}

		entry := m[2]
		var tags []string
		if loc := tagsPattern.FindStringSubmatchIndex(entry); loc != nil {
			tags, err = parseTags(entry[loc[2]:loc[3]])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", ln.num, err)
			}
			entry = entry[:loc[0]]
		}

		title, rest := cutTitle(entry)
		var lead string
		if rest != "" {
			lead = rest + ln.eol
		}
		delims = append(delims, delimiter{
			start:   ln.start,
			end:     ln.end,
			title:   title,
			lead:    lead,
			created: created,
			tags:    tags,
		})
	}
	return delims, nil
}

// cutTitle splits an entry into its title sentence and the remaining text. A
// question keeps its '?'; a full stop is dropped. Without either the whole
// entry is the title.
func cutTitle(entry string) (title, rest string) {
	i := strings.IndexAny(entry, ".?")
	if i < 0 {
		return strings.TrimSpace(entry), ""
	}
	title = entry[:i]
	if entry[i] == '?' {
		title = entry[:i+1]
	}
	return strings.TrimSpace(title), strings.TrimSpace(entry[i+1:])
}

// extractTags strips a trailing "tags: [...]" list from the last non-blank
// line of body and returns the cleaned body and the sorted unique tags.
func extractTags(body string) (string, []string, error) {
	trimmed := strings.TrimRight(body, " \t\r\n")
	loc := tagsPattern.FindStringSubmatchIndex(trimmed)
	if loc == nil {
		return body, nil, nil
	}

	tags, err := parseTags(trimmed[loc[2]:loc[3]])
	if err != nil {
		return "", nil, err
	}

	head := trimmed[:loc[0]]
	if strings.TrimSpace(lastLine(head)) == "" {
		// The tag list sat on its own line.
		head = strings.TrimRight(head, " \t\r\n")
	}
	if head == "" {
		return "", tags, nil
	}
	return head + body[len(trimmed):], tags, nil
}

// lastLine returns the text after the final newline in s.
func lastLine(s string) string {
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return s[i+1:]
	}
	return s
}

// parseTags splits a comma separated tag list into sorted unique tags. Empty
// entries are skipped; a tag holding whitespace is malformed.
func parseTags(list string) ([]string, error) {
	var tags []string
	for _, raw := range strings.Split(list, ",") {
		tag := strings.TrimSpace(raw)
		if tag == "" {
			continue
		}
		if strings.ContainsAny(tag, " \t") {
			return nil, fmt.Errorf("tag %q contains whitespace: %w", tag, ErrMalformedBlock)
		}
		tags = append(tags, tag)
	}
	return mergeTags(tags), nil
}

// mergeTags returns the sorted union of the given tag lists.
func mergeTags(lists ...[]string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, list := range lists {
		for _, tag := range list {
			if !seen[tag] {
				seen[tag] = true
				out = append(out, tag)
			}
		}
	}
	sort.Strings(out)
	return out
}
