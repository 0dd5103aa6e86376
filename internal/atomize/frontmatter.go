// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package atomize

import (
	"fmt"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/note-atomizer/pkg/types"
)

// frontmatter is the YAML header written above a note body.
type frontmatter struct {
	Title   string   `yaml:"title"`
	Source  string   `yaml:"source,omitempty"`
	Created string   `yaml:"created,omitempty"`
	Tags    []string `yaml:"tags,omitempty"`
}

// addFrontmatter prepends YAML frontmatter describing b to body. Only values
// derived from the input are written so repeated runs match.
func addFrontmatter(b types.Block, body, source string) (string, error) {
	fm := frontmatter{
		Title:  b.Title,
		Source: source,
		Tags:   b.Tags,
	}
	if !b.Created.IsZero() {
		fm.Created = b.Created.Format(time.RFC3339)
	}

	data, err := yaml.Marshal(fm)
	if err != nil {
		return "", fmt.Errorf("encoding frontmatter for %q: %w", b.Title, err)
	}

	var sb strings.Builder
	sb.WriteString("---\n")
	sb.Write(data)
	sb.WriteString("---\n\n")
	sb.WriteString(body)
	return sb.String(), nil
}

// addTitleHeading starts the body of a log entry with its title as a level
// one heading. The log line that carried the title is not part of the body,
// so without it the title would only survive in the file name.
func addTitleHeading(b types.Block) string {
	if b.Preamble || b.Title == "" {
		return b.Body
	}
	heading := "# " + b.Title + "\n"
	if b.Body == "" {
		return heading
	}
	return heading + "\n" + b.Body
}
