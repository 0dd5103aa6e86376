// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package split

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/note-atomizer/pkg/types"
)

func TestSplitHeading(t *testing.T) {
	type want struct {
		title    string
		body     string
		preamble bool
	}
	tests := []struct {
		name    string
		content string
		cfg     types.SplitConfig
		want    []want
	}{
		{
			name:    "empty input",
			content: "",
			want:    nil,
		},
		{
			name:    "two blocks",
			content: "# Alpha\nhello\n# Beta\nworld\n",
			want: []want{
				{title: "Alpha", body: "hello\n"},
				{title: "Beta", body: "world\n"},
			},
		},
		{
			name:    "preamble kept",
			content: "scratch\n\n# Alpha\nhello\n",
			want: []want{
				{title: "preamble", body: "scratch\n\n", preamble: true},
				{title: "Alpha", body: "hello\n"},
			},
		},
		{
			name:    "preamble dropped",
			content: "scratch\n# Alpha\nhello\n",
			cfg:     types.SplitConfig{Preamble: types.PreambleDrop},
			want: []want{
				{title: "Alpha", body: "hello\n"},
			},
		},
		{
			name:    "blank preamble discarded",
			content: "\n  \n# Alpha\nhello\n",
			want: []want{
				{title: "Alpha", body: "hello\n"},
			},
		},
		{
			name:    "no delimiters keeps one implicit block",
			content: "just some text\n",
			want: []want{
				{title: "preamble", body: "just some text\n", preamble: true},
			},
		},
		{
			name:    "no delimiters with drop yields nothing",
			content: "just some text\n",
			cfg:     types.SplitConfig{Preamble: types.PreambleDrop},
			want:    nil,
		},
		{
			name:    "deeper headings stay in body",
			content: "# Alpha\n## Sub\ntext\n#hashtag\n",
			want: []want{
				{title: "Alpha", body: "## Sub\ntext\n#hashtag\n"},
			},
		},
		{
			name:    "level two delimiters",
			content: "# Doc\n## One\na\n## Two\nb\n",
			cfg:     types.SplitConfig{HeadingLevel: 2, Preamble: types.PreambleDrop},
			want: []want{
				{title: "One", body: "a\n"},
				{title: "Two", body: "b\n"},
			},
		},
		{
			name:    "heading inside fenced code is not a delimiter",
			content: "# Setup\n```sh\n# install deps\nmake\n```\n# Next\ndone\n",
			want: []want{
				{title: "Setup", body: "```sh\n# install deps\nmake\n```\n"},
				{title: "Next", body: "done\n"},
			},
		},
		{
			name:    "empty title kept",
			content: "#\nbody\n#   \nmore\n",
			want: []want{
				{title: "", body: "body\n"},
				{title: "", body: "more\n"},
			},
		},
		{
			name:    "title trimmed and closing hashes dropped",
			content: "#   Alpha  ##  \nx\n# C#\ny\n",
			want: []want{
				{title: "Alpha", body: "x\n"},
				{title: "C#", body: "y\n"},
			},
		},
		{
			name:    "crlf line endings preserved",
			content: "# Alpha\r\nhello\r\n# Beta\r\nworld\r\n",
			want: []want{
				{title: "Alpha", body: "hello\r\n"},
				{title: "Beta", body: "world\r\n"},
			},
		},
		{
			name:    "last block without trailing newline",
			content: "# Alpha\nhello",
			want: []want{
				{title: "Alpha", body: "hello"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocks, err := Split([]byte(tt.content), tt.cfg)
			require.NoError(t, err)
			require.Len(t, blocks, len(tt.want))
			for i, w := range tt.want {
				assert.Equal(t, i+1, blocks[i].Index)
				assert.Equal(t, w.title, blocks[i].Title)
				assert.Equal(t, w.body, blocks[i].Body)
				assert.Equal(t, w.preamble, blocks[i].Preamble)
			}
		})
	}
}

func TestSplitHeadingLossless(t *testing.T) {
	content := "intro line\n\n# One\nfirst\n\n## detail\n# Two\n```\n# not a heading\n```\n# Three\nlast"
	blocks, err := Split([]byte(content), types.SplitConfig{})
	require.NoError(t, err)
	require.Len(t, blocks, 4)

	var b strings.Builder
	for _, blk := range blocks {
		if !blk.Preamble {
			b.WriteString("# " + blk.Title + "\n")
		}
		b.WriteString(blk.Body)
	}
	assert.Equal(t, content, b.String())
}

func TestSplitUnknownFormat(t *testing.T) {
	_, err := Split([]byte("x"), types.SplitConfig{Format: "rst"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestSplitLog(t *testing.T) {
	content := "2023-04-01 10:11:12 - Buffer choice. Phosphate works best. tags: [hplc, buffer, hplc]\n\n" +
		"2023-04-02 08:00:00 - Why does the baseline drift? Temperature.\nsecond line\ntags: [uv]\n\n" +
		"2023-04-03 09:30:00 - Plain entry\n"

	blocks, err := Split([]byte(content), types.SplitConfig{Format: types.FormatLog})
	require.NoError(t, err)
	require.Len(t, blocks, 3)

	assert.Equal(t, "Buffer choice", blocks[0].Title)
	assert.Equal(t, "Phosphate works best.\n\n", blocks[0].Body)
	assert.Equal(t, []string{"buffer", "hplc"}, blocks[0].Tags)
	assert.Equal(t, time.Date(2023, 4, 1, 10, 11, 12, 0, time.UTC), blocks[0].Created)

	assert.Equal(t, "Why does the baseline drift?", blocks[1].Title)
	assert.Equal(t, "Temperature.\nsecond line\n\n", blocks[1].Body)
	assert.Equal(t, []string{"uv"}, blocks[1].Tags)

	assert.Equal(t, "Plain entry", blocks[2].Title)
	assert.Equal(t, "", blocks[2].Body)
	assert.Empty(t, blocks[2].Tags)
}

func TestSplitLogTags(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantTitle string
		wantBody  string
		wantTags  []string
	}{
		{
			name:      "tags after a title without terminator",
			content:   "2023-04-01 10:11:12 - Fix the pump tags: [hplc]\n",
			wantTitle: "Fix the pump",
			wantBody:  "",
			wantTags:  []string{"hplc"},
		},
		{
			name:      "tags on the entry line merged with tags ending the body",
			content:   "2023-04-01 10:11:12 - Seal kit tags: [pump, hplc]\nordered spares\ntags: [parts, pump]\n",
			wantTitle: "Seal kit",
			wantBody:  "ordered spares\n",
			wantTags:  []string{"hplc", "parts", "pump"},
		},
		{
			name:      "question title with tags",
			content:   "2023-04-01 10:11:12 - Why the drift? tags: [uv]\n",
			wantTitle: "Why the drift?",
			wantBody:  "",
			wantTags:  []string{"uv"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocks, err := Split([]byte(tt.content), types.SplitConfig{Format: types.FormatLog})
			require.NoError(t, err)
			require.Len(t, blocks, 1)
			assert.Equal(t, tt.wantTitle, blocks[0].Title)
			assert.Equal(t, tt.wantBody, blocks[0].Body)
			assert.Equal(t, tt.wantTags, blocks[0].Tags)
		})
	}
}

func TestSplitLogMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "impossible timestamp",
			content: "2023-13-40 10:11:12 - Bad date. text\n",
		},
		{
			name:    "tag with whitespace",
			content: "2023-04-01 10:11:12 - Title. text tags: [two words]\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Split([]byte(tt.content), types.SplitConfig{Format: types.FormatLog})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedBlock)
		})
	}
}

func TestCutTitle(t *testing.T) {
	tests := []struct {
		entry     string
		wantTitle string
		wantRest  string
	}{
		{"Title. body text", "Title", "body text"},
		{"Is it? yes", "Is it?", "yes"},
		{"No terminator", "No terminator", ""},
		{"Ends here.", "Ends here", ""},
	}
	for _, tt := range tests {
		t.Run(tt.entry, func(t *testing.T) {
			title, rest := cutTitle(tt.entry)
			assert.Equal(t, tt.wantTitle, title)
			assert.Equal(t, tt.wantRest, rest)
		})
	}
}

func ExampleSplit() {
	content := `# Subtopic 1

Subtopic description.

# Subtopic 2

Subtopic description.
`

	blocks, err := Split([]byte(content), types.SplitConfig{})
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, b := range blocks {
		fmt.Printf("%d %s: %q\n", b.Index, b.Title, b.Body)
	}

	// Output:
	// 1 Subtopic 1: "\nSubtopic description.\n\n"
	// 2 Subtopic 2: "\nSubtopic description.\n"
}
