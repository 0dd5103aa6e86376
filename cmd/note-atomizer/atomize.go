// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/note-atomizer/internal/atomize"
	"github.com/pdiddy/note-atomizer/pkg/types"
)

var atomizeCmd = &cobra.Command{
	Use:   "atomize <in-path> <out-dir>",
	Short: "Write each note of a flat notes file to its own file",
	Long: `Atomize reads the notes file at in-path, splits it into note blocks and
writes every block to out-dir, which is created when missing.

Existing files are never replaced unless --overwrite is set; otherwise the
run aborts before writing anything. Content before the first delimiter becomes
preamble.md unless --preamble=drop. Duplicate titles get _2, _3 suffixes
unless --collision=error.

Every flag can also be set in the config file or through NOTE_ATOMIZER_*
environment variables (e.g. NOTE_ATOMIZER_OVERWRITE_OK=true).`,
	Args: cobra.ExactArgs(2),
	RunE: runAtomize,
}

// flagKeys maps command flags to their viper config keys.
var flagKeys = map[string]string{
	"format":      "format",
	"level":       "heading_level",
	"preamble":    "preamble",
	"ext":         "extension",
	"collision":   "collision",
	"empty-title": "empty_title",
	"overwrite":   "overwrite_ok",
	"frontmatter": "frontmatter",
}

func init() {
	atomizeCmd.Flags().String("format", string(types.FormatHeading), "delimiter rule: heading or log")
	atomizeCmd.Flags().Int("level", types.DefaultHeadingLevel, "heading level that starts a note (heading format)")
	atomizeCmd.Flags().String("preamble", string(types.PreambleKeep), "content before the first note: keep or drop")
	atomizeCmd.Flags().String("ext", types.DefaultExtension, "extension appended to output file names")
	atomizeCmd.Flags().String("collision", string(types.CollisionSuffix), "duplicate file names: suffix or error")
	atomizeCmd.Flags().String("empty-title", string(types.EmptyTitleIndex), "notes without a title: index or error")
	atomizeCmd.Flags().Bool("overwrite", false, "replace existing output files")
	atomizeCmd.Flags().Bool("frontmatter", false, "prepend YAML frontmatter to each note")
	atomizeCmd.Flags().Bool("dry-run", false, "print the files that would be written without writing them")

	for flag, key := range flagKeys {
		if err := viper.BindPFlag(key, atomizeCmd.Flags().Lookup(flag)); err != nil {
			panic(err)
		}
	}

	rootCmd.AddCommand(atomizeCmd)
}

func runAtomize(cmd *cobra.Command, args []string) error {
	inPath, outDir := args[0], args[1]
	cfg := atomizeConfig(viper.GetViper())

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	if dryRun {
		return planAtomize(cmd, inPath, outDir, cfg)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	result, err := atomize.AtomizeNotes(ctx, inPath, outDir, cfg, cmd.OutOrStdout())
	if err != nil {
		if result.Total() > 0 {
			return fmt.Errorf("%d note(s) written before failure: %w", result.Total(), err)
		}
		return err
	}
	return nil
}

// planAtomize prints the files a run would write and whether each exists.
func planAtomize(cmd *cobra.Command, inPath, outDir string, cfg types.AtomizeConfig) error {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}
	content, err := atomize.ReadInput(inPath)
	if err != nil {
		return err
	}
	files, err := atomize.Plan(content, inPath, outDir, cfg)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for _, f := range files {
		status := "new"
		if _, err := os.Stat(f.Path); err == nil {
			status = "exists"
		}
		fmt.Fprintf(w, "%-6s  %s  (%d bytes)\n", status, f.Path, len(f.Content))
	}
	fmt.Fprintf(w, "\n%d note(s) planned\n", len(files))
	return nil
}

// atomizeConfig assembles the run configuration from flags, environment and
// config file, in that order of precedence.
func atomizeConfig(v *viper.Viper) types.AtomizeConfig {
	return types.AtomizeConfig{
		SplitConfig: types.SplitConfig{
			Format:       types.Format(v.GetString("format")),
			HeadingLevel: v.GetInt("heading_level"),
			Preamble:     types.PreamblePolicy(v.GetString("preamble")),
		},
		NamingConfig: types.NamingConfig{
			Extension:  v.GetString("extension"),
			Collision:  types.CollisionPolicy(v.GetString("collision")),
			EmptyTitle: types.EmptyTitlePolicy(v.GetString("empty_title")),
		},
		OverwriteOK: v.GetBool("overwrite_ok"),
		Frontmatter: v.GetBool("frontmatter"),
	}
}
