package main

import (
	"github.com/spf13/cobra"

	"github.com/jackzampolin/gloss/internal/api"
	"github.com/jackzampolin/gloss/internal/glossary"
)

var (
	combineOut     string
	combineExclude []string
)

// combineResult is the structured output of a combine run.
type combineResult struct {
	Output string   `json:"output" yaml:"output"`
	Files  []string `json:"files" yaml:"files"`
}

var combineCmd = &cobra.Command{
	Use:   "combine [dir]",
	Short: "Combine glossary files into one",
	Long: `Combine the glossary .txt files in a directory into a single file,
with a separator line between sources. Defaults to the glossaries
directory under the gloss home.

Examples:
  gloss combine
  gloss combine ./glossaries --out all_terms.txt
  gloss combine --exclude draft.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := openHome()
		if err != nil {
			return err
		}

		dir := h.GlossaryPath()
		if len(args) == 1 {
			dir = args[0]
		}
		out := combineOut
		if out == "" {
			out = h.CombinedGlossaryPath()
		}

		exclude := make(map[string]struct{}, len(combineExclude))
		for _, name := range combineExclude {
			exclude[name] = struct{}{}
		}

		files, err := glossary.CombineDir(dir, out, exclude, newLogger())
		if err != nil {
			return err
		}

		return api.Output(combineResult{Output: out, Files: files})
	},
}

func init() {
	combineCmd.Flags().StringVar(&combineOut, "out", "", "combined output path (default: <home>/glossaries/combined_glossary.txt)")
	combineCmd.Flags().StringSliceVar(&combineExclude, "exclude", nil, "file names to leave out of the combined output")

	rootCmd.AddCommand(combineCmd)
}
