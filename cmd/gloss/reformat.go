package main

import (
	"github.com/spf13/cobra"

	"github.com/jackzampolin/gloss/internal/api"
	"github.com/jackzampolin/gloss/internal/glossary"
)

var reformatOut string

// reformatResult is the structured output of a reformat run.
type reformatResult struct {
	Input  string `json:"input" yaml:"input"`
	Output string `json:"output" yaml:"output"`
	Before int    `json:"before" yaml:"before"`
	After  int    `json:"after" yaml:"after"`
}

var reformatCmd = &cobra.Command{
	Use:   "reformat <glossary-file>",
	Short: "Repair a glossary file's segmentation",
	Long: `Re-segment a glossary file: fold continuation fragments back into the
previous definition, split definitions that swallowed the next term,
and drop duplicate terms.

Examples:
  gloss reformat glossaries/guide.txt
  gloss reformat guide.txt --out guide_fixed.txt`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pairs, err := glossary.ParseFile(args[0])
		if err != nil {
			return err
		}

		fixed := glossary.Dedup(glossary.Reformat(pairs))

		out := reformatOut
		if out == "" {
			out = args[0]
		}
		if err := glossary.WriteFile(out, fixed); err != nil {
			return err
		}

		return api.Output(reformatResult{
			Input:  args[0],
			Output: out,
			Before: len(pairs),
			After:  len(fixed),
		})
	},
}

func init() {
	reformatCmd.Flags().StringVar(&reformatOut, "out", "", "output path (default: rewrite the input file)")

	rootCmd.AddCommand(reformatCmd)
}
