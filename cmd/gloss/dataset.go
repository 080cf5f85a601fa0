package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/gloss/internal/api"
	"github.com/jackzampolin/gloss/internal/dataset"
	"github.com/jackzampolin/gloss/internal/glossary"
)

var (
	datasetSampleSize int
	datasetSeed       int64
	datasetOut        string
)

// datasetResult is the structured output of a dataset run.
type datasetResult struct {
	Input         string `json:"input" yaml:"input"`
	Output        string `json:"output" yaml:"output"`
	Terms         int    `json:"terms" yaml:"terms"`
	Conversations int    `json:"conversations" yaml:"conversations"`
}

var datasetCmd = &cobra.Command{
	Use:   "dataset [glossary-file]",
	Short: "Generate conversational training data from a glossary",
	Long: `Generate a conversational training dataset from a glossary file.
Defaults to the combined glossary under the gloss home.

Each sampled term produces a starter and a follow-up conversation;
greetings and term-comparison conversations are mixed in
proportionally. The seed makes runs reproducible.

Examples:
  gloss dataset
  gloss dataset glossaries/guide.txt --sample-size 50
  gloss dataset --seed 7 --out my_training_data.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		h, err := openHome()
		if err != nil {
			return err
		}

		if !cmd.Flags().Changed("sample-size") {
			datasetSampleSize = cfg.Dataset.SampleSize
		}
		if !cmd.Flags().Changed("seed") {
			datasetSeed = cfg.Dataset.Seed
		}
		if !cmd.Flags().Changed("out") {
			datasetOut = cfg.Dataset.Output
		}

		input := h.CombinedGlossaryPath()
		if len(args) == 1 {
			input = args[0]
		}
		pairs, err := glossary.ParseFile(input)
		if err != nil {
			return err
		}

		gen := dataset.NewGenerator(datasetSeed, newLogger())
		convs := gen.Generate(pairs, datasetSampleSize)

		// Bare file names land in the home datasets directory.
		out := datasetOut
		if out == "" {
			out = "finance_training_data.json"
		}
		if !strings.ContainsAny(out, `/\`) {
			out = h.DatasetFile(out)
		}
		if err := dataset.WriteFile(out, convs); err != nil {
			return err
		}

		return api.Output(datasetResult{
			Input:         input,
			Output:        out,
			Terms:         len(pairs),
			Conversations: len(convs),
		})
	},
}

func init() {
	datasetCmd.Flags().IntVar(&datasetSampleSize, "sample-size", 0, "number of terms to sample (0 = all)")
	datasetCmd.Flags().Int64Var(&datasetSeed, "seed", 42, "random seed for reproducible output")
	datasetCmd.Flags().StringVar(&datasetOut, "out", "finance_training_data.json", "dataset output path; bare names go under <home>/datasets")

	rootCmd.AddCommand(datasetCmd)
}
