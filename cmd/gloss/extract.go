package main

import (
	"github.com/spf13/cobra"

	"github.com/jackzampolin/gloss/internal/api"
	"github.com/jackzampolin/gloss/internal/glossary"
	"github.com/jackzampolin/gloss/internal/ingest"
)

var (
	extractLayout        string
	extractBackend       string
	extractSkipFirstPage bool
	extractSkipPages     []int
	extractSplitColumns  bool
	extractOut           string
)

// extractResult is the structured output of a successful extract run.
type extractResult struct {
	PDF       string `json:"pdf" yaml:"pdf"`
	Output    string `json:"output" yaml:"output"`
	Backend   string `json:"backend" yaml:"backend"`
	PageCount int    `json:"page_count" yaml:"page_count"`
	Terms     int    `json:"terms" yaml:"terms"`
}

var extractCmd = &cobra.Command{
	Use:   "extract <pdf-path-or-url>",
	Short: "Extract a glossary from a PDF",
	Long: `Extract term/definition pairs from a financial PDF guide.

The source can be a local file or an http(s) URL; downloads are cached
under the home directory. The layout flag selects the segmentation
strategy for the document's glossary pages.

Examples:
  gloss extract guide.pdf
  gloss extract guide.pdf --layout caprun --skip-first-page
  gloss extract https://example.com/glossary.pdf --layout twocolumn --split-columns
  gloss extract guide.pdf --skip-pages 1,2,-1 --out terms.txt`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		h, err := openHome()
		if err != nil {
			return err
		}

		// Config supplies defaults; explicit flags win.
		if !cmd.Flags().Changed("layout") {
			extractLayout = cfg.Extract.Layout
		}
		if !cmd.Flags().Changed("backend") {
			extractBackend = cfg.Extract.Backend
		}
		if !cmd.Flags().Changed("skip-first-page") {
			extractSkipFirstPage = cfg.Extract.SkipFirstPage
		}
		if !cmd.Flags().Changed("split-columns") {
			extractSplitColumns = cfg.Extract.SplitColumns
		}

		layout, err := glossary.ParseLayout(extractLayout)
		if err != nil {
			return err
		}

		res, err := ingest.Run(cmd.Context(), h, ingest.Request{
			Source:        args[0],
			Layout:        layout,
			Backend:       extractBackend,
			SkipFirstPage: extractSkipFirstPage,
			SkipPages:     extractSkipPages,
			SplitColumns:  extractSplitColumns,
			CleanPatterns: cfg.Extract.CleanPatterns,
			OutputPath:    extractOut,
			Logger:        newLogger(),
		})
		if err != nil {
			return err
		}

		return api.Output(extractResult{
			PDF:       res.PDFPath,
			Output:    res.OutputPath,
			Backend:   res.Backend,
			PageCount: res.PageCount,
			Terms:     len(res.Pairs),
		})
	},
}

func init() {
	extractCmd.Flags().StringVar(&extractLayout, "layout", "colon", "glossary page layout: caprun, twocolumn, hyphen, colon, or line")
	extractCmd.Flags().StringVar(&extractBackend, "backend", "auto", "text extraction backend: auto, layout, or stream")
	extractCmd.Flags().BoolVar(&extractSkipFirstPage, "skip-first-page", false, "skip the first (cover) page")
	extractCmd.Flags().IntSliceVar(&extractSkipPages, "skip-pages", nil, "1-indexed pages to skip, negatives count from the end")
	extractCmd.Flags().BoolVar(&extractSplitColumns, "split-columns", false, "read each page as two columns")
	extractCmd.Flags().StringVar(&extractOut, "out", "", "glossary output path (default: derived from the PDF name)")

	rootCmd.AddCommand(extractCmd)
}
