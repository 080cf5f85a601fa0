// Package ingest runs the end-to-end glossary extraction pipeline:
// resolve the source PDF, pull page text, clean it, segment it into
// term/definition pairs, and write the glossary file.
package ingest

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackzampolin/gloss/internal/fetch"
	"github.com/jackzampolin/gloss/internal/glossary"
	"github.com/jackzampolin/gloss/internal/home"
	"github.com/jackzampolin/gloss/internal/pdftext"
)

// Backend names accepted by Request.Backend.
const (
	BackendAuto   = "auto"
	BackendLayout = "layout"
	BackendStream = "stream"
)

// Request contains the parameters for one extraction run.
type Request struct {
	Source        string          // local PDF path or http(s) URL
	Layout        glossary.Layout // page layout variant to segment with
	Backend       string          // text extraction backend, BackendAuto if empty
	SkipFirstPage bool            // drop the cover page
	SkipPages     []int           // 1-indexed pages to drop, negatives from the end
	SplitColumns  bool            // read each page as two columns
	CleanPatterns []string        // extra regexes stripped from page text
	OutputPath    string          // glossary destination, derived from the PDF name if empty
	Logger        *slog.Logger
}

// Result contains the result of a successful extraction run.
type Result struct {
	PDFPath    string          // resolved local path of the source PDF
	OutputPath string          // written glossary file
	Backend    string          // extraction backend that produced the text
	PageCount  int             // pages extracted after skips
	Pairs      []glossary.Pair // deduplicated pairs, in document order
}

// Run executes the pipeline against req and writes the glossary file.
func Run(ctx context.Context, homeDir *home.Dir, req Request) (*Result, error) {
	log := req.Logger
	if log == nil {
		log = slog.Default()
	}

	seg, err := glossary.NewSegmenter(req.Layout)
	if err != nil {
		return nil, err
	}

	if err := homeDir.EnsureExists(); err != nil {
		return nil, err
	}

	pdfPath, err := fetch.Resolve(ctx, req.Source, homeDir.PDFPath(), log)
	if err != nil {
		return nil, err
	}

	if err := pdftext.Validate(pdfPath); err != nil {
		return nil, err
	}

	pages, backend, err := extractPages(ctx, pdfPath, req)
	if err != nil {
		return nil, err
	}
	log.Info("extracted pages", "pdf", pdfPath, "pages", len(pages), "backend", backend)

	patterns := append(append([]string{}, glossary.DefaultCleanPatterns...), req.CleanPatterns...)
	cleaner, err := glossary.NewCleaner(patterns...)
	if err != nil {
		return nil, err
	}

	text := cleaner.Clean(pdftext.JoinPages(pages))
	pairs := glossary.Dedup(seg.Segment(text))
	log.Info("segmented glossary", "layout", req.Layout, "pairs", len(pairs))
	if len(pairs) == 0 {
		log.Warn("no term/definition pairs found", "pdf", pdfPath, "layout", req.Layout)
	}

	outPath := req.OutputPath
	if outPath == "" {
		outPath = homeDir.GlossaryFile(pdfPath)
	}
	if err := glossary.WriteFile(outPath, pairs); err != nil {
		return nil, err
	}
	log.Info("wrote glossary", "path", outPath, "pairs", len(pairs))

	return &Result{
		PDFPath:    pdfPath,
		OutputPath: outPath,
		Backend:    backend,
		PageCount:  len(pages),
		Pairs:      pairs,
	}, nil
}

// extractPages picks the extraction backends for req and runs them.
// Auto mode tries layout reconstruction first and falls back to stream
// order when it yields nothing.
func extractPages(ctx context.Context, pdfPath string, req Request) ([]pdftext.Page, string, error) {
	opts := pdftext.Options{
		SkipFirstPage: req.SkipFirstPage,
		SkipPages:     req.SkipPages,
		SplitColumns:  req.SplitColumns,
	}

	var sources []pdftext.Source
	switch req.Backend {
	case BackendLayout:
		sources = []pdftext.Source{pdftext.NewLayoutSource()}
	case BackendStream:
		sources = []pdftext.Source{pdftext.NewStreamSource()}
	case BackendAuto, "":
		sources = []pdftext.Source{pdftext.NewLayoutSource(), pdftext.NewStreamSource()}
	default:
		return nil, "", fmt.Errorf("unknown backend %q", req.Backend)
	}

	return pdftext.FirstNonEmpty(ctx, pdfPath, opts, sources...)
}
