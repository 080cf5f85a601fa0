package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jackzampolin/gloss/internal/glossary"
	"github.com/jackzampolin/gloss/internal/home"
)

// registerRoutes sets up all HTTP routes.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /api/glossaries", s.handleGlossaries)
	mux.HandleFunc("GET /api/terms", s.handleTerms)
	mux.HandleFunc("GET /api/terms/search", s.handleSearch)
}

// HealthResponse is the response for the health check endpoint.
type HealthResponse struct {
	Status     string `json:"status"`
	Glossaries int    `json:"glossaries"`
}

// GlossaryInfo describes one glossary file.
type GlossaryInfo struct {
	Name  string `json:"name"`
	Terms int    `json:"terms"`
}

// handleHealth returns server health and the number of glossaries on disk.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	files, _ := s.glossaryFiles()
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Glossaries: len(files)})
}

// handleGlossaries lists glossary files and their term counts.
func (s *Server) handleGlossaries(w http.ResponseWriter, r *http.Request) {
	files, err := s.glossaryFiles()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	infos := make([]GlossaryInfo, 0, len(files))
	for _, f := range files {
		pairs, err := glossary.ParseFile(f)
		if err != nil {
			s.logger.Warn("skipping unreadable glossary", "file", f, "error", err)
			continue
		}
		infos = append(infos, GlossaryInfo{
			Name:  strings.TrimSuffix(filepath.Base(f), ".txt"),
			Terms: len(pairs),
		})
	}
	writeJSON(w, http.StatusOK, infos)
}

// handleTerms returns the pairs of one glossary (?glossary=name) or of
// every glossary when the parameter is omitted.
func (s *Server) handleTerms(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("glossary")

	if name != "" {
		if strings.ContainsAny(name, `/\`) {
			writeError(w, http.StatusBadRequest, "invalid glossary name")
			return
		}
		path := filepath.Join(s.home.GlossaryPath(), name+".txt")
		pairs, err := glossary.ParseFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				writeError(w, http.StatusNotFound, "glossary not found: "+name)
				return
			}
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, pairs)
		return
	}

	pairs, err := s.allPairs()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, pairs)
}

// handleSearch returns pairs whose term or definition contains the
// query, case-insensitively. Term matches sort first.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("q")))
	if q == "" {
		writeError(w, http.StatusBadRequest, "missing query parameter q")
		return
	}

	pairs, err := s.allPairs()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	var termHits, defHits []glossary.Pair
	for _, p := range pairs {
		switch {
		case strings.Contains(strings.ToLower(p.Term), q):
			termHits = append(termHits, p)
		case strings.Contains(strings.ToLower(p.Definition), q):
			defHits = append(defHits, p)
		}
	}
	writeJSON(w, http.StatusOK, append(termHits, defHits...))
}

// glossaryFiles lists the .txt glossaries in the home directory,
// excluding the combined output, sorted by name.
func (s *Server) glossaryFiles() ([]string, error) {
	entries, err := filepath.Glob(filepath.Join(s.home.GlossaryPath(), "*.txt"))
	if err != nil {
		return nil, err
	}
	files := entries[:0]
	for _, e := range entries {
		if filepath.Base(e) == home.CombinedGlossaryName {
			continue
		}
		files = append(files, e)
	}
	sort.Strings(files)
	return files, nil
}

// allPairs loads and dedups the pairs of every glossary.
func (s *Server) allPairs() ([]glossary.Pair, error) {
	files, err := s.glossaryFiles()
	if err != nil {
		return nil, err
	}

	var pairs []glossary.Pair
	for _, f := range files {
		p, err := glossary.ParseFile(f)
		if err != nil {
			s.logger.Warn("skipping unreadable glossary", "file", f, "error", err)
			continue
		}
		pairs = append(pairs, p...)
	}
	return glossary.Dedup(pairs), nil
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// ErrorResponse is a standard error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}
