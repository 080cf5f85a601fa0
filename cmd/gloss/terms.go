package main

import (
	"net"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/gloss/internal/api"
	"github.com/jackzampolin/gloss/internal/glossary"
)

var (
	clientServer  string
	termsGlossary string
)

// serverBaseURL resolves the --server flag, falling back to the
// configured serve address.
func serverBaseURL() (string, error) {
	if clientServer != "" {
		return clientServer, nil
	}
	cfg, err := loadConfig()
	if err != nil {
		return "", err
	}
	return "http://" + net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)), nil
}

var termsCmd = &cobra.Command{
	Use:   "terms",
	Short: "List terms from a running gloss server",
	Long: `List term/definition pairs from a running gloss server.

Without --glossary, returns the deduplicated terms of every glossary.

Examples:
  gloss terms
  gloss terms --glossary basics
  gloss terms --server http://localhost:3000`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		base, err := serverBaseURL()
		if err != nil {
			return err
		}

		path := "/api/terms"
		if termsGlossary != "" {
			path += "?glossary=" + url.QueryEscape(termsGlossary)
		}

		var pairs []glossary.Pair
		if err := api.NewClient(base).Get(cmd.Context(), path, &pairs); err != nil {
			return err
		}
		return api.Output(pairs)
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search terms on a running gloss server",
	Long: `Search term/definition pairs on a running gloss server. Term matches
sort before definition matches.

Examples:
  gloss search bond
  gloss search "interest rate" --server http://localhost:3000`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		base, err := serverBaseURL()
		if err != nil {
			return err
		}

		var pairs []glossary.Pair
		path := "/api/terms/search?q=" + url.QueryEscape(args[0])
		if err := api.NewClient(base).Get(cmd.Context(), path, &pairs); err != nil {
			return err
		}
		return api.Output(pairs)
	},
}

func init() {
	termsCmd.Flags().StringVar(&clientServer, "server", "", "server base URL (default: from server config)")
	termsCmd.Flags().StringVar(&termsGlossary, "glossary", "", "limit to one glossary by name")
	searchCmd.Flags().StringVar(&clientServer, "server", "", "server base URL (default: from server config)")

	rootCmd.AddCommand(termsCmd, searchCmd)
}
