package main

import (
	"github.com/spf13/cobra"

	"github.com/jackzampolin/gloss/internal/api"
	"github.com/jackzampolin/gloss/internal/edgar"
)

var (
	edgarForm  string
	edgarLimit int
)

var edgarCmd = &cobra.Command{
	Use:   "edgar",
	Short: "Look up companies and filings on SEC EDGAR",
	Long: `Look up companies and filings on SEC EDGAR.

The SEC requires a descriptive User-Agent with a contact address on
every request: set sec.user_agent in the config file first.`,
}

var edgarSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search companies by ticker or name",
	Long: `Search EDGAR's company list by ticker symbol or name substring.

Examples:
  gloss edgar search AAPL
  gloss edgar search "berkshire"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := edgarClient()
		if err != nil {
			return err
		}
		companies, err := c.SearchCompanies(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return api.Output(companies)
	},
}

var edgarFilingsCmd = &cobra.Command{
	Use:   "filings <ticker>",
	Short: "List a company's recent filings",
	Long: `List a company's recent EDGAR filings, optionally filtered by form.

Examples:
  gloss edgar filings AAPL
  gloss edgar filings AAPL --form 10-K --limit 5`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := edgarClient()
		if err != nil {
			return err
		}
		cik, err := c.LookupCIK(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		subs, err := c.Submissions(cmd.Context(), cik)
		if err != nil {
			return err
		}
		return api.Output(c.RecentFilings(subs, edgarForm, edgarLimit))
	},
}

var edgarIndexCmd = &cobra.Command{
	Use:   "index <ticker> <accession-number>",
	Short: "List the documents of one filing",
	Long: `List the documents in a filing's archive directory.

Examples:
  gloss edgar index AAPL 0000320193-24-000123`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := edgarClient()
		if err != nil {
			return err
		}
		cik, err := c.LookupCIK(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		entries, err := c.FilingIndex(cmd.Context(), cik, args[1])
		if err != nil {
			return err
		}
		return api.Output(entries)
	},
}

// edgarClient builds an EDGAR client with the configured User-Agent.
func edgarClient() (*edgar.Client, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return edgar.NewClient(cfg.SEC.UserAgent), nil
}

func init() {
	edgarFilingsCmd.Flags().StringVar(&edgarForm, "form", "", "only list filings of this form, e.g. 10-K")
	edgarFilingsCmd.Flags().IntVar(&edgarLimit, "limit", 10, "maximum number of filings to list")

	edgarCmd.AddCommand(edgarSearchCmd, edgarFilingsCmd, edgarIndexCmd)
	rootCmd.AddCommand(edgarCmd)
}
