package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/blakethaselberger/StarsOps-sub001/internal/filter"
)

type queryFlags struct {
	search  string
	sort    string
	desc    bool
	asJSON  bool
	filters map[string]*string
}

func (q *queryFlags) register(cmd *cobra.Command, withSort bool) {
	q.filters = make(map[string]*string)
	for _, name := range filter.Names() {
		q.filters[name] = cmd.Flags().String(name, "", "filter on "+name)
	}
	cmd.Flags().StringVar(&q.search, "search", "", "free-text search over name, team, nationality and birthplace")
	cmd.Flags().BoolVar(&q.asJSON, "json", false, "print JSON instead of a table")
	if withSort {
		cmd.Flags().StringVar(&q.sort, "sort", "", "sort column")
		cmd.Flags().BoolVar(&q.desc, "desc", false, "sort descending")
	}
}

func (q *queryFlags) query() (filter.Query, error) {
	v := url.Values{}
	for name, val := range q.filters {
		if *val != "" {
			v.Set(name, *val)
		}
	}
	if q.search != "" {
		v.Set("search", q.search)
	}
	if q.sort != "" {
		if !filter.ValidColumn(q.sort) {
			return filter.Query{}, fmt.Errorf("unknown sort column %q (one of %v)", q.sort, filter.SortColumns())
		}
		v.Set("sort", q.sort)
		if q.desc {
			v.Set("order", "desc")
		}
	}
	return filter.FromValues(v), nil
}

func newPlayersCmd(root *rootOptions) *cobra.Command {
	flags := &queryFlags{}
	cmd := &cobra.Command{
		Use:   "players",
		Short: "List players matching the filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := flags.query()
			if err != nil {
				return err
			}
			svc, err := root.loadService(cmd.Context())
			if err != nil {
				return err
			}
			res := svc.Search(q)
			if flags.asJSON {
				return writeJSON(cmd.OutOrStdout(), res)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tPOS\tTEAM\tLEAGUE\tAGE\tGP\tG\tA\tPTS\tSALARY")
			for _, p := range res.Players {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%d\t%d\t%d\t%d\t%s\n",
					p.Name, p.Position, p.Team, p.League, p.Age,
					p.GamesPlayed, p.Goals, p.Assists, p.Points, formatSalary(p.SalaryValue))
			}
			fmt.Fprintf(tw, "\n%d players\n", res.Count)
			return tw.Flush()
		},
	}
	flags.register(cmd, true)
	return cmd
}

func newLeaguesCmd(root *rootOptions) *cobra.Command {
	flags := &queryFlags{}
	cmd := &cobra.Command{
		Use:   "leagues",
		Short: "Show per-league totals and matching counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := flags.query()
			if err != nil {
				return err
			}
			svc, err := root.loadService(cmd.Context())
			if err != nil {
				return err
			}
			counts := svc.Leagues(q)
			if flags.asJSON {
				return writeJSON(cmd.OutOrStdout(), counts)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "LEAGUE\tMATCHING\tTOTAL")
			for _, c := range counts {
				fmt.Fprintf(tw, "%s\t%d\t%d\n", c.League, c.Matching, c.Total)
			}
			return tw.Flush()
		},
	}
	flags.register(cmd, false)
	return cmd
}

func newSuggestCmd(root *rootOptions) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "suggest <name>",
		Short: "Fuzzy-match player names",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit <= 0 {
				return fmt.Errorf("--limit must be positive")
			}
			svc, err := root.loadService(cmd.Context())
			if err != nil {
				return err
			}
			for _, s := range svc.Suggest(args[0], limit) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", s.Name, s.Position, s.Team)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", filter.DefaultSuggestLimit, "maximum suggestions")
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// formatSalary renders millions the way the roster table shows them, e.g. $5.02M.
func formatSalary(m float64) string {
	if m <= 0 {
		return "-"
	}
	return "$" + strconv.FormatFloat(m, 'f', 2, 64) + "M"
}
