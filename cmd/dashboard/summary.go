package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"dashboard.demografia.org/internal/dashboard"
	"dashboard.demografia.org/internal/utils"
)

func newSummaryCmd(opts *options) *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the dataset statistics and one year's regime histogram",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			application, err := opts.application(cmd)
			if err != nil {
				return err
			}
			return writeSummary(cmd.OutOrStdout(), application.Manager, year)
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Histogram year (default: latest)")
	return cmd
}

// writeSummary prints the statistics with Spanish number formatting. A zero
// year selects the latest histogram year.
func writeSummary(w io.Writer, manager *dashboard.Manager, year int) error {
	years := manager.Years()
	if year == 0 && len(years) > 0 {
		year = years[len(years)-1]
	}
	if len(years) > 0 {
		if err := utils.ValidateYear(year, years); err != nil {
			return err
		}
	}

	p := message.NewPrinter(language.Spanish)
	stats := manager.Statistics()

	_, _ = p.Fprintf(w, "Fuente: %s (%s)\n", stats.Source, stats.Format)
	_, _ = p.Fprintf(w, "Filas: %d\n", stats.Rows)
	_, _ = p.Fprintf(w, "Países: %d · Grupos de ingreso: %d\n", stats.Countries, stats.IncomeGroups)
	if len(years) == 0 {
		_, _ = fmt.Fprintln(w, "Años: sin datos")
		return nil
	}
	_, _ = fmt.Fprintf(w, "Años: %d a %d (dispersión desde %d)\n", stats.FirstYear, stats.LastYear, stats.ScatterFrom)
	if len(stats.MissingSeries) > 0 {
		_, _ = fmt.Fprintf(w, "Series ausentes: %s\n", strings.Join(stats.MissingSeries, "; "))
	}

	_, _ = fmt.Fprintf(w, "Regímenes %d (clasificación v%s):\n", year, stats.SchemeVersion)
	for _, c := range manager.RegimeCounts(year) {
		_, _ = p.Fprintf(w, "  %-20s %6d\n", c.Regime, c.Count)
	}
	return nil
}
