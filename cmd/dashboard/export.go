package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"dashboard.demografia.org/internal/dashboard"
	"dashboard.demografia.org/internal/export"
	"dashboard.demografia.org/internal/logging"
)

func newExportCmd(opts *options) *cobra.Command {
	var (
		out   string
		group string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the joined long table (fertility, urban and total population) to CSV or XLSX",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			format, err := export.ParseFormat(strings.ToLower(strings.TrimPrefix(filepath.Ext(out), ".")))
			if err != nil {
				return err
			}
			g, err := dashboard.ParseGroup(group)
			if err != nil {
				return err
			}

			application, err := opts.application(cmd)
			if err != nil {
				return err
			}
			points := application.Manager.Panel(g)

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create export: %w", err)
			}
			defer logging.HandleDeferredError(&err, f.Close, application.Logger, "close_export")

			if err := export.Write(f, format, points); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d rows to %s\n", len(points), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "long.xlsx", "Output file; the extension selects csv or xlsx")
	cmd.Flags().StringVar(&group, "group", string(dashboard.GroupCountries), "countries or income-groups")
	return cmd
}
