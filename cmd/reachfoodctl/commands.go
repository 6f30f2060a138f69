package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/reachfood2024-code/reachfood-sub000/internal/auth"
	"github.com/reachfood2024-code/reachfood-sub000/internal/chart"
	"github.com/reachfood2024-code/reachfood-sub000/internal/helpers"
	"github.com/reachfood2024-code/reachfood-sub000/internal/services"
	"github.com/reachfood2024-code/reachfood-sub000/internal/types/api/params"
	"github.com/reachfood2024-code/reachfood-sub000/internal/types/business"
)

func (a *app) migrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.connect(cmd.Context()); err != nil {
				return err
			}
			applied, err := a.migrator(cmd.Context())
			if err != nil {
				return errors.Wrap(err, "migrate")
			}
			if len(applied) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")
				return nil
			}
			for _, v := range applied {
				fmt.Fprintf(cmd.OutOrStdout(), "applied %s\n", v)
			}
			return nil
		},
	}
}

func (a *app) seedCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Upsert the product catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data := a.catalog
			if file != "" {
				var err error
				if data, err = os.ReadFile(file); err != nil {
					return errors.Wrap(err, "read catalog")
				}
			}

			catalog, err := services.ParseCatalog(data)
			if err != nil {
				return errors.Wrap(err, "parse catalog")
			}
			if err := a.connect(cmd.Context()); err != nil {
				return err
			}
			n, err := services.SeedCatalog(cmd.Context(), a.runner, catalog)
			if err != nil {
				return errors.Wrap(err, "seed catalog")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d products\n", n)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Catalog YAML (default: built-in catalog)")
	return cmd
}

func (a *app) rollupCommand() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "rollup",
		Short: "Roll up one day of dashboard metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			day := helpers.StartOfDay(a.now()).AddDate(0, 0, -1)
			if date != "" {
				var err error
				if day, err = helpers.ParseDate(date); err != nil {
					return errors.Wrap(err, "--date must be YYYY-MM-DD")
				}
			}

			if err := a.connect(cmd.Context()); err != nil {
				return err
			}
			rollup, err := a.metrics.RollupDay(cmd.Context(), day)
			if err != nil {
				return errors.Wrapf(err, "rollup %s", helpers.DateKey(day))
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "rolled up %s\n", helpers.DateKey(rollup.Date))
			for _, v := range rollup.Values {
				fmt.Fprintf(out, "  %-20s %-4s %d\n", v.Metric, v.Currency, v.Value)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to roll up, YYYY-MM-DD (default: yesterday UTC)")
	return cmd
}

func (a *app) renderCommand() *cobra.Command {
	var (
		metrics  []string
		currency string
		days     int
		out      string
		dims     = chart.Dimensions{Width: 600, Height: 240, PaddingX: 8, PaddingY: 16}
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render metric charts as SVG",
		Long:  `Render one metric, or several on a shared scale when --metric is repeated.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(metrics) == 0 {
				return errors.New("at least one --metric is required")
			}
			if err := a.connect(cmd.Context()); err != nil {
				return err
			}

			var charts []business.RenderedChart
			if len(metrics) == 1 {
				rc, err := a.metrics.RenderChart(cmd.Context(), params.ChartParams{
					Metric: metrics[0], Currency: currency, Days: days, Dimensions: dims,
				})
				if err != nil {
					return errors.Wrap(err, "render")
				}
				charts = append(charts, *rc)
			} else {
				var err error
				charts, err = a.metrics.CompareCharts(cmd.Context(), params.CompareChartParams{
					Metrics: metrics, Currency: currency, Days: days, Dimensions: dims,
				})
				if err != nil {
					return errors.Wrap(err, "render")
				}
			}

			layers := make([]chart.Layer, len(charts))
			titles := make([]string, len(charts))
			for i, rc := range charts {
				layers[i] = chart.Layer{Result: rc.Result, Style: chart.SeriesStyle(i)}
				titles[i] = rc.Data.Title
			}
			svg := chart.SVGLayers(dims, strings.Join(titles, " vs "), "", layers...)

			if err := writeOutput(cmd, out, svg); err != nil {
				return err
			}
			for _, rc := range charts {
				if s := rc.Result.Summary; s != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: total %g, average %d, min %g, max %g, latest %g\n",
						rc.Data.Metric, s.Total, s.Average, s.Minimum, s.Maximum, s.Latest)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&metrics, "metric", "m", nil, "Metric to draw (repeatable)")
	cmd.Flags().StringVar(&currency, "currency", "", "Currency of money metrics (default USD)")
	cmd.Flags().IntVar(&days, "days", 30, "Window in days")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default: stdout)")
	cmd.Flags().Float64Var(&dims.Width, "width", dims.Width, "Canvas width")
	cmd.Flags().Float64Var(&dims.Height, "height", dims.Height, "Canvas height")
	return cmd
}

func (a *app) exportCommand() *cobra.Command {
	var from, to, out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export orders to an XLSX workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			end := helpers.StartOfDay(a.now())
			start := end.AddDate(0, 0, -29)

			var err error
			if from != "" {
				if start, err = helpers.ParseDate(from); err != nil {
					return errors.Wrap(err, "--from must be YYYY-MM-DD")
				}
			}
			if to != "" {
				if end, err = helpers.ParseDate(to); err != nil {
					return errors.Wrap(err, "--to must be YYYY-MM-DD")
				}
			}
			if out == "" {
				out = fmt.Sprintf("orders-%s-%s.xlsx", helpers.DateKey(start), helpers.DateKey(end))
			}

			if err := a.connect(cmd.Context()); err != nil {
				return err
			}
			data, err := a.export.ExportOrders(cmd.Context(), params.ExportOrdersParams{
				From: start,
				To:   end.AddDate(0, 0, 1),
			})
			if err != nil {
				return errors.Wrap(err, "export orders")
			}
			return writeOutput(cmd, out, data)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "First day, YYYY-MM-DD (default: 30 days ago)")
	cmd.Flags().StringVar(&to, "to", "", "Last day, inclusive, YYYY-MM-DD (default: today)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default: orders-<from>-<to>.xlsx)")
	return cmd
}

func (a *app) hashKeyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-key [key]",
		Short: "Print the bcrypt hash to use as ADMIN_API_KEY_HASH",
		Long:  `Hashes the key given as argument, or the first line of stdin when no argument is given.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var key string
			if len(args) == 1 {
				key = args[0]
			} else {
				scanner := bufio.NewScanner(cmd.InOrStdin())
				if scanner.Scan() {
					key = scanner.Text()
				}
				if err := scanner.Err(); err != nil {
					return errors.Wrap(err, "read key")
				}
			}

			key = strings.TrimSpace(key)
			if key == "" {
				return errors.New("key must not be empty")
			}

			hash, err := auth.HashAdminKey(key)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}

func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%d bytes)\n", path, len(data))
	return nil
}
