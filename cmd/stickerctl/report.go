package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"hoa_stickers/internal/adapter/cache"
	"hoa_stickers/internal/adapter/persistence"
	"hoa_stickers/internal/domain/report"
	"hoa_stickers/internal/usecase"

	"github.com/spf13/cobra"
)

var reportFormat string

// reportCmd prints the transaction summary
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print revenue by month and by sticker type",
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&reportFormat, "format", "f", "table", "Output format: table or json")
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	loc, err := cfg.Report.Location()
	if err != nil {
		return err
	}

	store, err := persistence.Open(cmd.Context(), cfg.Store)
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.Store.Backend, err)
	}
	defer store.Close()

	uc := usecase.NewReportUseCase(store.Purchases, cache.NoopCache{}, nil, loc)
	s, err := uc.Transactions(cmd.Context())
	if err != nil {
		return err
	}
	return writeSummary(cmd.OutOrStdout(), s, reportFormat)
}

func writeSummary(w io.Writer, s report.Summary, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	case "table", "":
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Total revenue\t%.2f\n", s.Totals.TotalRevenue)
	fmt.Fprintf(tw, "Transactions\t%d\n", s.Totals.TotalTransactions)
	fmt.Fprintf(tw, "Average\t%.2f\n", s.Totals.AverageTransaction)
	fmt.Fprintf(tw, "Top sticker\t%s\n", s.Totals.TopSticker)

	fmt.Fprintln(tw, "\nMONTH\tINCOME")
	for _, m := range s.MonthlyIncome {
		fmt.Fprintf(tw, "%s\t%.2f\n", m.Month, m.Income)
	}

	fmt.Fprintln(tw, "\nSTICKER\tSOLD\tINCOME")
	for _, st := range s.StickerTypes {
		fmt.Fprintf(tw, "%s\t%d\t%.2f\n", st.Name, st.Count, st.Income)
	}
	return tw.Flush()
}
