package cmd

import (
	"context"
	"fmt"
	"sync"

	"dbapi-compare/core/api"
	"dbapi-compare/core/config"
	"dbapi-compare/core/database"
	"dbapi-compare/core/logger"
	"dbapi-compare/core/progress"
	"dbapi-compare/feature/products"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the compare command
	compareFromDate string
	compareFromTime string
	compareToDate   string
	compareToTime   string
	compareFixDir   string
	compareNoExcel  bool
)

// compareCmd runs one comparison for a named profile.
var compareCmd = &cobra.Command{
	Use:   "compare <profile>",
	Short: "Compare Wawi database rows against the fulfillment API",
	Long: `Compare runs the full pipeline for one profile: read the profile's
SELECT from the Wawi database, fetch the merchant products from the API for
the given time range, join both sides on the JFSKU, validate every record and
export the results.

Examples:
  # Compare today's data
  compare products

  # Compare an explicit range and persist fix scripts
  compare products --from-date 2026-08-01 --to-date 2026-08-29 --fix-dir ./fixes`,
	Args: cobra.ExactArgs(1),
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().StringVar(&compareFromDate, "from-date", "", "Range start date (YYYY-MM-DD, default today)")
	compareCmd.Flags().StringVar(&compareFromTime, "from-time", "", "Range start time (HH:MM[:SS], default 00:00:00)")
	compareCmd.Flags().StringVar(&compareToDate, "to-date", "", "Range end date (YYYY-MM-DD, default today)")
	compareCmd.Flags().StringVar(&compareToTime, "to-time", "", "Range end time (HH:MM[:SS], default 23:59:59)")
	compareCmd.Flags().StringVar(&compareFixDir, "fix-dir", "", "Directory for generated fix scripts (overrides config)")
	compareCmd.Flags().BoolVar(&compareNoExcel, "no-excel", false, "Skip the XLSX workbook, write CSVs only")

	RootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	profiles, err := config.LoadProfiles(".")
	if err != nil {
		return fmt.Errorf("failed to load profiles: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	exportCfg := cfg.Export
	if compareFixDir != "" {
		exportCfg.FixDir = compareFixDir
	}
	if compareNoExcel {
		exportCfg.Excel = false
	}

	client := api.NewClient(0)
	svc := products.NewService(db, client, profiles, exportCfg, cfg.Database.MaxRows, l)

	// Status lines stream to the log while the pipeline runs.
	q := progress.NewQueue(256)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		q.DrainTo(l)
	}()

	report, err := svc.Compare(ctx, products.RunRequest{
		Profile:  args[0],
		FromDate: compareFromDate,
		FromTime: compareFromTime,
		ToDate:   compareToDate,
		ToTime:   compareToTime,
	}, q)
	q.Close()
	wg.Wait()
	if err != nil {
		return err
	}

	l.Info("Comparison finished",
		zap.String("profile", report.Profile),
		zap.String("from", report.From),
		zap.String("to", report.To),
		zap.Int("total", report.Stats.Total),
		zap.Int("ok", report.Stats.OK),
		zap.Int("mismatched", report.Stats.Mismatched),
		zap.Int("unregistered", report.Stats.Unregistered),
		zap.String("folder", report.Exports["folder"]))

	return nil
}
