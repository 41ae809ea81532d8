package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"offerfeat/internal/config"
	"offerfeat/internal/dataprocessing"
	"offerfeat/internal/exporter"
	"offerfeat/internal/infrastructure"
	"offerfeat/internal/operations"
	"offerfeat/internal/validation"
	"offerfeat/pkg/contracts"
)

const usage = `Please provide the file paths of the offer portfolio, profile and
transcript datasets as the first, second and third arguments, and the path
of the SQLite database to write the feature table to as the fourth.

Example: processor portfolio.json profile.json transcript.json features.db
`

// runArgs are the positional arguments of one run
type runArgs struct {
	portfolio  string
	profile    string
	transcript string
	database   string
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the batch job and returns the process exit code
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) != 4 {
		fmt.Fprint(stderr, usage)
		return 2
	}
	in := runArgs{portfolio: args[0], profile: args[1], transcript: args[2], database: args[3]}

	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(stderr, "failed to load configuration: %v\n", err)
		return 1
	}

	logger, closeLog, err := infrastructure.NewLogger(cfg.Logging, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "failed to initialize logger: %v\n", err)
		return 1
	}
	defer closeLog()
	slog.SetDefault(logger)

	ctx = infrastructure.EnsureTraceID(ctx)
	logger.InfoContext(ctx, "Starting processor", slog.Any("build", contracts.GetVersionInfo()))

	providers, err := infrastructure.InitializeOTel(ctx, cfg.Telemetry, logger)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to initialize telemetry", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		if err := providers.WriteMetrics(cfg.Telemetry.MetricsTextfile); err != nil {
			logger.WarnContext(ctx, "Failed to write metrics", slog.String("error", err.Error()))
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := providers.Shutdown(shutdownCtx); err != nil {
			logger.WarnContext(ctx, "Telemetry shutdown failed", slog.String("error", err.Error()))
		}
	}()

	if err := process(ctx, cfg, providers, logger, in); err != nil {
		infrastructure.WithError(logger, err).ErrorContext(ctx, "Feature table build failed",
			slog.String("failed_step", operations.FailedStep(err)))
		return 1
	}
	return 0
}

func process(ctx context.Context, cfg *config.Config, providers *infrastructure.OTelProviders, logger *slog.Logger, in runArgs) error {
	start := time.Now()

	files := validation.NewFileValidator(infrastructure.WithComponent(logger, "validation"))
	if err := files.ValidateInputs(in.portfolio, in.profile, in.transcript); err != nil {
		return fmt.Errorf("input files: %w", err)
	}
	if err := files.ValidateOutputPath(in.database); err != nil {
		return fmt.Errorf("database path: %w", err)
	}

	logger.InfoContext(ctx, "Loading data",
		slog.String("portfolio", in.portfolio),
		slog.String("profile", in.profile),
		slog.String("transcript", in.transcript))

	ds, err := dataprocessing.NewLoader(infrastructure.WithComponent(logger, "loader")).
		LoadAll(ctx, in.portfolio, in.profile, in.transcript)
	if err != nil {
		return fmt.Errorf("load datasets: %w", err)
	}

	logger.InfoContext(ctx, "Cleaning data")

	tracer, err := operations.NewOperationTracer(providers)
	if err != nil {
		return err
	}
	registry := operations.NewRegistry()
	if err := operations.RegisterFeatureStages(registry); err != nil {
		return err
	}
	manager := operations.NewManager(registry, tracer, logger)

	resp, err := manager.Execute(ctx, operations.OperationRequest{
		Dataset: ds,
		Options: dataprocessing.ProcessingOptions{
			AgeSentinel:      cfg.Pipeline.AgeSentinel,
			MemberDateLayout: cfg.Pipeline.MemberDateLayout,
			UnknownGender:    cfg.Pipeline.UnknownGender,
			FailLabel:        cfg.Pipeline.FailLabel,
		},
	})
	if err != nil {
		return err
	}
	table := resp.Table

	// Side exports go first so a failed export leaves the database untouched
	if cfg.Export.CSVPath != "" {
		if err := exporter.NewCSVWriter(logger).WriteTable(cfg.Export.CSVPath, table); err != nil {
			return fmt.Errorf("csv export: %w", err)
		}
	}
	if cfg.Export.XLSXPath != "" {
		if err := exporter.NewXLSXWriter(logger).WriteTable(cfg.Export.XLSXPath, table); err != nil {
			return fmt.Errorf("xlsx export: %w", err)
		}
	}

	logger.InfoContext(ctx, "Saving data", slog.String("database", in.database))

	store, err := exporter.OpenStore(in.database, cfg.Store, infrastructure.WithComponent(logger, "store"))
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Replace(ctx, table); err != nil {
		return err
	}
	stored, err := store.Count(ctx)
	if err != nil {
		return err
	}

	summary := dataprocessing.Summarize(table)
	logger.InfoContext(ctx, "Cleaned data saved to database",
		slog.String("table", store.TableName()),
		slog.Int("rows", summary.Rows),
		slog.Int64("stored_rows", stored),
		slog.Int("persons", summary.Persons),
		slog.Int("offers_received", summary.OffersReceived),
		slog.Int("successes", summary.Successes),
		slog.Float64("success_rate", summary.SuccessRate),
		slog.Int("snapshot_rows", summary.Snapshots),
		slog.Duration("duration", time.Since(start)))
	return nil
}
