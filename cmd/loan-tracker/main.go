package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/FishheadNate/Loan-Payment-Tracker/internal/config"
	"github.com/FishheadNate/Loan-Payment-Tracker/internal/payment"
	"github.com/FishheadNate/Loan-Payment-Tracker/internal/receipt"
	"github.com/FishheadNate/Loan-Payment-Tracker/internal/schedule"
	"github.com/FishheadNate/Loan-Payment-Tracker/internal/store"
	"github.com/FishheadNate/Loan-Payment-Tracker/pkg/constants"
	"github.com/FishheadNate/Loan-Payment-Tracker/pkg/datetime"
)

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	format := loggingConfig.Format
	if format == "" {
		format = "console"
	}

	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}
		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

type app struct {
	conf   *config.Configuration
	logger *zap.Logger
}

func setup(configPath, logLevel string) (*app, error) {
	conf, err := config.LoadConfiguration(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration at %s: %v", configPath, err)
	}
	logger, err := initializeLogger(conf.Logging, logLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %v", err)
	}
	return &app{conf: conf, logger: logger}, nil
}

func main() {
	var (
		configPath string
		logLevel   string
	)

	rootCmd := &cobra.Command{
		Use:           "loan-tracker",
		Short:         "Tracks loan payments against an amortization schedule",
		Long:          `Builds loan amortization schedules, applies received payments against them, and exports PDF receipts.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level override (debug, info, warn, error)")

	rootCmd.AddCommand(newScheduleCmd(&configPath, &logLevel))
	rootCmd.AddCommand(newPaymentCmd(&configPath, &logLevel))
	rootCmd.AddCommand(newReceiptCmd(&configPath, &logLevel))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newScheduleCmd(configPath, logLevel *string) *cobra.Command {
	var (
		amount          float64
		interest        float64
		length          int
		originationDate string
		balloon         int
		output          string
	)

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Build an amortization table for a loan",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(*configPath, *logLevel)
			if err != nil {
				return err
			}
			defer func() {
				_ = a.logger.Sync()
			}()

			origination, err := datetime.ParseInputDate(originationDate)
			if err != nil {
				return fmt.Errorf("%w: origination date %q is not MM-DD-YYYY",
					schedule.ErrInvalidLoanTerms, originationDate)
			}

			loan := schedule.Loan{
				Amount:          amount,
				AnnualRate:      interest,
				TermMonths:      length,
				OriginationDate: origination,
			}
			sched, err := schedule.NewBuilder(a.logger).Build(loan)
			if err != nil {
				return err
			}
			if balloon > 0 {
				if err := sched.ApplyBalloon(balloon); err != nil {
					return err
				}
			}

			if output == "" {
				output = fmt.Sprintf(constants.ScheduleFilePattern, length)
			}
			a.logger.Info("exporting table to: "+output,
				zap.String("op", "main.schedule"),
			)
			return store.WriteSchedule(output, sched)
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "total loan amount (XXXXX.XX)")
	cmd.Flags().Float64Var(&interest, "interest", 0, "annual interest rate as a decimal fraction (0.XX)")
	cmd.Flags().IntVar(&length, "length", 0, "term length of the loan in months")
	cmd.Flags().StringVar(&originationDate, "origination-date", "", "loan origination date (MM-DD-YYYY)")
	cmd.Flags().IntVar(&balloon, "balloon", 0, "optional period of an early full payoff")
	cmd.Flags().StringVar(&output, "output", "", "schedule file to write (default Amortization-Table-<N>months.csv)")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("interest")
	_ = cmd.MarkFlagRequired("length")
	_ = cmd.MarkFlagRequired("origination-date")

	return cmd
}

func newPaymentCmd(configPath, logLevel *string) *cobra.Command {
	var (
		scheduleFile string
		amount       float64
		date         string
		reference    string
		notes        string
	)

	cmd := &cobra.Command{
		Use:   "payment",
		Short: "Apply a received payment and export a receipt",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(*configPath, *logLevel)
			if err != nil {
				return err
			}
			defer func() {
				_ = a.logger.Sync()
			}()

			receivedDate, err := datetime.ParseInputDate(date)
			if err != nil {
				return fmt.Errorf("payment date %q is not MM-DD-YYYY", date)
			}

			entries, err := store.ReadSchedule(scheduleFile)
			if err != nil {
				return err
			}
			ledger, err := store.ReadLedger(a.conf.Files.LedgerFile)
			if err != nil {
				return err
			}
			if ledger.Len() == 0 {
				a.logger.Info("no previous payments have been received",
					zap.String("op", "main.payment"),
				)
			}

			number := ledger.NextPaymentNumber()
			entry, ok := entries[number]
			if !ok {
				return fmt.Errorf("schedule has no entry for payment %d; the loan may be fully paid", number)
			}

			record := payment.NewPolicy(a.logger).Apply(number, entry, payment.Received{
				Amount:    amount,
				Date:      receivedDate,
				Reference: reference,
				Notes:     notes,
			})
			if err := store.AppendRecord(a.conf.Files.LedgerFile, record); err != nil {
				return err
			}
			a.logger.Info(a.conf.Files.LedgerFile+" has been updated",
				zap.String("op", "main.payment"),
			)

			_, err = receipt.NewRenderer(a.logger).Render(record, time.Now(), a.conf.Files.ReceiptsDir)
			return err
		},
	}

	cmd.Flags().StringVar(&scheduleFile, "schedule", "", "file path to amortization table")
	cmd.Flags().Float64Var(&amount, "amount", 0, "payment amount received")
	cmd.Flags().StringVar(&date, "date", "", "date of payment (MM-DD-YYYY)")
	cmd.Flags().StringVar(&reference, "reference", "", "check number or payment type (ACH, Cash)")
	cmd.Flags().StringVar(&notes, "notes", "", "payment notes")
	_ = cmd.MarkFlagRequired("schedule")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("reference")

	return cmd
}

func newReceiptCmd(configPath, logLevel *string) *cobra.Command {
	return &cobra.Command{
		Use:   "receipt",
		Short: "Re-export the receipt for the most recent payment",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(*configPath, *logLevel)
			if err != nil {
				return err
			}
			defer func() {
				_ = a.logger.Sync()
			}()

			ledger, err := store.ReadLedger(a.conf.Files.LedgerFile)
			if err != nil {
				return err
			}
			record, ok := ledger.Latest()
			if !ok {
				return fmt.Errorf("ledger %s has no payments to print a receipt for", a.conf.Files.LedgerFile)
			}

			_, err = receipt.NewRenderer(a.logger).Render(record, time.Now(), a.conf.Files.ReceiptsDir)
			return err
		},
	}
}
