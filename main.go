package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"emi-calculator/calculator"
	"emi-calculator/config"
	"emi-calculator/logger"
	"emi-calculator/service"
	"emi-calculator/shell"
)

func main() {
	os.Exit(run())
}

func run() int {
	flags := config.NewFlagSet(os.Args[0])
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := config.Load(flags)
	if err != nil {
		log.Printf("Error loading configuration: %v", err)
		return 1
	}

	appLogger, err := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		log.Printf("Error creating logger: %v", err)
		return 1
	}
	defer appLogger.Sync()

	appLogger = appLogger.With(
		zap.String("app", cfg.App.Name),
		zap.String("session_id", uuid.NewString()),
	)

	loanService := service.NewLoanService(appLogger)
	calc := calculator.New(loanService)
	sh := shell.New(calc, os.Stdin, os.Stdout,
		shell.WithPrompt(cfg.Shell.Prompt),
		shell.WithLogger(appLogger),
	)

	if cfg.Loan.Complete() {
		if err := sh.Once(cfg.Loan.Principal, cfg.Loan.Rate, cfg.Loan.Tenure); err != nil {
			return 1
		}
		return 0
	}

	sh.Prefill(cfg.Loan.Principal, cfg.Loan.Rate, cfg.Loan.Tenure)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shellErr := make(chan error, 1)
	go func() {
		shellErr <- sh.Run(ctx)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-shellErr:
		if err != nil {
			appLogger.Error("shell stopped", zap.Error(err))
			return 1
		}
	case sig := <-quit:
		appLogger.Info("shutting down", zap.String("signal", sig.String()))
		cancel()
		<-shellErr
	}

	return 0
}
