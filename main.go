package main

import (
	"log"
	"os"

	"utility-billing/internal/billing/application"
	"utility-billing/internal/cli"
	"utility-billing/internal/config"
	directory "utility-billing/internal/directory/domain"
	"utility-billing/internal/directory/infrastructure/snapshot"
)

func main() {
	logger := log.New(os.Stderr, "", log.LstdFlags)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("config error: %v", err)
	}

	rates, err := cfg.RateTable()
	if err != nil {
		logger.Fatalf("rate table error: %v", err)
	}

	store, err := snapshot.NewStore(cfg.DataFile)
	if err != nil {
		logger.Fatalf("snapshot store error: %v", err)
	}

	dir := directory.NewDirectory(cfg.DirectoryCapacity, cfg.CustomerIDBase, cfg.HistoryCapacity)

	service, err := application.NewService(dir, rates, store, application.SystemClock{}, logger)
	if err != nil {
		logger.Fatalf("billing service error: %v", err)
	}
	if err := service.Load(); err != nil {
		logger.Fatalf("data load error: %v", err)
	}

	shell, err := cli.NewShell(service, os.Stdin, os.Stdout, cfg.ReportDir, logger)
	if err != nil {
		logger.Fatalf("shell error: %v", err)
	}
	if err := shell.Run(); err != nil {
		logger.Fatalf("shell exited with error: %v", err)
	}
}
