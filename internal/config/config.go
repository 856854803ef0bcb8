// Package config loads the application configuration from an optional
// yaml file with environment-variable and built-in fallbacks.
package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	billing "utility-billing/internal/billing/domain"
)

// Config is the full application configuration.
type Config struct {
	DataFile          string                          `yaml:"data_file"`
	ReportDir         string                          `yaml:"report_dir"`
	DirectoryCapacity int                             `yaml:"directory_capacity"`
	HistoryCapacity   int                             `yaml:"history_capacity"`
	CustomerIDBase    int                             `yaml:"customer_id_base"`
	Rates             map[string]billing.RateSchedule `yaml:"rates"`
}

// Load builds the configuration: defaults, then the yaml file named by
// BILLING_CONFIG (if set), then env overrides for the scalar knobs.
func Load() (Config, error) {
	cfg := Config{
		DataFile:          "customer_data.json",
		ReportDir:         ".",
		DirectoryCapacity: 100,
		HistoryCapacity:   billing.DefaultHistoryCapacity,
		CustomerIDBase:    1001,
	}

	if path := os.Getenv("BILLING_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	}

	cfg.DataFile = getenvDefault("BILLING_DATA_FILE", cfg.DataFile)
	cfg.ReportDir = getenvDefault("BILLING_REPORT_DIR", cfg.ReportDir)
	cfg.DirectoryCapacity = getenvIntDefault("BILLING_DIRECTORY_CAPACITY", cfg.DirectoryCapacity)
	cfg.HistoryCapacity = getenvIntDefault("BILLING_HISTORY_CAPACITY", cfg.HistoryCapacity)
	cfg.CustomerIDBase = getenvIntDefault("BILLING_CUSTOMER_ID_BASE", cfg.CustomerIDBase)
	return cfg, nil
}

// RateTable builds the pricing table: the built-in schedules overridden
// per class by the non-zero fields of any configured rates.
func (c Config) RateTable() (*billing.RateTable, error) {
	schedules := make(map[billing.CustomerClass]billing.RateSchedule)
	defaults := billing.DefaultRateTable()
	for _, class := range billing.Classes() {
		schedule, err := defaults.Lookup(class)
		if err != nil {
			return nil, err
		}
		if override, ok := c.Rates[string(class)]; ok {
			schedule = mergeSchedule(schedule, override)
		}
		schedules[class] = schedule
	}
	return billing.NewRateTable(schedules)
}

func mergeSchedule(base, override billing.RateSchedule) billing.RateSchedule {
	if override.BaseCharge != 0 {
		base.BaseCharge = override.BaseCharge
	}
	if override.Tier1Rate != 0 {
		base.Tier1Rate = override.Tier1Rate
	}
	if override.Tier2Rate != 0 {
		base.Tier2Rate = override.Tier2Rate
	}
	if override.Tier3Rate != 0 {
		base.Tier3Rate = override.Tier3Rate
	}
	if override.PeakRate != 0 {
		base.PeakRate = override.PeakRate
	}
	if override.OffPeakRate != 0 {
		base.OffPeakRate = override.OffPeakRate
	}
	if override.TaxRate != 0 {
		base.TaxRate = override.TaxRate
	}
	return base
}

func getenvDefault(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getenvIntDefault(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
