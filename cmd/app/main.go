package main

import (
	"context"
	"flag"
	"log"
	"os"

	"stufflending/internal/clock"
	"stufflending/internal/config"
	"stufflending/internal/logger"
	"stufflending/internal/repository/memory"
	"stufflending/internal/scheduler"
	"stufflending/internal/service"
	"stufflending/internal/ui"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "", "Path to configuration file (optional)")
	flag.Parse()

	// Load configuration
	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
		cfg = loaded
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting stuff-lending system...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)

	// Initialize repositories
	store := memory.NewStore()

	// Initialize services
	memberSvc := service.NewMemberService(store.MemberRepository, store.ItemRepository, cfg.StartingCredits())
	contractSvc := service.NewContractService(store.ContractRepository, store.ItemRepository, store.MemberRepository)
	settlementSvc := service.NewSettlementService(store.ContractRepository, store.ItemRepository, store.MemberRepository)

	// The clock sweeps due contracts synchronously on every advance.
	clk := clock.New(settlementSvc)
	clk.Reset()

	itemSvc := service.NewItemService(store.ItemRepository, store.MemberRepository, store.ContractRepository, clk)

	ctx := context.Background()

	// Seed sample data
	if cfg.Seed.Enabled {
		seeder := service.NewSeeder(memberSvc, itemSvc, contractSvc)
		if err := seeder.Seed(ctx); err != nil {
			logger.Error("Failed to seed sample data", "error", err)
			log.Fatalf("Failed to seed sample data: %v", err)
		}
	}

	// Optional cron-driven day advance
	if cfg.Scheduler.Enabled {
		sched, err := scheduler.NewScheduler(clk, cfg.Scheduler)
		if err != nil {
			logger.Error("Failed to initialize scheduler", "error", err)
			log.Fatalf("Failed to initialize scheduler: %v", err)
		}
		sched.Start()
		defer sched.Stop()
	}

	// Run the console UI until the user exits
	con := ui.New(os.Stdin, os.Stdout, memberSvc, itemSvc, contractSvc, clk)
	if err := con.Run(ctx); err != nil {
		logger.Error("UI terminated with error", "error", err)
		os.Exit(1)
	}
}
