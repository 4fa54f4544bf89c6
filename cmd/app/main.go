package main

import (
	"os"

	"fitzone/internal/config"
	"fitzone/internal/console"
	"fitzone/internal/gym"
	"fitzone/internal/logger"
	"fitzone/internal/recommend"
)

func main() {
	logger.Init()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	if err := logger.Configure(cfg.AppEnv, cfg.LogLevel); err != nil {
		logger.Fatalf("Failed to configure logger: %v", err)
	}
	logger.Info("Starting gym console", "gym", cfg.GymName, "capacity", cfg.Capacity)

	svc := gym.NewService(gym.NewMemoryRepository(), recommend.NewEngine(), gym.Options{
		Name:      cfg.GymName,
		Capacity:  cfg.Capacity,
		BonusBase: cfg.BonusBase,
	})

	if err := console.New(svc, os.Stdin, os.Stdout, cfg.Currency).Run(); err != nil {
		logger.Errorf("Console stopped: %v", err)
		return
	}
	logger.Info("Gym console stopped", "clients", svc.Count())
}
