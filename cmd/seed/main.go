package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/saradorri/economyengine/internal/config"
	"github.com/saradorri/economyengine/internal/infrastructure/database"
	"github.com/saradorri/economyengine/internal/infrastructure/logger"
	"github.com/saradorri/economyengine/internal/infrastructure/repository"
	"github.com/saradorri/economyengine/internal/infrastructure/seeder"
	"github.com/saradorri/economyengine/internal/usecase/ledger"
	"github.com/spf13/viper"
)

func main() {
	var (
		configPath = flag.String("config", "./config", "Path to config directory")
		configFile = flag.String("env", "development", "Environment")
	)
	flag.Parse()

	cfg, err := loadConfig(*configPath, *configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewDatabase(&database.Config{
		Driver:          cfg.Database.Driver,
		Path:            cfg.Database.Path,
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		Name:            cfg.Database.Name,
		SSLMode:         cfg.Database.SSLMode,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		AutoMigrate:     cfg.Database.AutoMigrate,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	newSeeder := seeder.NewSeeder(
		repository.NewRankRepository(db.DB),
		repository.NewAccountRepository(db.DB),
		logger.NewLogger(config.GetEnvironment(), cfg.Log.Level),
	)
	ctx := context.Background()

	log.Println("Starting database seeding...")
	if _, err := newSeeder.SeedHouse(ctx, cfg.Economy.HouseAccountID, ledger.HouseAccountName); err != nil {
		log.Fatalf("Failed to seed house account: %v", err)
	}
	if _, err := newSeeder.SeedRanks(ctx, cfg.Ranks.Defaults); err != nil {
		log.Fatalf("Failed to seed ranks: %v", err)
	}
	log.Println("Database seeding completed successfully")
}

// loadConfig loads configuration from file
func loadConfig(configPath, configFile string) (*config.Config, error) {
	viper.SetConfigName(fmt.Sprintf("config.%s", configFile))
	viper.SetConfigType("yml")
	viper.AddConfigPath(configPath)

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}

	var cfg config.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}
	cfg.ApplyDefaults()

	return &cfg, nil
}
