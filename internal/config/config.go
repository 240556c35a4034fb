package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync/atomic"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Database    DatabaseConfig    `mapstructure:"database"`
	JWT         JWTConfig         `mapstructure:"jwt"`
	Groups      GroupsConfig      `mapstructure:"groups"`
	Log         LogConfig         `mapstructure:"log"`
	Economy     EconomyConfig     `mapstructure:"economy"`
	Rewards     RewardsConfig     `mapstructure:"rewards"`
	Ranks       RanksConfig       `mapstructure:"ranks"`
	Leaderboard LeaderboardConfig `mapstructure:"leaderboard"`
	World       WorldConfig       `mapstructure:"world"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Path            string        `mapstructure:"path"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	SSLMode         string        `mapstructure:"ssl"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"`
	AutoMigrate     bool          `mapstructure:"autoMigrate"`
}

// JWTConfig holds JWT-related configuration
type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
}

// GroupsConfig holds the permission service client configuration
type GroupsConfig struct {
	URL      string `mapstructure:"url"`
	APIKey   string `mapstructure:"api_key"`
	RetryMax int    `mapstructure:"retryMax"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// EconomyConfig holds ledger-wide settings
type EconomyConfig struct {
	CurrencyName   string    `mapstructure:"currencyName"`
	HouseAccountID int64     `mapstructure:"houseAccountId"`
	Tax            TaxConfig `mapstructure:"tax"`
}

// TaxConfig holds the tax policy
type TaxConfig struct {
	PromotionPercent int64 `mapstructure:"promotionPercent"`
}

// TierValues holds one integer per reward tier
type TierValues struct {
	Normal  int64 `mapstructure:"normal"`
	Hostile int64 `mapstructure:"hostile"`
	Special int64 `mapstructure:"special"`
	Boss1   int64 `mapstructure:"boss1"`
	Boss2   int64 `mapstructure:"boss2"`
	Boss3   int64 `mapstructure:"boss3"`
}

// NPCSets lists the NPC type ids belonging to each non-normal tier
type NPCSets struct {
	Hostile []int `mapstructure:"hostile"`
	Special []int `mapstructure:"special"`
	Boss1   []int `mapstructure:"boss1"`
	Boss2   []int `mapstructure:"boss2"`
	Boss3   []int `mapstructure:"boss3"`
}

// RewardsConfig holds the reward calculator settings
type RewardsConfig struct {
	Rates              TierValues         `mapstructure:"rates"`
	MaxAmounts         TierValues         `mapstructure:"maxAmounts"`
	HardModeMultiplier float64            `mapstructure:"hardModeMultiplier"`
	RankMultipliers    map[string]float64 `mapstructure:"rankMultipliers"`
	Debounce           time.Duration      `mapstructure:"debounce"`
	PityThreshold      int                `mapstructure:"pityThreshold"`
	NPCs               NPCSets            `mapstructure:"npcs"`
}

// RankMultiplier looks up the multiplier of rank. Names match without regard
// to case since viper lowercases map keys.
func (r RewardsConfig) RankMultiplier(rank string) (float64, bool) {
	if m, ok := r.RankMultipliers[rank]; ok {
		return m, true
	}
	for name, m := range r.RankMultipliers {
		if strings.EqualFold(name, rank) {
			return m, true
		}
	}
	return 0, false
}

// RankSeed is a rank definition supplied by configuration
type RankSeed struct {
	Name           string `mapstructure:"name"`
	RequiredAmount int64  `mapstructure:"requiredAmount"`
	GroupName      string `mapstructure:"groupName"`
	NextRank       string `mapstructure:"nextRank"`
}

// RanksConfig holds rank progression settings
type RanksConfig struct {
	Initial          string     `mapstructure:"initial"`
	WorldResetTarget string     `mapstructure:"worldResetTarget"`
	Defaults         []RankSeed `mapstructure:"defaults"`
}

// LeaderboardConfig holds leaderboard settings
type LeaderboardConfig struct {
	UpdateTime string `mapstructure:"updateTime"`
	Size       int    `mapstructure:"size"`
}

// WorldConfig holds the world identity known at deploy time
type WorldConfig struct {
	LastKnownID string `mapstructure:"lastKnownId"`
}

// DefaultTokenExpiry is used when jwt.expiry is not configured
const DefaultTokenExpiry = 24 * time.Hour

// ApplyDefaults fills zero values with the service defaults
func (c *Config) ApplyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.JWT.Expiry == 0 {
		c.JWT.Expiry = DefaultTokenExpiry
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "postgres"
	}
	if c.Economy.CurrencyName == "" {
		c.Economy.CurrencyName = "coins"
	}
	if c.Rewards.HardModeMultiplier == 0 {
		c.Rewards.HardModeMultiplier = 1.5
	}
	if c.Rewards.Debounce == 0 {
		c.Rewards.Debounce = 500 * time.Millisecond
	}
	if c.Rewards.PityThreshold == 0 {
		c.Rewards.PityThreshold = 5
	}
	if c.Leaderboard.UpdateTime == "" {
		c.Leaderboard.UpdateTime = "00:00"
	}
	if c.Leaderboard.Size == 0 {
		c.Leaderboard.Size = 10
	}
	if c.Groups.RetryMax == 0 {
		c.Groups.RetryMax = 3
	}
}

// Validate checks the values that the economy relies on
func (c *Config) Validate() error {
	var errs []error

	rates := []int64{c.Rewards.Rates.Normal, c.Rewards.Rates.Hostile, c.Rewards.Rates.Special,
		c.Rewards.Rates.Boss1, c.Rewards.Rates.Boss2, c.Rewards.Rates.Boss3}
	for _, r := range rates {
		if r < 0 || r > 100 {
			errs = append(errs, fmt.Errorf("rewards.rates: %d outside [0,100]", r))
		}
	}

	amounts := []int64{c.Rewards.MaxAmounts.Normal, c.Rewards.MaxAmounts.Hostile, c.Rewards.MaxAmounts.Special,
		c.Rewards.MaxAmounts.Boss1, c.Rewards.MaxAmounts.Boss2, c.Rewards.MaxAmounts.Boss3}
	for _, a := range amounts {
		if a < 0 {
			errs = append(errs, fmt.Errorf("rewards.maxAmounts: %d is negative", a))
		}
	}

	if c.Rewards.HardModeMultiplier <= 0 {
		errs = append(errs, errors.New("rewards.hardModeMultiplier must be positive"))
	}
	folded := make(map[string]string, len(c.Rewards.RankMultipliers))
	for name, m := range c.Rewards.RankMultipliers {
		if name == "" {
			errs = append(errs, errors.New("rewards.rankMultipliers: empty rank name"))
		}
		if other, ok := folded[strings.ToLower(name)]; ok {
			errs = append(errs, fmt.Errorf("rewards.rankMultipliers: %q and %q differ only in case", other, name))
		}
		folded[strings.ToLower(name)] = name
		if m <= 0 {
			errs = append(errs, fmt.Errorf("rewards.rankMultipliers[%s]: %v must be positive", name, m))
		}
	}

	if c.Economy.Tax.PromotionPercent < 0 || c.Economy.Tax.PromotionPercent > 100 {
		errs = append(errs, fmt.Errorf("economy.tax.promotionPercent: %d outside [0,100]", c.Economy.Tax.PromotionPercent))
	}

	if _, _, err := ParseUpdateTime(c.Leaderboard.UpdateTime); err != nil {
		errs = append(errs, err)
	}
	if c.Leaderboard.Size < 0 {
		errs = append(errs, errors.New("leaderboard.size must not be negative"))
	}

	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		errs = append(errs, fmt.Errorf("database.driver: unsupported %q", c.Database.Driver))
	}

	return errors.Join(errs...)
}

// ParseUpdateTime parses an HH:MM time of day
func ParseUpdateTime(s string) (int, int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, 0, fmt.Errorf("leaderboard.updateTime: %q is not HH:MM", s)
	}
	return t.Hour(), t.Minute(), nil
}

// GetDSN returns the database connection string
func (c *Config) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetServerAddress returns the server address for binding
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// GetEnvironment returns the current environment
func GetEnvironment() string {
	if env := os.Getenv("ECONOMY_ENV"); env != "" {
		return env
	}
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "development"
}

// Store holds the active configuration; reloads replace it wholesale
type Store struct {
	current atomic.Pointer[Config]
}

// NewStore creates a store holding cfg
func NewStore(cfg *Config) *Store {
	s := &Store{}
	s.current.Store(cfg)
	return s
}

// Get returns the active configuration
func (s *Store) Get() *Config {
	return s.current.Load()
}

// Replace validates cfg and makes it the active configuration
func (s *Store) Replace(cfg *Config) error {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}
	s.current.Store(cfg)
	return nil
}
