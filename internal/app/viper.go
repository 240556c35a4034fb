package app

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/saradorri/economyengine/internal/config"
	"github.com/saradorri/economyengine/internal/infrastructure/logger"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func (a *application) setupViper(path string) error {
	// Get environment (default to development)
	env := config.GetEnvironment()

	viper.SetConfigName(fmt.Sprintf("config.%s", env))
	viper.SetConfigType("yml")

	viper.AddConfigPath(path)

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvPrefix("ECONOMY")

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	err := viper.ReadInConfig()
	if err != nil {
		return fmt.Errorf("could not read config file: %w", err)
	}

	c, err := loadConfig()
	if err != nil {
		return err
	}
	a.config = c
	a.store = config.NewStore(c)

	fmt.Println("[x] Config loaded successfully")
	return nil
}

func loadConfig() (*config.Config, error) {
	var c config.Config
	if err := viper.Unmarshal(&c); err != nil {
		return nil, err
	}
	c.ApplyDefaults()
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &c, nil
}

// watchConfig swaps the active configuration whenever the file changes.
// A file that fails validation is ignored and the previous config stays active.
func (a *application) watchConfig(store *config.Store, log *logger.Logger) {
	viper.OnConfigChange(func(e fsnotify.Event) {
		var c config.Config
		if err := viper.Unmarshal(&c); err != nil {
			log.Error("Failed to reload config", zap.String("file", e.Name), zap.Error(err))
			return
		}
		if err := store.Replace(&c); err != nil {
			log.Error("Rejected config reload", zap.String("file", e.Name), zap.Error(err))
			return
		}
		log.Info("Config reloaded", zap.String("file", e.Name))
	})
	viper.WatchConfig()
}
