package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/saradorri/economyengine/internal/config"
	"github.com/saradorri/economyengine/internal/infrastructure/auth"
	"github.com/spf13/viper"
)

// Issues a bearer token for the game server, an operator or a player.
func main() {
	var (
		configPath = flag.String("config", "./config", "Path to config directory")
		configFile = flag.String("env", "development", "Environment")
		role       = flag.String("role", auth.RoleServer, "Token role: player, admin, server")
		playerID   = flag.Int64("player", 0, "Player ID carried by the token")
		name       = flag.String("name", "", "Player name carried by the token")
		ttl        = flag.Duration("ttl", 0, "Token lifetime, overrides jwt.expiry")
	)
	flag.Parse()

	if !auth.ValidRole(*role) {
		log.Fatalf("Unknown role: %s", *role)
	}

	viper.SetConfigName(fmt.Sprintf("config.%s", *configFile))
	viper.SetConfigType("yml")
	viper.AddConfigPath(*configPath)
	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var jwtCfg config.JWTConfig
	if err := viper.UnmarshalKey("jwt", &jwtCfg); err != nil {
		log.Fatalf("Failed to read jwt config: %v", err)
	}
	if jwtCfg.Secret == "" {
		log.Fatalf("jwt.secret is not set")
	}
	if *ttl > 0 {
		jwtCfg.Expiry = *ttl
	}
	if jwtCfg.Expiry == 0 {
		jwtCfg.Expiry = config.DefaultTokenExpiry
	}

	token, err := auth.NewJWTService(&jwtCfg).GenerateToken(*playerID, *name, *role)
	if err != nil {
		log.Fatalf("Failed to generate token: %v", err)
	}
	fmt.Println(token)
}
