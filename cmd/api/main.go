// Package main Economy Engine API
//
// Economy Engine runs the in-game currency of a multiplayer server: player
// balances with an append-only audit log, probabilistic kill rewards, a
// purchasable rank ladder and a daily leaderboard.
//
//	Schemes: http, https
//	Host: localhost:8080
//	BasePath: /api/v1
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
//	Security:
//	- bearer
package main

import (
	"context"

	_ "github.com/saradorri/economyengine/docs"
	"github.com/saradorri/economyengine/internal/app"
)

// @title Economy Engine API Service
// @version 1.0
// @description Economy Engine keeps player balances, rewards, ranks and the leaderboard of a game server.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	ctx := context.Background()
	application := app.NewApplication(ctx)
	application.Setup()
}
