// Package main Bonus Ledger API
//
// Bonus Ledger is the grant execution and point-stock accounting service
// behind the operations console. Operators issue streak and referral bonus
// grants against players; every payout is funded by a game's point stock and
// recorded in an append-only grant ledger.
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

	_ "github.com/betops/bonusledger/docs"
	"github.com/betops/bonusledger/internal/app"
)

// @title Bonus Ledger API Service
// @version 1.0
// @description Bonus Ledger executes operator-issued bonus grants funded by game point stock and keeps the append-only grant ledger.
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
