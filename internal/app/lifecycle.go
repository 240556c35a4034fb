package app

import (
	"context"

	"github.com/saradorri/economyengine/internal/domain"
	"github.com/saradorri/economyengine/internal/http"
	"github.com/saradorri/economyengine/internal/infrastructure/logger"
	"github.com/saradorri/economyengine/internal/usecase/leaderboard"
	"github.com/saradorri/economyengine/internal/usecase/ledger"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func (a *application) registerLifecycle(
	lc fx.Lifecycle,
	server *http.Server,
	scheduler *leaderboard.Scheduler,
	board *leaderboard.LeaderboardUseCase,
	processor domain.OutboxProcessor,
	ledgerUC *ledger.LedgerUseCase,
	db *gorm.DB,
	log *logger.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if _, err := ledgerUC.EnsureAccount(ctx, ledgerUC.HouseAccountID(), ledger.HouseAccountName); err != nil {
				return err
			}
			report, err := ledgerUC.VerifyHouse(ctx)
			if err != nil {
				return err
			}
			if !report.Balanced {
				log.Warn("House balance does not match tax feed",
					zap.Int64("balance", report.Balance), zap.Int64("taxTotal", report.TaxTotal))
			}

			if err := board.LoadPersisted(ctx); err != nil {
				log.Warn("Leaderboard stays empty until the next update", zap.Error(err))
			}

			scheduler.Start()
			processor.StartBackgroundProcessing()
			server.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			err := server.Shutdown(ctx)
			processor.StopBackgroundProcessing()
			scheduler.Stop()
			if sqlDB, dbErr := db.DB(); dbErr == nil {
				_ = sqlDB.Close()
			}
			_ = log.Sync()
			return err
		},
	})
}
