package app

import (
	"github.com/saradorri/economyengine/internal/domain"
	"github.com/saradorri/economyengine/internal/http/handlers"
	"github.com/saradorri/economyengine/internal/infrastructure/repository"
	"github.com/saradorri/economyengine/internal/usecase/leaderboard"
	"github.com/saradorri/economyengine/internal/usecase/ledger"
	"github.com/saradorri/economyengine/internal/usecase/rank"
	"github.com/saradorri/economyengine/internal/usecase/reward"
	"go.uber.org/fx"
)

var repositoryModule = fx.Provide(
	repository.NewAccountRepository,
	repository.NewTransactionRepository,
	repository.NewRankRepository,
	repository.NewLeaderboardRepository,
	repository.NewWorldStateRepository,
	repository.NewOutboxRepository,
)

var usecaseModule = fx.Provide(
	ledger.NewLedgerUseCase,
	func(uc *ledger.LedgerUseCase) domain.LedgerUseCase { return uc },

	rank.NewRankUseCase,
	func(uc *rank.RankUseCase) domain.RankUseCase { return uc },

	leaderboard.NewLeaderboardUseCase,
	leaderboard.NewScheduler,
	func(uc *leaderboard.LeaderboardUseCase) domain.LeaderboardUseCase { return uc },

	reward.NewRNG,
	reward.NewSessionStore,
	reward.NewBossGate,
	reward.NewService,
	func(s *reward.Service) domain.RewardUseCase { return s },
)

var handlerModule = fx.Provide(
	handlers.NewAccountHandler,
	handlers.NewRankHandler,
	handlers.NewLeaderboardHandler,
	handlers.NewAdminHandler,
	handlers.NewEventHandler,
)
