package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/saradorri/economyengine/internal/config"
	"github.com/saradorri/economyengine/internal/domain"
	"github.com/saradorri/economyengine/internal/domain/mocks"
	"github.com/saradorri/economyengine/internal/http/handlers"
	"github.com/saradorri/economyengine/internal/http/middleware"
	"github.com/saradorri/economyengine/internal/infrastructure/auth"
	"github.com/saradorri/economyengine/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServer_RoleGroups(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledger := mocks.NewMockLedgerUseCase(ctrl)
	ranks := mocks.NewMockRankUseCase(ctrl)
	board := mocks.NewMockLeaderboardUseCase(ctrl)
	rewards := mocks.NewMockRewardUseCase(ctrl)

	cfg := &config.Config{}
	cfg.ApplyDefaults()
	log := logger.NewNop()
	jwtService := auth.NewJWTService(&config.JWTConfig{Secret: "test", Expiry: time.Hour})

	server := NewServer(jwtService, Handlers{
		Account:     handlers.NewAccountHandler(ledger, config.NewStore(cfg), log),
		Rank:        handlers.NewRankHandler(ranks),
		Leaderboard: handlers.NewLeaderboardHandler(board),
		Admin:       handlers.NewAdminHandler(ledger, log),
		Event:       handlers.NewEventHandler(ledger, rewards, ranks),
	}, middleware.NewErrorHandler(log), log, ":0")

	token := func(role string) string {
		tok, err := jwtService.GenerateToken(42, "alice", role)
		require.NoError(t, err)
		return "Bearer " + tok
	}

	board.EXPECT().Snapshot().Return(domain.LeaderboardSnapshot{}).Times(3)
	ledger.EXPECT().ResetAllBalances(gomock.Any()).Return(int64(0), nil)
	rewards.EXPECT().ArmBoss("bulb").Return(domain.BossToken{ID: "t"})

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		auth   string
		status int
	}{
		{"health needs no token", http.MethodGet, "/health", "", "", http.StatusOK},
		{"leaderboard needs a token", http.MethodGet, "/api/v1/leaderboard", "", "", http.StatusUnauthorized},
		{"player reads leaderboard", http.MethodGet, "/api/v1/leaderboard", "", token(auth.RolePlayer), http.StatusOK},
		{"admin reads leaderboard", http.MethodGet, "/api/v1/leaderboard", "", token(auth.RoleAdmin), http.StatusOK},
		{"server reads leaderboard", http.MethodGet, "/api/v1/leaderboard", "", token(auth.RoleServer), http.StatusOK},
		{"player cannot reset", http.MethodPost, "/api/v1/admin/reset", "", token(auth.RolePlayer), http.StatusForbidden},
		{"server cannot reset", http.MethodPost, "/api/v1/admin/reset", "", token(auth.RoleServer), http.StatusForbidden},
		{"admin resets", http.MethodPost, "/api/v1/admin/reset", "", token(auth.RoleAdmin), http.StatusOK},
		{"player cannot send events", http.MethodPost, "/api/v1/events/boss", `{"source":"bulb"}`, token(auth.RolePlayer), http.StatusForbidden},
		{"admin cannot send events", http.MethodPost, "/api/v1/events/boss", `{"source":"bulb"}`, token(auth.RoleAdmin), http.StatusForbidden},
		{"server sends events", http.MethodPost, "/api/v1/events/boss", `{"source":"bulb"}`, token(auth.RoleServer), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req *http.Request
			if tt.body != "" {
				req = httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
				req.Header.Set("Content-Type", "application/json")
			} else {
				req = httptest.NewRequest(tt.method, tt.path, nil)
			}
			if tt.auth != "" {
				req.Header.Set("Authorization", tt.auth)
			}
			w := httptest.NewRecorder()
			server.Router().ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
		})
	}
}
