package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/saradorri/economyengine/internal/config"
	"github.com/saradorri/economyengine/internal/domain"
	"github.com/saradorri/economyengine/internal/domain/mocks"
	"github.com/saradorri/economyengine/internal/http/middleware"
	"github.com/saradorri/economyengine/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	router  *gin.Engine
	ledger  *mocks.MockLedgerUseCase
	ranks   *mocks.MockRankUseCase
	board   *mocks.MockLeaderboardUseCase
	rewards *mocks.MockRewardUseCase
}

// newFixture wires every handler behind a stub that authenticates as player 42
func newFixture(t *testing.T) *fixture {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	f := &fixture{
		router:  gin.New(),
		ledger:  mocks.NewMockLedgerUseCase(ctrl),
		ranks:   mocks.NewMockRankUseCase(ctrl),
		board:   mocks.NewMockLeaderboardUseCase(ctrl),
		rewards: mocks.NewMockRewardUseCase(ctrl),
	}

	cfg := &config.Config{}
	cfg.ApplyDefaults()
	log := logger.NewNop()

	account := NewAccountHandler(f.ledger, config.NewStore(cfg), log)
	rank := NewRankHandler(f.ranks)
	board := NewLeaderboardHandler(f.board)
	admin := NewAdminHandler(f.ledger, log)
	events := NewEventHandler(f.ledger, f.rewards, f.ranks)

	f.router.Use(func(c *gin.Context) {
		c.Set(middleware.ContextPlayerID, int64(42))
		c.Set(middleware.ContextPlayerName, "alice")
		c.Next()
	})
	f.router.GET("/accounts/me/balance", account.MyBalance)
	f.router.GET("/accounts/:id/balance", account.Balance)
	f.router.GET("/accounts/:id/transactions", account.History)
	f.router.POST("/payments", account.Pay)
	f.router.GET("/ranks", rank.List)
	f.router.GET("/ranks/chain", rank.Chain)
	f.router.POST("/ranks/promote", rank.Promote)
	f.router.POST("/admin/ranks", rank.Add)
	f.router.DELETE("/admin/ranks/:name", rank.Delete)
	f.router.PUT("/admin/ranks/:name/next", rank.Relink)
	f.router.PUT("/admin/ranks/:name/price", rank.Reprice)
	f.router.GET("/leaderboard", board.Get)
	f.router.POST("/admin/leaderboard/refresh", board.Refresh)
	f.router.POST("/admin/accounts/:id/grant", admin.Grant)
	f.router.POST("/admin/grants", admin.GrantAll)
	f.router.POST("/admin/reset", admin.Reset)
	f.router.GET("/admin/house", admin.House)
	f.router.POST("/events/join", events.Join)
	f.router.POST("/events/disconnect", events.Disconnect)
	f.router.POST("/events/kill", events.Kill)
	f.router.POST("/events/boss", events.Boss)
	f.router.POST("/events/world", events.World)
	return f
}

func (f *fixture) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) *domain.AppError {
	var resp struct {
		Error   domain.AppError `json:"error"`
		Success bool            `json:"success"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	return &resp.Error
}

func TestAccountHandler_MyBalance(t *testing.T) {
	f := newFixture(t)
	f.ledger.EXPECT().AccountExists(gomock.Any(), int64(42)).Return(true, nil)
	f.ledger.EXPECT().GetBalance(gomock.Any(), int64(42)).Return(int64(1200), nil)

	w := f.do(http.MethodGet, "/accounts/me/balance", "")

	require.Equal(t, http.StatusOK, w.Code)
	var resp BalanceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, BalanceResponse{PlayerID: 42, Balance: 1200, Currency: "coins", Exists: true}, resp)
}

func TestAccountHandler_BalanceOfUnknownPlayer(t *testing.T) {
	f := newFixture(t)
	f.ledger.EXPECT().AccountExists(gomock.Any(), int64(7)).Return(false, nil)
	f.ledger.EXPECT().GetBalance(gomock.Any(), int64(7)).Return(int64(0), nil)

	w := f.do(http.MethodGet, "/accounts/7/balance", "")

	require.Equal(t, http.StatusOK, w.Code)
	var resp BalanceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Exists)
	assert.Equal(t, int64(0), resp.Balance)
}

func TestAccountHandler_BalanceBadID(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodGet, "/accounts/abc/balance", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, domain.ErrCodeInvalidFormat, decodeError(t, w).Code)
}

func TestAccountHandler_History(t *testing.T) {
	f := newFixture(t)
	f.ledger.EXPECT().History(gomock.Any(), int64(42), 5, 10).Return([]*domain.Transaction{
		{ID: 3, AccountID: 42, PlayerName: "alice", Reason: domain.ReasonPayment, Amount: -250},
	}, nil)

	w := f.do(http.MethodGet, "/accounts/42/transactions?limit=5&offset=10", "")

	require.Equal(t, http.StatusOK, w.Code)
	var resp []TransactionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "payment", resp[0].Reason)
	assert.Equal(t, int64(-250), resp[0].Amount)
}

func TestAccountHandler_Pay(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(f *fixture)
		wantStatus int
		wantCode   string
	}{
		{
			name: "success",
			body: `{"to":43,"amount":250}`,
			setup: func(f *fixture) {
				f.ledger.EXPECT().Pay(gomock.Any(), int64(42), int64(43), int64(250)).Return(&domain.Transfer{
					Debit:  &domain.Transaction{AccountID: 42, Reason: domain.ReasonPayment, Amount: -250},
					Credit: &domain.Transaction{AccountID: 43, Reason: domain.ReasonPayment, Amount: 250},
				}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "insufficient balance",
			body: `{"to":43,"amount":250}`,
			setup: func(f *fixture) {
				f.ledger.EXPECT().Pay(gomock.Any(), int64(42), int64(43), int64(250)).
					Return(nil, domain.NewInsufficientFundsError(50))
			},
			wantStatus: http.StatusConflict,
			wantCode:   domain.ErrCodeInsufficientBalance,
		},
		{
			name:       "zero amount rejected before the ledger",
			body:       `{"to":43,"amount":0}`,
			setup:      func(f *fixture) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   domain.ErrCodeInvalidFormat,
		},
		{
			name:       "malformed body",
			body:       `{"to":`,
			setup:      func(f *fixture) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   domain.ErrCodeInvalidFormat,
		},
		{
			name: "unexpected failure",
			body: `{"to":43,"amount":1}`,
			setup: func(f *fixture) {
				f.ledger.EXPECT().Pay(gomock.Any(), int64(42), int64(43), int64(1)).Return(nil, errors.New("boom"))
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			w := f.do(http.MethodPost, "/payments", tt.body)

			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, w).Code)
				return
			}
			var resp PayResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, int64(-250), resp.Debit.Amount)
			assert.Equal(t, int64(250), resp.Credit.Amount)
		})
	}
}

func TestAccountHandler_PayReportsRemaining(t *testing.T) {
	f := newFixture(t)
	f.ledger.EXPECT().Pay(gomock.Any(), int64(42), int64(43), int64(500)).
		Return(nil, domain.NewInsufficientFundsError(380))

	w := f.do(http.MethodPost, "/payments", `{"to":43,"amount":500}`)

	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "380 more needed", decodeError(t, w).Details)
}

func TestRankHandler_Promote(t *testing.T) {
	f := newFixture(t)
	f.ranks.EXPECT().Promote(gomock.Any(), int64(42)).Return(&domain.PromotionResult{
		AccountID: 42, FromRank: "recruit", ToRank: "soldier", GroupName: "soldiers", Debited: 500,
	}, nil)

	w := f.do(http.MethodPost, "/ranks/promote", "")

	require.Equal(t, http.StatusOK, w.Code)
	var resp domain.PromotionResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "soldier", resp.ToRank)
	assert.Equal(t, int64(500), resp.Debited)
}

func TestRankHandler_Chain(t *testing.T) {
	f := newFixture(t)
	soldier := "soldier"
	f.ranks.EXPECT().Chain(gomock.Any(), "").Return([]*domain.Rank{
		{Name: "recruit", GroupName: "recruits", NextRank: &soldier},
		{Name: "soldier", RequiredAmount: 500, GroupName: "soldiers"},
	}, nil)
	f.ranks.EXPECT().Chain(gomock.Any(), "general").
		Return(nil, domain.NewNotFoundError(domain.ErrCodeRankNotFound, "Rank"))

	w := f.do(http.MethodGet, "/ranks/chain", "")
	require.Equal(t, http.StatusOK, w.Code)
	var chain []domain.Rank
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &chain))
	require.Len(t, chain, 2)
	assert.Equal(t, "soldier", chain[1].Name)

	w = f.do(http.MethodGet, "/ranks/chain?start=general", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, domain.ErrCodeRankNotFound, decodeError(t, w).Code)
}

func TestRankHandler_PromoteTerminal(t *testing.T) {
	f := newFixture(t)
	f.ranks.EXPECT().Promote(gomock.Any(), int64(42)).
		Return(nil, domain.NewConflictError(domain.ErrCodeTerminalRank, "Already at the highest rank"))

	w := f.do(http.MethodPost, "/ranks/promote", "")

	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, domain.ErrCodeTerminalRank, decodeError(t, w).Code)
}

func TestRankHandler_Admin(t *testing.T) {
	t.Run("add", func(t *testing.T) {
		f := newFixture(t)
		f.ranks.EXPECT().Add(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r *domain.Rank) (*domain.Rank, error) {
				assert.Equal(t, "captain", r.Name)
				assert.Equal(t, int64(2000), r.RequiredAmount)
				assert.Nil(t, r.NextRank)
				return r, nil
			})

		w := f.do(http.MethodPost, "/admin/ranks", `{"name":"captain","required_amount":2000,"group_name":"captains"}`)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("add negative amount", func(t *testing.T) {
		f := newFixture(t)

		w := f.do(http.MethodPost, "/admin/ranks", `{"name":"captain","required_amount":-1,"group_name":"captains"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("delete in use", func(t *testing.T) {
		f := newFixture(t)
		f.ranks.EXPECT().Delete(gomock.Any(), "soldier").
			Return(domain.NewConflictError(domain.ErrCodeRankInUse, "Rank is held by players"))

		w := f.do(http.MethodDelete, "/admin/ranks/soldier", "")
		require.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, domain.ErrCodeRankInUse, decodeError(t, w).Code)
	})

	t.Run("delete", func(t *testing.T) {
		f := newFixture(t)
		f.ranks.EXPECT().Delete(gomock.Any(), "captain").Return(nil)

		w := f.do(http.MethodDelete, "/admin/ranks/captain", "")
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("relink to terminal", func(t *testing.T) {
		f := newFixture(t)
		f.ranks.EXPECT().Relink(gomock.Any(), "soldier", (*string)(nil)).
			Return(&domain.Rank{Name: "soldier", GroupName: "soldiers"}, nil)

		w := f.do(http.MethodPut, "/admin/ranks/soldier/next", `{"next_rank":null}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("relink cycle", func(t *testing.T) {
		f := newFixture(t)
		f.ranks.EXPECT().Relink(gomock.Any(), "captain", gomock.Any()).
			Return(nil, domain.NewConflictError(domain.ErrCodeRankCycle, "Link would create a cycle"))

		w := f.do(http.MethodPut, "/admin/ranks/captain/next", `{"next_rank":"recruit"}`)
		require.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, domain.ErrCodeRankCycle, decodeError(t, w).Code)
	})

	t.Run("reprice requires amount", func(t *testing.T) {
		f := newFixture(t)

		w := f.do(http.MethodPut, "/admin/ranks/soldier/price", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("reprice", func(t *testing.T) {
		f := newFixture(t)
		f.ranks.EXPECT().Reprice(gomock.Any(), "soldier", int64(750)).
			Return(&domain.Rank{Name: "soldier", RequiredAmount: 750, GroupName: "soldiers"}, nil)

		w := f.do(http.MethodPut, "/admin/ranks/soldier/price", `{"required_amount":750}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestLeaderboardHandler(t *testing.T) {
	f := newFixture(t)
	f.board.EXPECT().Snapshot().Return(domain.LeaderboardSnapshot{
		Entries: []domain.LeaderboardEntry{{Position: 1, PlayerID: 9, PlayerName: "zed", CurrencyAmount: 900}},
	})

	w := f.do(http.MethodGet, "/leaderboard", "")

	require.Equal(t, http.StatusOK, w.Code)
	var resp domain.LeaderboardSnapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Entries, 1)
	assert.Equal(t, int64(900), resp.Entries[0].CurrencyAmount)
}

func TestLeaderboardHandler_RefreshFailure(t *testing.T) {
	f := newFixture(t)
	f.board.EXPECT().Recompute(gomock.Any()).Return(nil, domain.NewDatabaseError("list accounts", errors.New("down")))

	w := f.do(http.MethodPost, "/admin/leaderboard/refresh", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestAdminHandler(t *testing.T) {
	t.Run("grant", func(t *testing.T) {
		f := newFixture(t)
		f.ledger.EXPECT().Grant(gomock.Any(), int64(7), int64(500)).
			Return(&domain.Transaction{AccountID: 7, Reason: domain.ReasonAdminGrant, Amount: 500}, nil)

		w := f.do(http.MethodPost, "/admin/accounts/7/grant", `{"amount":500}`)
		require.Equal(t, http.StatusOK, w.Code)
		var resp TransactionResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "admin_grant", resp.Reason)
	})

	t.Run("grant unknown account", func(t *testing.T) {
		f := newFixture(t)
		f.ledger.EXPECT().Grant(gomock.Any(), int64(7), int64(500)).
			Return(nil, domain.NewNotFoundError(domain.ErrCodeAccountNotFound, "Account"))

		w := f.do(http.MethodPost, "/admin/accounts/7/grant", `{"amount":500}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("grant all", func(t *testing.T) {
		f := newFixture(t)
		f.ledger.EXPECT().GrantAll(gomock.Any(), int64(100)).
			Return([]*domain.Transaction{{AccountID: 1}, {AccountID: 2}, {AccountID: 3}}, nil)

		w := f.do(http.MethodPost, "/admin/grants", `{"amount":100}`)
		require.Equal(t, http.StatusOK, w.Code)
		var resp GrantAllResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, GrantAllResponse{Accounts: 3, Amount: 100}, resp)
	})

	t.Run("reset", func(t *testing.T) {
		f := newFixture(t)
		f.ledger.EXPECT().ResetAllBalances(gomock.Any()).Return(int64(3), nil)

		w := f.do(http.MethodPost, "/admin/reset", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"accounts":3}`, w.Body.String())
	})

	t.Run("house", func(t *testing.T) {
		f := newFixture(t)
		f.ledger.EXPECT().VerifyHouse(gomock.Any()).
			Return(&domain.HouseReport{AccountID: 0, Balance: 50, TaxTotal: 50, Balanced: true}, nil)

		w := f.do(http.MethodGet, "/admin/house", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"account_id":0,"balance":50,"tax_total":50,"balanced":true}`, w.Body.String())
	})
}

func TestEventHandler_Join(t *testing.T) {
	f := newFixture(t)
	f.ledger.EXPECT().EnsureAccount(gomock.Any(), int64(5), "bob").Return(true, nil)

	w := f.do(http.MethodPost, "/events/join", `{"player_id":5,"player_name":"bob"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"created":true}`, w.Body.String())
}

func TestEventHandler_Disconnect(t *testing.T) {
	f := newFixture(t)
	f.rewards.EXPECT().PlayerDisconnected(int64(5))

	w := f.do(http.MethodPost, "/events/disconnect", `{"player_id":5}`)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestEventHandler_Kill(t *testing.T) {
	f := newFixture(t)
	f.rewards.EXPECT().HandleKill(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e domain.KillEvent) (*domain.RewardResult, error) {
			assert.Equal(t, int64(5), e.PlayerID)
			assert.Equal(t, domain.NPCHostile, e.Classification)
			assert.True(t, e.HardMode)
			assert.False(t, e.At.IsZero())
			return &domain.RewardResult{PlayerID: 5, Evaluated: true, Amount: 7, Reason: domain.ReasonHostileKill}, nil
		})

	w := f.do(http.MethodPost, "/events/kill", `{"player_id":5,"player_name":"bob","npc_id":21,"classification":"Hostile","hard_mode":true}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp domain.RewardResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.Amount)
}

func TestEventHandler_KillClassifiesByNPCID(t *testing.T) {
	f := newFixture(t)
	f.rewards.EXPECT().HandleKill(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e domain.KillEvent) (*domain.RewardResult, error) {
			assert.Equal(t, domain.NPCClass(""), e.Classification)
			assert.Equal(t, 21, e.NPCID)
			return &domain.RewardResult{PlayerID: 5}, nil
		})

	w := f.do(http.MethodPost, "/events/kill", `{"player_id":5,"npc_id":21}`)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestEventHandler_KillUnknownClassification(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodPost, "/events/kill", `{"player_id":5,"classification":"dragon"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, domain.ErrCodeInvalidFormat, decodeError(t, w).Code)
}

func TestEventHandler_Boss(t *testing.T) {
	f := newFixture(t)
	f.rewards.EXPECT().ArmBoss("bulb").Return(domain.BossToken{ID: "t-1", Source: "bulb"})

	w := f.do(http.MethodPost, "/events/boss", `{"source":"bulb"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp domain.BossToken
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "t-1", resp.ID)
}

func TestEventHandler_World(t *testing.T) {
	f := newFixture(t)
	f.ranks.EXPECT().CheckWorld(gomock.Any(), "w2").
		Return(&domain.WorldChangeResult{Changed: true, Previous: "w1", Current: "w2", Demoted: 4}, nil)

	w := f.do(http.MethodPost, "/events/world", `{"world_id":"w2"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"changed":true,"previous_world_id":"w1","current_world_id":"w2","demoted":4}`, w.Body.String())
}
