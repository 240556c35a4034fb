package groups

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/saradorri/economyengine/internal/domain"
	"github.com/saradorri/economyengine/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetGroup_Success(t *testing.T) {
	var got domain.GroupAssignmentRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v1/players/42/group", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("x-api-key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	svc := NewGroupService(server.URL, "secret", 0, logger.NewNop())
	err := svc.SetGroup(context.Background(), 42, "veteran")

	require.NoError(t, err)
	assert.Equal(t, int64(42), got.PlayerID)
	assert.Equal(t, "veteran", got.Group)
}

func TestSetGroup_ClientErrorIsPermanent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code":"UNKNOWN_GROUP","msg":"no such group"}`))
	}))
	defer server.Close()

	svc := NewGroupService(server.URL, "secret", 2, logger.NewNop())
	err := svc.SetGroup(context.Background(), 1, "ghost")

	require.Error(t, err)
	assert.True(t, IsPermanent(err))
	var groupErr *domain.GroupServiceError
	require.ErrorAs(t, err, &groupErr)
	assert.Equal(t, "UNKNOWN_GROUP", groupErr.Code)
}

func TestSetGroup_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	svc := NewGroupService(server.URL, "secret", 2, logger.NewNop())
	err := svc.SetGroup(context.Background(), 1, "veteran")

	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestSetGroup_NoURL(t *testing.T) {
	svc := NewGroupService("", "", 3, logger.NewNop())
	assert.NoError(t, svc.SetGroup(context.Background(), 1, "veteran"))
}
