package groups

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/saradorri/economyengine/internal/domain"
	"github.com/saradorri/economyengine/internal/infrastructure/logger"
	"go.uber.org/zap"
)

type groupServiceImpl struct {
	baseURL string
	apiKey  string
	client  *retryablehttp.Client
	logger  *logger.Logger
}

// NewGroupService creates a client for the permission service. An empty
// baseURL yields a client that only logs assignments.
func NewGroupService(baseURL, apiKey string, retryMax int, log *logger.Logger) domain.GroupService {
	if baseURL == "" {
		return &noopGroupService{logger: log.Named("groups")}
	}

	client := retryablehttp.NewClient()
	client.RetryMax = retryMax
	client.RetryWaitMin = 200 * time.Millisecond
	client.RetryWaitMax = 5 * time.Second
	client.HTTPClient.Timeout = 30 * time.Second
	client.Logger = nil

	return &groupServiceImpl{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  client,
		logger:  log.Named("groups"),
	}
}

// SetGroup moves the player into group
func (g *groupServiceImpl) SetGroup(ctx context.Context, playerID int64, group string) error {
	url := fmt.Sprintf("%s/api/v1/players/%d/group", g.baseURL, playerID)
	body := domain.GroupAssignmentRequest{PlayerID: playerID, Group: group}
	if err := g.sendRequest(ctx, http.MethodPut, url, body, http.StatusOK); err != nil {
		g.logger.Error("Group assignment failed",
			zap.Int64("playerID", playerID), zap.String("group", group), zap.Error(err))
		return err
	}
	g.logger.Info("Group assigned", zap.Int64("playerID", playerID), zap.String("group", group))
	return nil
}

// method to send HTTP requests and handle responses
func (g *groupServiceImpl) sendRequest(ctx context.Context, method, url string, bodyData any, expectedStatus int) error {
	var body io.Reader
	if bodyData != nil {
		jsonBytes, err := json.Marshal(bodyData)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = bytes.NewBuffer(jsonBytes)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("x-api-key", g.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != expectedStatus && resp.StatusCode != http.StatusNoContent {
		var errResp domain.GroupErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Code != "" {
			return &domain.GroupServiceError{StatusCode: resp.StatusCode, Code: errResp.Code, Message: errResp.Msg}
		}
		return &domain.GroupServiceError{
			StatusCode: resp.StatusCode,
			Code:       "UNEXPECTED_STATUS",
			Message:    string(respBody),
		}
	}
	return nil
}

type noopGroupService struct {
	logger *logger.Logger
}

func (n *noopGroupService) SetGroup(_ context.Context, playerID int64, group string) error {
	n.logger.Info("No permission service configured, group not pushed",
		zap.Int64("playerID", playerID), zap.String("group", group))
	return nil
}
