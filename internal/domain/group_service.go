package domain

import (
	"context"
	"fmt"
)

// GroupService assigns access-level groups in the host's permission system
type GroupService interface {
	SetGroup(ctx context.Context, playerID int64, group string) error
}

// GroupAssignmentRequest is the body sent to the permission service
type GroupAssignmentRequest struct {
	PlayerID int64  `json:"playerId"`
	Group    string `json:"group"`
}

// GroupErrorResponse represents error responses from the permission service
type GroupErrorResponse struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}

// GroupServiceError represents a permission service error with status code
type GroupServiceError struct {
	StatusCode int
	Code       string
	Message    string
}

// Error implements the error interface
func (e *GroupServiceError) Error() string {
	return fmt.Sprintf("group service error %d: %s", e.StatusCode, e.Message)
}

// Is4xxError checks if the error is a 4xx client error
func (e *GroupServiceError) Is4xxError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}
