package domain

import (
	"fmt"
)

// DirectoryService defines the interface for the external player directory
type DirectoryService interface {
	SearchPlayers(query string) ([]DirectoryPlayer, error)
	GetProfile(playerID int64) (DirectoryProfile, error)
}

// DirectoryPlayer represents a search hit from the player directory
type DirectoryPlayer struct {
	PlayerID int64  `json:"playerId"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}

// DirectoryProfile represents the full profile record from the directory
type DirectoryProfile struct {
	PlayerID   int64  `json:"playerId"`
	Username   string `json:"username"`
	Email      string `json:"email,omitempty"`
	Country    string `json:"country,omitempty"`
	ReferredBy *int64 `json:"referredBy,omitempty"`
}

// DirectoryErrorResponse represents error responses from the directory service
type DirectoryErrorResponse struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}

// DirectoryServiceError represents a directory service error with status code
type DirectoryServiceError struct {
	StatusCode int
	Code       string
	Message    string
}

// Error implements the error interface
func (e *DirectoryServiceError) Error() string {
	return fmt.Sprintf("%s", e.Message)
}

// Is4xxError checks if the error is a 4xx client error
func (e *DirectoryServiceError) Is4xxError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}
