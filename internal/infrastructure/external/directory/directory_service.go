package directory

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/betops/bonusledger/internal/domain"
	"github.com/hashicorp/go-retryablehttp"
)

type directoryServiceImpl struct {
	baseURL string
	apiKey  string
	client  *retryablehttp.Client
}

// NewDirectoryService creates a client for the external player directory.
// The directory is read-only from our side, so idempotent retries are safe.
func NewDirectoryService(baseURL, apiKey string, retryMax, timeoutSec int) domain.DirectoryService {
	client := retryablehttp.NewClient()
	client.RetryMax = retryMax
	client.HTTPClient.Timeout = time.Duration(timeoutSec) * time.Second
	client.Logger = nil

	return &directoryServiceImpl{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  client,
	}
}

func (d *directoryServiceImpl) SearchPlayers(query string) ([]domain.DirectoryPlayer, error) {
	reqURL := fmt.Sprintf("%s/api/v1/players?q=%s", d.baseURL, url.QueryEscape(query))
	var resp []domain.DirectoryPlayer
	err := d.sendRequest(reqURL, &resp)
	return resp, err
}

func (d *directoryServiceImpl) GetProfile(playerID int64) (domain.DirectoryProfile, error) {
	reqURL := fmt.Sprintf("%s/api/v1/players/%d", d.baseURL, playerID)
	var resp domain.DirectoryProfile
	err := d.sendRequest(reqURL, &resp)
	return resp, err
}

// sendRequest sends a GET request and decodes the JSON response
func (d *directoryServiceImpl) sendRequest(reqURL string, out any) error {
	req, err := retryablehttp.NewRequest(http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("x-api-key", d.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp domain.DirectoryErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Code != "" {
			return &domain.DirectoryServiceError{
				StatusCode: resp.StatusCode,
				Code:       errResp.Code,
				Message:    errResp.Msg,
			}
		}
		return &domain.DirectoryServiceError{
			StatusCode: resp.StatusCode,
			Code:       "UNEXPECTED_STATUS",
			Message:    fmt.Sprintf("directory service returned status %d", resp.StatusCode),
		}
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
