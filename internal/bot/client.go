package bot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"creatingtasks/internal/adapter/http/dto"
	"creatingtasks/pkg/apierrors"
)

var ErrUnauthorized = errors.New("api rejected the token")

// APIError is a non-2xx answer from the REST API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("api returned status %d: %s", e.StatusCode, e.Message)
}

// TaskAPI is the part of the REST API the bot talks to.
type TaskAPI interface {
	TelegramLogin(ctx context.Context, req dto.TelegramLoginRequest) (dto.SessionResponse, error)
	MyTasks(ctx context.Context, token string) ([]dto.TaskItem, error)
	GetTask(ctx context.Context, token string, taskID uint64) (dto.TaskItem, error)
	CompleteTask(ctx context.Context, token string, taskID uint64) (dto.TaskItem, error)
}

type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

var _ TaskAPI = (*APIClient)(nil)

// NewAPIClient expects baseURL to include the /api prefix.
func NewAPIClient(baseURL string, httpClient *http.Client) *APIClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &APIClient{baseURL: strings.TrimRight(baseURL, "/"), httpClient: httpClient}
}

func (c *APIClient) TelegramLogin(ctx context.Context, req dto.TelegramLoginRequest) (dto.SessionResponse, error) {
	var session dto.SessionResponse
	err := c.do(ctx, http.MethodPost, "/auth/telegram-login", "", req, &session)
	return session, err
}

func (c *APIClient) MyTasks(ctx context.Context, token string) ([]dto.TaskItem, error) {
	var tasks []dto.TaskItem
	err := c.do(ctx, http.MethodGet, "/tasks/my", token, nil, &tasks)
	return tasks, err
}

func (c *APIClient) GetTask(ctx context.Context, token string, taskID uint64) (dto.TaskItem, error) {
	var task dto.TaskItem
	err := c.do(ctx, http.MethodGet, "/tasks/"+strconv.FormatUint(taskID, 10), token, nil, &task)
	return task, err
}

func (c *APIClient) CompleteTask(ctx context.Context, token string, taskID uint64) (dto.TaskItem, error) {
	var task dto.TaskItem
	err := c.do(ctx, http.MethodPost, "/tasks/"+strconv.FormatUint(taskID, 10)+"/complete", token, nil, &task)
	return task, err
}

func (c *APIClient) do(ctx context.Context, method, path, token string, body, out any) error {
	var payload io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		payload = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Language", "ru")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var envelope apierrors.JsonErr
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil {
			apiErr.Message = envelope.ErrDetails.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}
