package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"quizdoc/internal/quiz"
)

const defaultServer = "http://localhost:5000/api"

var ErrServiceUnavailable = errors.New("quiz service unavailable")

type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if strings.TrimSpace(e.Message) == "" {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
	return e.Message
}

// HTTPClient talks to the quiz service and implements quiz.Gateway.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

type replaceQuizRequest struct {
	Questions []quiz.Question `json:"questions"`
}

type errorResponse struct {
	Message string `json:"message"`
}

func NewHTTPClient(baseURL string, httpClient *http.Client) *HTTPClient {
	baseURL = strings.TrimSpace(baseURL)
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		baseURL = defaultServer
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &HTTPClient{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

func (c *HTTPClient) LoadQuiz(ctx context.Context) (quiz.Quiz, error) {
	var payload quiz.Quiz
	if err := c.doJSON(ctx, http.MethodGet, "/test", nil, &payload); err != nil {
		return quiz.Quiz{}, err
	}
	return payload, nil
}

// ReplaceQuiz sends only the questions; the service stamps the timestamps.
func (c *HTTPClient) ReplaceQuiz(ctx context.Context, candidate quiz.Quiz) (quiz.Quiz, error) {
	var payload quiz.Quiz
	request := replaceQuizRequest{Questions: candidate.Questions}
	if err := c.doJSON(ctx, http.MethodPut, "/test", request, &payload); err != nil {
		return quiz.Quiz{}, err
	}
	return payload, nil
}

func (c *HTTPClient) doJSON(ctx context.Context, method, path string, requestBody any, responseBody any) error {
	fullURL := c.baseURL + path

	var body io.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return err
		}
		body = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return err
	}
	if requestBody != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer response.Body.Close()

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		apiErr := APIError{StatusCode: response.StatusCode}
		var payload errorResponse
		if err := json.NewDecoder(response.Body).Decode(&payload); err == nil && strings.TrimSpace(payload.Message) != "" {
			apiErr.Message = payload.Message
		}
		if apiErr.Message == "" {
			apiErr.Message = response.Status
		}
		return &apiErr
	}

	if responseBody == nil {
		return nil
	}
	return json.NewDecoder(response.Body).Decode(responseBody)
}
