package trust

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

// DifyClient talks to a Dify-style chat-messages API in blocking mode.
type DifyClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewDifyClient builds a client with a bounded request timeout. Blocking
// completions are slow; callers should allow close to a minute.
func NewDifyClient(baseURL, apiKey string, timeout time.Duration) *DifyClient {
	return &DifyClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

type chatMessageRequest struct {
	Query          string                 `json:"query"`
	ResponseMode   string                 `json:"response_mode"`
	User           string                 `json:"user"`
	Inputs         map[string]interface{} `json:"inputs"`
	ConversationID string                 `json:"conversation_id"`
	Files          []interface{}          `json:"files"`
}

type chatMessageResponse struct {
	Answer string `json:"answer"`
}

type difyErrorResponse struct {
	Message string `json:"message"`
}

// Ask sends one blocking chat-messages request and returns the free-text
// answer. Errors follow the service taxonomy: RequestError when the request
// could not be built, TimeoutError when no response arrived, UpstreamError
// when the provider answered with an error status.
func (c *DifyClient) Ask(ctx context.Context, query, user string) (string, error) {
	body, err := json.Marshal(chatMessageRequest{
		Query:        query,
		ResponseMode: "blocking",
		User:         user,
		Inputs:       map[string]interface{}{},
		Files:        []interface{}{},
	})
	if err != nil {
		return "", RequestError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat-messages", bytes.NewReader(body))
	if err != nil {
		return "", RequestError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", TimeoutError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr difyErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return "", UpstreamError{Status: resp.StatusCode, Message: apiErr.Message}
	}

	var out chatMessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", UpstreamError{Status: resp.StatusCode, Message: "unreadable completion response"}
	}
	return out.Answer, nil
}
