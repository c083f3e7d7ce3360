package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/ironcoach/ironcoach/internal/model/coach"
)

// Client talks to the coach backend: the ask endpoint and the strength
// volume endpoint. It holds no per-request state and is safe for concurrent
// use.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// New builds a backend client for the given base URL.
func New(baseURL string, httpc *http.Client) *Client {
	if httpc == nil {
		httpc = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   httpc,
	}
}

type askRequest struct {
	Question       string `json:"question"`
	ConversationID string `json:"conversation_id"`
}

type askResponse struct {
	Answer string `json:"answer"`
	Error  string `json:"error,omitempty"`
}

// Ask posts a question tagged with the conversation identifier and returns
// the coach's answer.
func (c *Client) Ask(ctx context.Context, question, conversationID string) (string, error) {
	payload, err := json.Marshal(askRequest{Question: question, ConversationID: conversationID})
	if err != nil {
		return "", fmt.Errorf("encode ask request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/ask", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build ask request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("ask request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return "", fmt.Errorf("ask returned status %d", resp.StatusCode)
	}

	var decoded askResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decode ask response: %w", err)
	}
	return decoded.Answer, nil
}

// VolumeSeries fetches the aggregated daily strength volume for the given
// timeframe window.
func (c *Client) VolumeSeries(ctx context.Context, sel coach.Selection) (coach.Series, error) {
	u := c.baseURL + "/api/strength_volume_data?" + sel.Query().Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return coach.Series{}, fmt.Errorf("build volume request: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return coach.Series{}, fmt.Errorf("volume request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return coach.Series{}, fmt.Errorf("volume endpoint returned status %d", resp.StatusCode)
	}

	var series coach.Series
	if err := json.NewDecoder(resp.Body).Decode(&series); err != nil {
		return coach.Series{}, fmt.Errorf("decode volume response: %w", err)
	}
	if err := series.Validate(); err != nil {
		return coach.Series{}, err
	}
	return series, nil
}
