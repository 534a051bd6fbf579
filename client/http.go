package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HttpClient wraps http.Client with the busywork handled: response
// bodies are read and closed before returning.
type HttpClient struct {
	Client http.Client
}

func NewHttpClient(timeout time.Duration) *HttpClient {
	return &HttpClient{
		Client: http.Client{
			Timeout: timeout,
		},
	}
}

type Resp struct {
	Code   int
	Body   []byte
	Header http.Header
}

// Do executes the request and returns the full response body.
func (hc *HttpClient) Do(req *http.Request) (*Resp, error) {
	hr, err := hc.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("client error: %w", err)
	}

	defer hr.Body.Close()
	body, err := io.ReadAll(hr.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return &Resp{
		Code:   hr.StatusCode,
		Body:   body,
		Header: hr.Header,
	}, nil
}

// PostJSON sends a JSON payload to url with the given bearer token.
func (hc *HttpClient) PostJSON(ctx context.Context, url, token string, payload []byte) (*Resp, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return hc.Do(req)
}
