package scrape

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// maxReplySize bounds how much of a reply is read
const maxReplySize = 4 << 20

// JSONSource reads a GET_MEMBERS reply. An http(s) location receives the
// request as a JSON POST body; any other location is read as a file holding
// a saved reply.
type JSONSource struct {
	Location string
	Timeout  time.Duration
	Client   *http.Client
}

// NewJSONSource creates a JSON source
func NewJSONSource(location string, timeout time.Duration) *JSONSource {
	return &JSONSource{Location: location, Timeout: timeout, Client: http.DefaultClient}
}

func (s *JSONSource) Name() string { return "json:" + s.Location }

func (s *JSONSource) Fetch(ctx context.Context) (Response, error) {
	ctx, cancel := withTimeout(ctx, s.Timeout)
	defer cancel()

	var (
		data []byte
		err  error
	)
	if isHTTP(s.Location) {
		data, err = s.post(ctx)
	} else {
		data, err = os.ReadFile(s.Location)
		if err != nil {
			err = fmt.Errorf("failed to read reply file: %w", err)
		}
	}
	if err != nil {
		return Response{}, err
	}
	return DecodeResponse(data)
}

func (s *JSONSource) post(ctx context.Context) ([]byte, error) {
	body, err := json.Marshal(NewRequest())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Location, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxReplySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read reply: %w", err)
	}
	return data, nil
}

// DecodeResponse parses a GET_MEMBERS reply
func DecodeResponse(data []byte) (Response, error) {
	var resp Response
	if err := json.Unmarshal(data, &resp); err != nil {
		return Response{}, fmt.Errorf("malformed reply: %w", err)
	}
	return resp, nil
}
