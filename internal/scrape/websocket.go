package scrape

import (
	"context"
	"fmt"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

// WebSocketSource asks a websocket peer, typically a browser extension
// relay attached to the meeting tab, for the participant list. Every Fetch
// opens a connection, sends one request and reads exactly one reply.
type WebSocketSource struct {
	URL     string
	Timeout time.Duration
}

// NewWebSocketSource creates a websocket source
func NewWebSocketSource(url string, timeout time.Duration) *WebSocketSource {
	return &WebSocketSource{URL: url, Timeout: timeout}
}

func (s *WebSocketSource) Name() string { return "websocket:" + s.URL }

func (s *WebSocketSource) Fetch(ctx context.Context) (Response, error) {
	ctx, cancel := withTimeout(ctx, s.Timeout)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, s.URL, nil)
	if err != nil {
		return Response{}, fmt.Errorf("failed to connect: %w", err)
	}
	defer conn.CloseNow()

	if err := wsjson.Write(ctx, conn, NewRequest()); err != nil {
		return Response{}, fmt.Errorf("failed to send request: %w", err)
	}

	var resp Response
	if err := wsjson.Read(ctx, conn, &resp); err != nil {
		return Response{}, fmt.Errorf("failed to read reply: %w", err)
	}

	conn.Close(websocket.StatusNormalClosure, "")
	return resp, nil
}
