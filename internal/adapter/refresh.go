package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"

	m "salvager.dev/pkg/salvager/internal/model"
)

// ViewRefresher asks the game host to resend a player's view after their
// inventory changed outside the normal replication path.
type ViewRefresher interface {
	Refresh(ctx context.Context, actor *m.Actor) error
}

// NopRefresher does nothing.
type NopRefresher struct{}

// Refresh is a no-op.
func (NopRefresher) Refresh(context.Context, *m.Actor) error { return nil }

// RefreshRequest is the message sent to the host's replication endpoint.
type RefreshRequest struct {
	Type     string `json:"type"`
	PlayerID string `json:"player_id"`
	Player   string `json:"player"`
}

const refreshRequestType = "refresh_replicables"

// WebsocketRefresher sends refresh requests over a websocket connection
// opened per request.
type WebsocketRefresher struct {
	url     string
	timeout time.Duration
	dialer  *websocket.Dialer
}

// NewWebsocketRefresher constructs a refresher for the endpoint at url.
func NewWebsocketRefresher(url string) *WebsocketRefresher {
	return &WebsocketRefresher{
		url:     url,
		timeout: 5 * time.Second,
		dialer:  websocket.DefaultDialer,
	}
}

// Refresh sends a refresh request for actor and waits for the host to acknowledge it.
func (r *WebsocketRefresher) Refresh(ctx context.Context, actor *m.Actor) error {
	if actor == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	conn, resp, err := r.dialer.DialContext(ctx, r.url, nil)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}

	if err != nil {
		return fmt.Errorf("dial refresh endpoint: %w", err)
	}

	defer func() { _ = conn.Close() }()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetWriteDeadline(deadline)
		_ = conn.SetReadDeadline(deadline)
	}

	req := RefreshRequest{Type: refreshRequestType, PlayerID: actor.ID, Player: actor.Name}
	if err := conn.WriteJSON(req); err != nil {
		return fmt.Errorf("send refresh request: %w", err)
	}

	var ack RefreshRequest
	if err := conn.ReadJSON(&ack); err != nil {
		return fmt.Errorf("read refresh ack: %w", err)
	}

	slog.Debug("refreshed client view", "player", actor.Name, "ack", ack.Type)

	_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))

	return nil
}
