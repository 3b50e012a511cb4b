package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/coder/websocket"
	echo "github.com/labstack/echo/v5"

	"github.com/arogya-labs/aushadhi/pkg/fusion"
	"github.com/arogya-labs/aushadhi/pkg/trace"
)

const wsWriteTimeout = 10 * time.Second

// wsMessage is the envelope for every frame pushed to the dashboard.
type wsMessage struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// wsHandler handles GET /ws/trace/:session_id: it replays the session's
// timeline and then streams live trace events and fusion state changes
// until the client disconnects.
func (s *Server) wsHandler(c *echo.Context) error {
	sessionID := c.Param("session_id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	opts := &websocket.AcceptOptions{InsecureSkipVerify: true}
	if origins := s.cfg.Server.AllowedWSOrigins; len(origins) > 0 {
		opts = &websocket.AcceptOptions{OriginPatterns: origins}
	}
	conn, err := websocket.Accept(c.Response(), c.Request(), opts)
	if err != nil {
		return err
	}
	defer conn.Close(websocket.StatusNormalClosure, "")

	ctx := c.Request().Context()

	traceCh := make(chan trace.Event, 64)
	s.traces.Connect(sessionID, traceCh)
	defer s.traces.Disconnect(sessionID, traceCh)

	calc := s.fusions.For(sessionID)
	fusionCh := make(chan fusion.State, 16)
	calc.Subscribe(fusionCh)
	defer calc.Unsubscribe(fusionCh)

	if current := calc.Current(); current != nil {
		if err := writeFrame(ctx, conn, wsMessage{Type: "fusion.state", Data: current}); err != nil {
			return nil
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case evt, ok := <-traceCh:
			if !ok {
				return nil
			}
			if err := writeFrame(ctx, conn, wsMessage{Type: "trace.event", Data: evt}); err != nil {
				return nil
			}
		case state := <-fusionCh:
			if err := writeFrame(ctx, conn, wsMessage{Type: "fusion.state", Data: state}); err != nil {
				return nil
			}
		}
	}
}

func writeFrame(ctx context.Context, conn *websocket.Conn, msg wsMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	wctx, cancel := context.WithTimeout(ctx, wsWriteTimeout)
	defer cancel()
	return conn.Write(wctx, websocket.MessageText, payload)
}
