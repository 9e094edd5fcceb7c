package livescore

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"PitchCast/internal/domain/models"
	drepo "PitchCast/internal/domain/repository"

	"github.com/gorilla/websocket"
)

// Client implements a ResultStream backed by the live-score WebSocket feed.
type Client struct {
	apiKey         string
	websocketURL   string
	leagues        []string
	reconnectDelay time.Duration
	pingInterval   time.Duration

	conn      *websocket.Conn
	connected bool
}

// New creates a new live-score ResultStream.
func New(apiKey, websocketURL string, leagues []string, reconnectDelay, pingInterval time.Duration) drepo.ResultStream {
	return &Client{
		apiKey:         apiKey,
		websocketURL:   websocketURL,
		leagues:        leagues,
		reconnectDelay: reconnectDelay,
		pingInterval:   pingInterval,
	}
}

// Connect establishes the WebSocket connection.
func (c *Client) Connect(ctx context.Context) error {
	u := fmt.Sprintf("%s?token=%s", c.websocketURL, c.apiKey)
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, u, nil)
	if err != nil {
		return fmt.Errorf("livescore connect: %w", err)
	}
	c.conn = conn
	c.connected = true
	log.Printf("livescore: connected")
	return nil
}

// Subscribe subscribes to final-score events for the configured leagues.
func (c *Client) Subscribe(ctx context.Context) error {
	if c.conn == nil || !c.connected {
		return fmt.Errorf("livescore not connected")
	}
	for _, league := range c.leagues {
		msg := map[string]string{"type": "subscribe", "league": league, "events": "full_time"}
		if err := c.conn.WriteJSON(msg); err != nil {
			return fmt.Errorf("subscribe %s: %w", league, err)
		}
		log.Printf("livescore: subscribed %s", league)
	}
	return nil
}

type lsScore struct {
	FixtureID  string `json:"fixture_id"`
	League     string `json:"league"`
	HomeTeamID int64  `json:"home_team_id"`
	AwayTeamID int64  `json:"away_team_id"`
	HomeGoals  int    `json:"home_goals"`
	AwayGoals  int    `json:"away_goals"`
	FinishedAt int64  `json:"finished_at"` // unix seconds
}

type lsMessage struct {
	Type string    `json:"type"`
	Data []lsScore `json:"data"`
}

// Read streams MatchResult events and errors.
func (c *Client) Read(ctx context.Context) (<-chan *models.MatchResult, <-chan error) {
	results := make(chan *models.MatchResult, 256)
	errs := make(chan error, 1)

	// ping loop
	go func() {
		ticker := time.NewTicker(c.pingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if c.conn != nil {
					_ = c.conn.WriteMessage(websocket.PingMessage, nil)
				}
			}
		}
	}()

	// read loop
	go func() {
		defer close(results)
		defer close(errs)
		for {
			select {
			case <-ctx.Done():
				return
			default:
				if c.conn == nil {
					errs <- fmt.Errorf("livescore conn nil")
					return
				}
				_, b, err := c.conn.ReadMessage()
				if err != nil {
					errs <- fmt.Errorf("livescore read: %w", err)
					return
				}
				var m lsMessage
				if err := json.Unmarshal(b, &m); err != nil {
					// ignore non-score frames
					continue
				}
				if m.Type != "full_time" {
					continue
				}
				for _, d := range m.Data {
					res := &models.MatchResult{
						FixtureID:  d.FixtureID,
						League:     d.League,
						HomeTeamID: d.HomeTeamID,
						AwayTeamID: d.AwayTeamID,
						HomeGoals:  d.HomeGoals,
						AwayGoals:  d.AwayGoals,
						FinishedAt: time.Unix(d.FinishedAt, 0).UTC(),
					}
					select {
					case results <- res:
					default:
						// drop on backpressure
					}
				}
			}
		}
	}()

	return results, errs
}

// Reconnect closes and reconnects.
func (c *Client) Reconnect(ctx context.Context) error {
	_ = c.Close()
	time.Sleep(c.reconnectDelay)
	if err := c.Connect(ctx); err != nil {
		return err
	}
	return c.Subscribe(ctx)
}

// Close closes the WS connection.
func (c *Client) Close() error {
	c.connected = false
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// IsConnected indicates status.
func (c *Client) IsConnected() bool { return c.connected }
