package websocket

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/ewint814/nba-game-tracker/internal/ingest/nbastats"
)

// LivePoller polls the stats-API scoreboard and broadcasts it to connected
// clients when it changes. Useful for following scores from the arena.
type LivePoller struct {
	client   *nbastats.Client
	server   *Server
	interval time.Duration

	lastPayload []byte
}

// NewLivePoller creates a poller pushing to the given server
func NewLivePoller(client *nbastats.Client, server *Server, interval time.Duration) *LivePoller {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &LivePoller{
		client:   client,
		server:   server,
		interval: interval,
	}
}

// Run polls until the context is cancelled
func (p *LivePoller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	log.Printf("Live scoreboard poller started (every %v)", p.interval)

	for {
		select {
		case <-ctx.Done():
			log.Println("Live scoreboard poller stopped")
			return
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

func (p *LivePoller) poll(ctx context.Context) {
	// No point fetching when nobody is watching
	if p.server.hub.ClientCount() == 0 {
		return
	}

	games, err := p.client.Scoreboard(ctx, time.Now())
	if err != nil {
		log.Printf("Scoreboard poll failed: %v", err)
		return
	}

	payload, err := json.Marshal(map[string]interface{}{
		"type":  "scoreboard",
		"games": games,
	})
	if err != nil {
		log.Printf("Encoding scoreboard failed: %v", err)
		return
	}

	if bytes.Equal(payload, p.lastPayload) {
		return
	}
	p.lastPayload = payload

	p.server.Broadcast(payload)
}
