package server

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type phraseRequest struct {
	Phrase string `json:"phrase"`
}

type phraseMessage struct {
	Type      string          `json:"type"`
	Name      string          `json:"name,omitempty"`
	Result    *phraseResponse `json:"result,omitempty"`
	Phrases   []phraseSummary `json:"phrases,omitempty"`
	Error     string          `json:"error,omitempty"`
	RequestID string          `json:"request_id,omitempty"`
}

// wsClient serializes writes; a websocket connection allows one writer.
type wsClient struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *wsClient) send(payload any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(payload)
}

// phraseHub shares every phrase rolled over a websocket with all connected
// clients, so a whole table sees the same encounter.
type phraseHub struct {
	mu    sync.Mutex
	conns map[*wsClient]struct{}
}

func newPhraseHub() *phraseHub {
	return &phraseHub{
		conns: make(map[*wsClient]struct{}),
	}
}

func (h *phraseHub) Add(client *wsClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[client] = struct{}{}
}

func (h *phraseHub) Remove(client *wsClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, client)
	_ = client.conn.Close()
}

func (h *phraseHub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

func (h *phraseHub) Broadcast(payload any) {
	h.mu.Lock()
	clients := make([]*wsClient, 0, len(h.conns))
	for client := range h.conns {
		clients = append(clients, client)
	}
	h.mu.Unlock()
	for _, client := range clients {
		if err := client.send(payload); err != nil {
			h.Remove(client)
		}
	}
}

func (s *Server) handlePhraseWebsocket(c *gin.Context) {
	upgrader := websocket.Upgrader{
		CheckOrigin: s.allowWebsocketOrigin,
	}
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	client := &wsClient{conn: conn}
	log.Printf("ws connected remote=%s request_id=%s", c.Request.RemoteAddr, c.GetString(requestIDKey))
	s.ws.Add(client)
	_ = client.send(phraseMessage{Type: "phrases", Phrases: s.summaries(), RequestID: c.GetString(requestIDKey)})
	go s.readPhraseWS(client)
}

// allowWebsocketOrigin accepts same-origin clients and the configured
// allow-list. It applies even when the CORS middleware is disabled.
func (s *Server) allowWebsocketOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	if u, err := url.Parse(origin); err == nil && strings.EqualFold(u.Host, r.Host) {
		return true
	}
	for _, allowed := range s.cfg.AllowedOrigins {
		if strings.EqualFold(origin, allowed) {
			return true
		}
	}
	return false
}

func (s *Server) readPhraseWS(client *wsClient) {
	defer s.ws.Remove(client)
	for {
		var req phraseRequest
		if err := client.conn.ReadJSON(&req); err != nil {
			log.Printf("ws disconnected error=%v", err)
			return
		}
		p, ok := s.lookup(req.Phrase)
		if !ok {
			_ = client.send(phraseMessage{Type: "error", Name: req.Phrase, Error: "unknown phrase"})
			continue
		}
		// The socket outlives any single request context.
		resp, err := s.makeResponse(context.Background(), p)
		if err != nil {
			log.Printf("ws phrase failed name=%s error=%v", p.Name, err)
			_ = client.send(phraseMessage{Type: "error", Name: p.Name, Error: err.Error()})
			continue
		}
		log.Printf("ws phrase rendered name=%s listeners=%d", p.Name, s.ws.Count())
		s.ws.Broadcast(phraseMessage{Type: "phrase", Name: p.Name, Result: &resp})
	}
}
