package server

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"forest-guardians/internal/app"
	"forest-guardians/pkg/logger"

	"github.com/gorilla/websocket"
)

const writeWait = 5 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// SnapshotSource отдаёт последнее опубликованное состояние.
type SnapshotSource interface {
	Snapshot() app.Snapshot
}

// Hub рассылает снимки состояния всем подключённым зрителям.
// Клиентами владеет только горутина Run.
type Hub struct {
	source   SnapshotSource
	interval time.Duration

	clients    map[*websocket.Conn]*sync.Mutex
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	done       chan struct{}
	count      chan chan int
}

func NewHub(source SnapshotSource, interval time.Duration) *Hub {
	return &Hub{
		source:     source,
		interval:   interval,
		clients:    make(map[*websocket.Conn]*sync.Mutex),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		done:       make(chan struct{}),
		count:      make(chan chan int),
	}
}

// Run рассылает снимки каждые interval до отмены ctx, затем закрывает все соединения.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	log := logger.WithComponent("hub")
	for {
		select {
		case <-ctx.Done():
			for conn := range h.clients {
				conn.Close()
				delete(h.clients, conn)
			}
			log.Info("hub stopped")
			return

		case conn := <-h.register:
			h.clients[conn] = &sync.Mutex{}
			log.WithField("clients", len(h.clients)).Debug("client registered")
			// Новый клиент сразу получает текущее состояние
			if payload, err := json.Marshal(h.source.Snapshot()); err == nil {
				h.send(conn, payload)
			}

		case conn := <-h.unregister:
			h.drop(conn)

		case reply := <-h.count:
			reply <- len(h.clients)

		case <-ticker.C:
			if len(h.clients) == 0 {
				continue
			}
			payload, err := json.Marshal(h.source.Snapshot())
			if err != nil {
				log.WithError(err).Error("failed to marshal snapshot")
				continue
			}
			for conn := range h.clients {
				h.send(conn, payload)
			}
		}
	}
}

// send пишет payload; при ошибке соединение удаляется сразу, без повторного захода в Run.
func (h *Hub) send(conn *websocket.Conn, payload []byte) {
	mu := h.clients[conn]
	if mu == nil {
		return
	}
	mu.Lock()
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	err := conn.WriteMessage(websocket.TextMessage, payload)
	mu.Unlock()
	if err != nil {
		logger.WithComponent("hub").WithError(err).Debug("broadcast failed")
		h.drop(conn)
	}
}

func (h *Hub) drop(conn *websocket.Conn) {
	if _, ok := h.clients[conn]; !ok {
		return
	}
	delete(h.clients, conn)
	conn.Close()
	logger.WithComponent("hub").WithField("clients", len(h.clients)).Debug("client unregistered")
}

// Register добавляет соединение. После остановки Run соединение просто закрывается.
func (h *Hub) Register(conn *websocket.Conn) {
	select {
	case h.register <- conn:
	case <-h.done:
		conn.Close()
	}
}

func (h *Hub) Unregister(conn *websocket.Conn) {
	select {
	case h.unregister <- conn:
	case <-h.done:
	}
}

// Clients returns the number of connected viewers, or 0 once Run has returned.
func (h *Hub) Clients() int {
	reply := make(chan int, 1)
	select {
	case h.count <- reply:
		return <-reply
	case <-h.done:
		return 0
	}
}
