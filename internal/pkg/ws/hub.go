package ws

import (
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// Hub 管理按用户分组的WebSocket连接，向在线用户推送评审任务进度
type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[*Client]struct{}

	register   chan *Client
	unregister chan *Client
	send       chan *userMessage
}

type userMessage struct {
	userID  string
	payload []byte
}

// Client 单条WebSocket连接
type Client struct {
	userID string
	conn   *websocket.Conn
	out    chan []byte
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		send:       make(chan *userMessage, 64),
	}
}

// Run 事件循环，需在独立goroutine中运行
func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			if h.clients[c.userID] == nil {
				h.clients[c.userID] = make(map[*Client]struct{})
			}
			h.clients[c.userID][c] = struct{}{}
			h.mu.Unlock()
		case c := <-h.unregister:
			h.mu.Lock()
			if conns, ok := h.clients[c.userID]; ok {
				if _, ok := conns[c]; ok {
					delete(conns, c)
					close(c.out)
					if len(conns) == 0 {
						delete(h.clients, c.userID)
					}
				}
			}
			h.mu.Unlock()
		case msg := <-h.send:
			h.mu.RLock()
			for c := range h.clients[msg.userID] {
				select {
				case c.out <- msg.payload:
				default:
					// 发送缓冲已满，丢弃该连接
					go func(stale *Client) { h.unregister <- stale }(c)
				}
			}
			h.mu.RUnlock()
		}
	}
}

// SendToUser 向某用户的所有在线连接推送消息
func (h *Hub) SendToUser(userID string, payload []byte) {
	h.send <- &userMessage{userID: userID, payload: payload}
}

// Serve 接管一条新连接，阻塞直到连接关闭
func (h *Hub) Serve(userID string, conn *websocket.Conn) {
	client := &Client{userID: userID, conn: conn, out: make(chan []byte, 16)}
	h.register <- client

	go client.writeLoop()
	client.readLoop(h)
}

func (c *Client) writeLoop() {
	for payload := range c.out {
		if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// readLoop 只为感知连接关闭，客户端消息被忽略
func (c *Client) readLoop(h *Hub) {
	defer func() {
		h.unregister <- c
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("websocket连接异常关闭: %v", err)
			}
			return
		}
	}
}
