package net

import (
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/Dewaeq/tetris-server/common/config"
	"github.com/Dewaeq/tetris-server/common/logs"
	"github.com/Dewaeq/tetris-server/common/utils"
	"github.com/gorilla/websocket"
)

var websocketUpgrade = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
}

type CheckOriginHandler func(r *http.Request) bool

type Manager struct {
	sync.RWMutex
	websocketUpgrade   *websocket.Upgrader
	CheckOriginHandler CheckOriginHandler
	clients            map[string]Connection
	// ConnectorHandlers 连接级别的路由 如joinRoom 在启动前注册 运行期间只读
	ConnectorHandlers LogicHandler

	maxConnections     int
	connectionsLimiter *utils.RateLimiter
	currentConnections int32
}

func NewManager() *Manager {
	maxConnections := 1024
	connectionRate := 100
	if config.Conf != nil {
		maxConnections = utils.Default(config.Conf.Ws.MaxConnections, maxConnections)
		connectionRate = utils.Default(config.Conf.Ws.ConnectionRate, connectionRate)
	}
	return &Manager{
		clients:            make(map[string]Connection),
		ConnectorHandlers:  make(LogicHandler),
		maxConnections:     maxConnections,
		connectionsLimiter: utils.NewRateLimiter(connectionRate, 1),
	}
}

func (m *Manager) Run(addr string) {
	http.HandleFunc("/ws", m.serveWS)
	logs.Fatal("websocket listen serve err:%v", http.ListenAndServe(addr, nil))
}

func (m *Manager) serveWS(w http.ResponseWriter, r *http.Request) {
	if !m.connectionsLimiter.Allow() {
		logs.Warn("connection rate limit exceeded from %s", r.RemoteAddr)
		http.Error(w, "too many connection attempts", http.StatusTooManyRequests)
		return
	}
	if int(atomic.LoadInt32(&m.currentConnections)) >= m.maxConnections {
		logs.Warn("connection limit reached, rejecting connection from %s", r.RemoteAddr)
		http.Error(w, "server full", http.StatusServiceUnavailable)
		return
	}
	if m.websocketUpgrade == nil {
		m.websocketUpgrade = &websocketUpgrade
	}
	if m.CheckOriginHandler != nil {
		m.websocketUpgrade.CheckOrigin = m.CheckOriginHandler
	}
	wsConn, err := m.websocketUpgrade.Upgrade(w, r, nil)
	if err != nil {
		logs.Error("websocket upgrade err:%v", err)
		return
	}
	client := NewWsConnection(wsConn, m)
	m.addClient(client)
	client.Run()
	logs.Debug("client[%s] connected from %s", client.Cid, r.RemoteAddr)
}

func (m *Manager) addClient(client *WsConnection) {
	m.Lock()
	defer m.Unlock()
	m.clients[client.Cid] = client
	atomic.AddInt32(&m.currentConnections, 1)
}

func (m *Manager) removeClient(client *WsConnection) {
	m.Lock()
	defer m.Unlock()
	if _, ok := m.clients[client.Cid]; !ok {
		return
	}
	delete(m.clients, client.Cid)
	atomic.AddInt32(&m.currentConnections, -1)
	logs.Debug("client[%s] disconnected", client.Cid)
}

func (m *Manager) Close() {
	m.Lock()
	clients := make([]Connection, 0, len(m.clients))
	for _, v := range m.clients {
		clients = append(clients, v)
	}
	m.Unlock()
	for _, v := range clients {
		v.Close()
	}
}
