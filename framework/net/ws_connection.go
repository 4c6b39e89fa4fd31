package net

import (
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Dewaeq/tetris-server/common/logs"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var cidBase uint64 = 10000

var (
	pongWait             = 10 * time.Second
	writeWait            = 10 * time.Second
	pingInterval         = (pongWait * 9) / 10
	maxMessageSize int64 = 4096
)

type WsConnection struct {
	Cid           string
	Conn          *websocket.Conn
	manager       *Manager
	WriteChan     chan []byte
	handlerMu     sync.RWMutex
	handlers      map[string]EventHandler
	disconnectFns []func()
	pingTicker    *time.Ticker
	closeChan     chan struct{}
	closeOnce     sync.Once
	dcOnce        sync.Once
}

func NewWsConnection(conn *websocket.Conn, manager *Manager) *WsConnection {
	cid := fmt.Sprintf("%s-%d", uuid.New().String(), atomic.AddUint64(&cidBase, 1))
	return &WsConnection{
		Conn:      conn,
		manager:   manager,
		Cid:       cid,
		WriteChan: make(chan []byte, 1024),
		handlers:  make(map[string]EventHandler),
		closeChan: make(chan struct{}),
	}
}

func (c *WsConnection) ID() string {
	return c.Cid
}

// Emit 序列化后丢进写队列 队列满直接丢弃 不能阻塞房间操作
func (c *WsConnection) Emit(event string, data any) error {
	body, err := json.Marshal(data)
	if err != nil {
		return err
	}
	buf, err := json.Marshal(Envelope{Event: event, Data: body})
	if err != nil {
		return err
	}
	select {
	case c.WriteChan <- buf:
	case <-c.closeChan:
	default:
		logs.Warn("client[%s] write queue full, drop event %s", c.Cid, event)
	}
	return nil
}

func (c *WsConnection) On(event string, handler EventHandler) {
	c.handlerMu.Lock()
	defer c.handlerMu.Unlock()
	c.handlers[event] = handler
}

func (c *WsConnection) OnDisconnect(fn func()) {
	c.handlerMu.Lock()
	defer c.handlerMu.Unlock()
	c.disconnectFns = append(c.disconnectFns, fn)
}

func (c *WsConnection) Close() {
	//确保只执行一次
	c.closeOnce.Do(func() {
		close(c.closeChan)
		if c.Conn != nil {
			_ = c.Conn.Close()
		}
		if c.pingTicker != nil {
			c.pingTicker.Stop()
		}
		logs.Info("client[%s] connection closed", c.Cid)
	})
}

func (c *WsConnection) Run() {
	go c.readMessage()
	go c.writeMessage()
	//心跳检测 websocket中的ping pong机制
	c.Conn.SetPongHandler(c.PongHandler)
}

func (c *WsConnection) writeMessage() {
	c.pingTicker = time.NewTicker(pingInterval)
	for {
		select {
		case message := <-c.WriteChan:
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				logs.Error("client[%s] write message err:%v", c.Cid, err)
			}
		case <-c.pingTicker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logs.Error("client[%s] ping SetWriteDeadline err:%v", c.Cid, err)
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				logs.Error("client[%s] ping err:%v", c.Cid, err)
				c.Close()
			}
		case <-c.closeChan:
			logs.Info("client[%s] writeMessage stopped", c.Cid)
			return
		}
	}
}

// readMessage 每个连接一个读协程 事件按到达顺序在本协程内依次分发
func (c *WsConnection) readMessage() {
	defer func() {
		logs.Info("client[%s] readMessage stopped", c.Cid)
		c.manager.removeClient(c)
		c.fireDisconnect()
		c.Close()
	}()
	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logs.Error("SetReadDeadline err:%v", err)
		return
	}
	for {
		select {
		case <-c.closeChan:
			return
		default:
			messageType, message, err := c.Conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					logs.Error("client[%s] unexpected close error: %v", c.Cid, err)
				}
				return
			}
			if messageType != websocket.TextMessage {
				logs.Error("unsupported message type: %d", messageType)
				continue
			}
			var env Envelope
			if err := json.Unmarshal(message, &env); err != nil {
				logs.Error("client[%s] bad envelope:%v", c.Cid, err)
				continue
			}
			c.dispatch(&env)
		}
	}
}

// dispatch 先查通道级别的处理器 再查连接级别的路由表
func (c *WsConnection) dispatch(env *Envelope) {
	c.handlerMu.RLock()
	handler, ok := c.handlers[env.Event]
	c.handlerMu.RUnlock()
	if !ok && c.manager != nil {
		handler, ok = c.manager.ConnectorHandlers[env.Event]
	}
	if !ok {
		logs.Warn("client[%s] no handler for event %s", c.Cid, env.Event)
		return
	}
	handler(c, env.Data)
}

// fireDisconnect 断开回调只触发一次
func (c *WsConnection) fireDisconnect() {
	c.dcOnce.Do(func() {
		c.handlerMu.RLock()
		fns := make([]func(), len(c.disconnectFns))
		copy(fns, c.disconnectFns)
		c.handlerMu.RUnlock()
		for _, fn := range fns {
			fn()
		}
	})
}

func (c *WsConnection) PongHandler(data string) error {
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		return err
	}
	return nil
}
