package room

import (
	"encoding/json"
	"sync"

	"github.com/Dewaeq/tetris-server/framework/net"
)

// fakeChannel 测试用的通道实现 记录发出的事件 可以模拟入站事件和断开
type fakeChannel struct {
	id          string
	mu          sync.Mutex
	events      []emitted
	handlers    map[string]net.EventHandler
	disconnects []func()
}

type emitted struct {
	event string
	data  any
}

func newFakeChannel(id string) *fakeChannel {
	return &fakeChannel{
		id:       id,
		handlers: make(map[string]net.EventHandler),
	}
}

func (c *fakeChannel) ID() string {
	return c.id
}

func (c *fakeChannel) Emit(event string, data any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, emitted{event: event, data: data})
	return nil
}

func (c *fakeChannel) On(event string, handler net.EventHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers[event] = handler
}

func (c *fakeChannel) OnDisconnect(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.disconnects = append(c.disconnects, fn)
}

// fire 模拟这条通道收到一条入站事件
func (c *fakeChannel) fire(event string, data json.RawMessage) {
	c.mu.Lock()
	handler, ok := c.handlers[event]
	c.mu.Unlock()
	if ok {
		handler(c, data)
	}
}

// disconnect 模拟连接断开
func (c *fakeChannel) disconnect() {
	c.mu.Lock()
	fns := make([]func(), len(c.disconnects))
	copy(fns, c.disconnects)
	c.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// received 返回指定事件收到的全部payload
func (c *fakeChannel) received(event string) []any {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]any, 0)
	for _, e := range c.events {
		if e.event == event {
			out = append(out, e.data)
		}
	}
	return out
}
