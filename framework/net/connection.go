package net

import "encoding/json"

// EventHandler 处理一条入站事件 data为未解析的原始payload
type EventHandler func(ch Channel, data json.RawMessage)

// LogicHandler 连接级别的事件路由表
type LogicHandler map[string]EventHandler

// Channel 双向事件通道的抽象 房间只依赖这个接口
type Channel interface {
	// ID 通道的唯一标识 连接存活期间不变
	ID() string
	// Emit 发送一条事件 fire-and-forget
	Emit(event string, data any) error
	// On 注册通道级别的事件处理器 后注册的覆盖先注册的
	On(event string, handler EventHandler)
	// OnDisconnect 注册断开回调 连接关闭时依次执行一次
	OnDisconnect(fn func())
}

// Connection manager管理的完整连接
type Connection interface {
	Channel
	Close()
}

// Envelope 线上的消息格式 {"event":"...","data":...}
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}
