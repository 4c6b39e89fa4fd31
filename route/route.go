package route

import (
	"github.com/Dewaeq/tetris-server/framework/net"
	"github.com/Dewaeq/tetris-server/game/room"
	"github.com/Dewaeq/tetris-server/handler"
)

// Register 注册连接级别的websocket路由
// update start disconnect是成员绑定 由Room在admit时安装 不在这里
func Register(registry *room.Registry) net.LogicHandler {
	handlers := make(net.LogicHandler)
	entryHandler := handler.NewEntryHandler(registry)
	handlers["joinRoom"] = entryHandler.JoinRoom
	return handlers
}
