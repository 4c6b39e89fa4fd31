package handler

import (
	"encoding/json"

	"github.com/Dewaeq/tetris-server/common/config"
	"github.com/Dewaeq/tetris-server/common/jwts"
	"github.com/Dewaeq/tetris-server/common/logs"
	"github.com/Dewaeq/tetris-server/framework/net"
	"github.com/Dewaeq/tetris-server/game/room"
	"github.com/Dewaeq/tetris-server/models/request"
	"github.com/jinzhu/copier"
)

type EntryHandler struct {
	registry *room.Registry
}

func NewEntryHandler(registry *room.Registry) *EntryHandler {
	return &EntryHandler{
		registry: registry,
	}
}

// JoinRoom 入站joinRoom事件 配置了jwt secret时先校验token
func (h *EntryHandler) JoinRoom(channel net.Channel, body json.RawMessage) {
	var req request.JoinRoomReq
	if err := json.Unmarshal(body, &req); err != nil {
		logs.Error("joinRoom bad request from %s:%v", channel.ID(), err)
		return
	}
	if secret := config.Conf.Jwt.Secret; secret != "" {
		if _, err := jwts.ParseToken(req.Token, secret); err != nil {
			logs.Error("joinRoom parse token err from %s:%v", channel.ID(), err)
			return
		}
	}
	var params room.JoinParams
	if err := copier.Copy(&params, &req); err != nil {
		logs.Error("joinRoom copy params err:%v", err)
		return
	}
	if err := h.registry.JoinRoom(params, channel); err != nil {
		logs.Warn("join room %d failed for %s:%v", req.Code, channel.ID(), err)
	}
}
