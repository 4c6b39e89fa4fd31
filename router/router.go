package router

import (
	"github.com/Dewaeq/tetris-server/api"
	"github.com/Dewaeq/tetris-server/auth"
	"github.com/Dewaeq/tetris-server/common/config"
	"github.com/Dewaeq/tetris-server/game/room"
	"github.com/gin-gonic/gin"
)

// RegisterRouter 注册http路由
func RegisterRouter(registry *room.Registry) *gin.Engine {
	if config.Conf.Log.Level == "DEBUG" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.Use(auth.Cors())
	roomHandler := api.NewRoomHandler(registry)
	r.GET("/", roomHandler.List)
	r.GET("/joinRoom", roomHandler.JoinRoom)
	return r
}
