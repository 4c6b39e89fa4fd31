package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Dewaeq/tetris-server/common"
	"github.com/Dewaeq/tetris-server/common/biz"
	"github.com/Dewaeq/tetris-server/common/config"
	"github.com/Dewaeq/tetris-server/common/jwts"
	"github.com/Dewaeq/tetris-server/common/logs"
	"github.com/Dewaeq/tetris-server/common/utils"
	"github.com/Dewaeq/tetris-server/framework/msError"
	"github.com/Dewaeq/tetris-server/game/room"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type RoomHandler struct {
	registry *room.Registry
}

func NewRoomHandler(registry *room.Registry) *RoomHandler {
	return &RoomHandler{
		registry: registry,
	}
}

// List 所有房间的公开投影
func (h *RoomHandler) List(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.registry.Snapshot())
}

// JoinRoom 校验code 检查存在性和容量 通过后在该code处分配一个全新房间
func (h *RoomHandler) JoinRoom(ctx *gin.Context) {
	codeStr := ctx.Query("code")
	code, err := strconv.Atoi(codeStr)
	if err != nil {
		common.Fail(ctx, biz.InvalidRoomCode)
		return
	}
	rm, ok := h.registry.Get(code)
	if !ok {
		common.Fail(ctx, msError.NewError(biz.RoomNotExist.Code,
			fmt.Errorf("Failed to join room %d! Room does not exist.", code)))
		return
	}
	if rm.Full() {
		common.Fail(ctx, msError.NewError(biz.RoomPlayerCountFull.Code,
			fmt.Errorf("Failed to join room %d! Room is already at max capacity.", code)))
		return
	}
	h.registry.Allocate(code)
	result := gin.H{
		"code": code,
	}
	if secret := config.Conf.Jwt.Secret; secret != "" {
		token, err := h.genGuestToken(secret)
		if err != nil {
			logs.Error("joinRoom gen token err:%v", err)
			common.Fail(ctx, biz.Fail)
			return
		}
		result["token"] = token
	}
	common.Success(ctx, result)
}

// genGuestToken 为即将连接websocket的客户端签发访客token
func (h *RoomHandler) genGuestToken(secret string) (string, error) {
	exp := time.Duration(utils.Default(config.Conf.Jwt.Exp, 168)) * time.Hour
	claims := jwts.CustomClaims{
		Uid: uuid.New().String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(exp)),
		},
	}
	return jwts.GenToken(&claims, secret)
}
