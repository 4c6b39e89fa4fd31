package biz

import (
	"errors"

	"github.com/Dewaeq/tetris-server/framework/msError"
)

const OK = 0

var (
	Fail                = msError.NewError(1, errors.New("request failed"))
	RequestDataError    = msError.NewError(2, errors.New("invalid request data"))
	PermissionNotEnough = msError.NewError(6, errors.New("permission not enough"))
	TokenInfoError      = msError.NewError(201, errors.New("invalid token"))
	InvalidRoomCode     = msError.NewError(301, errors.New("Provide a valid room code!"))
	RoomPlayerCountFull = msError.NewError(307, errors.New("room is already at max capacity"))
	RoomNotExist        = msError.NewError(308, errors.New("room does not exist"))
)
