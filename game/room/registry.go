package room

import (
	"sync"

	"github.com/Dewaeq/tetris-server/common/biz"
	"github.com/Dewaeq/tetris-server/common/logs"
	"github.com/Dewaeq/tetris-server/common/utils"
	"github.com/Dewaeq/tetris-server/framework/msError"
	"github.com/Dewaeq/tetris-server/framework/net"
	"github.com/Dewaeq/tetris-server/game/proto"
)

// JoinParams websocket joinRoom请求解析后的参数
type JoinParams struct {
	Code     int
	UserName string
}

// Registry 进程内的房间表 持有者显式传递 不做包级全局变量
type Registry struct {
	sync.RWMutex
	rooms       map[int]*Room
	maxLength   int
	startPolicy StartPolicy
}

func NewRegistry(maxLength int, startPolicy string) *Registry {
	policy := StartPolicy(utils.Default(startPolicy, string(StartPolicyFill)))
	return &Registry{
		rooms:       make(map[int]*Room),
		maxLength:   utils.Default(maxLength, 2),
		startPolicy: policy,
	}
}

// JoinRoom 目标房间不存在或已空置时新建 然后委托给Room.AddUser
// joined回执由Room在admit成功后发出
func (r *Registry) JoinRoom(params JoinParams, channel net.Channel) *msError.Error {
	//加入全程持有注册表锁 并发加入严格按到达顺序裁决
	r.Lock()
	defer r.Unlock()
	rm, ok := r.rooms[params.Code]
	if !ok || rm.Empty() {
		rm = NewRoom(params.Code, r.maxLength, r.startPolicy)
		r.rooms[params.Code] = rm
	}
	if !rm.AddUser(channel, params.UserName) {
		return biz.RoomPlayerCountFull
	}
	logs.Info("%s joined room %d", params.UserName, params.Code)
	return nil
}

// Get 查询房间 不创建
func (r *Registry) Get(code int) (*Room, bool) {
	r.RLock()
	defer r.RUnlock()
	rm, ok := r.rooms[code]
	return rm, ok
}

// Allocate 在code处放一个全新的空房间 覆盖旧的
func (r *Registry) Allocate(code int) *Room {
	r.Lock()
	defer r.Unlock()
	rm := NewRoom(code, r.maxLength, r.startPolicy)
	r.rooms[code] = rm
	return rm
}

// Snapshot 所有房间的公开投影 调试接口用
func (r *Registry) Snapshot() map[int]proto.RoomInfo {
	r.RLock()
	rooms := make([]*Room, 0, len(r.rooms))
	for _, rm := range r.rooms {
		rooms = append(rooms, rm)
	}
	r.RUnlock()

	snapshot := make(map[int]proto.RoomInfo, len(rooms))
	for _, rm := range rooms {
		snapshot[rm.Code()] = rm.ToRoomInfo()
	}
	return snapshot
}
