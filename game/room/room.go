package room

import (
	"encoding/json"
	"sync"

	"github.com/Dewaeq/tetris-server/common/logs"
	"github.com/Dewaeq/tetris-server/common/utils"
	"github.com/Dewaeq/tetris-server/framework/net"
	"github.com/Dewaeq/tetris-server/game/proto"
)

type StartPolicy string

const (
	// StartPolicyFill 人满自动开局
	StartPolicyFill StartPolicy = "fill"
	// StartPolicyHost 房主指令开局
	StartPolicyHost StartPolicy = "host"
)

// Room 一局游戏会话 持有有序的成员列表
// 成员列表 started hostId 只能在持有锁的情况下访问
type Room struct {
	sync.RWMutex
	code        int
	users       []*User //加入顺序即广播顺序
	maxLength   int
	started     bool
	hostId      string
	startPolicy StartPolicy
}

func NewRoom(code int, maxLength int, startPolicy StartPolicy) *Room {
	return &Room{
		code:        code,
		users:       make([]*User, 0),
		maxLength:   maxLength,
		startPolicy: startPolicy,
	}
}

// AddUser 容量检查通过后构造User 追加成员 安装通道上的响应绑定
// 满员失败时不做任何修改 只返回false
func (r *Room) AddUser(channel net.Channel, userName string) bool {
	r.Lock()
	defer r.Unlock()
	if len(r.users) >= r.maxLength {
		logs.Warn("can't add user %s to room %d, room is already full", channel.ID(), r.code)
		return false
	}
	user := NewUser(channel, userName)
	isHost := len(r.users) == 0
	if isHost {
		//空房间的第一个成员成为房主
		r.hostId = user.Id()
	}
	r.users = append(r.users, user)
	//先回给加入者本人 再通知其他成员 人满才开局
	if err := channel.Emit("joined", proto.JoinedPush{
		Code:   r.code,
		IsHost: isHost,
		Users:  r.usersInfo(),
	}); err != nil {
		logs.Error("emit joined to %s err:%v", user.Id(), err)
	}
	r.emitAll("userJoined", user.ToUserInfo(), []string{user.Id()})

	channel.On("update", func(ch net.Channel, data json.RawMessage) {
		logs.Debug("%s sent an update", ch.ID())
		//payload不做任何校验 原样转发给除发送者外的所有成员
		r.EmitAll("update", data, []string{ch.ID()})
	})
	channel.On("start", func(ch net.Channel, data json.RawMessage) {
		r.requestStart(ch)
	})
	channel.OnDisconnect(func() {
		r.RemoveUser(channel)
	})

	if r.startPolicy == StartPolicyFill && len(r.users) == r.maxLength && !r.started {
		r.start()
	}
	return true
}

// RemoveUser 任何一个成员断开 都会先广播leave 然后整个房间复位
// 不区分正常断开和异常断开
func (r *Room) RemoveUser(channel net.Channel) {
	r.Lock()
	defer r.Unlock()
	r.emitAll("leave", r.usersInfo(), nil)
	r.reset()
}

// EmitAll 按加入顺序给所有不在排除名单中的成员发送同一份payload
// 纯转发 不改房间状态 也不等待确认
func (r *Room) EmitAll(event string, data any, exclude []string) {
	r.RLock()
	defer r.RUnlock()
	r.emitAll(event, data, exclude)
}

func (r *Room) emitAll(event string, data any, exclude []string) {
	for _, user := range r.users {
		if utils.Contains(exclude, user.Id()) {
			continue
		}
		if err := user.channel.Emit(event, data); err != nil {
			logs.Error("emit %s to %s err:%v", event, user.Id(), err)
		}
	}
}

// Start 计算两个bag 给所有成员广播完全一致的start事件
// 不做重入保护 由调用方保证人满(或房主指令)只触发一次
func (r *Room) Start() {
	r.Lock()
	defer r.Unlock()
	r.start()
}

func (r *Room) start() {
	if len(r.users) == 0 {
		return
	}
	push := proto.StartPush{
		StarterId: r.users[0].Id(),
		Bag:       NewBag(),
		NextBag:   NewBag(),
		AllUsers:  r.usersInfo(),
	}
	r.emitAll("start", push, nil)
	r.started = true
	logs.Info("room %d started, starter %s", r.code, push.StarterId)
}

// requestStart 处理成员发来的start事件 只有host策略下的房主有效
func (r *Room) requestStart(channel net.Channel) {
	r.Lock()
	defer r.Unlock()
	if r.startPolicy != StartPolicyHost {
		logs.Warn("room %d ignores start request from %s, start policy is %s", r.code, channel.ID(), r.startPolicy)
		return
	}
	if channel.ID() != r.hostId {
		logs.Warn("unauthorized start request from %s in room %d", channel.ID(), r.code)
		return
	}
	if r.started {
		return
	}
	r.start()
}

// reset 清空成员 清空房主 回到未开局状态
func (r *Room) reset() {
	r.users = make([]*User, 0)
	r.hostId = ""
	r.started = false
}

func (r *Room) Code() int {
	return r.code
}

func (r *Room) HostId() string {
	r.RLock()
	defer r.RUnlock()
	return r.hostId
}

func (r *Room) Started() bool {
	r.RLock()
	defer r.RUnlock()
	return r.started
}

func (r *Room) Empty() bool {
	r.RLock()
	defer r.RUnlock()
	return len(r.users) == 0
}

func (r *Room) Full() bool {
	r.RLock()
	defer r.RUnlock()
	return len(r.users) == r.maxLength
}

func (r *Room) UserCount() int {
	r.RLock()
	defer r.RUnlock()
	return len(r.users)
}

// UsersInfo 当前成员的公开投影 按加入顺序
func (r *Room) UsersInfo() []proto.UserInfo {
	r.RLock()
	defer r.RUnlock()
	return r.usersInfo()
}

func (r *Room) usersInfo() []proto.UserInfo {
	users := make([]proto.UserInfo, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u.ToUserInfo())
	}
	return users
}

func (r *Room) ToRoomInfo() proto.RoomInfo {
	r.RLock()
	defer r.RUnlock()
	return proto.RoomInfo{
		Code:      r.code,
		Users:     r.usersInfo(),
		MaxLength: r.maxLength,
		Started:   r.started,
		HostId:    r.hostId,
	}
}
