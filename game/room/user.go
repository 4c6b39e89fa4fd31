package room

import (
	"github.com/Dewaeq/tetris-server/framework/net"
	"github.com/Dewaeq/tetris-server/game/proto"
)

// User 房间内的一个成员 绑定唯一一条通道 只属于一个房间
type User struct {
	channel  net.Channel
	UserName string
	Score    int //由房间之外的玩法逻辑修改 这里只负责透出
}

func NewUser(channel net.Channel, userName string) *User {
	return &User{
		channel:  channel,
		UserName: userName,
	}
}

// Id 成员标识就是通道标识 由传输层分配
func (u *User) Id() string {
	return u.channel.ID()
}

func (u *User) ToUserInfo() proto.UserInfo {
	return proto.UserInfo{
		Id:       u.Id(),
		Score:    u.Score,
		UserName: u.UserName,
	}
}
