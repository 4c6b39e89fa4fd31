package proto

// UserInfo 成员的公开投影 广播中只暴露这部分
type UserInfo struct {
	Id       string `json:"id"`
	Score    int    `json:"score"`
	UserName string `json:"userName"`
}

// RoomInfo 房间的公开投影 调试接口用
type RoomInfo struct {
	Code      int        `json:"code"`
	Users     []UserInfo `json:"users"`
	MaxLength int        `json:"maxLength"`
	Started   bool       `json:"started"`
	HostId    string     `json:"hostId"`
}

// JoinedPush 加入成功后回给加入者本人
type JoinedPush struct {
	Code   int        `json:"code"`
	IsHost bool       `json:"isHost"`
	Users  []UserInfo `json:"users"`
}

// StartPush 开局广播 所有成员收到完全相同的payload
type StartPush struct {
	StarterId string     `json:"starterId"`
	Bag       []int      `json:"bag"`
	NextBag   []int      `json:"nextBag"`
	AllUsers  []UserInfo `json:"allUsers"`
}
