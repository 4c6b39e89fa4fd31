package request

type JoinRoomReq struct {
	Code     int    `json:"code"`
	UserName string `json:"userName"`
	Token    string `json:"token"`
}
