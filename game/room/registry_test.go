package room

import (
	"testing"

	"github.com/Dewaeq/tetris-server/common/biz"
	"github.com/Dewaeq/tetris-server/game/proto"
)

func TestJoinRoomCreatesRoom(t *testing.T) {
	reg := NewRegistry(2, "fill")
	alice := newFakeChannel("alice")

	if err := reg.JoinRoom(JoinParams{Code: 42, UserName: "Alice"}, alice); err != nil {
		t.Fatalf("join err:%v", err)
	}
	joined := alice.received("joined")
	if len(joined) != 1 {
		t.Fatalf("expected 1 joined reply, got %d", len(joined))
	}
	push := joined[0].(proto.JoinedPush)
	if push.Code != 42 || !push.IsHost || len(push.Users) != 1 {
		t.Fatalf("unexpected joined push:%+v", push)
	}

	bob := newFakeChannel("bob")
	if err := reg.JoinRoom(JoinParams{Code: 42, UserName: "Bob"}, bob); err != nil {
		t.Fatalf("join err:%v", err)
	}
	bobJoined := bob.received("joined")[0].(proto.JoinedPush)
	if bobJoined.IsHost {
		t.Fatal("second joiner must not be host")
	}
	rm, _ := reg.Get(42)
	if !rm.Started() {
		t.Fatal("room with fill policy should start when full")
	}
}

func TestJoinRoomFullRejected(t *testing.T) {
	reg := NewRegistry(2, "fill")
	reg.JoinRoom(JoinParams{Code: 7, UserName: "Alice"}, newFakeChannel("alice"))
	reg.JoinRoom(JoinParams{Code: 7, UserName: "Bob"}, newFakeChannel("bob"))

	carol := newFakeChannel("carol")
	err := reg.JoinRoom(JoinParams{Code: 7, UserName: "Carol"}, carol)
	if err != biz.RoomPlayerCountFull {
		t.Fatalf("expected RoomPlayerCountFull, got %v", err)
	}
	rm, _ := reg.Get(7)
	if rm.UserCount() != 2 {
		t.Fatal("rejected join must not change the room")
	}
}

func TestJoinEmptyRoomReplacesIt(t *testing.T) {
	reg := NewRegistry(2, "host")
	alice := newFakeChannel("alice")
	bob := newFakeChannel("bob")
	reg.JoinRoom(JoinParams{Code: 9, UserName: "Alice"}, alice)
	reg.JoinRoom(JoinParams{Code: 9, UserName: "Bob"}, bob)
	old, _ := reg.Get(9)

	//一个人断开 整个房间复位 下一个加入者拿到全新房间并成为房主
	alice.disconnect()
	carol := newFakeChannel("carol")
	if err := reg.JoinRoom(JoinParams{Code: 9, UserName: "Carol"}, carol); err != nil {
		t.Fatalf("join err:%v", err)
	}
	push := carol.received("joined")[0].(proto.JoinedPush)
	if !push.IsHost {
		t.Fatal("joiner of a stale room must become host")
	}
	fresh, _ := reg.Get(9)
	if fresh == old {
		t.Fatal("stale room must be replaced, not reused")
	}
}

func TestAllocateOverwrites(t *testing.T) {
	reg := NewRegistry(2, "fill")
	reg.JoinRoom(JoinParams{Code: 5, UserName: "Alice"}, newFakeChannel("alice"))
	rm := reg.Allocate(5)
	if !rm.Empty() {
		t.Fatal("allocated room must be empty")
	}
	got, _ := reg.Get(5)
	if got != rm {
		t.Fatal("allocate must overwrite the registry entry")
	}
}

func TestSnapshot(t *testing.T) {
	reg := NewRegistry(2, "fill")
	if len(reg.Snapshot()) != 0 {
		t.Fatal("fresh registry snapshot must be empty")
	}
	reg.JoinRoom(JoinParams{Code: 1, UserName: "Alice"}, newFakeChannel("alice"))
	snapshot := reg.Snapshot()
	info, ok := snapshot[1]
	if !ok {
		t.Fatal("room 1 missing from snapshot")
	}
	if info.MaxLength != 2 || info.Started || len(info.Users) != 1 || info.HostId != "alice" {
		t.Fatalf("unexpected room info:%+v", info)
	}
}

func TestRegistryDefaults(t *testing.T) {
	reg := NewRegistry(0, "")
	if reg.maxLength != 2 {
		t.Fatalf("default maxLength should be 2, got %d", reg.maxLength)
	}
	if reg.startPolicy != StartPolicyFill {
		t.Fatalf("default start policy should be fill, got %s", reg.startPolicy)
	}
}
