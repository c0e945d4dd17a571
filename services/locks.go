package services

import "sync"

// RoomLocks serializes all mutations for a given game id. Every
// read-modify-write sequence against a room (join, start, advance, answer,
// team operations) runs under that room's lock, so two teammates racing to
// answer or two players racing for the last team slot cannot interleave.
type RoomLocks struct {
	locks sync.Map // gameID -> *sync.Mutex
}

func NewRoomLocks() *RoomLocks {
	return &RoomLocks{}
}

// Lock acquires the mutex for gameID and returns the unlock func.
func (l *RoomLocks) Lock(gameID string) func() {
	v, _ := l.locks.LoadOrStore(gameID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
