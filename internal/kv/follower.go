package kv

import "time"

// Follower is a replication target. It owns a Store and applies the
// artificial network delay on the inbound side: a slow follower is
// slow to persist, not slow to be dialed.
type Follower struct {
	ID    string
	store *Store
	delay DelayRange
}

// NewFollower builds a follower identified by id, using delay as its
// injected inbound latency window.
func NewFollower(id string, delay DelayRange) *Follower {
	return &Follower{ID: id, store: NewStore(), delay: delay}
}

// Replicate applies the leader's write after sleeping for a sampled
// delay, then stores it with the receive timestamp (not the leader's
// write timestamp — followers only know when they themselves saw it).
func (f *Follower) Replicate(key, value string) {
	time.Sleep(f.delay.Sample())
	f.store.Set(key, value, time.Now())
}

// Read returns the follower's local view of key.
func (f *Follower) Read(key string) (string, error) {
	return f.store.Get(key)
}

// Size reports the follower's local key count, for status endpoints.
func (f *Follower) Size() int {
	return f.store.Len()
}
