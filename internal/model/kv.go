package model

import "time"

// Entry is one key/value record as held by a replica (leader or
// follower). LastUpdate is an ordering hint only — it is never used to
// arbitrate conflicts, per spec: no cross-replica agreement is claimed.
type Entry struct {
	Value      string
	LastUpdate time.Time
}
