package kv

import "errors"

// ErrNotFound means the key has never been written on this node.
var ErrNotFound = errors.New("key not found")

// ErrQuorumFailure means a write could not collect W follower
// acknowledgements (the leader's own write does not count) before every
// follower had either responded or failed outright.
var ErrQuorumFailure = errors.New("write quorum not met")
