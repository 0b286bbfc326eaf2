package kv

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// replicateRequest is the wire body POSTed to a follower's /replicate.
type replicateRequest struct {
	RequestID string `json:"request_id"`
	Key       string `json:"key"`
	Value     string `json:"value"`
}

type followerResult struct {
	follower string
	err      error
}

// Leader owns the authoritative local store and fans writes out to a
// fixed set of followers, gating on a write quorum W. The leader's own
// local write never counts toward W; every confirmation must come
// from a follower.
type Leader struct {
	store      *Store
	followers  []string
	quorum     int
	httpClient *http.Client
}

// NewLeader builds a leader that requires W follower confirmations per
// write, replicating to followers at the given base URLs.
func NewLeader(followers []string, quorum int) *Leader {
	return &Leader{
		store:     NewStore(),
		followers: followers,
		quorum:    quorum,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// Read returns the leader's own view of key.
func (l *Leader) Read(key string) (string, error) {
	return l.store.Get(key)
}

// WriteResult reports what a Write call actually achieved, mirroring
// the fields a caller needs to decide whether to retry or warn.
type WriteResult struct {
	Confirmations int
	QuorumMet     bool
}

// Write commits key/value locally, then replicates to every follower
// concurrently and returns as soon as W of them have confirmed
// (semi-synchronous replication). The leader's own local write is not
// one of the W acknowledgements. Followers that haven't yet responded
// keep running in the background; Write never waits for stragglers.
func (l *Leader) Write(key, value string) WriteResult {
	l.store.Set(key, value, time.Now())

	required := l.quorum
	if required > len(l.followers) {
		required = len(l.followers)
	}

	if required == 0 {
		l.replicateInBackground(key, value)
		return WriteResult{Confirmations: 0, QuorumMet: true}
	}

	results := make(chan followerResult, len(l.followers))
	for _, f := range l.followers {
		go func(follower string) {
			results <- followerResult{follower: follower, err: l.callReplicate(follower, key, value)}
		}(f)
	}

	confirmed := 0
	responded := 0
	for responded < len(l.followers) {
		r := <-results
		responded++
		if r.err != nil {
			log.Printf("replication to %s failed: %v", r.follower, r.err)
			continue
		}
		confirmed++
		if confirmed >= required {
			go l.drainRemaining(results, len(l.followers)-responded)
			return WriteResult{Confirmations: confirmed, QuorumMet: true}
		}
	}

	return WriteResult{Confirmations: confirmed, QuorumMet: confirmed >= l.quorum}
}

// drainRemaining lets outstanding replication goroutines finish
// writing to the channel without leaking them, once Write has already
// returned to its caller.
func (l *Leader) drainRemaining(results chan followerResult, n int) {
	for i := 0; i < n; i++ {
		r := <-results
		if r.err != nil {
			log.Printf("replication to %s failed (background): %v", r.follower, r.err)
		}
	}
}

// replicateInBackground fires off replication without waiting on any
// of it, for the case where no follower confirmation is required
// (quorum clamps to zero, e.g. there are no followers at all).
func (l *Leader) replicateInBackground(key, value string) {
	for _, f := range l.followers {
		go func(follower string) {
			if err := l.callReplicate(follower, key, value); err != nil {
				log.Printf("replication to %s failed (background): %v", follower, err)
			}
		}(f)
	}
}

func (l *Leader) callReplicate(follower, key, value string) error {
	requestID := uuid.NewString()
	body, err := json.Marshal(replicateRequest{RequestID: requestID, Key: key, Value: value})
	if err != nil {
		return fmt.Errorf("encode replicate request %s: %w", requestID, err)
	}
	resp, err := l.httpClient.Post(follower+"/replicate", "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("post request %s to %s: %w", requestID, follower, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("follower %s returned status %d for request %s", follower, resp.StatusCode, requestID)
	}
	return nil
}
