package kv_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"memoryscramble/internal/kv"
	"memoryscramble/internal/kvapi"
)

func newTestFollower(t *testing.T, delayMs int) (string, *kv.Follower) {
	t.Helper()
	f := kv.NewFollower(t.Name(), kv.DelayRange{MinMs: delayMs, MaxMs: delayMs})
	srv := httptest.NewServer(kvapi.NewFollowerRouter(f))
	t.Cleanup(srv.Close)
	return srv.URL, f
}

func TestLeaderWriteWithQuorumOneWaitsForFollower(t *testing.T) {
	url, _ := newTestFollower(t, 200)
	leader := kv.NewLeader([]string{url}, 1)

	start := time.Now()
	result := leader.Write("k", "v")
	elapsed := time.Since(start)

	if !result.QuorumMet {
		t.Fatal("expected quorum met")
	}
	if result.Confirmations != 1 {
		t.Fatalf("confirmations = %d, want 1", result.Confirmations)
	}
	// The leader's own write counts for nothing; W=1 needs the follower's ACK.
	if elapsed < 200*time.Millisecond {
		t.Fatalf("Q=1 write returned in %v, should have waited on the follower", elapsed)
	}
}

func TestLeaderWriteWithQuorumTwoGatedByFasterFollowers(t *testing.T) {
	fastURL, _ := newTestFollower(t, 10)
	midURL, _ := newTestFollower(t, 60)
	slowURL, _ := newTestFollower(t, 300)
	leader := kv.NewLeader([]string{fastURL, midURL, slowURL}, 2)

	start := time.Now()
	result := leader.Write("k", "v")
	elapsed := time.Since(start)

	if !result.QuorumMet {
		t.Fatal("expected quorum met")
	}
	if result.Confirmations != 2 {
		t.Fatalf("confirmations = %d, want 2", result.Confirmations)
	}
	// Quorum should be gated by the two fastest followers, not the slowest.
	if elapsed >= 250*time.Millisecond {
		t.Fatalf("write took %v, expected to return once the two fastest followers confirmed", elapsed)
	}
}

func TestLeaderWriteEventuallyReachesAllFollowers(t *testing.T) {
	fastURL, fastFollower := newTestFollower(t, 5)
	slowURL, slowFollower := newTestFollower(t, 150)
	leader := kv.NewLeader([]string{fastURL, slowURL}, 2)

	leader.Write("k", "v")

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		_, fastErr := fastFollower.Read("k")
		_, slowErr := slowFollower.Read("k")
		if fastErr == nil && slowErr == nil {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("background replication never reached all followers")
}

func TestLeaderReadOwnWrite(t *testing.T) {
	leader := kv.NewLeader(nil, 1)
	leader.Write("k", "v")
	got, err := leader.Read("k")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got != "v" {
		t.Fatalf("got = %q, want %q", got, "v")
	}
}
