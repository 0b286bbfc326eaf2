package e2e

import (
	"net/http/httptest"
	"testing"

	"memoryscramble/internal/boardapi"
	"memoryscramble/internal/boardengine"
	"memoryscramble/internal/kv"
	"memoryscramble/internal/kvapi"
)

// boardSystemUnderTest runs a board server in-process over httptest.
// Unlike the KV lab's original external-process harness, the board
// and KV binaries have no persistence or crash-recovery behavior to
// exercise across a restart, so there is nothing an external process
// boundary would catch that an in-process httptest server wouldn't.
type boardSystemUnderTest struct {
	BaseURL string
	board   *boardengine.Board
}

func startBoardSystemUnderTest(t *testing.T, height, width int, cards []string) *boardSystemUnderTest {
	t.Helper()
	b := boardengine.NewBoard(height, width, cards)
	srv := httptest.NewServer(boardapi.NewServer(b))
	t.Cleanup(func() {
		srv.Close()
		b.Close()
	})
	return &boardSystemUnderTest{BaseURL: srv.URL, board: b}
}

// kvSystemUnderTest wires one leader and N followers, all in-process,
// and exposes their base URLs plus direct follower handles for
// assertions about eventual replication.
type kvSystemUnderTest struct {
	LeaderURL    string
	FollowerURLs []string
	Followers    []*kv.Follower
}

func startKVSystemUnderTest(t *testing.T, quorum, followerCount int, delay kv.DelayRange) *kvSystemUnderTest {
	t.Helper()

	var followerURLs []string
	var followers []*kv.Follower
	for i := 0; i < followerCount; i++ {
		f := kv.NewFollower(t.Name(), delay)
		srv := httptest.NewServer(kvapi.NewFollowerRouter(f))
		t.Cleanup(srv.Close)
		followerURLs = append(followerURLs, srv.URL)
		followers = append(followers, f)
	}

	leader := kv.NewLeader(followerURLs, quorum)
	leaderSrv := httptest.NewServer(kvapi.NewLeaderRouter(leader))
	t.Cleanup(leaderSrv.Close)

	return &kvSystemUnderTest{
		LeaderURL:    leaderSrv.URL,
		FollowerURLs: followerURLs,
		Followers:    followers,
	}
}
