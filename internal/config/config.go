// Package config reads the environment-variable configuration shared
// by the board and KV binaries, following the same envOrDefault
// convention across all three.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Board holds the board server's configuration.
type Board struct {
	HTTPAddr  string
	BoardFile string
}

// LoadBoard reads BOARD_HTTP_ADDR and BOARD_FILE.
func LoadBoard() Board {
	return Board{
		HTTPAddr:  envOrDefault("BOARD_HTTP_ADDR", "127.0.0.1:8080"),
		BoardFile: envOrDefault("BOARD_FILE", "board.txt"),
	}
}

// Leader holds the KV leader's configuration.
type Leader struct {
	HTTPAddr  string
	Followers []string
	Quorum    int
}

// LoadLeader reads KV_HTTP_ADDR, KV_FOLLOWERS (comma-separated) and
// KV_WRITE_QUORUM. The artificial replication delay is injected on the
// follower side (see LoadFollower), not here.
func LoadLeader() (Leader, error) {
	quorum, err := envIntOrDefault("KV_WRITE_QUORUM", 1)
	if err != nil {
		return Leader{}, err
	}
	return Leader{
		HTTPAddr:  envOrDefault("KV_HTTP_ADDR", "127.0.0.1:9090"),
		Followers: splitNonEmpty(os.Getenv("KV_FOLLOWERS"), ","),
		Quorum:    quorum,
	}, nil
}

// Follower holds a KV follower's configuration.
type Follower struct {
	HTTPAddr   string
	ID         string
	MinDelayMs int
	MaxDelayMs int
}

// LoadFollower reads KV_HTTP_ADDR, KV_FOLLOWER_ID, KV_MIN_DELAY_MS and
// KV_MAX_DELAY_MS.
func LoadFollower() (Follower, error) {
	minDelay, err := envIntOrDefault("KV_MIN_DELAY_MS", 0)
	if err != nil {
		return Follower{}, err
	}
	maxDelay, err := envIntOrDefault("KV_MAX_DELAY_MS", 0)
	if err != nil {
		return Follower{}, err
	}
	return Follower{
		HTTPAddr:   envOrDefault("KV_HTTP_ADDR", "127.0.0.1:9091"),
		ID:         envOrDefault("KV_FOLLOWER_ID", "follower1"),
		MinDelayMs: minDelay,
		MaxDelayMs: maxDelay,
	}, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOrDefault(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func splitNonEmpty(s, sep string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, sep) {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
