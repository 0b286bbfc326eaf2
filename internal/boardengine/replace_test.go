package boardengine

import (
	"strings"
	"testing"
)

func TestMapPreservesPairs(t *testing.T) {
	b := newTestBoard(t)
	// Flip a few cells face-up first so the rendered view actually
	// shows card letters; a still-face-down cell never reveals its
	// card regardless of what Map did to it.
	if _, err := b.Flip("p1", 0, 0); err != nil { // "A", mismatches on purpose below
		t.Fatalf("flip: %v", err)
	}
	if _, err := b.Flip("p1", 0, 1); err != nil { // "B"
		t.Fatalf("flip: %v", err)
	}

	view, err := b.Map("p1", func(v string) string {
		if v == "A" {
			return "Z"
		}
		return v
	})
	if err != nil {
		t.Fatalf("map: %v", err)
	}
	if got := lineFor(view, 0); got != "up Z" {
		t.Fatalf("cell (0,0) after map = %q, want %q", got, "up Z")
	}
	if got := lineFor(view, 1); got != "up B" {
		t.Fatalf("cell (0,1) after map = %q, want %q", got, "up B")
	}
	for _, line := range strings.Split(view, "\n")[1:] {
		if line == "" {
			continue
		}
		if strings.HasSuffix(line, " A") {
			t.Fatalf("expected all A cells replaced, still found: %q", line)
		}
	}
}

func TestMapPreservesFaceAndControl(t *testing.T) {
	b := newTestBoard(t)
	if _, err := b.Flip("p1", 0, 0); err != nil {
		t.Fatalf("flip: %v", err)
	}
	before, err := b.Look("p1")
	if err != nil {
		t.Fatalf("look: %v", err)
	}

	if _, err := b.Map("p1", func(v string) string { return v + "!" }); err != nil {
		t.Fatalf("map: %v", err)
	}

	after, err := b.Look("p1")
	if err != nil {
		t.Fatalf("look: %v", err)
	}
	beforeLines := strings.Split(before, "\n")
	afterLines := strings.Split(after, "\n")
	for i := range beforeLines {
		beforeState := strings.HasPrefix(beforeLines[i], "my") || strings.HasPrefix(beforeLines[i], "up") || beforeLines[i] == "down" || beforeLines[i] == "none"
		afterState := strings.HasPrefix(afterLines[i], "my") || strings.HasPrefix(afterLines[i], "up") || afterLines[i] == "down" || afterLines[i] == "none"
		if !beforeState || !afterState {
			continue
		}
		beforeKind := strings.SplitN(beforeLines[i], " ", 2)[0]
		afterKind := strings.SplitN(afterLines[i], " ", 2)[0]
		if beforeKind != afterKind {
			t.Fatalf("cell %d face/control changed: %q -> %q", i, beforeLines[i], afterLines[i])
		}
	}
}

func TestMapDoesNotBlockConcurrentFlips(t *testing.T) {
	b := newTestBoard(t)
	unblock := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		_, err := b.Map("p1", func(v string) string {
			<-unblock
			return v
		})
		done <- err
	}()

	// A flip on a value not being transformed yet should still
	// complete promptly; the actor is never held by a slow f.
	view, err := b.Flip("p2", 0, 0)
	if err != nil {
		t.Fatalf("flip during map: %v", err)
	}
	if !strings.Contains(view, "my A") {
		t.Fatalf("unexpected view during map: %q", view)
	}

	close(unblock)
	if err := <-done; err != nil {
		t.Fatalf("map: %v", err)
	}
}
