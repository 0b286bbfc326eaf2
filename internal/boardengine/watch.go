package boardengine

// pendingWatch is a parked Watch call waiting on the next version bump.
type pendingWatch struct {
	player string
	resp   chan string
}

// notifyWatchers wakes every pending watcher. Called from bumpVersion,
// so it always runs on the actor goroutine.
func (b *Board) notifyWatchers() {
	if len(b.watchers) == 0 {
		return
	}
	watchers := b.watchers
	b.watchers = nil
	for _, w := range watchers {
		view, _ := b.renderLook(w.player)
		w.resp <- view
	}
}

// Watch returns the next view of the board after any version bump at
// or after the call (spec §4.6). If a change already raced in between
// the caller sampling its intent to watch and the actor processing the
// request, Watch returns immediately with the current view — there is
// no window in which a change could be silently missed, because the
// version compared against is the one the actor observes while
// processing this exact request, and every version bump happens
// strictly inside the actor.
func (b *Board) Watch(player string) (string, error) {
	if err := validatePlayer(player); err != nil {
		return "", err
	}
	resp := make(chan string, 1)
	var v0 int
	b.submit(func() { v0 = b.version })

	b.submit(func() {
		if b.version != v0 {
			view, _ := b.renderLook(player)
			resp <- view
			return
		}
		b.watchers = append(b.watchers, pendingWatch{player: player, resp: resp})
	})
	return <-resp, nil
}
