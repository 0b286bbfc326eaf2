package boardengine

import "sync"

// regionTable hands out a per-value mutex, keyed by the card string
// under substitution, and drops the entry once nobody holds or is
// waiting on it — the "mapping from current value to an in-progress
// region handle" spec §9 describes. Regions for distinct values never
// contend; two Map calls racing on the same source value serialize.
type regionTable struct {
	mu      sync.Mutex
	regions map[string]*region
}

type region struct {
	mu       sync.Mutex
	refcount int
}

func newRegionTable() *regionTable {
	return &regionTable{regions: make(map[string]*region)}
}

func (rt *regionTable) lock(value string) *region {
	rt.mu.Lock()
	r, ok := rt.regions[value]
	if !ok {
		r = &region{}
		rt.regions[value] = r
	}
	r.refcount++
	rt.mu.Unlock()

	r.mu.Lock()
	return r
}

func (rt *regionTable) unlock(value string, r *region) {
	r.mu.Unlock()

	rt.mu.Lock()
	r.refcount--
	if r.refcount == 0 {
		delete(rt.regions, value)
	}
	rt.mu.Unlock()
}

// Map substitutes card values board-wide without touching face/control
// state (spec §4.5). For each distinct value present when Map is
// called, f is evaluated once and the substitution is committed
// atomically with respect to concurrent Flip calls, but values are
// processed concurrently with each other — only two Map calls racing
// on the same source value serialize.
func (b *Board) Map(player string, f func(string) string) (string, error) {
	if err := validatePlayer(player); err != nil {
		return "", err
	}

	var values []string
	b.submit(func() {
		values = b.distinctValues()
	})

	var wg sync.WaitGroup
	wg.Add(len(values))
	for _, v := range values {
		v := v
		go func() {
			defer wg.Done()
			r := b.region.lock(v)
			defer b.region.unlock(v, r)

			newValue := f(v)
			b.submit(func() {
				b.commitSubstitution(v, newValue)
			})
		}()
	}
	wg.Wait()

	var view string
	b.submit(func() {
		view, _ = b.renderLook(player)
	})
	return view, nil
}

// distinctValues returns the set of card strings present right now.
// Must run on the actor goroutine.
func (b *Board) distinctValues() []string {
	seen := make(map[string]bool)
	var out []string
	for i := range b.cells {
		c := b.cells[i].Card
		if c == "" {
			continue
		}
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}

// commitSubstitution rewrites every cell still carrying from into to,
// in one actor turn so it is atomic with respect to Flip. Must run on
// the actor goroutine.
func (b *Board) commitSubstitution(from, to string) {
	if from == to || to == "" {
		// to == "" would collide with the absent-card sentinel; f is
		// contractually pure over card labels, which are always
		// non-empty, so this only guards against a misbehaving f.
		return
	}
	changed := false
	for i := range b.cells {
		if b.cells[i].Card == from {
			b.cells[i].Card = to
			changed = true
		}
	}
	if changed {
		b.bumpVersion()
	}
}
