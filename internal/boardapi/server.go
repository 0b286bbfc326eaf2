package boardapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"memoryscramble/internal/boardengine"
)

// NewServer wires the board's HTTP surface: look, flip, watch, replace,
// plus a health check in the teacher's style.
func NewServer(b *boardengine.Board) http.Handler {
	r := chi.NewRouter()

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/look/{player}", func(w http.ResponseWriter, r *http.Request) {
		player := chi.URLParam(r, "player")
		view, err := b.Look(player)
		writeTextResult(w, view, err)
	})

	r.Get("/flip/{player}/{coords}", func(w http.ResponseWriter, r *http.Request) {
		player := chi.URLParam(r, "player")
		row, col, ok := parseCoords(chi.URLParam(r, "coords"))
		if !ok {
			http.Error(w, "coords must be \"row,col\"", http.StatusBadRequest)
			return
		}
		view, err := b.Flip(player, row, col)
		writeTextResult(w, view, err)
	})

	r.Get("/watch/{player}", func(w http.ResponseWriter, r *http.Request) {
		player := chi.URLParam(r, "player")
		view, err := b.Watch(player)
		writeTextResult(w, view, err)
	})

	r.Get("/replace/{player}/{old}/{new}", func(w http.ResponseWriter, r *http.Request) {
		player := chi.URLParam(r, "player")
		old := chi.URLParam(r, "old")
		newVal := chi.URLParam(r, "new")
		view, err := b.Map(player, func(c string) string {
			if c == old {
				return newVal
			}
			return c
		})
		writeTextResult(w, view, err)
	})

	return r
}

// writeTextResult renders a successful view as text/plain, or maps a
// board error's Kind to an HTTP status per spec.md's "4xx/409-equivalent"
// note.
func writeTextResult(w http.ResponseWriter, view string, err error) {
	if err != nil {
		http.Error(w, err.Error(), statusForErr(err))
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(view))
}

func statusForErr(err error) int {
	k, ok := boardengine.ErrKind(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch k {
	case boardengine.InvalidPlayer, boardengine.OutOfBounds:
		return http.StatusBadRequest
	case boardengine.NoCard, boardengine.SecondControlled:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// parseCoords splits "row,col" into its two integers.
func parseCoords(s string) (row, col int, ok bool) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	row, err1 := strconv.Atoi(parts[0])
	col, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return row, col, true
}
