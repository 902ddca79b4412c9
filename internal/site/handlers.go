package site

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ziadkadry99/react-guide/internal/session"
)

// maxEventBytes bounds an event request body.
const maxEventBytes = 16 << 10

func (s *Site) handlePage(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	viaLink := r.URL.Query().Get(viaParam) == viaNav
	view := sess.Navigate(r.URL.Path, viaLink, hintFrom(r))

	page, ok := s.lib.Lookup(r.URL.Path)
	status := http.StatusOK
	if !ok {
		status = http.StatusNotFound
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.Render(w, page, view); err != nil {
		s.logger.Error().Err(err).Str("path", r.URL.Path).Msg("rendering page")
	}
}

func (s *Site) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.session(w, r).Snapshot())
}

func (s *Site) handleEvent(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)

	var ev session.Event
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxEventBytes)).Decode(&ev); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	snap, err := sess.Dispatch(ev)
	if err != nil {
		writeJSON(w, eventStatus(err), map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// handleFormEvent applies a form-posted event and sends the browser back to
// the page it came from.
func (s *Site) handleFormEvent(build func(*http.Request) session.Event) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := s.session(w, r)
		if _, err := sess.Dispatch(build(r)); err != nil {
			http.Error(w, err.Error(), eventStatus(err))
			return
		}

		back := r.FormValue("return")
		if !localPath(back) {
			back = "/"
		}
		http.Redirect(w, r, back, http.StatusSeeOther)
	}
}

// eventStatus maps a dispatch error to an HTTP status.
func eventStatus(err error) int {
	switch {
	case errors.Is(err, session.ErrUnknownEvent), errors.Is(err, session.ErrInvalidEvent):
		return http.StatusBadRequest
	case errors.Is(err, session.ErrClosed):
		return http.StatusGone
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
