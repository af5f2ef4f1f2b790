package web

import (
	"net/http"
	"time"

	"github.com/JonMunkholm/leaderboard/internal/core"
	"github.com/JonMunkholm/leaderboard/internal/logging"
	"github.com/JonMunkholm/leaderboard/internal/web/templates"
)

// sortState reads ?sort=&dir= falling back to the configured default.
func (s *Server) sortState(r *http.Request) core.SortState {
	q := r.URL.Query()
	return core.ParseSortState(q.Get("sort"), q.Get("dir"), s.service.DefaultSort())
}

func (s *Server) pageData(r *http.Request, msg *core.UserMessage) templates.PageData {
	return templates.PageData{
		Board:      s.service.Board(s.service.Current(), s.sortState(r)),
		Error:      msg,
		TimeFormat: s.cfg.Board.TimeFormat,
	}
}

// renderPage writes the full page for the current snapshot.
func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, msg *core.UserMessage, status int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := templates.Page(s.pageData(r, msg)).Render(r.Context(), w); err != nil {
		logging.FromContext(r.Context()).Error("render page", "error", err)
	}
}

// renderSection writes the swappable board section for HTMX requests.
func (s *Server) renderSection(w http.ResponseWriter, r *http.Request, msg *core.UserMessage, status int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := templates.BoardSection(s.pageData(r, msg)).Render(r.Context(), w); err != nil {
		logging.FromContext(r.Context()).Error("render board section", "error", err)
	}
}

// handleIndex renders the leaderboard, loading the sheet on first visit.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if _, err := s.service.Ensure(r.Context()); err != nil {
		s.respondError(w, r, err, statusForError(err))
		return
	}
	s.renderPage(w, r, nil, http.StatusOK)
}

// handleRefresh reloads the sheet. Plain form posts are redirected back to
// the page with the same sort; HTMX requests get the board section.
func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if _, err := s.service.Load(r.Context()); err != nil {
		s.respondError(w, r, err, statusForError(err))
		return
	}

	if isHTMX(r) {
		s.renderSection(w, r, nil, http.StatusOK)
		return
	}

	state := s.sortState(r)
	http.Redirect(w, r, "/?sort="+string(state.Key)+"&dir="+string(state.Dir), http.StatusSeeOther)
}

// handleAPIBoard returns the ranked board as JSON.
func (s *Server) handleAPIBoard(w http.ResponseWriter, r *http.Request) {
	snap, err := s.service.Ensure(r.Context())
	if err != nil {
		s.respondError(w, r, err, statusForError(err))
		return
	}
	writeJSON(w, http.StatusOK, s.service.Board(snap, s.sortState(r)))
}

// handleAPIRefresh reloads the sheet and returns the new board as JSON.
func (s *Server) handleAPIRefresh(w http.ResponseWriter, r *http.Request) {
	snap, err := s.service.Load(r.Context())
	if err != nil {
		s.respondError(w, r, err, statusForError(err))
		return
	}
	writeJSON(w, http.StatusOK, s.service.Board(snap, s.sortState(r)))
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status   string     `json:"status"`
	Loaded   bool       `json:"loaded"`
	Records  int        `json:"records"`
	LoadedAt *time.Time `json:"loadedAt,omitempty"`
}

// handleHealth reports liveness. It never triggers a load.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{Status: "ok"}
	if snap := s.service.Current(); snap != nil {
		resp.Loaded = true
		resp.Records = len(snap.Records)
		resp.LoadedAt = &snap.LoadedAt
	}
	writeJSON(w, http.StatusOK, resp)
}
