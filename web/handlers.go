package web

import (
	"encoding/json"
	"html/template"
	"net/http"
	"net/url"
	"strings"

	"chat-rooms/auth"
	"chat-rooms/domain"
	"chat-rooms/ws"

	"github.com/gorilla/csrf"
	"github.com/samber/lo"
)

type homeData struct {
	ErrorMessage string
	Name         string
	Code         string
	CSRFField    interface{}
}

type roomData struct {
	Room      domain.RoomCode
	Members   []string
	Messages  []messageView
	CSRFField interface{}
}

// messageView wraps a history entry for the template. Body is already
// sanitized, so it renders unescaped; raw content never reaches here.
type messageView struct {
	Name    string
	Message template.HTML
}

// HomeView clears any prior session and handles the create/join form.
// All user-facing rejections (bad name, missing or unknown code, taken
// name) happen here, before any real-time connection exists.
func (s *Server) HomeView(w http.ResponseWriter, r *http.Request) {
	clearSession(w)

	if r.Method != http.MethodPost {
		s.renderHome(w, r, homeData{})
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	code := strings.ToUpper(strings.TrimSpace(r.FormValue("code")))
	join := r.FormValue("join") != ""
	create := r.FormValue("create") != ""

	if err := auth.ValidateName(name); err != nil {
		s.renderHome(w, r, homeData{ErrorMessage: "Please enter a valid name.", Name: name, Code: code})
		return
	}
	if join && code == "" {
		s.renderHome(w, r, homeData{ErrorMessage: "Please enter a room code.", Name: name, Code: code})
		return
	}
	if err := auth.ValidateCode(code); err != nil {
		s.renderHome(w, r, homeData{ErrorMessage: "Please enter a valid room code.", Name: name, Code: code})
		return
	}

	room := domain.RoomCode(code)
	switch {
	case create:
		room = s.registry.CreateRoom()
		s.log.Info("Room created", "room", room)
	case !s.registry.Exists(room):
		s.renderHome(w, r, homeData{ErrorMessage: "Room does not exist.", Name: name, Code: code})
		return
	case s.nameTaken(room, name):
		// Advisory only; the registry re-checks atomically at connect.
		s.renderHome(w, r, homeData{ErrorMessage: "Name is currently taken.", Name: name, Code: code})
		return
	}

	token, err := s.sessions.Issue(domain.Identity{Name: name, Room: room})
	if err != nil {
		s.log.Error("Failed to issue session", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	setSession(w, token)
	http.Redirect(w, r, "/room", http.StatusSeeOther)
}

// RoomView renders the room page with a snapshot of current members and
// history. A missing, stale, or tampered session goes back to the form.
func (s *Server) RoomView(w http.ResponseWriter, r *http.Request) {
	identity, ok := s.identityFrom(r)
	if !ok || !s.registry.Exists(identity.Room) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	members, messages, ok := s.registry.Snapshot(identity.Room)
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	views := lo.Map(messages, func(m domain.Message, _ int) messageView {
		return messageView{Name: m.Author, Message: template.HTML(m.Body)}
	})
	s.render(w, "room.html", roomData{
		Room:      identity.Room,
		Members:   members,
		Messages:  views,
		CSRFField: csrf.TemplateField(r),
	})
}

// WebSocketView upgrades the connection and hands it to the router. The
// session may be absent or stale; the router rejects those silently, so
// the upgrade always proceeds and the socket just closes.
func (s *Server) WebSocketView(w http.ResponseWriter, r *http.Request) {
	identity, _ := s.identityFrom(r)

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Debug("Upgrade failed", "error", err)
		return
	}

	client := ws.NewClient(s.log, conn, s.router, s.sendBuffer)
	client.Serve(r.Context(), identity)
}

// HealthView reports live counters for operators.
func (s *Server) HealthView(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":           "ok",
		"recent_messages":  len(s.timeline.Latest()),
		"rooms_are_served": true,
	})
}

func (s *Server) renderHome(w http.ResponseWriter, r *http.Request, data homeData) {
	data.CSRFField = csrf.TemplateField(r)
	s.render(w, "home.html", data)
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		s.log.Error("Template rendering failed", "template", name, "error", err)
	}
}

func (s *Server) identityFrom(r *http.Request) (domain.Identity, bool) {
	cookie, err := r.Cookie(SessionCookie)
	if err != nil {
		return domain.Identity{}, false
	}
	identity, err := s.sessions.Resolve(cookie.Value)
	if err != nil || !identity.Complete() {
		return domain.Identity{}, false
	}
	return identity, true
}

// nameTaken is the advisory pre-connect check mirroring the atomic one
// the registry performs at join time.
func (s *Server) nameTaken(room domain.RoomCode, name string) bool {
	members, _, ok := s.registry.Snapshot(room)
	if !ok {
		return false
	}
	return lo.Contains(members, name)
}

func setSession(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

// parseOrigin extracts host:port from an Origin header value.
func parseOrigin(origin string) (string, error) {
	u, err := url.Parse(origin)
	if err != nil {
		return "", err
	}
	return u.Host, nil
}
