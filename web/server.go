// Package web is the thin HTTP glue in front of the core: the home form
// that establishes a session, the room page, and the WebSocket endpoint
// that dispatches transport events into the router. It holds no room
// state of its own.
package web

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"chat-rooms/auth"
	"chat-rooms/contract"
	"chat-rooms/sink"

	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
)

//go:embed templates/* static/*
var assets embed.FS

// SessionCookie is where the signed (name, room) binding travels.
const SessionCookie = "chat_session"

type Server struct {
	log        *slog.Logger
	registry   contract.IRegistry
	router     contract.IRouter
	sessions   *auth.Sessions
	timeline   *sink.Timeline
	sendBuffer int
	templates  *template.Template
	upgrader   websocket.Upgrader
}

func NewServer(log *slog.Logger, registry contract.IRegistry, router contract.IRouter,
	sessions *auth.Sessions, timeline *sink.Timeline, sendBuffer int) *Server {
	return &Server{
		log:        log,
		registry:   registry,
		router:     router,
		sessions:   sessions,
		timeline:   timeline,
		sendBuffer: sendBuffer,
		templates:  template.Must(template.ParseFS(assets, "templates/*.html")),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     sameOrigin,
		},
	}
}

// Routes builds the full handler. csrfKey enables form protection; an
// empty key skips the middleware, which only tests should do.
// secureCookies marks the CSRF cookie Secure and belongs on any
// deployment serving HTTPS.
func (s *Server) Routes(csrfKey string, secureCookies bool) http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/", s.HomeView).Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc("/room", s.RoomView).Methods(http.MethodGet)
	r.HandleFunc("/ws", s.WebSocketView).Methods(http.MethodGet)
	r.HandleFunc("/healthz", s.HealthView).Methods(http.MethodGet)
	r.PathPrefix("/static/").Handler(http.FileServer(http.FS(assets)))

	if csrfKey == "" {
		return r
	}
	protect := csrf.Protect([]byte(csrfKey),
		csrf.Secure(secureCookies),
		csrf.Path("/"),
	)
	return protect(r)
}

// sameOrigin accepts requests with no Origin header (non-browser
// clients) or an Origin matching the request host.
func sameOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := parseOrigin(origin)
	if err != nil {
		return false
	}
	return u == r.Host
}
