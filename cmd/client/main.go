package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"strings"
	"sync"
	"syscall"
	"time"

	"chat-rooms/auth"
	"chat-rooms/domain"
	"chat-rooms/web"
	"chat-rooms/ws"

	"github.com/Netflix/go-env"
	"github.com/gookit/color"
	"github.com/gorilla/websocket"
	"github.com/olekukonko/tablewriter"
)

// Exit codes for the client application.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

// Config defines the client-side environment variables. The client
// signs its own session with the server's secret, so it is an operator
// tool, not something to hand to untrusted users.
type Config struct {
	ServerAddress   string        `env:"CHAT_SERVER_ADDR,default=localhost:8080"`
	Room            string        `env:"CHAT_ROOM,required=true"`
	Name            string        `env:"CHAT_NAME,required=true"`
	SessionSecret   string        `env:"SESSION_SECRET,required=true"`
	SessionDuration time.Duration `env:"SESSION_DURATION,default=1h"`
}

func main() {
	// The main function manages the OS exit code based on run()'s return.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Client error: %v\n", err)
	}
	os.Exit(code)
}

// run handles the websocket client lifecycle, configuration loading,
// and message streaming.
func run() (int, error) {
	// 1. Load configuration from environment variables.
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	identity := domain.Identity{
		Name: config.Name,
		Room: domain.RoomCode(strings.ToUpper(strings.TrimSpace(config.Room))),
	}

	// 2. Setup context to handle termination signals (Ctrl+C).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Sign a session and dial the server's websocket endpoint.
	token, err := auth.NewSessions(config.SessionSecret, config.SessionDuration).Issue(identity)
	if err != nil {
		return exitConfig, fmt.Errorf("could not sign session: %w", err)
	}

	header := http.Header{}
	header.Set("Cookie", fmt.Sprintf("%s=%s", web.SessionCookie, token))
	header.Set("Origin", "http://"+config.ServerAddress)

	endpoint := fmt.Sprintf("ws://%s/ws", config.ServerAddress)
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, endpoint, header)
	if err != nil {
		return exitRuntime, fmt.Errorf("could not connect to server at %s: %w", config.ServerAddress, err)
	}
	defer func() {
		fmt.Println("Closing connection...")
		_ = conn.Close()
	}()

	color.Green.Printf(">>> Connected to %s! Room %s as %s (Ctrl+C to quit, /who for members)...\n",
		config.ServerAddress, identity.Room, identity.Name)

	roster := newRoster(identity.Name)

	// 4. Stdin loop: plain lines become messages, /who prints the roster.
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			switch {
			case line == "":
			case line == "/who":
				roster.render(os.Stdout, identity.Room)
			default:
				frame, err := json.Marshal(ws.Envelope{
					Event: ws.EventMessage,
					Data:  mustMarshal(ws.InboundMessage{Data: line}),
				})
				if err != nil {
					continue
				}
				if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
					return
				}
			}
		}
	}()

	go func() {
		<-ctx.Done()
		// Unblocks the read loop below.
		_ = conn.Close()
	}()

	// 5. Message reception loop.
	// This loop runs until the context is canceled or the server closes
	// the connection.
	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			// Normal exit if the user triggered a shutdown.
			if ctx.Err() != nil {
				fmt.Println("Stopping client...")
				return exitOK, nil
			}
			return exitRuntime, fmt.Errorf("stream error: %w", err)
		}

		var frame ws.Envelope
		if err := json.Unmarshal(payload, &frame); err != nil {
			continue
		}
		display(frame, roster)
	}
}

// display prints one inbound frame and keeps the roster current.
func display(frame ws.Envelope, roster *roster) {
	timestamp := time.Now().Format(time.TimeOnly)

	switch frame.Event {
	case ws.EventMessage:
		var data ws.MessageData
		if err := json.Unmarshal(frame.Data, &data); err != nil {
			return
		}
		if data.IsGlobal {
			color.Gray.Printf("[%s] <%s>\n", timestamp, stripTags(data.Message))
			return
		}
		color.Cyan.Printf("[%s] %s: ", timestamp, data.Name)
		fmt.Println(stripTags(data.Message))
	case ws.EventConnected:
		var data ws.PresenceData
		if err := json.Unmarshal(frame.Data, &data); err != nil {
			return
		}
		roster.add(data.Name)
		color.Green.Printf("[%s] connected as %s\n", timestamp, data.Name)
	case ws.EventDisconnected:
		var data ws.PresenceData
		if err := json.Unmarshal(frame.Data, &data); err != nil {
			return
		}
		roster.remove(data.Name)
		color.Yellow.Printf("[%s] %s disconnected\n", timestamp, data.Name)
	}
}

// roster tracks member names seen on this connection. It only learns
// about members whose presence events arrive after we joined, so it is
// a best-effort view, not the registry's.
type roster struct {
	mu      sync.Mutex
	members map[string]time.Time
}

func newRoster(self string) *roster {
	return &roster{members: map[string]time.Time{self: time.Now()}}
}

func (r *roster) add(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.members[name] = time.Now()
}

func (r *roster) remove(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.members, name)
}

func (r *roster) render(out *os.File, room domain.RoomCode) {
	r.mu.Lock()
	names := make([]string, 0, len(r.members))
	for name := range r.members {
		names = append(names, name)
	}
	seen := make(map[string]time.Time, len(r.members))
	for name, at := range r.members {
		seen[name] = at
	}
	r.mu.Unlock()
	sort.Strings(names)

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Room", "Member", "Seen"})
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	for _, name := range names {
		table.Append([]string{string(room), name, seen[name].Format(time.TimeOnly)})
	}
	table.Render()
}

// stripTags removes the <b></b> markers the server uses in global
// announcements; everything else in a sanitized body is already escaped
// or an anchor, which reads fine in a terminal.
func stripTags(s string) string {
	replacer := strings.NewReplacer("<b>", "", "</b>", "", "&lt;", "<", "&gt;", ">", "&amp;", "&", "&#34;", `"`, "&#39;", "'")
	return replacer.Replace(s)
}

func mustMarshal(v any) json.RawMessage {
	payload, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return payload
}
