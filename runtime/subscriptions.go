package runtime

import (
	"sync"

	"chat-rooms/contract"
	"chat-rooms/domain"
)

type Set map[string]struct{}

// Subscriptions tracks which live connections observe which room. It is
// deliberately separate from the Registry: membership is a domain fact
// (a name is in a room), a subscription is a transport fact (a socket
// wants that room's events), and the two go out of sync during connect
// and disconnect races.
type Subscriptions struct {
	mu          sync.RWMutex
	sinks       map[string]contract.EventSink // map connection -> sink
	roomConns   map[domain.RoomCode]Set       // map room -> connections
	connsByRoom map[string]domain.RoomCode    // reverse index for cleanup
}

func NewSubscriptions() *Subscriptions {
	return &Subscriptions{
		sinks:       make(map[string]contract.EventSink),
		roomConns:   make(map[domain.RoomCode]Set),
		connsByRoom: make(map[string]domain.RoomCode),
	}
}

// Subscribe registers a connection's sink and assigns it to a room.
// If the room is not yet tracked, it is initialized on the fly.
func (s *Subscriptions) Subscribe(connID string, code domain.RoomCode, sink contract.EventSink) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sinks[connID] = sink
	s.connsByRoom[connID] = code

	if _, ok := s.roomConns[code]; !ok {
		s.roomConns[code] = make(Set)
	}
	s.roomConns[code][connID] = struct{}{}
}

// Unsubscribe removes a connection and its room assignment. No empty
// sets are left behind in the room map.
func (s *Subscriptions) Unsubscribe(connID string, code domain.RoomCode) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sinks, connID)
	delete(s.connsByRoom, connID)

	if conns, ok := s.roomConns[code]; ok {
		delete(conns, connID)

		// If no one is left observing the room, remove the entry entirely
		if len(conns) == 0 {
			delete(s.roomConns, code)
		}
	}
}

// SinksForRoom retrieves all active sinks for a specific room, the
// snapshot the fan-out iterates over. Returns nil if the room has no
// subscribers.
func (s *Subscriptions) SinksForRoom(code domain.RoomCode) []contract.EventSink {
	s.mu.RLock()
	defer s.mu.RUnlock()

	conns, ok := s.roomConns[code]
	if !ok {
		return nil
	}
	var activeSinks []contract.EventSink
	for connID := range conns {
		if sink, exists := s.sinks[connID]; exists {
			activeSinks = append(activeSinks, sink)
		}
	}
	return activeSinks
}

func (s *Subscriptions) HasSubscribers(code domain.RoomCode) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.roomConns[code]) > 0
}
