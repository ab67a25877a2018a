package runtime

import (
	"sort"
	"sync"
	"time"

	"chat-rooms/domain"
	"chat-rooms/errors"

	"github.com/samber/lo"
)

// Registry owns the mapping from room code to room state. It is the only
// path to room mutation: callers never touch a Room directly.
//
// Locking is two-level. The registry RWMutex guards the map itself;
// every entry carries its own mutex so that join/leave/message/teardown
// for one room execute one at a time while different rooms proceed in
// parallel. A room emptied by a leave is marked dead under its entry
// lock before being unlinked, so no join can resurrect it in between.
type Registry struct {
	mu            sync.RWMutex
	rooms         map[domain.RoomCode]*roomEntry
	codeLength    int
	limitMessages *int
}

type roomEntry struct {
	mu   sync.Mutex
	room *domain.Room
	dead bool
}

// NewRegistry creates an empty registry. limitMessages caps each room's
// history when non-nil; nil keeps history unbounded for the room's
// lifetime.
func NewRegistry(codeLength int, limitMessages *int) *Registry {
	if codeLength <= 0 {
		codeLength = domain.DefaultCodeLength
	}
	return &Registry{
		rooms:         make(map[domain.RoomCode]*roomEntry),
		codeLength:    codeLength,
		limitMessages: limitMessages,
	}
}

// CreateRoom allocates a fresh unique code and inserts an empty room.
// Generation and insertion happen under one lock, so two concurrent
// creates can never both observe the same candidate as free.
func (r *Registry) CreateRoom() domain.RoomCode {
	r.mu.Lock()
	defer r.mu.Unlock()

	code := domain.GenerateCode(r.codeLength, func(c domain.RoomCode) bool {
		_, taken := r.rooms[c]
		return taken
	})
	r.rooms[code] = &roomEntry{room: domain.NewRoom(code)}
	return code
}

func (r *Registry) Exists(code domain.RoomCode) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.rooms[code]
	return ok
}

func (r *Registry) entry(code domain.RoomCode) (*roomEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.rooms[code]
	return e, ok
}

// Join adds name to the room's member set. The uniqueness check and the
// insert are atomic with respect to other joins and leaves on the same
// room.
func (r *Registry) Join(code domain.RoomCode, name string) error {
	e, ok := r.entry(code)
	if !ok {
		return errors.ErrRoomNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.dead {
		return errors.ErrRoomNotFound
	}
	if e.room.HasMember(name) {
		return errors.ErrNameTaken
	}
	e.room.AddMember(name)
	return nil
}

// Leave removes name from the room and destroys the room in the same
// operation when the member set empties. It reports whether the room was
// deleted. Leaving a room that no longer exists is a no-op.
func (r *Registry) Leave(code domain.RoomCode, name string) (deleted bool) {
	e, ok := r.entry(code)
	if !ok {
		return false
	}

	e.mu.Lock()
	if e.dead || !e.room.HasMember(name) {
		e.mu.Unlock()
		return false
	}
	empty := e.room.RemoveMember(name)
	if empty {
		e.dead = true
	}
	e.mu.Unlock()

	if !empty {
		return false
	}
	r.unlink(code, e)
	return true
}

// unlink drops a dead entry from the map. The entry was already marked
// dead under its own lock, so nothing can join it in the meantime.
func (r *Registry) unlink(code domain.RoomCode, e *roomEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if current, ok := r.rooms[code]; ok && current == e {
		delete(r.rooms, code)
	}
}

// AppendMessage records msg in the room's history. A missing room is the
// normal race with a disconnect teardown and is silently ignored.
func (r *Registry) AppendMessage(code domain.RoomCode, msg domain.Message) {
	e, ok := r.entry(code)
	if !ok {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.dead {
		return
	}
	e.room.Append(msg, r.limitMessages)
}

// Snapshot returns a read-only copy of the room's members and history
// for rendering to a newly joining viewer.
func (r *Registry) Snapshot(code domain.RoomCode) (members []string, messages []domain.Message, ok bool) {
	e, found := r.entry(code)
	if !found {
		return nil, nil, false
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.dead {
		return nil, nil, false
	}
	members = e.room.Members()
	sort.Strings(members)
	messages = e.room.History()
	return members, messages, true
}

// RoomCount reports how many rooms are currently alive.
func (r *Registry) RoomCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rooms)
}

// ReapIdle destroys rooms that have been inactive for longer than ttl
// and have no live subscribers. Members abandoned by an abrupt network
// loss never trigger a clean leave; this is the backstop that keeps such
// rooms from lingering forever.
func (r *Registry) ReapIdle(ttl time.Duration, hasSubscribers func(domain.RoomCode) bool) []domain.RoomCode {
	r.mu.RLock()
	codes := lo.Keys(r.rooms)
	r.mu.RUnlock()

	cutoff := time.Now().UTC().Add(-ttl)
	var reaped []domain.RoomCode
	for _, code := range codes {
		if hasSubscribers != nil && hasSubscribers(code) {
			continue
		}
		e, ok := r.entry(code)
		if !ok {
			continue
		}
		e.mu.Lock()
		idle := !e.dead && e.room.LastActive.Before(cutoff)
		if idle {
			e.dead = true
		}
		e.mu.Unlock()
		if idle {
			r.unlink(code, e)
			reaped = append(reaped, code)
		}
	}
	return reaped
}
