package runtime

import (
	"sync"
	"testing"
	"time"

	"chat-rooms/domain"
	"chat-rooms/errors"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func TestRegistry_CreateRoom(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(domain.DefaultCodeLength, nil)

	// When a room is created
	code := registry.CreateRoom()

	// Then it exists under a fresh code
	req.Len(string(code), domain.DefaultCodeLength)
	req.True(registry.Exists(code))
	req.Equal(1, registry.RoomCount())
}

func TestRegistry_CreateRoom_ConcurrentCodesAreUnique(t *testing.T) {
	req := require.New(t)
	// Given a deliberately tiny code space to provoke collisions
	registry := NewRegistry(2, nil)

	const creates = 200
	codes := make(chan domain.RoomCode, creates)
	var wg sync.WaitGroup
	for i := 0; i < creates; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			codes <- registry.CreateRoom()
		}()
	}
	wg.Wait()
	close(codes)

	// Then every create got its own code
	seen := make(map[domain.RoomCode]struct{})
	for code := range codes {
		_, dup := seen[code]
		req.False(dup, "code %s handed out twice", code)
		seen[code] = struct{}{}
	}
	req.Equal(creates, registry.RoomCount())
}

func TestRegistry_Join_UnknownRoom(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(domain.DefaultCodeLength, nil)

	err := registry.Join("NOSUCH", "alice")

	req.ErrorIs(err, errors.ErrRoomNotFound)
}

func TestRegistry_Join_NameMustBeUnique(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(domain.DefaultCodeLength, nil)
	code := registry.CreateRoom()

	// Given alice is already in the room
	req.NoError(registry.Join(code, "alice"))

	// When a second alice tries to join
	err := registry.Join(code, "alice")

	// Then she is rejected, while a different name goes through
	req.ErrorIs(err, errors.ErrNameTaken)
	req.NoError(registry.Join(code, "bob"))
}

func TestRegistry_Leave_LastMemberDestroysRoom(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(domain.DefaultCodeLength, nil)
	code := registry.CreateRoom()
	req.NoError(registry.Join(code, "alice"))
	req.NoError(registry.Join(code, "bob"))

	// When a member leaves but the room is not empty
	deleted := registry.Leave(code, "alice")
	req.False(deleted)
	req.True(registry.Exists(code))

	// When the last member leaves
	deleted = registry.Leave(code, "bob")

	// Then the room is destroyed in the same operation
	req.True(deleted)
	req.False(registry.Exists(code))

	// And a late join lands on a dead code
	req.ErrorIs(registry.Join(code, "carol"), errors.ErrRoomNotFound)
}

func TestRegistry_Leave_UnknownRoomOrName(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(domain.DefaultCodeLength, nil)
	code := registry.CreateRoom()
	req.NoError(registry.Join(code, "alice"))

	req.False(registry.Leave("NOSUCH", "alice"))
	req.False(registry.Leave(code, "ghost"))
	req.True(registry.Exists(code))
}

func TestRegistry_AppendMessage_MissingRoomIsNoOp(t *testing.T) {
	registry := NewRegistry(domain.DefaultCodeLength, nil)

	// Must not panic nor create anything
	registry.AppendMessage("NOSUCH", domain.Message{ID: uuid.New(), Author: "alice", Body: "hello"})

	require.Equal(t, 0, registry.RoomCount())
}

func TestRegistry_AppendMessage_RespectsLimit(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(domain.DefaultCodeLength, lo.ToPtr(2))
	code := registry.CreateRoom()
	req.NoError(registry.Join(code, "alice"))

	for _, body := range []string{"one", "two", "three"} {
		registry.AppendMessage(code, domain.Message{ID: uuid.New(), Author: "alice", Body: body})
	}

	_, messages, ok := registry.Snapshot(code)
	req.True(ok)
	req.Len(messages, 2)
	req.Equal("two", messages[0].Body)
	req.Equal("three", messages[1].Body)
}

func TestRegistry_Snapshot(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(domain.DefaultCodeLength, nil)
	code := registry.CreateRoom()
	req.NoError(registry.Join(code, "zoe"))
	req.NoError(registry.Join(code, "alice"))
	registry.AppendMessage(code, domain.Message{ID: uuid.New(), Author: "zoe", Body: "hello"})

	members, messages, ok := registry.Snapshot(code)

	req.True(ok)
	// Members come back sorted for stable rendering
	req.Equal([]string{"alice", "zoe"}, members)
	req.Len(messages, 1)

	_, _, ok = registry.Snapshot("NOSUCH")
	req.False(ok)
}

func TestRegistry_ReapIdle(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(domain.DefaultCodeLength, nil)
	idle := registry.CreateRoom()
	watched := registry.CreateRoom()
	req.NoError(registry.Join(idle, "alice"))
	req.NoError(registry.Join(watched, "bob"))

	// Given both rooms have been quiet past the TTL
	time.Sleep(10 * time.Millisecond)

	// When the reaper runs and only one room has a live subscriber
	reaped := registry.ReapIdle(time.Millisecond, func(code domain.RoomCode) bool {
		return code == watched
	})

	// Then only the unobserved room is destroyed
	req.Equal([]domain.RoomCode{idle}, reaped)
	req.False(registry.Exists(idle))
	req.True(registry.Exists(watched))
}
