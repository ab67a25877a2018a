package sink

import (
	"context"
	"fmt"
	"testing"
	"time"

	"chat-rooms/domain/event"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestTimeline_KeepsLatestWithinCapacity(t *testing.T) {
	req := require.New(t)
	timeline := NewTimeline(3)

	// Given five messages arrive over a capacity of three
	for i := 0; i < 5; i++ {
		err := timeline.Consume(context.Background(), event.SanitizedMessage{
			ID:      uuid.New(),
			Room:    "ABCDEF",
			Author:  "alice",
			Content: fmt.Sprintf("msg-%d", i),
			At:      time.Now().UTC(),
		})
		req.NoError(err)
	}

	// Then only the newest three remain, in arrival order
	latest := timeline.Latest()
	req.Len(latest, 3)
	req.Equal("msg-2", latest[0].Body)
	req.Equal("msg-4", latest[2].Body)
}

func TestTimeline_IgnoresPresenceEvents(t *testing.T) {
	req := require.New(t)
	timeline := NewTimeline(10)

	req.NoError(timeline.Consume(context.Background(), event.MemberJoined{Room: "ABCDEF", Name: "alice"}))
	req.NoError(timeline.Consume(context.Background(), event.Disconnected{Room: "ABCDEF", Name: "alice"}))

	req.Empty(timeline.Latest())
}
