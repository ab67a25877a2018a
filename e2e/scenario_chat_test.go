package e2e

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"chat-rooms/ws"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"
)

type ChatScenarioSuite struct {
	BaseSuite
}

func TestChatScenarioSuite(t *testing.T) {
	suite.Run(t, new(ChatScenarioSuite))
}

// Test_CreateRoomAndChat walks the full user path against a running
// server: create a room through the form, open the socket, say
// something, read it back sanitized.
func (s *ChatScenarioSuite) Test_CreateRoomAndChat() {
	t := s.T()
	name := fmt.Sprintf("e2e-%04d", rand.IntN(10000))

	s.Step(t, "Create a room through the home form")
	code := s.CreateRoom(name)
	s.Require().Len(code, 6)
	t.Logf("Room created: %s", code)

	s.Step(t, "Connect to the room")
	conn := s.DialRoom()
	defer conn.Close()

	s.Require().NoError(conn.SetReadDeadline(time.Now().Add(5 * time.Second)))

	// First frame is the private acknowledgment
	var env ws.Envelope
	_, raw, err := conn.ReadMessage()
	s.Require().NoError(err)
	s.Require().NoError(json.Unmarshal(raw, &env))
	s.Require().Equal(ws.EventConnected, env.Event)

	// Second is our own entry announcement
	_, raw, err = conn.ReadMessage()
	s.Require().NoError(err)
	s.Require().NoError(json.Unmarshal(raw, &env))
	s.Require().Equal(ws.EventMessage, env.Event)

	s.Step(t, "Post a message and read it back")
	payload, err := json.Marshal(ws.InboundMessage{Data: "hello from <b>e2e</b>"})
	s.Require().NoError(err)
	frame, err := json.Marshal(ws.Envelope{Event: ws.EventMessage, Data: payload})
	s.Require().NoError(err)
	s.Require().NoError(conn.WriteMessage(websocket.TextMessage, frame))

	_, raw, err = conn.ReadMessage()
	s.Require().NoError(err)
	s.Require().NoError(json.Unmarshal(raw, &env))
	s.Require().Equal(ws.EventMessage, env.Event)

	var msg ws.MessageData
	s.Require().NoError(json.Unmarshal(env.Data, &msg))
	s.Require().Equal(name, msg.Name)
	s.Require().Equal("hello from &lt;b&gt;e2e&lt;/b&gt;", msg.Message)
}
