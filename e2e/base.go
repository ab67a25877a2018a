package e2e

import (
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/gookit/color"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"
)

var (
	csrfTokenPattern = regexp.MustCompile(`name="gorilla\.csrf\.Token" value="([^"]+)"`)
	roomCodePattern  = regexp.MustCompile(`Room ([A-Z]+)`)
)

// BaseSuite drives a deployed server the way a browser would: one cookie
// jar per suite carries the CSRF and session cookies across steps.
type BaseSuite struct {
	suite.Suite
	Config Config
	client *http.Client
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if s.Config.ChatAddr == "" {
		s.T().Skip("CHAT_ADDR not set, skipping e2e suite")
	}

	jar, err := cookiejar.New(nil)
	s.Require().NoError(err)
	s.client = &http.Client{Jar: jar, Timeout: 10 * time.Second}
}

// Step prints a colorized header so suite logs read as a scenario
func (s *BaseSuite) Step(t *testing.T, name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	t.Log(header)
}

// FetchCSRFToken loads the home form and extracts the hidden token. The
// matching cookie lands in the jar as a side effect.
func (s *BaseSuite) FetchCSRFToken() string {
	resp, err := s.client.Get(s.Config.ChatAddr + "/")
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)

	match := csrfTokenPattern.FindSubmatch(body)
	s.Require().NotNil(match, "no CSRF token in home form")
	return string(match[1])
}

// CreateRoom submits the home form with the create button pressed and
// returns the code of the freshly created room.
func (s *BaseSuite) CreateRoom(name string) string {
	token := s.FetchCSRFToken()

	form := url.Values{
		"name":               {name},
		"create":             {"1"},
		"gorilla.csrf.Token": {token},
	}
	resp, err := s.client.PostForm(s.Config.ChatAddr+"/", form)
	s.Require().NoError(err)
	defer resp.Body.Close()
	// The client followed the redirect to the room page
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)

	match := roomCodePattern.FindSubmatch(body)
	s.Require().NotNil(match, "no room code on the room page")
	return string(match[1])
}

// DialRoom opens the websocket endpoint reusing the session cookie the
// form flow put in the jar.
func (s *BaseSuite) DialRoom() *websocket.Conn {
	base, err := url.Parse(s.Config.ChatAddr)
	s.Require().NoError(err)

	scheme := "ws"
	if base.Scheme == "https" {
		scheme = "wss"
	}
	endpoint := fmt.Sprintf("%s://%s/ws", scheme, base.Host)

	header := http.Header{}
	var cookies []string
	for _, c := range s.client.Jar.Cookies(base) {
		cookies = append(cookies, c.String())
	}
	header.Set("Cookie", strings.Join(cookies, "; "))

	conn, _, err := websocket.DefaultDialer.Dial(endpoint, header)
	s.Require().NoError(err)
	return conn
}
