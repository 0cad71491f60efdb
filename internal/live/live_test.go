package live

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/go-cmp/cmp"
	"github.com/gorilla/websocket"
	"go.uber.org/goleak"

	"github.com/ziadkadry99/portfolio/internal/config"
	"github.com/ziadkadry99/portfolio/internal/content"
	"github.com/ziadkadry99/portfolio/internal/page"
	"github.com/ziadkadry99/portfolio/internal/preview"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// jsonRenderer renders a view as JSON so tests can inspect it.
type jsonRenderer struct{}

func (jsonRenderer) Fragment(w io.Writer, _ string, data any) error {
	return json.NewEncoder(w).Encode(data)
}

type fakeSearch struct{}

func (fakeSearch) Search(_ context.Context, term string) (preview.Track, error) {
	return preview.Track{Name: term, PreviewURL: "https://p/" + strings.ReplaceAll(term, " ", "-")}, nil
}

// blockingSearch waits for cancellation and reports it.
type blockingSearch struct {
	started  chan struct{}
	canceled chan struct{}
}

func (b *blockingSearch) Search(ctx context.Context, _ string) (preview.Track, error) {
	close(b.started)
	<-ctx.Done()
	close(b.canceled)
	return preview.Track{}, ctx.Err()
}

func newTestServer(t *testing.T, search preview.Searcher) (*Handler, string) {
	t.Helper()
	store, err := content.Bundled()
	if err != nil {
		t.Fatalf("Bundled() error: %v", err)
	}
	h := NewHandler(Options{
		Store:         store,
		Settings:      page.SettingsFromConfig(config.DefaultConfig()),
		Search:        search,
		Renderer:      jsonRenderer{},
		FrameInterval: 5 * time.Millisecond,
	})
	r := chi.NewRouter()
	r.Get("/ws/{page}", h.ServeHTTP)
	srv := httptest.NewServer(r)
	t.Cleanup(func() {
		h.Close()
		srv.Close()
	})
	return h, "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/"
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial(%s) error: %v", url, err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) Message {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(3 * time.Second))
	var m Message
	if err := conn.ReadJSON(&m); err != nil {
		t.Fatalf("ReadJSON() error: %v", err)
	}
	return m
}

// readUntil skips messages until match returns true.
func readUntil(t *testing.T, conn *websocket.Conn, match func(Message) bool) Message {
	t.Helper()
	for i := 0; i < 200; i++ {
		if m := readMessage(t, conn); match(m) {
			return m
		}
	}
	t.Fatal("expected message never arrived")
	return Message{}
}

func isType(typ string) func(Message) bool {
	return func(m Message) bool { return m.Type == typ }
}

func send(t *testing.T, conn *websocket.Conn, ev page.Event) {
	t.Helper()
	if err := conn.WriteJSON(ev); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}
}

func TestHandler_MountRendersPage(t *testing.T) {
	_, base := newTestServer(t, fakeSearch{})
	conn := dial(t, base+page.Home)

	m := readMessage(t, conn)
	if m.Type != "render" || m.Page != page.Home {
		t.Fatalf("first message = %+v, want home render", m)
	}
	if !strings.Contains(m.HTML, "creator-box") {
		t.Errorf("home render missing elements: %s", m.HTML)
	}
}

func TestHandler_UnknownPage(t *testing.T) {
	_, base := newTestServer(t, fakeSearch{})
	_, resp, err := websocket.DefaultDialer.Dial(base+"nope", nil)
	if err == nil {
		t.Fatal("expected dial error for unknown page")
	}
	if resp == nil || resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 response, got %v", resp)
	}
}

func TestHandler_BadMessageKeepsSession(t *testing.T) {
	_, base := newTestServer(t, fakeSearch{})
	conn := dial(t, base+page.Home)
	readMessage(t, conn)

	if err := conn.WriteMessage(websocket.TextMessage, []byte("not json")); err != nil {
		t.Fatalf("WriteMessage() error: %v", err)
	}
	m := readMessage(t, conn)
	if diff := cmp.Diff(Message{Type: "error", Message: "invalid message format"}, m); diff != "" {
		t.Errorf("error message mismatch (-want +got):\n%s", diff)
	}

	send(t, conn, page.Event{Type: "bogus"})
	m = readMessage(t, conn)
	if m.Type != "error" || !strings.Contains(m.Message, "unknown event") {
		t.Errorf("expected unknown event error, got %+v", m)
	}

	send(t, conn, page.Event{Type: "hover", Target: "creator-box"})
	m = readMessage(t, conn)
	if m.Type != "render" {
		t.Fatalf("expected render after hover, got %+v", m)
	}
	if !strings.Contains(m.HTML, `"Highlighted":true`) {
		t.Errorf("hover did not highlight: %s", m.HTML)
	}
}

func TestHandler_AnimatedPageSendsFrames(t *testing.T) {
	_, base := newTestServer(t, fakeSearch{})
	conn := dial(t, base+page.Producer)

	if m := readMessage(t, conn); m.Type != "render" {
		t.Fatalf("first message = %+v, want render", m)
	}
	first := readUntil(t, conn, isType("frame"))
	next := readUntil(t, conn, isType("frame"))
	if cmp.Equal(first.Frame, next.Frame) {
		t.Error("orbit did not move between frames")
	}
}

func TestHandler_AudioCommands(t *testing.T) {
	_, base := newTestServer(t, fakeSearch{})
	conn := dial(t, base+page.Creator)
	readMessage(t, conn)

	send(t, conn, page.Event{Type: "open", Target: "e2502"})
	readUntil(t, conn, isType("render"))
	send(t, conn, page.Event{Type: "play"})

	var got []Message
	for len(got) < 2 {
		got = append(got, readUntil(t, conn, isType("audio")))
	}
	want := []Message{
		{Type: "audio", Command: "load", Src: "https://p/Viva-La-Vida-Coldplay"},
		{Type: "audio", Command: "play"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("audio commands mismatch (-want +got):\n%s", diff)
	}

	send(t, conn, page.Event{Type: "toggle"})
	m := readUntil(t, conn, isType("audio"))
	if m.Command != "pause" {
		t.Errorf("toggle sent %q, want pause", m.Command)
	}
}

func TestHandler_DisconnectCancelsLookup(t *testing.T) {
	search := &blockingSearch{started: make(chan struct{}), canceled: make(chan struct{})}
	_, base := newTestServer(t, search)
	conn := dial(t, base+page.Creator)
	readMessage(t, conn)

	send(t, conn, page.Event{Type: "open", Target: "e2501"})
	send(t, conn, page.Event{Type: "play"})
	select {
	case <-search.started:
	case <-time.After(3 * time.Second):
		t.Fatal("lookup never started")
	}

	conn.Close()
	select {
	case <-search.canceled:
	case <-time.After(3 * time.Second):
		t.Fatal("lookup not canceled after disconnect")
	}
}

func TestHandler_CloseEndsSessions(t *testing.T) {
	h, base := newTestServer(t, fakeSearch{})
	conn := dial(t, base+page.Home)
	readMessage(t, conn)

	h.Close()

	m := readMessage(t, conn)
	if m.Message != "server shutting down" {
		t.Errorf("expected shutdown notice, got %+v", m)
	}
	conn.SetReadDeadline(time.Now().Add(3 * time.Second))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Error("expected connection to close after shutdown")
	}
}
