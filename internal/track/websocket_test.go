package track

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/gesture-snake/internal/config"
)

func newTrackerSource(t *testing.T, url string) Source {
	t.Helper()

	src, err := NewSource("tracker", Options{
		Tracker: config.TrackerConfig{URL: url},
		Logger:  log.New(io.Discard),
	})
	if err != nil {
		t.Fatalf("NewSource() failed: %v", err)
	}
	return src
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestTrackerCloseUnblocksSilentConnection(t *testing.T) {
	upgrader := websocket.Upgrader{}
	connected := make(chan struct{})
	dropped := make(chan struct{})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		close(connected)

		// Send nothing: the client read blocks until its side closes.
		conn.ReadMessage()
		conn.Close()
		close(dropped)
	}))
	defer srv.Close()

	src := newTrackerSource(t, wsURL(srv))

	select {
	case <-connected:
	case <-time.After(2 * time.Second):
		t.Fatal("Source never connected to the tracker")
	}

	if err := src.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	select {
	case <-dropped:
	case <-time.After(2 * time.Second):
		t.Fatal("Close() left the connection open on a silent tracker")
	}
}

func TestTrackerDeliversFrameAtMostOnce(t *testing.T) {
	upgrader := websocket.Upgrader{}
	frame := []byte(`{"position":{"x":120,"y":80},"confidence":0.9}`)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
			return
		}
		conn.ReadMessage() // Hold the connection until the client closes
		conn.Close()
	}))
	defer srv.Close()

	src := newTrackerSource(t, wsURL(srv))
	defer src.Close()

	var got Sample
	deadline := time.Now().Add(2 * time.Second)
	for {
		got = src.Sample()
		if got.Position != nil {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("Frame never arrived")
		}
		time.Sleep(10 * time.Millisecond)
	}

	if got.Position.X != 120 || got.Position.Y != 80 {
		t.Errorf("Position = %v, expected (120,80)", *got.Position)
	}
	if got.Confidence != 0.9 {
		t.Errorf("Confidence = %f, expected 0.9", got.Confidence)
	}

	// The same physical detection must not be handed out twice.
	if again := src.Sample(); again.Position != nil {
		t.Error("Second poll returned the already-consumed frame")
	}
}
