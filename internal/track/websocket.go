package track

import (
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
)

func init() {
	RegisterSource("tracker", newWSSource)
}

// wsSource receives tracking frames from the external pose-detection
// service over a websocket. A background reader keeps only the most recent
// frame; Sample hands each frame out at most once, so a stalled feed reads
// as absent samples rather than stale movement.
type wsSource struct {
	url         string
	dialTimeout time.Duration
	reconnect   time.Duration
	logger      *log.Logger

	mu     sync.Mutex
	latest *Sample
	conn   *websocket.Conn

	done     chan struct{}
	stopOnce sync.Once
}

// newWSSource validates the endpoint and starts the reader.
func newWSSource(opts Options) (Source, error) {
	cfg := opts.Tracker
	cfg.Normalize()

	u, err := url.Parse(cfg.URL)
	if err != nil || (u.Scheme != "ws" && u.Scheme != "wss") {
		return nil, fmt.Errorf("track: invalid tracker url %q", cfg.URL)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	s := &wsSource{
		url:         cfg.URL,
		dialTimeout: time.Duration(cfg.DialTimeoutSecs) * time.Second,
		reconnect:   time.Duration(cfg.ReconnectSecs) * time.Second,
		logger:      logger,
		done:        make(chan struct{}),
	}

	go s.run()
	return s, nil
}

// run dials the tracker and pumps frames until Close, reconnecting with a
// fixed delay after any failure.
func (s *wsSource) run() {
	for {
		select {
		case <-s.done:
			return
		default:
		}

		conn, err := s.dial()
		if err != nil {
			s.logger.Warn("tracker connection failed", "url", s.url, "error", err)
			if !s.sleep(s.reconnect) {
				return
			}
			continue
		}

		if !s.adopt(conn) {
			return
		}

		s.logger.Info("tracker connected", "url", s.url)
		s.read(conn)
		s.release(conn)

		if !s.sleep(s.reconnect) {
			return
		}
	}
}

// adopt publishes the connection so Close can reach it. If Close already
// fired, the connection is discarded and the reader stops.
func (s *wsSource) adopt(conn *websocket.Conn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	select {
	case <-s.done:
		conn.Close()
		return false
	default:
	}
	s.conn = conn
	return true
}

// release closes and unpublishes the connection after the read loop exits.
func (s *wsSource) release(conn *websocket.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conn.Close()
	if s.conn == conn {
		s.conn = nil
	}
}

func (s *wsSource) dial() (*websocket.Conn, error) {
	dialer := websocket.Dialer{HandshakeTimeout: s.dialTimeout}
	conn, _, err := dialer.Dial(s.url, nil)
	return conn, err
}

// read pumps frames from one connection until it breaks or Close is called.
func (s *wsSource) read(conn *websocket.Conn) {
	for {
		select {
		case <-s.done:
			return
		default:
		}

		_, data, err := conn.ReadMessage()
		if err != nil {
			s.logger.Warn("tracker read failed", "error", err)
			return
		}

		sample, err := decodeSample(data)
		if err != nil {
			s.logger.Debug("dropping malformed tracker frame", "error", err)
			continue
		}

		s.mu.Lock()
		s.latest = &sample
		s.mu.Unlock()
	}
}

// sleep waits for d unless Close fires first. Returns false on Close.
func (s *wsSource) sleep(d time.Duration) bool {
	select {
	case <-s.done:
		return false
	case <-time.After(d):
		return true
	}
}

// Sample returns the newest frame since the previous poll, or an absent
// sample.
func (s *wsSource) Sample() Sample {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.latest == nil {
		return Sample{}
	}
	sample := *s.latest
	s.latest = nil
	return sample
}

// Close stops the reader and any pending reconnect. Closing the live
// connection unblocks a read that is waiting on a silent tracker.
func (s *wsSource) Close() error {
	s.stopOnce.Do(func() {
		close(s.done)

		s.mu.Lock()
		if s.conn != nil {
			s.conn.Close()
			s.conn = nil
		}
		s.mu.Unlock()
	})
	return nil
}
