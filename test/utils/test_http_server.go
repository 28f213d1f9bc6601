package testutils

import (
	"fmt"
	"net"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/phayes/freeport"
)

// TestHttpServer is a real HTTP server on a free local port. It counts the
// requests it receives per path.
type TestHttpServer struct {
	*http.ServeMux

	mu   sync.Mutex
	hits map[string]int
}

func NewTestHttpServer() *TestHttpServer {
	return &TestHttpServer{
		ServeMux: http.NewServeMux(),
		hits:     map[string]int{},
	}
}

// ServeImage answers GET requests for urlPath with data.
func (s *TestHttpServer) ServeImage(urlPath, contentType string, data []byte) {
	s.HandleFunc(urlPath, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		w.Header().Set("Content-Type", contentType)
		w.Write(data)
	})
}

// Hits returns how many requests reached urlPath.
func (s *TestHttpServer) Hits(urlPath string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[urlPath]
}

func (s *TestHttpServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.hits[r.URL.Path]++
	s.mu.Unlock()

	s.ServeMux.ServeHTTP(w, r)
}

// Start serves until the test ends and returns the port.
func (s *TestHttpServer) Start(t *testing.T) int {
	t.Helper()

	port, err := freeport.GetFreePort()
	if err != nil {
		t.Fatalf("cannot get free port for test server: %v", err)
	}

	addr := fmt.Sprintf("127.0.0.1:%d", port)
	srv := &http.Server{Addr: addr, Handler: s}

	t.Cleanup(func() {
		srv.Close()
	})

	go func() {
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			t.Errorf("test server stopped: %v", err)
		}
	}()

	waitForServer(t, addr)
	return port
}

// URL starts the server and returns its base URL.
func (s *TestHttpServer) URL(t *testing.T) string {
	t.Helper()
	return fmt.Sprintf("http://127.0.0.1:%d", s.Start(t))
}

func waitForServer(t *testing.T, addr string) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		conn, err := net.DialTimeout("tcp", addr, 200*time.Millisecond)
		if err == nil {
			conn.Close()
			return
		}
		time.Sleep(25 * time.Millisecond)
	}

	t.Fatalf("test server on %s not up in time", addr)
}
