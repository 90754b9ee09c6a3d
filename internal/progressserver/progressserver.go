// Package progressserver optionally streams coordinator.ProgressEvent
// values to a single websocket client, for watching a long solve in
// progress. Modeled on the teacher's single-page, single-client server:
// intentionally minimal, no multi-client fan-out.
package progressserver

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"clickgrid/internal/coordinator"
)

const (
	writeWait        = 1 * time.Second
	pingPeriod       = 5 * time.Second
	closeGracePeriod = 2 * time.Second
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Server publishes ProgressEvents from a single coordinated run to a single
// connected websocket client.
type Server struct {
	addr   string
	events <-chan coordinator.ProgressEvent
}

// New builds a Server that will stream events off the given channel once
// Serve is called. The coordinator never closes events; its owner does (the
// CLI closes it after its last level), and closing it ends the relay.
func New(addr string, events <-chan coordinator.ProgressEvent) *Server {
	return &Server{addr: addr, events: events}
}

// Serve blocks, running an HTTP server with a "/ws" progress-streaming
// endpoint and a "/" landing page, until ctx is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	router := mux.NewRouter()
	router.HandleFunc("/", s.serveIndex)
	router.HandleFunc("/ws", s.serveWebsocket)

	httpServer := &http.Server{Addr: s.addr, Handler: router}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), closeGracePeriod)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}

func (s *Server) serveIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	w.Write([]byte(`<!doctype html><html><body>
<pre id="log"></pre>
<script>
const ws = new WebSocket("ws://" + location.host + "/ws");
ws.onmessage = (ev) => {
  document.getElementById("log").textContent += ev.data + "\n";
};
</script>
</body></html>`))
}

// serveWebsocket upgrades the connection and relays every ProgressEvent as
// a JSON text frame until the events channel closes or the client goes
// away.
func (s *Server) serveWebsocket(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("progressserver: upgrade failed:", err)
		return
	}
	defer ws.Close()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				return
			}
			ws.SetWriteDeadline(time.Now().Add(writeWait))
			payload, err := json.Marshal(ev)
			if err != nil {
				continue
			}
			if err := ws.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
