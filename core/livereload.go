package core

import (
	"html/template"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const LiveReloadPath = "/__reload"

const liveReloadScript = `<script>
(function () {
  var ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "` + LiveReloadPath + `");
  ws.onmessage = function (e) { if (e.data === "reload") { location.reload(); } };
})();
</script>`

const reloadWriteWait = time.Second

type LiveReloaderInterface interface {
	BroadcastReload()
	Handler(http.ResponseWriter, *http.Request)
}

// LiveReloader keeps the open /__reload sockets of dev pages. The upgrader
// keeps gorilla's same-origin check, so only pages served by this host can
// subscribe.
type LiveReloader struct {
	mu       sync.Mutex
	conns    map[*websocket.Conn]struct{}
	upgrader websocket.Upgrader
}

var NewLiveReloader = func() LiveReloaderInterface {
	return &LiveReloader{conns: make(map[*websocket.Conn]struct{})}
}

func (lr *LiveReloader) Handler(w http.ResponseWriter, r *http.Request) {
	conn, err := lr.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	lr.add(conn)
	go lr.drain(conn)
}

// drain discards client frames until the socket closes, then forgets it.
func (lr *LiveReloader) drain(conn *websocket.Conn) {
	defer lr.remove(conn)
	for {
		if _, _, err := conn.NextReader(); err != nil {
			return
		}
	}
}

func (lr *LiveReloader) add(conn *websocket.Conn) {
	lr.mu.Lock()
	lr.conns[conn] = struct{}{}
	lr.mu.Unlock()
}

func (lr *LiveReloader) remove(conn *websocket.Conn) {
	lr.mu.Lock()
	delete(lr.conns, conn)
	lr.mu.Unlock()
	conn.Close()
}

func (lr *LiveReloader) Clients() int {
	lr.mu.Lock()
	defer lr.mu.Unlock()
	return len(lr.conns)
}

// BroadcastReload tells every subscribed page to reload. Sockets that cannot
// take the message within reloadWriteWait are dropped.
func (lr *LiveReloader) BroadcastReload() {
	lr.mu.Lock()
	defer lr.mu.Unlock()

	deadline := time.Now().Add(reloadWriteWait)
	for conn := range lr.conns {
		conn.SetWriteDeadline(deadline)
		if err := conn.WriteMessage(websocket.TextMessage, []byte("reload")); err != nil {
			delete(lr.conns, conn)
			conn.Close()
		}
	}
}

// LiveReloadScript is injected into pages in dev mode only.
func LiveReloadScript(env string) template.HTML {
	if env != "dev" {
		return ""
	}
	return template.HTML(liveReloadScript)
}
