// Package feed pushes analysis results to a websocket client as they are produced.
package feed

import (
	"sync"
	"time"
	"unicode/utf8"

	"github.com/gorilla/websocket"
)

// Watcher owns one websocket connection. Producers call Send for each message
// and Finish once; WriteEvents drains the queue to the peer.
type Watcher struct {
	Conn    *websocket.Conn
	receive chan []byte
	done    chan struct{}
	reason  string
	once    sync.Once
}

func NewWatcher(conn *websocket.Conn) *Watcher {
	return &Watcher{
		Conn:    conn,
		receive: make(chan []byte, 16),
		done:    make(chan struct{}),
	}
}

// Send queues msg for the peer. It fails once the peer has gone away.
func (w *Watcher) Send(msg []byte) error {
	select {
	case w.receive <- msg:
		return nil
	case <-w.done:
		return ErrWatcherClosed
	}
}

// Finish signals that no more messages follow; reason is sent in the close frame.
// Reasons longer than a control frame allows are cut short.
func (w *Watcher) Finish(reason string) {
	if len(reason) > maxCloseReason {
		n := maxCloseReason
		for n > 0 && !utf8.RuneStart(reason[n]) {
			n--
		}
		reason = reason[:n]
	}
	w.reason = reason
	close(w.receive)
}

// Done is closed when the peer disconnects or the write loop exits.
func (w *Watcher) Done() <-chan struct{} {
	return w.done
}

func (w *Watcher) stop() {
	w.once.Do(func() { close(w.done) })
}

// WriteEvents writes queued messages until Finish is called or the peer goes away.
func (w *Watcher) WriteEvents() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		w.stop()
		_ = w.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-w.receive:
			_ = w.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				closeMessage := websocket.FormatCloseMessage(websocket.CloseNormalClosure, w.reason)
				_ = w.Conn.WriteMessage(websocket.CloseMessage, closeMessage)
				return
			}

			writer, err := w.Conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			_, _ = writer.Write(message)

			if err := writer.Close(); err != nil {
				return
			}
		case <-ticker.C:
			_ = w.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := w.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-w.done:
			return
		}
	}
}

// ReadEvents discards anything the client sends and keeps the read deadline
// fresh on pongs. It returns when the peer closes the connection.
func (w *Watcher) ReadEvents() {
	defer w.stop()

	w.Conn.SetReadLimit(maxMessageSize)
	_ = w.Conn.SetReadDeadline(time.Now().Add(pongWait))
	w.Conn.SetPongHandler(func(string) error {
		_ = w.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := w.Conn.ReadMessage(); err != nil {
			return
		}
	}
}
