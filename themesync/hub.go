// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package themesync pushes the theme of a [theme.Attribute] to web pages
// over WebSocket, so that pages served by the orbhero command follow the
// theme saved on the machine serving them.
package themesync

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"cogentcore.org/core/base/errors"
	"github.com/digitora/orbhero/theme"
	"github.com/gorilla/websocket"
)

// Hub is an http handler upgrading requests to WebSocket connections
// that receive the current theme as a text message on connect and
// after every mutation of the attribute.
type Hub struct {
	Attr *theme.Attribute

	// WriteTimeout bounds each write to a client; a client that does
	// not take a message in time is dropped.
	WriteTimeout time.Duration

	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
	cancel  func()
}

// NewHub returns a new hub following the given attribute.
// Call [Hub.Close] to stop following it.
func NewHub(attr *theme.Attribute) *Hub {
	hb := &Hub{Attr: attr, WriteTimeout: 5 * time.Second, clients: map[*websocket.Conn]struct{}{}}
	hb.cancel = attr.Observe(hb.Broadcast)
	return hb
}

func (hb *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := hb.upgrader.Upgrade(w, r, nil)
	if errors.Log(err) != nil {
		return
	}
	hb.mu.Lock()
	hb.clients[conn] = struct{}{}
	err = hb.write(conn, []byte(hb.Attr.Get().String()))
	hb.mu.Unlock()
	if err != nil {
		hb.drop(conn)
		return
	}
	slog.Debug("theme client connected", "remote", r.RemoteAddr)

	// the page never sends anything; reading detects the close
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			hb.drop(conn)
			return
		}
	}
}

// Broadcast sends the given theme to all connected clients,
// dropping those that can not be written to within [Hub.WriteTimeout].
func (hb *Hub) Broadcast(th theme.Themes) {
	hb.mu.Lock()
	defer hb.mu.Unlock()
	msg := []byte(th.String())
	for conn := range hb.clients {
		if err := hb.write(conn, msg); err != nil {
			slog.Debug("dropping theme client", "err", err)
			delete(hb.clients, conn)
			conn.Close()
		}
	}
}

// NumClients returns the number of connected clients.
func (hb *Hub) NumClients() int {
	hb.mu.Lock()
	defer hb.mu.Unlock()
	return len(hb.clients)
}

// Close stops following the attribute and closes all connections.
func (hb *Hub) Close() {
	hb.cancel()
	hb.mu.Lock()
	defer hb.mu.Unlock()
	for conn := range hb.clients {
		conn.Close()
		delete(hb.clients, conn)
	}
}

func (hb *Hub) write(conn *websocket.Conn, msg []byte) error {
	if err := conn.SetWriteDeadline(time.Now().Add(hb.WriteTimeout)); err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, msg)
}

func (hb *Hub) drop(conn *websocket.Conn) {
	hb.mu.Lock()
	defer hb.mu.Unlock()
	delete(hb.clients, conn)
	conn.Close()
}
