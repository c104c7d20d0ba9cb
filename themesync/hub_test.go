// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package themesync

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/digitora/orbhero/theme"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func read(t *testing.T, conn *websocket.Conn) string {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	typ, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, websocket.TextMessage, typ)
	return string(msg)
}

func TestHub(t *testing.T) {
	attr := theme.NewAttribute("light")
	hb := NewHub(attr)
	srv := httptest.NewServer(hb)
	defer srv.Close()
	defer hb.Close()

	a := dial(t, srv)
	assert.Equal(t, "light", read(t, a))
	b := dial(t, srv)
	assert.Equal(t, "light", read(t, b))
	assert.Eventually(t, func() bool { return hb.NumClients() == 2 }, 5*time.Second, 10*time.Millisecond)

	attr.Set("dark")
	assert.Equal(t, "dark", read(t, a))
	assert.Equal(t, "dark", read(t, b))

	// anything that is not light is dark
	attr.Set("sepia")
	assert.Equal(t, "dark", read(t, a))
}

func TestHubDropsClosed(t *testing.T) {
	attr := theme.NewAttribute("")
	hb := NewHub(attr)
	srv := httptest.NewServer(hb)
	defer srv.Close()

	conn := dial(t, srv)
	assert.Equal(t, "dark", read(t, conn))
	conn.Close()
	assert.Eventually(t, func() bool { return hb.NumClients() == 0 }, 5*time.Second, 10*time.Millisecond)

	hb.Close()
	assert.Zero(t, attr.NumObservers())
}

func TestHubWriteTimeout(t *testing.T) {
	attr := theme.NewAttribute("")
	hb := NewHub(attr)
	defer hb.Close()
	// every write is already past its deadline
	hb.WriteTimeout = -time.Second
	srv := httptest.NewServer(hb)
	defer srv.Close()

	conn := dial(t, srv)
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err)
	assert.Eventually(t, func() bool { return hb.NumClients() == 0 }, 5*time.Second, 10*time.Millisecond)

	done := make(chan struct{})
	go func() {
		attr.Set("light")
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Set blocked on a client")
	}
}
