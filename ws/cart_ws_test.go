package ws_test

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/contrabandkitchen/backend/catalog"
	"github.com/contrabandkitchen/backend/services"
	"github.com/contrabandkitchen/backend/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub(t *testing.T) (*httptest.Server, *services.CartService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cat, err := catalog.New([]catalog.Item{
		{Name: "Veg Maggi", Price: catalog.FlatPrice(49), IsVeg: true},
	})
	require.NoError(t, err)

	carts := services.NewCartService(cat)
	hub := ws.NewCartHub(carts)
	carts.SetNotifier(hub)
	go hub.Run()

	r := gin.New()
	r.GET("/ws/cart", func(c *gin.Context) {
		c.Set("sessionId", "s1")
		hub.HandleWebSocket(c)
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, carts
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/cart"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	conn.SetReadDeadline(time.Now().Add(3 * time.Second))
	return conn
}

func TestHubSendsInitialSnapshotThenUpdates(t *testing.T) {
	srv, carts := newTestHub(t)
	conn := dial(t, srv)

	var snap services.CartSnapshot
	require.NoError(t, conn.ReadJSON(&snap))
	assert.Zero(t, snap.TotalItems)

	require.NoError(t, carts.Add("s1", &services.AddToCartIn{Name: "Veg Maggi", Qty: 2}))
	require.NoError(t, conn.ReadJSON(&snap))
	assert.Equal(t, 2, snap.TotalItems)
	assert.Equal(t, int64(98), snap.TotalPrice)
}

func TestHubFansOutToAllTabsOfASession(t *testing.T) {
	srv, carts := newTestHub(t)
	first := dial(t, srv)
	second := dial(t, srv)

	var snap services.CartSnapshot
	require.NoError(t, first.ReadJSON(&snap))
	require.NoError(t, second.ReadJSON(&snap))

	require.NoError(t, carts.Add("s1", &services.AddToCartIn{Name: "Veg Maggi", Qty: 1}))
	require.NoError(t, first.ReadJSON(&snap))
	assert.Equal(t, 1, snap.TotalItems)
	require.NoError(t, second.ReadJSON(&snap))
	assert.Equal(t, 1, snap.TotalItems)
}

// Mutations must never hang on the hub, however slow or absent its consumer.
func TestCartChangedNeverBlocks(t *testing.T) {
	cat, err := catalog.New([]catalog.Item{
		{Name: "Veg Maggi", Price: catalog.FlatPrice(49), IsVeg: true},
	})
	require.NoError(t, err)

	// Run is deliberately not started: nothing drains the broadcast channel.
	hub := ws.NewCartHub(services.NewCartService(cat))

	done := make(chan struct{})
	go func() {
		for i := 0; i < 500; i++ {
			hub.CartChanged("s1", services.CartSnapshot{})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("CartChanged blocked without a broadcast consumer")
	}
}
