package websocket

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManagerTracksConnections(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := NewManager()
	m.Start(ctx)

	client := &Client{BuyerID: "buyer_1", Send: make(chan []byte, 1)}

	m.Register <- client
	assert.Eventually(t, func() bool {
		return m.Connected() == 1
	}, time.Second, 10*time.Millisecond)

	m.Unregister <- client
	assert.Eventually(t, func() bool {
		return m.Connected() == 0
	}, time.Second, 10*time.Millisecond)

	// Unregister closes the send channel.
	_, open := <-client.Send
	assert.False(t, open)
}
