package entity

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionAppendTrimsHistory(t *testing.T) {
	session := NewConversationSession("buyer_1")

	for i := 0; i < MaxHistoryEntries+1; i++ {
		session.Append(ChatMessage{Role: RoleBuyer, Content: fmt.Sprintf("msg %d", i)})
	}

	assert.Len(t, session.Messages, TrimHistoryEntries)
	// Only the most recent entries survive.
	assert.Equal(t, "msg 50", session.Messages[len(session.Messages)-1].Content)
	assert.Equal(t, "msg 11", session.Messages[0].Content)
}

func TestSessionRecent(t *testing.T) {
	session := NewConversationSession("buyer_1")
	for i := 0; i < 10; i++ {
		session.Append(ChatMessage{Content: fmt.Sprintf("msg %d", i)})
	}

	recent := session.Recent(3)

	assert.Len(t, recent, 3)
	assert.Equal(t, "msg 7", recent[0].Content)
	assert.Equal(t, "msg 9", recent[2].Content)
}

func TestSessionReset(t *testing.T) {
	session := NewConversationSession("buyer_1")
	session.ProductID = "MTR_001"
	session.AwaitingSellerResponse = true
	session.PendingQuestion = "does it come with a helmet?"
	session.Append(ChatMessage{Content: "hello"})

	session.Reset()

	assert.Empty(t, session.ProductID)
	assert.Empty(t, session.Messages)
	assert.False(t, session.AwaitingSellerResponse)
	assert.Empty(t, session.PendingQuestion)
}
