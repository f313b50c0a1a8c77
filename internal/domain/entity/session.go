package entity

import "time"

const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
	RoleSystem = "system"
)

// Session history is capped; on overflow only the most recent entries
// survive. The gap between the two keeps trimming from happening on
// every single turn.
const (
	MaxHistoryEntries  = 50
	TrimHistoryEntries = 40
)

type ChatMessage struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// ConversationSession is the per-buyer negotiation record. It is
// read-modify-write state: callers must hold the session lock for the
// buyer while mutating it.
type ConversationSession struct {
	BuyerID                string        `json:"buyer_id"`
	ProductID              string        `json:"product_id,omitempty"`
	Messages               []ChatMessage `json:"messages"`
	AwaitingSellerResponse bool          `json:"awaiting_seller_response"`
	PendingQuestion        string        `json:"pending_question,omitempty"`
	CreatedAt              time.Time     `json:"created_at"`
	UpdatedAt              time.Time     `json:"updated_at"`
}

func NewConversationSession(buyerID string) *ConversationSession {
	now := time.Now()
	return &ConversationSession{
		BuyerID:   buyerID,
		Messages:  []ChatMessage{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Append adds a message, trimming the history to the most recent
// TrimHistoryEntries once it exceeds MaxHistoryEntries.
func (s *ConversationSession) Append(msg ChatMessage) {
	s.Messages = append(s.Messages, msg)
	if len(s.Messages) > MaxHistoryEntries {
		s.Messages = append([]ChatMessage{}, s.Messages[len(s.Messages)-TrimHistoryEntries:]...)
	}
	s.UpdatedAt = time.Now()
}

// Recent returns up to n most recent messages, oldest first.
func (s *ConversationSession) Recent(n int) []ChatMessage {
	if n <= 0 || len(s.Messages) <= n {
		return s.Messages
	}
	return s.Messages[len(s.Messages)-n:]
}

// Reset wipes history and flags for a product switch. The product id is
// set by the caller after the wipe.
func (s *ConversationSession) Reset() {
	s.ProductID = ""
	s.Messages = []ChatMessage{}
	s.AwaitingSellerResponse = false
	s.PendingQuestion = ""
	s.UpdatedAt = time.Now()
}
