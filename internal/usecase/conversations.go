package usecase

import (
	"context"
	"encoding/json"
	"strings"

	"negobot/internal/domain/entity"
	"negobot/pkg/errors"
	"negobot/pkg/logger"
)

type ConversationSummary struct {
	BuyerID       string `json:"buyer_id"`
	ProductID     string `json:"product_id,omitempty"`
	TotalMessages int    `json:"total_messages"`
	LastMessage   string `json:"last_message,omitempty"`
	LastActivity  string `json:"last_activity,omitempty"`
}

// Conversations returns a summary per stored session.
func (uc *NegotiationUseCase) Conversations(ctx context.Context) ([]ConversationSummary, error) {
	keys, err := uc.sessionStore.Keys(ctx, messagesKeyPrefix)
	if err != nil {
		return nil, err
	}

	summaries := make([]ConversationSummary, 0, len(keys))
	for _, key := range keys {
		buyerID := strings.TrimPrefix(key, messagesKeyPrefix)
		session := uc.loadSession(ctx, buyerID)

		summary := ConversationSummary{
			BuyerID:       buyerID,
			ProductID:     session.ProductID,
			TotalMessages: len(session.Messages),
		}
		if len(session.Messages) > 0 {
			last := session.Messages[len(session.Messages)-1]
			summary.LastMessage = last.Content
			summary.LastActivity = last.Timestamp.Format("15:04")
		}
		summaries = append(summaries, summary)
	}

	return summaries, nil
}

// Conversation returns one buyer's history page, most recent last.
func (uc *NegotiationUseCase) Conversation(ctx context.Context, buyerID string, limit, offset int) ([]entity.ChatMessage, int64, error) {
	raw, err := uc.sessionStore.Get(ctx, messagesKeyPrefix+buyerID)
	if err != nil {
		if errors.IsNotFound(err) {
			return []entity.ChatMessage{}, 0, nil
		}
		return nil, 0, err
	}

	var session entity.ConversationSession
	if err := json.Unmarshal(raw, &session); err != nil {
		logger.LogTurnError(buyerID, "session-decode", err)
		return []entity.ChatMessage{}, 0, nil
	}

	total := int64(len(session.Messages))
	if offset >= len(session.Messages) {
		return []entity.ChatMessage{}, total, nil
	}

	end := offset + limit
	if limit <= 0 || end > len(session.Messages) {
		end = len(session.Messages)
	}

	return session.Messages[offset:end], total, nil
}

// ActiveConversations counts stored sessions.
func (uc *NegotiationUseCase) ActiveConversations(ctx context.Context) int {
	keys, err := uc.sessionStore.Keys(ctx, messagesKeyPrefix)
	if err != nil {
		return 0
	}
	return len(keys)
}
