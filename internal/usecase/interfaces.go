package usecase

import (
	"context"

	"negobot/internal/domain/entity"
)

// CompletionService generates free-form negotiation text from an
// ordered list of role-tagged messages. The output is untrusted and is
// always normalized through the response classifier.
type CompletionService interface {
	Complete(ctx context.Context, messages []entity.ChatMessage) (string, error)
}
