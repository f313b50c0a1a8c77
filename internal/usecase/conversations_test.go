package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConversationsSummaries(t *testing.T) {
	f := newNegotiationFixture(t, &stubCompletion{reply: "Still available!"})
	ctx := context.Background()

	_, err := f.uc.HandleMessage(ctx, "buyer_1", "product id: ITEM_AAA111 still there?")
	assert.NoError(t, err)
	_, err = f.uc.HandleMessage(ctx, "buyer_2", "product id: ITEM_BBB222 masih ada barangnya?")
	assert.NoError(t, err)

	summaries, err := f.uc.Conversations(ctx)

	assert.NoError(t, err)
	assert.Len(t, summaries, 2)

	byBuyer := map[string]ConversationSummary{}
	for _, s := range summaries {
		byBuyer[s.BuyerID] = s
	}
	assert.Equal(t, "ITEM_AAA111", byBuyer["buyer_1"].ProductID)
	assert.Equal(t, 2, byBuyer["buyer_1"].TotalMessages)
	assert.Equal(t, "ITEM_BBB222", byBuyer["buyer_2"].ProductID)
}

func TestConversationPaging(t *testing.T) {
	f := newNegotiationFixture(t, &stubCompletion{reply: "Sure."})
	ctx := context.Background()

	_, err := f.uc.HandleMessage(ctx, "buyer_1", "product id: ITEM_AAA111 hello?")
	assert.NoError(t, err)
	_, err = f.uc.HandleMessage(ctx, "buyer_1", "any discount for cash?")
	assert.NoError(t, err)

	page, total, err := f.uc.Conversation(ctx, "buyer_1", 2, 0)

	assert.NoError(t, err)
	assert.Equal(t, int64(4), total)
	assert.Len(t, page, 2)

	rest, _, err := f.uc.Conversation(ctx, "buyer_1", 10, 2)
	assert.NoError(t, err)
	assert.Len(t, rest, 2)
}

func TestConversationUnknownBuyerIsEmpty(t *testing.T) {
	f := newNegotiationFixture(t, &stubCompletion{reply: "unused"})

	page, total, err := f.uc.Conversation(context.Background(), "nobody", 20, 0)

	assert.NoError(t, err)
	assert.Equal(t, int64(0), total)
	assert.Empty(t, page)
}

func TestActiveConversations(t *testing.T) {
	f := newNegotiationFixture(t, &stubCompletion{reply: "Yes."})
	ctx := context.Background()

	assert.Equal(t, 0, f.uc.ActiveConversations(ctx))

	_, err := f.uc.HandleMessage(ctx, "buyer_1", "product id: ITEM_AAA111 hi")
	assert.NoError(t, err)

	assert.Equal(t, 1, f.uc.ActiveConversations(ctx))
}
