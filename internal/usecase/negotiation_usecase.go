package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"negobot/internal/domain/entity"
	"negobot/internal/domain/repository"
	"negobot/internal/domain/service"
	"negobot/internal/infrastructure/sessionlock"
	"negobot/pkg/errors"
	"negobot/pkg/logger"
)

const (
	messagesKeyPrefix    = "messages_"
	lastProductKeyPrefix = "last_product_"

	// How much history the completion call sees.
	historyWindow = 6
)

type NegotiationUseCase struct {
	itemRepo       repository.ItemRepository
	sessionStore   repository.SessionStore
	completion     CompletionService
	locks          *sessionlock.Registry
	stats          *StatsAggregator
	catalogTimeout time.Duration
}

func NewNegotiationUseCase(
	itemRepo repository.ItemRepository,
	sessionStore repository.SessionStore,
	completion CompletionService,
	locks *sessionlock.Registry,
	stats *StatsAggregator,
	catalogTimeout time.Duration,
) *NegotiationUseCase {
	return &NegotiationUseCase{
		itemRepo:       itemRepo,
		sessionStore:   sessionStore,
		completion:     completion,
		locks:          locks,
		stats:          stats,
		catalogTimeout: catalogTimeout,
	}
}

// HandleMessage runs one negotiation turn for a free-text buyer
// message. Turns for the same buyer are serialized; external failures
// degrade this turn to a deterministic fallback instead of failing the
// session.
func (uc *NegotiationUseCase) HandleMessage(ctx context.Context, buyerID, text string) (*entity.NegotiationResult, error) {
	if buyerID == "" {
		return nil, errors.BadRequest("buyer_id is required", nil)
	}

	release := uc.locks.Acquire(buyerID)
	defer release()

	// Every inbound message counts, including turns that end early.
	uc.stats.RecordInquiry()

	session := uc.loadSession(ctx, buyerID)
	lang := service.DetectLanguage(text)

	uc.resolveProduct(session, text)

	if session.ProductID == "" {
		result := needsInfoResult(service.OnboardingMessage(lang),
			fmt.Sprintf("[ACTION REQUIRED] Buyer %s has no product context yet.", buyerID))
		uc.recordTurn(ctx, session, text, result)
		return result, nil
	}

	// Strip the id even when it only repeats the current product, so
	// its digits never reach the offer extractor.
	buyerMessage := service.StripProductID(text, session.ProductID)

	item, err := uc.fetchItem(ctx, session.ProductID)
	if err != nil {
		if errors.IsNotFound(err) {
			// Forget the bad reference so a corrected id starts fresh.
			productID := session.ProductID
			session.Reset()
			result := needsInfoResult(service.NotFoundMessage(productID, lang),
				fmt.Sprintf("[ACTION REQUIRED] Buyer %s referenced unknown product %s.", buyerID, productID))
			uc.recordTurn(ctx, session, text, result)
			return result, nil
		}

		if errors.IsUnavailable(err) {
			logger.LogTurnError(buyerID, "catalog", err)
		} else {
			logger.Error("Catalog lookup failed for %s: %v", session.ProductID, err)
		}
		result := apologyResult(lang, err)
		uc.recordTurn(ctx, session, text, result)
		return result, nil
	}

	if !item.IsActive {
		result := needsInfoResult(service.InactiveMessage(item, lang),
			fmt.Sprintf("[INFO] Buyer %s inquired about inactive item %s.", buyerID, item.ID))
		uc.recordTurn(ctx, session, text, result)
		return result, nil
	}

	if buyerMessage == "" {
		result := &entity.NegotiationResult{
			DealStatus:      entity.StatusOngoing,
			MessageToBuyer:  service.ItemFoundMessage(item, lang),
			MessageToSeller: fmt.Sprintf("[INFO] Buyer %s opened a negotiation for %s.", buyerID, item.ID),
			Timestamp:       time.Now().Unix(),
		}
		uc.recordTurn(ctx, session, text, result)
		return result, nil
	}

	offer, hasOffer := service.ExtractOffer(buyerMessage)
	if hasOffer {
		uc.stats.RecordOffer()
	}

	var result *entity.NegotiationResult
	if hasOffer {
		result = uc.decide(item, &offer, buyerID, lang)
	} else {
		result = uc.generate(ctx, item, session, buyerMessage, buyerID, lang)
	}

	if result.DealStatus == entity.StatusDealMade {
		uc.stats.RecordDeal(result.CounterOffer)
	}

	session.AwaitingSellerResponse = result.DealStatus == entity.StatusNeedsInfo
	if result.DealStatus == entity.StatusNeedsInfo {
		session.PendingQuestion = buyerMessage
	} else {
		session.PendingQuestion = ""
	}

	uc.recordTurn(ctx, session, text, result)
	return result, nil
}

// HandleOffer runs one turn for a formal numeric offer.
func (uc *NegotiationUseCase) HandleOffer(ctx context.Context, buyerID string, amount float64, message string) (*entity.NegotiationResult, error) {
	if buyerID == "" {
		return nil, errors.BadRequest("buyer_id is required", nil)
	}
	if amount <= 0 {
		return nil, errors.BadRequest("offer_amount must be positive", nil)
	}

	release := uc.locks.Acquire(buyerID)
	defer release()

	// A formal offer is both an inquiry and an offer, whatever the
	// turn's outcome.
	uc.stats.RecordInquiry()
	uc.stats.RecordOffer()

	session := uc.loadSession(ctx, buyerID)
	lang := service.DetectLanguage(message)

	uc.resolveProduct(session, message)
	if session.ProductID == "" {
		result := needsInfoResult(service.OnboardingMessage(lang),
			fmt.Sprintf("[ACTION REQUIRED] Buyer %s sent a formal offer without product context.", buyerID))
		uc.recordTurn(ctx, session, message, result)
		return result, nil
	}

	item, err := uc.fetchItem(ctx, session.ProductID)
	if err != nil {
		logger.LogTurnError(buyerID, "catalog", err)
		result := apologyResult(lang, err)
		uc.recordTurn(ctx, session, message, result)
		return result, nil
	}

	offer := entity.Offer{Amount: amount, Convention: entity.ConventionUSD, Source: message}
	result := uc.decide(item, &offer, buyerID, lang)

	if result.DealStatus == entity.StatusDealMade {
		uc.stats.RecordDeal(result.CounterOffer)
	}

	turnText := fmt.Sprintf("%s - %s", service.FormatCurrency(amount, lang), message)
	uc.recordTurn(ctx, session, turnText, result)
	return result, nil
}

// decide is the rule-based path: the price negotiator produces the
// structured outcome and the templates render the messages.
func (uc *NegotiationUseCase) decide(item *entity.Item, offer *entity.Offer, buyerID string, lang service.Language) *entity.NegotiationResult {
	result := service.Negotiate(item.Band(), offer)
	result.MessageToBuyer, result.MessageToSeller = service.ComposeReply(result, item, offer, buyerID, lang)
	return &result
}

// generate is the free-form path: the completion service writes the
// reply and the classifier turns it back into structured fields. A
// completion failure degrades to the fixed apology.
func (uc *NegotiationUseCase) generate(ctx context.Context, item *entity.Item, session *entity.ConversationSession, buyerMessage, buyerID string, lang service.Language) *entity.NegotiationResult {
	messages := service.BuildCompletionMessages(item, lang, session.Recent(historyWindow), buyerMessage)

	freeText, err := uc.completion.Complete(ctx, messages)
	if err != nil {
		logger.LogTurnError(buyerID, "completion", err)
		return apologyResult(lang, err)
	}

	result := service.Classify(freeText)
	return &result
}

func (uc *NegotiationUseCase) fetchItem(ctx context.Context, id string) (*entity.Item, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.catalogTimeout)
	defer cancel()
	return uc.itemRepo.GetByID(ctx, id)
}

// resolveProduct applies the product-switch rules to the session.
// A candidate differing from the stored id wipes the session before the
// new id is stored; no candidate leaves the context unchanged.
func (uc *NegotiationUseCase) resolveProduct(session *entity.ConversationSession, text string) {
	candidate, found := service.ExtractProductID(text)
	if !found || candidate == session.ProductID {
		return
	}

	session.Reset()
	session.ProductID = candidate
}

// loadSession reads the session record; a miss or a transient store
// failure both fall back to a fresh record so the turn can proceed.
func (uc *NegotiationUseCase) loadSession(ctx context.Context, buyerID string) *entity.ConversationSession {
	raw, err := uc.sessionStore.Get(ctx, messagesKeyPrefix+buyerID)
	if err != nil {
		if !errors.IsNotFound(err) {
			logger.LogTurnError(buyerID, "session-load", err)
		}
		return entity.NewConversationSession(buyerID)
	}

	var session entity.ConversationSession
	if err := json.Unmarshal(raw, &session); err != nil {
		logger.LogTurnError(buyerID, "session-decode", err)
		return entity.NewConversationSession(buyerID)
	}
	return &session
}

// recordTurn appends the buyer message and the reply to the session and
// persists it. Writes are best effort: a store failure is logged, never
// surfaced, and the full record is replaced in one write so a reset
// cannot be half-applied.
func (uc *NegotiationUseCase) recordTurn(ctx context.Context, session *entity.ConversationSession, buyerText string, result *entity.NegotiationResult) {
	now := time.Now()
	if buyerText != "" {
		session.Append(entity.ChatMessage{
			ID:        uuid.NewString(),
			Role:      entity.RoleBuyer,
			Content:   buyerText,
			Timestamp: now,
		})
	}
	if result.MessageToBuyer != "" {
		session.Append(entity.ChatMessage{
			ID:        uuid.NewString(),
			Role:      entity.RoleSeller,
			Content:   result.MessageToBuyer,
			Timestamp: now,
		})
	}

	raw, err := json.Marshal(session)
	if err != nil {
		logger.LogTurnError(session.BuyerID, "session-encode", err)
		return
	}
	if err := uc.sessionStore.Set(ctx, messagesKeyPrefix+session.BuyerID, raw); err != nil {
		logger.LogTurnError(session.BuyerID, "session-save", err)
	}
	if err := uc.sessionStore.Set(ctx, lastProductKeyPrefix+session.BuyerID, []byte(session.ProductID)); err != nil {
		logger.LogTurnError(session.BuyerID, "session-save", err)
	}
}

func needsInfoResult(toBuyer, toSeller string) *entity.NegotiationResult {
	return &entity.NegotiationResult{
		DealStatus:      entity.StatusNeedsInfo,
		MessageToBuyer:  toBuyer,
		MessageToSeller: toSeller,
		Timestamp:       time.Now().Unix(),
	}
}

func apologyResult(lang service.Language, err error) *entity.NegotiationResult {
	return &entity.NegotiationResult{
		DealStatus:      entity.StatusOngoing,
		MessageToBuyer:  service.ApologyMessage(lang),
		MessageToSeller: fmt.Sprintf("[ERROR] External service failed: %v", err),
		Timestamp:       time.Now().Unix(),
	}
}
