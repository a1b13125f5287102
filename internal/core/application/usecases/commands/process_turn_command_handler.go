package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"maitred/internal/core/domain/model/catalog"
	"maitred/internal/core/domain/model/draft"
	"maitred/internal/core/domain/model/flow"
	"maitred/internal/core/domain/services"
	"maitred/internal/core/domain/services/intents"
	"maitred/internal/core/ports"
)

// ProcessTurnResult is the outcome of one conversation turn: the reply to
// speak, the flow position, and the updated session state for the client
// to carry into the next turn.
type ProcessTurnResult struct {
	Reply  string
	State  flow.State
	Signal flow.UISignal
	Intent flow.Intent

	// Utterance is the text the turn operated on; for voice turns this
	// is the transcription.
	Utterance string

	Items      []*draft.Item
	TotalPrice int

	SelectedAddress string
	Occasion        string
	DeliveryAt      *time.Time
	Memo            string
}

// ProcessTurnCommandHandler orchestrates one conversation turn: transcribe
// if needed, classify, dispatch to the intent handlers, and write the
// session cart through.
//
// A classifier failure or an unparseable classification never fails the
// turn; it degrades to the informational fallback so the user always gets
// an answer.
type ProcessTurnCommandHandler struct {
	classifier  ports.Classifier
	transcriber ports.Transcriber

	cache   *catalog.Cache
	table   *services.AliasTable
	phrases *services.Phrasebook

	registry *intents.Registry

	cartUoWFactory CartUoWFactory

	logger *slog.Logger
}

// NewProcessTurnCommandHandler creates the turn orchestrator.
func NewProcessTurnCommandHandler(
	classifier ports.Classifier,
	transcriber ports.Transcriber,
	cache *catalog.Cache,
	table *services.AliasTable,
	phrases *services.Phrasebook,
	registry *intents.Registry,
	cartUoWFactory CartUoWFactory,
	logger *slog.Logger,
) ProcessTurnCommandHandler {
	return ProcessTurnCommandHandler{
		classifier:     classifier,
		transcriber:    transcriber,
		cache:          cache,
		table:          table,
		phrases:        phrases,
		registry:       registry,
		cartUoWFactory: cartUoWFactory,
		logger:         logger,
	}
}

// Handle runs the turn and returns the assistant's response.
func (h *ProcessTurnCommandHandler) Handle(ctx context.Context, cmd ProcessTurnCommand) (ProcessTurnResult, error) {
	if err := cmd.Validate(); err != nil {
		return ProcessTurnResult{}, err
	}
	params := cmd.Params()

	utterance := params.Utterance
	if utterance == "" {
		text, err := h.transcriber.Transcribe(ctx, params.Audio, params.AudioFormat)
		if err != nil {
			return ProcessTurnResult{}, fmt.Errorf("transcribe audio: %w", err)
		}
		utterance = text
	}

	snapshot, err := h.cache.Snapshot()
	if err != nil {
		return ProcessTurnResult{}, err
	}
	matcher := services.NewMatcher(snapshot, h.table)

	parsed := h.classify(ctx, matcher, params, utterance)

	turnCtx := &intents.Context{
		Utterance:       utterance,
		Intent:          parsed.Intent,
		Entities:        parsed.Entities,
		ClassifierReply: parsed.Reply,
		State:           params.State,
		Items:           params.Items,
		SelectedAddress: params.SelectedAddress,
		KnownAddresses:  params.KnownAddresses,
		Occasion:        params.Occasion,
		DeliveryTime:    params.DeliveryAt,
		Memo:            params.Memo,
		Now:             params.Now,
		Matcher:         matcher,
		Phrases:         h.phrases,
	}

	result, err := h.registry.Dispatch(turnCtx)
	if err != nil {
		return ProcessTurnResult{}, err
	}

	if err := h.saveCart(ctx, params.SessionID, turnCtx, result.NextState); err != nil {
		return ProcessTurnResult{}, err
	}

	return ProcessTurnResult{
		Reply:           result.Reply,
		State:           result.NextState,
		Signal:          result.Signal,
		Intent:          parsed.Intent,
		Utterance:       utterance,
		Items:           turnCtx.Items,
		TotalPrice:      turnCtx.TotalPrice(),
		SelectedAddress: turnCtx.SelectedAddress,
		Occasion:        turnCtx.Occasion,
		DeliveryAt:      turnCtx.DeliveryTime,
		Memo:            turnCtx.Memo,
	}, nil
}

// classify runs the classifier and parses its output, degrading to the
// informational fallback on any failure.
func (h *ProcessTurnCommandHandler) classify(
	ctx context.Context,
	matcher *services.Matcher,
	params ProcessTurnParams,
	utterance string,
) ParsedTurn {
	instruction := BuildClassifierInstruction(matcher, params.State)

	raw, err := h.classifier.Classify(ctx, instruction, params.History, utterance)
	if err != nil {
		h.logger.WarnContext(ctx, "classifier unavailable, degrading to info fallback",
			slog.String("session_id", params.SessionID),
			slog.Any("error", err))
		return ParsedTurn{Intent: flow.IntentAskInfo}
	}

	parsed, ok := ParseClassifierOutput(raw)
	if !ok {
		h.logger.WarnContext(ctx, "classifier output not parseable, degrading to info fallback",
			slog.String("session_id", params.SessionID))
		return ParsedTurn{Intent: flow.IntentAskInfo, Reply: raw}
	}
	return parsed
}

// saveCart writes the post-turn session state through to storage.
func (h *ProcessTurnCommandHandler) saveCart(
	ctx context.Context,
	sessionID string,
	turnCtx *intents.Context,
	state flow.State,
) error {
	cart, err := draft.NewCart(sessionID)
	if err != nil {
		return err
	}
	cart.ApplyTurn(draft.ApplyTurnParams{
		State:      state,
		Items:      turnCtx.Items,
		Address:    turnCtx.SelectedAddress,
		Occasion:   turnCtx.Occasion,
		DeliveryAt: turnCtx.DeliveryTime,
		Memo:       turnCtx.Memo,
		At:         turnCtx.Now,
	})

	uow := h.cartUoWFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.CartRepository().Upsert(ctx, cart); err != nil {
		return err
	}
	return uow.Commit(ctx)
}
