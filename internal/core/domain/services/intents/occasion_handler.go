package intents

import (
	"fmt"
	"strings"

	"maitred/internal/core/domain/model/flow"
	"maitred/internal/core/domain/services"
)

// OccasionHandler captures the occasion and the requested delivery moment,
// and answers recommendation requests with an occasion-fitting dinner.
type OccasionHandler struct{}

// NewOccasionHandler creates the handler.
func NewOccasionHandler() *OccasionHandler {
	return &OccasionHandler{}
}

// Supports serves SET_OCCASION, SET_DELIVERY_TIME and RECOMMEND.
func (h *OccasionHandler) Supports(ctx *Context) bool {
	switch ctx.Intent {
	case flow.IntentSetOccasion, flow.IntentSetDeliveryTime, flow.IntentRecommend:
		return true
	}
	return false
}

// Handle records the entities and advances toward menu selection.
func (h *OccasionHandler) Handle(ctx *Context) (Result, error) {
	if ctx.Intent == flow.IntentRecommend {
		return h.recommend(ctx), nil
	}

	if ctx.Entities.OccasionType != "" {
		ctx.Occasion = ctx.Entities.OccasionType
	} else if ctx.Intent == flow.IntentSetOccasion && ctx.State == flow.StateAskingOccasion {
		// the classifier extracted nothing; take the utterance as spoken
		ctx.Occasion = strings.TrimSpace(ctx.Utterance)
	}

	if moment, ok := services.ResolveDeliveryMoment(ctx.Entities.DeliveryDate, ctx.Entities.DeliveryTime, ctx.Now); ok {
		ctx.DeliveryTime = &moment
	} else if ctx.Intent == flow.IntentSetDeliveryTime {
		if moment, ok := services.ResolveDeliveryMoment(ctx.Utterance, ctx.Utterance, ctx.Now); ok {
			ctx.DeliveryTime = &moment
		}
	}

	if ctx.DeliveryTime == nil {
		return Result{
			Reply:     "언제 배달받으시겠어요? 날짜와 시간을 말씀해주세요.",
			NextState: flow.StateAskingDeliveryTime,
		}, nil
	}

	reply := fmt.Sprintf("%s에 배달해드릴게요.\n%s",
		ctx.DeliveryTime.Format("1월 2일 15:04"), dinnerQuestion(ctx))
	return Result{
		Reply:     reply,
		NextState: flow.StateSelectingMenu,
	}, nil
}

// recommend suggests a dinner fitting the captured occasion by matching
// occasion words against the keyword clusters, falling back to the listing.
func (h *OccasionHandler) recommend(ctx *Context) Result {
	query := ctx.Occasion
	if ctx.Entities.OccasionType != "" {
		query = ctx.Entities.OccasionType
	}
	if query == "" {
		query = ctx.Utterance
	}

	if dinner, ok := ctx.Matcher.FindDinner(query); ok {
		return Result{
			Reply: fmt.Sprintf("%s에는 %s를 추천드려요. (%d원) 주문하시겠어요?",
				ctx.Occasion, displayDinnerName(dinner), dinner.BasePrice()),
			NextState: flow.StateSelectingMenu,
		}
	}

	return Result{
		Reply:     fmt.Sprintf("이런 메뉴는 어떠세요?\n%s", ctx.Matcher.DinnerListing()),
		NextState: flow.StateSelectingMenu,
	}
}
