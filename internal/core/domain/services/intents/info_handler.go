package intents

import (
	"fmt"
	"strings"

	"maitred/internal/core/domain/model/flow"
)

// InfoHandler answers informational questions without advancing the flow.
// A free-form answer produced by the classifier passes through as-is;
// otherwise the handler composes menu or address details itself.
type InfoHandler struct{}

// NewInfoHandler creates the handler.
func NewInfoHandler() *InfoHandler {
	return &InfoHandler{}
}

// Supports serves ASK_INFO.
func (h *InfoHandler) Supports(ctx *Context) bool {
	return ctx.Intent == flow.IntentAskInfo
}

func (h *InfoHandler) Handle(ctx *Context) (Result, error) {
	if reply := strings.TrimSpace(ctx.ClassifierReply); reply != "" {
		return Result{Reply: reply, NextState: ctx.State}, nil
	}

	if name := ctx.Entities.MenuName; name != "" {
		if dinner, found := ctx.Matcher.FindDinner(name); found {
			var b strings.Builder
			fmt.Fprintf(&b, "%s은(는) %d원이에요.\n구성:", displayDinnerName(dinner), dinner.BasePrice())
			for _, component := range dinner.Components() {
				fmt.Fprintf(&b, " %s x%d,", component.Name(), component.DefaultQuantity())
			}
			reply := strings.TrimSuffix(b.String(), ",")
			return Result{Reply: reply, NextState: ctx.State}, nil
		}
	}

	if strings.Contains(ctx.Utterance, "주소") {
		if len(ctx.KnownAddresses) == 0 {
			return Result{Reply: "등록된 배달 주소가 없어요.", NextState: ctx.State}, nil
		}
		return Result{Reply: addressListing(ctx.KnownAddresses), NextState: ctx.State}, nil
	}

	return Result{
		Reply:     "메뉴 안내를 도와드릴게요.\n" + ctx.Matcher.DinnerListing(),
		NextState: ctx.State,
	}, nil
}
