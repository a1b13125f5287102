package intents

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"maitred/internal/core/domain/model/catalog"
	"maitred/internal/core/domain/model/draft"
	"maitred/internal/core/domain/model/flow"
	"maitred/internal/core/domain/services"
)

// componentQtyPattern catches "와인 2개" style phrases; multiple matches in
// one utterance become one atomic multi-component edit.
var componentQtyPattern = regexp.MustCompile(`(\S+)\s*(\d+)\s*개`)

type editKind int

const (
	editSetQuantity editKind = iota
	editExclude
	editAddOne
)

// componentEdit is one parsed component change.
type componentEdit struct {
	component catalog.Component
	kind      editKind
	quantity  int
}

// CustomizeHandler changes the component composition of drafted dinners.
// An ordinal in the utterance targets one line; without an ordinal every
// dinner line is customized the same way. All component edits parsed from
// one utterance apply atomically: either the whole set lands or none.
type CustomizeHandler struct{}

// NewCustomizeHandler creates the handler.
func NewCustomizeHandler() *CustomizeHandler {
	return &CustomizeHandler{}
}

// Supports serves CUSTOMIZE and NO_CUSTOMIZE.
func (h *CustomizeHandler) Supports(ctx *Context) bool {
	return ctx.Intent == flow.IntentCustomize || ctx.Intent == flow.IntentNoCustomize
}

// Handle applies the requested component edits or moves on to extras.
func (h *CustomizeHandler) Handle(ctx *Context) (Result, error) {
	if ctx.Intent == flow.IntentNoCustomize {
		return Result{
			Reply:     extrasQuestion(ctx),
			NextState: flow.StateSelectingExtras,
		}, nil
	}

	targets, targetErr := resolveEditTargets(ctx)
	if targetErr != "" {
		return Result{Reply: targetErr, NextState: flow.StateCustomizing}, nil
	}

	applied := false
	for _, target := range targets {
		edits := parseComponentEdits(ctx, target)
		if len(edits) == 0 {
			continue
		}
		if ok := applyComponentEdits(ctx, target, edits); !ok {
			return Result{
				Reply:     "구성 변경에 실패했어요. 다시 말씀해주세요.",
				NextState: flow.StateCustomizing,
			}, nil
		}
		applied = true
	}

	if !applied {
		return Result{
			Reply:     "어떤 구성품을 변경할지 말씀해주세요. 예: \"와인 2개로 해줘\", \"샐러드 빼줘\"",
			NextState: flow.StateCustomizing,
		}, nil
	}

	return Result{
		Reply:     fmt.Sprintf("구성을 변경했어요.\n%s", orderSummary(ctx)),
		NextState: flow.StateCustomizing,
		Signal:    flow.SignalRefreshDraft,
	}, nil
}

// resolveEditTargets picks the lines a customization applies to: the line
// named by a 1-based ordinal, or every dinner line when no ordinal is given.
// The second return value is a user-facing error message, empty on success.
func resolveEditTargets(ctx *Context) ([]*draft.Item, string) {
	ordinal, hasOrdinal := 0, false
	if ctx.Entities.ItemIndex > 0 {
		ordinal, hasOrdinal = ctx.Entities.ItemIndex, true
	} else if n, ok := ctx.Phrases.ExtractOrdinal(ctx.Utterance); ok {
		ordinal, hasOrdinal = n, true
	}

	if hasOrdinal {
		item, ok := draft.FindByOrdinal(ctx.Items, ordinal)
		if !ok || item.IsStandalone() {
			return nil, fmt.Sprintf("%d번 메뉴를 찾지 못했어요.", ordinal)
		}
		return []*draft.Item{item}, ""
	}

	targets := make([]*draft.Item, 0, len(ctx.Items))
	for _, item := range ctx.Items {
		if !item.IsStandalone() {
			targets = append(targets, item)
		}
	}
	if len(targets) == 0 {
		return nil, "변경할 메뉴가 없어요."
	}
	return targets, ""
}

// parseComponentEdits extracts the component changes the utterance asks
// for on one target line, resolving names against that line's dinner.
func parseComponentEdits(ctx *Context, item *draft.Item) []componentEdit {
	dinner, ok := ctx.Matcher.FindDinner(item.DinnerName())
	if !ok {
		return nil
	}

	var edits []componentEdit
	seen := map[string]bool{}

	// explicit quantities: "와인 2개"
	for _, m := range componentQtyPattern.FindAllStringSubmatch(ctx.Utterance, -1) {
		component, found := dinner.Component(ctx.Matcher.CanonicalComponentName(m[1]))
		if !found {
			continue
		}
		quantity, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		edits = append(edits, componentEdit{component: component, kind: editSetQuantity, quantity: quantity})
		seen[component.Name()] = true
	}

	// the classifier's extracted target plus action
	if name := ctx.Entities.Item; name != "" {
		if component, found := dinner.Component(ctx.Matcher.CanonicalComponentName(name)); found && !seen[component.Name()] {
			action := ctx.Phrases.DetectComponentAction(ctx.Entities.Action)
			if action == services.ComponentActionNone {
				action = ctx.Phrases.DetectComponentAction(ctx.Utterance)
			}
			switch action {
			case services.ComponentActionRemove:
				edits = append(edits, componentEdit{component: component, kind: editExclude})
				seen[component.Name()] = true
			case services.ComponentActionAdd:
				if q := ctx.Entities.MenuItemQuantity; q > 0 {
					edits = append(edits, componentEdit{component: component, kind: editSetQuantity, quantity: q})
				} else {
					edits = append(edits, componentEdit{component: component, kind: editAddOne})
				}
				seen[component.Name()] = true
			}
		}
	}

	// components named directly in the utterance
	action := ctx.Phrases.DetectComponentAction(ctx.Utterance)
	if action != services.ComponentActionNone {
		for _, component := range dinner.Components() {
			if seen[component.Name()] {
				continue
			}
			if !mentionsComponent(ctx, component) {
				continue
			}
			switch action {
			case services.ComponentActionRemove:
				edits = append(edits, componentEdit{component: component, kind: editExclude})
			case services.ComponentActionAdd:
				edits = append(edits, componentEdit{component: component, kind: editAddOne})
			}
			seen[component.Name()] = true
		}
	}

	return edits
}

func mentionsComponent(ctx *Context, component catalog.Component) bool {
	lowered := strings.ToLower(ctx.Utterance)
	if strings.Contains(lowered, strings.ToLower(component.Name())) {
		return true
	}
	translated := ctx.Matcher.CanonicalComponentName(lowered)
	return strings.Contains(translated, strings.ToLower(component.Name()))
}

// applyComponentEdits applies a set of edits atomically: they run on a
// clone first, and the clone replaces the original only if every edit
// succeeds.
func applyComponentEdits(ctx *Context, item *draft.Item, edits []componentEdit) bool {
	clone := item.Clone()
	for _, edit := range edits {
		var err error
		switch edit.kind {
		case editSetQuantity:
			err = clone.SetComponentQuantity(edit.component, edit.quantity)
		case editExclude:
			err = clone.ExcludeComponent(edit.component)
		case editAddOne:
			if clone.IsExcluded(edit.component.Name()) {
				err = clone.IncludeComponent(edit.component)
			} else {
				current := clone.ComponentQuantity(edit.component.Name(), edit.component.DefaultQuantity())
				err = clone.SetComponentQuantity(edit.component, current+1)
			}
		}
		if err != nil {
			return false
		}
	}

	for idx, existing := range ctx.Items {
		if existing == item {
			ctx.Items[idx] = clone
			return true
		}
	}
	return false
}
