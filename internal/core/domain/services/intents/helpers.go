package intents

import (
	"fmt"
	"strings"

	"maitred/internal/core/domain/model/catalog"
	"maitred/internal/core/domain/model/draft"
)

// Reply building blocks shared across handlers.

// orderSummary renders the current draft for the user: one line per item
// with style and running total, plus delivery details when known.
func orderSummary(ctx *Context) string {
	if len(ctx.Items) == 0 {
		return "담긴 메뉴가 없습니다."
	}

	var b strings.Builder
	b.WriteString("현재 주문 내역:\n")
	for _, item := range ctx.Items {
		b.WriteString(formatItemLine(item))
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "합계: %d원", ctx.TotalPrice())

	if ctx.Occasion != "" {
		fmt.Fprintf(&b, "\n기념일: %s", ctx.Occasion)
	}
	if ctx.DeliveryTime != nil {
		fmt.Fprintf(&b, "\n배달 시간: %s", ctx.DeliveryTime.Format("1월 2일 15:04"))
	}
	return b.String()
}

func formatItemLine(item *draft.Item) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d. %s", item.ItemIndex(), item.DinnerName())
	if item.StyleName() != "" {
		fmt.Fprintf(&b, " (%s 스타일)", item.StyleName())
	}
	if item.Quantity() > 0 {
		fmt.Fprintf(&b, " x%d - %d원", item.Quantity(), item.TotalPrice())
	} else {
		b.WriteString(" - 수량 미정")
	}
	for _, excluded := range item.ExcludedComponents() {
		fmt.Fprintf(&b, " [%s 제외]", excluded)
	}
	for _, addOn := range item.AddOns() {
		fmt.Fprintf(&b, " [+%s x%d]", addOn.Name(), addOn.Quantity())
	}
	return b.String()
}

// addressListing renders the known addresses as a numbered choice list.
func addressListing(addresses []string) string {
	var b strings.Builder
	b.WriteString("배달받으실 주소를 선택해주세요:\n")
	for i, addr := range addresses {
		fmt.Fprintf(&b, "%d. %s\n", i+1, addr)
	}
	return strings.TrimRight(b.String(), "\n")
}

// quantityQuestion asks for the pending dinner's quantity. Champagne
// dinners get a serving-size hint: one set serves two people.
func quantityQuestion(dinner *catalog.Dinner) string {
	question := fmt.Sprintf("%s 몇 개 주문하시겠어요?", displayDinnerName(dinner))
	if strings.Contains(strings.ToLower(dinner.Name()), "champagne") ||
		strings.Contains(dinner.LocalName(), "샴페인") {
		question += " (샴페인 축제 디너 1개는 2인 기준입니다.)"
	}
	return question
}

func displayDinnerName(dinner *catalog.Dinner) string {
	if dinner.LocalName() != "" {
		return dinner.LocalName()
	}
	return dinner.Name()
}

// styleQuestion asks for the pending dinner's serving style.
func styleQuestion(ctx *Context, dinner *catalog.Dinner) string {
	return fmt.Sprintf("%s의 스타일을 선택해주세요:\n%s",
		displayDinnerName(dinner), ctx.Matcher.StyleListing(dinner))
}

// dinnerQuestion asks which dinner to order, listing the catalog.
func dinnerQuestion(ctx *Context) string {
	return fmt.Sprintf("어떤 디너를 주문하시겠어요?\n%s", ctx.Matcher.DinnerListing())
}

// extrasQuestion asks whether to add standalone items.
func extrasQuestion(ctx *Context) string {
	return fmt.Sprintf("추가 메뉴를 주문하시겠어요?\n%s", ctx.Matcher.ExtrasListing())
}
