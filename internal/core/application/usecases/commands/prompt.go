package commands

import (
	"fmt"
	"strings"

	"maitred/internal/core/domain/model/flow"
	"maitred/internal/core/domain/services"
)

// classifierInstruction is the system prompt for the intent classifier.
// The catalog listings are injected per turn so the model always sees the
// current menu. The model must answer with a single JSON object.
const classifierInstruction = `당신은 파인다이닝 디너 배달 서비스의 주문 접수 직원입니다.
사용자의 발화를 분석해 의도와 엔티티를 추출하세요.

반드시 아래 형식의 JSON 객체 하나로만 응답하세요:
{"intent": "<INTENT>", "entities": {...}, "reply": "<고객에게 할 말>"}

가능한 intent 값:
%s

entities에 담을 수 있는 키: menuName, styleName, quantity, addressIndex,
menuItemName, item, action, menuItemQuantity, itemIndex, memo,
occasionType, deliveryDate, deliveryTime.
언급되지 않은 키는 생략하세요.

현재 대화 상태: %s

판매 중인 디너:
%s

선택 가능한 스타일:
%s

추가 메뉴:
%s`

// BuildClassifierInstruction renders the classifier system prompt with the
// current catalog listings and conversation state.
func BuildClassifierInstruction(matcher *services.Matcher, state flow.State) string {
	return fmt.Sprintf(classifierInstruction,
		strings.Join(flow.IntentNames(), ", "),
		state.String(),
		matcher.DinnerListing(),
		matcher.StyleListing(nil),
		matcher.ExtrasListing(),
	)
}
