package services

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	numberedOrdinalPattern = regexp.MustCompile(`(\d+)\s*번`)
	hashOrdinalPattern     = regexp.MustCompile(`#(\d+)`)
)

// MatchesAddAnother reports whether the utterance is an "add one more"
// phrasing, which lets a new dinner start while another line is still
// pending. Blocker phrases ("추가 메뉴") veto the match because they ask
// about extras instead.
func (p *Phrasebook) MatchesAddAnother(utterance string) bool {
	lowered := strings.ToLower(utterance)
	for _, blocker := range p.AddAnother.Blockers {
		if strings.Contains(lowered, strings.ToLower(blocker)) {
			return false
		}
	}
	for _, phrase := range p.AddAnother.Phrases {
		if strings.Contains(lowered, strings.ToLower(phrase)) {
			return true
		}
	}
	return false
}

// ExtractOrdinal pulls a 1-based item ordinal from the utterance:
// a digit with the "번" marker, a "#N" reference, or an ordinal word.
// Returns false when the utterance targets no specific item.
func (p *Phrasebook) ExtractOrdinal(utterance string) (int, bool) {
	if m := numberedOrdinalPattern.FindStringSubmatch(utterance); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			return n, true
		}
	}
	if m := hashOrdinalPattern.FindStringSubmatch(utterance); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			return n, true
		}
	}

	lowered := strings.ToLower(utterance)
	best, bestLen := 0, 0
	for word, n := range p.Ordinals.Words {
		if strings.Contains(lowered, strings.ToLower(word)) && len(word) > bestLen {
			best, bestLen = n, len(word)
		}
	}
	if best > 0 {
		return best, true
	}
	return 0, false
}

// IsRemoveLast reports whether the removal target means "the most recently
// added line": either the classifier's sentinel value or a phrasing like
// "마지막".
func (p *Phrasebook) IsRemoveLast(target string) bool {
	trimmed := strings.TrimSpace(target)
	for _, sentinel := range p.RemoveLast.Sentinels {
		if strings.EqualFold(trimmed, sentinel) {
			return true
		}
	}
	lowered := strings.ToLower(trimmed)
	for _, phrase := range p.RemoveLast.Phrases {
		if strings.Contains(lowered, strings.ToLower(phrase)) {
			return true
		}
	}
	return false
}

// ComponentAction is the customization action detected in a phrase.
type ComponentAction int

const (
	// ComponentActionNone means no recognizable action keyword.
	ComponentActionNone ComponentAction = iota

	// ComponentActionAdd adds one unit of a component.
	ComponentActionAdd

	// ComponentActionRemove excludes a component.
	ComponentActionRemove
)

// DetectComponentAction classifies an edit phrase as add or remove.
// When both kinds of keyword appear, add wins: "와인 빼지 말고 추가"
// ends with the user wanting more.
func (p *Phrasebook) DetectComponentAction(phrase string) ComponentAction {
	lowered := strings.ToLower(phrase)
	for _, keyword := range p.ComponentActions.Add {
		if strings.Contains(lowered, strings.ToLower(keyword)) {
			return ComponentActionAdd
		}
	}
	for _, keyword := range p.ComponentActions.Remove {
		if strings.Contains(lowered, strings.ToLower(keyword)) {
			return ComponentActionRemove
		}
	}
	return ComponentActionNone
}
