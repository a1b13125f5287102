package services

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Free-text parsing of Korean delivery date and time phrases.
//
// Dates understand relative days (오늘/내일/모레/글피), weekday names
// resolved to the next future occurrence, and explicit "M월 D일" rolling
// into next year when the date already passed. Times understand 12-hour
// phrases with 오전/오후/저녁 qualifiers, minutes and 반 (half past), the
// "HH:MM" form, and the convention that a bare hour between 1 and 9 with
// no qualifier means afternoon.

var (
	monthDayPattern  = regexp.MustCompile(`(\d{1,2})월\s*(\d{1,2})일`)
	hourPattern      = regexp.MustCompile(`(오전|아침|오후|저녁|밤)?\s*(\d{1,2})\s*시(?:\s*(반|\d{1,2}\s*분))?`)
	clockPattern     = regexp.MustCompile(`(\d{1,2}):(\d{2})`)
	minuteSubPattern = regexp.MustCompile(`(\d{1,2})`)
)

var relativeDays = map[string]int{
	"오늘":    0,
	"today": 0,
	"내일":    1,
	"tomorrow": 1,
	"모레": 2,
	"내일모레": 2,
	"글피": 3,
}

var weekdays = map[string]time.Weekday{
	"월요일": time.Monday, "monday": time.Monday,
	"화요일": time.Tuesday, "tuesday": time.Tuesday,
	"수요일": time.Wednesday, "wednesday": time.Wednesday,
	"목요일": time.Thursday, "thursday": time.Thursday,
	"금요일": time.Friday, "friday": time.Friday,
	"토요일": time.Saturday, "saturday": time.Saturday,
	"일요일": time.Sunday, "sunday": time.Sunday,
}

// ParseDeliveryDate resolves a date phrase relative to now.
// Returns false when no recognizable date is present.
func ParseDeliveryDate(text string, now time.Time) (time.Time, bool) {
	lowered := strings.ToLower(strings.TrimSpace(text))
	if lowered == "" {
		return time.Time{}, false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	// longest phrase first so 내일모레 is not read as 내일
	matchedOffset, matchedLen := -1, 0
	for phrase, offset := range relativeDays {
		if strings.Contains(lowered, phrase) && len(phrase) > matchedLen {
			matchedOffset, matchedLen = offset, len(phrase)
		}
	}
	if matchedOffset >= 0 {
		return today.AddDate(0, 0, matchedOffset), true
	}

	for name, weekday := range weekdays {
		if strings.Contains(lowered, name) {
			daysToAdd := (int(weekday) - int(today.Weekday()) + 7) % 7
			if daysToAdd == 0 {
				daysToAdd = 7
			}
			return today.AddDate(0, 0, daysToAdd), true
		}
	}

	if m := monthDayPattern.FindStringSubmatch(lowered); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		if month >= 1 && month <= 12 && day >= 1 && day <= 31 {
			candidate := time.Date(now.Year(), time.Month(month), day, 0, 0, 0, 0, now.Location())
			if candidate.Before(today) {
				candidate = candidate.AddDate(1, 0, 0)
			}
			return candidate, true
		}
	}

	return time.Time{}, false
}

// ParseDeliveryTime resolves a time phrase into hour and minute.
// Returns false when no recognizable time is present.
func ParseDeliveryTime(text string) (int, int, bool) {
	lowered := strings.ToLower(strings.TrimSpace(text))
	if lowered == "" {
		return 0, 0, false
	}

	if m := hourPattern.FindStringSubmatch(lowered); m != nil {
		qualifier, hourText, minuteText := m[1], m[2], m[3]
		hour, _ := strconv.Atoi(hourText)
		if hour > 23 {
			return 0, 0, false
		}

		minute := 0
		if minuteText == "반" {
			minute = 30
		} else if minuteText != "" {
			if mm := minuteSubPattern.FindString(minuteText); mm != "" {
				minute, _ = strconv.Atoi(mm)
			}
		}
		if minute > 59 {
			return 0, 0, false
		}

		switch qualifier {
		case "오후", "저녁", "밤":
			if hour < 12 {
				hour += 12
			}
		case "오전", "아침":
			if hour == 12 {
				hour = 0
			}
		default:
			// bare hour 1..9 conventionally means afternoon
			if hour >= 1 && hour <= 9 {
				hour += 12
			}
		}
		return hour, minute, true
	}

	if m := clockPattern.FindStringSubmatch(lowered); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		if hour <= 23 && minute <= 59 {
			return hour, minute, true
		}
	}

	return 0, 0, false
}

// Delivery defaults applied when the user names only half of the moment.
const (
	defaultDeliveryHour   = 18
	defaultDeliveryMinute = 0
)

// DefaultDeliveryMoment returns the fallback delivery slot: tomorrow at
// 18:00 in the caller's location.
func DefaultDeliveryMoment(now time.Time) time.Time {
	tomorrow := now.AddDate(0, 0, 1)
	return time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(),
		defaultDeliveryHour, defaultDeliveryMinute, 0, 0, now.Location())
}

// ResolveDeliveryMoment combines date and time phrases into one moment.
// When only one half is given, the other defaults: date to tomorrow, time
// to 18:00. Returns false when neither half parses.
func ResolveDeliveryMoment(dateText, timeText string, now time.Time) (time.Time, bool) {
	date, dateOK := ParseDeliveryDate(dateText, now)
	hour, minute, timeOK := ParseDeliveryTime(timeText)

	if !dateOK && !timeOK {
		return time.Time{}, false
	}
	if !dateOK {
		date = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	}
	if !timeOK {
		hour, minute = defaultDeliveryHour, defaultDeliveryMinute
	}

	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, now.Location()), true
}
