package dialog

import "strings"

// Intent is the classified category of a free-text user message.
type Intent string

const (
	IntentBookRoom  Intent = "book_room"
	IntentMessMenu  Intent = "mess_menu"
	IntentComplaint Intent = "complaint"
	IntentPayment   Intent = "payment"
	IntentWifi      Intent = "wifi"
	IntentLaundry   Intent = "laundry"
	IntentGreeting  Intent = "greeting"
	IntentFallback  Intent = "fallback"
)

// rule matches when the input contains at least one keyword from every group.
// A single-group rule is therefore a plain disjunction.
type rule struct {
	intent Intent
	groups [][]string
}

// rules is evaluated top to bottom, first match wins.
var rules = []rule{
	{IntentBookRoom, [][]string{{"room"}, {"book", "reserve"}}},
	{IntentMessMenu, [][]string{{"mess"}, {"menu", "food"}}},
	{IntentComplaint, [][]string{{"complaint", "issue", "problem", "report"}}},
	{IntentPayment, [][]string{{"payment", "fee", "due"}}},
	{IntentWifi, [][]string{{"wifi", "internet"}}},
	{IntentLaundry, [][]string{{"laundry"}}},
	{IntentGreeting, [][]string{{"hello", "hi", "hey"}}},
}

func (r rule) matches(input string) bool {
	for _, group := range r.groups {
		found := false
		for _, keyword := range group {
			if strings.Contains(input, keyword) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Classify maps free-form text to an Intent. Matching is case-insensitive
// substring containment over an ordered rule table; the first satisfied rule
// wins and later rules are not evaluated. Unmatched input yields
// IntentFallback.
func Classify(text string) Intent {
	input := strings.ToLower(text)
	for _, r := range rules {
		if r.matches(input) {
			return r.intent
		}
	}
	return IntentFallback
}
