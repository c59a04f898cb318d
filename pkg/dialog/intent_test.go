package dialog

import (
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Intent
	}{
		{
			name:  "book room with both keywords",
			input: "I want to book a room",
			want:  IntentBookRoom,
		},
		{
			name:  "reserve counts as booking",
			input: "Can I reserve a room for next semester?",
			want:  IntentBookRoom,
		},
		{
			name:  "room without booking keyword is not bookRoom",
			input: "my room is dirty",
			want:  IntentFallback,
		},
		{
			name:  "case insensitive",
			input: "BOOK a ROOM please",
			want:  IntentBookRoom,
		},
		{
			name:  "mess menu",
			input: "what's on the mess menu today",
			want:  IntentMessMenu,
		},
		{
			name:  "mess food",
			input: "is the mess food any good",
			want:  IntentMessMenu,
		},
		{
			name:  "complaint keyword",
			input: "I want to file a complaint",
			want:  IntentComplaint,
		},
		{
			name:  "issue keyword",
			input: "there is an issue with my fan",
			want:  IntentComplaint,
		},
		{
			name:  "problem keyword",
			input: "I have a problem",
			want:  IntentComplaint,
		},
		{
			name:  "report keyword",
			input: "I want to report something",
			want:  IntentComplaint,
		},
		{
			name:  "payment",
			input: "how do I pay my fee",
			want:  IntentPayment,
		},
		{
			name:  "dues",
			input: "when is my due date",
			want:  IntentPayment,
		},
		{
			name:  "wifi",
			input: "the wifi is slow",
			want:  IntentWifi,
		},
		{
			name:  "internet",
			input: "no internet in block B",
			want:  IntentWifi,
		},
		{
			name:  "laundry",
			input: "where is the laundry",
			want:  IntentLaundry,
		},
		{
			name:  "greeting",
			input: "hello there",
			want:  IntentGreeting,
		},
		{
			name:  "unrecognized",
			input: "what is the capital of France",
			want:  IntentFallback,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.input)
			if got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestClassifyRuleOrder(t *testing.T) {
	// "room" + "book" must win even when later rules would also match.
	got := Classify("I want to book a room because of a wifi problem")
	if got != IntentBookRoom {
		t.Errorf("Classify = %q, want %q (first rule wins)", got, IntentBookRoom)
	}
}
