package entity

import (
	"testing"
)

func TestParseComplaintCategory(t *testing.T) {
	tests := []struct {
		input  string
		want   ComplaintCategory
		wantOK bool
	}{
		{"Room", CategoryRoom, true},
		{"Mess", CategoryMess, true},
		{"Facility", CategoryFacility, true},
		{"Other", CategoryOther, true},
		{"room", "", false},
		{"ROOM", "", false},
		{"Kitchen", "", false},
		{"", "", false},
		{" Room", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseComplaintCategory(tt.input)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ParseComplaintCategory(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestValidComplaintStatus(t *testing.T) {
	valid := []string{"Open", "In Progress", "Resolved"}
	for _, s := range valid {
		if !ValidComplaintStatus(s) {
			t.Errorf("ValidComplaintStatus(%q) = false, want true", s)
		}
	}

	invalid := []string{"open", "InProgress", "Closed", ""}
	for _, s := range invalid {
		if ValidComplaintStatus(s) {
			t.Errorf("ValidComplaintStatus(%q) = true, want false", s)
		}
	}
}
