package review

import (
	"testing"

	"github.com/example/dayboard/internal/models"
)

func TestCanCreateReview(t *testing.T) {
	tests := []struct {
		name        string
		ctx         CreateReviewContext
		wantAllowed bool
		wantReason  string
	}{
		{
			name:        "morning review",
			ctx:         CreateReviewContext{ReviewDate: "2024-01-15", Type: models.ReviewAM},
			wantAllowed: true,
		},
		{
			name:        "evening review on any weekday",
			ctx:         CreateReviewContext{ReviewDate: "2024-01-17", Type: models.ReviewPM},
			wantAllowed: true,
		},
		{
			name:        "timestamp instead of date",
			ctx:         CreateReviewContext{ReviewDate: "2024-01-15T08:00:00Z", Type: models.ReviewAM},
			wantAllowed: false,
			wantReason:  "review_date must use YYYY-MM-DD",
		},
		{
			name:        "impossible calendar date",
			ctx:         CreateReviewContext{ReviewDate: "2024-02-30", Type: models.ReviewAM},
			wantAllowed: false,
			wantReason:  "review_date must use YYYY-MM-DD",
		},
		{
			name:        "lowercase type",
			ctx:         CreateReviewContext{ReviewDate: "2024-01-15", Type: models.ReviewType("am")},
			wantAllowed: false,
			wantReason:  "invalid review type: am",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanCreateReview(tt.ctx)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
			if !tt.wantAllowed && result.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", result.Reason, tt.wantReason)
			}
		})
	}
}

func TestCanLookupReview(t *testing.T) {
	if !CanLookupReview(LookupContext{ReviewDate: "2024-01-15"}).Allowed {
		t.Error("type is optional on lookup")
	}
	if CanLookupReview(LookupContext{ReviewDate: "2024-01-15", Type: "Noon"}).Allowed {
		t.Error("expected unknown type to be rejected")
	}
	if CanLookupReview(LookupContext{ReviewDate: "yesterday"}).Allowed {
		t.Error("expected malformed date to be rejected")
	}
}

func TestCanListRange(t *testing.T) {
	tests := []struct {
		name        string
		ctx         RangeContext
		wantAllowed bool
		wantReason  string
	}{
		{name: "unbounded", ctx: RangeContext{}, wantAllowed: true},
		{name: "single day", ctx: RangeContext{From: "2024-01-15", To: "2024-01-15"}, wantAllowed: true},
		{name: "open ended", ctx: RangeContext{From: "2024-01-01"}, wantAllowed: true},
		{
			name:        "inverted",
			ctx:         RangeContext{From: "2024-02-01", To: "2024-01-01"},
			wantAllowed: false,
			wantReason:  "from 2024-02-01 is after to 2024-01-01",
		},
		{
			name:        "bad upper bound",
			ctx:         RangeContext{To: "01/31/2024"},
			wantAllowed: false,
			wantReason:  "to must use YYYY-MM-DD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanListRange(tt.ctx)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
			if !tt.wantAllowed && result.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", result.Reason, tt.wantReason)
			}
		})
	}
}

func TestPromptsFor(t *testing.T) {
	am := PromptsFor(models.ReviewAM)
	pm := PromptsFor(models.ReviewPM)
	if len(am) != 3 || len(pm) != 3 {
		t.Fatalf("expected three prompts per type, got %d AM and %d PM", len(am), len(pm))
	}
	if am[0].Field != FieldTodaysOneThing {
		t.Errorf("first AM prompt = %s", am[0].Field)
	}
	if pm[2].Field != FieldTomorrowsShift {
		t.Errorf("last PM prompt = %s", pm[2].Field)
	}
	if PromptsFor("") != nil {
		t.Error("unknown type has no prompts")
	}
}
