package reward

import (
	"testing"

	"github.com/myokyal/loopify/internal/catalog"
)

func TestCalculate_LowerBoundExact(t *testing.T) {
	// Like-new pays the lower bound of the range with no rounding error.
	est := Calculate("electronics", "phone", "like-new")
	if est.Amount != 30000 {
		t.Errorf("expected 30000, got %d", est.Amount)
	}
	if est.Display != "30,000 MMK" {
		t.Errorf("expected display %q, got %q", "30,000 MMK", est.Display)
	}
	if est.PerUnit {
		t.Error("phone should not be a per-unit item")
	}
}

func TestCalculate_ConditionFactors(t *testing.T) {
	tests := []struct {
		condition string
		amount    int
	}{
		{"like-new", 30000},
		{"good", 21000},
		{"worn", 12000},
	}
	for _, tt := range tests {
		est := Calculate("electronics", "phone", tt.condition)
		if est.Amount != tt.amount {
			t.Errorf("condition %s: expected %d, got %d", tt.condition, tt.amount, est.Amount)
		}
	}
}

func TestCalculate_MonotonicAcrossConditions(t *testing.T) {
	// For every range-based item, the reward must not increase as the
	// condition worsens.
	order := []string{"like-new", "good", "worn"}
	for _, cat := range catalog.Categories() {
		for _, item := range catalog.ItemsByCategory(cat.ID) {
			prev := -1
			for i, cond := range order {
				est := Calculate(cat.ID, item.ID, cond)
				if est.Amount < 0 {
					t.Errorf("%s/%s/%s: negative reward %d", cat.ID, item.ID, cond, est.Amount)
				}
				if est.PerUnit {
					continue
				}
				if i > 0 && est.Amount > prev {
					t.Errorf("%s/%s: reward increased from %d to %d as condition worsened", cat.ID, item.ID, prev, est.Amount)
				}
				prev = est.Amount
			}
		}
	}
}

func TestCalculate_PerUnitRateUnscaled(t *testing.T) {
	for _, cond := range []string{"like-new", "good", "worn"} {
		est := Calculate("packaging", "cardboard", cond)
		if !est.PerUnit {
			t.Fatalf("cardboard should be per-unit")
		}
		if est.Display != "500 MMK/kg" {
			t.Errorf("expected rate passed through, got %q", est.Display)
		}
		if est.Amount != 500 {
			t.Errorf("expected rate amount 500, got %d", est.Amount)
		}
	}
}

func TestCalculate_UnknownDegradesToZero(t *testing.T) {
	tests := []struct {
		name                      string
		category, item, condition string
	}{
		{"unknown item", "electronics", "toaster", "good"},
		{"unknown category", "appliances", "phone", "good"},
		{"unknown condition", "electronics", "phone", "destroyed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			est := Calculate(tt.category, tt.item, tt.condition)
			if est.Amount != 0 {
				t.Errorf("expected zero amount, got %d", est.Amount)
			}
			if est.Display != "0 MMK" {
				t.Errorf("expected %q, got %q", "0 MMK", est.Display)
			}
		})
	}
}

func TestFormatMMK(t *testing.T) {
	tests := []struct {
		amount int
		want   string
	}{
		{0, "0 MMK"},
		{500, "500 MMK"},
		{21000, "21,000 MMK"},
		{1234567, "1,234,567 MMK"},
	}
	for _, tt := range tests {
		if got := FormatMMK(tt.amount); got != tt.want {
			t.Errorf("FormatMMK(%d) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}
