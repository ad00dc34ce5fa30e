package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type enumRequest struct {
	Placement  string   `validate:"required,placement"`
	Channel    string   `validate:"omitempty,channel"`
	Stacking   string   `validate:"omitempty,stacking"`
	ValueType  string   `validate:"omitempty,value_type"`
	Target     string   `validate:"required,target"`
	Placements []string `validate:"omitempty,dive,placement"`
}

func TestCustomValidator_EnumRules(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		req       enumRequest
		wantRules []string
	}{
		{
			name: "valid",
			req: enumRequest{
				Placement:  "home_hero",
				Channel:    "web",
				Stacking:   "stack_same_target",
				ValueType:  "fixed",
				Target:     "category",
				Placements: []string{"cart", "checkout"},
			},
		},
		{
			name:      "unknown placement",
			req:       enumRequest{Placement: "sidebar", Target: "store"},
			wantRules: []string{"placement"},
		},
		{
			name:      "bad enums",
			req:       enumRequest{Placement: "cart", Channel: "sms", Stacking: "all", Target: "brand"},
			wantRules: []string{"channel", "stacking", "target"},
		},
		{
			name:      "bad placement in list",
			req:       enumRequest{Placement: "cart", Target: "store", Placements: []string{"cart", "footer"}},
			wantRules: []string{"placement"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)
			if len(tt.wantRules) == 0 {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			details := Details(err)
			rules := make([]string, 0, len(details))
			for _, d := range details {
				rules = append(rules, d.Rule)
			}
			assert.ElementsMatch(t, tt.wantRules, rules)
		})
	}
}

func TestDetails_NonValidationError(t *testing.T) {
	assert.Nil(t, Details(assert.AnError))
}
