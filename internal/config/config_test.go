package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePlanPrices(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want map[string]string
	}{
		{
			name: "empty",
			raw:  "",
			want: map[string]string{},
		},
		{
			name: "single pair",
			raw:  "basic=price_123",
			want: map[string]string{"basic": "price_123"},
		},
		{
			name: "multiple pairs with whitespace",
			raw:  "basic=price_123, pro=price_456",
			want: map[string]string{"basic": "price_123", "pro": "price_456"},
		},
		{
			name: "malformed entries skipped",
			raw:  "basic=price_123,broken,=price_789,pro=",
			want: map[string]string{"basic": "price_123"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parsePlanPrices(tt.raw))
		})
	}
}

func TestPriceForPlan(t *testing.T) {
	cfg := &Config{
		DefaultPriceID: "price_default",
		PlanPrices:     map[string]string{"pro": "price_pro"},
	}

	assert.Equal(t, "price_pro", cfg.PriceForPlan("pro"))
	assert.Equal(t, "price_default", cfg.PriceForPlan("unknown"))
	assert.Equal(t, "price_default", cfg.PriceForPlan(""))
}
