package rates

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestFor(t *testing.T) {
	cases := []struct {
		name       string
		vip        int
		generation int
		want       string
	}{
		{name: "vip0 gen1", vip: 0, generation: 1, want: "0.09"},
		{name: "vip0 gen3", vip: 0, generation: 3, want: "0.03"},
		{name: "vip1 gen1", vip: 1, generation: 1, want: "0.10"},
		{name: "vip2 gen2", vip: 2, generation: 2, want: "0.08"},
		{name: "vip3 gen3", vip: 3, generation: 3, want: "0.06"},
		{name: "vip4 gen2", vip: 4, generation: 2, want: "0.10"},
		{name: "vip5 gen1", vip: 5, generation: 1, want: "0.14"},
		{name: "vip5 gen3", vip: 5, generation: 3, want: "0.08"},
		{name: "unknown vip falls back to level 0", vip: 9, generation: 2, want: "0.06"},
		{name: "negative vip falls back to level 0", vip: -1, generation: 1, want: "0.09"},
		{name: "generation out of range", vip: 3, generation: 4, want: "0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := For(tc.vip, tc.generation)
			require.True(t, got.Equal(decimal.RequireFromString(tc.want)), "got %s", got)
		})
	}
}

func TestVIPLevelFor(t *testing.T) {
	cases := []struct {
		referrals int
		want      int
	}{
		{0, 0}, {4, 0}, {5, 1}, {9, 1}, {10, 2}, {19, 2}, {20, 3}, {35, 4}, {49, 4}, {50, 5}, {500, 5},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, VIPLevelFor(tc.referrals), "referrals=%d", tc.referrals)
	}
}
