package types

import (
	"testing"

	"cosmossdk.io/math"
)

// TestIsTradableAction tests action capability checks
func TestIsTradableAction(t *testing.T) {
	testCases := []struct {
		name     string
		action   string
		expected bool
	}{
		{name: "deposit", action: ActionDeposit, expected: true},
		{name: "withdraw", action: ActionWithdraw, expected: true},
		{name: "swap", action: ActionSwap, expected: true},
		{name: "stake", action: ActionStake, expected: true},
		{name: "unstake", action: ActionUnstake, expected: true},
		{name: "unknown action", action: "borrow", expected: false},
		{name: "empty action", action: "", expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsTradableAction(tc.action); got != tc.expected {
				t.Errorf("IsTradableAction(%q): expected %v, got %v", tc.action, tc.expected, got)
			}
		})
	}
}

// TestBalanceDeltaSigns tests that conversion legs net out in USD terms
func TestBalanceDeltaSigns(t *testing.T) {
	deltas := []BalanceDelta{
		{Asset: "uusdc", Amount: math.LegacyMustNewDecFromStr("-100")},
		{Asset: "uatom", Amount: math.LegacyMustNewDecFromStr("10")},
	}

	prices := map[string]math.LegacyDec{
		"uusdc": math.LegacyOneDec(),
		"uatom": math.LegacyMustNewDecFromStr("10"),
	}

	net := math.LegacyZeroDec()
	for _, d := range deltas {
		net = net.Add(d.Amount.Mul(prices[d.Asset]))
	}
	if !net.IsZero() {
		t.Errorf("expected conversion legs to net to zero in USD, got %s", net.String())
	}
}
