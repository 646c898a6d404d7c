package types

import (
	"testing"
)

// TestDefaultParameters tests the genesis parameter set
func TestDefaultParameters(t *testing.T) {
	params := DefaultParameters()

	expected := map[string]int64{
		MaximumNumberOfPositionsInPool:          7,
		MaximumNumberOfPoolsPerUser:             2,
		MaximumPerformanceFee:                   3000,
		MinimumTimeBetweenPerformanceFeeUpdates: 86400,
		MinimumTimeBetweenSnapshots:             86400,
		MaximumNumberOfCappedPoolTokens:         1000000,
		MinimumNumberOfCappedPoolTokens:         100,
		MaximumCappedPoolSeedPrice:              1000,
		MinimumCappedPoolSeedPrice:              1,
		MarketplaceProtocolFee:                  100,
		MarketplaceManagerFee:                   200,
	}

	if len(params) != len(expected) {
		t.Fatalf("expected %d default parameters, got %d", len(expected), len(params))
	}

	for _, p := range params {
		want, ok := expected[p.Name]
		if !ok {
			t.Errorf("unexpected parameter %s", p.Name)
			continue
		}
		if p.Value != want {
			t.Errorf("%s: expected %d, got %d", p.Name, want, p.Value)
		}
	}
}

// TestIsRecognizedParameter tests parameter name validation
func TestIsRecognizedParameter(t *testing.T) {
	if !IsRecognizedParameter(MinimumTimeBetweenSnapshots) {
		t.Error("expected MinimumTimeBetweenSnapshots to be recognized")
	}
	if IsRecognizedParameter("UnknownParameter") {
		t.Error("expected unknown parameter to be rejected")
	}
	if IsRecognizedParameter("") {
		t.Error("expected empty name to be rejected")
	}
}
