package keeper

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/Tradegen/protocol-v2/x/cappedpools/types"
)

func newTestPool(maxSupply int64) *types.CappedPool {
	return types.NewCappedPool(
		"Test Capped",
		"tgen1manager",
		math.NewInt(maxSupply),
		math.LegacyOneDec(),
		1000,
		1700000000,
	)
}

// TestDeriveClassCaps tests class capacity derivation
func TestDeriveClassCaps(t *testing.T) {
	caps := types.DeriveClassCaps(math.NewInt(10000))

	expected := []int64{500, 1000, 2000, 6500}
	for i, exp := range expected {
		if !caps[i].Equal(math.NewInt(exp)) {
			t.Errorf("class %d: expected cap %d, got %s", i+1, exp, caps[i].String())
		}
	}

	// Caps always sum to max supply, remainder lands in the last class
	odd := types.DeriveClassCaps(math.NewInt(10001))
	sum := math.ZeroInt()
	for _, c := range odd {
		sum = sum.Add(c)
	}
	if !sum.Equal(math.NewInt(10001)) {
		t.Errorf("expected caps to sum to 10001, got %s", sum.String())
	}
}

// TestAllocateTokensAscendingFill tests the ascending class fill order
func TestAllocateTokensAscendingFill(t *testing.T) {
	testCases := []struct {
		name               string
		deposits           []int64
		expectedLast       [types.NumClasses]int64
		expectedBalances   [types.NumClasses]int64
		expectedAvailables [types.NumClasses]int64
	}{
		{
			name:               "deposit straddles first two classes",
			deposits:           []int64{1000},
			expectedLast:       [types.NumClasses]int64{500, 500, 0, 0},
			expectedBalances:   [types.NumClasses]int64{500, 500, 0, 0},
			expectedAvailables: [types.NumClasses]int64{0, 500, 2000, 6500},
		},
		{
			name:               "deposit fills three classes and part of the fourth",
			deposits:           []int64{5000},
			expectedLast:       [types.NumClasses]int64{500, 1000, 2000, 1500},
			expectedBalances:   [types.NumClasses]int64{500, 1000, 2000, 1500},
			expectedAvailables: [types.NumClasses]int64{0, 0, 0, 5000},
		},
		{
			name:               "late depositor lands in the top class",
			deposits:           []int64{3500, 1000},
			expectedLast:       [types.NumClasses]int64{0, 0, 0, 1000},
			expectedBalances:   [types.NumClasses]int64{500, 1000, 2000, 1000},
			expectedAvailables: [types.NumClasses]int64{0, 0, 0, 5500},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			pool := newTestPool(10000)

			var last [types.NumClasses]math.Int
			for _, q := range tc.deposits {
				allocation, err := pool.AllocateTokens(math.NewInt(q))
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				last = allocation
			}

			for i := 0; i < types.NumClasses; i++ {
				if !last[i].Equal(math.NewInt(tc.expectedLast[i])) {
					t.Errorf("class %d allocation: expected %d, got %s", i+1, tc.expectedLast[i], last[i].String())
				}
				if !pool.ClassBalances[i].Equal(math.NewInt(tc.expectedBalances[i])) {
					t.Errorf("class %d balance: expected %d, got %s", i+1, tc.expectedBalances[i], pool.ClassBalances[i].String())
				}
			}

			available := pool.AvailableTokensPerClass()
			for i := 0; i < types.NumClasses; i++ {
				if !available[i].Equal(math.NewInt(tc.expectedAvailables[i])) {
					t.Errorf("class %d available: expected %d, got %s", i+1, tc.expectedAvailables[i], available[i].String())
				}
			}
		})
	}
}

// TestAllocateTokensSupplyCap tests rejection above max supply
func TestAllocateTokensSupplyCap(t *testing.T) {
	pool := newTestPool(10000)

	if _, err := pool.AllocateTokens(math.NewInt(10001)); err != types.ErrSupplyCapExceeded {
		t.Errorf("expected ErrSupplyCapExceeded, got %v", err)
	}

	if _, err := pool.AllocateTokens(math.NewInt(10000)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := pool.AllocateTokens(math.NewInt(1)); err != types.ErrSupplyCapExceeded {
		t.Errorf("expected ErrSupplyCapExceeded on full pool, got %v", err)
	}
}

// TestCapacityInvariant tests that freed capacity always mirrors unminted supply
func TestCapacityInvariant(t *testing.T) {
	pool := newTestPool(10000)

	checkInvariant := func() {
		t.Helper()
		capSum := math.ZeroInt()
		balSum := math.ZeroInt()
		for i := 0; i < types.NumClasses; i++ {
			capSum = capSum.Add(pool.ClassCaps[i])
			balSum = balSum.Add(pool.ClassBalances[i])
		}
		left := capSum.Sub(balSum)
		right := pool.MaxSupply.Sub(pool.TotalSupply)
		if !left.Equal(right) {
			t.Errorf("capacity invariant broken: %s != %s", left.String(), right.String())
		}
		if !balSum.Equal(pool.TotalSupply) {
			t.Errorf("class balances %s do not sum to total supply %s", balSum.String(), pool.TotalSupply.String())
		}
	}

	checkInvariant()
	if _, err := pool.AllocateTokens(math.NewInt(1000)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	checkInvariant()
	if _, err := pool.AllocateTokens(math.NewInt(4000)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	checkInvariant()
	if err := pool.ReleaseTokens(1, math.NewInt(700)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	checkInvariant()
}

// TestReleaseTokens tests burning from a specific class
func TestReleaseTokens(t *testing.T) {
	pool := newTestPool(10000)
	if _, err := pool.AllocateTokens(math.NewInt(1000)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Burning more than the class holds fails even if the pool holds more overall
	if err := pool.ReleaseTokens(0, math.NewInt(600)); err != types.ErrInsufficientBalance {
		t.Errorf("expected ErrInsufficientBalance, got %v", err)
	}
	if err := pool.ReleaseTokens(5, math.NewInt(1)); err != types.ErrInvalidClass {
		t.Errorf("expected ErrInvalidClass, got %v", err)
	}

	if err := pool.ReleaseTokens(0, math.NewInt(500)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !pool.ClassBalances[0].IsZero() {
		t.Errorf("expected class 1 empty, got %s", pool.ClassBalances[0].String())
	}
	if !pool.TotalSupply.Equal(math.NewInt(500)) {
		t.Errorf("expected total supply 500, got %s", pool.TotalSupply.String())
	}

	// Freed capacity refills ascending on the next allocation
	allocation, err := pool.AllocateTokens(math.NewInt(600))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !allocation[0].Equal(math.NewInt(500)) || !allocation[1].Equal(math.NewInt(100)) {
		t.Errorf("expected refill [500 100 0 0], got %v", allocation)
	}
}

// TestCappedTokenPrice tests seed price bootstrap and value-based pricing
func TestCappedTokenPrice(t *testing.T) {
	pool := types.NewCappedPool("Test", "tgen1manager", math.NewInt(10000), math.LegacyMustNewDecFromStr("2"), 0, 1700000000)

	// Empty pool prices at the seed price
	if !pool.TokenPrice(math.LegacyZeroDec()).Equal(math.LegacyMustNewDecFromStr("2")) {
		t.Error("expected seed price 2 for empty pool")
	}

	if _, err := pool.AllocateTokens(math.NewInt(1000)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	price := pool.TokenPrice(math.LegacyMustNewDecFromStr("3000"))
	if !price.Equal(math.LegacyMustNewDecFromStr("3")) {
		t.Errorf("expected price 3, got %s", price.String())
	}
}

// TestSnapshotGating tests the snapshot time window and high-water mark
func TestSnapshotGating(t *testing.T) {
	// First snapshot is exempt from the window
	if err := types.CanTakeSnapshot(0, 100, 86400); err != nil {
		t.Errorf("expected first snapshot allowed, got %v", err)
	}
	if err := types.CanTakeSnapshot(1000, 1000+86399, 86400); err != types.ErrTooSoon {
		t.Errorf("expected ErrTooSoon, got %v", err)
	}
	if err := types.CanTakeSnapshot(1000, 1000+86400, 86400); err != nil {
		t.Errorf("expected snapshot allowed at window boundary, got %v", err)
	}

	// Profit must not fall below the high-water mark
	ten := math.LegacyMustNewDecFromStr("10")
	five := math.LegacyMustNewDecFromStr("5")
	if err := types.ValidateSnapshotProfit(five, ten); err != types.ErrProfitDecreased {
		t.Errorf("expected ErrProfitDecreased, got %v", err)
	}
	if err := types.ValidateSnapshotProfit(ten, ten); err != nil {
		t.Errorf("expected equal profit accepted, got %v", err)
	}
	if err := types.ValidateSnapshotProfit(ten, five); err != nil {
		t.Errorf("expected higher profit accepted, got %v", err)
	}
}

// TestClassBalanceSet tests holder balance aggregation
func TestClassBalanceSet(t *testing.T) {
	set := types.NewClassBalanceSet()
	if !set.IsZero() {
		t.Error("expected fresh set to be zero")
	}

	set[0] = math.NewInt(100)
	set[3] = math.NewInt(250)
	if !set.Total().Equal(math.NewInt(350)) {
		t.Errorf("expected total 350, got %s", set.Total().String())
	}
	if set.IsZero() {
		t.Error("expected nonzero set")
	}
}
