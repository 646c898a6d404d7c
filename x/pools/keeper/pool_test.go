package keeper

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/Tradegen/protocol-v2/x/pools/types"
)

// TestNewPool tests pool creation with default values
func TestNewPool(t *testing.T) {
	pool := types.NewPool("Alpha Fund", "tgen1manager", 1500, 1700000000)

	if pool.Name != "Alpha Fund" {
		t.Errorf("expected name Alpha Fund, got %s", pool.Name)
	}
	if pool.Manager != "tgen1manager" {
		t.Errorf("expected manager tgen1manager, got %s", pool.Manager)
	}
	if pool.PerformanceFee != 1500 {
		t.Errorf("expected performance fee 1500, got %d", pool.PerformanceFee)
	}
	if !pool.TotalSupply.IsZero() {
		t.Errorf("expected zero total supply, got %s", pool.TotalSupply.String())
	}
	if !pool.TotalDeposits.IsZero() {
		t.Errorf("expected zero total deposits, got %s", pool.TotalDeposits.String())
	}
	if len(pool.AvailableAssets) != 0 {
		t.Errorf("expected empty whitelist, got %d assets", len(pool.AvailableAssets))
	}
	if pool.PoolID == "" {
		t.Error("expected generated pool ID")
	}
	if pool.CreatedAt != 1700000000 {
		t.Errorf("expected created at 1700000000, got %d", pool.CreatedAt)
	}
}

// TestCalculateSharesForDeposit tests share minting math
func TestCalculateSharesForDeposit(t *testing.T) {
	testCases := []struct {
		name           string
		totalSupply    math.LegacyDec
		valueBefore    math.LegacyDec
		usdValue       math.LegacyDec
		expectedShares math.LegacyDec
	}{
		{
			name:           "bootstrap deposit mints 1:1",
			totalSupply:    math.LegacyZeroDec(),
			valueBefore:    math.LegacyZeroDec(),
			usdValue:       math.LegacyMustNewDecFromStr("100"),
			expectedShares: math.LegacyMustNewDecFromStr("100"),
		},
		{
			name:           "proportional mint at price 1.0",
			totalSupply:    math.LegacyMustNewDecFromStr("100"),
			valueBefore:    math.LegacyMustNewDecFromStr("100"),
			usdValue:       math.LegacyMustNewDecFromStr("50"),
			expectedShares: math.LegacyMustNewDecFromStr("50"),
		},
		{
			name:           "proportional mint after appreciation",
			totalSupply:    math.LegacyMustNewDecFromStr("100"),
			valueBefore:    math.LegacyMustNewDecFromStr("200"),
			usdValue:       math.LegacyMustNewDecFromStr("50"),
			expectedShares: math.LegacyMustNewDecFromStr("25"),
		},
		{
			name:           "proportional mint after drawdown",
			totalSupply:    math.LegacyMustNewDecFromStr("100"),
			valueBefore:    math.LegacyMustNewDecFromStr("50"),
			usdValue:       math.LegacyMustNewDecFromStr("50"),
			expectedShares: math.LegacyMustNewDecFromStr("100"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			pool := types.NewPool("Test", "tgen1manager", 0, 1700000000)
			pool.TotalSupply = tc.totalSupply

			shares := pool.CalculateSharesForDeposit(tc.usdValue, tc.valueBefore)
			if !shares.Equal(tc.expectedShares) {
				t.Errorf("expected %s shares, got %s", tc.expectedShares.String(), shares.String())
			}
		})
	}
}

// TestSharePriceUnchangedByDeposit tests that a deposit never moves the share price
func TestSharePriceUnchangedByDeposit(t *testing.T) {
	pool := types.NewPool("Test", "tgen1manager", 0, 1700000000)
	pool.TotalSupply = math.LegacyMustNewDecFromStr("100")
	valueBefore := math.LegacyMustNewDecFromStr("140")

	priceBefore := pool.TokenPrice(valueBefore)

	usdValue := math.LegacyMustNewDecFromStr("37")
	shares := pool.CalculateSharesForDeposit(usdValue, valueBefore)
	pool.TotalSupply = pool.TotalSupply.Add(shares)

	priceAfter := pool.TokenPrice(valueBefore.Add(usdValue))

	tolerance := math.LegacyMustNewDecFromStr("0.000000000000000001")
	if priceAfter.Sub(priceBefore).Abs().GT(tolerance) {
		t.Errorf("share price moved: %s -> %s", priceBefore.String(), priceAfter.String())
	}
}

// TestTokenPrice tests share pricing including the empty-pool bootstrap
func TestTokenPrice(t *testing.T) {
	pool := types.NewPool("Test", "tgen1manager", 0, 1700000000)

	// Empty pool bootstraps at 1.0
	if !pool.TokenPrice(math.LegacyZeroDec()).Equal(math.LegacyOneDec()) {
		t.Error("expected price 1.0 for empty pool")
	}

	pool.TotalSupply = math.LegacyMustNewDecFromStr("100")
	price := pool.TokenPrice(math.LegacyMustNewDecFromStr("150"))
	if !price.Equal(math.LegacyMustNewDecFromStr("1.5")) {
		t.Errorf("expected price 1.5, got %s", price.String())
	}
}

// TestAvailableAssetWhitelist tests whitelist management and the position cap
func TestAvailableAssetWhitelist(t *testing.T) {
	pool := types.NewPool("Test", "tgen1manager", 0, 1700000000)
	maxPositions := int64(3)

	for _, asset := range []string{"ubtc", "ueth", "usol"} {
		if err := pool.AddAvailableAsset(asset, maxPositions); err != nil {
			t.Fatalf("unexpected error adding %s: %v", asset, err)
		}
	}

	// Cap reached
	if err := pool.AddAvailableAsset("uatom", maxPositions); err != types.ErrTooManyPositions {
		t.Errorf("expected ErrTooManyPositions, got %v", err)
	}

	// Duplicate rejected
	if err := pool.AddAvailableAsset("ubtc", maxPositions); err != types.ErrAssetAlreadyAdded {
		t.Errorf("expected ErrAssetAlreadyAdded, got %v", err)
	}

	// Insertion order preserved
	if pool.AvailableAssets[0] != "ubtc" || pool.AvailableAssets[2] != "usol" {
		t.Errorf("whitelist order broken: %v", pool.AvailableAssets)
	}
}

// TestRemoveAvailableAssetCascades tests that removing availability revokes deposit eligibility
func TestRemoveAvailableAssetCascades(t *testing.T) {
	pool := types.NewPool("Test", "tgen1manager", 0, 1700000000)

	if err := pool.AddAvailableAsset("ubtc", 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := pool.AddDepositAsset("ubtc"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !pool.HasDepositAsset("ubtc") {
		t.Fatal("expected ubtc to be a deposit asset")
	}

	if err := pool.RemoveAvailableAsset("ubtc"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pool.HasAvailableAsset("ubtc") {
		t.Error("expected ubtc removed from whitelist")
	}
	if pool.HasDepositAsset("ubtc") {
		t.Error("expected deposit eligibility revoked with availability")
	}
}

// TestDepositAssetRequiresAvailability tests that only whitelisted assets accept deposits
func TestDepositAssetRequiresAvailability(t *testing.T) {
	pool := types.NewPool("Test", "tgen1manager", 0, 1700000000)

	if err := pool.AddDepositAsset("ubtc"); err != types.ErrAssetNotAvailable {
		t.Errorf("expected ErrAssetNotAvailable, got %v", err)
	}

	// Removing deposit eligibility keeps the asset tradable
	if err := pool.AddAvailableAsset("ueth", 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := pool.AddDepositAsset("ueth"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := pool.RemoveDepositAsset("ueth"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !pool.HasAvailableAsset("ueth") {
		t.Error("expected ueth to stay on the whitelist")
	}
}

// TestAssetBalanceAccounting tests credit and debit of pool asset balances
func TestAssetBalanceAccounting(t *testing.T) {
	pool := types.NewPool("Test", "tgen1manager", 0, 1700000000)

	pool.CreditAsset("ubtc", math.LegacyMustNewDecFromStr("2"))
	pool.CreditAsset("ubtc", math.LegacyMustNewDecFromStr("0.5"))
	if !pool.AssetBalance("ubtc").Equal(math.LegacyMustNewDecFromStr("2.5")) {
		t.Errorf("expected balance 2.5, got %s", pool.AssetBalance("ubtc").String())
	}

	if err := pool.DebitAsset("ubtc", math.LegacyMustNewDecFromStr("1.5")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !pool.AssetBalance("ubtc").Equal(math.LegacyOneDec()) {
		t.Errorf("expected balance 1, got %s", pool.AssetBalance("ubtc").String())
	}

	// Overdraft rejected
	if err := pool.DebitAsset("ubtc", math.LegacyMustNewDecFromStr("5")); err != types.ErrInsufficientBalance {
		t.Errorf("expected ErrInsufficientBalance, got %v", err)
	}

	// Unknown asset reads as zero
	if !pool.AssetBalance("unknown").IsZero() {
		t.Error("expected zero balance for unknown asset")
	}
}

// TestGenerateID tests record ID generation
func TestGenerateID(t *testing.T) {
	id1 := types.GenerateID("dep")
	id2 := types.GenerateID("dep")

	if id1 == id2 {
		t.Error("expected unique IDs")
	}
	if len(id1) <= 4 || id1[:4] != "dep-" {
		t.Errorf("expected dep- prefix, got %s", id1)
	}
}
