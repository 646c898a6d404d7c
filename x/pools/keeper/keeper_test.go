package keeper

import (
	"context"
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"

	assetstypes "github.com/Tradegen/protocol-v2/x/assets/types"
	"github.com/Tradegen/protocol-v2/x/pools/types"
	settingstypes "github.com/Tradegen/protocol-v2/x/settings/types"
)

type fakeAssets struct {
	prices map[string]math.LegacyDec
}

func (f fakeAssets) IsValidAsset(ctx sdk.Context, address string) bool {
	_, ok := f.prices[address]
	return ok
}

func (f fakeAssets) GetUSDPrice(ctx sdk.Context, address string) (math.LegacyDec, error) {
	price, ok := f.prices[address]
	if !ok {
		return math.LegacyZeroDec(), assetstypes.ErrAssetNotFound
	}
	return price, nil
}

func (f fakeAssets) GetStableCoinAddress(ctx sdk.Context) (string, error) {
	return "uusdc", nil
}

func (f fakeAssets) HasVerifier(ctx sdk.Context, address string) bool {
	return false
}

func (f fakeAssets) VerifyTransaction(ctx sdk.Context, target, action string, amount math.LegacyDec, sourceAsset string) ([]assetstypes.BalanceDelta, error) {
	return nil, assetstypes.ErrNoVerifier
}

type fakeSettings struct {
	values map[string]int64
}

func (f fakeSettings) GetInt(ctx sdk.Context, name string) int64 {
	return f.values[name]
}

type fakeBank struct{}

func (fakeBank) SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	return nil
}

func (fakeBank) SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	return nil
}

const testBlockTime = int64(1700000000)

func newTestKeeper(t *testing.T) (*Keeper, sdk.Context) {
	t.Helper()

	key := storetypes.NewKVStoreKey(types.StoreKey)
	tkey := storetypes.NewTransientStoreKey("transient_test")
	testCtx := testutil.DefaultContextWithDB(t, key, tkey)
	ctx := testCtx.Ctx.WithBlockTime(time.Unix(testBlockTime, 0))

	assets := fakeAssets{prices: map[string]math.LegacyDec{
		"uusdc": math.LegacyOneDec(),
		"uatom": math.LegacyNewDec(10),
	}}
	settings := fakeSettings{values: map[string]int64{
		settingstypes.MaximumPerformanceFee:                   3000,
		settingstypes.MaximumNumberOfPoolsPerUser:             2,
		settingstypes.MaximumNumberOfPositionsInPool:          7,
		settingstypes.MinimumTimeBetweenPerformanceFeeUpdates: 86400,
	}}

	k := NewKeeper(nil, key, assets, settings, fakeBank{}, "", log.NewNopLogger())
	return k, ctx
}

func newFundedPool(t *testing.T, k *Keeper, ctx sdk.Context, manager string) *types.Pool {
	t.Helper()

	pool, err := k.CreatePool(ctx, manager, "Alpha Fund", 1000)
	if err != nil {
		t.Fatalf("unexpected error creating pool: %v", err)
	}
	if err := k.AddAvailableAsset(ctx, manager, pool.PoolID, "uusdc"); err != nil {
		t.Fatalf("unexpected error whitelisting asset: %v", err)
	}
	if err := k.AddDepositAsset(ctx, manager, pool.PoolID, "uusdc"); err != nil {
		t.Fatalf("unexpected error enabling deposits: %v", err)
	}
	return pool
}

// TestDepositWithdrawRoundTrip tests share and cost-basis conservation
// through a deposit, a partial withdrawal and a full exit.
func TestDepositWithdrawRoundTrip(t *testing.T) {
	k, ctx := newTestKeeper(t)
	manager := sdk.AccAddress([]byte("manager_____________")).String()
	depositor := sdk.AccAddress([]byte("depositor___________")).String()

	pool := newFundedPool(t, k, ctx, manager)

	if _, err := k.Deposit(ctx, depositor, pool.PoolID, "uusdc", math.LegacyNewDec(100)); err != nil {
		t.Fatalf("unexpected error depositing: %v", err)
	}

	stored := k.GetPool(ctx, pool.PoolID)
	if !stored.TotalSupply.Equal(math.LegacyNewDec(100)) {
		t.Errorf("expected total supply 100, got %s", stored.TotalSupply.String())
	}
	if !stored.TotalDeposits.Equal(math.LegacyNewDec(100)) {
		t.Errorf("expected total deposits 100, got %s", stored.TotalDeposits.String())
	}
	if !k.GetBalance(ctx, pool.PoolID, depositor).Equal(math.LegacyNewDec(100)) {
		t.Errorf("expected balance 100, got %s", k.GetBalance(ctx, pool.PoolID, depositor).String())
	}

	// Partial withdrawal reduces cost-basis by the burned fraction
	rec, err := k.Withdraw(ctx, depositor, pool.PoolID, math.LegacyNewDec(40))
	if err != nil {
		t.Fatalf("unexpected error withdrawing: %v", err)
	}
	if !rec.AssetsOut["uusdc"].Equal(math.LegacyNewDec(40)) {
		t.Errorf("expected 40 uusdc out, got %s", rec.AssetsOut["uusdc"].String())
	}
	if !k.GetBalance(ctx, pool.PoolID, depositor).Equal(math.LegacyNewDec(60)) {
		t.Errorf("expected balance 60, got %s", k.GetBalance(ctx, pool.PoolID, depositor).String())
	}
	if !k.GetUserDeposit(ctx, pool.PoolID, depositor).Equal(math.LegacyNewDec(60)) {
		t.Errorf("expected cost-basis 60, got %s", k.GetUserDeposit(ctx, pool.PoolID, depositor).String())
	}

	// Full exit zeroes everything exactly
	if _, err := k.Withdraw(ctx, depositor, pool.PoolID, math.LegacyNewDec(60)); err != nil {
		t.Fatalf("unexpected error on full exit: %v", err)
	}
	if !k.GetBalance(ctx, pool.PoolID, depositor).IsZero() {
		t.Error("expected zero balance after full exit")
	}
	if !k.GetUserDeposit(ctx, pool.PoolID, depositor).IsZero() {
		t.Error("expected zero cost-basis after full exit")
	}
	stored = k.GetPool(ctx, pool.PoolID)
	if !stored.TotalSupply.IsZero() || !stored.TotalDeposits.IsZero() {
		t.Errorf("expected empty pool, got supply %s deposits %s",
			stored.TotalSupply.String(), stored.TotalDeposits.String())
	}
}

// TestWholeCoinBooking tests that the internal asset ledger books
// exactly the whole-coin amounts the bank moves, on both legs.
func TestWholeCoinBooking(t *testing.T) {
	k, ctx := newTestKeeper(t)
	manager := sdk.AccAddress([]byte("manager_____________")).String()
	depositor := sdk.AccAddress([]byte("depositor___________")).String()

	pool := newFundedPool(t, k, ctx, manager)

	// A fractional deposit is truncated before anything is booked
	rec, err := k.Deposit(ctx, depositor, pool.PoolID, "uusdc", math.LegacyMustNewDecFromStr("100.7"))
	if err != nil {
		t.Fatalf("unexpected error depositing: %v", err)
	}
	if !rec.Amount.Equal(math.LegacyNewDec(100)) {
		t.Errorf("expected booked amount 100, got %s", rec.Amount.String())
	}
	if !k.GetPool(ctx, pool.PoolID).AssetBalance("uusdc").Equal(math.LegacyNewDec(100)) {
		t.Errorf("expected pool balance 100, got %s", k.GetPool(ctx, pool.PoolID).AssetBalance("uusdc").String())
	}

	// A fractional redemption rounds down, leaving the dust in the pool
	wrec, err := k.Withdraw(ctx, depositor, pool.PoolID, math.LegacyMustNewDecFromStr("33.333333333333333333"))
	if err != nil {
		t.Fatalf("unexpected error withdrawing: %v", err)
	}
	if !wrec.AssetsOut["uusdc"].Equal(math.LegacyNewDec(33)) {
		t.Errorf("expected 33 uusdc out, got %s", wrec.AssetsOut["uusdc"].String())
	}
	if !k.GetPool(ctx, pool.PoolID).AssetBalance("uusdc").Equal(math.LegacyNewDec(67)) {
		t.Errorf("expected pool balance 67, got %s", k.GetPool(ctx, pool.PoolID).AssetBalance("uusdc").String())
	}
}

// TestDepositStampsBlockTime tests that stored timestamps come from the
// block header rather than the wall clock.
func TestDepositStampsBlockTime(t *testing.T) {
	k, ctx := newTestKeeper(t)
	manager := sdk.AccAddress([]byte("manager_____________")).String()
	depositor := sdk.AccAddress([]byte("depositor___________")).String()

	pool := newFundedPool(t, k, ctx, manager)

	rec, err := k.Deposit(ctx, depositor, pool.PoolID, "uusdc", math.LegacyNewDec(10))
	if err != nil {
		t.Fatalf("unexpected error depositing: %v", err)
	}
	if rec.DepositedAt != testBlockTime {
		t.Errorf("expected deposit stamped with block time %d, got %d", testBlockTime, rec.DepositedAt)
	}
	if k.GetPool(ctx, pool.PoolID).UpdatedAt != testBlockTime {
		t.Errorf("expected pool updated at block time %d, got %d", testBlockTime, k.GetPool(ctx, pool.PoolID).UpdatedAt)
	}
}

// TestSetPerformanceFeeRateLimit tests the fee update window against the
// block time.
func TestSetPerformanceFeeRateLimit(t *testing.T) {
	k, ctx := newTestKeeper(t)
	manager := sdk.AccAddress([]byte("manager_____________")).String()

	pool, err := k.CreatePool(ctx, manager, "Alpha Fund", 1000)
	if err != nil {
		t.Fatalf("unexpected error creating pool: %v", err)
	}

	if err := k.SetPerformanceFee(ctx, manager, pool.PoolID, 500); err != nil {
		t.Fatalf("unexpected error on first update: %v", err)
	}
	if k.GetPool(ctx, pool.PoolID).LastFeeUpdate != testBlockTime {
		t.Errorf("expected fee update stamped with block time %d, got %d",
			testBlockTime, k.GetPool(ctx, pool.PoolID).LastFeeUpdate)
	}

	// Same block: window not elapsed
	if err := k.SetPerformanceFee(ctx, manager, pool.PoolID, 600); err != types.ErrFeeUpdateTooSoon {
		t.Errorf("expected ErrFeeUpdateTooSoon, got %v", err)
	}

	// A block one window later passes regardless of the wall clock
	laterCtx := ctx.WithBlockTime(time.Unix(testBlockTime+86400, 0))
	if err := k.SetPerformanceFee(laterCtx, manager, pool.PoolID, 600); err != nil {
		t.Errorf("unexpected error after window elapsed: %v", err)
	}
	if k.GetPool(ctx, pool.PoolID).PerformanceFee != 600 {
		t.Errorf("expected fee 600, got %d", k.GetPool(ctx, pool.PoolID).PerformanceFee)
	}
}
