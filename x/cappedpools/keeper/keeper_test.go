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
	"github.com/Tradegen/protocol-v2/x/cappedpools/types"
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

const (
	testBlockTime     = int64(1700000000)
	testSnapAuthority = "tgen1snapshotauthority"
)

func newTestKeeper(t *testing.T) (*Keeper, sdk.Context) {
	t.Helper()

	key := storetypes.NewKVStoreKey(types.StoreKey)
	tkey := storetypes.NewTransientStoreKey("transient_test")
	testCtx := testutil.DefaultContextWithDB(t, key, tkey)
	ctx := testCtx.Ctx.WithBlockTime(time.Unix(testBlockTime, 0))

	assets := fakeAssets{prices: map[string]math.LegacyDec{
		"uusdc": math.LegacyOneDec(),
	}}
	settings := fakeSettings{values: map[string]int64{
		settingstypes.MaximumPerformanceFee:                   3000,
		settingstypes.MaximumNumberOfPoolsPerUser:             2,
		settingstypes.MaximumNumberOfPositionsInPool:          7,
		settingstypes.MinimumTimeBetweenPerformanceFeeUpdates: 86400,
		settingstypes.MinimumTimeBetweenSnapshots:             86400,
		settingstypes.MinimumNumberOfCappedPoolTokens:         100,
		settingstypes.MaximumNumberOfCappedPoolTokens:         1000000,
		settingstypes.MinimumCappedPoolSeedPrice:              1,
		settingstypes.MaximumCappedPoolSeedPrice:              1000,
	}}

	k := NewKeeper(nil, key, assets, settings, fakeBank{}, testSnapAuthority, log.NewNopLogger())
	return k, ctx
}

func newFundedCappedPool(t *testing.T, k *Keeper, ctx sdk.Context, manager, depositor string) *types.CappedPool {
	t.Helper()

	pool, err := k.CreateCappedPool(ctx, manager, "Capped Fund", math.NewInt(10000), math.LegacyOneDec(), 1000)
	if err != nil {
		t.Fatalf("unexpected error creating pool: %v", err)
	}
	if err := k.AddAvailableAsset(ctx, manager, pool.PoolID, "uusdc"); err != nil {
		t.Fatalf("unexpected error whitelisting asset: %v", err)
	}
	if err := k.AddDepositAsset(ctx, manager, pool.PoolID, "uusdc"); err != nil {
		t.Fatalf("unexpected error enabling deposits: %v", err)
	}
	if _, err := k.Deposit(ctx, depositor, pool.PoolID, "uusdc", math.NewInt(1000)); err != nil {
		t.Fatalf("unexpected error depositing: %v", err)
	}
	return pool
}

// TestWithdrawCutsCostBasisProportionally tests that burning part of a
// position reduces cost-basis by the burned fraction and that a full
// exit zeroes it exactly.
func TestWithdrawCutsCostBasisProportionally(t *testing.T) {
	k, ctx := newTestKeeper(t)
	manager := sdk.AccAddress([]byte("manager_____________")).String()
	depositor := sdk.AccAddress([]byte("depositor___________")).String()

	pool := newFundedCappedPool(t, k, ctx, manager, depositor)

	// 1000 tokens at seed price 1 fill the first two classes
	set := k.GetClassBalances(ctx, pool.PoolID, depositor)
	if !set[0].Equal(math.NewInt(500)) || !set[1].Equal(math.NewInt(500)) {
		t.Fatalf("expected class fill [500 500 0 0], got %v", set)
	}
	if !k.GetUserDeposit(ctx, pool.PoolID, depositor).Equal(math.LegacyNewDec(1000)) {
		t.Fatalf("expected cost-basis 1000, got %s", k.GetUserDeposit(ctx, pool.PoolID, depositor).String())
	}

	// Burning a quarter of the position moves a quarter of the basis
	rec, err := k.Withdraw(ctx, depositor, pool.PoolID, 0, math.NewInt(250))
	if err != nil {
		t.Fatalf("unexpected error withdrawing: %v", err)
	}
	if !rec.AssetsOut["uusdc"].Equal(math.LegacyNewDec(250)) {
		t.Errorf("expected 250 uusdc out, got %s", rec.AssetsOut["uusdc"].String())
	}
	if !k.GetUserDeposit(ctx, pool.PoolID, depositor).Equal(math.LegacyNewDec(750)) {
		t.Errorf("expected cost-basis 750, got %s", k.GetUserDeposit(ctx, pool.PoolID, depositor).String())
	}
	stored := k.GetPool(ctx, pool.PoolID)
	if !stored.TotalDeposits.Equal(math.LegacyNewDec(750)) {
		t.Errorf("expected total deposits 750, got %s", stored.TotalDeposits.String())
	}
	if !stored.TotalSupply.Equal(math.NewInt(750)) {
		t.Errorf("expected total supply 750, got %s", stored.TotalSupply.String())
	}

	// Full exit across the remaining classes zeroes the basis exactly
	if _, err := k.Withdraw(ctx, depositor, pool.PoolID, 0, math.NewInt(250)); err != nil {
		t.Fatalf("unexpected error withdrawing: %v", err)
	}
	if _, err := k.Withdraw(ctx, depositor, pool.PoolID, 1, math.NewInt(500)); err != nil {
		t.Fatalf("unexpected error withdrawing: %v", err)
	}
	if !k.GetUserDeposit(ctx, pool.PoolID, depositor).IsZero() {
		t.Error("expected zero cost-basis after full exit")
	}
	stored = k.GetPool(ctx, pool.PoolID)
	if !stored.TotalDeposits.IsZero() || !stored.TotalSupply.IsZero() {
		t.Errorf("expected empty pool, got deposits %s supply %s",
			stored.TotalDeposits.String(), stored.TotalSupply.String())
	}
}

// TestTransferMovesCostBasis tests that a transfer carries the moved
// fraction of the sender's basis without changing pool totals.
func TestTransferMovesCostBasis(t *testing.T) {
	k, ctx := newTestKeeper(t)
	manager := sdk.AccAddress([]byte("manager_____________")).String()
	sender := sdk.AccAddress([]byte("sender______________")).String()
	receiver := sdk.AccAddress([]byte("receiver____________")).String()

	pool := newFundedCappedPool(t, k, ctx, manager, sender)

	if err := k.TransferTokens(ctx, sender, receiver, pool.PoolID, 0, math.NewInt(400)); err != nil {
		t.Fatalf("unexpected error transferring: %v", err)
	}

	if !k.GetUserDeposit(ctx, pool.PoolID, sender).Equal(math.LegacyNewDec(600)) {
		t.Errorf("expected sender basis 600, got %s", k.GetUserDeposit(ctx, pool.PoolID, sender).String())
	}
	if !k.GetUserDeposit(ctx, pool.PoolID, receiver).Equal(math.LegacyNewDec(400)) {
		t.Errorf("expected receiver basis 400, got %s", k.GetUserDeposit(ctx, pool.PoolID, receiver).String())
	}
	if !k.GetClassBalances(ctx, pool.PoolID, sender)[0].Equal(math.NewInt(100)) {
		t.Errorf("expected sender class 1 balance 100, got %s", k.GetClassBalances(ctx, pool.PoolID, sender)[0].String())
	}
	if !k.GetClassBalances(ctx, pool.PoolID, receiver)[0].Equal(math.NewInt(400)) {
		t.Errorf("expected receiver class 1 balance 400, got %s", k.GetClassBalances(ctx, pool.PoolID, receiver)[0].String())
	}

	// Pool totals are untouched by a transfer
	stored := k.GetPool(ctx, pool.PoolID)
	if !stored.TotalDeposits.Equal(math.LegacyNewDec(1000)) {
		t.Errorf("expected total deposits 1000, got %s", stored.TotalDeposits.String())
	}
	if !stored.TotalSupply.Equal(math.NewInt(1000)) {
		t.Errorf("expected total supply 1000, got %s", stored.TotalSupply.String())
	}

	// Sending the rest drains the sender's basis completely
	if err := k.TransferTokens(ctx, sender, receiver, pool.PoolID, 0, math.NewInt(100)); err != nil {
		t.Fatalf("unexpected error transferring: %v", err)
	}
	if err := k.TransferTokens(ctx, sender, receiver, pool.PoolID, 1, math.NewInt(500)); err != nil {
		t.Fatalf("unexpected error transferring: %v", err)
	}
	if !k.GetUserDeposit(ctx, pool.PoolID, sender).IsZero() {
		t.Error("expected zero sender basis after sending everything")
	}
	if !k.GetUserDeposit(ctx, pool.PoolID, receiver).Equal(math.LegacyNewDec(1000)) {
		t.Errorf("expected receiver basis 1000, got %s", k.GetUserDeposit(ctx, pool.PoolID, receiver).String())
	}
}

// TestSnapshotWindowUsesBlockTime tests that the snapshot gate reads the
// block header time, not the validator's clock.
func TestSnapshotWindowUsesBlockTime(t *testing.T) {
	k, ctx := newTestKeeper(t)
	manager := sdk.AccAddress([]byte("manager_____________")).String()
	depositor := sdk.AccAddress([]byte("depositor___________")).String()

	pool := newFundedCappedPool(t, k, ctx, manager, depositor)

	// First snapshot is exempt from the window and stamped with block time
	rec, err := k.TakeSnapshot(ctx, testSnapAuthority, pool.PoolID)
	if err != nil {
		t.Fatalf("unexpected error on first snapshot: %v", err)
	}
	if rec.TakenAt != testBlockTime {
		t.Errorf("expected snapshot stamped with block time %d, got %d", testBlockTime, rec.TakenAt)
	}
	if k.GetPool(ctx, pool.PoolID).SnapshotTime != testBlockTime {
		t.Errorf("expected snapshot time %d, got %d", testBlockTime, k.GetPool(ctx, pool.PoolID).SnapshotTime)
	}

	// A block shortly after stays inside the window
	soonCtx := ctx.WithBlockTime(time.Unix(testBlockTime+100, 0))
	if _, err := k.TakeSnapshot(soonCtx, testSnapAuthority, pool.PoolID); err != types.ErrTooSoon {
		t.Errorf("expected ErrTooSoon, got %v", err)
	}

	// A block three days later clears the 24h window
	laterCtx := ctx.WithBlockTime(time.Unix(testBlockTime+3*86400, 0))
	rec, err = k.TakeSnapshot(laterCtx, testSnapAuthority, pool.PoolID)
	if err != nil {
		t.Fatalf("expected snapshot allowed after window, got %v", err)
	}
	if rec.TakenAt != testBlockTime+3*86400 {
		t.Errorf("expected snapshot stamped with advanced block time, got %d", rec.TakenAt)
	}
}
