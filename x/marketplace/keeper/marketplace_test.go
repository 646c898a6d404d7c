package keeper

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/Tradegen/protocol-v2/x/marketplace/types"
)

// TestComputeFeeSplit tests the purchase payment routing
func TestComputeFeeSplit(t *testing.T) {
	testCases := []struct {
		name             string
		gross            math.LegacyDec
		protocolBps      int64
		managerBps       int64
		expectedProtocol math.LegacyDec
		expectedManager  math.LegacyDec
		expectedNet      math.LegacyDec
	}{
		{
			name:             "1 percent protocol and 2 percent manager",
			gross:            math.LegacyMustNewDecFromStr("10"),
			protocolBps:      100,
			managerBps:       200,
			expectedProtocol: math.LegacyMustNewDecFromStr("0.1"),
			expectedManager:  math.LegacyMustNewDecFromStr("0.2"),
			expectedNet:      math.LegacyMustNewDecFromStr("9.7"),
		},
		{
			name:             "zero fees pass the full amount",
			gross:            math.LegacyMustNewDecFromStr("50"),
			protocolBps:      0,
			managerBps:       0,
			expectedProtocol: math.LegacyZeroDec(),
			expectedManager:  math.LegacyZeroDec(),
			expectedNet:      math.LegacyMustNewDecFromStr("50"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			split := types.ComputeFeeSplit(tc.gross, tc.protocolBps, tc.managerBps)

			if !split.ProtocolFee.Equal(tc.expectedProtocol) {
				t.Errorf("protocol fee: expected %s, got %s", tc.expectedProtocol.String(), split.ProtocolFee.String())
			}
			if !split.ManagerFee.Equal(tc.expectedManager) {
				t.Errorf("manager fee: expected %s, got %s", tc.expectedManager.String(), split.ManagerFee.String())
			}
			if !split.SellerNet.Equal(tc.expectedNet) {
				t.Errorf("seller net: expected %s, got %s", tc.expectedNet.String(), split.SellerNet.String())
			}

			// The three legs always reassemble the gross payment
			sum := split.ProtocolFee.Add(split.ManagerFee).Add(split.SellerNet)
			if !sum.Equal(tc.gross) {
				t.Errorf("fee legs sum to %s, expected %s", sum.String(), tc.gross.String())
			}
		})
	}
}

// TestAskBookOrdering tests the price-ordered listing index
func TestAskBookOrdering(t *testing.T) {
	book := newAskBook()

	book.Insert("pool-1", math.LegacyMustNewDecFromStr("12"), 3)
	book.Insert("pool-1", math.LegacyMustNewDecFromStr("10"), 1)
	book.Insert("pool-1", math.LegacyMustNewDecFromStr("11"), 2)
	book.Insert("pool-2", math.LegacyMustNewDecFromStr("5"), 4)

	best, ok := book.Best("pool-1")
	if !ok || best != 1 {
		t.Errorf("expected best ask index 1, got %d (ok=%v)", best, ok)
	}
	if book.Len("pool-1") != 3 {
		t.Errorf("expected 3 listings for pool-1, got %d", book.Len("pool-1"))
	}

	// Pools are independent books
	best, ok = book.Best("pool-2")
	if !ok || best != 4 {
		t.Errorf("expected best ask index 4 for pool-2, got %d", best)
	}

	// Removing the best ask surfaces the next one
	book.Remove("pool-1", math.LegacyMustNewDecFromStr("10"), 1)
	best, ok = book.Best("pool-1")
	if !ok || best != 2 {
		t.Errorf("expected best ask index 2 after removal, got %d", best)
	}

	if _, ok := book.Best("pool-3"); ok {
		t.Error("expected no best ask for unknown pool")
	}
}

// TestAskBookPriceTies tests that equal prices resolve by listing index
func TestAskBookPriceTies(t *testing.T) {
	book := newAskBook()
	price := math.LegacyMustNewDecFromStr("10")

	book.Insert("pool-1", price, 7)
	book.Insert("pool-1", price, 2)

	best, ok := book.Best("pool-1")
	if !ok || best != 2 {
		t.Errorf("expected earlier listing to win the tie, got %d", best)
	}

	// Both entries survive despite the shared price
	if book.Len("pool-1") != 2 {
		t.Errorf("expected 2 listings at the same price, got %d", book.Len("pool-1"))
	}
}

// TestNewListing tests listing construction
func TestNewListing(t *testing.T) {
	listing := types.NewListing(5, "pool-1", "tgen1seller", 0, math.NewInt(10), math.LegacyMustNewDecFromStr("10"), 1700000000)

	if listing.Index != 5 {
		t.Errorf("expected index 5, got %d", listing.Index)
	}
	if listing.CreatedAt != 1700000000 {
		t.Errorf("expected created at 1700000000, got %d", listing.CreatedAt)
	}
	if !listing.Active {
		t.Error("expected new listing to be active")
	}
	if !listing.Quantity.Equal(math.NewInt(10)) {
		t.Errorf("expected quantity 10, got %s", listing.Quantity.String())
	}
}
