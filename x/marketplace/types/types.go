package types

import (
	"strings"

	"cosmossdk.io/math"
	"github.com/google/uuid"
)

// Module name and store key
const (
	ModuleName = "marketplace"
	StoreKey   = ModuleName
)

// Listing is an ask for capped pool tokens of a single class. Listings
// are keyed by a monotonically increasing index; at most one active
// listing exists per (seller, pool) pair.
type Listing struct {
	Index      uint64         `json:"index"`
	PoolID     string         `json:"pool_id"`
	Seller     string         `json:"seller"`
	Class      int            `json:"class"`
	Quantity   math.Int       `json:"quantity"`
	TokenPrice math.LegacyDec `json:"token_price"`
	Active     bool           `json:"active"`
	CreatedAt  int64          `json:"created_at"`
	UpdatedAt  int64          `json:"updated_at"`
}

// NewListing creates an active listing stamped with the block time
func NewListing(index uint64, poolID, seller string, class int, quantity math.Int, tokenPrice math.LegacyDec, now int64) *Listing {
	return &Listing{
		Index:      index,
		PoolID:     poolID,
		Seller:     seller,
		Class:      class,
		Quantity:   quantity,
		TokenPrice: tokenPrice,
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// FeeSplit is the routing of a purchase payment
type FeeSplit struct {
	ProtocolFee math.LegacyDec `json:"protocol_fee"`
	ManagerFee  math.LegacyDec `json:"manager_fee"`
	SellerNet   math.LegacyDec `json:"seller_net"`
}

// ComputeFeeSplit routes a gross payment into protocol fee, manager fee
// and seller proceeds. Fees are basis points of the gross amount; the
// seller takes the remainder so the three parts always sum exactly.
func ComputeFeeSplit(gross math.LegacyDec, protocolFeeBps, managerFeeBps int64) FeeSplit {
	protocolFee := gross.MulInt64(protocolFeeBps).QuoInt64(10000)
	managerFee := gross.MulInt64(managerFeeBps).QuoInt64(10000)
	return FeeSplit{
		ProtocolFee: protocolFee,
		ManagerFee:  managerFee,
		SellerNet:   gross.Sub(protocolFee).Sub(managerFee),
	}
}

// SaleRecord is an audit record of a completed purchase
type SaleRecord struct {
	SaleID       string         `json:"sale_id"`
	ListingIndex uint64         `json:"listing_index"`
	PoolID       string         `json:"pool_id"`
	Seller       string         `json:"seller"`
	Buyer        string         `json:"buyer"`
	Class        int            `json:"class"`
	Quantity     math.Int       `json:"quantity"`
	TokenPrice   math.LegacyDec `json:"token_price"`
	GrossPaid    math.LegacyDec `json:"gross_paid"`
	ProtocolFee  math.LegacyDec `json:"protocol_fee"`
	ManagerFee   math.LegacyDec `json:"manager_fee"`
	SoldAt       int64          `json:"sold_at"`
}

// GenerateID generates a unique ID with a prefix
func GenerateID(prefix string) string {
	return prefix + "-" + strings.Split(uuid.NewString(), "-")[0]
}
