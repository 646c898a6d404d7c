package keeper

import (
	"context"

	"cosmossdk.io/math"

	"github.com/Tradegen/protocol-v2/x/marketplace/types"
)

// MsgServer handles marketplace transactions
type MsgServer struct {
	keeper *Keeper
}

// NewMsgServerImpl creates a new MsgServer instance
func NewMsgServerImpl(keeper *Keeper) *MsgServer {
	return &MsgServer{keeper: keeper}
}

// CreateListing handles MsgCreateListing
func (s *MsgServer) CreateListing(ctx context.Context, msg *types.MsgCreateListing) (*types.MsgCreateListingResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	quantity, ok := math.NewIntFromString(msg.Quantity)
	if !ok {
		return nil, types.ErrInvalidQuantity
	}
	price, err := math.LegacyNewDecFromStr(msg.TokenPrice)
	if err != nil {
		return nil, types.ErrInvalidPrice
	}
	listing, err := s.keeper.CreateListing(ctx, msg.Seller, msg.PoolID, msg.Class, quantity, price)
	if err != nil {
		return nil, err
	}
	return &types.MsgCreateListingResponse{Index: listing.Index}, nil
}

// RemoveListing handles MsgRemoveListing
func (s *MsgServer) RemoveListing(ctx context.Context, msg *types.MsgRemoveListing) (*types.MsgRemoveListingResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := s.keeper.RemoveListing(ctx, msg.Seller, msg.Index); err != nil {
		return nil, err
	}
	return &types.MsgRemoveListingResponse{Index: msg.Index}, nil
}

// UpdatePrice handles MsgUpdatePrice
func (s *MsgServer) UpdatePrice(ctx context.Context, msg *types.MsgUpdatePrice) (*types.MsgUpdatePriceResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	price, err := math.LegacyNewDecFromStr(msg.NewPrice)
	if err != nil {
		return nil, types.ErrInvalidPrice
	}
	if err := s.keeper.UpdatePrice(ctx, msg.Seller, msg.Index, price); err != nil {
		return nil, err
	}
	return &types.MsgUpdatePriceResponse{Index: msg.Index}, nil
}

// Purchase handles MsgPurchase
func (s *MsgServer) Purchase(ctx context.Context, msg *types.MsgPurchase) (*types.MsgPurchaseResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	quantity, ok := math.NewIntFromString(msg.Quantity)
	if !ok {
		return nil, types.ErrInvalidQuantity
	}
	record, err := s.keeper.Purchase(ctx, msg.Buyer, msg.Index, quantity)
	if err != nil {
		return nil, err
	}
	return &types.MsgPurchaseResponse{
		SaleID:    record.SaleID,
		GrossPaid: record.GrossPaid.String(),
		SellerNet: record.GrossPaid.Sub(record.ProtocolFee).Sub(record.ManagerFee).String(),
	}, nil
}
