package keeper

import (
	"math/big"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	"github.com/xssnick/tonutils-go/address"
	"github.com/xssnick/tonutils-go/tlb"
	"github.com/xssnick/tonutils-go/tvm/cell"

	"github.com/interchainx/tonswap/x/escrow/types"
)

// sendTokens asks the bound jetton wallet to release amount to dest. The
// triggering message's attached value pays for the transfer: it must exceed
// the forward allowance plus both gas reserves, the message fee and the
// storage reserve. dest doubles as the transfer's response destination so
// excess value returns to it.
func (k Keeper) sendTokens(ctx types.Context, wallet, dest *address.Address, amount math.Int) error {
	if ctx.Value.Nano().Cmp(types.MinTransferValue()) <= 0 {
		return sdkerrors.Wrapf(types.ErrInsufficientValue, "attached %s, minimum %s", ctx.Value.Nano(), types.MinTransferValue())
	}
	if types.IsEmptyAddr(dest) {
		return types.ErrEmptyTarget
	}
	if !amount.IsPositive() {
		return sdkerrors.Wrapf(types.ErrInvalidAmount, "transfer amount %s", amount)
	}
	if types.IsEmptyAddr(wallet) {
		return types.ErrEmptyWallet
	}

	body, err := buildTransferBody(dest, amount)
	if err != nil {
		return sdkerrors.Wrap(types.ErrBodyBuild, err.Error())
	}

	// Forward the attached value minus the message fee, the classic
	// carry-remainder send of the original contract.
	carried := new(big.Int).Sub(ctx.Value.Nano(), types.MessageFee.Nano())
	msg := &tlb.InternalMessage{
		IHRDisabled: true,
		Bounce:      true,
		DstAddr:     wallet,
		Amount:      tlb.FromNanoTON(carried),
		IHRFee:      tlb.FromNanoTONU(0),
		FwdFee:      tlb.FromNanoTONU(0),
		Body:        body,
	}
	if _, err := tlb.ToCell(msg); err != nil {
		return sdkerrors.Wrap(types.ErrMsgBuild, err.Error())
	}
	if err := k.sender.Send(msg); err != nil {
		return sdkerrors.Wrap(types.ErrSendFailed, err.Error())
	}
	return nil
}

// buildTransferBody encodes the standard jetton transfer (TEP-74):
//
//	op=transfer(32) query_id(64) amount(coins) destination(addr)
//	response_destination(addr) custom_payload(maybe) forward_ton(coins)
//	forward_payload(either)
func buildTransferBody(dest *address.Address, amount math.Int) (*cell.Cell, error) {
	b := cell.BeginCell()
	if err := b.StoreUInt(types.OpJettonTransfer, 32); err != nil {
		return nil, err
	}
	if err := b.StoreUInt(0, 64); err != nil {
		return nil, err
	}
	if err := b.StoreBigCoins(amount.BigInt()); err != nil {
		return nil, err
	}
	if err := b.StoreAddr(dest); err != nil {
		return nil, err
	}
	if err := b.StoreAddr(dest); err != nil {
		return nil, err
	}
	// no custom payload
	if err := b.StoreBoolBit(false); err != nil {
		return nil, err
	}
	if err := b.StoreBigCoins(types.ForwardTonAmount.Nano()); err != nil {
		return nil, err
	}
	// empty inline forward payload
	if err := b.StoreBoolBit(false); err != nil {
		return nil, err
	}
	return b.EndCell(), nil
}
