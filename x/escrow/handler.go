// Package escrow is the message-dispatch entry point of the HTLC escrow
// contract: it decodes inbound bodies, enforces the initialization latch and
// routes operations to the keeper.
package escrow

import (
	sdkerrors "cosmossdk.io/errors"
	"github.com/xssnick/tonutils-go/tvm/cell"

	"github.com/interchainx/tonswap/x/escrow/keeper"
	"github.com/interchainx/tonswap/x/escrow/types"
)

// Handler processes one inbound message body under the given invocation
// context. A nil error means the message's state changes were persisted; any
// error means nothing was.
type Handler func(ctx types.Context, body *cell.Cell) error

// NewHandler returns the contract's message router.
//
// Bodies shorter than an op code, and recognized-length bodies with an
// unknown op, are ignored without error so unrelated incoming messages
// (excesses, bounces of our own sends) don't bounce back and forth.
func NewHandler(k keeper.Keeper) Handler {
	return func(ctx types.Context, body *cell.Cell) error {
		s := body.BeginParse()
		if s.BitsLeft() < 32 {
			return nil
		}
		op, err := s.LoadUInt(32)
		if err != nil {
			return sdkerrors.Wrap(types.ErrInsufficientBits, err.Error())
		}

		// Initialize enforces its own latch and storage round trip.
		if op == types.OpInitialize {
			wallet, err := s.LoadAddr()
			if err != nil {
				return sdkerrors.Wrap(types.ErrInsufficientBits, err.Error())
			}
			return k.Initialize(ctx, wallet)
		}

		st, err := k.LoadState()
		if err != nil {
			return err
		}
		if !st.Initialized {
			return types.ErrNotInitialized
		}

		switch op {
		case types.OpCompleteSwap:
			swapID, err := s.LoadBigUInt(256)
			if err != nil {
				return sdkerrors.Wrap(types.ErrInsufficientBits, err.Error())
			}
			preimage, err := s.LoadBigUInt(256)
			if err != nil {
				return sdkerrors.Wrap(types.ErrInsufficientBits, err.Error())
			}
			if err := k.Complete(ctx, &st, swapID, preimage); err != nil {
				return err
			}

		case types.OpRefundSwap:
			swapID, err := s.LoadBigUInt(256)
			if err != nil {
				return sdkerrors.Wrap(types.ErrInsufficientBits, err.Error())
			}
			if err := k.Refund(ctx, &st, swapID); err != nil {
				return err
			}

		case types.OpTransferNotification:
			n, err := types.UnpackTransferNotification(s)
			if err != nil {
				return err
			}
			p, err := types.UnpackDepositPayload(n.Payload)
			if err != nil {
				return err
			}
			if err := k.DepositNotify(ctx, &st, p, n.Amount); err != nil {
				return err
			}

		default:
			// Unrelated op: deliberate no-op.
			return nil
		}

		return k.SaveState(st)
	}
}
