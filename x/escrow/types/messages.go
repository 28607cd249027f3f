package types

import (
	"math/big"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	"github.com/xssnick/tonutils-go/address"
	"github.com/xssnick/tonutils-go/tvm/cell"
)

// Client-side constructors for every inbound message body the contract
// accepts. Tests and the CLI drive the contract through these so the exact
// wire encodings stay exercised.

// NewInitializeBody builds `op=INITIALIZE(32) | tokenWallet(addr)`.
func NewInitializeBody(tokenWallet *address.Address) (*cell.Cell, error) {
	if IsEmptyAddr(tokenWallet) {
		return nil, sdkerrors.Wrap(ErrEmptyWallet, "initialize requires a token wallet")
	}
	b := cell.BeginCell()
	if err := b.StoreUInt(OpInitialize, 32); err != nil {
		return nil, err
	}
	if err := b.StoreAddr(tokenWallet); err != nil {
		return nil, err
	}
	return b.EndCell(), nil
}

// NewCompleteBody builds `op=COMPLETE_SWAP(32) | swapId(256) | preimage(256)`.
func NewCompleteBody(swapID, preimage *big.Int) (*cell.Cell, error) {
	b := cell.BeginCell()
	if err := b.StoreUInt(OpCompleteSwap, 32); err != nil {
		return nil, err
	}
	if err := b.StoreBigUInt(swapID, 256); err != nil {
		return nil, err
	}
	if err := b.StoreBigUInt(preimage, 256); err != nil {
		return nil, err
	}
	return b.EndCell(), nil
}

// NewRefundBody builds `op=REFUND_SWAP(32) | swapId(256)`.
func NewRefundBody(swapID *big.Int) (*cell.Cell, error) {
	b := cell.BeginCell()
	if err := b.StoreUInt(OpRefundSwap, 32); err != nil {
		return nil, err
	}
	if err := b.StoreBigUInt(swapID, 256); err != nil {
		return nil, err
	}
	return b.EndCell(), nil
}

// NewDepositPayload builds the forward payload a depositor attaches to its
// jetton transfer:
//
//	op=DEPOSIT_NOTIFICATION(32) | amount(128) | depositor(addr)
//	  ref{ recipient(addr) }
//	  ref{ hashLock(256) | timeLock(64) }
func NewDepositPayload(p DepositPayload) (*cell.Cell, error) {
	if !p.Amount.IsPositive() {
		return nil, sdkerrors.Wrap(ErrInvalidAmount, "deposit amount must be positive")
	}
	recipient := cell.BeginCell()
	if err := recipient.StoreAddr(p.Recipient); err != nil {
		return nil, err
	}
	locks := cell.BeginCell()
	if err := locks.StoreBigUInt(p.HashLock, 256); err != nil {
		return nil, err
	}
	if err := locks.StoreUInt(p.TimeLock, 64); err != nil {
		return nil, err
	}

	b := cell.BeginCell()
	if err := b.StoreUInt(OpDepositNotification, 32); err != nil {
		return nil, err
	}
	if err := b.StoreBigUInt(p.Amount.BigInt(), 128); err != nil {
		return nil, err
	}
	if err := b.StoreAddr(p.Depositor); err != nil {
		return nil, err
	}
	if err := b.StoreRef(recipient.EndCell()); err != nil {
		return nil, err
	}
	if err := b.StoreRef(locks.EndCell()); err != nil {
		return nil, err
	}
	return b.EndCell(), nil
}

// NewTransferNotificationBody builds the full transfer_notification envelope
// a jetton wallet would deliver. inline selects the forward payload shape:
// embedded in the body, or carried as a referenced cell.
func NewTransferNotificationBody(queryID uint64, amount math.Int, sender *address.Address, payload *cell.Cell, inline bool) (*cell.Cell, error) {
	b := cell.BeginCell()
	if err := b.StoreUInt(OpTransferNotification, 32); err != nil {
		return nil, err
	}
	if err := b.StoreUInt(queryID, 64); err != nil {
		return nil, err
	}
	if err := b.StoreBigCoins(amount.BigInt()); err != nil {
		return nil, err
	}
	if err := b.StoreAddr(sender); err != nil {
		return nil, err
	}
	if inline {
		if err := b.StoreBoolBit(false); err != nil {
			return nil, err
		}
		if err := b.StoreBuilder(payload.ToBuilder()); err != nil {
			return nil, err
		}
	} else {
		if err := b.StoreBoolBit(true); err != nil {
			return nil, err
		}
		if err := b.StoreRef(payload); err != nil {
			return nil, err
		}
	}
	return b.EndCell(), nil
}
