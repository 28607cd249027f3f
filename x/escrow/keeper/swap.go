package keeper

import (
	"math/big"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	"github.com/xssnick/tonutils-go/address"
	"github.com/xssnick/tonutils-go/tvm/cell"

	"github.com/interchainx/tonswap/x/escrow/types"
)

// Initialize binds the escrow to a token wallet and latches the contract
// initialized. The latch is one-way: a second call fails regardless of
// input. Initialize loads and saves its own state so the latch check holds
// even before the router considers the contract live.
func (k Keeper) Initialize(ctx types.Context, tokenWallet *address.Address) error {
	st, err := k.LoadState()
	if err != nil {
		return err
	}
	if st.Initialized {
		return types.ErrAlreadyInitialized
	}

	st = types.NewContractState()
	st.InstanceID = ctx.Entropy
	st.TokenWallet = tokenWallet
	st.Initialized = true

	if err := k.SaveState(st); err != nil {
		return err
	}
	k.logger.Info("initialized", "instance_id", st.InstanceID, "token_wallet", tokenWallet.String())
	return nil
}

// DepositNotify records a new swap from an unwrapped deposit payload. The
// payload amount must match the amount the token wallet notified. The swap
// is stored under the current counter value and indexed by its hash lock;
// a reused hash lock overwrites the previous index entry.
//
// No check is made that the time lock lies in the future: a deposit may be
// created already refundable.
func (k Keeper) DepositNotify(ctx types.Context, st *types.ContractState, p types.DepositPayload, notified math.Int) error {
	if !p.Amount.Equal(notified) {
		return sdkerrors.Wrapf(types.ErrInvalidAmount, "payload %s, notified %s", p.Amount, notified)
	}

	id := new(big.Int).SetUint64(st.SwapCounter)
	rec := types.NewSwapRecord(p.Depositor, p.Recipient, p.Amount, p.HashLock, p.TimeLock)
	if err := setSwap(*st, id, rec); err != nil {
		return err
	}

	idx := cell.BeginCell()
	if err := idx.StoreUInt(st.SwapCounter, 64); err != nil {
		return err
	}
	if err := st.HashlockIndex.SetIntKey(p.HashLock, idx.EndCell()); err != nil {
		return err
	}

	st.SwapCounter++
	k.logger.Info("swap created", "id", id.String(), "amount", p.Amount.String(), "time_lock", p.TimeLock)
	return nil
}

// Complete releases a swap's tokens to its recipient against the revealed
// preimage. Completion is only permitted strictly before the time lock, the
// mirror of Refund's window.
func (k Keeper) Complete(ctx types.Context, st *types.ContractState, swapID, preimage *big.Int) error {
	rec, err := getSwap(*st, swapID)
	if err != nil {
		return err
	}
	if rec.Completed {
		return sdkerrors.Wrapf(types.ErrSwapCompleted, "swap %s", swapID)
	}
	if types.HashLockOf(preimage).Cmp(rec.HashLock) != 0 {
		return sdkerrors.Wrapf(types.ErrInvalidPreimage, "swap %s", swapID)
	}
	if ctx.Now >= rec.TimeLock {
		return sdkerrors.Wrapf(types.ErrTimelockExpired, "now %d, time lock %d", ctx.Now, rec.TimeLock)
	}

	rec.Completed = true
	if err := setSwap(*st, swapID, rec); err != nil {
		return err
	}
	if err := k.sendTokens(ctx, st.TokenWallet, rec.Recipient, rec.Amount); err != nil {
		return err
	}
	k.logger.Info("swap completed", "id", swapID.String(), "recipient", rec.Recipient.String())
	return nil
}

// Refund returns a swap's tokens to its initiator once the time lock has
// passed (current time at or after the lock).
func (k Keeper) Refund(ctx types.Context, st *types.ContractState, swapID *big.Int) error {
	rec, err := getSwap(*st, swapID)
	if err != nil {
		return err
	}
	if rec.Completed {
		return sdkerrors.Wrapf(types.ErrSwapAlreadyCompletedRefund, "swap %s", swapID)
	}
	if ctx.Now < rec.TimeLock {
		return sdkerrors.Wrapf(types.ErrTimelockNotExpired, "now %d, time lock %d", ctx.Now, rec.TimeLock)
	}

	rec.Completed = true
	if err := setSwap(*st, swapID, rec); err != nil {
		return err
	}
	if err := k.sendTokens(ctx, st.TokenWallet, rec.Initiator, rec.Amount); err != nil {
		return err
	}
	k.logger.Info("swap refunded", "id", swapID.String(), "initiator", rec.Initiator.String())
	return nil
}
