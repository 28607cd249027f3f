package types

import (
	"math/big"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	"github.com/xssnick/tonutils-go/address"
	"github.com/xssnick/tonutils-go/tvm/cell"
)

// Swap record cell layout:
//
//	initiator(addr) recipient(addr) amount(128) hashLock(256) timeLock(64) completed(1)
//
// Root state cell layout:
//
//	instanceId(32) tokenWallet(addr) swapCounter(64) swaps(dict) hashlockIndex(dict) initialized(1)

// PackSwapRecord serializes a swap record into a cell.
func PackSwapRecord(r SwapRecord) (*cell.Cell, error) {
	b := cell.BeginCell()
	if err := b.StoreAddr(r.Initiator); err != nil {
		return nil, err
	}
	if err := b.StoreAddr(r.Recipient); err != nil {
		return nil, err
	}
	if err := b.StoreBigUInt(r.Amount.BigInt(), 128); err != nil {
		return nil, err
	}
	if err := b.StoreBigUInt(r.HashLock, 256); err != nil {
		return nil, err
	}
	if err := b.StoreUInt(r.TimeLock, 64); err != nil {
		return nil, err
	}
	if err := b.StoreBoolBit(r.Completed); err != nil {
		return nil, err
	}
	return b.EndCell(), nil
}

// PackSwapLeaf builds the swap-table dictionary value: a leaf referencing
// the record cell. A record is 983 bits, so inlining it after the leaf's
// key label would overflow the 1023-bit cell limit for most keys; the
// reference keeps leaf size independent of record size.
func PackSwapLeaf(r SwapRecord) (*cell.Cell, error) {
	rec, err := PackSwapRecord(r)
	if err != nil {
		return nil, err
	}
	b := cell.BeginCell()
	if err := b.StoreRef(rec); err != nil {
		return nil, err
	}
	return b.EndCell(), nil
}

// UnpackSwapLeaf resolves the record referenced by a swap-table leaf.
func UnpackSwapLeaf(v *cell.Cell) (SwapRecord, error) {
	ref, err := v.BeginParse().LoadRef()
	if err != nil {
		return SwapRecord{}, sdkerrors.Wrap(ErrInsufficientBits, err.Error())
	}
	return UnpackSwapRecord(ref)
}

// UnpackSwapRecord parses a swap record from s.
func UnpackSwapRecord(s *cell.Slice) (SwapRecord, error) {
	var r SwapRecord
	var err error
	if r.Initiator, err = s.LoadAddr(); err != nil {
		return SwapRecord{}, sdkerrors.Wrap(ErrInsufficientBits, err.Error())
	}
	if r.Recipient, err = s.LoadAddr(); err != nil {
		return SwapRecord{}, sdkerrors.Wrap(ErrInsufficientBits, err.Error())
	}
	amount, err := s.LoadBigUInt(128)
	if err != nil {
		return SwapRecord{}, sdkerrors.Wrap(ErrInsufficientBits, err.Error())
	}
	r.Amount = math.NewIntFromBigInt(amount)
	if r.HashLock, err = s.LoadBigUInt(256); err != nil {
		return SwapRecord{}, sdkerrors.Wrap(ErrInsufficientBits, err.Error())
	}
	if r.TimeLock, err = s.LoadUInt(64); err != nil {
		return SwapRecord{}, sdkerrors.Wrap(ErrInsufficientBits, err.Error())
	}
	if r.Completed, err = s.LoadBoolBit(); err != nil {
		return SwapRecord{}, sdkerrors.Wrap(ErrInsufficientBits, err.Error())
	}
	return r, nil
}

// PackState serializes the full contract state into the root cell. This is
// also the cell a deployer ships as the contract's initial data.
func PackState(st ContractState) (*cell.Cell, error) {
	b := cell.BeginCell()
	if err := b.StoreUInt(uint64(st.InstanceID), 32); err != nil {
		return nil, err
	}
	if err := b.StoreAddr(st.TokenWallet); err != nil {
		return nil, err
	}
	if err := b.StoreUInt(st.SwapCounter, 64); err != nil {
		return nil, err
	}
	if err := b.StoreDict(st.Swaps); err != nil {
		return nil, err
	}
	if err := b.StoreDict(st.HashlockIndex); err != nil {
		return nil, err
	}
	if err := b.StoreBoolBit(st.Initialized); err != nil {
		return nil, err
	}
	return b.EndCell(), nil
}

// UnpackState parses the root state cell.
func UnpackState(c *cell.Cell) (ContractState, error) {
	s := c.BeginParse()
	var st ContractState
	id, err := s.LoadUInt(32)
	if err != nil {
		return ContractState{}, sdkerrors.Wrap(ErrInsufficientBits, err.Error())
	}
	st.InstanceID = uint32(id)
	if st.TokenWallet, err = s.LoadAddr(); err != nil {
		return ContractState{}, sdkerrors.Wrap(ErrInsufficientBits, err.Error())
	}
	if st.SwapCounter, err = s.LoadUInt(64); err != nil {
		return ContractState{}, sdkerrors.Wrap(ErrInsufficientBits, err.Error())
	}
	if st.Swaps, err = s.LoadDict(DictKeySize); err != nil {
		return ContractState{}, sdkerrors.Wrap(ErrInsufficientBits, err.Error())
	}
	if st.HashlockIndex, err = s.LoadDict(DictKeySize); err != nil {
		return ContractState{}, sdkerrors.Wrap(ErrInsufficientBits, err.Error())
	}
	if st.Initialized, err = s.LoadBoolBit(); err != nil {
		return ContractState{}, sdkerrors.Wrap(ErrInsufficientBits, err.Error())
	}
	return st, nil
}

// TransferNotification is the decoded jetton transfer_notification envelope,
// minus the already-consumed op code.
type TransferNotification struct {
	QueryID uint64

	// Amount is the jetton amount the wallet reports as received.
	Amount math.Int

	// Sender is the jetton-level sender of the transfer.
	Sender *address.Address

	// Payload is the forward payload, already resolved through the
	// inline-or-referenced discriminator.
	Payload *cell.Slice
}

// UnpackTransferNotification decodes the envelope from s. The forward
// payload is an either type: a leading 0 bit means it continues inline, a 1
// bit means it sits in a referenced cell.
func UnpackTransferNotification(s *cell.Slice) (TransferNotification, error) {
	var n TransferNotification
	var err error
	if n.QueryID, err = s.LoadUInt(64); err != nil {
		return TransferNotification{}, sdkerrors.Wrap(ErrInsufficientBits, err.Error())
	}
	amount, err := s.LoadBigCoins()
	if err != nil {
		return TransferNotification{}, sdkerrors.Wrap(ErrInsufficientBits, err.Error())
	}
	n.Amount = math.NewIntFromBigInt(amount)
	if n.Sender, err = s.LoadAddr(); err != nil {
		return TransferNotification{}, sdkerrors.Wrap(ErrInsufficientBits, err.Error())
	}
	inRef, err := s.LoadBoolBit()
	if err != nil {
		return TransferNotification{}, sdkerrors.Wrap(ErrInsufficientBits, err.Error())
	}
	if inRef {
		if n.Payload, err = s.LoadRef(); err != nil {
			return TransferNotification{}, sdkerrors.Wrap(ErrInsufficientBits, err.Error())
		}
	} else {
		n.Payload = s
	}
	return n, nil
}

// DepositPayload is the escrow's own protocol message carried in a transfer
// notification's forward payload.
type DepositPayload struct {
	Amount    math.Int
	Depositor *address.Address
	Recipient *address.Address
	HashLock  *big.Int
	TimeLock  uint64
}

// UnpackDepositPayload validates and decodes the forward payload: it must
// carry at least a 32-bit op equal to OpDepositNotification, the fixed
// fields, and two references (recipient, then hashLock+timeLock).
func UnpackDepositPayload(s *cell.Slice) (DepositPayload, error) {
	if s.BitsLeft() < 32 {
		return DepositPayload{}, sdkerrors.Wrapf(ErrInsufficientBits, "forward payload carries %d bits", s.BitsLeft())
	}
	op, err := s.LoadUInt(32)
	if err != nil {
		return DepositPayload{}, sdkerrors.Wrap(ErrInsufficientBits, err.Error())
	}
	if op != OpDepositNotification {
		return DepositPayload{}, sdkerrors.Wrapf(ErrInvalidForwardOp, "op 0x%x", op)
	}

	var p DepositPayload
	amount, err := s.LoadBigUInt(128)
	if err != nil {
		return DepositPayload{}, sdkerrors.Wrap(ErrInsufficientBits, err.Error())
	}
	p.Amount = math.NewIntFromBigInt(amount)
	if p.Depositor, err = s.LoadAddr(); err != nil {
		return DepositPayload{}, sdkerrors.Wrap(ErrInsufficientBits, err.Error())
	}

	recipientRef, err := s.LoadRef()
	if err != nil {
		return DepositPayload{}, sdkerrors.Wrap(ErrNoRefs, err.Error())
	}
	locksRef, err := s.LoadRef()
	if err != nil {
		return DepositPayload{}, sdkerrors.Wrap(ErrNoRefs, err.Error())
	}
	if p.Recipient, err = recipientRef.LoadAddr(); err != nil {
		return DepositPayload{}, sdkerrors.Wrap(ErrInsufficientBits, err.Error())
	}
	if p.HashLock, err = locksRef.LoadBigUInt(256); err != nil {
		return DepositPayload{}, sdkerrors.Wrap(ErrInsufficientBits, err.Error())
	}
	if p.TimeLock, err = locksRef.LoadUInt(64); err != nil {
		return DepositPayload{}, sdkerrors.Wrap(ErrInsufficientBits, err.Error())
	}
	return p, nil
}
