// Package types defines the escrow contract's data model, wire codec and
// error taxonomy.
package types

import (
	"crypto/sha256"
	"math/big"

	"cosmossdk.io/math"
	"github.com/xssnick/tonutils-go/address"
	"github.com/xssnick/tonutils-go/tlb"
	"github.com/xssnick/tonutils-go/tvm/cell"
)

// SwapRecord is one escrowed transfer. It is created by a deposit
// notification and mutated exactly once, by whichever of Complete or Refund
// succeeds first. Records are never deleted.
type SwapRecord struct {
	// Initiator is the depositor that funded the swap and the refund target.
	Initiator *address.Address

	// Recipient is the claimant the tokens are released to on Complete.
	Recipient *address.Address

	// Amount is the quantity of jettons locked.
	Amount math.Int

	// HashLock is the sha256 digest of the 32-byte big-endian preimage.
	HashLock *big.Int

	// TimeLock is the Unix timestamp at which the refund path opens. The
	// claim path is open strictly before it, so the two windows never
	// overlap.
	TimeLock uint64

	// Completed latches true once the swap has been claimed or refunded.
	Completed bool
}

// NewSwapRecord returns an open swap record.
func NewSwapRecord(initiator, recipient *address.Address, amount math.Int, hashLock *big.Int, timeLock uint64) SwapRecord {
	return SwapRecord{
		Initiator: initiator,
		Recipient: recipient,
		Amount:    amount,
		HashLock:  hashLock,
		TimeLock:  timeLock,
		Completed: false,
	}
}

// ContractState is the contract's entire persisted state, the content of the
// root state cell.
type ContractState struct {
	// InstanceID distinguishes otherwise-identical deployments for off-chain
	// tooling. Assigned once at initialization from transaction entropy.
	InstanceID uint32

	// TokenWallet is the jetton wallet the escrow is bound to.
	TokenWallet *address.Address

	// SwapCounter counts swaps ever created and is the id of the next one.
	SwapCounter uint64

	// Swaps is the primary table, swap id -> SwapRecord cell.
	Swaps *cell.Dictionary

	// HashlockIndex maps a hash lock to the id of the latest swap using it.
	// Reused hash locks overwrite the previous entry; the contract accepts
	// that narrow race rather than rejecting duplicate locks.
	HashlockIndex *cell.Dictionary

	// Initialized latches true once Initialize succeeds.
	Initialized bool
}

// NewContractState returns the pristine state a fresh deployment loads:
// uninitialized, empty tables, zero counter.
func NewContractState() ContractState {
	return ContractState{
		InstanceID:    0,
		TokenWallet:   address.NewAddressNone(),
		SwapCounter:   0,
		Swaps:         cell.NewDict(DictKeySize),
		HashlockIndex: cell.NewDict(DictKeySize),
		Initialized:   false,
	}
}

// Context carries the per-message host environment: the values the chain
// supplies to each invocation. Operations read these instead of ambient
// globals.
type Context struct {
	// Now is the current Unix time at execution.
	Now uint64

	// Value is the TON value attached to the inbound message, available to
	// pay for outbound forwarding, gas and storage.
	Value tlb.Coins

	// Entropy is the per-transaction pseudo-randomness used by Initialize
	// for the instance id. Not cryptographically significant.
	Entropy uint32
}

// HashLockOf returns the hash lock guarding preimage: the sha256 digest of
// its 32-byte big-endian encoding, as a 256-bit integer.
func HashLockOf(preimage *big.Int) *big.Int {
	var buf [32]byte
	preimage.FillBytes(buf[:])
	sum := sha256.Sum256(buf[:])
	return new(big.Int).SetBytes(sum[:])
}

// IsEmptyAddr reports whether addr is absent or addr_none.
func IsEmptyAddr(addr *address.Address) bool {
	return addr == nil || addr.Type() == address.NoneAddress
}
