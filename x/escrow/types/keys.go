package types

import (
	"math/big"

	"github.com/xssnick/tonutils-go/tlb"
)

const (
	ModuleName = "escrow"
	StoreKey   = ModuleName
	RouterKey  = ModuleName
)

// KeyContractState is the database key holding the BOC of the contract's
// root state cell.
var KeyContractState = []byte("escrow/state")

// Operation codes carried in the first 32 bits of inbound message bodies.
const (
	OpInitialize          uint64 = 1
	OpCompleteSwap        uint64 = 2
	OpRefundSwap          uint64 = 3
	OpDepositNotification uint64 = 4

	// Standard jetton wallet ops (TEP-74).
	OpTransferNotification uint64 = 0x7362d09c
	OpJettonTransfer       uint64 = 0xf8a7ea5
)

// DictKeySize is the key width of both state dictionaries: the primary swap
// table (keyed by swap id) and the hash-lock index.
const DictKeySize = 256

// Value accounting for the outbound jetton transfer. A Complete or Refund
// message must attach strictly more than MinTransferValue so the escrow can
// cover the forward allowance, gas on both wallet hops, the message fee and
// its own storage reserve.
var (
	ForwardTonAmount = tlb.MustFromTON("0.01")
	GasReserve       = tlb.MustFromTON("0.015")
	MessageFee       = tlb.MustFromTON("0.01")
	StorageReserve   = tlb.MustFromTON("0.01")
)

// MinTransferValue returns ForwardTonAmount + 2*GasReserve + MessageFee +
// StorageReserve in nanotons.
func MinTransferValue() *big.Int {
	min := new(big.Int).Set(ForwardTonAmount.Nano())
	min.Add(min, new(big.Int).Mul(GasReserve.Nano(), big.NewInt(2)))
	min.Add(min, MessageFee.Nano())
	min.Add(min, StorageReserve.Nano())
	return min
}
