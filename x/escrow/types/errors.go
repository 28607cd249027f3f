package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// The registered code of each error is the exit code reported on the bounce
// of the message that failed. Off-chain callers match on the code alone;
// there is no structured error payload.
var (
	ErrNotInitialized     = sdkerrors.Register(ModuleName, 101, "contract not initialized")
	ErrAlreadyInitialized = sdkerrors.Register(ModuleName, 102, "contract already initialized")
	ErrSwapNotFound       = sdkerrors.Register(ModuleName, 103, "swap not found")
	ErrInvalidPreimage    = sdkerrors.Register(ModuleName, 104, "invalid preimage")
	ErrSwapCompleted      = sdkerrors.Register(ModuleName, 105, "swap already completed")
	ErrTimelockExpired    = sdkerrors.Register(ModuleName, 106, "timelock expired")
	ErrTimelockNotExpired = sdkerrors.Register(ModuleName, 107, "timelock not expired")

	// ErrSwapAlreadyCompletedRefund is the refund-path counterpart of
	// ErrSwapCompleted, kept distinct so callers can tell which path they
	// raced against.
	ErrSwapAlreadyCompletedRefund = sdkerrors.Register(ModuleName, 108, "swap already completed, refund rejected")

	ErrInvalidAmount    = sdkerrors.Register(ModuleName, 109, "invalid amount")
	ErrNoRefs           = sdkerrors.Register(ModuleName, 110, "deposit payload missing references")
	ErrInvalidForwardOp = sdkerrors.Register(ModuleName, 111, "unexpected forward payload op")
	ErrInsufficientBits = sdkerrors.Register(ModuleName, 112, "payload too short")

	// Outbound transfer construction.
	ErrInsufficientValue = sdkerrors.Register(ModuleName, 113, "attached value below transfer minimum")
	ErrEmptyTarget       = sdkerrors.Register(ModuleName, 114, "transfer target address is empty")
	ErrEmptyWallet       = sdkerrors.Register(ModuleName, 115, "token wallet address is empty")
	ErrMsgBuild          = sdkerrors.Register(ModuleName, 116, "failed to build transfer message")
	ErrBodyBuild         = sdkerrors.Register(ModuleName, 117, "failed to build transfer body")
	ErrSendFailed        = sdkerrors.Register(ModuleName, 118, "failed to send transfer message")
)

// ExitCode maps err to the exit code attached to the bounced message. A nil
// error is exit code 0. Unregistered errors map to 1, mirroring the host's
// generic failure code.
func ExitCode(err error) uint32 {
	if err == nil {
		return 0
	}
	_, code, _ := sdkerrors.ABCIInfo(err, false)
	return code
}
