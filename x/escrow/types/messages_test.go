package types_test

import (
	"math/big"
	"testing"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"
	"github.com/xssnick/tonutils-go/address"

	"github.com/interchainx/tonswap/x/escrow/types"
)

func TestNewInitializeBody(t *testing.T) {
	wallet := testAddr(0x0a)
	body, err := types.NewInitializeBody(wallet)
	require.NoError(t, err)

	s := body.BeginParse()
	op, err := s.LoadUInt(32)
	require.NoError(t, err)
	require.Equal(t, types.OpInitialize, op)
	got, err := s.LoadAddr()
	require.NoError(t, err)
	require.Equal(t, wallet.String(), got.String())
}

func TestNewInitializeBodyRejectsEmptyWallet(t *testing.T) {
	_, err := types.NewInitializeBody(address.NewAddressNone())
	require.True(t, sdkerrors.IsOf(err, types.ErrEmptyWallet))
}

func TestNewCompleteBody(t *testing.T) {
	swapID := big.NewInt(3)
	preimage := new(big.Int).Lsh(big.NewInt(0xbeef), 200)
	body, err := types.NewCompleteBody(swapID, preimage)
	require.NoError(t, err)

	s := body.BeginParse()
	op, err := s.LoadUInt(32)
	require.NoError(t, err)
	require.Equal(t, types.OpCompleteSwap, op)
	gotID, err := s.LoadBigUInt(256)
	require.NoError(t, err)
	require.Zero(t, swapID.Cmp(gotID))
	gotPre, err := s.LoadBigUInt(256)
	require.NoError(t, err)
	require.Zero(t, preimage.Cmp(gotPre))
}

func TestNewRefundBody(t *testing.T) {
	body, err := types.NewRefundBody(big.NewInt(9))
	require.NoError(t, err)

	s := body.BeginParse()
	op, err := s.LoadUInt(32)
	require.NoError(t, err)
	require.Equal(t, types.OpRefundSwap, op)
	gotID, err := s.LoadBigUInt(256)
	require.NoError(t, err)
	require.Zero(t, big.NewInt(9).Cmp(gotID))
}

func TestNewDepositPayloadRejectsNonPositiveAmount(t *testing.T) {
	_, err := types.NewDepositPayload(types.DepositPayload{
		Amount:    math.ZeroInt(),
		Depositor: testAddr(0x01),
		Recipient: testAddr(0x02),
		HashLock:  types.HashLockOf(big.NewInt(1)),
		TimeLock:  1,
	})
	require.True(t, sdkerrors.IsOf(err, types.ErrInvalidAmount))
}
