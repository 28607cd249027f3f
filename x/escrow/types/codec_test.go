package types_test

import (
	"math/big"
	"testing"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"
	"github.com/xssnick/tonutils-go/address"
	"github.com/xssnick/tonutils-go/tvm/cell"

	"github.com/interchainx/tonswap/x/escrow/types"
)

func testAddr(tag byte) *address.Address {
	var data [32]byte
	for i := range data {
		data[i] = tag
	}
	return address.NewAddress(0, 0, data[:])
}

func TestSwapRecordRoundTrip(t *testing.T) {
	rec := types.NewSwapRecord(
		testAddr(0x01),
		testAddr(0x02),
		math.NewInt(1_000_000),
		types.HashLockOf(big.NewInt(42)),
		1_700_000_000,
	)
	rec.Completed = true

	c, err := types.PackSwapRecord(rec)
	require.NoError(t, err)

	got, err := types.UnpackSwapRecord(c.BeginParse())
	require.NoError(t, err)
	require.Equal(t, rec.Initiator.String(), got.Initiator.String())
	require.Equal(t, rec.Recipient.String(), got.Recipient.String())
	require.True(t, rec.Amount.Equal(got.Amount))
	require.Zero(t, rec.HashLock.Cmp(got.HashLock))
	require.Equal(t, rec.TimeLock, got.TimeLock)
	require.True(t, got.Completed)
}

func TestStateRoundTripKeepsIndexes(t *testing.T) {
	st := types.NewContractState()
	st.InstanceID = 0xdeadbeef
	st.TokenWallet = testAddr(0x0a)
	st.SwapCounter = 3
	st.Initialized = true

	rec := types.NewSwapRecord(testAddr(0x01), testAddr(0x02), math.NewInt(7), types.HashLockOf(big.NewInt(9)), 100)
	leaf, err := types.PackSwapLeaf(rec)
	require.NoError(t, err)
	require.NoError(t, st.Swaps.SetIntKey(big.NewInt(2), leaf))

	idx := cell.BeginCell().MustStoreUInt(2, 64).EndCell()
	require.NoError(t, st.HashlockIndex.SetIntKey(rec.HashLock, idx))

	root, err := types.PackState(st)
	require.NoError(t, err)
	got, err := types.UnpackState(root)
	require.NoError(t, err)

	require.EqualValues(t, 0xdeadbeef, got.InstanceID)
	require.Equal(t, st.TokenWallet.String(), got.TokenWallet.String())
	require.EqualValues(t, 3, got.SwapCounter)
	require.True(t, got.Initialized)

	v := got.Swaps.GetByIntKey(big.NewInt(2))
	require.NotNil(t, v)
	gotRec, err := types.UnpackSwapLeaf(v)
	require.NoError(t, err)
	require.True(t, rec.Amount.Equal(gotRec.Amount))

	iv := got.HashlockIndex.GetByIntKey(rec.HashLock)
	require.NotNil(t, iv)
	id, err := iv.BeginParse().LoadUInt(64)
	require.NoError(t, err)
	require.EqualValues(t, 2, id)
}

// A lone dictionary entry keeps its full 256-bit key label in the leaf cell.
// The record must survive that worst case, so leaves hold a reference to the
// record instead of inlining its 983 bits next to the label.
func TestSwapLeafFitsUnderLongKeyLabels(t *testing.T) {
	rec := types.NewSwapRecord(testAddr(0x01), testAddr(0x02), math.NewInt(7), types.HashLockOf(big.NewInt(9)), 100)

	for _, key := range []*big.Int{big.NewInt(2), types.HashLockOf(big.NewInt(1))} {
		d := cell.NewDict(types.DictKeySize)
		leaf, err := types.PackSwapLeaf(rec)
		require.NoError(t, err)
		require.NoError(t, d.SetIntKey(key, leaf))

		b := cell.BeginCell()
		require.NoError(t, b.StoreDict(d))
		boc := b.EndCell().ToBOC()

		back, err := cell.FromBOC(boc)
		require.NoError(t, err)
		rd, err := back.BeginParse().LoadDict(types.DictKeySize)
		require.NoError(t, err)

		v := rd.GetByIntKey(key)
		require.NotNil(t, v)
		got, err := types.UnpackSwapLeaf(v)
		require.NoError(t, err)
		require.True(t, rec.Amount.Equal(got.Amount))
		require.Zero(t, rec.HashLock.Cmp(got.HashLock))
	}
}

func TestDepositPayloadRoundTrip(t *testing.T) {
	p := types.DepositPayload{
		Amount:    math.NewInt(1_000_000),
		Depositor: testAddr(0x01),
		Recipient: testAddr(0x02),
		HashLock:  types.HashLockOf(big.NewInt(5)),
		TimeLock:  1_800_000_000,
	}
	c, err := types.NewDepositPayload(p)
	require.NoError(t, err)

	got, err := types.UnpackDepositPayload(c.BeginParse())
	require.NoError(t, err)
	require.True(t, p.Amount.Equal(got.Amount))
	require.Equal(t, p.Depositor.String(), got.Depositor.String())
	require.Equal(t, p.Recipient.String(), got.Recipient.String())
	require.Zero(t, p.HashLock.Cmp(got.HashLock))
	require.Equal(t, p.TimeLock, got.TimeLock)
}

func TestDepositPayloadRejectsShortPayload(t *testing.T) {
	short := cell.BeginCell().MustStoreUInt(0, 16).EndCell()
	_, err := types.UnpackDepositPayload(short.BeginParse())
	require.True(t, sdkerrors.IsOf(err, types.ErrInsufficientBits))
}

func TestDepositPayloadRejectsWrongOp(t *testing.T) {
	wrong := cell.BeginCell().MustStoreUInt(types.OpCompleteSwap, 32).EndCell()
	_, err := types.UnpackDepositPayload(wrong.BeginParse())
	require.True(t, sdkerrors.IsOf(err, types.ErrInvalidForwardOp))
}

func TestDepositPayloadRequiresBothRefs(t *testing.T) {
	// Correct op and fixed fields, recipient ref only.
	recipient := cell.BeginCell().MustStoreAddr(testAddr(0x02)).EndCell()
	b := cell.BeginCell().
		MustStoreUInt(types.OpDepositNotification, 32).
		MustStoreBigUInt(big.NewInt(1), 128).
		MustStoreAddr(testAddr(0x01)).
		MustStoreRef(recipient)
	_, err := types.UnpackDepositPayload(b.EndCell().BeginParse())
	require.True(t, sdkerrors.IsOf(err, types.ErrNoRefs))
}

func TestTransferNotificationPayloadShapes(t *testing.T) {
	payload, err := types.NewDepositPayload(types.DepositPayload{
		Amount:    math.NewInt(25),
		Depositor: testAddr(0x01),
		Recipient: testAddr(0x02),
		HashLock:  types.HashLockOf(big.NewInt(1)),
		TimeLock:  500,
	})
	require.NoError(t, err)

	for _, inline := range []bool{true, false} {
		body, err := types.NewTransferNotificationBody(7, math.NewInt(25), testAddr(0x01), payload, inline)
		require.NoError(t, err)

		s := body.BeginParse()
		op, err := s.LoadUInt(32)
		require.NoError(t, err)
		require.Equal(t, types.OpTransferNotification, op)

		n, err := types.UnpackTransferNotification(s)
		require.NoError(t, err)
		require.EqualValues(t, 7, n.QueryID)
		require.True(t, n.Amount.Equal(math.NewInt(25)))

		p, err := types.UnpackDepositPayload(n.Payload)
		require.NoError(t, err)
		require.True(t, p.Amount.Equal(math.NewInt(25)))
	}
}
