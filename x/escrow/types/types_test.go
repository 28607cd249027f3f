package types_test

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xssnick/tonutils-go/address"

	"github.com/interchainx/tonswap/x/escrow/types"
)

func TestHashLockDeterminism(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 64; i++ {
		var buf [32]byte
		_, err := rand.Read(buf[:])
		require.NoError(t, err)
		p := new(big.Int).SetBytes(buf[:])

		h1 := types.HashLockOf(p)
		h2 := types.HashLockOf(new(big.Int).Set(p))
		require.Zero(t, h1.Cmp(h2), "hashing the same preimage twice must agree")

		key := h1.String()
		require.False(t, seen[key], "distinct preimages must not collide")
		seen[key] = true
	}
}

func TestHashLockUsesBigEndian32Bytes(t *testing.T) {
	// Small preimages are left-padded to 32 bytes before hashing, so 1 and
	// 0x01 followed by zero bytes are different preimages.
	h1 := types.HashLockOf(big.NewInt(1))
	h2 := types.HashLockOf(new(big.Int).Lsh(big.NewInt(1), 8))
	require.NotZero(t, h1.Cmp(h2))
}

func TestNewContractStateIsPristine(t *testing.T) {
	st := types.NewContractState()
	require.False(t, st.Initialized)
	require.EqualValues(t, 0, st.SwapCounter)
	require.EqualValues(t, 0, st.InstanceID)
	require.Nil(t, st.Swaps.GetByIntKey(big.NewInt(0)))
	require.Nil(t, st.HashlockIndex.GetByIntKey(big.NewInt(0)))
	require.True(t, types.IsEmptyAddr(st.TokenWallet))
}

func TestIsEmptyAddr(t *testing.T) {
	require.True(t, types.IsEmptyAddr(nil))
	require.True(t, types.IsEmptyAddr(address.NewAddressNone()))

	var data [32]byte
	require.False(t, types.IsEmptyAddr(address.NewAddress(0, 0, data[:])))
}
