// Package keeper owns the escrow contract's persisted state and implements
// its state transitions.
package keeper

import (
	"math/big"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/log"
	dbm "github.com/cometbft/cometbft-db"
	"github.com/xssnick/tonutils-go/address"
	"github.com/xssnick/tonutils-go/tlb"
	"github.com/xssnick/tonutils-go/tvm/cell"

	"github.com/interchainx/tonswap/x/escrow/types"
)

// MessageSender delivers the contract's outbound messages to the chain. The
// escrow only ever addresses its bound jetton wallet through it.
type MessageSender interface {
	Send(msg *tlb.InternalMessage) error
}

type Keeper struct {
	db     dbm.DB
	sender MessageSender
	logger log.Logger
}

func NewKeeper(db dbm.DB, sender MessageSender, logger log.Logger) Keeper {
	return Keeper{
		db:     db,
		sender: sender,
		logger: logger.With("module", types.ModuleName),
	}
}

// LoadState reads the root state cell. Pristine storage loads as the zero
// state: uninitialized, empty tables, counter 0.
func (k Keeper) LoadState() (types.ContractState, error) {
	raw, err := k.db.Get(types.KeyContractState)
	if err != nil {
		return types.ContractState{}, err
	}
	if raw == nil {
		return types.NewContractState(), nil
	}
	root, err := cell.FromBOC(raw)
	if err != nil {
		return types.ContractState{}, err
	}
	return types.UnpackState(root)
}

// SaveState persists the root state cell. Callers only save fully-validated
// state; a failed operation never reaches this point.
func (k Keeper) SaveState(st types.ContractState) error {
	root, err := types.PackState(st)
	if err != nil {
		return err
	}
	return k.db.Set(types.KeyContractState, root.ToBOC())
}

// InstanceID returns the deployment's randomized identifier.
func (k Keeper) InstanceID() (uint32, error) {
	st, err := k.LoadState()
	if err != nil {
		return 0, err
	}
	return st.InstanceID, nil
}

// SwapCounter returns the number of swaps ever created.
func (k Keeper) SwapCounter() (uint64, error) {
	st, err := k.LoadState()
	if err != nil {
		return 0, err
	}
	return st.SwapCounter, nil
}

// TokenWallet returns the jetton wallet the escrow is bound to.
func (k Keeper) TokenWallet() (*address.Address, error) {
	st, err := k.LoadState()
	if err != nil {
		return nil, err
	}
	return st.TokenWallet, nil
}

// IsInitialized reports whether Initialize has succeeded.
func (k Keeper) IsInitialized() (bool, error) {
	st, err := k.LoadState()
	if err != nil {
		return false, err
	}
	return st.Initialized, nil
}

// HasSwap reports whether a swap exists under id.
func (k Keeper) HasSwap(id *big.Int) (bool, error) {
	st, err := k.LoadState()
	if err != nil {
		return false, err
	}
	return st.Swaps.GetByIntKey(id) != nil, nil
}

// GetSwap returns the swap stored under id.
func (k Keeper) GetSwap(id *big.Int) (types.SwapRecord, error) {
	st, err := k.LoadState()
	if err != nil {
		return types.SwapRecord{}, err
	}
	return getSwap(st, id)
}

// GetSwapByHashLock resolves hashLock through the secondary index and
// returns the owning swap id together with the record. Either lookup
// missing reports ErrSwapNotFound.
func (k Keeper) GetSwapByHashLock(hashLock *big.Int) (*big.Int, types.SwapRecord, error) {
	st, err := k.LoadState()
	if err != nil {
		return nil, types.SwapRecord{}, err
	}
	v := st.HashlockIndex.GetByIntKey(hashLock)
	if v == nil {
		return nil, types.SwapRecord{}, sdkerrors.Wrapf(types.ErrSwapNotFound, "hash lock %x not indexed", hashLock)
	}
	id, err := v.BeginParse().LoadUInt(64)
	if err != nil {
		return nil, types.SwapRecord{}, sdkerrors.Wrap(types.ErrInsufficientBits, err.Error())
	}
	swapID := new(big.Int).SetUint64(id)
	rec, err := getSwap(st, swapID)
	if err != nil {
		return nil, types.SwapRecord{}, err
	}
	return swapID, rec, nil
}

func getSwap(st types.ContractState, id *big.Int) (types.SwapRecord, error) {
	v := st.Swaps.GetByIntKey(id)
	if v == nil {
		return types.SwapRecord{}, sdkerrors.Wrapf(types.ErrSwapNotFound, "swap %s", id)
	}
	return types.UnpackSwapLeaf(v)
}

func setSwap(st types.ContractState, id *big.Int, rec types.SwapRecord) error {
	v, err := types.PackSwapLeaf(rec)
	if err != nil {
		return err
	}
	return st.Swaps.SetIntKey(id, v)
}
