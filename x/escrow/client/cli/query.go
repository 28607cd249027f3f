// Package cli implements escrowctl's commands: the read-only query surface
// over a local copy of the contract state, and offline encoding of the
// message bodies the contract accepts.
package cli

import (
	"encoding/hex"
	"fmt"
	"math/big"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/log"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/xssnick/tonutils-go/tlb"

	"github.com/interchainx/tonswap/x/escrow/client/config"
	"github.com/interchainx/tonswap/x/escrow/keeper"
	"github.com/interchainx/tonswap/x/escrow/types"
)

// readOnlySender rejects any outbound message; queries never send.
type readOnlySender struct{}

func (readOnlySender) Send(*tlb.InternalMessage) error {
	return sdkerrors.Wrap(types.ErrSendFailed, "read-only store")
}

func openKeeper(cfg *config.Config) (keeper.Keeper, func(), error) {
	db, err := cfg.OpenStore()
	if err != nil {
		return keeper.Keeper{}, nil, fmt.Errorf("open store: %w", err)
	}
	k := keeper.NewKeeper(db, readOnlySender{}, log.NewNopLogger())
	return k, func() { _ = db.Close() }, nil
}

// QueryCmd returns the query command tree.
func QueryCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Read the escrow contract state",
	}
	cmd.AddCommand(
		queryInfoCmd(cfg),
		querySwapCmd(cfg),
		querySwapByHashLockCmd(cfg),
		queryHasSwapCmd(cfg),
	)
	return cmd
}

func queryInfoCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show instance id, bound wallet, counter and initialization",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			k, closeFn, err := openKeeper(cfg)
			if err != nil {
				return err
			}
			defer closeFn()

			id, err := k.InstanceID()
			if err != nil {
				return err
			}
			wallet, err := k.TokenWallet()
			if err != nil {
				return err
			}
			counter, err := k.SwapCounter()
			if err != nil {
				return err
			}
			initialized, err := k.IsInitialized()
			if err != nil {
				return err
			}

			cmd.Printf("instance id:  %d\n", id)
			cmd.Printf("token wallet: %s\n", wallet.String())
			cmd.Printf("swap counter: %d\n", counter)
			cmd.Printf("initialized:  %t\n", initialized)
			return nil
		},
	}
}

func printSwap(cmd *cobra.Command, id *big.Int, rec types.SwapRecord) {
	cmd.Printf("swap id:   %s\n", id)
	cmd.Printf("initiator: %s\n", rec.Initiator.String())
	cmd.Printf("recipient: %s\n", rec.Recipient.String())
	cmd.Printf("amount:    %s\n", rec.Amount)
	cmd.Printf("hash lock: %064x\n", rec.HashLock)
	cmd.Printf("time lock: %d\n", rec.TimeLock)
	cmd.Printf("completed: %t\n", rec.Completed)
}

func querySwapCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "swap [id]",
		Short: "Show the swap stored under id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cast.ToUint64E(args[0])
			if err != nil {
				return fmt.Errorf("swap id: %w", err)
			}
			k, closeFn, err := openKeeper(cfg)
			if err != nil {
				return err
			}
			defer closeFn()

			swapID := new(big.Int).SetUint64(id)
			rec, err := k.GetSwap(swapID)
			if err != nil {
				return err
			}
			printSwap(cmd, swapID, rec)
			return nil
		},
	}
}

func querySwapByHashLockCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "swap-by-hashlock [hex]",
		Short: "Resolve a hash lock through the secondary index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := hex.DecodeString(args[0])
			if err != nil {
				return fmt.Errorf("hash lock: %w", err)
			}
			k, closeFn, err := openKeeper(cfg)
			if err != nil {
				return err
			}
			defer closeFn()

			id, rec, err := k.GetSwapByHashLock(new(big.Int).SetBytes(raw))
			if err != nil {
				return err
			}
			printSwap(cmd, id, rec)
			return nil
		},
	}
}

func queryHasSwapCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "has-swap [id]",
		Short: "Report whether a swap exists under id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cast.ToUint64E(args[0])
			if err != nil {
				return fmt.Errorf("swap id: %w", err)
			}
			k, closeFn, err := openKeeper(cfg)
			if err != nil {
				return err
			}
			defer closeFn()

			has, err := k.HasSwap(new(big.Int).SetUint64(id))
			if err != nil {
				return err
			}
			cmd.Printf("%t\n", has)
			return nil
		},
	}
}
