package cli

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"math/big"

	"cosmossdk.io/math"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/xssnick/tonutils-go/address"
	"github.com/xssnick/tonutils-go/tvm/cell"

	"github.com/interchainx/tonswap/x/escrow/types"
)

// TxCmd returns the message-body encoding command tree. The emitted base64
// BOCs are ready to be attached to a wallet transfer by whatever external
// tool submits them; escrowctl itself never talks to a chain.
func TxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Encode escrow message bodies as base64 BOC",
	}
	cmd.AddCommand(
		txInitializeCmd(),
		txCompleteCmd(),
		txRefundCmd(),
		txDepositPayloadCmd(),
	)
	return cmd
}

func printBOC(cmd *cobra.Command, c *cell.Cell) {
	cmd.Println(base64.StdEncoding.EncodeToString(c.ToBOC()))
}

func txInitializeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "initialize [token-wallet]",
		Short: "Encode an Initialize body binding the escrow to a jetton wallet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wallet, err := address.ParseAddr(args[0])
			if err != nil {
				return fmt.Errorf("token wallet: %w", err)
			}
			body, err := types.NewInitializeBody(wallet)
			if err != nil {
				return err
			}
			printBOC(cmd, body)
			return nil
		},
	}
}

func txCompleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete [swap-id] [preimage-hex]",
		Short: "Encode a Complete body revealing the preimage",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cast.ToUint64E(args[0])
			if err != nil {
				return fmt.Errorf("swap id: %w", err)
			}
			raw, err := hex.DecodeString(args[1])
			if err != nil {
				return fmt.Errorf("preimage: %w", err)
			}
			body, err := types.NewCompleteBody(new(big.Int).SetUint64(id), new(big.Int).SetBytes(raw))
			if err != nil {
				return err
			}
			printBOC(cmd, body)
			return nil
		},
	}
}

func txRefundCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refund [swap-id]",
		Short: "Encode a Refund body reclaiming an expired swap",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cast.ToUint64E(args[0])
			if err != nil {
				return fmt.Errorf("swap id: %w", err)
			}
			body, err := types.NewRefundBody(new(big.Int).SetUint64(id))
			if err != nil {
				return err
			}
			printBOC(cmd, body)
			return nil
		},
	}
}

func txDepositPayloadCmd() *cobra.Command {
	var (
		amount    string
		depositor string
		recipient string
		hashLock  string
		preimage  string
		timeLock  uint64
	)
	cmd := &cobra.Command{
		Use:   "deposit-payload",
		Short: "Encode the forward payload for a depositing jetton transfer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			amt, ok := math.NewIntFromString(amount)
			if !ok {
				return fmt.Errorf("amount %q is not an integer", amount)
			}
			from, err := address.ParseAddr(depositor)
			if err != nil {
				return fmt.Errorf("depositor: %w", err)
			}
			to, err := address.ParseAddr(recipient)
			if err != nil {
				return fmt.Errorf("recipient: %w", err)
			}

			var lock *big.Int
			switch {
			case preimage != "":
				raw, err := hex.DecodeString(preimage)
				if err != nil {
					return fmt.Errorf("preimage: %w", err)
				}
				lock = types.HashLockOf(new(big.Int).SetBytes(raw))
			case hashLock != "":
				raw, err := hex.DecodeString(hashLock)
				if err != nil {
					return fmt.Errorf("hash lock: %w", err)
				}
				lock = new(big.Int).SetBytes(raw)
			default:
				return fmt.Errorf("one of --preimage or --hash-lock is required")
			}

			body, err := types.NewDepositPayload(types.DepositPayload{
				Amount:    amt,
				Depositor: from,
				Recipient: to,
				HashLock:  lock,
				TimeLock:  timeLock,
			})
			if err != nil {
				return err
			}
			printBOC(cmd, body)
			return nil
		},
	}
	cmd.Flags().StringVar(&amount, "amount", "", "jetton amount being deposited")
	cmd.Flags().StringVar(&depositor, "depositor", "", "depositor address (refund target)")
	cmd.Flags().StringVar(&recipient, "recipient", "", "claimant address")
	cmd.Flags().StringVar(&hashLock, "hash-lock", "", "sha256 hash lock, hex")
	cmd.Flags().StringVar(&preimage, "preimage", "", "preimage to derive the hash lock from, hex")
	cmd.Flags().Uint64Var(&timeLock, "time-lock", 0, "unix timestamp opening the refund path")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("depositor")
	_ = cmd.MarkFlagRequired("recipient")
	_ = cmd.MarkFlagRequired("time-lock")
	return cmd
}
