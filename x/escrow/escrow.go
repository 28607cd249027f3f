package escrow

import (
	"cosmossdk.io/log"
	dbm "github.com/cometbft/cometbft-db"
	"github.com/xssnick/tonutils-go/tvm/cell"

	"github.com/interchainx/tonswap/x/escrow/keeper"
	"github.com/interchainx/tonswap/x/escrow/types"
)

// Escrow bundles the keeper and router into one contract instance: storage,
// state machine and outbound message sink wired together the way a deployed
// contract has them.
type Escrow struct {
	keeper  keeper.Keeper
	handler Handler
	logger  log.Logger
}

// New wires a contract instance over db, sending outbound messages through
// sender.
func New(db dbm.DB, sender keeper.MessageSender, logger log.Logger) *Escrow {
	k := keeper.NewKeeper(db, sender, logger)
	return &Escrow{
		keeper:  k,
		handler: NewHandler(k),
		logger:  logger.With("module", types.ModuleName),
	}
}

// Keeper exposes the read-only query surface.
func (e *Escrow) Keeper() keeper.Keeper {
	return e.keeper
}

// Receive processes one inbound message body. On failure no state persists
// and the returned error's registered code is what the host would attach to
// the bounced message; ExitCode extracts it.
func (e *Escrow) Receive(ctx types.Context, body *cell.Cell) error {
	err := e.handler(ctx, body)
	if err != nil {
		e.logger.Error("message rejected", "exit_code", types.ExitCode(err), "err", err)
	}
	return err
}
