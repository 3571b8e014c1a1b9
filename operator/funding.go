package operator

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/nspcc-dev/appchain-registry/rpc/registry"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
)

// Transferrer sends NEP-17 tokens. [nep17.Token] implements it.
type Transferrer interface {
	Transfer(from util.Uint160, to util.Uint160, amount *big.Int, data any) (util.Uint256, uint32, error)
}

// FundingPrm groups parameters of the FundingProvisioner.
type FundingPrm struct {
	// Registry contract address. Anchors of other registries are rejected.
	RegistryAddress util.Uint160

	// Account paying for the anchors.
	Sender util.Uint160

	// GAS token client signing transactions with the sender account.
	Token Transferrer

	Waiter Waiter

	// Amount of GAS fractions transferred to the admin of each anchor.
	Amount *big.Int
}

// FundingProvisioner provisions anchors by sending initial GAS funding to the
// anchor admin. The anchor name is attached to the transfer as data.
type FundingProvisioner struct {
	registry util.Uint160
	sender   util.Uint160
	token    Transferrer
	waiter   Waiter
	amount   *big.Int
}

// NewFundingProvisioner checks parameters and returns new FundingProvisioner.
func NewFundingProvisioner(prm FundingPrm) (*FundingProvisioner, error) {
	switch {
	case prm.Token == nil:
		return nil, errors.New("missing token client")
	case prm.Waiter == nil:
		return nil, errors.New("missing transaction waiter")
	case prm.Amount == nil || prm.Amount.Sign() <= 0:
		return nil, fmt.Errorf("non-positive funding amount %v", prm.Amount)
	}

	return &FundingProvisioner{
		registry: prm.RegistryAddress,
		sender:   prm.Sender,
		token:    prm.Token,
		waiter:   prm.Waiter,
		amount:   new(big.Int).Set(prm.Amount),
	}, nil
}

// ProvisionAnchor implements [Provisioner]. The request must name the anchor
// of the configured registry.
func (x *FundingProvisioner) ProvisionAnchor(ctx context.Context, req registry.AnchorRequestedEvent) error {
	id, reg, err := registry.ParseAnchorName(req.Anchor)
	if err != nil {
		return err
	}
	if id != req.ID {
		return fmt.Errorf("anchor %q does not belong to appchain %q", req.Anchor, req.ID)
	}
	if !reg.Equals(x.registry) {
		return fmt.Errorf("anchor %q belongs to another registry", req.Anchor)
	}
	if req.Admin.Equals(util.Uint160{}) {
		return errors.New("missing anchor admin")
	}

	if err = ctx.Err(); err != nil {
		return err
	}

	res, err := x.waiter.Wait(x.token.Transfer(x.sender, req.Admin, x.amount, req.Anchor))
	if err != nil {
		return fmt.Errorf("transfer GAS to anchor admin: %w", err)
	}
	if res.VMState != vmstate.Halt {
		return fmt.Errorf("transfer GAS to anchor admin: transaction failed: %s", res.FaultException)
	}
	if len(res.Stack) != 1 {
		return fmt.Errorf("transfer GAS to anchor admin: unexpected stack size %d", len(res.Stack))
	}
	if ok, err := res.Stack[0].TryBool(); err != nil || !ok {
		return errors.New("transfer GAS to anchor admin: transfer rejected by the token")
	}

	return nil
}
