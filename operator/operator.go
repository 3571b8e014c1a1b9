// Package operator implements the off-chain counting operator of the Appchain
// Registry contract.
//
// The operator counts voting score once per counting interval and hands
// anchor requests produced on election conclusion to the provisioner.
package operator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	cst "github.com/nspcc-dev/appchain-registry/contracts/registry/registryconst"
	"github.com/nspcc-dev/appchain-registry/rpc/registry"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"go.uber.org/zap"
)

// Registry is the subset of registry contract methods used by the operator.
// [registry.Contract] implements it.
type Registry interface {
	CountVotingScore() (util.Uint256, uint32, error)
}

// Waiter waits for the sent transaction to be accepted. [actor.Actor]
// implements it.
type Waiter interface {
	Wait(h util.Uint256, vub uint32, err error) (*state.AppExecResult, error)
}

// Provisioner creates anchors of the promoted appchains.
type Provisioner interface {
	ProvisionAnchor(ctx context.Context, req registry.AnchorRequestedEvent) error
}

// Prm groups parameters of the operator.
type Prm struct {
	// Writes progress into the log.
	Logger *zap.Logger

	// Registry contract address. Notifications of other contracts are ignored.
	RegistryAddress util.Uint160

	// Registry contract client signing transactions with the counting
	// operator account.
	Registry Registry

	Waiter Waiter

	// Counting period. Should be equal to the counting interval of the
	// registry, shorter periods lead to rejected transactions.
	Interval time.Duration

	// Optional stream of the registry notifications. AnchorRequested ones are
	// passed to the Provisioner.
	Notifications <-chan *state.ContainedNotificationEvent

	// Optional, anchor requests are only logged if not set.
	Provisioner Provisioner
}

// Operator counts voting score of the registry periodically.
type Operator struct {
	log         *zap.Logger
	registry    Registry
	waiter      Waiter
	address     util.Uint160
	interval    time.Duration
	ntfs        <-chan *state.ContainedNotificationEvent
	provisioner Provisioner
}

// New checks parameters and returns new Operator.
func New(prm Prm) (*Operator, error) {
	switch {
	case prm.Logger == nil:
		return nil, errors.New("missing logger")
	case prm.Registry == nil:
		return nil, errors.New("missing registry client")
	case prm.Waiter == nil:
		return nil, errors.New("missing transaction waiter")
	case prm.Interval <= 0:
		return nil, fmt.Errorf("non-positive counting interval %s", prm.Interval)
	}

	return &Operator{
		log:         prm.Logger,
		registry:    prm.Registry,
		waiter:      prm.Waiter,
		address:     prm.RegistryAddress,
		interval:    prm.Interval,
		ntfs:        prm.Notifications,
		provisioner: prm.Provisioner,
	}, nil
}

// Run counts voting score immediately and then once per interval until the
// context is done. Failed counts are logged and retried on the next tick.
// Run returns nil when the context is done and an error if notification
// stream is closed.
func (o *Operator) Run(ctx context.Context) error {
	ticker := time.NewTicker(o.interval)
	defer ticker.Stop()

	o.logCountResult(o.Count())

	for {
		select {
		case <-ctx.Done():
			o.log.Info("operator stopped", zap.Error(ctx.Err()))
			return nil
		case <-ticker.C:
			o.logCountResult(o.Count())
		case ntf, ok := <-o.ntfs:
			if !ok {
				return errors.New("registry notification stream is closed")
			}
			o.HandleNotification(ctx, ntf)
		}
	}
}

// Count counts voting score once and returns the ID of the top appchain.
// Rejections caused by not elapsed counting interval and empty registry are
// reported with [ErrSkipped].
func (o *Operator) Count() (string, error) {
	res, err := o.waiter.Wait(o.registry.CountVotingScore())
	if err != nil {
		if isBenign(err.Error()) {
			return "", fmt.Errorf("%w: %v", ErrSkipped, err)
		}
		return "", fmt.Errorf("count voting score: %w", err)
	}

	if res.VMState != vmstate.Halt {
		if isBenign(res.FaultException) {
			return "", fmt.Errorf("%w: %s", ErrSkipped, res.FaultException)
		}
		return "", fmt.Errorf("count voting score: transaction failed: %s", res.FaultException)
	}

	events, err := registry.VotingScoreCountedEventsFromApplicationLog(&result.ApplicationLog{
		Container:  res.Container,
		Executions: []state.Execution{res.Execution},
	})
	if err != nil {
		return "", fmt.Errorf("parse counting result: %w", err)
	}
	if len(events) == 0 {
		// no appchains in queue
		return "", nil
	}

	return events[len(events)-1].Top, nil
}

// ErrSkipped is returned by [Operator.Count] when the registry rejects the
// count in a regular way.
var ErrSkipped = errors.New("counting skipped")

func isBenign(msg string) bool {
	return strings.Contains(msg, cst.ErrIntervalNotElapsed) || strings.Contains(msg, cst.ErrNoAppchains)
}

func (o *Operator) logCountResult(top string, err error) {
	switch {
	case errors.Is(err, ErrSkipped):
		o.log.Debug("voting score counting skipped", zap.Error(err))
	case err != nil:
		o.log.Error("failed to count voting score", zap.Error(err))
	case top == "":
		o.log.Info("voting score counted, no appchains in queue")
	default:
		o.log.Info("voting score counted", zap.String("top", top))
	}
}

// HandleNotification passes AnchorRequested notification of the registry to
// the provisioner. Other notifications are ignored.
func (o *Operator) HandleNotification(ctx context.Context, ntf *state.ContainedNotificationEvent) {
	if ntf == nil || !ntf.ScriptHash.Equals(o.address) || ntf.Name != "AnchorRequested" {
		return
	}

	var req registry.AnchorRequestedEvent
	if err := req.FromStackItem(ntf.Item); err != nil {
		o.log.Warn("invalid AnchorRequested notification",
			zap.Stringer("tx", ntf.Container), zap.Error(err))
		return
	}

	o.provision(ctx, req)
}

// HandleApplicationLog passes all AnchorRequested notifications from the log
// to the provisioner.
func (o *Operator) HandleApplicationLog(ctx context.Context, log *result.ApplicationLog) error {
	reqs, err := registry.AnchorRequestedEventsFromApplicationLog(log)
	if err != nil {
		return err
	}

	for i := range reqs {
		o.provision(ctx, *reqs[i])
	}

	return nil
}

// provision requests the anchor. Failures are only logged since the registry
// does not revert the promotion and the anchor has to be created manually.
func (o *Operator) provision(ctx context.Context, req registry.AnchorRequestedEvent) {
	l := o.log.With(zap.String("appchain", req.ID), zap.String("anchor", req.Anchor),
		zap.Stringer("admin", req.Admin))

	if o.provisioner == nil {
		l.Info("anchor requested, no provisioner configured")
		return
	}

	if err := o.provisioner.ProvisionAnchor(ctx, req); err != nil {
		l.Error("failed to provision anchor, it must be created manually", zap.Error(err))
		return
	}

	l.Info("anchor provisioned")
}
