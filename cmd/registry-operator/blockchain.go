package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nspcc-dev/appchain-registry/rpc/registry"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/neorpc"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
)

const rpcTimeout = 15 * time.Second

// remoteRegistry provides access to the registry contract deployed in the
// remote Neo blockchain.
type remoteRegistry struct {
	rpc *rpcclient.Client
	ws  *rpcclient.WSClient

	hash   util.Uint160
	reader *registry.ContractReader
}

// parseContractHash accepts both Neo address and LE hex string.
func parseContractHash(s string) (util.Uint160, error) {
	if h, err := address.StringToUint160(s); err == nil {
		return h, nil
	}

	h, err := util.Uint160DecodeStringLE(s)
	if err != nil {
		return h, fmt.Errorf("invalid registry contract address %q: %w", s, err)
	}

	return h, nil
}

// dialRegistry dials Neo RPC server and returns read-only access to the
// registry contract. Connection and all requests are done within 15s timeout.
func dialRegistry(ctx context.Context, endpoint, contract string) (*remoteRegistry, error) {
	h, err := parseContractHash(contract)
	if err != nil {
		return nil, err
	}

	c, err := rpcclient.New(ctx, endpoint, rpcclient.Options{
		DialTimeout:    rpcTimeout,
		RequestTimeout: rpcTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("RPC client dial: %w", err)
	}

	if err = c.Init(); err != nil {
		c.Close()
		return nil, fmt.Errorf("init RPC client: %w", err)
	}

	return &remoteRegistry{
		rpc:    c,
		hash:   h,
		reader: registry.NewReader(invoker.New(c, nil), h),
	}, nil
}

// dialRegistryWS is like dialRegistry but opens WebSocket connection allowing
// notification subscriptions.
func dialRegistryWS(ctx context.Context, endpoint, contract string) (*remoteRegistry, error) {
	h, err := parseContractHash(contract)
	if err != nil {
		return nil, err
	}

	c, err := rpcclient.NewWS(ctx, endpoint, rpcclient.WSOptions{
		Options: rpcclient.Options{
			DialTimeout:    rpcTimeout,
			RequestTimeout: rpcTimeout,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("RPC WebSocket client dial: %w", err)
	}

	if err = c.Init(); err != nil {
		c.Close()
		return nil, fmt.Errorf("init RPC client: %w", err)
	}

	return &remoteRegistry{
		rpc:    &c.Client,
		ws:     c,
		hash:   h,
		reader: registry.NewReader(invoker.New(c, nil), h),
	}, nil
}

func (x *remoteRegistry) close() {
	if x.ws != nil {
		x.ws.Close()
		return
	}
	x.rpc.Close()
}

// signer returns registry contract client signing transactions with the given
// wallet account.
func (x *remoteRegistry) signer(acc *wallet.Account) (*registry.Contract, *actor.Actor, error) {
	var act *actor.Actor
	var err error
	if x.ws != nil {
		act, err = actor.NewSimple(x.ws, acc)
	} else {
		act, err = actor.NewSimple(x.rpc, acc)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("init actor: %w", err)
	}

	return registry.New(act, x.hash), act, nil
}

// subscribeAnchorRequests subscribes to AnchorRequested notifications of the
// registry. Requires WebSocket connection.
func (x *remoteRegistry) subscribeAnchorRequests() (<-chan *state.ContainedNotificationEvent, error) {
	if x.ws == nil {
		return nil, errors.New("notifications require WebSocket connection")
	}

	name := "AnchorRequested"
	ch := make(chan *state.ContainedNotificationEvent, 16)

	_, err := x.ws.ReceiveExecutionNotifications(&neorpc.NotificationFilter{
		Contract: &x.hash,
		Name:     &name,
	}, ch)
	if err != nil {
		return nil, fmt.Errorf("subscribe to registry notifications: %w", err)
	}

	return ch, nil
}

// openAccount reads the wallet file and decrypts the account with the given
// address or the default one if the address is empty.
func openAccount(path, addr, password string) (*wallet.Account, error) {
	w, err := wallet.NewWalletFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("read wallet: %w", err)
	}

	var acc *wallet.Account
	if addr == "" {
		if len(w.Accounts) == 0 {
			return nil, fmt.Errorf("wallet %s has no accounts", path)
		}
		acc = w.Accounts[0]
	} else {
		h, err := address.StringToUint160(addr)
		if err != nil {
			return nil, fmt.Errorf("invalid account address: %w", err)
		}
		if acc = w.GetAccount(h); acc == nil {
			return nil, fmt.Errorf("account %s not found in wallet %s", addr, path)
		}
	}

	if err = acc.Decrypt(password, w.Scrypt); err != nil {
		return nil, fmt.Errorf("decrypt account %s: %w", acc.Address, err)
	}

	return acc, nil
}

// iterateStorage passes all storage items of the registry contract at the
// state of the penult block into f. iterateStorage breaks on any f's error
// and returns it.
func (x *remoteRegistry) iterateStorage(f func(key, value []byte) error) error {
	height, err := x.rpc.GetBlockCount()
	if err != nil {
		return fmt.Errorf("get number of the latest block: %w", err)
	}

	root, err := x.rpc.GetStateRootByHeight(height - 1)
	if err != nil {
		return fmt.Errorf("get state root at penult block #%d: %w", height-1, err)
	}

	var start []byte
	for {
		res, err := x.rpc.FindStates(root.Root, x.hash, nil, start, nil)
		if err != nil {
			return fmt.Errorf("find registry storage items at state root %s: %w", root.Root, err)
		}

		for i := range res.Results {
			if err = f(res.Results[i].Key, res.Results[i].Value); err != nil {
				return err
			}
		}

		if !res.Truncated || len(res.Results) == 0 {
			return nil
		}

		start = res.Results[len(res.Results)-1].Key
	}
}
