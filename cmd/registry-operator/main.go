package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nspcc-dev/appchain-registry/operator"
	"github.com/nspcc-dev/neo-go/pkg/encoding/fixedn"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/gas"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

const gasPrecision = 8

// set by the linker: go build -ldflags "-X main.version=vX.Y.Z" ./...
var version = "dev"

var accountFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "wallet, w",
		Usage: "*counting operator wallet `FILE`",
	},
	cli.StringFlag{
		Name:  "address, a",
		Usage: " counting operator account `ADDRESS` [first wallet account]",
	},
	cli.StringFlag{
		Name:   "password, p",
		Usage:  " account `PASSWORD`",
		EnvVar: "REGISTRY_OPERATOR_PASSWORD",
	},
	cli.StringFlag{
		Name:  "anchor-funding",
		Usage: " `GAS` amount sent to the admin of each requested anchor [requests are only logged]",
	},
	cli.BoolFlag{
		Name:  "debug, d",
		Usage: " enable debug logs",
	},
}

var connectionFlags = []cli.Flag{
	cli.StringFlag{
		Name:   "rpc, r",
		Usage:  "*Neo RPC server `ENDPOINT`",
		EnvVar: "REGISTRY_RPC",
	},
	cli.StringFlag{
		Name:   "contract, c",
		Usage:  "*registry contract `ADDRESS` (Neo address or LE hash)",
		EnvVar: "REGISTRY_CONTRACT",
	},
}

func main() {
	app := cli.NewApp()
	app.Name = "registry-operator"
	app.Usage = "Appchain Registry counting operator and inspection tool"
	app.Version = version

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Commands = []cli.Command{
		{
			Name:      "run",
			Usage:     "count voting score periodically and handle anchor requests",
			ArgsUsage: "\n   (* = required)",
			Flags: append(append([]cli.Flag{
				cli.DurationFlag{
					Name:  "interval, i",
					Usage: " counting `PERIOD` [counting interval of the registry]",
				},
			}, accountFlags...), connectionFlags...),
			Action: runOperator,
		},
		{
			Name:      "provision",
			Usage:     "handle anchor requests of the given election conclusion transaction again",
			ArgsUsage: "\n   (* = required)",
			Flags: append(append([]cli.Flag{
				cli.StringFlag{
					Name:  "tx, t",
					Usage: "*conclusion transaction `HASH`",
				},
			}, accountFlags...), connectionFlags...),
			Action: runProvision,
		},
		{
			Name:      "list",
			Usage:     "list registered appchains",
			ArgsUsage: "\n   (* = required)",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "state, s",
					Usage: " list appchains in the given `STATE` only",
				},
				cli.StringFlag{
					Name:  "sort",
					Value: "id",
					Usage: " sort by `FIELD` [id|score|registered]",
				},
				cli.BoolFlag{
					Name:  "desc",
					Usage: " sort in descending order",
				},
				cli.IntFlag{
					Name:  "start",
					Usage: " skip first `COUNT` appchains of the sorted list",
				},
				cli.IntFlag{
					Name:  "limit, l",
					Value: 100,
					Usage: " maximum number of listed appchains `COUNT`",
				},
			}, connectionFlags...),
			Action: runList,
		},
		{
			Name:      "show",
			Usage:     "show appchain or registry information",
			ArgsUsage: "[ID]\n   (* = required)",
			Flags:     connectionFlags,
			Action:    runShow,
		},
		{
			Name:      "dump",
			Usage:     "print raw registry storage",
			ArgsUsage: "\n   (* = required)",
			Flags:     connectionFlags,
			Action:    runDump,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func checkConnectionFlags(c *cli.Context) error {
	switch {
	case c.String("rpc") == "":
		return errors.New("missing Neo RPC endpoint")
	case c.String("contract") == "":
		return errors.New("missing registry contract address")
	}
	return nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}

func runOperator(c *cli.Context) error {
	if err := checkConnectionFlags(c); err != nil {
		return err
	}
	if c.String("wallet") == "" {
		return errors.New("missing counting operator wallet")
	}

	log, err := newLogger(c.Bool("debug"))
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	acc, err := openAccount(c.String("wallet"), c.String("address"), c.String("password"))
	if err != nil {
		return err
	}

	reg, err := dialRegistryWS(ctx, c.String("rpc"), c.String("contract"))
	if err != nil {
		return err
	}
	defer reg.close()

	settings, err := reg.reader.GetSettings()
	if err != nil {
		return fmt.Errorf("read registry settings: %w", err)
	}
	if !settings.CountingOperator.Equals(acc.ScriptHash()) {
		log.Warn("account is not the counting operator of the registry, counting will be rejected",
			zap.String("account", acc.Address), zap.Stringer("operator", settings.CountingOperator))
	}

	interval := c.Duration("interval")
	if interval == 0 {
		interval = time.Duration(settings.CountingIntervalInSeconds.Int64()) * time.Second
	}

	contract, act, err := reg.signer(acc)
	if err != nil {
		return err
	}

	provisioner, err := newProvisioner(c, reg, act)
	if err != nil {
		return err
	}

	ntfs, err := reg.subscribeAnchorRequests()
	if err != nil {
		return err
	}

	op, err := operator.New(operator.Prm{
		Logger:          log,
		RegistryAddress: reg.hash,
		Registry:        contract,
		Waiter:          act,
		Interval:        interval,
		Notifications:   ntfs,
		Provisioner:     provisioner,
	})
	if err != nil {
		return err
	}

	log.Info("starting counting operator",
		zap.Stringer("registry", reg.hash), zap.String("account", acc.Address),
		zap.Duration("interval", interval), zap.Bool("anchor funding", provisioner != nil))

	return op.Run(ctx)
}

// runProvision passes anchor requests of the already accepted transaction to
// the provisioner. It's used to recover after operator downtime.
func runProvision(c *cli.Context) error {
	if err := checkConnectionFlags(c); err != nil {
		return err
	}
	if c.String("wallet") == "" {
		return errors.New("missing counting operator wallet")
	}

	txHash, err := util.Uint256DecodeStringLE(c.String("tx"))
	if err != nil {
		return fmt.Errorf("invalid transaction hash: %w", err)
	}

	log, err := newLogger(c.Bool("debug"))
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	acc, err := openAccount(c.String("wallet"), c.String("address"), c.String("password"))
	if err != nil {
		return err
	}

	reg, err := dialRegistry(context.Background(), c.String("rpc"), c.String("contract"))
	if err != nil {
		return err
	}
	defer reg.close()

	contract, act, err := reg.signer(acc)
	if err != nil {
		return err
	}

	provisioner, err := newProvisioner(c, reg, act)
	if err != nil {
		return err
	}

	op, err := operator.New(operator.Prm{
		Logger:          log,
		RegistryAddress: reg.hash,
		Registry:        contract,
		Waiter:          act,
		Interval:        time.Second,
		Provisioner:     provisioner,
	})
	if err != nil {
		return err
	}

	appLog, err := reg.rpc.GetApplicationLog(txHash, nil)
	if err != nil {
		return fmt.Errorf("get application log of %s: %w", txHash.StringLE(), err)
	}

	return op.HandleApplicationLog(context.Background(), appLog)
}

// newProvisioner returns GAS funding provisioner if anchor funding is
// configured, nil otherwise.
func newProvisioner(c *cli.Context, reg *remoteRegistry, act *actor.Actor) (operator.Provisioner, error) {
	s := c.String("anchor-funding")
	if s == "" {
		return nil, nil
	}

	amount, err := fixedn.FromString(s, gasPrecision)
	if err != nil {
		return nil, fmt.Errorf("invalid anchor funding amount: %w", err)
	}

	p, err := operator.NewFundingProvisioner(operator.FundingPrm{
		RegistryAddress: reg.hash,
		Sender:          act.Sender(),
		Token:           gas.New(act),
		Waiter:          act,
		Amount:          amount,
	})
	if err != nil {
		return nil, err
	}

	return p, nil
}

func printJSON(c *cli.Context, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.App.Writer, string(b))
	return err
}
