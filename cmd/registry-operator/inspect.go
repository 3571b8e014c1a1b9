package main

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/nspcc-dev/appchain-registry/contracts/registry/appchainstate"
	cst "github.com/nspcc-dev/appchain-registry/contracts/registry/registryconst"
	"github.com/nspcc-dev/appchain-registry/rpc/registry"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/urfave/cli"
)

type appchainView struct {
	ID              string            `json:"id"`
	Owner           string            `json:"owner"`
	State           string            `json:"state"`
	VotingScore     string            `json:"votingScore"`
	RegisterDeposit string            `json:"registerDeposit"`
	UpvoteDeposit   string            `json:"upvoteDeposit"`
	DownvoteDeposit string            `json:"downvoteDeposit"`
	Anchor          string            `json:"anchor,omitempty"`
	Registered      time.Time         `json:"registered"`
	WebsiteURL      string            `json:"websiteURL"`
	FunctionSpecURL string            `json:"functionSpecURL"`
	GithubAddress   string            `json:"githubAddress"`
	GithubRelease   string            `json:"githubRelease"`
	CommitID        string            `json:"commitID"`
	ContactEmail    string            `json:"contactEmail"`
	Custom          map[string]string `json:"custom,omitempty"`
}

type registryView struct {
	Version                      string `json:"version"`
	Owner                        string `json:"owner"`
	LifecycleManager             string `json:"lifecycleManager"`
	SettingsManager              string `json:"settingsManager"`
	CountingOperator             string `json:"countingOperator"`
	MinimumRegisterDeposit       string `json:"minimumRegisterDeposit"`
	VotingResultReductionPercent string `json:"votingResultReductionPercent"`
	CountingIntervalInSeconds    string `json:"countingIntervalInSeconds"`
	Appchains                    string `json:"appchains"`
	TopAppchainInQueue           string `json:"topAppchainInQueue,omitempty"`
	LastCount                    string `json:"lastCount,omitempty"`
}

func stateName(st *big.Int) string {
	return appchainstate.String(appchainstate.Type(st.Int64()))
}

func parseState(name string) (appchainstate.Type, error) {
	for t := appchainstate.Registered; t <= appchainstate.Dead; t++ {
		if appchainstate.String(t) == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown appchain state %q", name)
}

func newAppchainView(a *registry.RegistryAppchain) appchainView {
	v := appchainView{
		ID:              a.ID,
		Owner:           address.Uint160ToString(a.Owner),
		State:           stateName(a.State),
		VotingScore:     a.VotingScore.String(),
		RegisterDeposit: a.RegisterDeposit.String(),
		UpvoteDeposit:   a.UpvoteDeposit.String(),
		DownvoteDeposit: a.DownvoteDeposit.String(),
		Anchor:          a.Anchor,
		Registered:      time.UnixMilli(a.RegisteredTime.Int64()).UTC(),
	}
	if m := a.Metadata; m != nil {
		v.WebsiteURL = m.WebsiteURL
		v.FunctionSpecURL = m.FunctionSpecURL
		v.GithubAddress = m.GithubAddress
		v.GithubRelease = m.GithubRelease
		v.CommitID = m.CommitID
		v.ContactEmail = m.ContactEmail
		v.Custom = m.Custom
	}
	return v
}

// parseSortField converts sorting field name into the listing constant.
func parseSortField(name string) (int, error) {
	switch name {
	case "", "id":
		return cst.SortByAppchainID, nil
	case "score":
		return cst.SortByVotingScore, nil
	case "registered":
		return cst.SortByRegisteredTime, nil
	}
	return 0, fmt.Errorf("unknown sorting field %q", name)
}

func runList(c *cli.Context) error {
	if err := checkConnectionFlags(c); err != nil {
		return err
	}

	var st appchainstate.Type
	if name := c.String("state"); name != "" {
		var err error
		if st, err = parseState(name); err != nil {
			return err
		}
	}

	sortBy, err := parseSortField(c.String("sort"))
	if err != nil {
		return err
	}

	order := cst.OrderAscending
	if c.Bool("desc") {
		order = cst.OrderDescending
	}

	limit := c.Int("limit")
	if limit <= 0 || limit > cst.MaxListLimit {
		return fmt.Errorf("limit must be in [1, %d]", cst.MaxListLimit)
	}

	reg, err := dialRegistry(context.Background(), c.String("rpc"), c.String("contract"))
	if err != nil {
		return err
	}
	defer reg.close()

	list, err := reg.reader.ListAppchains(big.NewInt(int64(st)), big.NewInt(int64(sortBy)),
		big.NewInt(int64(order)), big.NewInt(int64(c.Int("start"))), big.NewInt(int64(limit)))
	if err != nil {
		return fmt.Errorf("list appchains: %w", err)
	}

	for _, a := range list {
		_, _ = fmt.Fprintf(c.App.Writer, "%s\t%s\t%s\t%s\t%s\n",
			a.ID, stateName(a.State), a.VotingScore,
			time.UnixMilli(a.RegisteredTime.Int64()).UTC().Format(time.RFC3339),
			address.Uint160ToString(a.Owner))
	}

	return nil
}

func runShow(c *cli.Context) error {
	if err := checkConnectionFlags(c); err != nil {
		return err
	}

	reg, err := dialRegistry(context.Background(), c.String("rpc"), c.String("contract"))
	if err != nil {
		return err
	}
	defer reg.close()

	if id := c.Args().First(); id != "" {
		a, err := reg.reader.GetAppchain(id)
		if err != nil {
			return fmt.Errorf("get appchain %s: %w", id, err)
		}
		return printJSON(c, newAppchainView(a))
	}

	v, err := readRegistryView(reg.reader)
	if err != nil {
		return err
	}

	return printJSON(c, v)
}

func readRegistryView(r *registry.ContractReader) (registryView, error) {
	var v registryView

	ver, err := r.Version()
	if err != nil {
		return v, fmt.Errorf("get version: %w", err)
	}
	v.Version = formatVersion(ver.Int64())

	owner, err := r.Owner()
	if err != nil {
		return v, fmt.Errorf("get owner: %w", err)
	}
	v.Owner = address.Uint160ToString(owner)

	roles, err := r.GetRoles()
	if err != nil {
		return v, fmt.Errorf("get roles: %w", err)
	}
	v.LifecycleManager = addressOrEmpty(roles.LifecycleManager)
	v.SettingsManager = addressOrEmpty(roles.SettingsManager)

	s, err := r.GetSettings()
	if err != nil {
		return v, fmt.Errorf("get settings: %w", err)
	}
	v.CountingOperator = addressOrEmpty(s.CountingOperator)
	v.MinimumRegisterDeposit = s.MinimumRegisterDeposit.String()
	v.VotingResultReductionPercent = s.VotingResultReductionPercent.String()
	v.CountingIntervalInSeconds = s.CountingIntervalInSeconds.String()

	n, err := r.Count()
	if err != nil {
		return v, fmt.Errorf("get number of appchains: %w", err)
	}
	v.Appchains = n.String()

	if v.TopAppchainInQueue, err = r.TopAppchainInQueue(); err != nil {
		return v, fmt.Errorf("get top appchain: %w", err)
	}

	last, err := r.TimeOfLastCount()
	if err != nil {
		return v, fmt.Errorf("get time of last count: %w", err)
	}
	if last.Sign() > 0 {
		v.LastCount = time.UnixMilli(last.Int64()).UTC().Format(time.RFC3339)
	}

	return v, nil
}

func addressOrEmpty(h util.Uint160) string {
	if h.Equals(util.Uint160{}) {
		return ""
	}
	return address.Uint160ToString(h)
}

// formatVersion decodes version number encoded as major*1_000_000 +
// minor*1_000 + patch.
func formatVersion(v int64) string {
	return fmt.Sprintf("%d.%d.%d", v/1_000_000, v/1_000%1_000, v%1_000)
}

type storageItem struct {
	Key   []byte `json:"key"`
	Value []byte `json:"value"`
}

// runDump prints registry storage as JSON array of base64-encoded key-value
// pairs. Requires state service enabled on the RPC node.
func runDump(c *cli.Context) error {
	if err := checkConnectionFlags(c); err != nil {
		return err
	}

	reg, err := dialRegistry(context.Background(), c.String("rpc"), c.String("contract"))
	if err != nil {
		return err
	}
	defer reg.close()

	var items []storageItem
	err = reg.iterateStorage(func(key, value []byte) error {
		items = append(items, storageItem{Key: key, Value: value})
		return nil
	})
	if err != nil {
		return err
	}

	return printJSON(c, items)
}
