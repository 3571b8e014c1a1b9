package tests

import (
	"path"
	"testing"

	"github.com/nspcc-dev/appchain-registry/common"
	"github.com/nspcc-dev/appchain-registry/contracts/registry/appchainstate"
	cst "github.com/nspcc-dev/appchain-registry/contracts/registry/registryconst"
	"github.com/nspcc-dev/appchain-registry/rpc/registry"
	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/core/native/nativenames"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

const registryPath = "../contracts/registry"

const (
	minRegisterDeposit = 10_0000_0000
	reductionPercent   = 50
	countingIntervalS  = 60
	countingIntervalMS = countingIntervalS * 1000
)

type registryEnv struct {
	e    *neotest.Executor
	hash util.Uint160
	gas  util.Uint160

	owner    neotest.Signer
	operator neotest.Signer

	// Invokers signed by the registry owner, counting operator and committee.
	byOwner     *neotest.ContractInvoker
	byOperator  *neotest.ContractInvoker
	byCommittee *neotest.ContractInvoker
}

func newRegistry(t *testing.T) *registryEnv {
	e := newExecutor(t)

	owner := e.NewAccount(t)
	operator := e.NewAccount(t)

	ctr := neotest.CompileFile(t, e.CommitteeHash, registryPath, path.Join(registryPath, "config.yml"))
	e.DeployContract(t, ctr, []any{owner.ScriptHash(), minRegisterDeposit, reductionPercent,
		countingIntervalS, operator.ScriptHash()})

	return &registryEnv{
		e:           e,
		hash:        ctr.Hash,
		gas:         e.NativeHash(t, nativenames.Gas),
		owner:       owner,
		operator:    operator,
		byOwner:     e.NewInvoker(ctr.Hash, owner),
		byOperator:  e.NewInvoker(ctr.Hash, operator),
		byCommittee: e.CommitteeInvoker(ctr.Hash),
	}
}

func (r *registryEnv) as(s neotest.Signer) *neotest.ContractInvoker {
	return r.e.NewInvoker(r.hash, s)
}

func registerData(id string) []any {
	return []any{cst.ActionRegister, id, "https://" + id + ".org", "https://" + id + ".org/spec",
		"https://github.com/" + id, "v0.1.0", "8d2f0e1", "team@" + id + ".org"}
}

func (r *registryEnv) register(t *testing.T, from neotest.Signer, id string) {
	r.e.NewInvoker(r.gas, from).Invoke(t, true, "transfer",
		from.ScriptHash(), r.hash, minRegisterDeposit, registerData(id))
}

func (r *registryEnv) vote(t *testing.T, voter neotest.Signer, kind string, id string, amount int64) {
	r.e.NewInvoker(r.gas, voter).Invoke(t, true, "transfer",
		voter.ScriptHash(), r.hash, amount, []any{kind, id})
}

// queue registers appchains and moves them into the voting queue.
func (r *registryEnv) queue(t *testing.T, from neotest.Signer, ids ...string) {
	for _, id := range ids {
		r.register(t, from, id)
		r.byOwner.Invoke(t, stackitem.Null{}, "startAuditingAppchain", id)
		r.byOwner.Invoke(t, stackitem.Null{}, "passAuditingAppchain", id)
	}
}

func (r *registryEnv) appchain(t *testing.T, id string) *registry.RegistryAppchain {
	s, err := r.byOwner.TestInvoke(t, "getAppchain", id)
	require.NoError(t, err)

	var a registry.RegistryAppchain
	require.NoError(t, a.FromStackItem(s.Pop().Item()))
	return &a
}

func (r *registryEnv) requireState(t *testing.T, id string, st appchainstate.Type) {
	a := r.appchain(t, id)
	require.Equal(t, int64(st), a.State.Int64(), "appchain %s is %s", id, appchainstate.String(appchainstate.Type(a.State.Int64())))
}

func (r *registryEnv) requireScore(t *testing.T, id string, score int64) {
	require.Equal(t, score, r.appchain(t, id).VotingScore.Int64(), "voting score of %s", id)
}

// setTime adds a block with the given timestamp. The next transaction is
// executed in a block with timestamp ts+1.
func (r *registryEnv) setTime(t *testing.T, ts uint64) {
	b := r.e.NewUnsignedBlock(t)
	b.Timestamp = ts
	require.NoError(t, r.e.Chain.AddBlock(r.e.SignBlock(b)))
}

// nextInterval returns the interval boundary far enough from the current
// chain time.
func (r *registryEnv) nextInterval(t *testing.T) uint64 {
	top := r.e.TopBlock(t)
	return (top.Timestamp/countingIntervalMS + 10) * countingIntervalMS
}

// count counts voting score at time ts.
func (r *registryEnv) count(t *testing.T, ts uint64) {
	r.setTime(t, ts-1)
	r.byOperator.Invoke(t, stackitem.Null{}, "countVotingScore")
}

// requireOwner checks registry owner. Stored hash is returned as a Buffer, so
// it's compared by bytes.
func (r *registryEnv) requireOwner(t *testing.T, owner util.Uint160) {
	s, err := r.byOwner.TestInvoke(t, "owner")
	require.NoError(t, err)

	h, err := util.Uint160DecodeBytesBE(s.Pop().Bytes())
	require.NoError(t, err)
	require.Equal(t, owner, h)
}

func applicationLog(t *testing.T, c *neotest.ContractInvoker, h util.Uint256) *result.ApplicationLog {
	aer := c.CheckHalt(t, h)
	return &result.ApplicationLog{
		Container:  h,
		Executions: []state.Execution{aer.Execution},
	}
}

func TestRegistryDeploy(t *testing.T) {
	r := newRegistry(t)

	r.requireOwner(t, r.owner.ScriptHash())
	r.byOwner.Invoke(t, 0, "count")
	r.byOwner.Invoke(t, 0, "timeOfLastCount")
	r.byOwner.Invoke(t, "", "topAppchainInQueue")

	s, err := r.byOwner.TestInvoke(t, "getSettings")
	require.NoError(t, err)
	var settings registry.RegistrySettings
	require.NoError(t, settings.FromStackItem(s.Pop().Item()))
	require.EqualValues(t, minRegisterDeposit, settings.MinimumRegisterDeposit.Int64())
	require.EqualValues(t, reductionPercent, settings.VotingResultReductionPercent.Int64())
	require.EqualValues(t, countingIntervalS, settings.CountingIntervalInSeconds.Int64())
	require.Equal(t, r.operator.ScriptHash(), settings.CountingOperator)

	s, err = r.byOwner.TestInvoke(t, "getRoles")
	require.NoError(t, err)
	var roles registry.RegistryRoles
	require.NoError(t, roles.FromStackItem(s.Pop().Item()))
	require.Equal(t, r.owner.ScriptHash(), roles.LifecycleManager)
	require.Equal(t, r.owner.ScriptHash(), roles.SettingsManager)
}

func TestRegistryRegister(t *testing.T) {
	r := newRegistry(t)
	acc := r.e.NewAccount(t)
	gasInv := r.e.NewInvoker(r.gas, acc)

	gasInv.InvokeFail(t, cst.ErrInsufficientDeposit, "transfer",
		acc.ScriptHash(), r.hash, minRegisterDeposit-1, registerData("chain"))
	gasInv.InvokeFail(t, cst.ErrInvalidArguments, "transfer",
		acc.ScriptHash(), r.hash, minRegisterDeposit, registerData("")[:3])
	gasInv.InvokeFail(t, cst.ErrInvalidArguments, "transfer",
		acc.ScriptHash(), r.hash, minRegisterDeposit, registerData(""))
	gasInv.InvokeFail(t, cst.ErrUnknownAction, "transfer",
		acc.ScriptHash(), r.hash, minRegisterDeposit, []any{"buy", "chain"})

	h := gasInv.Invoke(t, true, "transfer", acc.ScriptHash(), r.hash, minRegisterDeposit+1, registerData("chain"))
	events, err := registry.AppchainRegisteredEventsFromApplicationLog(applicationLog(t, gasInv, h))
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, "chain", events[0].ID)
	require.Equal(t, acc.ScriptHash(), events[0].Owner)

	gasInv.InvokeFail(t, cst.ErrAlreadyExists, "transfer",
		acc.ScriptHash(), r.hash, minRegisterDeposit, registerData("chain"))

	a := r.appchain(t, "chain")
	require.Equal(t, "chain", a.ID)
	require.Equal(t, acc.ScriptHash(), a.Owner)
	require.EqualValues(t, appchainstate.Registered, a.State.Int64())
	require.EqualValues(t, minRegisterDeposit+1, a.RegisterDeposit.Int64())
	require.Zero(t, a.UpvoteDeposit.Sign())
	require.Zero(t, a.DownvoteDeposit.Sign())
	require.Zero(t, a.VotingScore.Sign())
	require.Empty(t, a.Anchor)
	require.Equal(t, "https://chain.org/spec", a.Metadata.FunctionSpecURL)
	require.Empty(t, a.Metadata.Custom)
	require.NotZero(t, a.RegisteredTime.Sign())

	r.byOwner.Invoke(t, 1, "count")
	r.byOwner.InvokeFail(t, cst.ErrNotFound, "getAppchain", "unknown")

	s, err := r.byOwner.TestInvoke(t, "appchainIDs")
	require.NoError(t, err)
	ids := iteratorToArray(s.Pop().Value().(*storage.Iterator))
	require.Equal(t, []stackitem.Item{stackitem.Make("chain")}, ids)
}

func TestRegistryLifecycle(t *testing.T) {
	r := newRegistry(t)
	appOwner := r.e.NewAccount(t)
	stranger := r.as(r.e.NewAccount(t))

	r.register(t, appOwner, "chain")

	stranger.InvokeFail(t, cst.ErrNotFound, "startAuditingAppchain", "unknown")
	stranger.InvokeFail(t, cst.ErrRegistryOwnerWitness, "startAuditingAppchain", "chain")
	r.as(appOwner).InvokeFail(t, cst.ErrRegistryOwnerWitness, "startAuditingAppchain", "chain")

	r.byOwner.InvokeFail(t, cst.ErrInvalidStateTransition, "passAuditingAppchain", "chain")

	h := r.byOwner.Invoke(t, stackitem.Null{}, "startAuditingAppchain", "chain")
	events, err := registry.StateChangedEventsFromApplicationLog(applicationLog(t, r.byOwner, h))
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, "chain", events[0].ID)
	require.EqualValues(t, appchainstate.Auditing, events[0].State.Int64())

	r.byOwner.InvokeFail(t, cst.ErrInvalidStateTransition, "startAuditingAppchain", "chain")
	r.byOwner.Invoke(t, stackitem.Null{}, "passAuditingAppchain", "chain")
	r.requireState(t, "chain", appchainstate.InQueue)

	r.byCommittee.InvokeFail(t, cst.ErrInvalidStateTransition, "goBooting", "chain")

	r.byOwner.Invoke(t, stackitem.Null{}, "rejectAppchain", "chain")
	r.requireState(t, "chain", appchainstate.Dead)
	r.byOwner.InvokeFail(t, cst.ErrInvalidStateTransition, "rejectAppchain", "chain")

	r.byOwner.Invoke(t, stackitem.Null{}, "removeAppchain", "chain")
	r.byOwner.InvokeFail(t, cst.ErrNotFound, "getAppchain", "chain")
	r.byOwner.Invoke(t, 0, "count")
}

func TestRegistryRejectRegistered(t *testing.T) {
	r := newRegistry(t)
	r.register(t, r.e.NewAccount(t), "chain")

	r.byOwner.InvokeFail(t, cst.ErrInvalidStateTransition, "removeAppchain", "chain")
	r.byOwner.Invoke(t, stackitem.Null{}, "rejectAppchain", "chain")
	r.requireState(t, "chain", appchainstate.Dead)
}

func TestRegistryDelegatedRoles(t *testing.T) {
	r := newRegistry(t)
	manager := r.e.NewAccount(t)
	settingsManager := r.e.NewAccount(t)

	r.register(t, r.e.NewAccount(t), "chain")

	byManager := r.as(manager)
	bySettingsManager := r.as(settingsManager)

	byManager.InvokeFail(t, cst.ErrRegistryOwnerWitness, "startAuditingAppchain", "chain")
	byManager.InvokeFail(t, cst.ErrRegistryOwnerWitness, "changeLifecycleManager", manager.ScriptHash())

	r.byOwner.Invoke(t, stackitem.Null{}, "changeLifecycleManager", manager.ScriptHash())
	r.byOwner.Invoke(t, stackitem.Null{}, "changeSettingsManager", settingsManager.ScriptHash())

	byManager.Invoke(t, stackitem.Null{}, "startAuditingAppchain", "chain")
	byManager.InvokeFail(t, cst.ErrRegistryOwnerWitness, "changeCountingInterval", 10)
	bySettingsManager.InvokeFail(t, cst.ErrRegistryOwnerWitness, "passAuditingAppchain", "chain")

	// Registry owner keeps its rights.
	r.byOwner.Invoke(t, stackitem.Null{}, "passAuditingAppchain", "chain")

	bySettingsManager.InvokeFail(t, cst.ErrInvalidArguments, "changeVotingResultReductionPercent", 101)
	bySettingsManager.InvokeFail(t, cst.ErrInvalidArguments, "changeVotingResultReductionPercent", -1)
	bySettingsManager.InvokeFail(t, cst.ErrInvalidArguments, "changeCountingInterval", 0)
	bySettingsManager.InvokeFail(t, cst.ErrInvalidArguments, "changeMinimumRegisterDeposit", -1)

	bySettingsManager.Invoke(t, stackitem.Null{}, "changeVotingResultReductionPercent", 100)
	bySettingsManager.Invoke(t, stackitem.Null{}, "changeCountingInterval", 10)
	bySettingsManager.Invoke(t, stackitem.Null{}, "changeMinimumRegisterDeposit", 1)
	bySettingsManager.Invoke(t, stackitem.Null{}, "changeCountingOperator", manager.ScriptHash())

	s, err := r.byOwner.TestInvoke(t, "getSettings")
	require.NoError(t, err)
	var settings registry.RegistrySettings
	require.NoError(t, settings.FromStackItem(s.Pop().Item()))
	require.EqualValues(t, 1, settings.MinimumRegisterDeposit.Int64())
	require.EqualValues(t, 100, settings.VotingResultReductionPercent.Int64())
	require.EqualValues(t, 10, settings.CountingIntervalInSeconds.Int64())
	require.Equal(t, manager.ScriptHash(), settings.CountingOperator)

	newOwner := r.e.NewAccount(t)
	byManager.InvokeFail(t, cst.ErrRegistryOwnerWitness, "transferRegistryOwnership", newOwner.ScriptHash())
	r.byOwner.Invoke(t, stackitem.Null{}, "transferRegistryOwnership", newOwner.ScriptHash())
	r.requireOwner(t, newOwner.ScriptHash())
	r.byOwner.InvokeFail(t, cst.ErrRegistryOwnerWitness, "changeSettingsManager", newOwner.ScriptHash())
}

func TestRegistryAppchainOwner(t *testing.T) {
	r := newRegistry(t)
	appOwner := r.e.NewAccount(t)
	newOwner := r.e.NewAccount(t)

	r.register(t, appOwner, "chain")

	custom := stackitem.NewMapWithValue([]stackitem.MapElement{
		{Key: stackitem.Make("telegram"), Value: stackitem.Make("@chain")},
	})

	r.byOwner.InvokeFail(t, cst.ErrAppchainOwnerWitness, "updateAppchainCustomMetadata", "chain", custom)
	r.as(appOwner).InvokeFail(t, cst.ErrNotFound, "updateAppchainCustomMetadata", "unknown", custom)

	h := r.as(appOwner).Invoke(t, stackitem.Null{}, "updateAppchainCustomMetadata", "chain", custom)
	updates, err := registry.MetadataUpdatedEventsFromApplicationLog(applicationLog(t, r.byOwner, h))
	require.NoError(t, err)
	require.Len(t, updates, 1)
	require.Equal(t, appOwner.ScriptHash(), updates[0].By)
	require.Equal(t, map[string]string{"telegram": "@chain"}, r.appchain(t, "chain").Metadata.Custom)

	r.byOwner.InvokeFail(t, cst.ErrAppchainOwnerWitness, "transferAppchainOwnership", "chain", newOwner.ScriptHash())
	h = r.as(appOwner).Invoke(t, stackitem.Null{}, "transferAppchainOwnership", "chain", newOwner.ScriptHash())
	transfers, err := registry.OwnershipTransferredEventsFromApplicationLog(applicationLog(t, r.byOwner, h))
	require.NoError(t, err)
	require.Len(t, transfers, 1)
	require.Equal(t, newOwner.ScriptHash(), transfers[0].Owner)

	r.as(appOwner).InvokeFail(t, cst.ErrAppchainOwnerWitness, "updateAppchainCustomMetadata", "chain", custom)
	require.Equal(t, newOwner.ScriptHash(), r.appchain(t, "chain").Owner)
}

func TestRegistryUpdateMetadata(t *testing.T) {
	r := newRegistry(t)
	appOwner := r.e.NewAccount(t)
	r.register(t, appOwner, "chain")

	r.as(appOwner).InvokeFail(t, cst.ErrRegistryOwnerWitness, "updateAppchainMetadata",
		"chain", nil, "https://chain.org/spec/v2", nil, nil, nil, nil, nil)

	r.byOwner.Invoke(t, stackitem.Null{}, "updateAppchainMetadata",
		"chain", nil, "https://chain.org/spec/v2", nil, "v0.2.0", nil, nil, nil)

	a := r.appchain(t, "chain")
	require.Equal(t, "https://chain.org", a.Metadata.WebsiteURL)
	require.Equal(t, "https://chain.org/spec/v2", a.Metadata.FunctionSpecURL)
	require.Equal(t, "https://github.com/chain", a.Metadata.GithubAddress)
	require.Equal(t, "v0.2.0", a.Metadata.GithubRelease)
	require.Equal(t, "8d2f0e1", a.Metadata.CommitID)
	require.Equal(t, "team@chain.org", a.Metadata.ContactEmail)
}

func TestRegistryCustomMetadataValidation(t *testing.T) {
	r := newRegistry(t)
	appOwner := r.e.NewAccount(t)
	byAppOwner := r.as(appOwner)
	r.register(t, appOwner, "chain")
	r.register(t, appOwner, "other")

	intValue := stackitem.NewMapWithValue([]stackitem.MapElement{
		{Key: stackitem.Make("telegram"), Value: stackitem.Make(1)},
	})
	intKey := stackitem.NewMapWithValue([]stackitem.MapElement{
		{Key: stackitem.Make(1), Value: stackitem.Make("@chain")},
	})

	for _, bad := range []any{nil, "not-a-map", 42, []any{"telegram", "@chain"}, intValue, intKey} {
		byAppOwner.InvokeFail(t, cst.ErrInvalidArguments, "updateAppchainCustomMetadata", "chain", bad)
	}
	for _, bad := range []any{"not-a-map", intValue} {
		r.byOwner.InvokeFail(t, cst.ErrInvalidArguments, "updateAppchainMetadata",
			"chain", nil, nil, nil, nil, nil, nil, bad)
	}

	byAppOwner.Invoke(t, stackitem.Null{}, "updateAppchainCustomMetadata", "other", stackitem.NewMap())
	r.byOwner.Invoke(t, stackitem.Null{}, "updateAppchainMetadata", "chain", nil, nil, nil, nil, nil, nil,
		stackitem.NewMapWithValue([]stackitem.MapElement{
			{Key: stackitem.Make("discord"), Value: stackitem.Make("chain#1")},
		}))

	// All records stay decodable by the shared listing.
	s, err := r.byOwner.TestInvoke(t, "appchainsWithState", int64(appchainstate.Registered))
	require.NoError(t, err)
	arr, ok := s.Pop().Value().([]stackitem.Item)
	require.True(t, ok)
	require.Len(t, arr, 2)

	custom := make(map[string]map[string]string)
	for i := range arr {
		var a registry.RegistryAppchain
		require.NoError(t, a.FromStackItem(arr[i]))
		custom[a.ID] = a.Metadata.Custom
	}
	require.Equal(t, map[string]string{"discord": "chain#1"}, custom["chain"])
	require.Empty(t, custom["other"])
}

func (r *registryEnv) listIDs(t *testing.T, args ...any) []string {
	s, err := r.byOwner.TestInvoke(t, "listAppchains", args...)
	require.NoError(t, err)

	arr, ok := s.Pop().Value().([]stackitem.Item)
	require.True(t, ok)

	ids := make([]string, len(arr))
	for i := range arr {
		var a registry.RegistryAppchain
		require.NoError(t, a.FromStackItem(arr[i]))
		ids[i] = a.ID
	}
	return ids
}

func TestRegistryListAppchains(t *testing.T) {
	r := newRegistry(t)
	voter := r.e.NewAccount(t)
	appOwner := r.e.NewAccount(t)

	r.queue(t, appOwner, "b", "c", "a")
	r.register(t, appOwner, "d")
	r.vote(t, voter, cst.Upvote, "a", 30)
	r.vote(t, voter, cst.Upvote, "b", 10)
	r.vote(t, voter, cst.Upvote, "c", 10)
	r.count(t, r.nextInterval(t))

	const (
		all      = 0
		byID     = cst.SortByAppchainID
		byScore  = cst.SortByVotingScore
		byTime   = cst.SortByRegisteredTime
		asc      = cst.OrderAscending
		desc     = cst.OrderDescending
		inQueue  = int64(appchainstate.InQueue)
		maxLimit = cst.MaxListLimit
	)

	require.Equal(t, []string{"a", "b", "c", "d"}, r.listIDs(t, all, byID, asc, 0, maxLimit))
	require.Equal(t, []string{"d", "c", "b", "a"}, r.listIDs(t, all, byID, desc, 0, maxLimit))
	require.Equal(t, []string{"a", "b", "c"}, r.listIDs(t, inQueue, byScore, desc, 0, maxLimit))
	require.Equal(t, []string{"b", "c", "a"}, r.listIDs(t, inQueue, byScore, asc, 0, maxLimit))
	require.Equal(t, []string{"b", "c", "a", "d"}, r.listIDs(t, all, byTime, asc, 0, maxLimit))
	require.Equal(t, []string{"d", "a", "c", "b"}, r.listIDs(t, all, byTime, desc, 0, maxLimit))
	require.Equal(t, []string{"d"}, r.listIDs(t, int64(appchainstate.Registered), byID, asc, 0, maxLimit))

	require.Equal(t, []string{"b", "c"}, r.listIDs(t, all, byID, asc, 1, 2))
	require.Equal(t, []string{"d"}, r.listIDs(t, all, byID, asc, 3, 2))
	require.Empty(t, r.listIDs(t, all, byID, asc, 4, 2))
	require.Empty(t, r.listIDs(t, int64(appchainstate.Dead), byID, asc, 0, maxLimit))

	for _, args := range [][]any{
		{99, byID, asc, 0, 1},
		{all, 3, asc, 0, 1},
		{all, byID, 2, 0, 1},
		{all, byID, asc, -1, 1},
		{all, byID, asc, 0, 0},
		{all, byID, asc, 0, maxLimit + 1},
	} {
		r.byOwner.InvokeFail(t, cst.ErrInvalidArguments, "listAppchains", args...)
	}
}

func TestRegistryVotes(t *testing.T) {
	r := newRegistry(t)
	voter := r.e.NewAccount(t)

	r.register(t, r.e.NewAccount(t), "chain")

	gasInv := r.e.NewInvoker(r.gas, voter)
	gasInv.InvokeFail(t, cst.ErrVotingClosed, "transfer",
		voter.ScriptHash(), r.hash, 10, []any{cst.Upvote, "chain"})
	gasInv.InvokeFail(t, cst.ErrNotFound, "transfer",
		voter.ScriptHash(), r.hash, 10, []any{cst.Upvote, "unknown"})

	r.byOwner.Invoke(t, stackitem.Null{}, "startAuditingAppchain", "chain")
	r.byOwner.Invoke(t, stackitem.Null{}, "passAuditingAppchain", "chain")

	r.vote(t, voter, cst.Upvote, "chain", 30)
	r.vote(t, voter, cst.Upvote, "chain", 20)
	r.vote(t, voter, cst.Downvote, "chain", 7)

	a := r.appchain(t, "chain")
	require.EqualValues(t, 50, a.UpvoteDeposit.Int64())
	require.EqualValues(t, 7, a.DownvoteDeposit.Int64())
	r.byOwner.Invoke(t, 50, "voteOf", "chain", voter.ScriptHash(), cst.Upvote)
	r.byOwner.Invoke(t, 7, "voteOf", "chain", voter.ScriptHash(), cst.Downvote)
	r.byOwner.InvokeFail(t, cst.ErrUnknownVoteKind, "voteOf", "chain", voter.ScriptHash(), "sidevote")

	byVoter := r.as(voter)
	r.byOwner.InvokeFail(t, cst.ErrVoterWitness, "withdrawVote", voter.ScriptHash(), "chain", cst.Upvote, 10)
	byVoter.InvokeFail(t, cst.ErrInsufficientVote, "withdrawVote", voter.ScriptHash(), "chain", cst.Downvote, 8)
	byVoter.InvokeFail(t, cst.ErrInvalidAmount, "withdrawVote", voter.ScriptHash(), "chain", cst.Downvote, 0)

	h := byVoter.Invoke(t, stackitem.Null{}, "withdrawVote", voter.ScriptHash(), "chain", cst.Upvote, 10)
	withdrawals, err := registry.VoteWithdrawnEventsFromApplicationLog(applicationLog(t, byVoter, h))
	require.NoError(t, err)
	require.Len(t, withdrawals, 1)
	require.Equal(t, voter.ScriptHash(), withdrawals[0].Voter)
	require.Equal(t, cst.Upvote, withdrawals[0].Kind)
	require.EqualValues(t, 10, withdrawals[0].Amount.Int64())

	byVoter.Invoke(t, stackitem.Null{}, "withdrawVote", voter.ScriptHash(), "chain", cst.Downvote, 7)
	r.byOwner.Invoke(t, 40, "voteOf", "chain", voter.ScriptHash(), cst.Upvote)
	r.byOwner.Invoke(t, 0, "voteOf", "chain", voter.ScriptHash(), cst.Downvote)

	a = r.appchain(t, "chain")
	require.EqualValues(t, 40, a.UpvoteDeposit.Int64())
	require.Zero(t, a.DownvoteDeposit.Sign())
}

func TestRegistryCountVotingScore(t *testing.T) {
	r := newRegistry(t)
	voter := r.e.NewAccount(t)

	r.byOperator.InvokeFail(t, cst.ErrNoAppchains, "countVotingScore")

	r.queue(t, r.e.NewAccount(t), "a", "b")
	r.register(t, r.e.NewAccount(t), "registered")
	r.vote(t, voter, cst.Upvote, "a", 30)
	r.vote(t, voter, cst.Downvote, "a", 10)
	r.vote(t, voter, cst.Upvote, "b", 5)

	r.byOwner.InvokeFail(t, cst.ErrCountingOperatorWitness, "countVotingScore")

	base := r.nextInterval(t)
	r.count(t, base+5000)
	r.byOwner.Invoke(t, int64(base), "timeOfLastCount")
	r.requireScore(t, "a", 20)
	r.requireScore(t, "b", 5)
	r.requireScore(t, "registered", 0)
	r.byOwner.Invoke(t, "a", "topAppchainInQueue")

	// Exactly one interval after the boundary is not enough.
	r.setTime(t, base+countingIntervalMS-1)
	r.byOperator.InvokeFail(t, cst.ErrIntervalNotElapsed, "countVotingScore")
	r.requireScore(t, "a", 20)
	r.requireScore(t, "b", 5)

	h := r.byOperator.Invoke(t, stackitem.Null{}, "countVotingScore")
	r.byOwner.Invoke(t, int64(base+countingIntervalMS), "timeOfLastCount")
	r.requireScore(t, "a", 40)
	r.requireScore(t, "b", 10)

	counted, err := registry.VotingScoreCountedEventsFromApplicationLog(applicationLog(t, r.byOperator, h))
	require.NoError(t, err)
	require.Len(t, counted, 1)
	require.Equal(t, "a", counted[0].Top)

	r.byOperator.InvokeFail(t, cst.ErrIntervalNotElapsed, "countVotingScore")
}

func TestRegistryTopTieBreak(t *testing.T) {
	r := newRegistry(t)
	voter := r.e.NewAccount(t)

	r.queue(t, r.e.NewAccount(t), "a", "b")

	// No votes: the first appchain in queue becomes the top one.
	base := r.nextInterval(t)
	r.count(t, base+1)
	r.byOwner.Invoke(t, "a", "topAppchainInQueue")

	r.vote(t, voter, cst.Upvote, "a", 10)
	r.vote(t, voter, cst.Upvote, "b", 20)
	r.count(t, base+countingIntervalMS+1)
	r.byOwner.Invoke(t, "b", "topAppchainInQueue")

	// a: 10+40 = 50, b: 20+30 = 50, previous top is kept.
	r.vote(t, voter, cst.Upvote, "a", 30)
	r.vote(t, voter, cst.Upvote, "b", 10)
	r.count(t, base+2*countingIntervalMS+1)
	r.requireScore(t, "a", 50)
	r.requireScore(t, "b", 50)
	r.byOwner.Invoke(t, "b", "topAppchainInQueue")

	// Rejected top is dropped and is not restored by the next count.
	r.byOwner.Invoke(t, stackitem.Null{}, "rejectAppchain", "b")
	r.byOwner.Invoke(t, "", "topAppchainInQueue")
	r.count(t, base+3*countingIntervalMS+1)
	r.byOwner.Invoke(t, "a", "topAppchainInQueue")
}

func TestRegistryCountWithoutQueue(t *testing.T) {
	r := newRegistry(t)

	r.register(t, r.e.NewAccount(t), "a")

	base := r.nextInterval(t)
	r.count(t, base+1)
	r.byOwner.Invoke(t, "", "topAppchainInQueue")
	r.byOwner.Invoke(t, int64(base), "timeOfLastCount")
}

func TestRegistryConcludeVotingScore(t *testing.T) {
	r := newRegistry(t)
	voter := r.e.NewAccount(t)

	r.byOwner.InvokeFail(t, cst.ErrNoCandidate, "concludeVotingScore")

	r.queue(t, r.e.NewAccount(t), "a", "b", "c", "d")
	r.vote(t, voter, cst.Upvote, "a", 50)
	r.vote(t, voter, cst.Upvote, "b", 31)
	r.vote(t, voter, cst.Downvote, "d", 3)

	r.count(t, r.nextInterval(t)+1)
	r.byOwner.Invoke(t, "a", "topAppchainInQueue")

	r.byOperator.InvokeFail(t, cst.ErrRegistryOwnerWitness, "concludeVotingScore")

	h := r.byOwner.Invoke(t, stackitem.Null{}, "concludeVotingScore")

	a := r.appchain(t, "a")
	require.EqualValues(t, appchainstate.Staging, a.State.Int64())
	require.Equal(t, registry.AnchorName("a", r.hash), a.Anchor)

	// 31 * 50 / 100 is truncated.
	r.requireState(t, "b", appchainstate.InQueue)
	r.requireScore(t, "b", 15)
	r.requireState(t, "c", appchainstate.Dead)
	r.requireState(t, "d", appchainstate.Dead)
	r.byOwner.Invoke(t, "", "topAppchainInQueue")

	log := applicationLog(t, r.byOwner, h)
	anchors, err := registry.AnchorRequestedEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Len(t, anchors, 1)
	require.Equal(t, "a", anchors[0].ID)
	require.Equal(t, a.Anchor, anchors[0].Anchor)
	require.Equal(t, r.owner.ScriptHash(), anchors[0].Admin)

	id, registryHash, err := registry.ParseAnchorName(anchors[0].Anchor)
	require.NoError(t, err)
	require.Equal(t, "a", id)
	require.Equal(t, r.hash, registryHash)

	changes, err := registry.StateChangedEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Len(t, changes, 3)

	r.byOwner.InvokeFail(t, cst.ErrNoCandidate, "concludeVotingScore")

	// Staged appchain is controlled by the anchor.
	r.byOwner.InvokeFail(t, cst.ErrInvalidStateTransition, "rejectAppchain", "a")
	r.byOwner.InvokeFail(t, cst.ErrCommitteeWitness, "goBooting", "a")
	r.byCommittee.Invoke(t, stackitem.Null{}, "goBooting", "a")
	r.requireState(t, "a", appchainstate.Booting)

	s, err := r.byOwner.TestInvoke(t, "appchainsWithState", int64(appchainstate.Dead))
	require.NoError(t, err)
	dead := s.Pop().Array()
	require.Len(t, dead, 2)
}

func TestRegistryRemoveWithDeposits(t *testing.T) {
	r := newRegistry(t)
	voter := r.e.NewAccount(t)

	r.queue(t, r.e.NewAccount(t), "chain")
	r.vote(t, voter, cst.Upvote, "chain", 20)
	r.vote(t, voter, cst.Downvote, "chain", 5)

	r.byOwner.Invoke(t, stackitem.Null{}, "rejectAppchain", "chain")
	r.byOwner.InvokeFail(t, cst.ErrPendingDeposits, "removeAppchain", "chain")

	byVoter := r.as(voter)
	byVoter.Invoke(t, stackitem.Null{}, "withdrawVote", voter.ScriptHash(), "chain", cst.Upvote, 20)
	r.byOwner.InvokeFail(t, cst.ErrPendingDeposits, "removeAppchain", "chain")
	byVoter.Invoke(t, stackitem.Null{}, "withdrawVote", voter.ScriptHash(), "chain", cst.Downvote, 5)

	h := r.byOwner.Invoke(t, stackitem.Null{}, "removeAppchain", "chain")
	removed, err := registry.AppchainRemovedEventsFromApplicationLog(applicationLog(t, r.byOwner, h))
	require.NoError(t, err)
	require.Len(t, removed, 1)
	require.Equal(t, "chain", removed[0].ID)

	r.byOwner.Invoke(t, 0, "count")
}

func TestRegistryDeleteAppchain(t *testing.T) {
	r := newRegistry(t)
	voter := r.e.NewAccount(t)

	r.queue(t, r.e.NewAccount(t), "voted", "empty")
	r.vote(t, voter, cst.Upvote, "voted", 1)
	r.count(t, r.nextInterval(t)+1)
	r.byOwner.Invoke(t, "voted", "topAppchainInQueue")

	r.byOwner.InvokeFail(t, cst.ErrCommitteeWitness, "deleteAppchain", "voted")
	r.byCommittee.InvokeFail(t, cst.ErrNotFound, "deleteAppchain", "unknown")

	r.byCommittee.Invoke(t, stackitem.Null{}, "deleteAppchain", "voted")
	r.requireState(t, "voted", appchainstate.Dead)
	r.byOwner.Invoke(t, "", "topAppchainInQueue")

	// Repeated deletion keeps dead appchain until deposits are withdrawn.
	r.byCommittee.Invoke(t, stackitem.Null{}, "deleteAppchain", "voted")
	r.byOwner.Invoke(t, 2, "count")

	r.byCommittee.Invoke(t, stackitem.Null{}, "deleteAppchain", "empty")
	r.byOwner.InvokeFail(t, cst.ErrNotFound, "getAppchain", "empty")

	r.as(voter).Invoke(t, stackitem.Null{}, "withdrawVote", voter.ScriptHash(), "voted", cst.Upvote, 1)
	r.byCommittee.Invoke(t, stackitem.Null{}, "deleteAppchain", "voted")
	r.byOwner.Invoke(t, 0, "count")
}

func TestRegistryClearAppchains(t *testing.T) {
	r := newRegistry(t)
	voter := r.e.NewAccount(t)
	appOwner := r.e.NewAccount(t)

	for _, id := range []string{"a", "b", "d", "e"} {
		r.register(t, appOwner, id)
	}
	r.queue(t, appOwner, "c")
	r.vote(t, voter, cst.Downvote, "c", 1)

	r.byOwner.InvokeFail(t, cst.ErrCommitteeWitness, "clearAppchains", 2, "")
	r.byCommittee.InvokeFail(t, cst.ErrInvalidArguments, "clearAppchains", 0, "")

	h := r.byCommittee.Invoke(t, "b", "clearAppchains", 2, "")
	incomplete, err := registry.ClearIncompleteEventsFromApplicationLog(applicationLog(t, r.byCommittee, h))
	require.NoError(t, err)
	require.Len(t, incomplete, 1)
	require.Equal(t, "b", incomplete[0].Cursor)
	r.byOwner.Invoke(t, 3, "count")

	r.byCommittee.Invoke(t, "d", "clearAppchains", 2, "b")
	r.requireState(t, "c", appchainstate.Dead)
	r.byOwner.Invoke(t, 2, "count")

	// Removed cursor is still a valid starting point.
	h = r.byCommittee.Invoke(t, "", "clearAppchains", 2, "d")
	incomplete, err = registry.ClearIncompleteEventsFromApplicationLog(applicationLog(t, r.byCommittee, h))
	require.NoError(t, err)
	require.Empty(t, incomplete)

	s, err := r.byOwner.TestInvoke(t, "appchainIDs")
	require.NoError(t, err)
	require.Equal(t, []stackitem.Item{stackitem.Make("c")}, iteratorToArray(s.Pop().Value().(*storage.Iterator)))

	// Clearing is resumable from scratch.
	r.byCommittee.Invoke(t, "", "clearAppchains", 10, "")
	r.requireState(t, "c", appchainstate.Dead)
}

func TestRegistryAddAppchainID(t *testing.T) {
	r := newRegistry(t)
	r.register(t, r.e.NewAccount(t), "chain")

	r.byOwner.InvokeFail(t, cst.ErrCommitteeWitness, "addAppchainID", "chain")
	r.byCommittee.InvokeFail(t, cst.ErrNotFound, "addAppchainID", "unknown")
	r.byCommittee.Invoke(t, stackitem.Null{}, "addAppchainID", "chain")
	r.byCommittee.Invoke(t, stackitem.Null{}, "addAppchainID", "chain")
	r.byOwner.Invoke(t, 1, "count")
	r.requireState(t, "chain", appchainstate.Registered)
}

func TestRegistryVersion(t *testing.T) {
	r := newRegistry(t)
	r.byOwner.Invoke(t, common.Version, "version")
}
