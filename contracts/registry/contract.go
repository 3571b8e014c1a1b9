package registry

import (
	"github.com/nspcc-dev/appchain-registry/common"
	"github.com/nspcc-dev/appchain-registry/contracts/registry/appchainstate"
	cst "github.com/nspcc-dev/appchain-registry/contracts/registry/registryconst"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/crypto"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

type (
	// Metadata contains descriptive information about the appchain.
	Metadata struct {
		WebsiteURL      string
		FunctionSpecURL string
		GithubAddress   string
		GithubRelease   string
		CommitID        string
		ContactEmail    string
		Custom          map[string]string
	}

	// Appchain is a registry record of a single appchain.
	Appchain struct {
		ID              string
		Owner           interop.Hash160
		State           appchainstate.Type
		Metadata        Metadata
		RegisterDeposit int
		UpvoteDeposit   int
		DownvoteDeposit int
		VotingScore     int
		Anchor          string
		RegisteredTime  int
	}

	// Settings are the registry-wide parameters of the election.
	Settings struct {
		MinimumRegisterDeposit       int
		VotingResultReductionPercent int
		CountingIntervalInSeconds    int
		CountingOperator             interop.Hash160
	}

	// Roles are the accounts acting on behalf of the registry owner.
	Roles struct {
		LifecycleManager interop.Hash160
		SettingsManager  interop.Hash160
	}
)

const (
	appchainKeyPrefix = 'a'
	indexKeyPrefix    = 'i'

	upvoteKeyPrefix   = "vu"
	downvoteKeyPrefix = "vd"

	topKey       = "top"
	lastCountKey = "lastCount"
	settingsKey  = "settings"
	rolesKey     = "roles"
	ownerKey     = "owner"
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()
	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.(struct {
		owner                     interop.Hash160
		minimumRegisterDeposit    int
		reductionPercent          int
		countingIntervalInSeconds int
		countingOperator          interop.Hash160
	})

	if len(args.owner) != interop.Hash160Len {
		panic("incorrect length of owner address")
	}
	if len(args.countingOperator) != interop.Hash160Len {
		panic("incorrect length of counting operator address")
	}
	checkSettings(args.minimumRegisterDeposit, args.reductionPercent, args.countingIntervalInSeconds)

	storage.Put(ctx, ownerKey, args.owner)
	common.SetSerialized(ctx, rolesKey, Roles{
		LifecycleManager: args.owner,
		SettingsManager:  args.owner,
	})
	common.SetSerialized(ctx, settingsKey, Settings{
		MinimumRegisterDeposit:       args.minimumRegisterDeposit,
		VotingResultReductionPercent: args.reductionPercent,
		CountingIntervalInSeconds:    args.countingIntervalInSeconds,
		CountingOperator:             args.countingOperator,
	})
	storage.Put(ctx, lastCountKey, 0)

	runtime.Log("registry contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by the committee.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic(cst.ErrCommitteeWitness)
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("registry contract updated")
}

// GetAppchain returns the record of the appchain with the given ID. It panics
// if there is no such appchain.
func GetAppchain(id string) Appchain {
	return getAppchain(storage.GetReadOnlyContext(), id)
}

// AppchainIDs returns iterator over the IDs of all registered appchains.
func AppchainIDs() iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, []byte{indexKeyPrefix}, storage.KeysOnly|storage.RemovePrefix)
}

// Count returns the number of registered appchains.
func Count() int {
	return len(listIDs(storage.GetReadOnlyContext()))
}

// AppchainsWithState returns records of all appchains in the given state.
func AppchainsWithState(state int) []Appchain {
	ctx := storage.GetReadOnlyContext()
	ids := listIDs(ctx)

	result := []Appchain{}
	for i := 0; i < len(ids); i++ { //nolint:intrange // Not supported by NeoGo
		a := getAppchain(ctx, ids[i])
		if int(a.State) == state {
			result = append(result, a)
		}
	}

	return result
}

// ListAppchains returns a page of appchain records sorted by the given field
// in the given order. Appchains with equal sorting field follow in ID order.
// Zero state selects appchains in all states. The page starts at the start
// index of the sorted list and holds at most limit records.
func ListAppchains(state int, sortBy int, order int, start int, limit int) []Appchain {
	if state != 0 && !appchainstate.IsValid(appchainstate.Type(state)) {
		panic(cst.ErrInvalidArguments + ": unknown appchain state")
	}
	if sortBy < cst.SortByAppchainID || sortBy > cst.SortByRegisteredTime {
		panic(cst.ErrInvalidArguments + ": unknown sorting field")
	}
	if order != cst.OrderAscending && order != cst.OrderDescending {
		panic(cst.ErrInvalidArguments + ": unknown sorting order")
	}
	if start < 0 || limit <= 0 || limit > cst.MaxListLimit {
		panic(cst.ErrInvalidArguments + ": invalid page")
	}

	ctx := storage.GetReadOnlyContext()
	ids := listIDs(ctx)

	list := []Appchain{}
	for i := 0; i < len(ids); i++ { //nolint:intrange // Not supported by NeoGo
		a := getAppchain(ctx, ids[i])
		if state == 0 || int(a.State) == state {
			list = append(list, a)
		}
	}

	// Insertion sort keeps ID order of the equal records.
	for i := 1; i < len(list); i++ { //nolint:intrange // Not supported by NeoGo
		cur := list[i]
		j := i - 1
		for j >= 0 && precedes(cur, list[j], sortBy, order) {
			list[j+1] = list[j]
			j--
		}
		list[j+1] = cur
	}

	page := []Appchain{}
	for i := start; i < len(list) && len(page) < limit; i++ {
		page = append(page, list[i])
	}

	return page
}

// TopAppchainInQueue returns the ID of the current election leader. Empty
// string is returned if there is no leader.
func TopAppchainInQueue() string {
	return getTop(storage.GetReadOnlyContext())
}

// TimeOfLastCount returns the interval-aligned time of the last voting score
// count in milliseconds.
func TimeOfLastCount() int {
	return storage.Get(storage.GetReadOnlyContext(), lastCountKey).(int)
}

// GetSettings returns current registry settings.
func GetSettings() Settings {
	return getSettings(storage.GetReadOnlyContext())
}

// GetRoles returns current lifecycle and settings managers.
func GetRoles() Roles {
	return getRoles(storage.GetReadOnlyContext())
}

// Owner returns the registry owner.
func Owner() interop.Hash160 {
	return getOwner(storage.GetReadOnlyContext())
}

// VoteOf returns the amount of GAS deposited by the voter for the appchain.
func VoteOf(id string, voter interop.Hash160, kind string) int {
	return getVote(storage.GetReadOnlyContext(), voteKey(kind, id, voter))
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// precedes checks whether a goes before b in the listing.
func precedes(a, b Appchain, sortBy int, order int) bool {
	var diff int
	switch sortBy {
	case cst.SortByVotingScore:
		diff = a.VotingScore - b.VotingScore
	case cst.SortByRegisteredTime:
		diff = a.RegisteredTime - b.RegisteredTime
	default:
		diff = std.MemoryCompare([]byte(a.ID), []byte(b.ID))
	}

	if order == cst.OrderDescending {
		diff = -diff
	}
	if diff != 0 {
		return diff < 0
	}

	return std.MemoryCompare([]byte(a.ID), []byte(b.ID)) < 0
}

func appchainKey(id string) []byte {
	return append([]byte{appchainKeyPrefix}, []byte(id)...)
}

func indexKey(id string) []byte {
	return append([]byte{indexKeyPrefix}, []byte(id)...)
}

func voteKey(kind string, id string, voter interop.Hash160) []byte {
	var prefix string
	switch kind {
	case cst.Upvote:
		prefix = upvoteKeyPrefix
	case cst.Downvote:
		prefix = downvoteKeyPrefix
	default:
		panic(cst.ErrUnknownVoteKind)
	}

	key := append([]byte(prefix), crypto.Ripemd160([]byte(id))...)
	return append(key, voter...)
}

func getAppchain(ctx storage.Context, id string) Appchain {
	data := storage.Get(ctx, appchainKey(id))
	if data == nil {
		panic(cst.ErrNotFound + ": " + id)
	}

	return std.Deserialize(data.([]byte)).(Appchain)
}

func appchainExists(ctx storage.Context, id string) bool {
	return storage.Get(ctx, appchainKey(id)) != nil
}

// putAppchain stores the record and its index entry together.
func putAppchain(ctx storage.Context, a Appchain) {
	common.SetSerialized(ctx, appchainKey(a.ID), a)
	storage.Put(ctx, indexKey(a.ID), []byte{})
}

// removeAppchain deletes the record and its index entry together.
func removeAppchain(ctx storage.Context, id string) {
	storage.Delete(ctx, appchainKey(id))
	storage.Delete(ctx, indexKey(id))
}

// listIDs returns IDs from the index in lexicographic order.
func listIDs(ctx storage.Context) []string {
	ids := []string{}

	it := storage.Find(ctx, []byte{indexKeyPrefix}, storage.KeysOnly|storage.RemovePrefix)
	for iterator.Next(it) {
		ids = append(ids, iterator.Value(it).(string))
	}

	return ids
}

func getTop(ctx storage.Context) string {
	v := storage.Get(ctx, topKey)
	if v == nil {
		return ""
	}
	return v.(string)
}

func setTop(ctx storage.Context, id string) {
	if id == "" {
		storage.Delete(ctx, topKey)
		return
	}
	storage.Put(ctx, topKey, id)
}

// dropFromTop clears the top pointer if it names the given appchain.
func dropFromTop(ctx storage.Context, id string) {
	if getTop(ctx) == id {
		setTop(ctx, "")
	}
}

func getSettings(ctx storage.Context) Settings {
	return common.GetSerialized(ctx, settingsKey).(Settings)
}

func getRoles(ctx storage.Context) Roles {
	return common.GetSerialized(ctx, rolesKey).(Roles)
}

func getOwner(ctx storage.Context) interop.Hash160 {
	return storage.Get(ctx, ownerKey).(interop.Hash160)
}

func checkSettings(minDeposit, reductionPercent, intervalSec int) {
	if minDeposit < 0 {
		panic(cst.ErrInvalidArguments + ": negative minimum register deposit")
	}
	if reductionPercent < 0 || reductionPercent > cst.MaxReductionPercent {
		panic(cst.ErrInvalidArguments + ": reduction percent must be in [0, 100]")
	}
	if intervalSec <= 0 {
		panic(cst.ErrInvalidArguments + ": counting interval must be positive")
	}
}

// transit returns the state the appchain moves to on the given event or
// panics if the transition is not allowed.
func transit(a Appchain, ev appchainstate.Event) appchainstate.Type {
	next := appchainstate.Next(a.State, ev)
	if next == 0 {
		panic(cst.ErrInvalidStateTransition + ": appchain " + a.ID + " is " + appchainstate.String(a.State))
	}
	return next
}

// changeState applies the event to the appchain, stores it and notifies
// about the new state. Stored record is returned.
func changeState(ctx storage.Context, a Appchain, ev appchainstate.Event) Appchain {
	a.State = transit(a, ev)
	putAppchain(ctx, a)

	runtime.Log("appchain " + a.ID + " is " + appchainstate.String(a.State))
	runtime.Notify("StateChanged", a.ID, int(a.State))
	return a
}

// checkAppchainOwner panics if the transaction is not signed by the owner of
// the appchain.
func checkAppchainOwner(a Appchain) {
	common.CheckWitnessWithPanic(a.Owner, cst.ErrAppchainOwnerWitness)
}

// checkRegistryOwner panics if the transaction is not signed by the registry
// owner and returns the owner otherwise.
func checkRegistryOwner(ctx storage.Context) interop.Hash160 {
	owner := getOwner(ctx)
	common.CheckWitnessWithPanic(owner, cst.ErrRegistryOwnerWitness)
	return owner
}

// checkLifecycleManager returns the account which authorized lifecycle
// management: either the lifecycle manager or the registry owner.
func checkLifecycleManager(ctx storage.Context) interop.Hash160 {
	manager := getRoles(ctx).LifecycleManager
	if runtime.CheckWitness(manager) {
		return manager
	}
	return checkRegistryOwner(ctx)
}

// checkSettingsManager returns the account which authorized settings
// management: either the settings manager or the registry owner.
func checkSettingsManager(ctx storage.Context) interop.Hash160 {
	manager := getRoles(ctx).SettingsManager
	if runtime.CheckWitness(manager) {
		return manager
	}
	return checkRegistryOwner(ctx)
}

func checkCountingOperator(ctx storage.Context) {
	common.CheckWitnessWithPanic(getSettings(ctx).CountingOperator, cst.ErrCountingOperatorWitness)
}

func checkCommittee() {
	if !common.HasUpdateAccess() {
		panic(cst.ErrCommitteeWitness)
	}
}
