package registry

import (
	"github.com/nspcc-dev/appchain-registry/common"
	"github.com/nspcc-dev/appchain-registry/contracts/registry/appchainstate"
	cst "github.com/nspcc-dev/appchain-registry/contracts/registry/registryconst"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// ChangeMinimumRegisterDeposit sets the minimum GAS amount accepted on
// registration. It can be invoked by the settings manager or the registry
// owner.
func ChangeMinimumRegisterDeposit(amount int) {
	ctx := storage.GetContext()
	checkSettingsManager(ctx)

	s := getSettings(ctx)
	checkSettings(amount, s.VotingResultReductionPercent, s.CountingIntervalInSeconds)
	s.MinimumRegisterDeposit = amount
	common.SetSerialized(ctx, settingsKey, s)

	runtime.Log("minimum register deposit changed")
}

// ChangeVotingResultReductionPercent sets the percent voting scores of
// the appchains left in queue are reduced by on election conclusion. It can be
// invoked by the settings manager or the registry owner.
func ChangeVotingResultReductionPercent(pct int) {
	ctx := storage.GetContext()
	checkSettingsManager(ctx)

	s := getSettings(ctx)
	checkSettings(s.MinimumRegisterDeposit, pct, s.CountingIntervalInSeconds)
	s.VotingResultReductionPercent = pct
	common.SetSerialized(ctx, settingsKey, s)

	runtime.Log("voting result reduction percent changed")
}

// ChangeCountingInterval sets counting interval in seconds. It can be invoked
// by the settings manager or the registry owner.
func ChangeCountingInterval(seconds int) {
	ctx := storage.GetContext()
	checkSettingsManager(ctx)

	s := getSettings(ctx)
	checkSettings(s.MinimumRegisterDeposit, s.VotingResultReductionPercent, seconds)
	s.CountingIntervalInSeconds = seconds
	common.SetSerialized(ctx, settingsKey, s)

	runtime.Log("counting interval changed")
}

// ChangeCountingOperator sets the account allowed to count voting score. It
// can be invoked by the settings manager or the registry owner.
func ChangeCountingOperator(operator interop.Hash160) {
	if len(operator) != interop.Hash160Len {
		panic(cst.ErrInvalidArguments + ": incorrect length of counting operator address")
	}

	ctx := storage.GetContext()
	checkSettingsManager(ctx)

	s := getSettings(ctx)
	s.CountingOperator = operator
	common.SetSerialized(ctx, settingsKey, s)

	runtime.Log("counting operator changed")
}

// ChangeLifecycleManager delegates lifecycle management to the given account.
// It can be invoked only by the registry owner.
func ChangeLifecycleManager(manager interop.Hash160) {
	if len(manager) != interop.Hash160Len {
		panic(cst.ErrInvalidArguments + ": incorrect length of manager address")
	}

	ctx := storage.GetContext()
	checkRegistryOwner(ctx)

	r := getRoles(ctx)
	r.LifecycleManager = manager
	common.SetSerialized(ctx, rolesKey, r)

	runtime.Log("lifecycle manager changed")
}

// ChangeSettingsManager delegates settings management to the given account.
// It can be invoked only by the registry owner.
func ChangeSettingsManager(manager interop.Hash160) {
	if len(manager) != interop.Hash160Len {
		panic(cst.ErrInvalidArguments + ": incorrect length of manager address")
	}

	ctx := storage.GetContext()
	checkRegistryOwner(ctx)

	r := getRoles(ctx)
	r.SettingsManager = manager
	common.SetSerialized(ctx, rolesKey, r)

	runtime.Log("settings manager changed")
}

// TransferRegistryOwnership sets new registry owner. Delegated roles are not
// changed. It can be invoked only by the registry owner.
func TransferRegistryOwnership(newOwner interop.Hash160) {
	if len(newOwner) != interop.Hash160Len {
		panic(cst.ErrInvalidArguments + ": incorrect length of owner address")
	}

	ctx := storage.GetContext()
	checkRegistryOwner(ctx)

	storage.Put(ctx, ownerKey, newOwner)

	runtime.Log("registry ownership transferred")
}

// DeleteAppchain kills the appchain in any state. Appchain is removed from
// the registry if it holds no vote deposits, otherwise it stays dead until
// removed by the registry owner. It can be invoked only by the committee.
func DeleteAppchain(id string) {
	ctx := storage.GetContext()
	a := getAppchain(ctx, id)
	checkCommittee()

	forceDelete(ctx, a)
}

// ClearAppchains kills and removes appchains like DeleteAppchain does. At most
// budget appchains with IDs following the cursor in lexicographic order are
// processed. Empty cursor starts from the first appchain.
//
// If there are appchains left, ID of the last processed one is returned and
// ClearIncomplete notification is produced. The call should be repeated with
// the returned cursor. Empty string is returned when all appchains are
// processed. It can be invoked only by the committee.
func ClearAppchains(budget int, cursor string) string {
	checkCommittee()

	if budget <= 0 {
		panic(cst.ErrInvalidArguments + ": budget must be positive")
	}

	ctx := storage.GetContext()
	ids := listIDs(ctx)

	processed := 0
	last := ""
	for i := 0; i < len(ids); i++ { //nolint:intrange // Not supported by NeoGo
		id := ids[i]
		if len(cursor) != 0 && std.MemoryCompare([]byte(id), []byte(cursor)) <= 0 {
			continue
		}

		if processed == budget {
			runtime.Log("appchains clearing stopped at " + last)
			runtime.Notify("ClearIncomplete", last)
			return last
		}

		forceDelete(ctx, getAppchain(ctx, id))
		processed++
		last = id
	}

	runtime.Log("appchains cleared")
	return ""
}

// AddAppchainID restores the index entry of the existing appchain. It can be
// invoked only by the committee. Regular operations write and delete record
// and index entry together, so the call changes nothing unless the storage
// was migrated or corrupted outside of the contract methods.
func AddAppchainID(id string) {
	ctx := storage.GetContext()
	getAppchain(ctx, id)
	checkCommittee()

	if storage.Get(ctx, indexKey(id)) != nil {
		runtime.Log("appchain " + id + " is already indexed")
		return
	}

	storage.Put(ctx, indexKey(id), []byte{})
	runtime.Log("appchain " + id + " indexed")
}

// GoBooting moves staging appchain to booting. It can be invoked only by
// the committee.
func GoBooting(id string) {
	ctx := storage.GetContext()
	a := getAppchain(ctx, id)
	checkCommittee()

	changeState(ctx, a, appchainstate.Boot)
}

func forceDelete(ctx storage.Context, a Appchain) {
	if a.State != appchainstate.Dead {
		a = changeState(ctx, a, appchainstate.ForceDelete)
	}
	dropFromTop(ctx, a.ID)

	if a.UpvoteDeposit != 0 || a.DownvoteDeposit != 0 {
		runtime.Log("appchain " + a.ID + " still holds vote deposits")
		return
	}

	removeAppchain(ctx, a.ID)
	if len(a.Anchor) != 0 {
		runtime.Log("anchor " + a.Anchor + " must be removed manually")
	}
	runtime.Log("appchain " + a.ID + " removed")
	runtime.Notify("AppchainRemoved", a.ID)
}
