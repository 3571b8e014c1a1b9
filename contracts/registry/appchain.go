package registry

import (
	"github.com/nspcc-dev/appchain-registry/common"
	"github.com/nspcc-dev/appchain-registry/contracts/registry/appchainstate"
	cst "github.com/nspcc-dev/appchain-registry/contracts/registry/registryconst"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/gas"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// OnNEP17Payment is a callback for NEP-17 compatible native GAS contract.
// Payment data is an array with the action in the first element:
//
//	["register", id, websiteURL, functionSpecURL, githubAddress, githubRelease, commitID, contactEmail]
//	["upvote", id]
//	["downvote", id]
//
// Registration deposit must be not less than the minimum register deposit.
// Votes are accepted only for appchains in queue.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	caller := runtime.GetCallingScriptHash()
	if !caller.Equals(gas.Hash) {
		common.AbortWithMessage("registry contract accepts GAS only")
	}
	if len(from) != interop.Hash160Len {
		panic(cst.ErrInvalidArguments + ": unknown sender")
	}
	if amount <= 0 {
		panic(cst.ErrInvalidAmount)
	}

	args := data.([]any)
	if len(args) == 0 {
		panic(cst.ErrInvalidArguments + ": missing action")
	}

	ctx := storage.GetContext()

	action := args[0].(string)
	switch action {
	case cst.ActionRegister:
		if len(args) != 8 {
			panic(cst.ErrInvalidArguments + ": register expects 7 parameters")
		}
		registerAppchain(ctx, from, amount, args[1].(string), Metadata{
			WebsiteURL:      args[2].(string),
			FunctionSpecURL: args[3].(string),
			GithubAddress:   args[4].(string),
			GithubRelease:   args[5].(string),
			CommitID:        args[6].(string),
			ContactEmail:    args[7].(string),
			Custom:          map[string]string{},
		})
	case cst.ActionUpvote, cst.ActionDownvote:
		if len(args) != 2 {
			panic(cst.ErrInvalidArguments + ": vote expects appchain ID")
		}
		depositVote(ctx, from, amount, args[1].(string), action)
	default:
		panic(cst.ErrUnknownAction + ": " + action)
	}
}

func registerAppchain(ctx storage.Context, owner interop.Hash160, deposit int, id string, meta Metadata) {
	if len(id) == 0 {
		panic(cst.ErrInvalidArguments + ": empty appchain ID")
	}
	if appchainExists(ctx, id) {
		panic(cst.ErrAlreadyExists + ": " + id)
	}
	if deposit < getSettings(ctx).MinimumRegisterDeposit {
		panic(cst.ErrInsufficientDeposit)
	}

	putAppchain(ctx, Appchain{
		ID:              id,
		Owner:           owner,
		State:           appchainstate.Registered,
		Metadata:        meta,
		RegisterDeposit: deposit,
		RegisteredTime:  runtime.GetTime(),
	})

	runtime.Log("appchain " + id + " registered")
	runtime.Notify("AppchainRegistered", id, owner)
}

func depositVote(ctx storage.Context, voter interop.Hash160, amount int, id string, kind string) {
	a := getAppchain(ctx, id)
	if a.State != appchainstate.InQueue {
		panic(cst.ErrVotingClosed + ": " + id)
	}

	if kind == cst.Upvote {
		a.UpvoteDeposit += amount
	} else {
		a.DownvoteDeposit += amount
	}
	putAppchain(ctx, a)

	key := voteKey(kind, id, voter)
	current := getVote(ctx, key)
	storage.Put(ctx, key, current+amount)

	runtime.Notify("VoteDeposited", id, voter, kind, amount)
}

// WithdrawVote returns GAS deposited by the voter for the appchain. Withdrawal
// is allowed in any appchain state, so the deposits can always be settled
// before the appchain is removed. It can be invoked only by the voter.
func WithdrawVote(voter interop.Hash160, id string, kind string, amount int) {
	common.CheckWitnessWithPanic(voter, cst.ErrVoterWitness)

	if amount <= 0 {
		panic(cst.ErrInvalidAmount)
	}

	ctx := storage.GetContext()
	a := getAppchain(ctx, id)

	key := voteKey(kind, id, voter)
	current := getVote(ctx, key)
	if amount > current {
		panic(cst.ErrInsufficientVote)
	}

	if current == amount {
		storage.Delete(ctx, key)
	} else {
		storage.Put(ctx, key, current-amount)
	}

	if kind == cst.Upvote {
		a.UpvoteDeposit -= amount
	} else {
		a.DownvoteDeposit -= amount
	}
	putAppchain(ctx, a)

	if !gas.Transfer(runtime.GetExecutingScriptHash(), voter, amount, nil) {
		panic(cst.ErrTransferFailed)
	}

	runtime.Notify("VoteWithdrawn", id, voter, kind, amount)
}

// UpdateAppchainCustomMetadata replaces custom metadata of the appchain.
// Metadata must be a map of strings, use empty map to clear it. It can be
// invoked only by the appchain owner.
func UpdateAppchainCustomMetadata(id string, custom map[string]string) {
	ctx := storage.GetContext()
	a := getAppchain(ctx, id)
	checkAppchainOwner(a)

	a.Metadata.Custom = checkCustomMetadata(custom)
	putAppchain(ctx, a)

	runtime.Log("custom metadata of appchain " + id + " updated")
	runtime.Notify("MetadataUpdated", id, a.Owner)
}

// TransferAppchainOwnership sets new owner of the appchain. It can be invoked
// only by the current appchain owner.
func TransferAppchainOwnership(id string, newOwner interop.Hash160) {
	if len(newOwner) != interop.Hash160Len {
		panic(cst.ErrInvalidArguments + ": incorrect length of owner address")
	}

	ctx := storage.GetContext()
	a := getAppchain(ctx, id)
	checkAppchainOwner(a)

	a.Owner = newOwner
	putAppchain(ctx, a)

	runtime.Log("ownership of appchain " + id + " transferred")
	runtime.Notify("OwnershipTransferred", id, newOwner)
}

// UpdateAppchainMetadata corrects appchain metadata. Nil arguments keep the
// current values. It can be invoked by the lifecycle manager or the registry
// owner.
func UpdateAppchainMetadata(id string, websiteURL, functionSpecURL, githubAddress,
	githubRelease, commitID, contactEmail any, custom any) {
	ctx := storage.GetContext()
	a := getAppchain(ctx, id)
	by := checkLifecycleManager(ctx)

	if websiteURL != nil {
		a.Metadata.WebsiteURL = websiteURL.(string)
	}
	if functionSpecURL != nil {
		a.Metadata.FunctionSpecURL = functionSpecURL.(string)
	}
	if githubAddress != nil {
		a.Metadata.GithubAddress = githubAddress.(string)
	}
	if githubRelease != nil {
		a.Metadata.GithubRelease = githubRelease.(string)
	}
	if commitID != nil {
		a.Metadata.CommitID = commitID.(string)
	}
	if contactEmail != nil {
		a.Metadata.ContactEmail = contactEmail.(string)
	}
	if custom != nil {
		a.Metadata.Custom = checkCustomMetadata(custom)
	}
	putAppchain(ctx, a)

	runtime.Log("metadata of appchain " + id + " updated")
	runtime.Notify("MetadataUpdated", id, by)
}

// StartAuditingAppchain moves registered appchain to auditing. It can be
// invoked by the lifecycle manager or the registry owner.
func StartAuditingAppchain(id string) {
	ctx := storage.GetContext()
	a := getAppchain(ctx, id)
	checkLifecycleManager(ctx)

	changeState(ctx, a, appchainstate.StartAuditing)
}

// PassAuditingAppchain puts audited appchain in queue. It can be invoked by
// the lifecycle manager or the registry owner.
func PassAuditingAppchain(id string) {
	ctx := storage.GetContext()
	a := getAppchain(ctx, id)
	checkLifecycleManager(ctx)

	changeState(ctx, a, appchainstate.PassAuditing)
}

// RejectAppchain kills the appchain which has not been promoted yet. It can be
// invoked by the lifecycle manager or the registry owner.
func RejectAppchain(id string) {
	ctx := storage.GetContext()
	a := getAppchain(ctx, id)
	checkLifecycleManager(ctx)

	changeState(ctx, a, appchainstate.Reject)
	dropFromTop(ctx, id)
}

// RemoveAppchain physically removes dead appchain. Appchain must not hold any
// vote deposits. It can be invoked by the lifecycle manager or the registry
// owner.
func RemoveAppchain(id string) {
	ctx := storage.GetContext()
	a := getAppchain(ctx, id)
	checkLifecycleManager(ctx)

	if a.State != appchainstate.Dead {
		panic(cst.ErrInvalidStateTransition + ": appchain " + id + " is " + appchainstate.String(a.State))
	}
	if a.UpvoteDeposit != 0 || a.DownvoteDeposit != 0 {
		panic(cst.ErrPendingDeposits + ": " + id)
	}

	removeAppchain(ctx, id)
	dropFromTop(ctx, id)

	if len(a.Anchor) != 0 {
		runtime.Log("anchor " + a.Anchor + " must be removed manually")
	}
	runtime.Log("appchain " + id + " removed")
	runtime.Notify("AppchainRemoved", id)
}

// Stack item type prefixes of the binary serialization format.
const (
	serializedByteString = 0x28
	serializedBuffer     = 0x30
	serializedMap        = 0x48
)

func serializedType(v any) int {
	data := std.Serialize(v)
	return int(data[0])
}

func isSerializedString(v any) bool {
	t := serializedType(v)
	return t == serializedByteString || t == serializedBuffer
}

// checkCustomMetadata panics if custom is not a map of strings to strings and
// returns it otherwise.
func checkCustomMetadata(custom any) map[string]string {
	if custom == nil {
		panic(cst.ErrInvalidArguments + ": missing custom metadata")
	}
	if serializedType(custom) != serializedMap {
		panic(cst.ErrInvalidArguments + ": custom metadata must be a map")
	}

	m := custom.(map[string]string)
	for k, v := range m {
		if !isSerializedString(k) || !isSerializedString(v) {
			panic(cst.ErrInvalidArguments + ": custom metadata must map strings to strings")
		}
	}

	return m
}

func getVote(ctx storage.Context, key []byte) int {
	v := storage.Get(ctx, key)
	if v == nil {
		return 0
	}
	return v.(int)
}
