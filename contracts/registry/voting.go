package registry

import (
	"github.com/nspcc-dev/appchain-registry/contracts/registry/appchainstate"
	cst "github.com/nspcc-dev/appchain-registry/contracts/registry/registryconst"
	"github.com/nspcc-dev/neo-go/pkg/interop/lib/address"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// CountVotingScore adds the difference between upvote and downvote deposits
// to the voting score of every appchain in queue and selects the appchain
// with the greatest score as the top one. On equal scores the previous top
// appchain is kept.
//
// Counting is allowed once per counting interval. Time of the last count is
// aligned to the interval boundary. It can be invoked only by the counting
// operator.
//
// All records are visited in one invocation, so GAS cost grows with the
// number of appchains.
func CountVotingScore() {
	ctx := storage.GetContext()
	checkCountingOperator(ctx)

	ids := listIDs(ctx)
	if len(ids) == 0 {
		panic(cst.ErrNoAppchains)
	}

	interval := getSettings(ctx).CountingIntervalInSeconds * cst.MillisecondsPerSecond
	now := runtime.GetTime()
	if now-storage.Get(ctx, lastCountKey).(int) <= interval {
		panic(cst.ErrIntervalNotElapsed)
	}
	storage.Put(ctx, lastCountKey, now-now%interval)

	queue := []Appchain{}
	for i := 0; i < len(ids); i++ { //nolint:intrange // Not supported by NeoGo
		a := getAppchain(ctx, ids[i])
		if a.State != appchainstate.InQueue {
			continue
		}

		a.VotingScore += a.UpvoteDeposit - a.DownvoteDeposit
		putAppchain(ctx, a)
		queue = append(queue, a)
	}

	if len(queue) == 0 {
		runtime.Log("no appchains in queue")
		return
	}

	top := Appchain{}
	hasTop := false

	// Previous top is kept on equal score only while it's still in queue.
	prev := getTop(ctx)
	for i := 0; i < len(queue); i++ { //nolint:intrange // Not supported by NeoGo
		if queue[i].ID == prev {
			top = queue[i]
			hasTop = true
			break
		}
	}

	for i := 0; i < len(queue); i++ { //nolint:intrange // Not supported by NeoGo
		if !hasTop || queue[i].VotingScore > top.VotingScore {
			top = queue[i]
			hasTop = true
		}
	}

	setTop(ctx, top.ID)

	runtime.Log("voting score counted, top appchain is " + top.ID)
	runtime.Notify("VotingScoreCounted", top.ID)
}

// ConcludeVotingScore finishes the election. The top appchain is promoted to
// staging and gets the anchor name under the registry address. Other
// appchains in queue with non-positive voting score are eliminated, scores of
// the rest are reduced by the voting result reduction percent.
//
// AnchorRequested notification is produced for the promoted appchain. The
// promotion is not reverted if the anchor is never provisioned. It can be
// invoked by the lifecycle manager or the registry owner. Like
// CountVotingScore, it visits all records in one invocation.
func ConcludeVotingScore() {
	ctx := storage.GetContext()
	checkLifecycleManager(ctx)

	topID := getTop(ctx)
	if len(topID) == 0 {
		panic(cst.ErrNoCandidate)
	}

	top := getAppchain(ctx, topID)
	top.Anchor = anchorName(topID)
	top = changeState(ctx, top, appchainstate.Promote)

	pct := getSettings(ctx).VotingResultReductionPercent

	ids := listIDs(ctx)
	for i := 0; i < len(ids); i++ { //nolint:intrange // Not supported by NeoGo
		a := getAppchain(ctx, ids[i])
		if a.State != appchainstate.InQueue {
			continue
		}

		if a.VotingScore <= 0 {
			changeState(ctx, a, appchainstate.Eliminate)
			continue
		}

		a.VotingScore = a.VotingScore * (cst.MaxReductionPercent - pct) / cst.MaxReductionPercent
		putAppchain(ctx, a)
	}

	setTop(ctx, "")

	runtime.Log("appchain " + topID + " promoted, anchor " + top.Anchor + " requested")
	runtime.Notify("AnchorRequested", topID, top.Anchor, getOwner(ctx))
}

// anchorName returns the name of the anchor account of the appchain under
// the registry namespace.
func anchorName(id string) string {
	return id + "." + address.FromHash160(runtime.GetExecutingScriptHash())
}
