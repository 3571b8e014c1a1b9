package registryconst

const (
	// ErrNotFound is thrown when the appchain is missing.
	ErrNotFound = "appchain does not exist"
	// ErrAlreadyExists is thrown on attempt to register the appchain with the
	// ID which is already in use.
	ErrAlreadyExists = "appchain already exists"
	// ErrInvalidStateTransition is thrown when the current appchain state does
	// not allow requested action.
	ErrInvalidStateTransition = "invalid appchain state transition"
	// ErrIntervalNotElapsed is thrown on attempt to count voting score more
	// than once in the counting interval.
	ErrIntervalNotElapsed = "counting interval has not elapsed"
	// ErrPendingDeposits is thrown on attempt to remove the appchain which
	// still holds vote deposits.
	ErrPendingDeposits = "appchain still holds vote deposits"
	// ErrNoCandidate is thrown on attempt to conclude voting with no top
	// candidate in queue.
	ErrNoCandidate = "there is no appchain on the top of queue"
	// ErrNoAppchains is thrown on attempt to count voting score in empty
	// registry.
	ErrNoAppchains = "there is no appchain to count"
	// ErrInsufficientDeposit is thrown when register deposit is less than
	// the minimum one.
	ErrInsufficientDeposit = "insufficient register deposit"
	// ErrInsufficientVote is thrown on attempt to withdraw more than voter
	// has deposited.
	ErrInsufficientVote = "insufficient vote deposit"
	// ErrVotingClosed is thrown on attempt to vote for the appchain which is
	// not in queue.
	ErrVotingClosed = "appchain is not in queue"
	// ErrUnknownVoteKind is thrown when vote kind is neither upvote nor
	// downvote.
	ErrUnknownVoteKind = "unknown vote kind"
	// ErrUnknownAction is thrown when NEP-17 payment data contains unsupported
	// action.
	ErrUnknownAction = "unknown payment action"
	// ErrInvalidArguments is thrown when method arguments are malformed.
	ErrInvalidArguments = "invalid arguments"
	// ErrInvalidAmount is thrown when deposit or withdrawal amount is not
	// positive.
	ErrInvalidAmount = "amount must be positive"
	// ErrTransferFailed is thrown when GAS transfer from the registry fails.
	ErrTransferFailed = "failed to transfer GAS"

	// ErrUnauthorized prefixes all authorization failures.
	ErrUnauthorized = "unauthorized"
	// ErrAppchainOwnerWitness is thrown when the method must be called by the
	// appchain owner but was not.
	ErrAppchainOwnerWitness = ErrUnauthorized + ": appchain owner witness check failed"
	// ErrRegistryOwnerWitness is thrown when the method must be called by the
	// registry owner (or the delegated manager) but was not.
	ErrRegistryOwnerWitness = ErrUnauthorized + ": registry owner witness check failed"
	// ErrCountingOperatorWitness is thrown when the method must be called by
	// the counting operator but was not.
	ErrCountingOperatorWitness = ErrUnauthorized + ": counting operator witness check failed"
	// ErrCommitteeWitness is thrown when the method must be called by the
	// committee but was not.
	ErrCommitteeWitness = ErrUnauthorized + ": committee witness check failed"
	// ErrVoterWitness is thrown when the vote withdrawal is not signed by
	// the voter.
	ErrVoterWitness = ErrUnauthorized + ": voter witness check failed"
)

// Vote kinds.
const (
	Upvote   = "upvote"
	Downvote = "downvote"
)

// Actions accepted in the data of NEP-17 payment to the registry.
const (
	ActionRegister = "register"
	ActionUpvote   = Upvote
	ActionDownvote = Downvote
)

const (
	// MaxReductionPercent is the upper bound of voting result reduction
	// percent.
	MaxReductionPercent = 100

	// MillisecondsPerSecond converts counting interval into block time units.
	MillisecondsPerSecond = 1000
)

// Sorting fields of the appchain listing.
const (
	SortByAppchainID = iota
	SortByVotingScore
	SortByRegisteredTime
)

// Sorting orders of the appchain listing.
const (
	OrderAscending = iota
	OrderDescending
)

// MaxListLimit is the maximum number of appchains returned by one listing
// call.
const MaxListLimit = 100
