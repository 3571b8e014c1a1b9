// Package registry contains RPC wrappers for Appchain Registry contract.
package registry

import (
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
	"unicode/utf8"
)

// RegistryAppchain is a contract-specific registry.Appchain type used by its methods.
type RegistryAppchain struct {
	ID string
	Owner util.Uint160
	State *big.Int
	Metadata *RegistryMetadata
	RegisterDeposit *big.Int
	UpvoteDeposit *big.Int
	DownvoteDeposit *big.Int
	VotingScore *big.Int
	Anchor string
	RegisteredTime *big.Int
}

// RegistryMetadata is a contract-specific registry.Metadata type used by its methods.
type RegistryMetadata struct {
	WebsiteURL string
	FunctionSpecURL string
	GithubAddress string
	GithubRelease string
	CommitID string
	ContactEmail string
	Custom map[string]string
}

// RegistryRoles is a contract-specific registry.Roles type used by its methods.
type RegistryRoles struct {
	LifecycleManager util.Uint160
	SettingsManager util.Uint160
}

// RegistrySettings is a contract-specific registry.Settings type used by its methods.
type RegistrySettings struct {
	MinimumRegisterDeposit *big.Int
	VotingResultReductionPercent *big.Int
	CountingIntervalInSeconds *big.Int
	CountingOperator util.Uint160
}

// AppchainRegisteredEvent represents "AppchainRegistered" event emitted by the contract.
type AppchainRegisteredEvent struct {
	ID string
	Owner util.Uint160
}

// StateChangedEvent represents "StateChanged" event emitted by the contract.
type StateChangedEvent struct {
	ID string
	State *big.Int
}

// MetadataUpdatedEvent represents "MetadataUpdated" event emitted by the contract.
type MetadataUpdatedEvent struct {
	ID string
	By util.Uint160
}

// OwnershipTransferredEvent represents "OwnershipTransferred" event emitted by the contract.
type OwnershipTransferredEvent struct {
	ID string
	Owner util.Uint160
}

// VoteDepositedEvent represents "VoteDeposited" event emitted by the contract.
type VoteDepositedEvent struct {
	ID string
	Voter util.Uint160
	Kind string
	Amount *big.Int
}

// VoteWithdrawnEvent represents "VoteWithdrawn" event emitted by the contract.
type VoteWithdrawnEvent struct {
	ID string
	Voter util.Uint160
	Kind string
	Amount *big.Int
}

// VotingScoreCountedEvent represents "VotingScoreCounted" event emitted by the contract.
type VotingScoreCountedEvent struct {
	Top string
}

// AnchorRequestedEvent represents "AnchorRequested" event emitted by the contract.
type AnchorRequestedEvent struct {
	ID string
	Anchor string
	Admin util.Uint160
}

// AppchainRemovedEvent represents "AppchainRemoved" event emitted by the contract.
type AppchainRemovedEvent struct {
	ID string
}

// ClearIncompleteEvent represents "ClearIncomplete" event emitted by the contract.
type ClearIncompleteEvent struct {
	Cursor string
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
	CallAndExpandIterator(contract util.Uint160, method string, maxItems int, params ...any) (*result.Invoke, error)
	TerminateSession(sessionID uuid.UUID) error
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// AppchainIDs invokes `appchainIDs` method of contract.
func (c *ContractReader) AppchainIDs() (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "appchainIDs"))
}

// AppchainIDsExpanded is similar to AppchainIDs (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) AppchainIDsExpanded(_numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "appchainIDs", _numOfIteratorItems))
}

// AppchainsWithState invokes `appchainsWithState` method of contract.
func (c *ContractReader) AppchainsWithState(state *big.Int) ([]*RegistryAppchain, error) {
	return func (item stackitem.Item, err error) ([]*RegistryAppchain, error) {
		if err != nil {
			return nil, err
		}
		return func (item stackitem.Item) ([]*RegistryAppchain, error) {
			arr, ok := item.Value().([]stackitem.Item)
			if !ok {
				return nil, errors.New("not an array")
			}
			res := make([]*RegistryAppchain, len(arr))
			for i := range res {
				res[i], err = itemToRegistryAppchain(arr[i], nil)
				if err != nil {
					return nil, fmt.Errorf("item %d: %w", i, err)
				}
			}
			return res, nil
		} (item)
	} (unwrap.Item(c.invoker.Call(c.hash, "appchainsWithState", state)))
}

// Count invokes `count` method of contract.
func (c *ContractReader) Count() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "count"))
}

// GetAppchain invokes `getAppchain` method of contract.
func (c *ContractReader) GetAppchain(id string) (*RegistryAppchain, error) {
	return itemToRegistryAppchain(unwrap.Item(c.invoker.Call(c.hash, "getAppchain", id)))
}

// GetRoles invokes `getRoles` method of contract.
func (c *ContractReader) GetRoles() (*RegistryRoles, error) {
	return itemToRegistryRoles(unwrap.Item(c.invoker.Call(c.hash, "getRoles")))
}

// GetSettings invokes `getSettings` method of contract.
func (c *ContractReader) GetSettings() (*RegistrySettings, error) {
	return itemToRegistrySettings(unwrap.Item(c.invoker.Call(c.hash, "getSettings")))
}

// ListAppchains invokes `listAppchains` method of contract.
func (c *ContractReader) ListAppchains(state *big.Int, sortBy *big.Int, order *big.Int, start *big.Int, limit *big.Int) ([]*RegistryAppchain, error) {
	return func (item stackitem.Item, err error) ([]*RegistryAppchain, error) {
		if err != nil {
			return nil, err
		}
		return func (item stackitem.Item) ([]*RegistryAppchain, error) {
			arr, ok := item.Value().([]stackitem.Item)
			if !ok {
				return nil, errors.New("not an array")
			}
			res := make([]*RegistryAppchain, len(arr))
			for i := range res {
				res[i], err = itemToRegistryAppchain(arr[i], nil)
				if err != nil {
					return nil, fmt.Errorf("item %d: %w", i, err)
				}
			}
			return res, nil
		} (item)
	} (unwrap.Item(c.invoker.Call(c.hash, "listAppchains", state, sortBy, order, start, limit)))
}

// Owner invokes `owner` method of contract.
func (c *ContractReader) Owner() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "owner"))
}

// TimeOfLastCount invokes `timeOfLastCount` method of contract.
func (c *ContractReader) TimeOfLastCount() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "timeOfLastCount"))
}

// TopAppchainInQueue invokes `topAppchainInQueue` method of contract.
func (c *ContractReader) TopAppchainInQueue() (string, error) {
	return unwrap.UTF8String(c.invoker.Call(c.hash, "topAppchainInQueue"))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// VoteOf invokes `voteOf` method of contract.
func (c *ContractReader) VoteOf(id string, voter util.Uint160, kind string) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "voteOf", id, voter, kind))
}

// AddAppchainID creates a transaction invoking `addAppchainID` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) AddAppchainID(id string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "addAppchainID", id)
}

// AddAppchainIDTransaction creates a transaction invoking `addAppchainID` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) AddAppchainIDTransaction(id string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "addAppchainID", id)
}

// AddAppchainIDUnsigned creates a transaction invoking `addAppchainID` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) AddAppchainIDUnsigned(id string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "addAppchainID", nil, id)
}

// ChangeCountingInterval creates a transaction invoking `changeCountingInterval` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ChangeCountingInterval(seconds *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "changeCountingInterval", seconds)
}

// ChangeCountingIntervalTransaction creates a transaction invoking `changeCountingInterval` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ChangeCountingIntervalTransaction(seconds *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "changeCountingInterval", seconds)
}

// ChangeCountingIntervalUnsigned creates a transaction invoking `changeCountingInterval` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ChangeCountingIntervalUnsigned(seconds *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "changeCountingInterval", nil, seconds)
}

// ChangeCountingOperator creates a transaction invoking `changeCountingOperator` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ChangeCountingOperator(operator util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "changeCountingOperator", operator)
}

// ChangeCountingOperatorTransaction creates a transaction invoking `changeCountingOperator` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ChangeCountingOperatorTransaction(operator util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "changeCountingOperator", operator)
}

// ChangeCountingOperatorUnsigned creates a transaction invoking `changeCountingOperator` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ChangeCountingOperatorUnsigned(operator util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "changeCountingOperator", nil, operator)
}

// ChangeLifecycleManager creates a transaction invoking `changeLifecycleManager` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ChangeLifecycleManager(manager util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "changeLifecycleManager", manager)
}

// ChangeLifecycleManagerTransaction creates a transaction invoking `changeLifecycleManager` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ChangeLifecycleManagerTransaction(manager util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "changeLifecycleManager", manager)
}

// ChangeLifecycleManagerUnsigned creates a transaction invoking `changeLifecycleManager` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ChangeLifecycleManagerUnsigned(manager util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "changeLifecycleManager", nil, manager)
}

// ChangeMinimumRegisterDeposit creates a transaction invoking `changeMinimumRegisterDeposit` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ChangeMinimumRegisterDeposit(amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "changeMinimumRegisterDeposit", amount)
}

// ChangeMinimumRegisterDepositTransaction creates a transaction invoking `changeMinimumRegisterDeposit` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ChangeMinimumRegisterDepositTransaction(amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "changeMinimumRegisterDeposit", amount)
}

// ChangeMinimumRegisterDepositUnsigned creates a transaction invoking `changeMinimumRegisterDeposit` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ChangeMinimumRegisterDepositUnsigned(amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "changeMinimumRegisterDeposit", nil, amount)
}

// ChangeSettingsManager creates a transaction invoking `changeSettingsManager` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ChangeSettingsManager(manager util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "changeSettingsManager", manager)
}

// ChangeSettingsManagerTransaction creates a transaction invoking `changeSettingsManager` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ChangeSettingsManagerTransaction(manager util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "changeSettingsManager", manager)
}

// ChangeSettingsManagerUnsigned creates a transaction invoking `changeSettingsManager` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ChangeSettingsManagerUnsigned(manager util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "changeSettingsManager", nil, manager)
}

// ChangeVotingResultReductionPercent creates a transaction invoking `changeVotingResultReductionPercent` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ChangeVotingResultReductionPercent(pct *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "changeVotingResultReductionPercent", pct)
}

// ChangeVotingResultReductionPercentTransaction creates a transaction invoking `changeVotingResultReductionPercent` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ChangeVotingResultReductionPercentTransaction(pct *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "changeVotingResultReductionPercent", pct)
}

// ChangeVotingResultReductionPercentUnsigned creates a transaction invoking `changeVotingResultReductionPercent` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ChangeVotingResultReductionPercentUnsigned(pct *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "changeVotingResultReductionPercent", nil, pct)
}

// ClearAppchains creates a transaction invoking `clearAppchains` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ClearAppchains(budget *big.Int, cursor string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "clearAppchains", budget, cursor)
}

// ClearAppchainsTransaction creates a transaction invoking `clearAppchains` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ClearAppchainsTransaction(budget *big.Int, cursor string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "clearAppchains", budget, cursor)
}

// ClearAppchainsUnsigned creates a transaction invoking `clearAppchains` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ClearAppchainsUnsigned(budget *big.Int, cursor string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "clearAppchains", nil, budget, cursor)
}

// ConcludeVotingScore creates a transaction invoking `concludeVotingScore` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ConcludeVotingScore() (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "concludeVotingScore")
}

// ConcludeVotingScoreTransaction creates a transaction invoking `concludeVotingScore` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ConcludeVotingScoreTransaction() (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "concludeVotingScore")
}

// ConcludeVotingScoreUnsigned creates a transaction invoking `concludeVotingScore` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ConcludeVotingScoreUnsigned() (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "concludeVotingScore", nil)
}

// CountVotingScore creates a transaction invoking `countVotingScore` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CountVotingScore() (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "countVotingScore")
}

// CountVotingScoreTransaction creates a transaction invoking `countVotingScore` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CountVotingScoreTransaction() (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "countVotingScore")
}

// CountVotingScoreUnsigned creates a transaction invoking `countVotingScore` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CountVotingScoreUnsigned() (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "countVotingScore", nil)
}

// DeleteAppchain creates a transaction invoking `deleteAppchain` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) DeleteAppchain(id string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "deleteAppchain", id)
}

// DeleteAppchainTransaction creates a transaction invoking `deleteAppchain` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) DeleteAppchainTransaction(id string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "deleteAppchain", id)
}

// DeleteAppchainUnsigned creates a transaction invoking `deleteAppchain` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) DeleteAppchainUnsigned(id string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "deleteAppchain", nil, id)
}

// GoBooting creates a transaction invoking `goBooting` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) GoBooting(id string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "goBooting", id)
}

// GoBootingTransaction creates a transaction invoking `goBooting` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) GoBootingTransaction(id string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "goBooting", id)
}

// GoBootingUnsigned creates a transaction invoking `goBooting` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) GoBootingUnsigned(id string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "goBooting", nil, id)
}

// PassAuditingAppchain creates a transaction invoking `passAuditingAppchain` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) PassAuditingAppchain(id string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "passAuditingAppchain", id)
}

// PassAuditingAppchainTransaction creates a transaction invoking `passAuditingAppchain` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) PassAuditingAppchainTransaction(id string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "passAuditingAppchain", id)
}

// PassAuditingAppchainUnsigned creates a transaction invoking `passAuditingAppchain` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) PassAuditingAppchainUnsigned(id string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "passAuditingAppchain", nil, id)
}

// RejectAppchain creates a transaction invoking `rejectAppchain` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RejectAppchain(id string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "rejectAppchain", id)
}

// RejectAppchainTransaction creates a transaction invoking `rejectAppchain` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RejectAppchainTransaction(id string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "rejectAppchain", id)
}

// RejectAppchainUnsigned creates a transaction invoking `rejectAppchain` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RejectAppchainUnsigned(id string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "rejectAppchain", nil, id)
}

// RemoveAppchain creates a transaction invoking `removeAppchain` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RemoveAppchain(id string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "removeAppchain", id)
}

// RemoveAppchainTransaction creates a transaction invoking `removeAppchain` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RemoveAppchainTransaction(id string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "removeAppchain", id)
}

// RemoveAppchainUnsigned creates a transaction invoking `removeAppchain` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RemoveAppchainUnsigned(id string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "removeAppchain", nil, id)
}

// StartAuditingAppchain creates a transaction invoking `startAuditingAppchain` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) StartAuditingAppchain(id string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "startAuditingAppchain", id)
}

// StartAuditingAppchainTransaction creates a transaction invoking `startAuditingAppchain` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) StartAuditingAppchainTransaction(id string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "startAuditingAppchain", id)
}

// StartAuditingAppchainUnsigned creates a transaction invoking `startAuditingAppchain` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) StartAuditingAppchainUnsigned(id string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "startAuditingAppchain", nil, id)
}

// TransferAppchainOwnership creates a transaction invoking `transferAppchainOwnership` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) TransferAppchainOwnership(id string, newOwner util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "transferAppchainOwnership", id, newOwner)
}

// TransferAppchainOwnershipTransaction creates a transaction invoking `transferAppchainOwnership` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) TransferAppchainOwnershipTransaction(id string, newOwner util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "transferAppchainOwnership", id, newOwner)
}

// TransferAppchainOwnershipUnsigned creates a transaction invoking `transferAppchainOwnership` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) TransferAppchainOwnershipUnsigned(id string, newOwner util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "transferAppchainOwnership", nil, id, newOwner)
}

// TransferRegistryOwnership creates a transaction invoking `transferRegistryOwnership` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) TransferRegistryOwnership(newOwner util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "transferRegistryOwnership", newOwner)
}

// TransferRegistryOwnershipTransaction creates a transaction invoking `transferRegistryOwnership` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) TransferRegistryOwnershipTransaction(newOwner util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "transferRegistryOwnership", newOwner)
}

// TransferRegistryOwnershipUnsigned creates a transaction invoking `transferRegistryOwnership` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) TransferRegistryOwnershipUnsigned(newOwner util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "transferRegistryOwnership", nil, newOwner)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(script []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", script, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", script, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, script, manifest, data)
}

// UpdateAppchainCustomMetadata creates a transaction invoking `updateAppchainCustomMetadata` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) UpdateAppchainCustomMetadata(id string, custom *stackitem.Map) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "updateAppchainCustomMetadata", id, custom)
}

// UpdateAppchainCustomMetadataTransaction creates a transaction invoking `updateAppchainCustomMetadata` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateAppchainCustomMetadataTransaction(id string, custom *stackitem.Map) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "updateAppchainCustomMetadata", id, custom)
}

// UpdateAppchainCustomMetadataUnsigned creates a transaction invoking `updateAppchainCustomMetadata` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateAppchainCustomMetadataUnsigned(id string, custom *stackitem.Map) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "updateAppchainCustomMetadata", nil, id, custom)
}

// UpdateAppchainMetadata creates a transaction invoking `updateAppchainMetadata` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) UpdateAppchainMetadata(id string, websiteURL any, functionSpecURL any, githubAddress any, githubRelease any, commitID any, contactEmail any, custom any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "updateAppchainMetadata", id, websiteURL, functionSpecURL, githubAddress, githubRelease, commitID, contactEmail, custom)
}

// UpdateAppchainMetadataTransaction creates a transaction invoking `updateAppchainMetadata` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateAppchainMetadataTransaction(id string, websiteURL any, functionSpecURL any, githubAddress any, githubRelease any, commitID any, contactEmail any, custom any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "updateAppchainMetadata", id, websiteURL, functionSpecURL, githubAddress, githubRelease, commitID, contactEmail, custom)
}

// UpdateAppchainMetadataUnsigned creates a transaction invoking `updateAppchainMetadata` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateAppchainMetadataUnsigned(id string, websiteURL any, functionSpecURL any, githubAddress any, githubRelease any, commitID any, contactEmail any, custom any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "updateAppchainMetadata", nil, id, websiteURL, functionSpecURL, githubAddress, githubRelease, commitID, contactEmail, custom)
}

// WithdrawVote creates a transaction invoking `withdrawVote` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) WithdrawVote(voter util.Uint160, id string, kind string, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "withdrawVote", voter, id, kind, amount)
}

// WithdrawVoteTransaction creates a transaction invoking `withdrawVote` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) WithdrawVoteTransaction(voter util.Uint160, id string, kind string, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "withdrawVote", voter, id, kind, amount)
}

// WithdrawVoteUnsigned creates a transaction invoking `withdrawVote` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) WithdrawVoteUnsigned(voter util.Uint160, id string, kind string, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "withdrawVote", nil, voter, id, kind, amount)
}

// itemToRegistryAppchain converts stack item into *RegistryAppchain.
func itemToRegistryAppchain(item stackitem.Item, err error) (*RegistryAppchain, error) {
	if err != nil {
		return nil, err
	}
	var res = new(RegistryAppchain)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of RegistryAppchain from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *RegistryAppchain) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 10 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.ID, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	res.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	res.State, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field State: %w", err)
	}

	index++
	res.Metadata, err = itemToRegistryMetadata(arr[index], nil)
	if err != nil {
		return fmt.Errorf("field Metadata: %w", err)
	}

	index++
	res.RegisterDeposit, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field RegisterDeposit: %w", err)
	}

	index++
	res.UpvoteDeposit, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field UpvoteDeposit: %w", err)
	}

	index++
	res.DownvoteDeposit, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field DownvoteDeposit: %w", err)
	}

	index++
	res.VotingScore, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field VotingScore: %w", err)
	}

	index++
	res.Anchor, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Anchor: %w", err)
	}

	index++
	res.RegisteredTime, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field RegisteredTime: %w", err)
	}

	return nil
}

// itemToRegistryMetadata converts stack item into *RegistryMetadata.
func itemToRegistryMetadata(item stackitem.Item, err error) (*RegistryMetadata, error) {
	if err != nil {
		return nil, err
	}
	var res = new(RegistryMetadata)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of RegistryMetadata from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *RegistryMetadata) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 7 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.WebsiteURL, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field WebsiteURL: %w", err)
	}

	index++
	res.FunctionSpecURL, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field FunctionSpecURL: %w", err)
	}

	index++
	res.GithubAddress, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field GithubAddress: %w", err)
	}

	index++
	res.GithubRelease, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field GithubRelease: %w", err)
	}

	index++
	res.CommitID, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field CommitID: %w", err)
	}

	index++
	res.ContactEmail, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field ContactEmail: %w", err)
	}

	index++
	res.Custom, err = func (item stackitem.Item) (map[string]string, error) {
		m, ok := item.Value().([]stackitem.MapElement)
		if !ok {
			return nil, fmt.Errorf("%s is not a map", item.Type().String())
		}
		res := make(map[string]string)
		for i := range m {
			k, err := func (item stackitem.Item) (string, error) {
				b, err := item.TryBytes()
				if err != nil {
					return "", err
				}
				if !utf8.Valid(b) {
					return "", errors.New("not a UTF-8 string")
				}
				return string(b), nil
			} (m[i].Key)
			if err != nil {
				return nil, fmt.Errorf("key %d: %w", i, err)
			}
			v, err := func (item stackitem.Item) (string, error) {
				b, err := item.TryBytes()
				if err != nil {
					return "", err
				}
				if !utf8.Valid(b) {
					return "", errors.New("not a UTF-8 string")
				}
				return string(b), nil
			} (m[i].Value)
			if err != nil {
				return nil, fmt.Errorf("value %d: %w", i, err)
			}
			res[k] = v
		}
		return res, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Custom: %w", err)
	}

	return nil
}

// itemToRegistryRoles converts stack item into *RegistryRoles.
func itemToRegistryRoles(item stackitem.Item, err error) (*RegistryRoles, error) {
	if err != nil {
		return nil, err
	}
	var res = new(RegistryRoles)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of RegistryRoles from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *RegistryRoles) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.LifecycleManager, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field LifecycleManager: %w", err)
	}

	index++
	res.SettingsManager, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field SettingsManager: %w", err)
	}

	return nil
}

// itemToRegistrySettings converts stack item into *RegistrySettings.
func itemToRegistrySettings(item stackitem.Item, err error) (*RegistrySettings, error) {
	if err != nil {
		return nil, err
	}
	var res = new(RegistrySettings)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of RegistrySettings from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *RegistrySettings) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.MinimumRegisterDeposit, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field MinimumRegisterDeposit: %w", err)
	}

	index++
	res.VotingResultReductionPercent, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field VotingResultReductionPercent: %w", err)
	}

	index++
	res.CountingIntervalInSeconds, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field CountingIntervalInSeconds: %w", err)
	}

	index++
	res.CountingOperator, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field CountingOperator: %w", err)
	}

	return nil
}

// AppchainRegisteredEventsFromApplicationLog retrieves a set of all emitted events
// with "AppchainRegistered" name from the provided [result.ApplicationLog].
func AppchainRegisteredEventsFromApplicationLog(log *result.ApplicationLog) ([]*AppchainRegisteredEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*AppchainRegisteredEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "AppchainRegistered" {
				continue
			}
			event := new(AppchainRegisteredEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize AppchainRegisteredEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to AppchainRegisteredEvent or
// returns an error if it's not possible to do to so.
func (e *AppchainRegisteredEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ID, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	e.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	return nil
}

// StateChangedEventsFromApplicationLog retrieves a set of all emitted events
// with "StateChanged" name from the provided [result.ApplicationLog].
func StateChangedEventsFromApplicationLog(log *result.ApplicationLog) ([]*StateChangedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*StateChangedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "StateChanged" {
				continue
			}
			event := new(StateChangedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize StateChangedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to StateChangedEvent or
// returns an error if it's not possible to do to so.
func (e *StateChangedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ID, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	e.State, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field State: %w", err)
	}

	return nil
}

// MetadataUpdatedEventsFromApplicationLog retrieves a set of all emitted events
// with "MetadataUpdated" name from the provided [result.ApplicationLog].
func MetadataUpdatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*MetadataUpdatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*MetadataUpdatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "MetadataUpdated" {
				continue
			}
			event := new(MetadataUpdatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize MetadataUpdatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to MetadataUpdatedEvent or
// returns an error if it's not possible to do to so.
func (e *MetadataUpdatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ID, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	e.By, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field By: %w", err)
	}

	return nil
}

// OwnershipTransferredEventsFromApplicationLog retrieves a set of all emitted events
// with "OwnershipTransferred" name from the provided [result.ApplicationLog].
func OwnershipTransferredEventsFromApplicationLog(log *result.ApplicationLog) ([]*OwnershipTransferredEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*OwnershipTransferredEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "OwnershipTransferred" {
				continue
			}
			event := new(OwnershipTransferredEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize OwnershipTransferredEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to OwnershipTransferredEvent or
// returns an error if it's not possible to do to so.
func (e *OwnershipTransferredEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ID, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	e.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	return nil
}

// VoteDepositedEventsFromApplicationLog retrieves a set of all emitted events
// with "VoteDeposited" name from the provided [result.ApplicationLog].
func VoteDepositedEventsFromApplicationLog(log *result.ApplicationLog) ([]*VoteDepositedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*VoteDepositedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "VoteDeposited" {
				continue
			}
			event := new(VoteDepositedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize VoteDepositedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to VoteDepositedEvent or
// returns an error if it's not possible to do to so.
func (e *VoteDepositedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ID, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	e.Voter, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Voter: %w", err)
	}

	index++
	e.Kind, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Kind: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// VoteWithdrawnEventsFromApplicationLog retrieves a set of all emitted events
// with "VoteWithdrawn" name from the provided [result.ApplicationLog].
func VoteWithdrawnEventsFromApplicationLog(log *result.ApplicationLog) ([]*VoteWithdrawnEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*VoteWithdrawnEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "VoteWithdrawn" {
				continue
			}
			event := new(VoteWithdrawnEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize VoteWithdrawnEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to VoteWithdrawnEvent or
// returns an error if it's not possible to do to so.
func (e *VoteWithdrawnEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ID, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	e.Voter, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Voter: %w", err)
	}

	index++
	e.Kind, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Kind: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// VotingScoreCountedEventsFromApplicationLog retrieves a set of all emitted events
// with "VotingScoreCounted" name from the provided [result.ApplicationLog].
func VotingScoreCountedEventsFromApplicationLog(log *result.ApplicationLog) ([]*VotingScoreCountedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*VotingScoreCountedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "VotingScoreCounted" {
				continue
			}
			event := new(VotingScoreCountedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize VotingScoreCountedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to VotingScoreCountedEvent or
// returns an error if it's not possible to do to so.
func (e *VotingScoreCountedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Top, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Top: %w", err)
	}

	return nil
}

// AnchorRequestedEventsFromApplicationLog retrieves a set of all emitted events
// with "AnchorRequested" name from the provided [result.ApplicationLog].
func AnchorRequestedEventsFromApplicationLog(log *result.ApplicationLog) ([]*AnchorRequestedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*AnchorRequestedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "AnchorRequested" {
				continue
			}
			event := new(AnchorRequestedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize AnchorRequestedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to AnchorRequestedEvent or
// returns an error if it's not possible to do to so.
func (e *AnchorRequestedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ID, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	e.Anchor, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Anchor: %w", err)
	}

	index++
	e.Admin, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Admin: %w", err)
	}

	return nil
}

// AppchainRemovedEventsFromApplicationLog retrieves a set of all emitted events
// with "AppchainRemoved" name from the provided [result.ApplicationLog].
func AppchainRemovedEventsFromApplicationLog(log *result.ApplicationLog) ([]*AppchainRemovedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*AppchainRemovedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "AppchainRemoved" {
				continue
			}
			event := new(AppchainRemovedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize AppchainRemovedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to AppchainRemovedEvent or
// returns an error if it's not possible to do to so.
func (e *AppchainRemovedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ID, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	return nil
}

// ClearIncompleteEventsFromApplicationLog retrieves a set of all emitted events
// with "ClearIncomplete" name from the provided [result.ApplicationLog].
func ClearIncompleteEventsFromApplicationLog(log *result.ApplicationLog) ([]*ClearIncompleteEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ClearIncompleteEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ClearIncomplete" {
				continue
			}
			event := new(ClearIncompleteEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ClearIncompleteEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ClearIncompleteEvent or
// returns an error if it's not possible to do to so.
func (e *ClearIncompleteEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Cursor, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Cursor: %w", err)
	}

	return nil
}
