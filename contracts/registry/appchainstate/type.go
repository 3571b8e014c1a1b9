/*
Package appchainstate describes lifecycle states of the appchains registered
in the registry contract and the events moving an appchain between them.

The package is compiled into the registry contract and can be imported by
off-chain code as well, so it only uses language features supported by the
NeoGo compiler.
*/
package appchainstate

// Type is an enumeration for appchain states.
type Type int

// Various appchain states.
const (
	_ Type = iota

	// Registered stands for appchains which have just been registered and
	// wait for the audit.
	Registered

	// Auditing stands for appchains under audit.
	Auditing

	// InQueue stands for audited appchains competing in voting for
	// promotion.
	InQueue

	// Staging stands for appchains which have won the voting. Lifecycle
	// control is passed to the anchor.
	Staging

	// Booting stands for appchains starting their network.
	Booting

	// Active stands for appchains with working network.
	Active

	// Broken stands for appchains with failed network.
	Broken

	// Dead stands for appchains rejected or removed from the competition.
	Dead
)

// Event is an enumeration for actions changing appchain state.
type Event int

// Events handled by the registry.
const (
	_ Event = iota

	// StartAuditing is issued by the lifecycle manager to start the audit.
	StartAuditing

	// PassAuditing is issued by the lifecycle manager after successful audit.
	PassAuditing

	// Reject is issued by the lifecycle manager to drop the appchain before
	// the promotion.
	Reject

	// Promote is issued by voting conclusion for the top candidate.
	Promote

	// Eliminate is issued by voting conclusion for candidates with
	// non-positive voting score.
	Eliminate

	// Boot is issued by the committee to start booting of the staged
	// appchain.
	Boot

	// ForceDelete is issued by the committee and kills appchain in any state.
	ForceDelete
)

// Next returns the state appchain moves to from the given one on the given
// event. Zero value is returned if the transition is not allowed.
func Next(from Type, ev Event) Type {
	if !IsValid(from) {
		return 0
	}

	switch ev {
	case StartAuditing:
		if from == Registered {
			return Auditing
		}
	case PassAuditing:
		if from == Auditing {
			return InQueue
		}
	case Reject:
		if from == Registered || from == Auditing || from == InQueue {
			return Dead
		}
	case Promote:
		if from == InQueue {
			return Staging
		}
	case Eliminate:
		if from == InQueue {
			return Dead
		}
	case Boot:
		if from == Staging {
			return Booting
		}
	case ForceDelete:
		return Dead
	}

	return 0
}

// IsValid checks whether t is one of the known states.
func IsValid(t Type) bool {
	return t >= Registered && t <= Dead
}

// IsManagedByAnchor checks whether lifecycle of the appchain in the given
// state is controlled by its anchor rather than by the registry.
func IsManagedByAnchor(t Type) bool {
	return t == Staging || t == Booting || t == Active || t == Broken
}

// String returns human-readable state name.
func String(t Type) string {
	switch t {
	case Registered:
		return "registered"
	case Auditing:
		return "auditing"
	case InQueue:
		return "inQueue"
	case Staging:
		return "staging"
	case Booting:
		return "booting"
	case Active:
		return "active"
	case Broken:
		return "broken"
	case Dead:
		return "dead"
	}

	return "unknown"
}
