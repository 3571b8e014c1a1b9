/*
Package registry contains implementation of Appchain Registry contract.

Registry contract keeps records of appchains and drives them through their
lifecycle: registration, audit, competition in the voting queue, promotion to
staging and booting. Appchains are registered by GAS transfer with
registration data attached. Voters deposit GAS for or against the appchains in
queue and may withdraw their deposits at any time.

The election runs in two phases. Counting operator periodically counts voting
scores (no more than once per counting interval) and keeps track of the top
appchain. Lifecycle manager concludes the election: the top appchain is
promoted, appchains with non-positive score are eliminated and scores of the
rest are reduced.

Methods are guarded by the following tiers:
  - appchain owner: custom metadata and appchain ownership;
  - registry owner (or delegated lifecycle and settings managers): metadata
    correction, audit, rejection, election conclusion, removal and settings;
  - counting operator: voting score counting;
  - committee: forced deletion, bulk clearing, booting, index repair and
    contract update.

# Contract notifications

AppchainRegistered notification. This notification is produced when a new
appchain is registered.

	AppchainRegistered:
	  - name: id
	    type: String
	  - name: owner
	    type: Hash160

StateChanged notification. This notification is produced when appchain state
changes. State is an integer value of appchainstate.Type.

	StateChanged:
	  - name: id
	    type: String
	  - name: state
	    type: Integer

MetadataUpdated notification. This notification is produced when appchain
metadata is changed by the appchain owner or the registry.

	MetadataUpdated:
	  - name: id
	    type: String
	  - name: by
	    type: Hash160

OwnershipTransferred notification. This notification is produced when the
appchain gets a new owner.

	OwnershipTransferred:
	  - name: id
	    type: String
	  - name: owner
	    type: Hash160

VoteDeposited and VoteWithdrawn notifications. These notifications are
produced when voter deposits GAS for the appchain and withdraws it back.

	VoteDeposited:
	  - name: id
	    type: String
	  - name: voter
	    type: Hash160
	  - name: kind
	    type: String
	  - name: amount
	    type: Integer

VotingScoreCounted notification. This notification is produced after voting
score counting with the ID of the top appchain.

	VotingScoreCounted:
	  - name: top
	    type: String

AnchorRequested notification. This notification is produced on election
conclusion. Provisioner is expected to create the anchor of the promoted
appchain and grant it to the admin account.

	AnchorRequested:
	  - name: id
	    type: String
	  - name: anchor
	    type: String
	  - name: admin
	    type: Hash160

AppchainRemoved notification. This notification is produced when appchain is
physically removed from the registry.

	AppchainRemoved:
	  - name: id
	    type: String

ClearIncomplete notification. This notification is produced when bulk
clearing stops because of the budget. Clearing should be continued from the
cursor.

	ClearIncomplete:
	  - name: cursor
	    type: String
*/
package registry

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'a' + <id> -> std.Serialize(Appchain)
   appchain record
 - 'i' + <id> -> []byte{}
   appchain index, always written and deleted together with the record
 - "vu"|"vd" + RIPEMD160(<id>) + <voter> -> int
   GAS deposited by the voter for (vu) or against (vd) the appchain
 - "top" -> string
   ID of the top appchain in queue, absent if there is no one
 - "lastCount" -> int
   interval-aligned time of the last voting score count in milliseconds
 - "settings" -> std.Serialize(Settings)
 - "roles" -> std.Serialize(Roles)
 - "owner" -> interop.Hash160
   registry owner
*/
