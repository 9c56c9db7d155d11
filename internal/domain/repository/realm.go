// Package repository defines the interfaces for the persistence layer.
package repository

// Realm is a visibility scope within the record store. The owner realm holds
// records as seen by their creating account; the shared realm holds records a
// counterparty can see once a couple is paired. On Postgres the two realms are
// row predicates over the same tables, mirroring row-level access policies.
type Realm int

const (
	// RealmOwner scopes a query to records the viewer created.
	RealmOwner Realm = iota
	// RealmShared scopes a query to records shared with the viewer through a
	// paired couple.
	RealmShared
)

// Realms lists both realms in the lookup order used for cross-realm reads:
// a record moves from owner-only to shared visibility after pairing, so reads
// that must find it either way probe the shared realm first.
var Realms = []Realm{RealmShared, RealmOwner}

// String returns the realm name for logging.
func (r Realm) String() string {
	switch r {
	case RealmOwner:
		return "owner"
	case RealmShared:
		return "shared"
	default:
		return "unknown"
	}
}
