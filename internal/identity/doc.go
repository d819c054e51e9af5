// Package identity persists stable external identifiers for monitors.
//
// A Store maps a monitor key (its dot-qualified identity, for example
// "teamA.sub.orders_volume") to a generated UUID. Keys are unique: Add fails
// with ErrDuplicateKey when the key is already present, Delete fails with
// ErrKeyNotFound when it is absent, and Read reports absence through its
// boolean result rather than an error.
//
// Two backends are provided:
//
//   - JSONStore keeps a flat JSON object in a single file. Every call reads
//     and rewrites the whole file.
//   - SQLiteStore keeps one row per key in an "identities" table.
//
// Neither backend guards against concurrent writers in other processes; a
// single writer per backing file is assumed.
package identity
