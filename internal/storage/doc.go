// Package storage persists the student and lesson book.
//
// Two engines implement Store:
//
//   - JSONStore: a single JSON document written atomically (temp file and
//     rename), optionally sealed with a passphrase (Argon2id key derivation,
//     ChaCha20-Poly1305 encryption).
//   - BadgerStore: one Badger key per entity plus an order record, replaced
//     in a single transaction on every save.
//
// Fingerprint hashes a snapshot so callers can skip saves when nothing
// changed.
package storage
