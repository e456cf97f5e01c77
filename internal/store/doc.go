// Package store provides local persistence for clothiq.
//
// The app stores only a handful of string values: the signed-up account, the
// session token and the profile picture reference. They live in a
// domain.KeyValueStore, for which this package offers three backends:
//   - FileKV: a JSON object in storage.json, rewritten atomically.
//   - sealed FileKV: the same object encrypted at rest (storage.json.enc).
//   - SQLiteKV: a single kv table in storage.db.
//
// Accounts is the typed view over any of them. Cart and wishlist are never
// stored here.
package store
