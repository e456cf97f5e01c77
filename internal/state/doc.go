// Package state routes user intents to the session's cart and wishlist.
//
// An Intent is one of Add, Remove or Toggle. Session.Dispatch applies it to
// exactly one store, synchronously and in call order. A Session is created at
// start-up and handed to every screen and command that needs it.
package state
