// Package profile reads and edits the local account shown on the profile
// screen, including the profile picture reference.
package profile
