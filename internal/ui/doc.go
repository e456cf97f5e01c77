// Package ui is the interactive terminal shell.
//
// The root Model switches between the auth screens (welcome, login, signup)
// and the main tabs (home, cart, profile). Product details are pushed on a
// stack above the tabs and popped with esc. Screens read and mutate the
// session's cart and wishlist only from Update, so the bubbletea loop is the
// single writer; catalog and account calls run as tea.Cmds.
package ui
