// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (catalog, cart, account) and contracts (interfaces) only.
package domain
