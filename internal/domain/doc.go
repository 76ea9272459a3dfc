// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (curve, hash and point-format identifiers, KEM
// outputs, stored key records) and contracts (interfaces) only.
package domain
