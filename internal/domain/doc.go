// Package domain defines core data models and interfaces shared across atlas.
// It contains plain types (keys, signed artifacts, stored records) and
// contracts (interfaces) only.
package domain
