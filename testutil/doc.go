// Package testutil provides seeded random states and matrices plus
// distance helpers for deterministic tests.
package testutil
