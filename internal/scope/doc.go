// Package scope decides which plan items a suggestion pass may touch.
//
// Resolve expands a partial, cross-level selection into per-level id and
// parent-id sets. Reconcile filters a generator's candidate updates against
// those sets, silently dropping anything outside them. Describe renders the
// same selection as locked/unlocked text for the generator's context.
//
// An empty set always means "unrestricted". Scopes are built per call and
// never stored.
package scope
