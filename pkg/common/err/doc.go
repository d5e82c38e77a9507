// Package err provides the shared error type used across gocaf.
//
// Every failure surfaced by the object model and the stores carries a
// package name, a machine-readable code, and the operation that failed.
// Callers match on codes via the per-package predicate helpers (for
// example store.IsNotFound) or err.IsCode; they never parse messages.
package err
