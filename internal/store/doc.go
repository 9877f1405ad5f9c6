// Package store defines interfaces for the application's mutable state and
// provides the in-memory implementation used by the demo deployment.
//
// State is partitioned by user ID. Each partition carries its own lock, so
// requests for different users never contend and requests for the same user
// serialise without lost updates. Callers receive copies of stored values and
// can never mutate state except through the store's methods.
package store
