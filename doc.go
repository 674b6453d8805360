// Package taskboard is a small client-side session layer over the public
// JSONPlaceholder-style mock API: it fetches users and their task lists,
// keeps them in an in-memory view-state store, and lets front-ends create
// and toggle tasks locally. The remote never persists writes.
//
// A Session ties the remote client to a per-view store:
//
//	sess := taskboard.New(taskboard.Config{PageSize: 6})
//	if err := sess.LoadHome(ctx); err != nil { ... }
//	for _, u := range sess.Store().VisibleUsers() { ... }
//
// Loads fetch per-user task lists concurrently; one user's fetch failure is
// isolated and replaced with an empty collection rather than aborting the
// whole load. Results arriving after the session moved on to another view
// are discarded.
package taskboard
