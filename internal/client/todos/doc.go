// Package todos manages the session's task collection.
//
// A Manager holds the in-memory, insertion-ordered list of todos and keeps
// it consistent with a Store. Two store strategies exist behind the same
// interface: RemoteStore talks to the backend through the API client (the
// primary variant), LocalStore persists the whole list as one JSON file and
// never touches the network (the offline variant).
//
// Every mutating operation either fully succeeds — the local list is updated
// to the record the store returned — or fully fails, leaving the list
// unchanged and surfacing the error. There is no optimistic local mutation
// before the store confirms. The one best-effort exception is
// ClearCompleted, which deletes the completed subset sequentially and
// reports a per-item outcome instead of aborting on the first failure.
package todos
