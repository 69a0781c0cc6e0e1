// Package tasks owns the task lists shown by taches.
//
// A Repository holds every TaskList and Task for the life of the process.
// Callers only ever see copies: Get and All return snapshots, and the only
// ways to change state are ToggleTask and AddTask. Nothing is emitted on
// mutation; whoever mutates is responsible for re-rendering.
//
// Lookup policy is the same for every operation: an unknown list UID fails
// with a KindNotFound error, while an unknown task UID inside a known list
// is ignored.
package tasks
