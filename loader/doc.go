// Package loader builds a child process environment from an inherited one.
//
// A Snapshot of the inherited environment is classified variable by variable
// against a Config:
//
//   - names on the pass list are copied unchanged, ahead of every other rule
//   - with a prefix configured, names without it are copied unchanged
//   - every other variable is resolved, exported under its name with the
//     prefix stripped
//
// Resolution is delegated to a ValueResolver (see package secret). Failures
// either abort the whole load or, with IgnoreMissing, drop the variable and
// log a warning. The Engine never reads or mutates the live process
// environment; the Snapshot is the only input.
package loader
