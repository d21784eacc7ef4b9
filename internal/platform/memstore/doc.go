// Package memstore provides in-memory implementations of the store
// interfaces. All four entity stores are built on a single generic keyed
// container that preserves insertion order and serializes access with a
// per-store read/write mutex, so concurrent requests never race on the
// underlying maps. Data is memory-resident and lost on restart.
package memstore
