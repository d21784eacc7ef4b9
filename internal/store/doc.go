// Package store defines the persistence interfaces for the HBnB entities
// and the sentinel errors shared by every store implementation. The only
// implementation in this repository is the in-memory one under
// internal/platform/memstore; persistence durability is explicitly out of
// scope.
package store
