// Package service implements the HBnB facade: the single component
// mediating all entity creation, mutation, cross-entity validation, and
// ownership checks. The facade exclusively owns the four entity stores for
// the lifetime of the process; handlers never touch a store directly.
package service
