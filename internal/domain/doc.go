// Package domain defines the core HBnB entities (users, places, amenities,
// reviews) and their validation rules. Entities carry no behavior beyond
// construction and validation; all cross-entity rules live in the service
// layer.
package domain
