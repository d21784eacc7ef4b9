// Package api provides the HTTP handlers for the HBnB REST surface. Each
// handler parses and validates input, calls the facade, and serializes the
// returned plain-data result; no business rules live here.
package api
