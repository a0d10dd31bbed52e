// Package kernel provides core domain primitives shared across the agency
// simulator's domain model. Its types are value objects: immutable, validated
// at construction and safe for concurrent use.
package kernel
