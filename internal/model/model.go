package model

// Package model contains pure domain models with no database-specific
// dependencies or tags. They can be used across layers (HTTP, service,
// storage) without coupling to persistence.

// Kind identifies one of the content entity variants that share the
// protected-content pattern.
type Kind string

const (
	KindPost    Kind = "post"
	KindProject Kind = "project"
	KindLife    Kind = "life"
)

// ClaimKey returns the JWT claim name that scopes an access token to one
// entity of this kind, e.g. "post_id".
func (k Kind) ClaimKey() string {
	return string(k) + "_id"
}

// Role is the capability level resolved at authentication time.
// There is exactly one privileged identity, designated by configuration;
// no role table exists.
type Role int

const (
	RoleUser Role = iota
	RoleAdmin
)
