package types

import (
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// TeamID identifies a team chat where the bot is installed. The value is an
// opaque identifier assigned by the chat platform, so only emptiness is
// validated.
type TeamID string

func (t TeamID) Validate() error {
	if t == "" {
		return goerr.New("team ID cannot be empty")
	}
	return nil
}

func (t TeamID) String() string {
	return string(t)
}

// UserID identifies a user across the whole tenant. Opaque platform value.
type UserID string

func (u UserID) Validate() error {
	if u == "" {
		return goerr.New("user ID cannot be empty")
	}
	return nil
}

func (u UserID) String() string {
	return string(u)
}

// TenantID identifies the organization a team belongs to.
type TenantID string

func (t TenantID) String() string {
	return string(t)
}

// Locale is a language/culture identifier such as "en", "de" or "de-DE",
// used to select notification text and question variants.
type Locale string

func (l Locale) String() string {
	return string(l)
}

// ResourceKey is the symbolic name of a piece of localizable text.
type ResourceKey string

func (r ResourceKey) String() string {
	return string(r)
}

// RunID identifies a single pairing cycle for log correlation.
type RunID string

func NewRunID() RunID {
	return RunID(uuid.NewString())
}

func (r RunID) String() string {
	return string(r)
}
