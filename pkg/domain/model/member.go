package model

import (
	"strings"

	"github.com/secmon-lab/pairup/pkg/domain/types"
)

// Marker in the principal name that indicates an externally-authenticated
// (guest) account.
const externalUPNMarker = "#ext#"

// MemberProfile is the per-user, per-team resolved identity returned by the
// conversation collaborator. It is transient: resolved on demand during a
// pairing cycle and never cached across runs.
type MemberProfile struct {
	ID                types.UserID
	Name              string
	GivenName         string
	UserPrincipalName string
	Email             string
}

// DisplayGivenName returns the given name, falling back to the full display
// name when the directory has no given name recorded (common for guests).
func (m *MemberProfile) DisplayGivenName() string {
	if m.GivenName != "" {
		return m.GivenName
	}
	return m.Name
}

// IsGuest reports whether the account is externally authenticated.
func (m *MemberProfile) IsGuest() bool {
	return strings.Contains(strings.ToLower(m.UserPrincipalName), externalUPNMarker)
}

// ContactAddress returns the address to use when starting a chat with the
// member. Guest accounts cannot be reached via their principal name, so
// their external email is used instead.
func (m *MemberProfile) ContactAddress() string {
	if m.IsGuest() {
		return m.Email
	}
	return m.UserPrincipalName
}

// Pair is two members drawn from the same team-eligible pool. It exists only
// for the duration of one pairing cycle.
type Pair struct {
	Sender    *MemberProfile
	Recipient *MemberProfile
}
