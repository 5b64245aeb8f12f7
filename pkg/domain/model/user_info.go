package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pairup/pkg/domain/types"
)

// UserInfo is the stored opt-in record for a user. The opt-in flag is
// tenant-wide, not team-scoped.
type UserInfo struct {
	TenantID   types.TenantID
	UserID     types.UserID
	OptedIn    bool
	ServiceURL string
}

// Validate checks the fields required to persist the record
func (u *UserInfo) Validate() error {
	if err := u.UserID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid user info")
	}
	return nil
}
