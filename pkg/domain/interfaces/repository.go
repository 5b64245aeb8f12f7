package interfaces

import (
	"context"

	"github.com/secmon-lab/pairup/pkg/domain/model"
	"github.com/secmon-lab/pairup/pkg/domain/types"
)

// Repository defines the interface for data persistence
type Repository interface {
	Team() TeamRepository
	OptIn() OptInRepository
	Question() QuestionRepository
	Resource() ResourceRepository

	Close() error
}

// TeamRepository persists team installation records
type TeamRepository interface {
	// List retrieves all teams to which the bot is installed
	List(ctx context.Context) ([]*model.TeamInstallation, error)

	// Get retrieves a single team installation by ID
	Get(ctx context.Context, teamID types.TeamID) (*model.TeamInstallation, error)

	// SetInstallStatus saves the installation record when installed is true
	// and deletes it when false.
	SetInstallStatus(ctx context.Context, team *model.TeamInstallation, installed bool) error
}

// OptInRepository persists user opt-in records
type OptInRepository interface {
	// GetAll retrieves the opt-in flag of every known user as one snapshot.
	// The matching cycle reads this exactly once per run.
	GetAll(ctx context.Context) (map[types.UserID]bool, error)

	// SetUserInfo saves the opt-in record for a user (upsert)
	SetUserInfo(ctx context.Context, info *model.UserInfo) error
}

// QuestionRepository persists per-locale icebreaker question sets
type QuestionRepository interface {
	// Get retrieves the question set for a locale. A locale with no set
	// yields an empty slice, not an error.
	Get(ctx context.Context, locale types.Locale) ([]string, error)

	// Set replaces the question set for a locale
	Set(ctx context.Context, locale types.Locale, questions []string) error
}

// ResourceRepository persists operator-overridable resource strings
type ResourceRepository interface {
	// Get retrieves the string stored for (locale, key). An absent value
	// yields an empty string, not an error.
	Get(ctx context.Context, locale types.Locale, key types.ResourceKey) (string, error)

	// Set stores the string for (locale, key)
	Set(ctx context.Context, locale types.Locale, key types.ResourceKey, value string) error
}
