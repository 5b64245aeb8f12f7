package repository_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/pairup/pkg/domain/interfaces"
	"github.com/secmon-lab/pairup/pkg/domain/model"
	"github.com/secmon-lab/pairup/pkg/repository/memory"
)

func runOptInRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("GetAll on an empty store yields an empty snapshot", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		status, err := repo.OptIn().GetAll(ctx)
		gt.NoError(t, err).Required()
		gt.Value(t, len(status)).Equal(0)
	})

	t.Run("SetUserInfo upserts and GetAll reflects the flag", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		gt.NoError(t, repo.OptIn().SetUserInfo(ctx, &model.UserInfo{
			TenantID:   "tenant-1",
			UserID:     "u-alice",
			OptedIn:    true,
			ServiceURL: "https://smba.example.com/emea/",
		})).Required()
		gt.NoError(t, repo.OptIn().SetUserInfo(ctx, &model.UserInfo{
			TenantID:   "tenant-1",
			UserID:     "u-bob",
			OptedIn:    false,
			ServiceURL: "https://smba.example.com/emea/",
		})).Required()

		status, err := repo.OptIn().GetAll(ctx)
		gt.NoError(t, err).Required()
		gt.Value(t, len(status)).Equal(2)
		gt.Value(t, status["u-alice"]).Equal(true)
		gt.Value(t, status["u-bob"]).Equal(false)

		// Flip one flag and read again
		gt.NoError(t, repo.OptIn().SetUserInfo(ctx, &model.UserInfo{
			TenantID:   "tenant-1",
			UserID:     "u-alice",
			OptedIn:    false,
			ServiceURL: "https://smba.example.com/emea/",
		})).Required()

		status, err = repo.OptIn().GetAll(ctx)
		gt.NoError(t, err).Required()
		gt.Value(t, len(status)).Equal(2)
		gt.Value(t, status["u-alice"]).Equal(false)
	})

	t.Run("SetUserInfo rejects empty user ID", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		err := repo.OptIn().SetUserInfo(ctx, &model.UserInfo{TenantID: "tenant-1"})
		gt.Value(t, err).NotNil()
	})
}

func TestMemoryOptInRepository(t *testing.T) {
	runOptInRepositoryTest(t, func(t *testing.T) interfaces.Repository {
		return memory.New()
	})
}

func TestFirestoreOptInRepository(t *testing.T) {
	runOptInRepositoryTest(t, newFirestoreRepository)
}
