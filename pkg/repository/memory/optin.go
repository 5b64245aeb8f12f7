package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pairup/pkg/domain/interfaces"
	"github.com/secmon-lab/pairup/pkg/domain/model"
	"github.com/secmon-lab/pairup/pkg/domain/types"
)

type optInRepository struct {
	mu    sync.RWMutex
	users map[types.UserID]*model.UserInfo
}

var _ interfaces.OptInRepository = &optInRepository{}

func newOptInRepository() *optInRepository {
	return &optInRepository{
		users: make(map[types.UserID]*model.UserInfo),
	}
}

func (r *optInRepository) GetAll(ctx context.Context) (map[types.UserID]bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	status := make(map[types.UserID]bool, len(r.users))
	for id, info := range r.users {
		status[id] = info.OptedIn
	}

	return status, nil
}

func (r *optInRepository) SetUserInfo(ctx context.Context, info *model.UserInfo) error {
	if err := info.Validate(); err != nil {
		return goerr.Wrap(err, "invalid user info")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	infoCopy := *info
	r.users[info.UserID] = &infoCopy
	return nil
}
