package usecase_test

import (
	"context"
	"sync"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/pairup/pkg/domain/interfaces"
	"github.com/secmon-lab/pairup/pkg/domain/model"
	"github.com/secmon-lab/pairup/pkg/domain/types"
)

var (
	errDispatch = goerr.New("dispatch failed")
	errLookup   = goerr.New("lookup failed")
)

// fakeConversation counts every call so tests can assert exactly which
// lookups and dispatches a pairing cycle performs.
type fakeConversation struct {
	mu sync.Mutex

	teamNames  map[types.TeamID]string
	membership map[types.TeamID]map[types.UserID]*model.MemberProfile

	teamNameErr  error
	memberErrFor map[types.UserID]error
	sendErrFor   map[types.UserID]error

	teamNameCalls int
	memberCalls   int
	sendCalls     int
	sentTo        []types.UserID
	lastSent      *model.Notification
}

var _ interfaces.Conversation = &fakeConversation{}

func newFakeConversation() *fakeConversation {
	return &fakeConversation{
		teamNames:    map[types.TeamID]string{},
		membership:   map[types.TeamID]map[types.UserID]*model.MemberProfile{},
		memberErrFor: map[types.UserID]error{},
		sendErrFor:   map[types.UserID]error{},
	}
}

func (f *fakeConversation) addMember(teamID types.TeamID, member *model.MemberProfile) {
	if f.membership[teamID] == nil {
		f.membership[teamID] = map[types.UserID]*model.MemberProfile{}
	}
	f.membership[teamID][member.ID] = member
}

func (f *fakeConversation) ResolveTeamName(ctx context.Context, team *model.TeamInstallation) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.teamNameCalls++
	if f.teamNameErr != nil {
		return "", f.teamNameErr
	}
	return f.teamNames[team.TeamID], nil
}

func (f *fakeConversation) ResolveMember(ctx context.Context, userID types.UserID, teamID types.TeamID, serviceURL string) (*model.MemberProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.memberCalls++
	if err := f.memberErrFor[userID]; err != nil {
		return nil, err
	}
	return f.membership[teamID][userID], nil
}

func (f *fakeConversation) SendToMember(ctx context.Context, member *model.MemberProfile, tenantID types.TenantID, serviceURL string, notification *model.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sendCalls++
	if err := f.sendErrFor[member.ID]; err != nil {
		return err
	}
	f.sentTo = append(f.sentTo, member.ID)
	f.lastSent = notification
	return nil
}

// countingRepo wraps a repository to count opt-in snapshot reads
type countingRepo struct {
	interfaces.Repository

	mu          sync.Mutex
	getAllCalls int
}

func (r *countingRepo) OptIn() interfaces.OptInRepository {
	return &countingOptIn{OptInRepository: r.Repository.OptIn(), parent: r}
}

type countingOptIn struct {
	interfaces.OptInRepository
	parent *countingRepo
}

func (o *countingOptIn) GetAll(ctx context.Context) (map[types.UserID]bool, error) {
	o.parent.mu.Lock()
	o.parent.getAllCalls++
	o.parent.mu.Unlock()
	return o.OptInRepository.GetAll(ctx)
}

// failingTeamRepo makes every team listing fail
type failingTeamRepo struct {
	interfaces.Repository
}

func (r *failingTeamRepo) Team() interfaces.TeamRepository {
	return &failingTeamStore{TeamRepository: r.Repository.Team()}
}

type failingTeamStore struct {
	interfaces.TeamRepository
}

func (s *failingTeamStore) List(ctx context.Context) ([]*model.TeamInstallation, error) {
	return nil, goerr.New("team store unavailable")
}

// failingOptInRepo makes every opt-in snapshot read fail
type failingOptInRepo struct {
	interfaces.Repository
}

func (r *failingOptInRepo) OptIn() interfaces.OptInRepository {
	return &failingOptInStore{OptInRepository: r.Repository.OptIn()}
}

type failingOptInStore struct {
	interfaces.OptInRepository
}

func (s *failingOptInStore) GetAll(ctx context.Context) (map[types.UserID]bool, error) {
	return nil, goerr.New("opt-in store unavailable")
}

func installTeam(t *testing.T, repo interfaces.Repository, teamID types.TeamID, maxPairs *int) *model.TeamInstallation {
	t.Helper()
	team := &model.TeamInstallation{
		TeamID:        teamID,
		TenantID:      "tenant-1",
		ServiceURL:    "https://smba.example.com/emea/",
		InstallerName: "Alex",
		MaxPairs:      maxPairs,
	}
	gt.NoError(t, repo.Team().SetInstallStatus(context.Background(), team, true)).Required()
	return team
}

func setOptIn(t *testing.T, repo interfaces.Repository, userID types.UserID, optedIn bool) {
	t.Helper()
	gt.NoError(t, repo.OptIn().SetUserInfo(context.Background(), &model.UserInfo{
		TenantID:   "tenant-1",
		UserID:     userID,
		OptedIn:    optedIn,
		ServiceURL: "https://smba.example.com/emea/",
	})).Required()
}

func profile(userID types.UserID, name string) *model.MemberProfile {
	return &model.MemberProfile{
		ID:                userID,
		Name:              name,
		GivenName:         name,
		UserPrincipalName: name + "@example.com",
		Email:             name + "@example.com",
	}
}

func intPtr(n int) *int {
	return &n
}
