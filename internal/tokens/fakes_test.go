package tokens

import (
	"context"
	"sort"

	"github.com/dmitrijs2005/recruitkit/internal/common"
	"github.com/dmitrijs2005/recruitkit/internal/dbx"
	"github.com/dmitrijs2005/recruitkit/internal/mailer"
	"github.com/dmitrijs2005/recruitkit/internal/models"
	"github.com/dmitrijs2005/recruitkit/internal/repositories/competences"
	"github.com/dmitrijs2005/recruitkit/internal/repositories/migrationtokens"
	"github.com/dmitrijs2005/recruitkit/internal/repositories/users"
)

// memStore mimics the person and migration_token tables, enforcing
// uniqueness on both the token string and the user id.
type memStore struct {
	users   []models.User
	tokens  map[string]int64
	byUser  map[int64]string
	listErr error
	// insertErr, when set for a user id, is returned by Insert for that user.
	insertErr map[int64]error
}

func newMemStore(users ...models.User) *memStore {
	return &memStore{
		users:     users,
		tokens:    map[string]int64{},
		byUser:    map[int64]string{},
		insertErr: map[int64]error{},
	}
}

func (s *memStore) seed(userID int64, token string) {
	s.tokens[token] = userID
	s.byUser[userID] = token
}

type fakeUsersRepo struct {
	s          *memStore
	pending    []models.PendingMigration
	pendingErr error
	gotRoleID  int
}

func (f *fakeUsersRepo) ListIDsWithoutToken(context.Context) ([]int64, error) {
	if f.s.listErr != nil {
		return nil, f.s.listErr
	}
	var ids []int64
	for _, u := range f.s.users {
		if _, ok := f.s.byUser[u.ID]; !ok {
			ids = append(ids, u.ID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (f *fakeUsersRepo) ListPendingMigrations(_ context.Context, roleID int) ([]models.PendingMigration, error) {
	f.gotRoleID = roleID
	if f.pendingErr != nil {
		return nil, f.pendingErr
	}
	return f.pending, nil
}

func (f *fakeUsersRepo) ListCredentials(context.Context) ([]models.Credential, error) {
	return nil, nil
}

func (f *fakeUsersRepo) UpdatePassword(context.Context, int64, string) error { return nil }

type fakeTokensRepo struct {
	s *memStore
}

func (f *fakeTokensRepo) Insert(_ context.Context, t models.MigrationToken) error {
	if err := f.s.insertErr[t.UserID]; err != nil {
		return err
	}
	if _, ok := f.s.tokens[t.Token]; ok {
		return common.ErrTokenTaken
	}
	if _, ok := f.s.byUser[t.UserID]; ok {
		return common.ErrorAlreadyExists
	}
	f.s.seed(t.UserID, t.Token)
	return nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	t *fakeTokensRepo
}

func newFakeRepoManager(s *memStore) *fakeRepoManager {
	return &fakeRepoManager{u: &fakeUsersRepo{s: s}, t: &fakeTokensRepo{s: s}}
}

func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository                     { return m.u }
func (m *fakeRepoManager) MigrationTokens(dbx.DBTX) migrationtokens.Repository { return m.t }
func (m *fakeRepoManager) Competences(dbx.DBTX) competences.Repository         { return nil }

type recordingSender struct {
	sent []mailer.Message
	err  error
}

func (r *recordingSender) Send(_ context.Context, m mailer.Message) error {
	if r.err != nil {
		return r.err
	}
	r.sent = append(r.sent, m)
	return nil
}
