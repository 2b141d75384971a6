package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/recruitkit/internal/common"
	"github.com/dmitrijs2005/recruitkit/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

const (
	qWithoutToken = `(?s)^SELECT\s+p\.person_id\s+FROM\s+person\s+AS\s+p\s+LEFT\s+JOIN\s+migration_token\s+AS\s+m\s+ON\s+m\.person_id\s*=\s*p\.person_id\s+WHERE\s+m\.person_id\s+IS\s+NULL\s+ORDER\s+BY\s+p\.person_id\s*$`
	qPending      = `(?s)^SELECT\s+p\.person_id,\s*p\.email,\s*m\.token\s+FROM\s+person\s+AS\s+p\s+JOIN\s+migration_token\s+AS\s+m\s+ON\s+p\.person_id\s*=\s*m\.person_id\s+WHERE\s+p\.role_id\s*=\s*\$1\s+ORDER\s+BY\s+p\.person_id\s*$`
	qCredentials  = `(?s)^SELECT\s+person_id,\s*password\s+FROM\s+person\s+WHERE\s+password\s+IS\s+NOT\s+NULL\s+ORDER\s+BY\s+person_id\s*$`
	qUpdatePass   = `(?s)^UPDATE\s+person\s+SET\s+password\s*=\s*\$1\s+WHERE\s+person_id\s*=\s*\$2\s*$`
)

func TestListIDsWithoutToken_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"person_id"}).AddRow(int64(1)).AddRow(int64(5))
	mock.ExpectQuery(qWithoutToken).WillReturnRows(rows)

	got, err := repo.ListIDsWithoutToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 5}, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListIDsWithoutToken_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(qWithoutToken).WillReturnError(errors.New("db down"))

	_, err := repo.ListIDsWithoutToken(context.Background())
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestListIDsWithoutToken_RowError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"person_id"}).AddRow(int64(1)).RowError(0, errors.New("broken row"))
	mock.ExpectQuery(qWithoutToken).WillReturnRows(rows)

	_, err := repo.ListIDsWithoutToken(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken row")
}

func TestListPendingMigrations_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"person_id", "email", "token"}).
		AddRow(int64(3), "a@example.com", "tokA").
		AddRow(int64(4), "b@example.com", "tokB")
	mock.ExpectQuery(qPending).WithArgs(2).WillReturnRows(rows)

	got, err := repo.ListPendingMigrations(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, []models.PendingMigration{
		{UserID: 3, Email: "a@example.com", Token: "tokA"},
		{UserID: 4, Email: "b@example.com", Token: "tokB"},
	}, got)
}

func TestListPendingMigrations_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(qPending).WithArgs(2).WillReturnError(errors.New("db err"))

	_, err := repo.ListPendingMigrations(context.Background(), 2)
	if err == nil || !regexp.MustCompile(`db error: .*db err`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestListCredentials_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"person_id", "password"}).AddRow(int64(7), "hunter2")
	mock.ExpectQuery(qCredentials).WillReturnRows(rows)

	got, err := repo.ListCredentials(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.Credential{{UserID: 7, Password: "hunter2"}}, got)
}

func TestUpdatePassword(t *testing.T) {
	tests := []struct {
		name    string
		result  sql.Result
		execErr error
		wantErr error
		wantMsg string
	}{
		{name: "updated", result: sqlmock.NewResult(0, 1)},
		{name: "missing user", result: sqlmock.NewResult(0, 0), wantErr: common.ErrorNotFound},
		{name: "db error", execErr: errors.New("db err"), wantMsg: "db error: db err"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, db := newRepoWithMock(t)
			defer db.Close()

			exp := mock.ExpectExec(qUpdatePass).WithArgs("$2a$hash", int64(7))
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(tt.result)
			}

			err := repo.UpdatePassword(context.Background(), 7, "$2a$hash")
			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			case tt.wantMsg != "":
				require.EqualError(t, err, tt.wantMsg)
			default:
				require.NoError(t, err)
			}
		})
	}
}
