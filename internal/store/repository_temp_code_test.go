package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/hashclash/storage/internal/logger"
	"github.com/hashclash/storage/models"
	"github.com/jackc/pgerrcode"
)

var tempCodeCols = []string{
	"id", "user_id", "code", "code_type", "created_at", "expires_at", "is_used", "is_active",
}

func newTestTempCodeRepo(t *testing.T) (*tempCodeRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &tempCodeRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestCreateCode_Success(t *testing.T) {
	repo, mock, db := newTestTempCodeRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()
	code := models.TempCode{
		UserID:    42,
		Code:      "123456",
		CodeType:  models.CodeTypeEmailConfirmation,
		ExpiresAt: now.Add(15 * time.Minute),
	}

	rows := sqlmock.
		NewRows(tempCodeCols).
		AddRow(3, code.UserID, code.Code, code.CodeType, now, code.ExpiresAt, false, true)

	mock.ExpectQuery("INSERT INTO hash_clash.temp_codes").
		WithArgs(code.UserID, code.Code, code.CodeType, code.ExpiresAt).
		WillReturnRows(rows)

	created, err := repo.CreateCode(ctx, code)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 3 {
		t.Errorf("expected ID=3, got %d", created.ID)
	}
	if created.IsUsed {
		t.Error("expected new code to be unused")
	}
	if !created.IsActive {
		t.Error("expected new code to be active")
	}
}

func TestCreateCode_ExpiryNotAfterCreation(t *testing.T) {
	repo, _, db := newTestTempCodeRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	tests := []struct {
		name string
		code models.TempCode
	}{
		{
			name: "expiry equals creation",
			code: models.TempCode{UserID: 42, Code: "123456", CodeType: models.CodeTypeLoginConfirmation, CreatedAt: now, ExpiresAt: now},
		},
		{
			name: "expiry before creation",
			code: models.TempCode{UserID: 42, Code: "123456", CodeType: models.CodeTypeLoginConfirmation, CreatedAt: now, ExpiresAt: now.Add(-time.Minute)},
		},
		{
			name: "zero creation with past expiry",
			code: models.TempCode{UserID: 42, Code: "123456", CodeType: models.CodeTypeLoginConfirmation, ExpiresAt: now.Add(-time.Hour)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repo.CreateCode(ctx, tt.code)
			if !errors.Is(err, ErrInvalidExpiry) {
				t.Fatalf("expected ErrInvalidExpiry, got %v", err)
			}
		})
	}
}

func TestCreateCode_UserNotFound(t *testing.T) {
	repo, mock, db := newTestTempCodeRepo(t)
	defer db.Close()

	ctx := context.Background()
	code := models.TempCode{
		UserID:    99,
		Code:      "123456",
		CodeType:  models.CodeTypeEmailConfirmation,
		ExpiresAt: time.Now().Add(15 * time.Minute),
	}

	mock.ExpectQuery("INSERT INTO hash_clash.temp_codes").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.CreateCode(ctx, code)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestGetValidCode_Success(t *testing.T) {
	repo, mock, db := newTestTempCodeRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows(tempCodeCols).
		AddRow(3, 42, "123456", models.CodeTypeEmailConfirmation, now.Add(-time.Minute), now.Add(14*time.Minute), false, true)

	mock.ExpectQuery("SELECT id, user_id").
		WillReturnRows(rows)

	found, err := repo.GetValidCode(ctx, 42, "123456", models.CodeTypeEmailConfirmation, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.ID != 3 {
		t.Errorf("expected ID=3, got %d", found.ID)
	}
	if found.Code != "123456" {
		t.Errorf("expected code 123456, got %s", found.Code)
	}
}

func TestGetValidCode_NotFound(t *testing.T) {
	repo, mock, db := newTestTempCodeRepo(t)
	defer db.Close()

	ctx := context.Background()

	// Expired, used, inactive and missing codes all surface the same way:
	// the WHERE clause filters them and the scan sees ErrNoRows.
	mock.ExpectQuery("SELECT id, user_id").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetValidCode(ctx, 42, "123456", models.CodeTypeLoginConfirmation, time.Now())
	if !errors.Is(err, ErrCodeNotFound) {
		t.Fatalf("expected ErrCodeNotFound, got %v", err)
	}
}

func TestMarkCodeUsed_Success(t *testing.T) {
	repo, mock, db := newTestTempCodeRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("UPDATE hash_clash.temp_codes").
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.MarkCodeUsed(ctx, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMarkCodeUsed_NotFound(t *testing.T) {
	repo, mock, db := newTestTempCodeRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("UPDATE hash_clash.temp_codes").
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.MarkCodeUsed(ctx, 99)
	if !errors.Is(err, ErrCodeNotFound) {
		t.Fatalf("expected ErrCodeNotFound, got %v", err)
	}
}

func TestDeactivateUserCodes_Success(t *testing.T) {
	repo, mock, db := newTestTempCodeRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("UPDATE hash_clash.temp_codes").
		WithArgs(int64(42), models.CodeTypeEmailConfirmation).
		WillReturnResult(sqlmock.NewResult(0, 2))

	deactivated, err := repo.DeactivateUserCodes(ctx, 42, models.CodeTypeEmailConfirmation)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deactivated != 2 {
		t.Errorf("expected 2 deactivated codes, got %d", deactivated)
	}
}

func TestDeactivateUserCodes_NothingToDo(t *testing.T) {
	repo, mock, db := newTestTempCodeRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("UPDATE hash_clash.temp_codes").
		WithArgs(int64(42), models.CodeTypeLoginConfirmation).
		WillReturnResult(sqlmock.NewResult(0, 0))

	deactivated, err := repo.DeactivateUserCodes(ctx, 42, models.CodeTypeLoginConfirmation)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deactivated != 0 {
		t.Errorf("expected 0 deactivated codes, got %d", deactivated)
	}
}

func TestDeleteExpiredCodes_Success(t *testing.T) {
	repo, mock, db := newTestTempCodeRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	mock.ExpectExec("DELETE FROM hash_clash.temp_codes").
		WithArgs(now).
		WillReturnResult(sqlmock.NewResult(0, 5))

	deleted, err := repo.DeleteExpiredCodes(ctx, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != 5 {
		t.Errorf("expected 5 deleted codes, got %d", deleted)
	}
}

func TestDeleteExpiredCodes_ExecError(t *testing.T) {
	repo, mock, db := newTestTempCodeRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM hash_clash.temp_codes").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.DeleteExpiredCodes(ctx, time.Now())
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}
