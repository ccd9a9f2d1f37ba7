package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/hashclash/storage/models"
)

// UserRepository persists and retrieves user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUserByID(ctx context.Context, userID int64) (models.User, error)
	GetUserByLogin(ctx context.Context, login string) (models.User, error)
	UpdatePasswordHash(ctx context.Context, userID int64, passwordHash string) error
	ConfirmEmail(ctx context.Context, userID int64, email string) error
	EnableTOTP(ctx context.Context, userID int64, totpKey string) error
	DisableTOTP(ctx context.Context, userID int64) error
	DeactivateUser(ctx context.Context, userID int64) error
	DeleteUser(ctx context.Context, userID int64) error
}

// TextRepository persists and retrieves encrypted text records.
type TextRepository interface {
	CreateText(ctx context.Context, text models.Text) (models.Text, error)
	GetTextByID(ctx context.Context, textID int64) (models.Text, error)
	GetTextByIDAndUser(ctx context.Context, textID, userID int64) (models.Text, error)
	UpdateText(ctx context.Context, update models.TextUpdate) error
	DeleteText(ctx context.Context, textID, userID int64) error
	ListUserTexts(ctx context.Context, filter models.TextFilter) ([]models.Text, error)
	ListAllTexts(ctx context.Context) ([]models.Text, error)
}

// TempCodeRepository persists and retrieves temporary verification codes.
type TempCodeRepository interface {
	CreateCode(ctx context.Context, code models.TempCode) (models.TempCode, error)
	GetValidCode(ctx context.Context, userID int64, code, codeType string, now time.Time) (models.TempCode, error)
	MarkCodeUsed(ctx context.Context, codeID int64) error
	DeactivateUserCodes(ctx context.Context, userID int64, codeType string) (int64, error)
	DeleteExpiredCodes(ctx context.Context, now time.Time) (int64, error)
}
