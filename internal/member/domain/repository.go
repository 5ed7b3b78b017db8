package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	CreateMember(ctx context.Context, db *gorm.DB, member *Member) error
	FindMemberByID(ctx context.Context, db *gorm.DB, id int64) (*Member, error)
	FindMemberByEmail(ctx context.Context, db *gorm.DB, email string) (*Member, error)
	ListMembers(ctx context.Context, db *gorm.DB, status Status) ([]Member, error)
	UpdateMember(ctx context.Context, db *gorm.DB, member *Member) error

	CreateSession(ctx context.Context, db *gorm.DB, session *Session) error
	FindSessionByToken(ctx context.Context, db *gorm.DB, token string) (*Session, error)
	DeleteSession(ctx context.Context, db *gorm.DB, token string) error
}
