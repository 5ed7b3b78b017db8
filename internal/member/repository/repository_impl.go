package repository

import (
	"context"

	"github.com/smallbiznis/threadline/internal/member/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) CreateMember(ctx context.Context, db *gorm.DB, member *domain.Member) error {
	return db.WithContext(ctx).Create(member).Error
}

func (r *repo) FindMemberByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Member, error) {
	var m domain.Member
	err := db.WithContext(ctx).Where("id = ?", id).Take(&m).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *repo) FindMemberByEmail(ctx context.Context, db *gorm.DB, email string) (*domain.Member, error) {
	var m domain.Member
	err := db.WithContext(ctx).Where("email = ?", email).Take(&m).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *repo) ListMembers(ctx context.Context, db *gorm.DB, status domain.Status) ([]domain.Member, error) {
	stmt := db.WithContext(ctx).Model(&domain.Member{})
	if status != "" {
		stmt = stmt.Where("status = ?", status)
	}
	var items []domain.Member
	if err := stmt.Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) UpdateMember(ctx context.Context, db *gorm.DB, member *domain.Member) error {
	if member == nil {
		return gorm.ErrInvalidData
	}
	return db.WithContext(ctx).Exec(
		`UPDATE members SET role = ?, status = ?, password_hash = ?, updated_at = ? WHERE id = ?`,
		member.Role,
		member.Status,
		member.PasswordHash,
		member.UpdatedAt,
		member.ID,
	).Error
}

func (r *repo) CreateSession(ctx context.Context, db *gorm.DB, session *domain.Session) error {
	return db.WithContext(ctx).Create(session).Error
}

func (r *repo) FindSessionByToken(ctx context.Context, db *gorm.DB, token string) (*domain.Session, error) {
	var s domain.Session
	err := db.WithContext(ctx).Where("token = ?", token).Take(&s).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repo) DeleteSession(ctx context.Context, db *gorm.DB, token string) error {
	return db.WithContext(ctx).Exec(`DELETE FROM sessions WHERE token = ?`, token).Error
}
