package repository

import (
	"context"

	"github.com/smallbiznis/threadline/internal/customization/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) CreateUserShirt(ctx context.Context, db *gorm.DB, record *domain.UserShirt) error {
	return db.WithContext(ctx).Create(record).Error
}

func (r *repo) FindUserShirtByID(ctx context.Context, db *gorm.DB, id int64) (*domain.UserShirt, error) {
	var us domain.UserShirt
	err := db.WithContext(ctx).Where("id = ?", id).Take(&us).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &us, nil
}

func (r *repo) ListUserShirts(ctx context.Context, db *gorm.DB, customerID int64) ([]domain.UserShirt, error) {
	stmt := db.WithContext(ctx).Model(&domain.UserShirt{})
	if customerID != 0 {
		stmt = stmt.Where("customer_id = ?", customerID)
	}
	var items []domain.UserShirt
	if err := stmt.Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) UpdateUserShirt(ctx context.Context, db *gorm.DB, record *domain.UserShirt) error {
	if record == nil {
		return gorm.ErrInvalidData
	}
	return db.WithContext(ctx).Exec(
		`UPDATE user_shirts SET purchased = ?, data = ?, updated_at = ? WHERE id = ?`,
		record.Purchased,
		record.Data,
		record.UpdatedAt,
		record.ID,
	).Error
}

func (r *repo) DeleteUserShirt(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Exec(`DELETE FROM user_shirts WHERE id = ?`, id).Error
}

func (r *repo) CreateUserCustomizer(ctx context.Context, db *gorm.DB, record *domain.UserCustomizer) error {
	return db.WithContext(ctx).Create(record).Error
}

func (r *repo) FindUserCustomizerByID(ctx context.Context, db *gorm.DB, id int64) (*domain.UserCustomizer, error) {
	var uc domain.UserCustomizer
	err := db.WithContext(ctx).Where("id = ?", id).Take(&uc).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &uc, nil
}

func (r *repo) ListUserCustomizers(ctx context.Context, db *gorm.DB, customerID int64) ([]domain.UserCustomizer, error) {
	stmt := db.WithContext(ctx).Model(&domain.UserCustomizer{})
	if customerID != 0 {
		stmt = stmt.Where("customer_id = ?", customerID)
	}
	var items []domain.UserCustomizer
	if err := stmt.Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) UpdateUserCustomizer(ctx context.Context, db *gorm.DB, record *domain.UserCustomizer) error {
	if record == nil {
		return gorm.ErrInvalidData
	}
	return db.WithContext(ctx).Exec(
		`UPDATE user_customizers SET purchased = ?, data = ?, updated_at = ? WHERE id = ?`,
		record.Purchased,
		record.Data,
		record.UpdatedAt,
		record.ID,
	).Error
}

func (r *repo) DeleteUserCustomizer(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Exec(`DELETE FROM user_customizers WHERE id = ?`, id).Error
}
