package repository

import (
	"context"

	"github.com/smallbiznis/threadline/internal/catalog/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) CreateCategory(ctx context.Context, db *gorm.DB, category *domain.ShirtCategory) error {
	return db.WithContext(ctx).Create(category).Error
}

func (r *repo) FindCategoryByID(ctx context.Context, db *gorm.DB, id int64) (*domain.ShirtCategory, error) {
	var c domain.ShirtCategory
	err := db.WithContext(ctx).Where("id = ?", id).Take(&c).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repo) ListCategories(ctx context.Context, db *gorm.DB) ([]domain.ShirtCategory, error) {
	var items []domain.ShirtCategory
	if err := db.WithContext(ctx).Order("created_at ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) UpdateCategory(ctx context.Context, db *gorm.DB, category *domain.ShirtCategory) error {
	if category == nil {
		return gorm.ErrInvalidData
	}
	return db.WithContext(ctx).Exec(
		`UPDATE shirt_categories SET display_name = ?, password_hash = ?, locked = ?, updated_at = ? WHERE id = ?`,
		category.DisplayName,
		category.PasswordHash,
		category.Locked,
		category.UpdatedAt,
		category.ID,
	).Error
}

func (r *repo) DeleteCategory(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Exec(`DELETE FROM shirt_categories WHERE id = ?`, id).Error
}

func (r *repo) CreateSubCategory(ctx context.Context, db *gorm.DB, sub *domain.ShirtSubCategory) error {
	return db.WithContext(ctx).Create(sub).Error
}

func (r *repo) ListSubCategories(ctx context.Context, db *gorm.DB, categoryID int64) ([]domain.ShirtSubCategory, error) {
	stmt := db.WithContext(ctx).Model(&domain.ShirtSubCategory{})
	if categoryID != 0 {
		stmt = stmt.Where("category_id = ?", categoryID)
	}
	var items []domain.ShirtSubCategory
	if err := stmt.Order("created_at ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) DeleteSubCategory(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Exec(`DELETE FROM shirt_sub_categories WHERE id = ?`, id).Error
}

func (r *repo) CreateShirt(ctx context.Context, db *gorm.DB, shirt *domain.Shirt) error {
	return db.WithContext(ctx).Create(shirt).Error
}

func (r *repo) FindShirtByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Shirt, error) {
	var s domain.Shirt
	err := db.WithContext(ctx).Where("id = ?", id).Take(&s).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repo) ListShirts(ctx context.Context, db *gorm.DB, filter domain.ListShirtsFilter) ([]domain.Shirt, error) {
	stmt := db.WithContext(ctx).Model(&domain.Shirt{})
	if filter.CategoryID != 0 {
		stmt = stmt.Where("category_id = ?", filter.CategoryID)
	}
	if filter.SubCategoryID != 0 {
		stmt = stmt.Where("sub_category_id = ?", filter.SubCategoryID)
	}
	var items []domain.Shirt
	if err := stmt.Order("created_at ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) UpdateShirt(ctx context.Context, db *gorm.DB, shirt *domain.Shirt) error {
	if shirt == nil {
		return gorm.ErrInvalidData
	}
	return db.WithContext(ctx).Exec(
		`UPDATE shirts SET name = ?, description = ?, base_price = ?, image_name = ?, metadata = ?, updated_at = ? WHERE id = ?`,
		shirt.Name,
		shirt.Description,
		shirt.BasePrice,
		shirt.ImageName,
		shirt.Metadata,
		shirt.UpdatedAt,
		shirt.ID,
	).Error
}

func (r *repo) DeleteShirt(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Exec(`DELETE FROM shirts WHERE id = ?`, id).Error
}

func (r *repo) CreateCustomizer(ctx context.Context, db *gorm.DB, customizer *domain.Customizer) error {
	return db.WithContext(ctx).Create(customizer).Error
}

func (r *repo) FindCustomizerByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Customizer, error) {
	var c domain.Customizer
	err := db.WithContext(ctx).Where("id = ?", id).Take(&c).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repo) ListCustomizers(ctx context.Context, db *gorm.DB) ([]domain.Customizer, error) {
	var items []domain.Customizer
	if err := db.WithContext(ctx).Order("created_at ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) DeleteCustomizer(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Exec(`DELETE FROM customizers WHERE id = ?`, id).Error
}

func (r *repo) CreatePattern(ctx context.Context, db *gorm.DB, pattern *domain.Pattern) error {
	return db.WithContext(ctx).Create(pattern).Error
}

func (r *repo) ListPatterns(ctx context.Context, db *gorm.DB) ([]domain.Pattern, error) {
	var items []domain.Pattern
	if err := db.WithContext(ctx).Order("created_at ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) DeletePattern(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Exec(`DELETE FROM patterns WHERE id = ?`, id).Error
}

func (r *repo) CreateColor(ctx context.Context, db *gorm.DB, color *domain.Color) error {
	return db.WithContext(ctx).Create(color).Error
}

func (r *repo) ListColors(ctx context.Context, db *gorm.DB) ([]domain.Color, error) {
	var items []domain.Color
	if err := db.WithContext(ctx).Order("created_at ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) DeleteColor(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Exec(`DELETE FROM colors WHERE id = ?`, id).Error
}

func (r *repo) CreateFont(ctx context.Context, db *gorm.DB, font *domain.Font) error {
	return db.WithContext(ctx).Create(font).Error
}

func (r *repo) ListFonts(ctx context.Context, db *gorm.DB) ([]domain.Font, error) {
	var items []domain.Font
	if err := db.WithContext(ctx).Order("created_at ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) DeleteFont(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Exec(`DELETE FROM fonts WHERE id = ?`, id).Error
}
