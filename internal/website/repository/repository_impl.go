package repository

import (
	"context"

	"github.com/smallbiznis/threadline/internal/website/domain"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) LoadSettings(ctx context.Context, db *gorm.DB) (*domain.WebsiteSettings, error) {
	var settings domain.WebsiteSettings
	err := db.WithContext(ctx).Where("id = ?", domain.SettingsID).Take(&settings).Error
	if err == nil {
		return &settings, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	settings = domain.WebsiteSettings{
		ID:             domain.SettingsID,
		WebsiteName:    "Threadline",
		PrimaryColor:   "#000000",
		AccentColor:    "#FFFFFF",
		NavigationMenu: datatypes.NewJSONType([]domain.MenuItem{}),
	}
	if err := db.WithContext(ctx).Create(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *repo) SaveSettings(ctx context.Context, db *gorm.DB, settings *domain.WebsiteSettings) error {
	if settings == nil {
		return gorm.ErrInvalidData
	}
	settings.ID = domain.SettingsID
	return db.WithContext(ctx).Save(settings).Error
}

func (r *repo) CreateBanner(ctx context.Context, db *gorm.DB, banner *domain.Banner) error {
	return db.WithContext(ctx).Create(banner).Error
}

func (r *repo) FindBannerByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Banner, error) {
	var b domain.Banner
	err := db.WithContext(ctx).Where("id = ?", id).Take(&b).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repo) ListBanners(ctx context.Context, db *gorm.DB) ([]domain.Banner, error) {
	var items []domain.Banner
	if err := db.WithContext(ctx).Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) UpdateBanner(ctx context.Context, db *gorm.DB, banner *domain.Banner) error {
	if banner == nil {
		return gorm.ErrInvalidData
	}
	return db.WithContext(ctx).Exec(
		`UPDATE banners SET title = ?, image_name = ?, position = ?, link_url = ?, status = ?, description = ?, updated_at = ? WHERE id = ?`,
		banner.Title,
		banner.ImageName,
		banner.Position,
		banner.LinkURL,
		banner.Status,
		banner.Description,
		banner.UpdatedAt,
		banner.ID,
	).Error
}

func (r *repo) DeleteBanner(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Exec(`DELETE FROM banners WHERE id = ?`, id).Error
}

func (r *repo) CreateBlog(ctx context.Context, db *gorm.DB, blog *domain.Blog) error {
	return db.WithContext(ctx).Create(blog).Error
}

func (r *repo) FindBlogByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Blog, error) {
	var b domain.Blog
	err := db.WithContext(ctx).Where("id = ?", id).Take(&b).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repo) ListBlogs(ctx context.Context, db *gorm.DB) ([]domain.Blog, error) {
	var items []domain.Blog
	if err := db.WithContext(ctx).Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) UpdateBlog(ctx context.Context, db *gorm.DB, blog *domain.Blog) error {
	if blog == nil {
		return gorm.ErrInvalidData
	}
	return db.WithContext(ctx).Exec(
		`UPDATE blogs SET title = ?, slug = ?, excerpt = ?, content = ?, featured_image = ?, status = ?, category = ?, updated_at = ? WHERE id = ?`,
		blog.Title,
		blog.Slug,
		blog.Excerpt,
		blog.Content,
		blog.FeaturedImage,
		blog.Status,
		blog.Category,
		blog.UpdatedAt,
		blog.ID,
	).Error
}

func (r *repo) DeleteBlog(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Exec(`DELETE FROM blogs WHERE id = ?`, id).Error
}

func (r *repo) CreateTestimonial(ctx context.Context, db *gorm.DB, testimonial *domain.Testimonial) error {
	return db.WithContext(ctx).Create(testimonial).Error
}

func (r *repo) ListTestimonials(ctx context.Context, db *gorm.DB) ([]domain.Testimonial, error) {
	var items []domain.Testimonial
	if err := db.WithContext(ctx).Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) DeleteTestimonial(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Exec(`DELETE FROM testimonials WHERE id = ?`, id).Error
}

func (r *repo) CreateProduct(ctx context.Context, db *gorm.DB, product *domain.Product) error {
	return db.WithContext(ctx).Create(product).Error
}

func (r *repo) ListProducts(ctx context.Context, db *gorm.DB) ([]domain.Product, error) {
	var items []domain.Product
	if err := db.WithContext(ctx).Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) DeleteProduct(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Exec(`DELETE FROM products WHERE id = ?`, id).Error
}

func (r *repo) CountProducts(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&domain.Product{}).Count(&count).Error
	return count, err
}
