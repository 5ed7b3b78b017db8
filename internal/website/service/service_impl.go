package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/gosimple/slug"
	"github.com/smallbiznis/threadline/internal/clock"
	"github.com/smallbiznis/threadline/internal/website/domain"
	"github.com/smallbiznis/threadline/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	clock clock.Clock
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("website.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) GetSettings(ctx context.Context) (*domain.SettingsResponse, error) {
	settings, err := s.repo.LoadSettings(ctx, s.db)
	if err != nil {
		return nil, err
	}
	resp := toSettingsResponse(settings)
	return &resp, nil
}

func (s *Service) UpdateSettings(ctx context.Context, req domain.UpdateSettingsRequest) (*domain.SettingsResponse, error) {
	settings, err := s.repo.LoadSettings(ctx, s.db)
	if err != nil {
		return nil, err
	}

	if req.WebsiteName != nil && strings.TrimSpace(*req.WebsiteName) != "" {
		settings.WebsiteName = strings.TrimSpace(*req.WebsiteName)
	}
	if req.Tagline != nil {
		settings.Tagline = req.Tagline
	}
	if req.Logo != nil {
		settings.Logo = req.Logo
	}
	if req.PrimaryColor != nil && *req.PrimaryColor != "" {
		settings.PrimaryColor = *req.PrimaryColor
	}
	if req.AccentColor != nil && *req.AccentColor != "" {
		settings.AccentColor = *req.AccentColor
	}
	if req.WebsiteDescription != nil {
		settings.WebsiteDescription = req.WebsiteDescription
	}
	if req.SEOKeywords != nil {
		settings.SEOKeywords = req.SEOKeywords
	}

	settings.UpdatedAt = s.clock.Now()
	if err := s.repo.SaveSettings(ctx, s.db, settings); err != nil {
		return nil, err
	}

	resp := toSettingsResponse(settings)
	return &resp, nil
}

// AddMenuItem appends a new entry with id = max existing id + 1 (1 for an
// empty menu).
func (s *Service) AddMenuItem(ctx context.Context, req domain.AddMenuItemRequest) (*domain.SettingsResponse, error) {
	name := strings.TrimSpace(req.Name)
	link := strings.TrimSpace(req.Link)
	if name == "" || link == "" {
		return nil, domain.ErrInvalidMenuItem
	}

	settings, err := s.repo.LoadSettings(ctx, s.db)
	if err != nil {
		return nil, err
	}

	menu := settings.NavigationMenu.Data()
	maxID := 0
	for _, item := range menu {
		if item.ID > maxID {
			maxID = item.ID
		}
	}
	menu = append(menu, domain.MenuItem{ID: maxID + 1, Name: name, Link: link})

	settings.NavigationMenu = datatypes.NewJSONType(menu)
	settings.UpdatedAt = s.clock.Now()
	if err := s.repo.SaveSettings(ctx, s.db, settings); err != nil {
		return nil, err
	}

	resp := toSettingsResponse(settings)
	return &resp, nil
}

// UpdateMenuItems rewrites matching entries in place, keeping the stored
// order, then appends entries whose ids are not present yet.
func (s *Service) UpdateMenuItems(ctx context.Context, items []domain.MenuItem) (*domain.MenuUpdateResponse, error) {
	for _, item := range items {
		if strings.TrimSpace(item.Name) == "" || strings.TrimSpace(item.Link) == "" {
			return nil, domain.ErrInvalidMenuItem
		}
	}

	settings, err := s.repo.LoadSettings(ctx, s.db)
	if err != nil {
		return nil, err
	}

	current := settings.NavigationMenu.Data()
	incoming := make(map[int]domain.MenuItem, len(items))
	for _, item := range items {
		incoming[item.ID] = item
	}

	updated := 0
	menu := make([]domain.MenuItem, 0, len(current)+len(items))
	seen := make(map[int]bool, len(current))
	for _, item := range current {
		seen[item.ID] = true
		if replacement, ok := incoming[item.ID]; ok {
			menu = append(menu, replacement)
			updated++
		} else {
			menu = append(menu, item)
		}
	}

	added := 0
	for _, item := range items {
		if !seen[item.ID] {
			menu = append(menu, item)
			added++
		}
	}

	settings.NavigationMenu = datatypes.NewJSONType(menu)
	settings.UpdatedAt = s.clock.Now()
	if err := s.repo.SaveSettings(ctx, s.db, settings); err != nil {
		return nil, err
	}

	return &domain.MenuUpdateResponse{
		Settings: toSettingsResponse(settings),
		Updated:  updated,
		Added:    added,
	}, nil
}

// DeleteMenuItems removes the given ids. Every id must exist; otherwise
// nothing is deleted.
func (s *Service) DeleteMenuItems(ctx context.Context, ids []int) (*domain.MenuDeleteResponse, error) {
	if len(ids) == 0 {
		return nil, domain.ErrMenuIDsMissing
	}

	settings, err := s.repo.LoadSettings(ctx, s.db)
	if err != nil {
		return nil, err
	}

	current := settings.NavigationMenu.Data()
	if len(current) == 0 {
		return nil, domain.ErrMenuEmpty
	}

	existing := make(map[int]bool, len(current))
	for _, item := range current {
		existing[item.ID] = true
	}
	toDelete := make(map[int]bool, len(ids))
	for _, id := range ids {
		if !existing[id] {
			return nil, fmt.Errorf("%w: id %d does not exist in the navigation menu", domain.ErrInvalidMenuItem, id)
		}
		toDelete[id] = true
	}

	deleted := make([]domain.MenuItem, 0, len(toDelete))
	menu := make([]domain.MenuItem, 0, len(current))
	for _, item := range current {
		if toDelete[item.ID] {
			deleted = append(deleted, item)
		} else {
			menu = append(menu, item)
		}
	}

	settings.NavigationMenu = datatypes.NewJSONType(menu)
	settings.UpdatedAt = s.clock.Now()
	if err := s.repo.SaveSettings(ctx, s.db, settings); err != nil {
		return nil, err
	}

	return &domain.MenuDeleteResponse{
		Settings:     toSettingsResponse(settings),
		DeletedItems: deleted,
	}, nil
}

func (s *Service) ListBanners(ctx context.Context) ([]domain.BannerResponse, error) {
	items, err := s.repo.ListBanners(ctx, s.db)
	if err != nil {
		return nil, err
	}

	resp := make([]domain.BannerResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, toBannerResponse(&item))
	}
	return resp, nil
}

func (s *Service) CreateBanner(ctx context.Context, req domain.CreateBannerRequest) (*domain.BannerResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, domain.ErrInvalidTitle
	}
	position := domain.BannerPosition(strings.TrimSpace(req.Position))
	if !position.Valid() {
		return nil, domain.ErrInvalidPosition
	}
	status := domain.BannerStatus(strings.TrimSpace(req.Status))
	if status == "" {
		status = domain.BannerStatusActive
	}
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	now := s.clock.Now()
	b := &domain.Banner{
		ID:          s.genID.Generate().Int64(),
		Title:       title,
		ImageName:   req.ImageName,
		Position:    position,
		LinkURL:     req.LinkURL,
		Status:      status,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.CreateBanner(ctx, s.db, b); err != nil {
		return nil, err
	}

	resp := toBannerResponse(b)
	return &resp, nil
}

func (s *Service) UpdateBanner(ctx context.Context, req domain.UpdateBannerRequest) (*domain.BannerResponse, error) {
	bannerID, err := snowflake.ParseString(strings.TrimSpace(req.ID))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	item, err := s.repo.FindBannerByID(ctx, s.db, bannerID.Int64())
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, domain.ErrInvalidTitle
		}
		item.Title = title
	}
	if req.ImageName != nil {
		item.ImageName = req.ImageName
	}
	if req.Position != nil {
		position := domain.BannerPosition(strings.TrimSpace(*req.Position))
		if !position.Valid() {
			return nil, domain.ErrInvalidPosition
		}
		item.Position = position
	}
	if req.LinkURL != nil {
		item.LinkURL = req.LinkURL
	}
	if req.Status != nil {
		status := domain.BannerStatus(strings.TrimSpace(*req.Status))
		if !status.Valid() {
			return nil, domain.ErrInvalidStatus
		}
		item.Status = status
	}
	if req.Description != nil {
		item.Description = req.Description
	}

	item.UpdatedAt = s.clock.Now()
	if err := s.repo.UpdateBanner(ctx, s.db, item); err != nil {
		return nil, err
	}

	resp := toBannerResponse(item)
	return &resp, nil
}

func (s *Service) DeleteBanner(ctx context.Context, id string) error {
	bannerID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return domain.ErrInvalidID
	}

	item, err := s.repo.FindBannerByID(ctx, s.db, bannerID.Int64())
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}

	return s.repo.DeleteBanner(ctx, s.db, bannerID.Int64())
}

func (s *Service) ListBlogs(ctx context.Context) ([]domain.BlogResponse, error) {
	items, err := s.repo.ListBlogs(ctx, s.db)
	if err != nil {
		return nil, err
	}

	resp := make([]domain.BlogResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, toBlogResponse(&item))
	}
	return resp, nil
}

func (s *Service) GetBlog(ctx context.Context, id string) (*domain.BlogResponse, error) {
	blogID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	item, err := s.repo.FindBlogByID(ctx, s.db, blogID.Int64())
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	resp := toBlogResponse(item)
	return &resp, nil
}

func (s *Service) CreateBlog(ctx context.Context, req domain.CreateBlogRequest) (*domain.BlogResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, domain.ErrInvalidTitle
	}
	status := domain.BlogStatus(strings.TrimSpace(req.Status))
	if status == "" {
		status = domain.BlogStatusDraft
	}
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}
	category := domain.BlogCategory(strings.TrimSpace(req.Category))
	if !category.Valid() {
		return nil, domain.ErrInvalidCategory
	}

	now := s.clock.Now()
	id := s.genID.Generate().Int64()
	b := &domain.Blog{
		ID:            id,
		Title:         title,
		Slug:          slug.Make(title),
		Excerpt:       req.Excerpt,
		Content:       req.Content,
		FeaturedImage: req.FeaturedImage,
		Status:        status,
		Category:      category,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	err := s.repo.CreateBlog(ctx, s.db, b)
	if db.IsDuplicateKeyErr(err) {
		b.Slug = fmt.Sprintf("%s-%s", b.Slug, snowflake.ID(id).String())
		err = s.repo.CreateBlog(ctx, s.db, b)
	}
	if err != nil {
		return nil, err
	}

	resp := toBlogResponse(b)
	return &resp, nil
}

func (s *Service) UpdateBlog(ctx context.Context, req domain.UpdateBlogRequest) (*domain.BlogResponse, error) {
	blogID, err := snowflake.ParseString(strings.TrimSpace(req.ID))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	item, err := s.repo.FindBlogByID(ctx, s.db, blogID.Int64())
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, domain.ErrInvalidTitle
		}
		item.Title = title
		item.Slug = slug.Make(title)
	}
	if req.Excerpt != nil {
		item.Excerpt = *req.Excerpt
	}
	if req.Content != nil {
		item.Content = *req.Content
	}
	if req.FeaturedImage != nil {
		item.FeaturedImage = req.FeaturedImage
	}
	if req.Status != nil {
		status := domain.BlogStatus(strings.TrimSpace(*req.Status))
		if !status.Valid() {
			return nil, domain.ErrInvalidStatus
		}
		item.Status = status
	}
	if req.Category != nil {
		category := domain.BlogCategory(strings.TrimSpace(*req.Category))
		if !category.Valid() {
			return nil, domain.ErrInvalidCategory
		}
		item.Category = category
	}

	item.UpdatedAt = s.clock.Now()
	if err := s.repo.UpdateBlog(ctx, s.db, item); err != nil {
		return nil, err
	}

	resp := toBlogResponse(item)
	return &resp, nil
}

func (s *Service) DeleteBlog(ctx context.Context, id string) error {
	blogID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return domain.ErrInvalidID
	}

	item, err := s.repo.FindBlogByID(ctx, s.db, blogID.Int64())
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}

	return s.repo.DeleteBlog(ctx, s.db, blogID.Int64())
}

func (s *Service) ListTestimonials(ctx context.Context) ([]domain.TestimonialResponse, error) {
	items, err := s.repo.ListTestimonials(ctx, s.db)
	if err != nil {
		return nil, err
	}

	resp := make([]domain.TestimonialResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, toTestimonialResponse(&item))
	}
	return resp, nil
}

func (s *Service) CreateTestimonial(ctx context.Context, req domain.CreateTestimonialRequest) (*domain.TestimonialResponse, error) {
	text := strings.TrimSpace(req.Text)
	customerName := strings.TrimSpace(req.CustomerName)
	if text == "" || customerName == "" {
		return nil, domain.ErrInvalidText
	}

	now := s.clock.Now()
	item := &domain.Testimonial{
		ID:           s.genID.Generate().Int64(),
		Text:         text,
		CustomerName: customerName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.CreateTestimonial(ctx, s.db, item); err != nil {
		return nil, err
	}

	resp := toTestimonialResponse(item)
	return &resp, nil
}

func (s *Service) DeleteTestimonial(ctx context.Context, id string) error {
	testimonialID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return domain.ErrInvalidID
	}
	return s.repo.DeleteTestimonial(ctx, s.db, testimonialID.Int64())
}

func (s *Service) ListProducts(ctx context.Context) ([]domain.ProductResponse, error) {
	items, err := s.repo.ListProducts(ctx, s.db)
	if err != nil {
		return nil, err
	}

	resp := make([]domain.ProductResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, toProductResponse(&item))
	}
	return resp, nil
}

func (s *Service) CreateProduct(ctx context.Context, req domain.CreateProductRequest) (*domain.ProductResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidTitle
	}
	if req.Price <= 0 {
		return nil, domain.ErrInvalidPrice
	}
	sku := strings.TrimSpace(req.SKU)
	if sku == "" {
		return nil, domain.ErrInvalidSKU
	}
	category := domain.ProductCategory(strings.TrimSpace(req.Category))
	if !category.Valid() {
		return nil, domain.ErrInvalidCategory
	}

	now := s.clock.Now()
	item := &domain.Product{
		ID:          s.genID.Generate().Int64(),
		Name:        name,
		Price:       req.Price,
		SKU:         sku,
		Category:    category,
		ImageName:   req.ImageName,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err := s.repo.CreateProduct(ctx, s.db, item)
	if db.IsDuplicateKeyErr(err) {
		return nil, domain.ErrInvalidSKU
	}
	if err != nil {
		return nil, err
	}

	resp := toProductResponse(item)
	return &resp, nil
}

func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	productID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return domain.ErrInvalidID
	}
	return s.repo.DeleteProduct(ctx, s.db, productID.Int64())
}

func (s *Service) InventoryStats(ctx context.Context) (*domain.InventoryStatsResponse, error) {
	total, err := s.repo.CountProducts(ctx, s.db)
	if err != nil {
		return nil, err
	}
	return &domain.InventoryStatsResponse{TotalProducts: total}, nil
}

func toSettingsResponse(settings *domain.WebsiteSettings) domain.SettingsResponse {
	menu := settings.NavigationMenu.Data()
	if menu == nil {
		menu = []domain.MenuItem{}
	}
	return domain.SettingsResponse{
		WebsiteName:        settings.WebsiteName,
		Tagline:            settings.Tagline,
		Logo:               settings.Logo,
		PrimaryColor:       settings.PrimaryColor,
		AccentColor:        settings.AccentColor,
		NavigationMenu:     menu,
		WebsiteDescription: settings.WebsiteDescription,
		SEOKeywords:        settings.SEOKeywords,
		UpdatedAt:          settings.UpdatedAt,
	}
}

func toBannerResponse(b *domain.Banner) domain.BannerResponse {
	return domain.BannerResponse{
		ID:          snowflake.ID(b.ID).String(),
		Title:       b.Title,
		ImageName:   b.ImageName,
		Position:    b.Position,
		LinkURL:     b.LinkURL,
		Status:      b.Status,
		Description: b.Description,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func toBlogResponse(b *domain.Blog) domain.BlogResponse {
	return domain.BlogResponse{
		ID:            snowflake.ID(b.ID).String(),
		Title:         b.Title,
		Slug:          b.Slug,
		Excerpt:       b.Excerpt,
		Content:       b.Content,
		FeaturedImage: b.FeaturedImage,
		Status:        b.Status,
		Category:      b.Category,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func toTestimonialResponse(item *domain.Testimonial) domain.TestimonialResponse {
	return domain.TestimonialResponse{
		ID:           snowflake.ID(item.ID).String(),
		Text:         item.Text,
		CustomerName: item.CustomerName,
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}
}

func toProductResponse(item *domain.Product) domain.ProductResponse {
	return domain.ProductResponse{
		ID:          snowflake.ID(item.ID).String(),
		Name:        item.Name,
		Price:       item.Price,
		SKU:         item.SKU,
		Category:    item.Category,
		ImageName:   item.ImageName,
		Description: item.Description,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}
