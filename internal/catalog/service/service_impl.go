package service

import (
	"context"
	"regexp"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/threadline/internal/catalog/domain"
	"github.com/smallbiznis/threadline/internal/clock"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	colorCodeRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

	fontExtensions = map[string]struct{}{
		".ttf":   {},
		".otf":   {},
		".woff":  {},
		".woff2": {},
	}
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
		log:   p.Log.Named("catalog.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) ListCategories(ctx context.Context) ([]domain.CategoryResponse, error) {
	items, err := s.repo.ListCategories(ctx, s.db)
	if err != nil {
		return nil, err
	}

	resp := make([]domain.CategoryResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, toCategoryResponse(&item))
	}
	return resp, nil
}

func (s *Service) CreateCategory(ctx context.Context, req domain.CreateCategoryRequest) (*domain.CategoryResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}
	displayName := strings.TrimSpace(req.DisplayName)
	if displayName == "" {
		displayName = name
	}

	now := s.clock.Now()
	c := &domain.ShirtCategory{
		ID:          s.genID.Generate().Int64(),
		Name:        name,
		DisplayName: displayName,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if req.Password != nil && *req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		c.PasswordHash = string(hash)
		c.Locked = true
	}

	if err := s.repo.CreateCategory(ctx, s.db, c); err != nil {
		return nil, err
	}

	resp := toCategoryResponse(c)
	return &resp, nil
}

func (s *Service) UpdateCategory(ctx context.Context, req domain.UpdateCategoryRequest) (*domain.CategoryResponse, error) {
	categoryID, err := snowflake.ParseString(strings.TrimSpace(req.ID))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	item, err := s.repo.FindCategoryByID(ctx, s.db, categoryID.Int64())
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	if req.DisplayName != nil {
		displayName := strings.TrimSpace(*req.DisplayName)
		if displayName == "" {
			return nil, domain.ErrInvalidName
		}
		item.DisplayName = displayName
	}
	if req.Password != nil {
		if *req.Password == "" {
			item.PasswordHash = ""
			item.Locked = false
		} else {
			hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
			if err != nil {
				return nil, err
			}
			item.PasswordHash = string(hash)
			item.Locked = true
		}
	}

	item.UpdatedAt = s.clock.Now()
	if err := s.repo.UpdateCategory(ctx, s.db, item); err != nil {
		return nil, err
	}

	resp := toCategoryResponse(item)
	return &resp, nil
}

func (s *Service) DeleteCategory(ctx context.Context, id string) error {
	categoryID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return domain.ErrInvalidID
	}

	item, err := s.repo.FindCategoryByID(ctx, s.db, categoryID.Int64())
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}

	return s.repo.DeleteCategory(ctx, s.db, categoryID.Int64())
}

// UnlockCategory clears the locked flag once the supplied password matches
// the stored hash. Unlocking an already open category is a no-op.
func (s *Service) UnlockCategory(ctx context.Context, id, password string) (*domain.CategoryResponse, error) {
	categoryID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	item, err := s.repo.FindCategoryByID(ctx, s.db, categoryID.Int64())
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	if item.Locked {
		if err := bcrypt.CompareHashAndPassword([]byte(item.PasswordHash), []byte(password)); err != nil {
			return nil, domain.ErrWrongPassword
		}
		item.Locked = false
		item.UpdatedAt = s.clock.Now()
		if err := s.repo.UpdateCategory(ctx, s.db, item); err != nil {
			return nil, err
		}
	}

	resp := toCategoryResponse(item)
	return &resp, nil
}

func (s *Service) ListSubCategories(ctx context.Context, categoryID string) ([]domain.SubCategoryResponse, error) {
	var id int64
	if trimmed := strings.TrimSpace(categoryID); trimmed != "" {
		parsed, err := snowflake.ParseString(trimmed)
		if err != nil {
			return nil, domain.ErrInvalidCategory
		}
		id = parsed.Int64()
	}

	items, err := s.repo.ListSubCategories(ctx, s.db, id)
	if err != nil {
		return nil, err
	}

	resp := make([]domain.SubCategoryResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, toSubCategoryResponse(&item))
	}
	return resp, nil
}

func (s *Service) CreateSubCategory(ctx context.Context, req domain.CreateSubCategoryRequest) (*domain.SubCategoryResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}

	categoryID, err := snowflake.ParseString(strings.TrimSpace(req.CategoryID))
	if err != nil {
		return nil, domain.ErrInvalidCategory
	}
	parent, err := s.repo.FindCategoryByID(ctx, s.db, categoryID.Int64())
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, domain.ErrInvalidCategory
	}

	now := s.clock.Now()
	sub := &domain.ShirtSubCategory{
		ID:         s.genID.Generate().Int64(),
		CategoryID: categoryID.Int64(),
		Name:       name,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.repo.CreateSubCategory(ctx, s.db, sub); err != nil {
		return nil, err
	}

	resp := toSubCategoryResponse(sub)
	return &resp, nil
}

func (s *Service) DeleteSubCategory(ctx context.Context, id string) error {
	subID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return domain.ErrInvalidID
	}
	return s.repo.DeleteSubCategory(ctx, s.db, subID.Int64())
}

func (s *Service) ListShirts(ctx context.Context, req domain.ListShirtsRequest) ([]domain.ShirtResponse, error) {
	filter := domain.ListShirtsFilter{}

	if categoryID := strings.TrimSpace(req.CategoryID); categoryID != "" {
		parsed, err := snowflake.ParseString(categoryID)
		if err != nil {
			return nil, domain.ErrInvalidCategory
		}
		category, err := s.repo.FindCategoryByID(ctx, s.db, parsed.Int64())
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrInvalidCategory
		}
		if category.Locked {
			return nil, domain.ErrCategoryLocked
		}
		filter.CategoryID = parsed.Int64()
	}
	if subCategoryID := strings.TrimSpace(req.SubCategoryID); subCategoryID != "" {
		parsed, err := snowflake.ParseString(subCategoryID)
		if err != nil {
			return nil, domain.ErrInvalidID
		}
		filter.SubCategoryID = parsed.Int64()
	}

	items, err := s.repo.ListShirts(ctx, s.db, filter)
	if err != nil {
		return nil, err
	}

	resp := make([]domain.ShirtResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, toShirtResponse(&item))
	}
	return resp, nil
}

func (s *Service) GetShirt(ctx context.Context, id string) (*domain.ShirtResponse, error) {
	shirtID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	item, err := s.repo.FindShirtByID(ctx, s.db, shirtID.Int64())
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	resp := toShirtResponse(item)
	return &resp, nil
}

func (s *Service) CreateShirt(ctx context.Context, req domain.CreateShirtRequest) (*domain.ShirtResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}
	if req.BasePrice <= 0 {
		return nil, domain.ErrInvalidPrice
	}

	categoryID, err := snowflake.ParseString(strings.TrimSpace(req.CategoryID))
	if err != nil {
		return nil, domain.ErrInvalidCategory
	}
	category, err := s.repo.FindCategoryByID(ctx, s.db, categoryID.Int64())
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrInvalidCategory
	}

	var subCategoryID *int64
	if req.SubCategoryID != nil && strings.TrimSpace(*req.SubCategoryID) != "" {
		parsed, err := snowflake.ParseString(strings.TrimSpace(*req.SubCategoryID))
		if err != nil {
			return nil, domain.ErrInvalidID
		}
		v := parsed.Int64()
		subCategoryID = &v
	}

	now := s.clock.Now()
	shirt := &domain.Shirt{
		ID:            s.genID.Generate().Int64(),
		Name:          name,
		Description:   req.Description,
		BasePrice:     req.BasePrice,
		CategoryID:    categoryID.Int64(),
		SubCategoryID: subCategoryID,
		ImageName:     req.ImageName,
		Metadata:      req.Metadata,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.CreateShirt(ctx, s.db, shirt); err != nil {
		return nil, err
	}

	resp := toShirtResponse(shirt)
	return &resp, nil
}

func (s *Service) UpdateShirt(ctx context.Context, req domain.UpdateShirtRequest) (*domain.ShirtResponse, error) {
	shirtID, err := snowflake.ParseString(strings.TrimSpace(req.ID))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	item, err := s.repo.FindShirtByID(ctx, s.db, shirtID.Int64())
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, domain.ErrInvalidName
		}
		item.Name = name
	}
	if req.Description != nil {
		item.Description = req.Description
	}
	if req.BasePrice != nil {
		if *req.BasePrice <= 0 {
			return nil, domain.ErrInvalidPrice
		}
		item.BasePrice = *req.BasePrice
	}
	if req.ImageName != nil {
		item.ImageName = req.ImageName
	}
	if req.Metadata != nil {
		item.Metadata = req.Metadata
	}

	item.UpdatedAt = s.clock.Now()
	if err := s.repo.UpdateShirt(ctx, s.db, item); err != nil {
		return nil, err
	}

	resp := toShirtResponse(item)
	return &resp, nil
}

func (s *Service) DeleteShirt(ctx context.Context, id string) error {
	shirtID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return domain.ErrInvalidID
	}

	item, err := s.repo.FindShirtByID(ctx, s.db, shirtID.Int64())
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}

	return s.repo.DeleteShirt(ctx, s.db, shirtID.Int64())
}

func (s *Service) ListCustomizers(ctx context.Context) ([]domain.CustomizerResponse, error) {
	items, err := s.repo.ListCustomizers(ctx, s.db)
	if err != nil {
		return nil, err
	}

	resp := make([]domain.CustomizerResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, toCustomizerResponse(&item))
	}
	return resp, nil
}

func (s *Service) GetCustomizer(ctx context.Context, id string) (*domain.CustomizerResponse, error) {
	customizerID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	item, err := s.repo.FindCustomizerByID(ctx, s.db, customizerID.Int64())
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	resp := toCustomizerResponse(item)
	return &resp, nil
}

func (s *Service) CreateCustomizer(ctx context.Context, req domain.CreateCustomizerRequest) (*domain.CustomizerResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}
	if req.BasePrice <= 0 {
		return nil, domain.ErrInvalidPrice
	}

	var categoryID *int64
	if req.CategoryID != nil && strings.TrimSpace(*req.CategoryID) != "" {
		parsed, err := snowflake.ParseString(strings.TrimSpace(*req.CategoryID))
		if err != nil {
			return nil, domain.ErrInvalidCategory
		}
		category, err := s.repo.FindCategoryByID(ctx, s.db, parsed.Int64())
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrInvalidCategory
		}
		v := parsed.Int64()
		categoryID = &v
	}

	now := s.clock.Now()
	c := &domain.Customizer{
		ID:          s.genID.Generate().Int64(),
		Name:        name,
		Description: req.Description,
		BasePrice:   req.BasePrice,
		CategoryID:  categoryID,
		Template:    req.Template,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.CreateCustomizer(ctx, s.db, c); err != nil {
		return nil, err
	}

	resp := toCustomizerResponse(c)
	return &resp, nil
}

func (s *Service) DeleteCustomizer(ctx context.Context, id string) error {
	customizerID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return domain.ErrInvalidID
	}

	item, err := s.repo.FindCustomizerByID(ctx, s.db, customizerID.Int64())
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}

	return s.repo.DeleteCustomizer(ctx, s.db, customizerID.Int64())
}

func (s *Service) ListPatterns(ctx context.Context) ([]domain.PatternResponse, error) {
	items, err := s.repo.ListPatterns(ctx, s.db)
	if err != nil {
		return nil, err
	}

	resp := make([]domain.PatternResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, toPatternResponse(&item))
	}
	return resp, nil
}

func (s *Service) CreatePattern(ctx context.Context, req domain.CreatePatternRequest) (*domain.PatternResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}

	now := s.clock.Now()
	p := &domain.Pattern{
		ID:        s.genID.Generate().Int64(),
		Name:      name,
		ImageName: req.ImageName,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.CreatePattern(ctx, s.db, p); err != nil {
		return nil, err
	}

	resp := toPatternResponse(p)
	return &resp, nil
}

func (s *Service) DeletePattern(ctx context.Context, id string) error {
	patternID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return domain.ErrInvalidID
	}
	return s.repo.DeletePattern(ctx, s.db, patternID.Int64())
}

func (s *Service) ListColors(ctx context.Context) ([]domain.ColorResponse, error) {
	items, err := s.repo.ListColors(ctx, s.db)
	if err != nil {
		return nil, err
	}

	resp := make([]domain.ColorResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, toColorResponse(&item))
	}
	return resp, nil
}

func (s *Service) CreateColor(ctx context.Context, req domain.CreateColorRequest) (*domain.ColorResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}
	code := strings.TrimSpace(req.Code)
	if !colorCodeRe.MatchString(code) {
		return nil, domain.ErrInvalidColorCode
	}

	now := s.clock.Now()
	c := &domain.Color{
		ID:        s.genID.Generate().Int64(),
		Name:      name,
		Code:      strings.ToLower(code),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.CreateColor(ctx, s.db, c); err != nil {
		return nil, err
	}

	resp := toColorResponse(c)
	return &resp, nil
}

func (s *Service) DeleteColor(ctx context.Context, id string) error {
	colorID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return domain.ErrInvalidID
	}
	return s.repo.DeleteColor(ctx, s.db, colorID.Int64())
}

func (s *Service) ListFonts(ctx context.Context) ([]domain.FontResponse, error) {
	items, err := s.repo.ListFonts(ctx, s.db)
	if err != nil {
		return nil, err
	}

	resp := make([]domain.FontResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, toFontResponse(&item))
	}
	return resp, nil
}

func (s *Service) CreateFont(ctx context.Context, req domain.CreateFontRequest) (*domain.FontResponse, error) {
	fontName := strings.TrimSpace(req.FontName)
	if fontName == "" {
		return nil, domain.ErrInvalidName
	}
	fontFamily := strings.TrimSpace(req.FontFamily)
	if fontFamily == "" {
		fontFamily = fontName
	}
	if req.FileName != nil {
		if !validFontFile(*req.FileName) {
			return nil, domain.ErrInvalidFontFile
		}
	}

	now := s.clock.Now()
	f := &domain.Font{
		ID:         s.genID.Generate().Int64(),
		FontName:   fontName,
		FontFamily: fontFamily,
		FileName:   req.FileName,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.repo.CreateFont(ctx, s.db, f); err != nil {
		return nil, err
	}

	resp := toFontResponse(f)
	return &resp, nil
}

func (s *Service) DeleteFont(ctx context.Context, id string) error {
	fontID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return domain.ErrInvalidID
	}
	return s.repo.DeleteFont(ctx, s.db, fontID.Int64())
}

func validFontFile(name string) bool {
	idx := strings.LastIndex(name, ".")
	if idx < 0 {
		return false
	}
	_, ok := fontExtensions[strings.ToLower(name[idx:])]
	return ok
}

func toCategoryResponse(c *domain.ShirtCategory) domain.CategoryResponse {
	return domain.CategoryResponse{
		ID:          snowflake.ID(c.ID).String(),
		Name:        c.Name,
		DisplayName: c.DisplayName,
		Locked:      c.Locked,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toSubCategoryResponse(sub *domain.ShirtSubCategory) domain.SubCategoryResponse {
	return domain.SubCategoryResponse{
		ID:         snowflake.ID(sub.ID).String(),
		CategoryID: snowflake.ID(sub.CategoryID).String(),
		Name:       sub.Name,
		CreatedAt:  sub.CreatedAt,
		UpdatedAt:  sub.UpdatedAt,
	}
}

func toShirtResponse(s *domain.Shirt) domain.ShirtResponse {
	resp := domain.ShirtResponse{
		ID:          snowflake.ID(s.ID).String(),
		Name:        s.Name,
		Description: s.Description,
		BasePrice:   s.BasePrice,
		CategoryID:  snowflake.ID(s.CategoryID).String(),
		ImageName:   s.ImageName,
		Metadata:    s.Metadata,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
	if s.SubCategoryID != nil {
		v := snowflake.ID(*s.SubCategoryID).String()
		resp.SubCategoryID = &v
	}
	return resp
}

func toCustomizerResponse(c *domain.Customizer) domain.CustomizerResponse {
	resp := domain.CustomizerResponse{
		ID:          snowflake.ID(c.ID).String(),
		Name:        c.Name,
		Description: c.Description,
		BasePrice:   c.BasePrice,
		Template:    c.Template,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
	if c.CategoryID != nil {
		v := snowflake.ID(*c.CategoryID).String()
		resp.CategoryID = &v
	}
	return resp
}

func toPatternResponse(p *domain.Pattern) domain.PatternResponse {
	return domain.PatternResponse{
		ID:        snowflake.ID(p.ID).String(),
		Name:      p.Name,
		ImageName: p.ImageName,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toColorResponse(c *domain.Color) domain.ColorResponse {
	return domain.ColorResponse{
		ID:        snowflake.ID(c.ID).String(),
		Name:      c.Name,
		Code:      c.Code,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toFontResponse(f *domain.Font) domain.FontResponse {
	return domain.FontResponse{
		ID:         snowflake.ID(f.ID).String(),
		FontName:   f.FontName,
		FontFamily: f.FontFamily,
		FileName:   f.FileName,
		CreatedAt:  f.CreatedAt,
		UpdatedAt:  f.UpdatedAt,
	}
}
