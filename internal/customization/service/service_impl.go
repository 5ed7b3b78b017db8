package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/threadline/internal/clock"
	"github.com/smallbiznis/threadline/internal/customization/domain"
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
		log:   p.Log.Named("customization.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) ListUserShirts(ctx context.Context, req domain.ListRequest) ([]domain.UserShirtResponse, error) {
	var customerID int64
	if trimmed := strings.TrimSpace(req.CustomerID); trimmed != "" {
		parsed, err := snowflake.ParseString(trimmed)
		if err != nil {
			return nil, domain.ErrInvalidCustomer
		}
		customerID = parsed.Int64()
	}

	items, err := s.repo.ListUserShirts(ctx, s.db, customerID)
	if err != nil {
		return nil, err
	}

	resp := make([]domain.UserShirtResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, toUserShirtResponse(&item))
	}
	return resp, nil
}

func (s *Service) CreateUserShirt(ctx context.Context, req domain.CreateUserShirtRequest) (*domain.UserShirtResponse, error) {
	customerID, err := snowflake.ParseString(strings.TrimSpace(req.CustomerID))
	if err != nil {
		return nil, domain.ErrInvalidCustomer
	}
	shirtID, err := snowflake.ParseString(strings.TrimSpace(req.ShirtID))
	if err != nil {
		return nil, domain.ErrInvalidProduct
	}

	data := domain.CustomizationData{}
	if req.Data != nil {
		data = *req.Data
	}

	now := s.clock.Now()
	record := &domain.UserShirt{
		ID:         s.genID.Generate().Int64(),
		CustomerID: customerID.Int64(),
		ShirtID:    shirtID.Int64(),
		Purchased:  req.Purchased,
		Data:       datatypes.NewJSONType(data),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.repo.CreateUserShirt(ctx, s.db, record); err != nil {
		return nil, err
	}

	resp := toUserShirtResponse(record)
	return &resp, nil
}

func (s *Service) UpdateUserShirt(ctx context.Context, req domain.UpdateUserShirtRequest) (*domain.UserShirtResponse, error) {
	recordID, err := snowflake.ParseString(strings.TrimSpace(req.ID))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	item, err := s.repo.FindUserShirtByID(ctx, s.db, recordID.Int64())
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	if req.Purchased != nil {
		item.Purchased = *req.Purchased
	}
	if req.Data != nil {
		item.Data = datatypes.NewJSONType(*req.Data)
	}

	item.UpdatedAt = s.clock.Now()
	if err := s.repo.UpdateUserShirt(ctx, s.db, item); err != nil {
		return nil, err
	}

	resp := toUserShirtResponse(item)
	return &resp, nil
}

func (s *Service) DeleteUserShirt(ctx context.Context, id string) error {
	recordID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return domain.ErrInvalidID
	}

	item, err := s.repo.FindUserShirtByID(ctx, s.db, recordID.Int64())
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}

	return s.repo.DeleteUserShirt(ctx, s.db, recordID.Int64())
}

func (s *Service) ListUserCustomizers(ctx context.Context, req domain.ListRequest) ([]domain.UserCustomizerResponse, error) {
	var customerID int64
	if trimmed := strings.TrimSpace(req.CustomerID); trimmed != "" {
		parsed, err := snowflake.ParseString(trimmed)
		if err != nil {
			return nil, domain.ErrInvalidCustomer
		}
		customerID = parsed.Int64()
	}

	items, err := s.repo.ListUserCustomizers(ctx, s.db, customerID)
	if err != nil {
		return nil, err
	}

	resp := make([]domain.UserCustomizerResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, toUserCustomizerResponse(&item))
	}
	return resp, nil
}

func (s *Service) CreateUserCustomizer(ctx context.Context, req domain.CreateUserCustomizerRequest) (*domain.UserCustomizerResponse, error) {
	customerID, err := snowflake.ParseString(strings.TrimSpace(req.CustomerID))
	if err != nil {
		return nil, domain.ErrInvalidCustomer
	}
	customizerID, err := snowflake.ParseString(strings.TrimSpace(req.CustomizerID))
	if err != nil {
		return nil, domain.ErrInvalidProduct
	}

	data := domain.CustomizationData{}
	if req.Data != nil {
		data = *req.Data
	}

	now := s.clock.Now()
	record := &domain.UserCustomizer{
		ID:           s.genID.Generate().Int64(),
		CustomerID:   customerID.Int64(),
		CustomizerID: customizerID.Int64(),
		Purchased:    req.Purchased,
		Data:         datatypes.NewJSONType(data),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.CreateUserCustomizer(ctx, s.db, record); err != nil {
		return nil, err
	}

	resp := toUserCustomizerResponse(record)
	return &resp, nil
}

func (s *Service) UpdateUserCustomizer(ctx context.Context, req domain.UpdateUserCustomizerRequest) (*domain.UserCustomizerResponse, error) {
	recordID, err := snowflake.ParseString(strings.TrimSpace(req.ID))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	item, err := s.repo.FindUserCustomizerByID(ctx, s.db, recordID.Int64())
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	if req.Purchased != nil {
		item.Purchased = *req.Purchased
	}
	if req.Data != nil {
		item.Data = datatypes.NewJSONType(*req.Data)
	}

	item.UpdatedAt = s.clock.Now()
	if err := s.repo.UpdateUserCustomizer(ctx, s.db, item); err != nil {
		return nil, err
	}

	resp := toUserCustomizerResponse(item)
	return &resp, nil
}

func (s *Service) DeleteUserCustomizer(ctx context.Context, id string) error {
	recordID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return domain.ErrInvalidID
	}

	item, err := s.repo.FindUserCustomizerByID(ctx, s.db, recordID.Int64())
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}

	return s.repo.DeleteUserCustomizer(ctx, s.db, recordID.Int64())
}

func toUserShirtResponse(us *domain.UserShirt) domain.UserShirtResponse {
	return domain.UserShirtResponse{
		ID:         snowflake.ID(us.ID).String(),
		CustomerID: snowflake.ID(us.CustomerID).String(),
		ShirtID:    snowflake.ID(us.ShirtID).String(),
		Purchased:  us.Purchased,
		Data:       us.Data.Data(),
		CreatedAt:  us.CreatedAt,
		UpdatedAt:  us.UpdatedAt,
	}
}

func toUserCustomizerResponse(uc *domain.UserCustomizer) domain.UserCustomizerResponse {
	return domain.UserCustomizerResponse{
		ID:           snowflake.ID(uc.ID).String(),
		CustomerID:   snowflake.ID(uc.CustomerID).String(),
		CustomizerID: snowflake.ID(uc.CustomizerID).String(),
		Purchased:    uc.Purchased,
		Data:         uc.Data.Data(),
		CreatedAt:    uc.CreatedAt,
		UpdatedAt:    uc.UpdatedAt,
	}
}
