package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/oklog/ulid/v2"
	"github.com/smallbiznis/threadline/internal/clock"
	"github.com/smallbiznis/threadline/internal/order/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
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
		log:   p.Log.Named("order.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) ListOrders(ctx context.Context, req domain.ListOrdersRequest) ([]domain.OrderResponse, error) {
	filter := domain.ListOrdersFilter{}

	if status := strings.TrimSpace(req.Status); status != "" {
		st := domain.OrderStatus(status)
		if !st.Valid() {
			return nil, domain.ErrInvalidStatus
		}
		filter.Status = st
	}
	if customerID := strings.TrimSpace(req.CustomerID); customerID != "" {
		id, err := snowflake.ParseString(customerID)
		if err != nil {
			return nil, domain.ErrInvalidCustomer
		}
		filter.CustomerID = id.Int64()
	}

	items, err := s.repo.ListOrders(ctx, s.db, filter)
	if err != nil {
		return nil, err
	}

	resp := make([]domain.OrderResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, toOrderResponse(&item))
	}
	return resp, nil
}

func (s *Service) GetOrder(ctx context.Context, id string) (*domain.OrderResponse, error) {
	orderID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	item, err := s.repo.FindOrderByID(ctx, s.db, orderID.Int64())
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	resp := toOrderResponse(item)
	return &resp, nil
}

func (s *Service) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (*domain.OrderResponse, error) {
	customerID, err := snowflake.ParseString(strings.TrimSpace(req.CustomerID))
	if err != nil {
		return nil, domain.ErrInvalidCustomer
	}
	if req.Total <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	status := domain.OrderStatus(strings.TrimSpace(req.Status))
	if status == "" {
		status = domain.OrderStatusPending
	}
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	now := s.clock.Now()
	placedAt := req.PlacedAt
	if placedAt.IsZero() {
		placedAt = now
	}

	o := &domain.Order{
		ID:         s.genID.Generate().Int64(),
		Number:     "ORD-" + ulid.Make().String(),
		CustomerID: customerID.Int64(),
		PlacedAt:   placedAt.UTC(),
		Total:      req.Total,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.repo.CreateOrder(ctx, s.db, o); err != nil {
		return nil, err
	}

	resp := toOrderResponse(o)
	return &resp, nil
}

func (s *Service) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.OrderResponse, error) {
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	orderID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	item, err := s.repo.FindOrderByID(ctx, s.db, orderID.Int64())
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	item.Status = status
	item.UpdatedAt = s.clock.Now()
	if err := s.repo.UpdateOrder(ctx, s.db, item); err != nil {
		return nil, err
	}

	resp := toOrderResponse(item)
	return &resp, nil
}

func (s *Service) ListInvoices(ctx context.Context, req domain.ListInvoicesRequest) ([]domain.InvoiceResponse, error) {
	filter := domain.ListInvoicesFilter{}

	if status := strings.TrimSpace(req.Status); status != "" {
		st := domain.InvoiceStatus(status)
		if !st.Valid() {
			return nil, domain.ErrInvalidStatus
		}
		filter.Status = st
	}
	if customerID := strings.TrimSpace(req.CustomerID); customerID != "" {
		id, err := snowflake.ParseString(customerID)
		if err != nil {
			return nil, domain.ErrInvalidCustomer
		}
		filter.CustomerID = id.Int64()
	}

	items, err := s.repo.ListInvoices(ctx, s.db, filter)
	if err != nil {
		return nil, err
	}

	resp := make([]domain.InvoiceResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, toInvoiceResponse(&item))
	}
	return resp, nil
}

func (s *Service) GetInvoice(ctx context.Context, id string) (*domain.InvoiceResponse, error) {
	invoiceID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	item, err := s.repo.FindInvoiceByID(ctx, s.db, invoiceID.Int64())
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	resp := toInvoiceResponse(item)
	return &resp, nil
}

func (s *Service) CreateInvoice(ctx context.Context, req domain.CreateInvoiceRequest) (*domain.InvoiceResponse, error) {
	customerID, err := snowflake.ParseString(strings.TrimSpace(req.CustomerID))
	if err != nil {
		return nil, domain.ErrInvalidCustomer
	}
	if req.Amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	status := domain.InvoiceStatus(strings.TrimSpace(req.Status))
	if status == "" {
		status = domain.InvoiceStatusPending
	}
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	now := s.clock.Now()
	issuedAt := req.IssuedAt
	if issuedAt.IsZero() {
		issuedAt = now
	}
	dueDate := req.DueDate
	if dueDate.IsZero() {
		dueDate = issuedAt.AddDate(0, 0, 30)
	}

	inv := &domain.Invoice{
		ID:         s.genID.Generate().Int64(),
		Number:     "INV-" + ulid.Make().String(),
		CustomerID: customerID.Int64(),
		IssuedAt:   issuedAt.UTC(),
		Amount:     req.Amount,
		Status:     status,
		DueDate:    dueDate.UTC().Truncate(24 * time.Hour),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.repo.CreateInvoice(ctx, s.db, inv); err != nil {
		return nil, err
	}

	resp := toInvoiceResponse(inv)
	return &resp, nil
}

func (s *Service) UpdateInvoiceStatus(ctx context.Context, id string, status domain.InvoiceStatus) (*domain.InvoiceResponse, error) {
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	invoiceID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	item, err := s.repo.FindInvoiceByID(ctx, s.db, invoiceID.Int64())
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	item.Status = status
	item.UpdatedAt = s.clock.Now()
	if err := s.repo.UpdateInvoice(ctx, s.db, item); err != nil {
		return nil, err
	}

	resp := toInvoiceResponse(item)
	return &resp, nil
}

func toOrderResponse(o *domain.Order) domain.OrderResponse {
	return domain.OrderResponse{
		ID:         snowflake.ID(o.ID).String(),
		Number:     o.Number,
		CustomerID: snowflake.ID(o.CustomerID).String(),
		PlacedAt:   o.PlacedAt,
		Total:      o.Total,
		Status:     o.Status,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}

func toInvoiceResponse(inv *domain.Invoice) domain.InvoiceResponse {
	return domain.InvoiceResponse{
		ID:         snowflake.ID(inv.ID).String(),
		Number:     inv.Number,
		CustomerID: snowflake.ID(inv.CustomerID).String(),
		IssuedAt:   inv.IssuedAt,
		Amount:     inv.Amount,
		Status:     inv.Status,
		DueDate:    inv.DueDate,
		CreatedAt:  inv.CreatedAt,
		UpdatedAt:  inv.UpdatedAt,
	}
}
