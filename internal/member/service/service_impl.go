package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	"github.com/smallbiznis/threadline/internal/clock"
	"github.com/smallbiznis/threadline/internal/member/domain"
	"github.com/smallbiznis/threadline/internal/notify"
	"github.com/smallbiznis/threadline/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const sessionTTL = 7 * 24 * time.Hour

type Params struct {
	fx.In

	DB         *gorm.DB
	Log        *zap.Logger
	GenID      *snowflake.Node
	Clock      clock.Clock
	Repo       domain.Repository
	Dispatcher notify.Dispatcher
}

type Service struct {
	db         *gorm.DB
	log        *zap.Logger
	genID      *snowflake.Node
	clock      clock.Clock
	repo       domain.Repository
	dispatcher notify.Dispatcher
}

func New(p Params) domain.Service {
	return &Service{
		db:         p.DB,
		log:        p.Log.Named("member.service"),
		genID:      p.GenID,
		clock:      p.Clock,
		repo:       p.Repo,
		dispatcher: p.Dispatcher,
	}
}

func (s *Service) Signup(ctx context.Context, req domain.SignupRequest) (*domain.MemberResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, domain.ErrInvalidEmail
	}
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, domain.ErrInvalidUsername
	}
	if len(req.Password) < 8 {
		return nil, domain.ErrInvalidPassword
	}
	role := domain.Role(strings.TrimSpace(req.Role))
	if role == "" {
		role = domain.RoleStaff
	}
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	m := &domain.Member{
		ID:           s.genID.Generate().Int64(),
		Email:        email,
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		Status:       domain.StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	err = s.repo.CreateMember(ctx, s.db, m)
	if db.IsDuplicateKeyErr(err) {
		return nil, domain.ErrEmailTaken
	}
	if err != nil {
		return nil, err
	}

	s.dispatcher.Enqueue(notify.Notification{
		To:      m.Email,
		Subject: "Your account is pending review",
		Body:    fmt.Sprintf("Hi %s,\n\nThanks for signing up. An administrator will review your account shortly.", m.Username),
	})

	resp := toMemberResponse(m)
	return &resp, nil
}

func (s *Service) Approve(ctx context.Context, id string) (*domain.MemberResponse, error) {
	return s.decide(ctx, id, domain.StatusApproved)
}

func (s *Service) Reject(ctx context.Context, id string) (*domain.MemberResponse, error) {
	return s.decide(ctx, id, domain.StatusRejected)
}

func (s *Service) decide(ctx context.Context, id string, status domain.Status) (*domain.MemberResponse, error) {
	memberID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	m, err := s.repo.FindMemberByID(ctx, s.db, memberID.Int64())
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}

	m.Status = status
	m.UpdatedAt = s.clock.Now()
	if err := s.repo.UpdateMember(ctx, s.db, m); err != nil {
		return nil, err
	}

	subject := "Your account has been approved"
	body := fmt.Sprintf("Hi %s,\n\nYour account has been approved. You can now sign in.", m.Username)
	if status == domain.StatusRejected {
		subject = "Your account application"
		body = fmt.Sprintf("Hi %s,\n\nYour account application was not approved.", m.Username)
	}
	s.dispatcher.Enqueue(notify.Notification{To: m.Email, Subject: subject, Body: body})

	resp := toMemberResponse(m)
	return &resp, nil
}

func (s *Service) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	m, err := s.repo.FindMemberByEmail(ctx, s.db, email)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(m.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if m.Status != domain.StatusApproved {
		return nil, domain.ErrNotApproved
	}

	now := s.clock.Now()
	session := &domain.Session{
		ID:        s.genID.Generate().Int64(),
		MemberID:  m.ID,
		Token:     uuid.NewString(),
		ExpiresAt: now.Add(sessionTTL),
		CreatedAt: now,
	}
	if err := s.repo.CreateSession(ctx, s.db, session); err != nil {
		return nil, err
	}

	return &domain.LoginResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		Member:    toMemberResponse(m),
	}, nil
}

func (s *Service) Logout(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return domain.ErrUnauthorized
	}
	return s.repo.DeleteSession(ctx, s.db, token)
}

func (s *Service) Authenticate(ctx context.Context, token string) (*domain.MemberResponse, error) {
	if strings.TrimSpace(token) == "" {
		return nil, domain.ErrUnauthorized
	}

	session, err := s.repo.FindSessionByToken(ctx, s.db, token)
	if err != nil {
		return nil, err
	}
	if session == nil || session.ExpiresAt.Before(s.clock.Now()) {
		return nil, domain.ErrUnauthorized
	}

	m, err := s.repo.FindMemberByID(ctx, s.db, session.MemberID)
	if err != nil {
		return nil, err
	}
	if m == nil || m.Status != domain.StatusApproved {
		return nil, domain.ErrUnauthorized
	}

	resp := toMemberResponse(m)
	return &resp, nil
}

func (s *Service) ListMembers(ctx context.Context, status string) ([]domain.MemberResponse, error) {
	st := domain.Status(strings.TrimSpace(status))
	if st != "" && !st.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	items, err := s.repo.ListMembers(ctx, s.db, st)
	if err != nil {
		return nil, err
	}

	resp := make([]domain.MemberResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, toMemberResponse(&item))
	}
	return resp, nil
}

func toMemberResponse(m *domain.Member) domain.MemberResponse {
	return domain.MemberResponse{
		ID:        snowflake.ID(m.ID).String(),
		Email:     m.Email,
		Username:  m.Username,
		Role:      m.Role,
		Status:    m.Status,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
