package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/smallbiznis/threadline/internal/clock"
	"github.com/smallbiznis/threadline/internal/member/domain"
	"github.com/smallbiznis/threadline/internal/member/repository"
	"github.com/smallbiznis/threadline/internal/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var testNow = time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)

type fakeDispatcher struct {
	queued []notify.Notification
}

func (f *fakeDispatcher) Enqueue(n notify.Notification) bool {
	f.queued = append(f.queued, n)
	return true
}

func newTestService(t *testing.T) (domain.Service, *fakeDispatcher, *clock.FakeClock) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Member{}, &domain.Session{}))

	node, err := snowflake.NewNode(3)
	require.NoError(t, err)

	dispatcher := &fakeDispatcher{}
	fc := clock.NewFakeClock(testNow)
	svc := New(Params{
		DB:         db,
		Log:        zap.NewNop(),
		GenID:      node,
		Clock:      fc,
		Repo:       repository.Provide(),
		Dispatcher: dispatcher,
	})
	return svc, dispatcher, fc
}

func signup(t *testing.T, svc domain.Service) *domain.MemberResponse {
	t.Helper()
	m, err := svc.Signup(context.Background(), domain.SignupRequest{
		Email:    "owner@example.com",
		Username: "owner",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	return m
}

func TestSignup_PendingAndNotified(t *testing.T) {
	svc, dispatcher, _ := newTestService(t)

	m := signup(t, svc)
	assert.Equal(t, domain.StatusPending, m.Status)
	assert.Equal(t, domain.RoleStaff, m.Role)

	require.Len(t, dispatcher.queued, 1)
	assert.Equal(t, "owner@example.com", dispatcher.queued[0].To)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService(t)
	signup(t, svc)

	_, err := svc.Signup(context.Background(), domain.SignupRequest{
		Email:    "owner@example.com",
		Username: "someone-else",
		Password: "correct-horse",
	})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestSignup_Validation(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, domain.SignupRequest{Email: "not-an-email", Username: "x", Password: "longenough"})
	assert.ErrorIs(t, err, domain.ErrInvalidEmail)

	_, err = svc.Signup(ctx, domain.SignupRequest{Email: "a@b.com", Username: "x", Password: "short"})
	assert.ErrorIs(t, err, domain.ErrInvalidPassword)

	_, err = svc.Signup(ctx, domain.SignupRequest{Email: "a@b.com", Username: "x", Password: "longenough", Role: "superuser"})
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
}

func TestLogin_RequiresApproval(t *testing.T) {
	svc, dispatcher, _ := newTestService(t)
	ctx := context.Background()

	m := signup(t, svc)

	_, err := svc.Login(ctx, domain.LoginRequest{Email: "owner@example.com", Password: "correct-horse"})
	assert.ErrorIs(t, err, domain.ErrNotApproved)

	approved, err := svc.Approve(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, approved.Status)
	require.Len(t, dispatcher.queued, 2)

	login, err := svc.Login(ctx, domain.LoginRequest{Email: "owner@example.com", Password: "correct-horse"})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, m.ID, login.Member.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	m := signup(t, svc)
	_, err := svc.Approve(ctx, m.ID)
	require.NoError(t, err)

	_, err = svc.Login(ctx, domain.LoginRequest{Email: "owner@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(ctx, domain.LoginRequest{Email: "nobody@example.com", Password: "correct-horse"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestReject_BlocksLogin(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	m := signup(t, svc)
	rejected, err := svc.Reject(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, rejected.Status)

	_, err = svc.Login(ctx, domain.LoginRequest{Email: "owner@example.com", Password: "correct-horse"})
	assert.ErrorIs(t, err, domain.ErrNotApproved)
}

func TestAuthenticate_SessionLifecycle(t *testing.T) {
	svc, _, fc := newTestService(t)
	ctx := context.Background()

	m := signup(t, svc)
	_, err := svc.Approve(ctx, m.ID)
	require.NoError(t, err)

	login, err := svc.Login(ctx, domain.LoginRequest{Email: "owner@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	authed, err := svc.Authenticate(ctx, login.Token)
	require.NoError(t, err)
	assert.Equal(t, m.ID, authed.ID)

	_, err = svc.Authenticate(ctx, "bogus-token")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	// Expired sessions stop authenticating.
	fc.Advance(8 * 24 * time.Hour)
	_, err = svc.Authenticate(ctx, login.Token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogout_InvalidatesToken(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	m := signup(t, svc)
	_, err := svc.Approve(ctx, m.ID)
	require.NoError(t, err)

	login, err := svc.Login(ctx, domain.LoginRequest{Email: "owner@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, login.Token))
	_, err = svc.Authenticate(ctx, login.Token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestListMembers_ByStatus(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	m := signup(t, svc)
	_, err := svc.Signup(ctx, domain.SignupRequest{
		Email:    "staff@example.com",
		Username: "staff",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	_, err = svc.Approve(ctx, m.ID)
	require.NoError(t, err)

	pending, err := svc.ListMembers(ctx, "pending")
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "staff@example.com", pending[0].Email)

	all, err := svc.ListMembers(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = svc.ListMembers(ctx, "bogus")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}
