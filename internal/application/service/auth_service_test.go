package service

import (
	"context"
	"testing"
	"time"

	"github.com/craftlister/craftlister-api/internal/domain/entity"
	"github.com/craftlister/craftlister-api/pkg/utils"
	"github.com/google/uuid"
)

type fakeUserRepo struct {
	byID    map[uuid.UUID]*entity.User
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[uuid.UUID]*entity.User),
		byEmail: make(map[string]*entity.User),
	}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	copied := *user
	f.byID[user.ID] = &copied
	f.byEmail[user.Email] = &copied
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	copied := *user
	f.byID[user.ID] = &copied
	f.byEmail[user.Email] = &copied
	return nil
}

func newAuthTestService() (*AuthService, *fakeUserRepo) {
	repo := newFakeUserRepo()
	jwtManager := utils.NewJWTManager("test-secret", time.Hour, time.Hour)
	return NewAuthService(repo, jwtManager), repo
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newAuthTestService()
	ctx := context.Background()

	user, err := svc.Register(ctx, &RegisterInput{
		Name:     "Anna",
		Email:    "anna@example.com",
		Password: "correct horse battery",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Password == "correct horse battery" {
		t.Error("password stored in plain text")
	}

	output, err := svc.Login(ctx, &LoginInput{
		Email:    "anna@example.com",
		Password: "correct horse battery",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if output.AccessToken == "" || output.RefreshToken == "" {
		t.Error("login returned empty tokens")
	}

	if _, err := svc.Login(ctx, &LoginInput{
		Email:    "anna@example.com",
		Password: "wrong password",
	}); err == nil {
		t.Error("login with wrong password succeeded")
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newAuthTestService()
	ctx := context.Background()

	input := &RegisterInput{Name: "Anna", Email: "anna@example.com", Password: "password123"}
	if _, err := svc.Register(ctx, input); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(ctx, input); err == nil {
		t.Error("duplicate registration succeeded")
	}
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	svc, _ := newAuthTestService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, &RegisterInput{
		Name: "Anna", Email: "anna@example.com", Password: "password123",
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	login, err := svc.Login(ctx, &LoginInput{Email: "anna@example.com", Password: "password123"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	refreshed, err := svc.RefreshToken(ctx, login.RefreshToken)
	if err != nil {
		t.Fatalf("RefreshToken: %v", err)
	}
	if refreshed.AccessToken == "" {
		t.Error("refresh returned empty access token")
	}

	if _, err := svc.RefreshToken(ctx, login.AccessToken); err == nil {
		t.Error("access token accepted as refresh token")
	}
}
