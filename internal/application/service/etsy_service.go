package service

import (
	"context"

	"github.com/craftlister/craftlister-api/internal/domain/entity"
	"github.com/craftlister/craftlister-api/internal/domain/repository"
	"github.com/craftlister/craftlister-api/pkg/apperror"
	"github.com/craftlister/craftlister-api/pkg/oauth"
	"github.com/craftlister/craftlister-api/pkg/utils"
	"github.com/google/uuid"
)

// EtsyService handles linking user accounts to their Etsy shop
type EtsyService struct {
	connRepo     repository.EtsyConnectionRepository
	oauthService *oauth.EtsyOAuthService
	jwtManager   *utils.JWTManager
}

// NewEtsyService creates a new Etsy service
func NewEtsyService(
	connRepo repository.EtsyConnectionRepository,
	oauthService *oauth.EtsyOAuthService,
	jwtManager *utils.JWTManager,
) *EtsyService {
	return &EtsyService{
		connRepo:     connRepo,
		oauthService: oauthService,
		jwtManager:   jwtManager,
	}
}

// StatusOutput describes the user's Etsy connection state
type StatusOutput struct {
	Connected bool   `json:"connected"`
	Shop      string `json:"shop,omitempty"`
}

// GetStatus reports whether the user has a linked Etsy shop
func (s *EtsyService) GetStatus(ctx context.Context, userID uuid.UUID) (*StatusOutput, error) {
	conn, err := s.connRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if conn == nil {
		return &StatusOutput{Connected: false}, nil
	}
	return &StatusOutput{Connected: true, Shop: conn.ShopName}, nil
}

// GetConnectURL returns the Etsy consent URL for the user. The OAuth state
// parameter is a short-lived signed token carrying the user id, since the
// browser redirect back from Etsy carries no bearer credential.
func (s *EtsyService) GetConnectURL(ctx context.Context, userID uuid.UUID) (string, error) {
	if !s.oauthService.IsConfigured() {
		return "", apperror.NewBadRequestError("Etsy API credentials are not configured")
	}

	state, err := s.jwtManager.GenerateStateToken(userID)
	if err != nil {
		return "", err
	}
	return s.oauthService.GetAuthURL(state), nil
}

// HandleCallback exchanges the authorization code from the Etsy redirect and
// persists the connection for the user identified by the state token.
func (s *EtsyService) HandleCallback(ctx context.Context, state, code string) error {
	userID, err := s.jwtManager.ValidateStateToken(state)
	if err != nil {
		return apperror.ErrInvalidToken
	}

	token, err := s.oauthService.ExchangeCode(ctx, code)
	if err != nil {
		return apperror.NewBadRequestError("Failed to exchange authorization code")
	}

	shop, err := s.oauthService.GetUserShop(ctx, token)
	if err != nil {
		return err
	}

	conn, err := s.connRepo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if conn == nil {
		conn = &entity.EtsyConnection{UserID: userID}
	}

	conn.ShopName = shop.ShopName
	conn.AccessToken = token.AccessToken
	conn.RefreshToken = token.RefreshToken
	conn.TokenExpiry = token.Expiry

	if conn.ID == uuid.Nil {
		return s.connRepo.Create(ctx, conn)
	}
	return s.connRepo.Update(ctx, conn)
}

// Disconnect removes the user's Etsy connection
func (s *EtsyService) Disconnect(ctx context.Context, userID uuid.UUID) error {
	conn, err := s.connRepo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if conn == nil {
		return apperror.NewNotFoundError("Etsy connection")
	}
	return s.connRepo.DeleteByUserID(ctx, userID)
}
