package oauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"golang.org/x/oauth2"
)

var (
	ErrInvalidCode        = errors.New("invalid authorization code")
	ErrFailedToGetShop    = errors.New("failed to get shop info from Etsy")
	ErrOAuthNotConfigured = errors.New("Etsy OAuth is not configured")
)

// Etsy OAuth 2.0 endpoints (v3 API)
var etsyEndpoint = oauth2.Endpoint{
	AuthURL:  "https://www.etsy.com/oauth/connect",
	TokenURL: "https://api.etsy.com/v3/public/oauth/token",
}

const etsyAPIBase = "https://api.etsy.com/v3/application"

// EtsyUserInfo represents the authenticated Etsy user
type EtsyUserInfo struct {
	UserID int64 `json:"user_id"`
	ShopID int64 `json:"shop_id"`
}

// EtsyShop represents an Etsy shop
type EtsyShop struct {
	ShopID   int64  `json:"shop_id"`
	ShopName string `json:"shop_name"`
}

// EtsyOAuthService handles Etsy OAuth operations. Etsy uses a single app
// credential (API key) with per-user access tokens.
type EtsyOAuthService struct {
	config *oauth2.Config
	apiKey string
}

// EtsyOAuthConfig holds the configuration for Etsy OAuth
type EtsyOAuthConfig struct {
	APIKey       string
	SharedSecret string
	RedirectURL  string
}

// NewEtsyOAuthService creates a new Etsy OAuth service
func NewEtsyOAuthService(cfg EtsyOAuthConfig) *EtsyOAuthService {
	config := &oauth2.Config{
		ClientID:     cfg.APIKey,
		ClientSecret: cfg.SharedSecret,
		RedirectURL:  cfg.RedirectURL,
		Scopes:       []string{"listings_r", "listings_w", "shops_r"},
		Endpoint:     etsyEndpoint,
	}

	return &EtsyOAuthService{
		config: config,
		apiKey: cfg.APIKey,
	}
}

// IsConfigured checks if Etsy OAuth is properly configured
func (s *EtsyOAuthService) IsConfigured() bool {
	return s.config.ClientID != "" && s.config.ClientSecret != ""
}

// GetAuthURL returns the URL to redirect the user to for Etsy consent
func (s *EtsyOAuthService) GetAuthURL(state string) string {
	return s.config.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// ExchangeCode exchanges the authorization code for tokens
func (s *EtsyOAuthService) ExchangeCode(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := s.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCode, err)
	}
	return token, nil
}

// GetUserShop fetches the shop belonging to the token's user
func (s *EtsyOAuthService) GetUserShop(ctx context.Context, token *oauth2.Token) (*EtsyShop, error) {
	var user EtsyUserInfo
	if err := s.get(ctx, token, etsyAPIBase+"/users/me", &user); err != nil {
		return nil, err
	}

	var shop EtsyShop
	if err := s.get(ctx, token, etsyAPIBase+"/shops/"+strconv.FormatInt(user.ShopID, 10), &shop); err != nil {
		return nil, err
	}

	return &shop, nil
}

// get performs an authenticated Etsy API request. Etsy requires the app API
// key as a header on every call in addition to the OAuth bearer token.
func (s *EtsyOAuthService) get(ctx context.Context, token *oauth2.Token, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("x-api-key", s.apiKey)

	client := s.config.Client(ctx, token)
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToGetShop, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: status %d, body: %s", ErrFailedToGetShop, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToGetShop, err)
	}

	return nil
}
