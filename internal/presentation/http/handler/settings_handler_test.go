package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/craftlister/craftlister-api/internal/application/service"
	"github.com/craftlister/craftlister-api/internal/domain/entity"
	"github.com/craftlister/craftlister-api/internal/presentation/http/middleware"
	"github.com/craftlister/craftlister-api/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type memSettingsRepo struct {
	rows map[uuid.UUID]*entity.UserSettings
}

func newMemSettingsRepo() *memSettingsRepo {
	return &memSettingsRepo{rows: make(map[uuid.UUID]*entity.UserSettings)}
}

func (m *memSettingsRepo) GetByUserID(_ context.Context, userID uuid.UUID) (*entity.UserSettings, error) {
	row, ok := m.rows[userID]
	if !ok {
		return nil, nil
	}
	copied := *row
	return &copied, nil
}

func (m *memSettingsRepo) Create(_ context.Context, settings *entity.UserSettings) error {
	if settings.ID == uuid.Nil {
		settings.ID = uuid.New()
	}
	copied := *settings
	m.rows[settings.UserID] = &copied
	return nil
}

func (m *memSettingsRepo) Update(_ context.Context, settings *entity.UserSettings) error {
	copied := *settings
	m.rows[settings.UserID] = &copied
	return nil
}

func newSettingsTestServer(t *testing.T) (*gin.Engine, *memSettingsRepo, *utils.JWTManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := newMemSettingsRepo()
	jwtManager := utils.NewJWTManager("test-secret", time.Hour, time.Hour)
	h := NewSettingsHandler(service.NewSettingsService(repo))

	router := gin.New()
	api := router.Group("/api")
	api.Use(middleware.AuthMiddleware(jwtManager))
	api.GET("/settings", h.GetSettings)
	api.POST("/settings", h.SaveSettings)

	return router, repo, jwtManager
}

func accessToken(t *testing.T, jwtManager *utils.JWTManager, userID uuid.UUID) string {
	t.Helper()
	token, err := jwtManager.GenerateAccessToken(userID, "test@example.com")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	return token
}

func doRequest(router *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetSettingsReturnsFlatDefaults(t *testing.T) {
	router, repo, jwtManager := newSettingsTestServer(t)
	token := accessToken(t, jwtManager, uuid.New())

	w := doRequest(router, http.MethodGet, "/api/settings", token, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}

	if body["default_price"] != 10.0 {
		t.Errorf("default_price = %v, want 10.0", body["default_price"])
	}
	if body["default_quantity"] != float64(999) {
		t.Errorf("default_quantity = %v, want 999", body["default_quantity"])
	}
	if body["auto_renew"] != true {
		t.Errorf("auto_renew = %v, want true", body["auto_renew"])
	}
	if _, hasEnvelope := body["data"]; hasEnvelope {
		t.Error("response must be a flat record, found data envelope")
	}

	if len(repo.rows) != 0 {
		t.Errorf("GET created %d row(s), want none", len(repo.rows))
	}
}

func TestSaveSettingsPartialUpdate(t *testing.T) {
	router, repo, jwtManager := newSettingsTestServer(t)
	userID := uuid.New()
	token := accessToken(t, jwtManager, userID)

	w := doRequest(router, http.MethodPost, "/api/settings", token, `{"default_price": 5.5}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", w.Code, w.Body.String())
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if body["message"] != "Settings saved successfully" {
		t.Errorf("message = %v", body["message"])
	}
	if body["default_price"] != 5.5 {
		t.Errorf("default_price = %v, want 5.5", body["default_price"])
	}
	if body["default_quantity"] != float64(999) {
		t.Errorf("default_quantity = %v, want default 999", body["default_quantity"])
	}
	if body["auto_renew"] != true {
		t.Errorf("auto_renew = %v, want default true", body["auto_renew"])
	}

	row, ok := repo.rows[userID]
	if !ok {
		t.Fatal("save did not persist a row")
	}
	if row.DefaultPrice != 5.5 {
		t.Errorf("stored DefaultPrice = %v, want 5.5", row.DefaultPrice)
	}
}

func TestSaveSettingsMalformedBody(t *testing.T) {
	router, repo, jwtManager := newSettingsTestServer(t)
	token := accessToken(t, jwtManager, uuid.New())

	w := doRequest(router, http.MethodPost, "/api/settings", token, `{"default_price": "not a number"`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if len(repo.rows) != 0 {
		t.Error("malformed request must not mutate the store")
	}
}

func TestSettingsRequireAuthentication(t *testing.T) {
	router, repo, jwtManager := newSettingsTestServer(t)

	// Tokens signed with the right secret but of the wrong class must be
	// rejected before the resource body runs.
	refreshToken, err := jwtManager.GenerateRefreshToken(uuid.New())
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}
	stateToken, err := jwtManager.GenerateStateToken(uuid.New())
	if err != nil {
		t.Fatalf("GenerateStateToken: %v", err)
	}

	cases := []struct {
		name   string
		method string
		token  string
		body   string
	}{
		{"get without token", http.MethodGet, "", ""},
		{"save without token", http.MethodPost, "", `{"default_price": 5.5}`},
		{"save with invalid token", http.MethodPost, "not-a-token", `{"default_price": 5.5}`},
		{"get with refresh token", http.MethodGet, refreshToken, ""},
		{"get with state token", http.MethodGet, stateToken, ""},
		{"save with refresh token", http.MethodPost, refreshToken, `{"default_price": 5.5}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(router, tc.method, "/api/settings", tc.token, tc.body)
			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", w.Code)
			}
		})
	}

	if len(repo.rows) != 0 {
		t.Error("unauthenticated requests must not mutate the store")
	}
}
