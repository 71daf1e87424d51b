package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"

	"github.com/MKhiriev/go-users-api/internal/config"
	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/internal/service"
	"github.com/MKhiriev/go-users-api/models"
)

const validToken = "valid-token"

// ---- Mock: AuthService ----

type mockAuthService struct {
	validateFn func(ctx context.Context, token string) (bool, error)
	calls      atomic.Int32
}

func (m *mockAuthService) Validate(ctx context.Context, token string) (bool, error) {
	m.calls.Add(1)
	if m.validateFn == nil {
		return false, nil
	}
	return m.validateFn(ctx, token)
}

func (m *mockAuthService) CreateToken(_ context.Context, _ string) (models.Token, error) {
	return models.Token{}, nil
}

func acceptValidToken() *mockAuthService {
	return &mockAuthService{
		validateFn: func(_ context.Context, token string) (bool, error) {
			return token == validToken, nil
		},
	}
}

// ---- Mock: UserService ----

type mockUserService struct {
	listFn   func(ctx context.Context) ([]models.User, error)
	getFn    func(ctx context.Context, id int64) (models.User, error)
	createFn func(ctx context.Context, user models.NewUser) (int64, error)
	deleteFn func(ctx context.Context, id int64) (int64, error)

	calls atomic.Int32
}

func (m *mockUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	m.calls.Add(1)
	if m.listFn == nil {
		return []models.User{}, nil
	}
	return m.listFn(ctx)
}

func (m *mockUserService) GetUser(ctx context.Context, id int64) (models.User, error) {
	m.calls.Add(1)
	if m.getFn == nil {
		return models.User{ID: id}, nil
	}
	return m.getFn(ctx, id)
}

func (m *mockUserService) CreateUser(ctx context.Context, user models.NewUser) (int64, error) {
	m.calls.Add(1)
	if m.createFn == nil {
		return 1, nil
	}
	return m.createFn(ctx, user)
}

func (m *mockUserService) DeleteUser(ctx context.Context, id int64) (int64, error) {
	m.calls.Add(1)
	if m.deleteFn == nil {
		return 1, nil
	}
	return m.deleteFn(ctx, id)
}

// ---- Helpers ----

func newTestRouter(auth service.AuthService, users service.UserService, cfg config.Server) http.Handler {
	h := NewHandler(&service.Services{AuthService: auth, UserService: users}, cfg, logger.Nop())
	return h.Init()
}

func doRequest(router http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}
