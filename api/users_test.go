package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/explorex/reservations/internal/auth"
	"github.com/explorex/reservations/internal/domain"
	"github.com/explorex/reservations/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockUserUseCase is a mock implementation of user.UserUseCase
type MockUserUseCase struct {
	mock.Mock
}

func (m *MockUserUseCase) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserUseCase) Create(ctx context.Context, input *validation.UserInput) (*domain.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserUseCase) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserUseCase) Update(ctx context.Context, id int64, input *validation.UserInput) (*domain.User, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserUseCase) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserUseCase) Login(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func testTokens() *auth.Manager {
	return auth.NewManager("access-secret", "refresh-secret")
}

func TestUserHandler_login_Success(t *testing.T) {
	mockService := &MockUserUseCase{}
	handler := NewUserHandler(mockService, testTokens())

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(map[string]any{"email": "alice@example.com", "password": "secret123"})
	c.Request = httptest.NewRequest("POST", "/api/login", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("Login", c.Request.Context(), "alice@example.com", "secret123").
		Return(&domain.User{ID: 1, Username: "alice", Email: "alice@example.com"}, nil).Once()

	handler.login(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["accessToken"])
	assert.NotEmpty(t, resp["refreshToken"])

	user, ok := resp["user"].(map[string]any)
	assert.True(t, ok)
	assert.NotContains(t, user, "password")

	cookies := w.Result().Cookies()
	names := make(map[string]*http.Cookie, len(cookies))
	for _, cookie := range cookies {
		names[cookie.Name] = cookie
	}
	if assert.Contains(t, names, accessCookie) {
		assert.True(t, names[accessCookie].HttpOnly)
		assert.True(t, names[accessCookie].Secure)
		assert.Equal(t, 3600, names[accessCookie].MaxAge)
	}
	if assert.Contains(t, names, refreshCookie) {
		assert.Equal(t, 604800, names[refreshCookie].MaxAge)
	}
}

func TestUserHandler_login_AuthFailed(t *testing.T) {
	mockService := &MockUserUseCase{}
	handler := NewUserHandler(mockService, testTokens())

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(map[string]any{"email": "alice@example.com", "password": "wrong"})
	c.Request = httptest.NewRequest("POST", "/api/login", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("Login", c.Request.Context(), "alice@example.com", "wrong").
		Return(nil, domain.ErrAuthFailed).Once()

	handler.login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Result().Cookies())
}

func TestUserHandler_userLogin_NoCookie(t *testing.T) {
	mockService := &MockUserUseCase{}
	handler := NewUserHandler(mockService, testTokens())

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/userlogin", nil)

	handler.userLogin(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUserHandler_userLogin_ValidToken(t *testing.T) {
	mockService := &MockUserUseCase{}
	tokens := testTokens()
	handler := NewUserHandler(mockService, tokens)

	pair, err := tokens.Issue(&domain.User{ID: 1, Username: "alice", Email: "alice@example.com"})
	assert.NoError(t, err)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/userlogin", nil)
	c.Request.AddCookie(&http.Cookie{Name: accessCookie, Value: pair.Access})

	handler.userLogin(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp["username"])
}

func TestUserHandler_userLogin_TamperedToken(t *testing.T) {
	mockService := &MockUserUseCase{}
	handler := NewUserHandler(mockService, testTokens())

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/userlogin", nil)
	c.Request.AddCookie(&http.Cookie{Name: accessCookie, Value: "garbage"})

	handler.userLogin(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUserHandler_refreshUserLogin(t *testing.T) {
	mockService := &MockUserUseCase{}
	tokens := testTokens()
	handler := NewUserHandler(mockService, tokens)

	pair, err := tokens.Issue(&domain.User{ID: 1, Username: "alice", Email: "alice@example.com"})
	assert.NoError(t, err)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/api/refreshuserlogin", nil)
	c.Request.AddCookie(&http.Cookie{Name: refreshCookie, Value: pair.Refresh})

	handler.refreshUserLogin(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	access, _ := resp["accessToken"].(string)
	assert.NotEmpty(t, access)

	claims, err := tokens.VerifyAccess(access)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), claims.UserID)
}

func TestUserHandler_create_ValidationFailure(t *testing.T) {
	mockService := &MockUserUseCase{}
	handler := NewUserHandler(mockService, testTokens())

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(map[string]any{"username": "alice"})
	c.Request = httptest.NewRequest("POST", "/api/user", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.create(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	mockService.AssertNotCalled(t, "Create")
}
