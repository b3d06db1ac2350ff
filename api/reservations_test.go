package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/explorex/reservations/internal/domain"
	"github.com/explorex/reservations/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockReservationUseCase is a mock implementation of reservation.ReservationUseCase
type MockReservationUseCase struct {
	mock.Mock
}

func (m *MockReservationUseCase) List(ctx context.Context, state *int) ([]domain.Reservation, error) {
	args := m.Called(ctx, state)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockReservationUseCase) Create(ctx context.Context, input *validation.ReservationInput) (*domain.Reservation, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationUseCase) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationUseCase) Update(ctx context.Context, id int64, input *validation.ReservationInput) (*domain.Reservation, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationUseCase) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type stubVerifier struct {
	ok  bool
	err error
}

func (s stubVerifier) Verify(ctx context.Context, token string) (bool, error) {
	return s.ok, s.err
}

func postJSON(t *testing.T, body map[string]any) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	data, err := json.Marshal(body)
	assert.NoError(t, err)
	c.Request = httptest.NewRequest("POST", "/api/reservation", bytes.NewReader(data))
	c.Request.Header.Set("Content-Type", "application/json")
	return w, c
}

func TestReservationHandler_create_Success(t *testing.T) {
	mockService := &MockReservationUseCase{}
	handler := NewReservationHandler(mockService, stubVerifier{ok: true})

	w, c := postJSON(t, map[string]any{
		"first_name":        "Jane",
		"adults_count":      2,
		"aproximate_budget": 1500.5,
	})

	mockService.On("Create", c.Request.Context(), mock.Anything).Return(&domain.Reservation{
		ID:               10,
		FirstName:        "Jane",
		AdultsCount:      2,
		AproximateBudget: 1500.5,
		State:            1,
	}, nil).Once()

	handler.create(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1500.5, resp["aproximate_budget"])

	mockService.AssertExpectations(t)
}

func TestReservationHandler_create_NegativeChildrenCount(t *testing.T) {
	mockService := &MockReservationUseCase{}
	handler := NewReservationHandler(mockService, stubVerifier{ok: true})

	w, c := postJSON(t, map[string]any{
		"children_count": -1,
	})

	handler.create(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp struct {
		Errors []validation.FieldError `json:"errors"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	if assert.Len(t, resp.Errors, 1) {
		assert.Equal(t, "children_count", resp.Errors[0].Field)
	}

	mockService.AssertNotCalled(t, "Create")
}

func TestReservationHandler_create_BotCheckRejected(t *testing.T) {
	mockService := &MockReservationUseCase{}
	handler := NewReservationHandler(mockService, stubVerifier{ok: false})

	w, c := postJSON(t, map[string]any{
		"first_name":     "Jane",
		"recaptchaToken": "bogus",
	})

	handler.create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid reCAPTCHA")
	mockService.AssertNotCalled(t, "Create")
}

func TestReservationHandler_get_NotFound(t *testing.T) {
	mockService := &MockReservationUseCase{}
	handler := NewReservationHandler(mockService, stubVerifier{ok: true})

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/reservation/42", nil)
	c.Params = gin.Params{{Key: "id", Value: "42"}}

	mockService.On("GetByID", c.Request.Context(), int64(42)).Return(nil, domain.ErrNotFound).Once()

	handler.get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReservationHandler_get_InvalidID(t *testing.T) {
	mockService := &MockReservationUseCase{}
	handler := NewReservationHandler(mockService, stubVerifier{ok: true})

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/reservation/abc", nil)
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	handler.get(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "GetByID")
}

func TestReservationHandler_delete_Success(t *testing.T) {
	mockService := &MockReservationUseCase{}
	handler := NewReservationHandler(mockService, stubVerifier{ok: true})

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("DELETE", "/api/reservation/10", nil)
	c.Params = gin.Params{{Key: "id", Value: "10"}}

	mockService.On("Delete", c.Request.Context(), int64(10)).Return(nil).Once()

	handler.delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "deleted successfully")
}

func TestReservationHandler_delete_Failure(t *testing.T) {
	mockService := &MockReservationUseCase{}
	handler := NewReservationHandler(mockService, stubVerifier{ok: true})

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("DELETE", "/api/reservation/10", nil)
	c.Params = gin.Params{{Key: "id", Value: "10"}}

	mockService.On("Delete", c.Request.Context(), int64(10)).Return(errors.New("tx aborted")).Once()

	handler.delete(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "tx aborted")
}

func TestReservationHandler_list_StateFilter(t *testing.T) {
	mockService := &MockReservationUseCase{}
	handler := NewReservationHandler(mockService, stubVerifier{ok: true})

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/reservation?state=2", nil)

	mockService.On("List", c.Request.Context(), mock.MatchedBy(func(state *int) bool {
		return state != nil && *state == 2
	})).Return([]domain.Reservation{}, nil).Once()

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}
