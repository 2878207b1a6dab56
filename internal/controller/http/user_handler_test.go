package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"crowdfund/internal/entity"
	"crowdfund/internal/usecase"
	"crowdfund/pkg/middleware"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegister_Success(t *testing.T) {
	mockUseCase := new(MockUserUseCase)
	handler := NewUserHandler(mockUseCase, testLogger())

	router := setupTestRouter()
	router.POST("/auth/register", handler.Register)

	input := usecase.RegisterInput{Username: "ada", Email: "ada@example.com", Password: "s3cret-pass", Role: "creator"}
	mockUseCase.On("Register", input).Return(&entity.User{ID: 1, Username: "ada", Role: entity.RoleCreator}, "token-123", nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/auth/register", jsonBody(t, map[string]string{
		"username": "ada", "email": "ada@example.com", "password": "s3cret-pass", "role": "creator",
	}))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var response AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "token-123", response.Token)
	assert.Equal(t, "ada", response.User.Username)
	assert.NotContains(t, w.Body.String(), "password")

	mockUseCase.AssertExpectations(t)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	mockUseCase := new(MockUserUseCase)
	handler := NewUserHandler(mockUseCase, testLogger())

	router := setupTestRouter()
	router.POST("/auth/login", handler.Login)

	mockUseCase.On("Login", "ada", "wrong").Return(nil, "", entity.ErrInvalidCredentials)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/auth/login", bytes.NewBufferString(`{"identifier":"ada","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"incorrect username/email or password"}`, w.Body.String())
	mockUseCase.AssertExpectations(t)
}

func TestUpdateUser_RoleChangeNeedsAdmin(t *testing.T) {
	mockUseCase := new(MockUserUseCase)
	handler := NewUserHandler(mockUseCase, testLogger())

	router := setupTestRouter()
	router.PATCH("/users/:id", as(middleware.AuthContext{UserID: 5, Role: "donor"}, handler.UpdateUser))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", "/users/5", bytes.NewBufferString(`{"role":"admin"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	mockUseCase.AssertNotCalled(t, "UpdateUser", mock.Anything, mock.Anything)
}

func TestUpdateUser_OtherAccountNeedsAdmin(t *testing.T) {
	mockUseCase := new(MockUserUseCase)
	handler := NewUserHandler(mockUseCase, testLogger())

	router := setupTestRouter()
	router.PATCH("/users/:id", as(middleware.AuthContext{UserID: 5, Role: "donor"}, handler.UpdateUser))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", "/users/6", bytes.NewBufferString(`{"username":"taken"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUpdateUser_Self(t *testing.T) {
	mockUseCase := new(MockUserUseCase)
	handler := NewUserHandler(mockUseCase, testLogger())

	router := setupTestRouter()
	router.PATCH("/users/:id", as(middleware.AuthContext{UserID: 5, Role: "donor"}, handler.UpdateUser))

	mockUseCase.On("UpdateUser", uint(5), mock.MatchedBy(func(p usecase.UserPatch) bool {
		return p.Username != nil && *p.Username == "grace" && p.Role == nil
	})).Return(&entity.User{ID: 5, Username: "grace"}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", "/users/5", bytes.NewBufferString(`{"username":"grace"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestGetUser_InternalErrorIsHidden(t *testing.T) {
	mockUseCase := new(MockUserUseCase)
	handler := NewUserHandler(mockUseCase, testLogger())

	router := setupTestRouter()
	router.GET("/users/:id", as(fan, handler.GetUser))

	mockUseCase.On("GetUser", uint(9)).Return(nil, errors.New("failed to get user: connection refused"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/users/9", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
}
