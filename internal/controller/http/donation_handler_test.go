package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"crowdfund/internal/entity"
	"crowdfund/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateDonation_UsesCallerAsDonor(t *testing.T) {
	mockUseCase := new(MockDonationUseCase)
	handler := NewDonationHandler(mockUseCase, testLogger())

	router := setupTestRouter()
	router.POST("/donations", as(fan, handler.CreateDonation))

	mockUseCase.On("CreateDonation", mock.MatchedBy(func(in usecase.CreateDonationInput) bool {
		return in.DonorID == 21 && in.CampaignID == 3 && in.Amount.Equal(decimal.RequireFromString("25.50")) && in.Message == "go!"
	})).Return(&entity.Donation{ID: 9, DonorID: 21, CampaignID: 3, Amount: decimal.RequireFromString("25.50"), Status: entity.DonationPending}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/donations", bytes.NewBufferString(`{"campaign_id":3,"amount":25.50,"message":"go!","donor_id":99}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var response entity.Donation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, uint(21), response.DonorID)
	mockUseCase.AssertExpectations(t)
}

func TestCreateDonation_Errors(t *testing.T) {
	cases := []struct {
		name string
		body string
		err  error
		want int
	}{
		{"missing campaign", `{"amount":10}`, nil, http.StatusBadRequest},
		{"non-positive amount", `{"campaign_id":3,"amount":0}`, fmt.Errorf("%w: amount must be greater than 0", entity.ErrValidation), http.StatusBadRequest},
		{"unknown campaign", `{"campaign_id":404,"amount":10}`, fmt.Errorf("campaign %w", entity.ErrNotFound), http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockUseCase := new(MockDonationUseCase)
			handler := NewDonationHandler(mockUseCase, testLogger())
			router := setupTestRouter()
			router.POST("/donations", as(fan, handler.CreateDonation))

			if tc.err != nil {
				mockUseCase.On("CreateDonation", mock.Anything).Return(nil, tc.err)
			}

			w := httptest.NewRecorder()
			req, _ := http.NewRequest("POST", "/donations", bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.want, w.Code)
			mockUseCase.AssertExpectations(t)
		})
	}
}

func TestCancelDonation_PassesCaller(t *testing.T) {
	mockUseCase := new(MockDonationUseCase)
	handler := NewDonationHandler(mockUseCase, testLogger())

	router := setupTestRouter()
	router.POST("/donations/:id/cancel", as(fan, handler.CancelDonation))

	caller := usecase.Actor{UserID: 21, Role: entity.RoleDonor}
	mockUseCase.On("CancelDonation", caller, uint(4)).Return(&entity.Donation{ID: 4, Status: entity.DonationCancelled}, nil).Once()
	mockUseCase.On("CancelDonation", caller, uint(5)).Return(nil, fmt.Errorf("%w: only the donor can cancel donation 5", entity.ErrForbidden)).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/donations/4/cancel", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"cancelled"`)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("POST", "/donations/5/cancel", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	mockUseCase.AssertExpectations(t)
}

func TestDonationLists(t *testing.T) {
	mockUseCase := new(MockDonationUseCase)
	handler := NewDonationHandler(mockUseCase, testLogger())

	router := setupTestRouter()
	router.GET("/users/:id/donations", as(fan, handler.ListByUser))
	router.GET("/campaigns/:id/donations", as(fan, handler.ListByCampaign))

	mockUseCase.On("ListByUser", uint(21)).Return([]*entity.Donation{{ID: 1}, {ID: 2}}, nil)
	mockUseCase.On("ListByCampaign", uint(8)).Return(nil, fmt.Errorf("donations %w", entity.ErrNotFound))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/users/21/donations", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	var donations []entity.Donation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &donations))
	assert.Len(t, donations, 2)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/campaigns/8/donations", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	mockUseCase.AssertExpectations(t)
}

func TestUpdateDonationStatus(t *testing.T) {
	mockUseCase := new(MockDonationUseCase)
	handler := NewDonationHandler(mockUseCase, testLogger())

	router := setupTestRouter()
	router.PUT("/donations/:id/status", handler.UpdateStatus)

	mockUseCase.On("UpdateStatus", uint(4), "refunded").Return(&entity.Donation{ID: 4, Status: entity.DonationRefunded}, nil)
	mockUseCase.On("UpdateStatus", uint(4), "lost").Return(nil, fmt.Errorf("%w: invalid donation status", entity.ErrValidation))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/donations/4/status", bytes.NewBufferString(`{"status":"refunded"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("PUT", "/donations/4/status", bytes.NewBufferString(`{"status":"lost"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("PUT", "/donations/4/status", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	mockUseCase.AssertExpectations(t)
}
