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
	"crowdfund/pkg/middleware"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var moderator = middleware.AuthContext{UserID: 1, Role: "admin"}

func TestCreateReview_UsesCallerAsAdmin(t *testing.T) {
	mockUseCase := new(MockReviewUseCase)
	handler := NewReviewHandler(mockUseCase, testLogger())

	router := setupTestRouter()
	router.POST("/reviews", as(moderator, handler.CreateReview))

	mockUseCase.On("CreateReview", uint(1), uint(5), "approved", "clear goals").
		Return(&entity.AdminReview{ID: 3, AdminID: 1, CampaignID: 5, Decision: entity.DecisionApproved}, nil)
	mockUseCase.On("CreateReview", uint(1), uint(5), "", "").
		Return(nil, fmt.Errorf("%w: decision is required", entity.ErrValidation))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/reviews", bytes.NewBufferString(`{"campaign_id":5,"decision":"approved","comments":"clear goals","admin_id":77}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var response entity.AdminReview
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, uint(1), response.AdminID)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("POST", "/reviews", bytes.NewBufferString(`{"campaign_id":5}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	mockUseCase.AssertExpectations(t)
}

func TestListReviews_RequiresOneFilter(t *testing.T) {
	cases := []struct {
		name  string
		query string
		setup func(m *MockReviewUseCase)
		want  int
	}{
		{"no filter", "", func(m *MockReviewUseCase) {}, http.StatusBadRequest},
		{"bad admin id", "?admin_id=abc", func(m *MockReviewUseCase) {}, http.StatusBadRequest},
		{"by admin", "?admin_id=1", func(m *MockReviewUseCase) {
			m.On("ListByAdmin", "admin", uint(1)).Return([]*entity.AdminReview{{ID: 1}}, nil)
		}, http.StatusOK},
		{"by campaign", "?campaign_id=5", func(m *MockReviewUseCase) {
			m.On("ListByCampaign", "campaign", uint(5)).Return([]*entity.AdminReview{}, nil)
		}, http.StatusOK},
		{"by decision", "?decision=rejected", func(m *MockReviewUseCase) {
			m.On("ListByDecision", "rejected").Return([]*entity.AdminReview{{ID: 2}}, nil)
		}, http.StatusOK},
		{"bad decision", "?decision=maybe", func(m *MockReviewUseCase) {
			m.On("ListByDecision", "maybe").Return(nil, fmt.Errorf("%w: invalid decision", entity.ErrValidation))
		}, http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockUseCase := new(MockReviewUseCase)
			tc.setup(mockUseCase)
			handler := NewReviewHandler(mockUseCase, testLogger())
			router := setupTestRouter()
			router.GET("/reviews", handler.ListReviews)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", "/reviews"+tc.query, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.want, w.Code)
			mockUseCase.AssertExpectations(t)
		})
	}
}

func TestUpdateAndDeleteReview(t *testing.T) {
	mockUseCase := new(MockReviewUseCase)
	handler := NewReviewHandler(mockUseCase, testLogger())

	router := setupTestRouter()
	router.PATCH("/reviews/:id", handler.UpdateReview)
	router.DELETE("/reviews/:id", handler.DeleteReview)
	router.GET("/reviews/:id", handler.GetReview)

	mockUseCase.On("UpdateReview", uint(3), mock.MatchedBy(func(p usecase.ReviewPatch) bool {
		return p.Decision != nil && *p.Decision == "rejected" && p.Comments == nil
	})).Return(&entity.AdminReview{ID: 3, Decision: entity.DecisionRejected}, nil)
	mockUseCase.On("DeleteReview", uint(3)).Return(nil)
	mockUseCase.On("GetReview", uint(3)).Return(nil, fmt.Errorf("review %w", entity.ErrNotFound))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", "/reviews/3", bytes.NewBufferString(`{"decision":"rejected"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("DELETE", "/reviews/3", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/reviews/3", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	mockUseCase.AssertExpectations(t)
}
