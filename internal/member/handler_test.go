package member

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Join(ctx context.Context, req JoinRequest) (*Member, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Member), args.Error(1)
}

func (m *MockService) List(ctx context.Context, search, batch string) ([]Member, error) {
	args := m.Called(ctx, search, batch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Member), args.Error(1)
}

func (m *MockService) GetByID(ctx context.Context, id int) (*Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Member), args.Error(1)
}

func (m *MockService) Update(ctx context.Context, req EditRequest) (*Member, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Member), args.Error(1)
}

func (m *MockService) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockService) ToggleStatus(ctx context.Context, id int) (*Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Member), args.Error(1)
}

func (m *MockService) Renew(ctx context.Context, id int, plan string) (*Member, error) {
	args := m.Called(ctx, id, plan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Member), args.Error(1)
}

func (m *MockService) SweepExpired(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func setupRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/join", h.JoinSubmit)
	r.POST("/admin/members/update", h.Update)
	r.POST("/admin/members/delete/:id", h.Delete)
	r.POST("/admin/members/toggle-status/:id", h.ToggleStatus)
	r.POST("/admin/members/renew/:id", h.Renew)
	return r
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)
	return w
}

func TestJoinSubmit(t *testing.T) {
	t.Run("redirects to the member's payment page", func(t *testing.T) {
		svc := new(MockService)
		r := setupRouter(NewHandler(svc, nil))

		svc.On("Join", mock.Anything, mock.MatchedBy(func(req JoinRequest) bool {
			return req.Name == "Asha Rao" && req.Plan == PlanYearly
		})).Return(&Member{ID: 42, Plan: PlanYearly}, nil)

		w := postForm(r, "/join", url.Values{
			"name":  {"Asha Rao"},
			"phone": {"555-0101"},
			"email": {"asha@example.com"},
			"plan":  {PlanYearly},
			"batch": {"Morning (6AM-10AM)"},
		})

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/payment/42", w.Header().Get("Location"))
	})

	t.Run("incomplete form still registers the member", func(t *testing.T) {
		svc := new(MockService)
		r := setupRouter(NewHandler(svc, nil))

		svc.On("Join", mock.Anything, mock.MatchedBy(func(req JoinRequest) bool {
			return req.Name == "No Phone" && req.Phone == "" && req.Plan == PlanMonthly
		})).Return(&Member{ID: 7, Plan: PlanMonthly}, nil)

		w := postForm(r, "/join", url.Values{
			"name":  {"No Phone"},
			"email": {"nophone@example.com"},
			"plan":  {PlanMonthly},
		})

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/payment/7", w.Header().Get("Location"))
		svc.AssertExpectations(t)
	})

	t.Run("storage failure bounces back with an error notice", func(t *testing.T) {
		svc := new(MockService)
		r := setupRouter(NewHandler(svc, nil))

		svc.On("Join", mock.Anything, mock.Anything).Return(nil, assert.AnError)

		w := postForm(r, "/join", url.Values{
			"name": {"Asha"}, "phone": {"1"}, "email": {"a@b.c"}, "plan": {PlanMonthly},
		})

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/join", w.Header().Get("Location"))
		assert.Contains(t, w.Header().Get("Set-Cookie"), "flash_error")
	})
}

func TestUpdateHandler(t *testing.T) {
	t.Run("success redirects with a notice", func(t *testing.T) {
		svc := new(MockService)
		r := setupRouter(NewHandler(svc, nil))

		svc.On("Update", mock.Anything, mock.MatchedBy(func(req EditRequest) bool {
			return req.ID == 5 && req.Plan == PlanYearly
		})).Return(&Member{ID: 5}, nil)

		w := postForm(r, "/admin/members/update", url.Values{
			"id":            {"5"},
			"name":          {"Asha"},
			"plan":          {PlanYearly},
			"paymentStatus": {PaymentPaid},
			"active":        {"true"},
		})

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/admin/members", w.Header().Get("Location"))
		assert.Contains(t, w.Header().Get("Set-Cookie"), "flash_success")
	})

	t.Run("unknown member flashes an error", func(t *testing.T) {
		svc := new(MockService)
		r := setupRouter(NewHandler(svc, nil))

		svc.On("Update", mock.Anything, mock.Anything).Return(nil, ErrMemberNotFound)

		w := postForm(r, "/admin/members/update", url.Values{
			"id": {"99"}, "name": {"Ghost"}, "plan": {PlanMonthly}, "paymentStatus": {PaymentPending},
		})

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Contains(t, w.Header().Get("Set-Cookie"), "flash_error")
	})
}

func TestDeleteHandler_BadID(t *testing.T) {
	svc := new(MockService)
	r := setupRouter(NewHandler(svc, nil))

	w := postForm(r, "/admin/members/delete/abc", nil)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin/members", w.Header().Get("Location"))
	svc.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestToggleStatusHandler(t *testing.T) {
	svc := new(MockService)
	r := setupRouter(NewHandler(svc, nil))

	svc.On("ToggleStatus", mock.Anything, 3).Return(&Member{ID: 3, Active: false}, nil)

	w := postForm(r, "/admin/members/toggle-status/3", nil)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	setCookie := w.Header().Get("Set-Cookie")
	assert.Contains(t, setCookie, "flash_success")
	assert.Contains(t, setCookie, url.QueryEscape("Member status changed to Inactive"))
}

func TestRenewHandler(t *testing.T) {
	t.Run("success mentions the new expiry date", func(t *testing.T) {
		svc := new(MockService)
		r := setupRouter(NewHandler(svc, nil))

		expiry := date(2025, 2, 11)
		svc.On("Renew", mock.Anything, 1, PlanMonthly).
			Return(&Member{ID: 1, Plan: PlanMonthly, Active: true, ExpiryDate: &expiry}, nil)

		w := postForm(r, "/admin/members/renew/1", url.Values{"plan": {PlanMonthly}})

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Contains(t, w.Header().Get("Set-Cookie"), url.QueryEscape("Expires on 2025-02-11"))
	})

	t.Run("missing plan flashes an error", func(t *testing.T) {
		svc := new(MockService)
		r := setupRouter(NewHandler(svc, nil))

		svc.On("Renew", mock.Anything, 1, "").Return(nil, ErrPlanRequired)

		w := postForm(r, "/admin/members/renew/1", url.Values{})

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Contains(t, w.Header().Get("Set-Cookie"), "flash_error")
	})
}
