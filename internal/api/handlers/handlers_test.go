package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lionfit/gym-management-backend/internal/api/middleware"
	"github.com/lionfit/gym-management-backend/internal/config"
	"github.com/lionfit/gym-management-backend/internal/db"
	"github.com/lionfit/gym-management-backend/internal/models"
	"github.com/lionfit/gym-management-backend/internal/repository"
	"github.com/lionfit/gym-management-backend/internal/service"
)

func newTestRouter(t *testing.T) (*gin.Engine, *service.Services) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	memDB, err := db.NewMemoryDB()
	require.NoError(t, err)
	t.Cleanup(func() { memDB.Close() })

	cfg := &config.Config{
		JWTSecret:            "test-secret",
		JWTExpiry:            1,
		AdminUsername:        "admin",
		AdminPassword:        "admin",
		RenewalExtensionDays: 30,
		TrialPeriodDays:      7,
	}

	store := repository.NewStore(memDB)
	services := service.NewServices(&service.ServiceDeps{
		Config: cfg,
		Store:  store,
	})
	h := NewHandlers(services)

	r := gin.New()
	api := r.Group("/api")
	api.POST("/auth/login", h.Auth.Login)

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(services.Auth))
	{
		protected.GET("/members", h.Member.List)
		protected.POST("/members", h.Member.Register)
		protected.GET("/members/code/:code", h.Member.GetByCode)
		protected.GET("/members/:id", h.Member.Get)
		protected.PUT("/members/:id", h.Member.Update)
		protected.DELETE("/members/:id", h.Member.Delete)
		protected.GET("/members/:id/payments", h.Payment.ListForMember)

		protected.GET("/subscriptions", h.Subscription.List)
		protected.POST("/subscriptions", h.Subscription.Create)

		protected.GET("/payments", h.Payment.List)
		protected.POST("/payments", h.Payment.Record)
		protected.DELETE("/payments/:id", h.Payment.Delete)

		protected.GET("/stats", h.Stats.Get)
		protected.GET("/reports/summary", h.Report.Summary)
	}

	return r, services
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r *gin.Engine) string {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", models.LoginRequest{
		Username: "admin",
		Password: "admin",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func TestLoginEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	token := login(t, r)
	assert.NotEmpty(t, token)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", models.LoginRequest{
		Username: "admin",
		Password: "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/members", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/members", "bogus-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMemberRegisterAndList(t *testing.T) {
	r, _ := newTestRouter(t)
	token := login(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/members", token, models.RegisterMemberRequest{
		Name:    "Bruno Silva",
		Contact: "555-0100",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.MemberResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)
	assert.Len(t, created.Code, 6)
	assert.True(t, created.IsActive)

	w = doJSON(t, r, http.MethodPost, "/api/members", token, models.RegisterMemberRequest{
		Name:    "Ana Costa",
		Contact: "555-0101",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/members", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list []models.MemberResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, "Ana Costa", list[0].Name)
	assert.Equal(t, "Bruno Silva", list[1].Name)
}

func TestMemberRegisterValidation(t *testing.T) {
	r, _ := newTestRouter(t)
	token := login(t, r)

	// Single-character name fails request binding.
	w := doJSON(t, r, http.MethodPost, "/api/members", token, models.RegisterMemberRequest{
		Name:    "A",
		Contact: "555-0100",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/members", token, models.RegisterMemberRequest{
		Name: "Ana Costa",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMemberGetMissing(t *testing.T) {
	r, _ := newTestRouter(t)
	token := login(t, r)

	w := doJSON(t, r, http.MethodGet, "/api/members/404", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/members/code/NOPE00", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMemberLookupByCode(t *testing.T) {
	r, _ := newTestRouter(t)
	token := login(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/members", token, models.RegisterMemberRequest{
		Name:    "Ana Costa",
		Contact: "555-0100",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.MemberResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, r, http.MethodGet, "/api/members/code/"+created.Code, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var found models.MemberResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &found))
	assert.Equal(t, created.ID, found.ID)
}

func TestRecordPaymentExtendsMember(t *testing.T) {
	r, _ := newTestRouter(t)
	token := login(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/members", token, models.RegisterMemberRequest{
		Name:    "Ana Costa",
		Contact: "555-0100",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var member models.MemberResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &member))
	endBefore := member.EndDate

	w = doJSON(t, r, http.MethodPost, "/api/payments", token, map[string]interface{}{
		"memberId": member.ID,
		"amount":   "39.90",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var payment models.PaymentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payment))
	assert.NotZero(t, payment.ID)
	assert.NotZero(t, payment.Date)

	w = doJSON(t, r, http.MethodGet, "/api/members/"+itoa(member.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &member))

	const thirtyDays = int64(30 * 24 * 60 * 60 * 1000)
	assert.Equal(t, endBefore+thirtyDays, member.EndDate)

	w = doJSON(t, r, http.MethodGet, "/api/members/"+itoa(member.ID)+"/payments", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var history []models.PaymentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &history))
	assert.Len(t, history, 1)
}

func TestStatsEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)
	token := login(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/members", token, models.RegisterMemberRequest{
		Name:    "Ana Costa",
		Contact: "555-0100",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/stats", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Contains(t, stats, "totalMembers")
	assert.Contains(t, stats, "activeMembers")
	assert.Contains(t, stats, "inactiveMembers")
	assert.Contains(t, stats, "expiredSubscriptions")
	assert.Contains(t, stats, "monthlyRevenue")
	assert.Contains(t, stats, "averageAdhesion")
	assert.Equal(t, "1", string(stats["totalMembers"]))
}

func TestSummaryReportEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)
	token := login(t, r)

	w := doJSON(t, r, http.MethodGet, "/api/reports/summary", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))
}

func TestSubscriptionEndpoints(t *testing.T) {
	r, _ := newTestRouter(t)
	token := login(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/subscriptions", token, map[string]interface{}{
		"type":        "Monthly",
		"description": "Month to month",
		"price":       "39.90",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.SubscriptionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)

	w = doJSON(t, r, http.MethodGet, "/api/subscriptions", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list []models.SubscriptionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 1)
}

func TestDeletePaymentEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)
	token := login(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/payments", token, map[string]interface{}{
		"memberId": 404,
		"amount":   "10.00",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var payment models.PaymentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payment))

	w = doJSON(t, r, http.MethodDelete, "/api/payments/"+itoa(payment.ID), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/payments", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var payments []models.PaymentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payments))
	assert.Empty(t, payments)
}
