package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"quickgigs/internal/adapter/http/handlers"
	"quickgigs/internal/adapter/http/handlers/mocks"
	"quickgigs/internal/domain/entities"
	"quickgigs/internal/infrastructure/auth"
	"quickgigs/internal/infrastructure/metrics"
	"quickgigs/internal/infrastructure/ratelimit"
	"quickgigs/internal/usecase"
	"quickgigs/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	router       *gin.Engine
	gigs         *mocks.MockIGigUseCase
	applications *mocks.MockIApplicationUseCase
	featuring    *mocks.MockIFeaturingUseCase
	tokens       *auth.TokenService
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	f := fixture{
		gigs:         mocks.NewMockIGigUseCase(ctrl),
		applications: mocks.NewMockIApplicationUseCase(ctrl),
		featuring:    mocks.NewMockIFeaturingUseCase(ctrl),
		tokens:       auth.NewTokenService("test-secret", 0),
	}
	f.router = NewRouter(Dependencies{
		Gigs:         handlers.NewGigHandler(f.gigs),
		Applications: handlers.NewApplicationHandler(f.applications),
		Payments:     handlers.NewPaymentHandler(f.featuring),
		Tokens:       f.tokens,
		Callbacks:    f.tokens,
		Limiter:      ratelimit.NewLocalLimiter(1, 1),
		Metrics:      metrics.New(),
	})
	return f
}

func (f fixture) do(t *testing.T, method, path, userID, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		token, err := f.tokens.GenerateToken(userID)
		if err != nil {
			t.Fatalf("generate token: %v", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestRouter_Ping(t *testing.T) {
	f := newFixture(t)
	if w := f.do(t, http.MethodGet, "/v1/ping", "", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestRouter_MutationsRequireAuth(t *testing.T) {
	f := newFixture(t)
	paths := []struct{ method, path string }{
		{http.MethodPost, "/v1/gigs"},
		{http.MethodPut, "/v1/gigs/g1"},
		{http.MethodDelete, "/v1/gigs/g1"},
		{http.MethodPatch, "/v1/gigs/g1/toggle"},
		{http.MethodPost, "/v1/gigs/g1/applications"},
		{http.MethodGet, "/v1/applications/mine"},
		{http.MethodPost, "/v1/payments/featured/g1"},
		{http.MethodGet, "/v1/payments/history"},
	}
	for _, p := range paths {
		if w := f.do(t, p.method, p.path, "", ""); w.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401, got %d", p.method, p.path, w.Code)
		}
	}
}

func TestRouter_PublicListingAndAuthenticatedCaller(t *testing.T) {
	f := newFixture(t)
	f.gigs.EXPECT().List(gomock.Any(), gomock.Any()).Return(usecase.GigListResult{Page: 1, PageSize: 12}, nil)
	f.applications.EXPECT().ListMine(gomock.Any(), "free-1").Return([]entities.Application{}, nil)

	if w := f.do(t, http.MethodGet, "/v1/gigs", "", ""); w.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", w.Code)
	}
	if w := f.do(t, http.MethodGet, "/v1/applications/mine", "free-1", ""); w.Code != http.StatusOK {
		t.Fatalf("mine: expected 200, got %d", w.Code)
	}
}

func TestRouter_WebhookSkipsAuth(t *testing.T) {
	f := newFixture(t)
	f.featuring.EXPECT().HandleWebhook(gomock.Any(), gomock.Any()).Return(usecase.WebhookResult{EventID: "evt_1"}, nil)

	if w := f.do(t, http.MethodPost, "/v1/payments/webhook", "", `{"id":"evt_1"}`); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestRouter_FeaturingIsRateLimited(t *testing.T) {
	f := newFixture(t)
	f.featuring.EXPECT().RequestFeaturing(gomock.Any(), "emp-1", "g1").
		Return(usecase.FeaturingResult{Payment: entities.Payment{ID: "p1"}, RedirectURL: "https://checkout.example"}, nil)

	if w := f.do(t, http.MethodPost, "/v1/payments/featured/g1", "emp-1", ""); w.Code != http.StatusCreated {
		t.Fatalf("first: expected 201, got %d", w.Code)
	}
	if w := f.do(t, http.MethodPost, "/v1/payments/featured/g1", "emp-1", ""); w.Code != http.StatusTooManyRequests {
		t.Fatalf("second: expected 429, got %d", w.Code)
	}
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	f := newFixture(t)
	f.do(t, http.MethodGet, "/v1/ping", "", "")

	w := f.do(t, http.MethodGet, "/metrics", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `quickgigs_http_requests_total{method="GET",route="/v1/ping",status="200"} 1`) {
		t.Fatalf("ping request not counted:\n%s", w.Body.String())
	}
}

func TestRouter_CheckoutReturnAuthenticatesByState(t *testing.T) {
	f := newFixture(t)
	state, err := f.tokens.SignCallback("emp-1", "g1", time.Hour)
	if err != nil {
		t.Fatalf("sign callback: %v", err)
	}
	f.featuring.EXPECT().ConfirmSuccess(gomock.Any(), "emp-1", "g1", interfaces.SessionLookup{SessionID: "cs_1"}).
		Return(usecase.ReconcileResult{Payment: entities.Payment{ID: "p1"}, Applied: true, Outcome: usecase.OutcomeCompleted}, nil)
	f.featuring.EXPECT().ConfirmCancel(gomock.Any(), "emp-1", "g1", "cs_1").
		Return(usecase.ReconcileResult{Outcome: usecase.OutcomeNoop}, nil)

	// Redirects arrive without an Authorization header.
	if w := f.do(t, http.MethodGet, "/v1/payments/success/g1?state="+state+"&session_id=cs_1", "", ""); w.Code != http.StatusOK {
		t.Fatalf("success: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if w := f.do(t, http.MethodGet, "/v1/payments/cancel/g1?state="+state+"&session_id=cs_1", "", ""); w.Code != http.StatusOK {
		t.Fatalf("cancel: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	for _, path := range []string{
		"/v1/payments/success/g1?session_id=cs_1",
		"/v1/payments/success/g2?state=" + state + "&session_id=cs_1",
		"/v1/payments/cancel/g1?state=forged&session_id=cs_1",
	} {
		if w := f.do(t, http.MethodGet, path, "", ""); w.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", path, w.Code)
		}
	}
}

func TestRouter_CallbackStateIsNotABearerToken(t *testing.T) {
	f := newFixture(t)
	state, err := f.tokens.SignCallback("emp-1", "g1", time.Hour)
	if err != nil {
		t.Fatalf("sign callback: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/v1/payments/history", nil)
	req.Header.Set("Authorization", "Bearer "+state)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
