package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"dreambody/internal/account"
	"dreambody/internal/domain"
	"dreambody/internal/http/handlers"
	"dreambody/internal/store"
)

type stubAdvisor struct {
	advice string
	query  string
	ctx    string
}

func (s *stubAdvisor) Advise(ctx context.Context, query, userContext string) (string, error) {
	s.query = query
	s.ctx = userContext
	return s.advice, nil
}

func newTestServer(t *testing.T) (*httptest.Server, *handlers.App, *stubAdvisor) {
	t.Helper()
	advisor := &stubAdvisor{advice: "Train hard, rest harder."}
	app := handlers.NewApp(store.New(store.NewMemKV()), advisor, zerolog.Nop())
	srv := httptest.NewServer(NewRouter(app, Options{}, zerolog.Nop()))
	t.Cleanup(srv.Close)
	return srv, app, advisor
}

func do(t *testing.T, method, url, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	if err != nil {
		t.Fatalf("NewRequest error: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s error: %v", method, url, err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	return v
}

func TestHealthz(t *testing.T) {
	srv, _, _ := newTestServer(t)
	resp := do(t, http.MethodGet, srv.URL+"/v1/healthz", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if resp.Header.Get("X-Request-ID") == "" {
		t.Fatal("missing X-Request-ID header")
	}
}

func TestUserLifecycleOverHTTP(t *testing.T) {
	srv, _, _ := newTestServer(t)

	resp := do(t, http.MethodPost, srv.URL+"/v1/users", `{"email":"omar@example.com","phone":"0101234567"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d", resp.StatusCode)
	}
	created := decode[domain.User](t, resp)
	if created.ID == "" || created.Name != "New User" {
		t.Fatalf("created = %+v", created)
	}

	resp = do(t, http.MethodGet, srv.URL+"/v1/users/"+created.ID, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get status = %d", resp.StatusCode)
	}

	resp = do(t, http.MethodPost, srv.URL+"/v1/users/"+created.ID+"/wallet", `{"amount":200}`)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("wallet status = %d", resp.StatusCode)
	}
	resp = do(t, http.MethodPost, srv.URL+"/v1/users/"+created.ID+"/weights", `{"weight":82.5}`)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("weights status = %d", resp.StatusCode)
	}

	resp = do(t, http.MethodGet, srv.URL+"/v1/users/"+created.ID, "")
	got := decode[domain.User](t, resp)
	if got.WalletBalance != 200 {
		t.Fatalf("wallet = %v, want 200", got.WalletBalance)
	}
	if len(got.WeightHistory) != 1 || got.CurrentWeight == nil || *got.CurrentWeight != 82.5 {
		t.Fatalf("weight state = %+v / %v", got.WeightHistory, got.CurrentWeight)
	}

	resp = do(t, http.MethodDelete, srv.URL+"/v1/users/"+created.ID, "")
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete status = %d", resp.StatusCode)
	}
	resp = do(t, http.MethodGet, srv.URL+"/v1/users/"+created.ID, "")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("get after delete status = %d", resp.StatusCode)
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	srv, _, _ := newTestServer(t)

	resp := do(t, http.MethodPost, srv.URL+"/v1/users", `{"email":"omar@example.com"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("first create status = %d", resp.StatusCode)
	}
	resp = do(t, http.MethodPost, srv.URL+"/v1/users", `{"email":"OMAR@example.com"}`)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("duplicate status = %d, want 409", resp.StatusCode)
	}
	body := decode[map[string]string](t, resp)
	if body["error"] != "duplicate_email" {
		t.Fatalf("error slug = %q", body["error"])
	}
	if body["message"] != "A user with this Email already exists." {
		t.Fatalf("message = %q", body["message"])
	}
}

func TestLoginSessionLogout(t *testing.T) {
	srv, _, _ := newTestServer(t)
	admin := store.DefaultAdmin()

	resp := do(t, http.MethodPost, srv.URL+"/v1/auth/login",
		`{"identifier":"`+admin.Email+`","password":"`+admin.Password+`"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status = %d", resp.StatusCode)
	}

	resp = do(t, http.MethodGet, srv.URL+"/v1/auth/session", "")
	sess := decode[map[string]*domain.Session](t, resp)
	if sess["session"] == nil || sess["session"].Type != domain.SessionAdmin {
		t.Fatalf("session = %+v, want admin", sess["session"])
	}

	resp = do(t, http.MethodPost, srv.URL+"/v1/auth/logout", "")
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("logout status = %d", resp.StatusCode)
	}
	resp = do(t, http.MethodGet, srv.URL+"/v1/auth/session", "")
	sess = decode[map[string]*domain.Session](t, resp)
	if sess["session"] != nil {
		t.Fatalf("session after logout = %+v, want null", sess["session"])
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	srv, _, _ := newTestServer(t)
	resp := do(t, http.MethodPost, srv.URL+"/v1/auth/login", `{"identifier":"nobody","password":"nope"}`)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
	body := decode[map[string]string](t, resp)
	if body["message"] != "Invalid credentials." {
		t.Fatalf("message = %q", body["message"])
	}
}

func TestPackagesSeededAndReplaceable(t *testing.T) {
	srv, _, _ := newTestServer(t)

	resp := do(t, http.MethodGet, srv.URL+"/v1/packages", "")
	packages := decode[[]domain.PricingPackage](t, resp)
	if len(packages) != 2 {
		t.Fatalf("seeded packages = %d, want 2", len(packages))
	}
	if packages[0].Name != "Monthly Transformation" {
		t.Fatalf("first package = %q", packages[0].Name)
	}

	resp = do(t, http.MethodPut, srv.URL+"/v1/packages",
		`[{"id":"pkg_custom","name":"Summer Shred","price":"750","durationMonths":2,"features":["Workout plan"]}]`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("replace status = %d", resp.StatusCode)
	}
	resp = do(t, http.MethodGet, srv.URL+"/v1/packages", "")
	packages = decode[[]domain.PricingPackage](t, resp)
	if len(packages) != 1 || packages[0].Name != "Summer Shred" {
		t.Fatalf("packages after replace = %+v", packages)
	}
}

func TestPromoRedeemOverHTTP(t *testing.T) {
	srv, app, _ := newTestServer(t)

	u, err := app.Accounts.Create(account.CreateInput{})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	deadline := time.Now().AddDate(0, 0, 7).Format("2006-01-02")

	resp := do(t, http.MethodPost, srv.URL+"/v1/promos",
		`{"code":"WELCOME150","type":"CREDIT","discount":"150 EGP","deadline":"`+deadline+`","maxUsage":10}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create promo status = %d", resp.StatusCode)
	}
	created := decode[domain.PromoCode](t, resp)
	if created.ID == "" {
		t.Fatal("promo id must be minted when absent")
	}

	resp = do(t, http.MethodPost, srv.URL+"/v1/promos/redeem",
		`{"userId":"`+u.ID+`","code":"WELCOME150"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("redeem status = %d", resp.StatusCode)
	}
	result := decode[map[string]any](t, resp)
	if result["success"] != true {
		t.Fatalf("result = %+v, want success", result)
	}
	if result["message"] != "150 EGY added to wallet!" {
		t.Fatalf("message = %v", result["message"])
	}

	got, err := app.Accounts.Get(u.ID)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.WalletBalance != 150 {
		t.Fatalf("wallet = %v, want 150", got.WalletBalance)
	}

	resp = do(t, http.MethodPost, srv.URL+"/v1/promos/usage", `{"code":"WELCOME150"}`)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("usage status = %d", resp.StatusCode)
	}

	resp = do(t, http.MethodDelete, srv.URL+"/v1/promos/"+created.ID, "")
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete promo status = %d", resp.StatusCode)
	}
}

func TestAdminProfileRoundTrip(t *testing.T) {
	srv, _, _ := newTestServer(t)

	resp := do(t, http.MethodGet, srv.URL+"/v1/admin/profile", "")
	profile := decode[domain.AdminProfile](t, resp)
	if profile.ID != store.DefaultAdmin().ID {
		t.Fatalf("profile id = %q", profile.ID)
	}

	profile.Email = "coach@dreambody.com"
	buf, _ := json.Marshal(profile)
	resp = do(t, http.MethodPut, srv.URL+"/v1/admin/profile", string(buf))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update status = %d", resp.StatusCode)
	}
	resp = do(t, http.MethodGet, srv.URL+"/v1/admin/profile", "")
	profile = decode[domain.AdminProfile](t, resp)
	if profile.Email != "coach@dreambody.com" {
		t.Fatalf("email = %q after update", profile.Email)
	}
}

func TestAdviceEndpoint(t *testing.T) {
	srv, app, advisor := newTestServer(t)

	created, err := app.Accounts.Create(account.CreateInput{Email: "sara@example.com"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	resp := do(t, http.MethodPost, srv.URL+"/v1/advice",
		`{"userId":"`+created.ID+`","query":"how much protein?"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	body := decode[map[string]string](t, resp)
	if body["advice"] != "Train hard, rest harder." {
		t.Fatalf("advice = %q", body["advice"])
	}
	if advisor.query != "how much protein?" {
		t.Fatalf("advisor got query %q", advisor.query)
	}
	if !strings.Contains(advisor.ctx, "Name: New User") {
		t.Fatalf("profile context = %q", advisor.ctx)
	}
}

func TestAdviceRejectsBlankQuery(t *testing.T) {
	srv, _, _ := newTestServer(t)
	resp := do(t, http.MethodPost, srv.URL+"/v1/advice", `{"userId":"x","query":"  "}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}
