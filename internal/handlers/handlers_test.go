package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lokaclean/backoffice/internal/handlers"
	"github.com/lokaclean/backoffice/internal/live"
	"github.com/lokaclean/backoffice/internal/router"
	"github.com/lokaclean/backoffice/internal/security"
	"github.com/lokaclean/backoffice/internal/session"
	"github.com/lokaclean/backoffice/internal/upstream"
)

// fakeCore is a scriptable stand-in for the core LokaClean API.
type fakeCore struct {
	mux        *http.ServeMux
	lastLogin  map[string]string
	ordersCode int
	ordersBody string
}

func newFakeCore() *fakeCore {
	f := &fakeCore{
		mux:        http.NewServeMux(),
		lastLogin:  map[string]string{},
		ordersCode: http.StatusOK,
		ordersBody: `{"status":200,"message":"success","data":{"items":[
			{"id":"o1","status":"PENDING","total_price":150000,"address":"Jl. Melati 1","notes":"",
			 "user":{"id":"u1","name":"Rina","phone":"+628123456789","role":"USER"},
			 "package":{"id":"p1","name":"Deep Clean","price":150000,"duration_hours":3},
			 "created_at":"2026-03-01T10:00:00+07:00","updated_at":"2026-03-01T10:00:00+07:00"},
			{"id":"o2","status":"COMPLETED","total_price":90000,"address":"Jl. Kenanga 2","notes":"",
			 "user":{"id":"u2","name":"Sari","phone":"+628129999999","role":"USER"},
			 "package":{"id":"p2","name":"Regular","price":90000,"duration_hours":2},
			 "payment":{"id":"pay2","status":"PAID","method":"transfer","amount":90000},
			 "created_at":"2026-03-02T09:00:00+07:00","updated_at":"2026-03-02T09:00:00+07:00"}
		]}}`,
	}

	f.mux.HandleFunc("POST /api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		_ = json.NewDecoder(r.Body).Decode(&req)
		f.lastLogin = req
		role := "ADMIN"
		if req["password"] == "customer-pass" {
			role = "USER"
		}
		fmt.Fprintf(w, `{"status":200,"message":"success","data":{
			"token":"core-token",
			"user":{"id":"u0","name":"Op","phone":%q,"role":%q}}}`, req["phone"], role)
	})
	f.mux.HandleFunc("GET /api/v1/orders", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer core-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(f.ordersCode)
		if f.ordersCode == http.StatusOK {
			w.Write([]byte(f.ordersBody))
		}
	})
	return f
}

type gateway struct {
	srv *httptest.Server
}

func newGateway(t *testing.T) (*gateway, *fakeCore) {
	t.Helper()
	core := newFakeCore()
	coreSrv := httptest.NewServer(core.mux)
	t.Cleanup(coreSrv.Close)

	sessions := session.NewManager(session.NewMemoryStore())
	jwtm := security.NewJWTManager("test-secret", time.Hour)
	feed := live.NewFeed()
	logger := zap.NewNop()

	h := handlers.New(
		upstream.New(coreSrv.URL, 2*time.Second),
		sessions, jwtm, feed,
		time.FixedZone("WIB", 7*3600), "62", logger,
	)
	engine := router.New(router.Dependencies{
		Handlers:    h,
		JWT:         jwtm,
		Sessions:    sessions,
		CORSOrigins: []string{"*"},
		Logger:      logger,
	})

	srv := httptest.NewServer(engine)
	t.Cleanup(srv.Close)
	return &gateway{srv: srv}, core
}

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (g *gateway) request(t *testing.T, method, path, token string, body any) (int, envelope) {
	t.Helper()
	var rd *bytes.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(buf)
	} else {
		rd = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, g.srv.URL+path, rd)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func (g *gateway) login(t *testing.T, phone, password string) string {
	t.Helper()
	code, env := g.request(t, http.MethodPost, "/api/v1/auth/login", "",
		map[string]string{"phone": phone, "password": password})
	require.Equal(t, http.StatusOK, code, "login failed: %s", env.Message)

	var data struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.AccessToken)
	return data.AccessToken
}

func TestLoginNormalizesPhoneBeforeForwarding(t *testing.T) {
	g, core := newGateway(t)

	g.login(t, "0812 3456 789", "admin-pass")
	assert.Equal(t, "+628123456789", core.lastLogin["phone"])
}

func TestLoginRejectsUnnormalizablePhone(t *testing.T) {
	g, _ := newGateway(t)

	code, env := g.request(t, http.MethodPost, "/api/v1/auth/login", "",
		map[string]string{"phone": "abc", "password": "x"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, env.Message, "phone")
}

func TestListOrdersShapesVisiblePage(t *testing.T) {
	g, _ := newGateway(t)
	token := g.login(t, "0811111111", "admin-pass")

	code, env := g.request(t, http.MethodGet,
		"/api/v1/admin/orders?status=completed&payment_status=PAID&page=1&limit=10", token, nil)
	require.Equal(t, http.StatusOK, code)

	var page struct {
		Items []struct {
			ID string `json:"id"`
		} `json:"items"`
		Total      int `json:"total"`
		TotalPages int `json:"total_pages"`
		Page       int `json:"page"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &page))
	require.Len(t, page.Items, 1)
	assert.Equal(t, "o2", page.Items[0].ID)
	assert.Equal(t, 1, page.Total)
	assert.Equal(t, 1, page.TotalPages)
}

func TestUpstream401TearsDownSession(t *testing.T) {
	g, core := newGateway(t)
	token := g.login(t, "0811111111", "admin-pass")

	// core starts rejecting the stored token
	core.ordersCode = http.StatusUnauthorized

	code, env := g.request(t, http.MethodGet, "/api/v1/admin/orders", token, nil)
	require.Equal(t, http.StatusUnauthorized, code)

	var data struct {
		Login string `json:"login"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "/admin/login", data.Login)

	// the middleware now refuses the token outright: the session is gone
	code, _ = g.request(t, http.MethodGet, "/api/v1/theme", token, nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestAdminGroupRejectsCustomers(t *testing.T) {
	g, _ := newGateway(t)
	token := g.login(t, "0811111111", "customer-pass")

	code, _ := g.request(t, http.MethodGet, "/api/v1/admin/orders", token, nil)
	assert.Equal(t, http.StatusForbidden, code)
}

func TestThemeUsageFlow(t *testing.T) {
	g, _ := newGateway(t)
	token := g.login(t, "0811111111", "customer-pass")

	code, env := g.request(t, http.MethodPost, "/api/v1/theme/usage", token, nil)
	require.Equal(t, http.StatusOK, code)

	var data struct {
		Samples    int    `json:"samples"`
		Suggestion string `json:"suggestion"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, 1, data.Samples)
}
