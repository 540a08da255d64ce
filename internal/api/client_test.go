package api_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/staffihq/staffi-go/internal/api"
	"github.com/staffihq/staffi-go/internal/domain"
	"github.com/staffihq/staffi-go/internal/domain/domaintest"
	"github.com/staffihq/staffi-go/internal/session"
	"github.com/staffihq/staffi-go/internal/transport"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		// http.Transport keeps idle connections with background readers.
		goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
	)
}

func makeToken(t *testing.T, exp time.Time) string {
	t.Helper()
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256"}`))
	body, err := json.Marshal(map[string]any{"exp": exp.Unix()})
	require.NoError(t, err)
	return header + "." + base64.RawURLEncoding.EncodeToString(body) + ".c2ln"
}

// newClient wires a client against srv with a bare bearer+status transport,
// so tests exercise the services without the navigation stages.
func newClient(t *testing.T, srv *httptest.Server) (*api.Client, *session.Session) {
	t.Helper()
	t.Cleanup(srv.Client().CloseIdleConnections)

	store := session.NewMemStore()
	clock := domaintest.NewFakeClock(time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))
	sess := session.New(store, clock)

	handler := transport.Chain(
		transport.HTTPHandler(srv.Client()),
		transport.StatusCheck(),
		transport.BearerAuth(sess),
	)
	return api.NewClient(srv.URL+"/api", handler, sess), sess
}

func TestAuthServiceLoginPersistsSession(t *testing.T) {
	token := makeToken(t, time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/login", r.URL.Path)

		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "anna@staffi.hu", creds["email"])
		assert.Equal(t, "s3cret", creds["password"])

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id": 7, "firstName": "Anna", "lastName": "Kovacs",
			"email": "anna@staffi.hu", "role": "HR",
			"token": token, "isActive": true,
		})
	}))
	defer srv.Close()

	c, sess := newClient(t, srv)

	resp, err := c.Auth.Login(context.Background(), "anna@staffi.hu", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleHR, resp.Role)

	assert.True(t, sess.IsAuthenticated())
	assert.Equal(t, token, sess.Token())
	profile, ok := sess.Profile()
	require.True(t, ok)
	assert.Equal(t, int64(7), profile.ID)
	assert.Equal(t, "anna@staffi.hu", profile.Email)
}

func TestAuthServiceLoginFailureLeavesSessionEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Invalid email or password"})
	}))
	defer srv.Close()

	c, sess := newClient(t, srv)

	_, err := c.Auth.Login(context.Background(), "anna@staffi.hu", "wrong")
	require.Error(t, err)

	apiErr := transport.AsAPIError(err)
	require.NotNil(t, apiErr)
	assert.Equal(t, "Invalid email or password", apiErr.Message)
	assert.False(t, sess.IsAuthenticated())
}

func TestAuthServiceChangePasswordAcceptsTextBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/auth/change-password", r.URL.Path)
		w.Write([]byte("Password changed successfully"))
	}))
	defer srv.Close()

	c, _ := newClient(t, srv)
	require.NoError(t, c.Auth.ChangePassword(context.Background(), "old", "new"))
}

func TestEmployeeServiceSendsBearerToken(t *testing.T) {
	token := makeToken(t, time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer "+token, r.Header.Get("Authorization"))
		require.Equal(t, "/api/employees", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":1,"firstName":"Bela","lastName":"Nagy","email":"bela@staffi.hu"}]`))
	}))
	defer srv.Close()

	c, sess := newClient(t, srv)
	require.NoError(t, sess.Login(token, &session.UserProfile{ID: 1, Role: domain.RoleAdmin}))

	employees, err := c.Employees.List(context.Background())
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, "Bela", employees[0].FirstName)
}

func TestUserServiceListFilters(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "EMPLOYEE", q.Get("role"))
		assert.Equal(t, "true", q.Get("isActive"))
		assert.Equal(t, "nagy", q.Get("search"))
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c, _ := newClient(t, srv)

	active := true
	_, err := c.Users.List(context.Background(), api.UserFilter{
		Role:     domain.RoleEmployee,
		IsActive: &active,
		Search:   "nagy",
	})
	require.NoError(t, err)
}

func TestUserServiceAdminAndHRUsers(t *testing.T) {
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		switch r.URL.Query().Get("role") {
		case "ADMIN":
			w.Write([]byte(`[{"id":1,"email":"root@staffi.hu","role":"ADMIN","isActive":true}]`))
		case "HR":
			w.Write([]byte(`[{"id":2,"email":"hr@staffi.hu","role":"HR","isActive":true}]`))
		default:
			t.Errorf("unexpected role filter %q", r.URL.Query().Get("role"))
		}
	}))
	defer srv.Close()

	c, _ := newClient(t, srv)

	users, err := c.Users.AdminAndHRUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, domain.RoleAdmin, users[0].Role)
	assert.Equal(t, domain.RoleHR, users[1].Role)
}

func TestUserServiceAdminAndHRUsersPropagatesFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("role") == "HR" {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"message": "boom"})
			return
		}
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c, _ := newClient(t, srv)

	_, err := c.Users.AdminAndHRUsers(context.Background())
	require.Error(t, err)
	require.NotNil(t, transport.AsAPIError(err))
}

func TestContractServiceDownloadPDF(t *testing.T) {
	pdf := []byte("%PDF-1.7 fake")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/contracts/42/pdf", r.URL.Path)
		w.Header().Set("Content-Type", "application/pdf")
		w.Write(pdf)
	}))
	defer srv.Close()

	c, _ := newClient(t, srv)

	data, err := c.Contracts.DownloadPDF(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, pdf, data)
}

func TestAdvanceServiceReview(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/advances/9/review", r.URL.Path)

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "REJECTED", req["status"])
		assert.Equal(t, "insufficient tenure", req["rejectionReason"])

		w.Write([]byte(`{"id":9,"status":"REJECTED","rejectionReason":"insufficient tenure"}`))
	}))
	defer srv.Close()

	c, _ := newClient(t, srv)

	out, err := c.Advances.Review(context.Background(), 9, &api.ReviewRequest{
		Status:          api.AdvanceRejected,
		RejectionReason: "insufficient tenure",
	})
	require.NoError(t, err)
	assert.Equal(t, api.AdvanceRejected, out.Status)
}

func TestDashboardServiceStats(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/dashboard/stats", r.URL.Path)
		w.Write([]byte(`{"totalEmployees":120,"activeEmployees":110,"occupiedRooms":30}`))
	}))
	defer srv.Close()

	c, _ := newClient(t, srv)

	stats, err := c.Dashboard.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(120), stats.TotalEmployees)
	assert.Equal(t, int64(30), stats.OccupiedRooms)
}

func TestClientErrorCarriesStatusAndMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "Employee not found"})
	}))
	defer srv.Close()

	c, _ := newClient(t, srv)

	_, err := c.Employees.Get(context.Background(), 999)
	require.Error(t, err)

	apiErr := transport.AsAPIError(err)
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Employee not found", apiErr.Message)
}
