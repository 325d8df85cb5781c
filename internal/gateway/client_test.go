package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ahmadalarjah/crypto-admin/internal/domain"
)

type memStore struct {
	sess *domain.Session
}

func (m *memStore) Load(ctx context.Context) (domain.Session, error) {
	if m.sess == nil {
		return domain.Session{}, domain.ErrNoSession
	}
	return *m.sess, nil
}

func (m *memStore) Save(ctx context.Context, sess domain.Session) error {
	m.sess = &sess
	return nil
}

func (m *memStore) Clear(ctx context.Context) error {
	m.sess = nil
	return nil
}

type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Auth   string
	Body   []byte
}

func newBackend(t *testing.T, status int, body string) (*httptest.Server, *recordedRequest) {
	t.Helper()
	recorded := &recordedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recorded.Method = r.Method
		recorded.Path = r.URL.Path
		recorded.Query = r.URL.RawQuery
		recorded.Auth = r.Header.Get("Authorization")
		recorded.Body, _ = io.ReadAll(r.Body)
		w.WriteHeader(status)
		if body != "" {
			w.Write([]byte(body))
		}
	}))
	t.Cleanup(srv.Close)
	return srv, recorded
}

func TestClientAttachesBearerToken(t *testing.T) {
	srv, recorded := newBackend(t, http.StatusOK, `[]`)
	store := &memStore{sess: &domain.Session{
		Identity: domain.Identity{ID: 1, Username: "ops", Role: "ADMIN"},
		Token:    "abc",
	}}
	client := NewClient(srv.URL, WithSessionStore(store))

	if _, err := client.Plans(context.Background()); err != nil {
		t.Fatalf("plans: %v", err)
	}
	if recorded.Auth != "Bearer abc" {
		t.Fatalf("expected Authorization %q, got %q", "Bearer abc", recorded.Auth)
	}
}

func TestClientOmitsAuthHeaderWithoutSession(t *testing.T) {
	srv, recorded := newBackend(t, http.StatusOK, `[]`)
	client := NewClient(srv.URL, WithSessionStore(&memStore{}))

	if _, err := client.Plans(context.Background()); err != nil {
		t.Fatalf("plans: %v", err)
	}
	if recorded.Auth != "" {
		t.Fatalf("expected no Authorization header, got %q", recorded.Auth)
	}
}

func TestClientBuildsQueryStrings(t *testing.T) {
	srv, recorded := newBackend(t, http.StatusOK, `[]`)
	client := NewClient(srv.URL)
	ctx := context.Background()

	if _, err := client.Deposits(ctx, "PENDING"); err != nil {
		t.Fatalf("deposits: %v", err)
	}
	if recorded.Path != "/api/admin/deposits" || recorded.Query != "status=PENDING" {
		t.Fatalf("unexpected request %s?%s", recorded.Path, recorded.Query)
	}

	if _, err := client.Users(ctx, 3); err != nil {
		t.Fatalf("users: %v", err)
	}
	if recorded.Path != "/api/admin/users" || recorded.Query != "planId=3" {
		t.Fatalf("unexpected request %s?%s", recorded.Path, recorded.Query)
	}

	if _, err := client.Users(ctx, 0); err != nil {
		t.Fatalf("users without plan: %v", err)
	}
	if recorded.Query != "" {
		t.Fatalf("expected no query, got %q", recorded.Query)
	}
}

func TestClientSerializesBodies(t *testing.T) {
	srv, recorded := newBackend(t, http.StatusOK, `{}`)
	client := NewClient(srv.URL)

	_, err := client.RejectWithdrawal(context.Background(), 9, "insufficient balance")
	if err != nil {
		t.Fatalf("reject withdrawal: %v", err)
	}
	if recorded.Method != http.MethodPost || recorded.Path != "/api/admin/withdrawals/9/reject" {
		t.Fatalf("unexpected request %s %s", recorded.Method, recorded.Path)
	}
	var body map[string]any
	if err := json.Unmarshal(recorded.Body, &body); err != nil {
		t.Fatalf("decode sent body: %v", err)
	}
	if body["reason"] != "insufficient balance" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestClientEmptyResponseIsEmptyObject(t *testing.T) {
	srv, _ := newBackend(t, http.StatusOK, "")
	client := NewClient(srv.URL)

	value, err := client.ApproveDeposit(context.Background(), 5)
	if err != nil {
		t.Fatalf("approve deposit: %v", err)
	}
	if obj, ok := value.(map[string]any); !ok || len(obj) != 0 {
		t.Fatalf("expected empty object, got %v", value)
	}
}

func TestClientSurfacesBackendError(t *testing.T) {
	srv, _ := newBackend(t, http.StatusNotFound, `{"error":"not found"}`)
	client := NewClient(srv.URL)

	_, err := client.UserDetails(context.Background(), 404)
	var backendErr *domain.BackendError
	if !errors.As(err, &backendErr) {
		t.Fatalf("expected BackendError, got %v", err)
	}
	if backendErr.Status != http.StatusNotFound || backendErr.Message != "not found" {
		t.Fatalf("unexpected error: status %d message %q", backendErr.Status, backendErr.Message)
	}
}

func TestClientLoginDecodesResult(t *testing.T) {
	srv, recorded := newBackend(t, http.StatusOK,
		`{"userId":42,"username":"ops","role":"ADMIN","token":"tok-1"}`)
	client := NewClient(srv.URL)

	result, err := client.Login(context.Background(), "+15550001111", "hunter2")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if recorded.Path != "/api/auth/login" || recorded.Method != http.MethodPost {
		t.Fatalf("unexpected request %s %s", recorded.Method, recorded.Path)
	}
	var sent map[string]any
	if err := json.Unmarshal(recorded.Body, &sent); err != nil {
		t.Fatalf("decode sent body: %v", err)
	}
	if sent["phoneNumber"] != "+15550001111" || sent["password"] != "hunter2" {
		t.Fatalf("unexpected credentials payload: %v", sent)
	}
	want := LoginResult{UserID: 42, Username: "ops", Role: "ADMIN", Token: "tok-1"}
	if result != want {
		t.Fatalf("expected %+v, got %+v", want, result)
	}
}
