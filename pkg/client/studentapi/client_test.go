package studentapi

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/school-management/sm-console/api"
)

type memoryTokens struct {
	token string
}

func (m *memoryTokens) Current() string { return m.token }

func (m *memoryTokens) Set(token string) error {
	m.token = token
	return nil
}

func newTestClient(t *testing.T, handler http.HandlerFunc, tokens *memoryTokens) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, time.Second, tokens)
}

func TestLoginStoresToken(t *testing.T) {
	tokens := &memoryTokens{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"username":"admin","password":"secret1"}`, string(body))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"token":"jwt-abc"}`))
	}, tokens)

	token, err := client.Login(context.Background(), "admin", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "jwt-abc", token)
	assert.Equal(t, "jwt-abc", tokens.Current())
}

func TestLoginServerError(t *testing.T) {
	tokens := &memoryTokens{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"status":401,"message":"Invalid credentials"}`))
	}, tokens)

	_, err := client.Login(context.Background(), "admin", "wrong")
	require.Error(t, err)
	assert.Equal(t, "Invalid credentials", ServerMessage(err, "fallback"))
	assert.True(t, IsAuthError(err))
	assert.Empty(t, tokens.Current())
}

func TestServerMessageFallback(t *testing.T) {
	tokens := &memoryTokens{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		// Expired-token answers from the remote API carry no body at all.
		w.WriteHeader(http.StatusForbidden)
	}, tokens)

	_, err := client.List(context.Background(), 0, 10, "", "")
	require.Error(t, err)
	assert.True(t, IsAuthError(err))
	assert.Equal(t, "fallback", ServerMessage(err, "fallback"))
}

func TestRegisterReturnsConfirmation(t *testing.T) {
	tokens := &memoryTokens{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/register", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte("Admin registered successfully"))
	}, tokens)

	msg, err := client.Register(context.Background(), "admin", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "Admin registered successfully", msg)
	assert.Empty(t, tokens.Current(), "registration must not touch the session")
}

func TestListAttachesBearerAndFilters(t *testing.T) {
	tokens := &memoryTokens{token: "jwt-abc"}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/students", r.URL.Path)
		assert.Equal(t, "Bearer jwt-abc", r.Header.Get("Authorization"))

		query := r.URL.Query()
		assert.Equal(t, "2", query.Get("page"))
		assert.Equal(t, "10", query.Get("size"))
		assert.Equal(t, "jo", query.Get("search"))
		assert.Equal(t, "SENIOR", query.Get("level"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"content": [{"id": 7, "username": "john", "level": "SENIOR"}],
			"totalElements": 21,
			"totalPages": 3,
			"size": 10,
			"number": 2
		}`))
	}, tokens)

	res, err := client.List(context.Background(), 2, 10, "jo", "SENIOR")
	require.NoError(t, err)
	assert.Equal(t, int64(21), res.TotalElements)
	require.Len(t, res.Content, 1)
	assert.Equal(t, "john", res.Content[0].Username)
	require.NotNil(t, res.Content[0].ID)
	assert.Equal(t, int64(7), *res.Content[0].ID)
}

func TestListOmitsUnsetFilters(t *testing.T) {
	tokens := &memoryTokens{token: "jwt-abc"}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.False(t, query.Has("search"))
		assert.False(t, query.Has("level"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"content": [], "totalElements": 0, "totalPages": 0, "size": 10, "number": 0}`))
	}, tokens)

	_, err := client.List(context.Background(), 0, 10, "", "")
	require.NoError(t, err)
}

func TestCreateUpdateDelete(t *testing.T) {
	tokens := &memoryTokens{token: "jwt-abc"}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			assert.Equal(t, "/api/students", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id": 1, "username": "alice", "level": "FRESHMAN"}`))
		case http.MethodPut:
			assert.Equal(t, "/api/students/1", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id": 1, "username": "alice", "level": "JUNIOR"}`))
		case http.MethodDelete:
			assert.Equal(t, "/api/students/1", r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Fatalf("unexpected method %s", r.Method)
		}
	}, tokens)

	ctx := context.Background()
	created, err := client.Create(ctx, &api.Student{Username: "alice", Level: api.LevelFreshman})
	require.NoError(t, err)
	require.NotNil(t, created.ID)

	updated, err := client.Update(ctx, *created.ID, &api.Student{ID: created.ID, Username: "alice", Level: api.LevelJunior})
	require.NoError(t, err)
	assert.Equal(t, api.LevelJunior, updated.Level)

	require.NoError(t, client.Delete(ctx, *created.ID))
}

func TestExportCSV(t *testing.T) {
	tokens := &memoryTokens{token: "jwt-abc"}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/students/export", r.URL.Path)
		assert.Equal(t, "SENIOR", r.URL.Query().Get("level"))
		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte("id,username,level\n1,john,SENIOR\n"))
	}, tokens)

	payload, err := client.ExportCSV(context.Background(), "", "SENIOR")
	require.NoError(t, err)
	assert.Equal(t, "id,username,level\n1,john,SENIOR\n", string(payload))
}

func TestImportCSVMultipart(t *testing.T) {
	tokens := &memoryTokens{token: "jwt-abc"}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/students/import", r.URL.Path)

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "roster.csv", header.Filename)

		content, _ := io.ReadAll(file)
		assert.Equal(t, "username,level\nbob,JUNIOR\n", string(content))

		w.Write([]byte("Imported 1 students"))
	}, tokens)

	status, err := client.ImportCSV(context.Background(), "roster.csv",
		strings.NewReader("username,level\nbob,JUNIOR\n"))
	require.NoError(t, err)
	assert.Equal(t, "Imported 1 students", status)
}
