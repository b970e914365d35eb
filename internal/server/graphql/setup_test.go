package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/slugmart/slugmart/internal/logging"
	"github.com/slugmart/slugmart/internal/server/auth"
	"github.com/slugmart/slugmart/internal/server/models"
	"github.com/slugmart/slugmart/internal/server/repositories/accounts"
	"github.com/slugmart/slugmart/internal/server/repositories/listings"
	"github.com/slugmart/slugmart/internal/server/repositories/messages"
	"github.com/slugmart/slugmart/internal/server/repositories/orders"
	"github.com/slugmart/slugmart/internal/server/services"
)

const (
	sammyEmail    = "sammy@slugmart.com"
	sammyPassword = "sammyslug"
)

type stubUploader struct{}

func (stubUploader) GenerateUploadURL(_ context.Context, req models.UploadRequest) (*models.UploadURL, error) {
	return &models.UploadURL{
		PreSignedURL: "https://signed.example/" + req.Folder + "/" + req.FileName,
		FileURL:      "https://files.example/" + req.Folder + "/" + req.FileName,
	}, nil
}

type testEnv struct {
	server   *httptest.Server
	accounts *accounts.MemoryRepository
	codec    *auth.TokenCodec
	sammy    *models.Account
}

func newTestServices(repo *accounts.MemoryRepository, codec *auth.TokenCodec) Services {
	log := logging.Nop{}
	return Services{
		Auth:     services.NewAuthService(repo, codec, log, nil),
		Accounts: services.NewAccountService(repo, log),
		Listings: services.NewListingService(listings.NewMemoryRepository(), log),
		Messages: services.NewMessageService(messages.NewMemoryRepository(), log),
		Orders:   services.NewOrderService(orders.NewMemoryRepository(), log),
		Uploads:  stubUploader{},
	}
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	repo := accounts.NewMemoryRepository("$2a$06$slugmartslugmartslugma")
	codec := auth.NewTokenCodec([]byte("graphql-test-secret"), time.Hour)

	sammy, err := repo.Create(context.Background(), models.NewAccount{
		Email: sammyEmail, Password: sammyPassword, FirstName: "Sammy", LastName: "Slug",
		Roles: []string{"Shopper"}, Username: "sammy",
	})
	require.NoError(t, err)

	schema, err := NewSchema(newTestServices(repo, codec))
	require.NoError(t, err)

	gate := auth.NewGate(schema.Policy(), codec, logging.Nop{}, nil)
	srv := httptest.NewServer(NewHandler(schema, gate, logging.Nop{}))
	t.Cleanup(srv.Close)

	return &testEnv{server: srv, accounts: repo, codec: codec, sammy: sammy}
}

type gqlResponse struct {
	Data   map[string]json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

func (e *testEnv) post(t *testing.T, token string, query string, variables map[string]any) (int, gqlResponse) {
	t.Helper()
	body, err := json.Marshal(Request{Query: query, Variables: variables})
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, e.server.URL, bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out gqlResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func (e *testEnv) login(t *testing.T) string {
	t.Helper()
	_, resp := e.post(t, "", loginQuery, map[string]any{"email": sammyEmail, "password": sammyPassword})
	require.Empty(t, resp.Errors)
	var got struct {
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, json.Unmarshal(resp.Data["login"], &got))
	return got.AccessToken
}

const loginQuery = `mutation Login($email: String!, $password: String!) {
  login(input: {email: $email, password: $password}) { id name { first last } accessToken }
}`
