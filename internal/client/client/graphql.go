package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/slugmart/slugmart/internal/client/models"
	"github.com/slugmart/slugmart/internal/common"
)

const (
	loginMutation = `mutation Login($input: Credentials!) {
  login(input: $input) { id name { first last } accessToken }
}`
	checkQuery = `query Check($input: String!) {
  check(input: $input) { id }
}`
	accountsQuery = `query Accounts {
  allAccounts { id email name { first last } roles restricted }
}`
	uploadURLMutation = `mutation Upload($fileName: String!, $contentType: String!, $folder: String!) {
  generateUploadUrl(fileName: $fileName, contentType: $contentType, folder: $folder) { preSignedUrl fileUrl }
}`
)

type GraphQLClient struct {
	endpointURL string
	http        *http.Client
}

func NewGraphQLClient(endpointURL string, timeout time.Duration) *GraphQLClient {
	return &GraphQLClient{
		endpointURL: endpointURL,
		http:        &http.Client{Timeout: timeout},
	}
}

type request struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type response struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// do executes query and decodes the "data" member into out.
func (c *GraphQLClient) do(ctx context.Context, token, query string, vars map[string]any, out any) error {
	body, err := json.Marshal(request{Query: query, Variables: vars})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpointURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerScheme+" "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthenticated
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var r response
	if err := json.Unmarshal(raw, &r); err != nil {
		return fmt.Errorf("unexpected response (%s): %w", resp.Status, err)
	}

	if len(r.Errors) > 0 {
		messages := make([]string, 0, len(r.Errors))
		for _, e := range r.Errors {
			if e.Message == ErrUnauthenticated.Error() {
				return ErrUnauthenticated
			}
			messages = append(messages, e.Message)
		}
		return &ResponseError{Messages: messages}
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	return json.Unmarshal(r.Data, out)
}

func (c *GraphQLClient) Login(ctx context.Context, email, password string) (*models.Authenticated, error) {
	var data struct {
		Login models.Authenticated `json:"login"`
	}
	vars := map[string]any{"input": map[string]string{"email": email, "password": password}}
	if err := c.do(ctx, "", loginMutation, vars, &data); err != nil {
		return nil, err
	}
	return &data.Login, nil
}

func (c *GraphQLClient) Check(ctx context.Context, token string) (*models.SessionAccount, error) {
	var data struct {
		Check models.SessionAccount `json:"check"`
	}
	if err := c.do(ctx, "", checkQuery, map[string]any{"input": token}, &data); err != nil {
		return nil, err
	}
	return &data.Check, nil
}

func (c *GraphQLClient) Accounts(ctx context.Context, token string) ([]models.Account, error) {
	var data struct {
		AllAccounts []models.Account `json:"allAccounts"`
	}
	if err := c.do(ctx, token, accountsQuery, nil, &data); err != nil {
		return nil, err
	}
	return data.AllAccounts, nil
}

func (c *GraphQLClient) GenerateUploadURL(ctx context.Context, token, fileName, contentType, folder string) (*models.UploadURL, error) {
	var data struct {
		GenerateUploadURL models.UploadURL `json:"generateUploadUrl"`
	}
	vars := map[string]any{"fileName": fileName, "contentType": contentType, "folder": folder}
	if err := c.do(ctx, token, uploadURLMutation, vars, &data); err != nil {
		return nil, err
	}
	return &data.GenerateUploadURL, nil
}
