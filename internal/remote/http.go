package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/billed-app/billed-client/internal/model"
)

// API implements Client over the billed HTTP API.
type API struct {
	baseURL *url.URL
	hc      *http.Client
}

// APIOptions configures NewAPI. Timeout defaults to 10 seconds.
type APIOptions struct {
	Addr    string
	Timeout time.Duration
}

// NewAPI builds an HTTP client for the API at opt.Addr.
func NewAPI(opt APIOptions) (*API, error) {
	if opt.Addr == "" {
		return nil, fmt.Errorf("remote: addr is required")
	}
	u, err := url.Parse(opt.Addr)
	if err != nil {
		return nil, fmt.Errorf("remote: invalid addr: %v", err)
	}
	if u.Scheme == "" {
		u.Scheme = "http"
	}
	if u.Host == "" {
		return nil, fmt.Errorf("remote: invalid addr %q", opt.Addr)
	}

	timeout := opt.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &API{baseURL: u, hc: &http.Client{Timeout: timeout}}, nil
}

// Login exchanges credentials for a token.
func (a *API) Login(ctx context.Context, creds Credentials) (Token, error) {
	var token Token
	if err := a.doJSON(ctx, http.MethodPost, "/auth/login", creds, &token); err != nil {
		return Token{}, err
	}
	return token, nil
}

// Users returns the account operations.
func (a *API) Users() Users {
	return apiUsers{api: a}
}

// Bills returns the bill operations.
func (a *API) Bills() Bills {
	return apiBills{api: a}
}

type apiUsers struct {
	api *API
}

// Create sends the provisioning payload. The API takes the user record as a
// JSON string under a data field.
func (u apiUsers) Create(ctx context.Context, user NewUser) error {
	raw, err := json.Marshal(&user)
	if err != nil {
		return fmt.Errorf("remote, create user error: %v", err)
	}
	req := struct {
		Data string `json:"data"`
	}{Data: string(raw)}
	return u.api.doJSON(ctx, http.MethodPost, "/users", req, nil)
}

type apiBills struct {
	api *API
}

// CreateWithReceipt posts the receipt as multipart form data together with
// the owning email and returns the created record's key and file location.
func (b apiBills) CreateWithReceipt(ctx context.Context, email, fileName string, content io.Reader) (Receipt, error) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	part, err := w.CreateFormFile("file", fileName)
	if err != nil {
		return Receipt{}, fmt.Errorf("remote, create file error: %v", err)
	}
	if _, err = io.Copy(part, content); err != nil {
		return Receipt{}, fmt.Errorf("remote, create file error: %v", err)
	}
	if err = w.WriteField("email", email); err != nil {
		return Receipt{}, fmt.Errorf("remote, create file error: %v", err)
	}
	if err = w.Close(); err != nil {
		return Receipt{}, fmt.Errorf("remote, create file error: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.api.baseURL.JoinPath("/bills").String(), &body)
	if err != nil {
		return Receipt{}, fmt.Errorf("remote, create file error: %v", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := b.api.hc.Do(req)
	if err != nil {
		return Receipt{}, fmt.Errorf("remote, create file error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Receipt{}, apiError(resp)
	}

	var receipt Receipt
	if err = json.NewDecoder(resp.Body).Decode(&receipt); err != nil {
		return Receipt{}, fmt.Errorf("remote, create file error: %v", err)
	}
	return receipt, nil
}

// Update patches the bill record with the assembled fields.
func (b apiBills) Update(ctx context.Context, id string, bill model.Bill) error {
	return b.api.doJSON(ctx, http.MethodPatch, "/bills/"+url.PathEscape(id), bill, nil)
}

func (a *API) doJSON(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("remote, %s %s error: %v", method, path, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL.JoinPath(path).String(), body)
	if err != nil {
		return fmt.Errorf("remote, %s %s error: %v", method, path, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := a.hc.Do(req)
	if err != nil {
		return fmt.Errorf("remote, %s %s error: %v", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apiError(resp)
	}

	if out == nil {
		return nil
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("remote, %s %s error: %v", method, path, err)
	}
	return nil
}

func apiError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	msg := strings.TrimSpace(string(raw))
	if msg == "" {
		msg = resp.Status
	}
	return fmt.Errorf("remote: api responded %d: %s", resp.StatusCode, msg)
}
