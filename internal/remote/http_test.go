package remote

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/billed-app/billed-client/internal/model"
)

func TestNewAPI(t *testing.T) {
	_, err := NewAPI(APIOptions{})
	require.Error(t, err)

	api, err := NewAPI(APIOptions{Addr: "localhost:5678"})
	require.NoError(t, err)
	require.Equal(t, "http", api.baseURL.Scheme)

	api, err = NewAPI(APIOptions{Addr: "https://billed.test"})
	require.NoError(t, err)
	require.Equal(t, "billed.test", api.baseURL.Host)
}

func TestAPI_Login(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)

		var creds Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		require.Equal(t, "john@billed.test", creds.Email)
		require.Equal(t, "secret", creds.Password)

		_ = json.NewEncoder(w).Encode(Token{JWT: "token-1"})
	}))
	defer srv.Close()

	api, err := NewAPI(APIOptions{Addr: srv.URL})
	require.NoError(t, err)

	token, err := api.Login(context.Background(), Credentials{Email: "john@billed.test", Password: "secret"})
	require.NoError(t, err)
	require.Equal(t, "token-1", token.JWT)
}

func TestAPI_Login_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "wrong credentials", http.StatusUnauthorized)
	}))
	defer srv.Close()

	api, err := NewAPI(APIOptions{Addr: srv.URL})
	require.NoError(t, err)

	_, err = api.Login(context.Background(), Credentials{Email: "john@billed.test", Password: "nope"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "401")
}

func TestAPI_CreateUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/users", r.URL.Path)

		// The API takes the user record as a JSON string under data.
		var req struct {
			Data string `json:"data"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.JSONEq(t, `{"type":"Employee","name":"john","email":"john@billed.test","password":"secret"}`, req.Data)

		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	api, err := NewAPI(APIOptions{Addr: srv.URL})
	require.NoError(t, err)

	err = api.Users().Create(context.Background(), NewUser{
		Type:     "Employee",
		Name:     "john",
		Email:    "john@billed.test",
		Password: "secret",
	})
	require.NoError(t, err)
}

func TestAPI_CreateWithReceipt(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/bills", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		require.Equal(t, "john@billed.test", r.FormValue("email"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		require.Equal(t, "test.jpg", header.Filename)

		content, err := io.ReadAll(file)
		require.NoError(t, err)
		require.Equal(t, "img", string(content))

		_ = json.NewEncoder(w).Encode(Receipt{
			Key:      "key-1",
			FileURL:  "https://localhost/storage/test.jpg",
			FileName: "test.jpg",
		})
	}))
	defer srv.Close()

	api, err := NewAPI(APIOptions{Addr: srv.URL})
	require.NoError(t, err)

	receipt, err := api.Bills().CreateWithReceipt(context.Background(), "john@billed.test", "test.jpg", strings.NewReader("img"))
	require.NoError(t, err)
	require.Equal(t, "key-1", receipt.Key)
	require.Equal(t, "https://localhost/storage/test.jpg", receipt.FileURL)
	require.Equal(t, "test.jpg", receipt.FileName)
}

func TestAPI_UpdateBill(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/bills/key-1", r.URL.Path)

		var bill model.Bill
		require.NoError(t, json.NewDecoder(r.Body).Decode(&bill))
		require.Equal(t, "taxi", bill.Name)
		require.Equal(t, model.BillPending, bill.Status)
	}))
	defer srv.Close()

	api, err := NewAPI(APIOptions{Addr: srv.URL})
	require.NoError(t, err)

	err = api.Bills().Update(context.Background(), "key-1", model.Bill{Name: "taxi", Status: model.BillPending})
	require.NoError(t, err)
}
