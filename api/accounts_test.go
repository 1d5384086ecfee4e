/*
Copyright 2025 Teller Ledger Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teller-ledger/teller"
	model2 "github.com/teller-ledger/teller/api/model"
	"github.com/teller-ledger/teller/config"
)

type TestRequest struct {
	Payload  io.Reader
	Router   *gin.Engine
	Response interface{}
	Method   string
	Route    string
	Header   map[string]string
}

func SetUpTestRequest(s TestRequest) (*httptest.ResponseRecorder, error) {
	req := httptest.NewRequest(s.Method, s.Route, s.Payload)
	for key, value := range s.Header {
		req.Header.Set(key, value)
	}
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	s.Router.ServeHTTP(resp, req)

	if s.Response != nil {
		err := json.NewDecoder(resp.Body).Decode(s.Response)
		if err != nil {
			return nil, err
		}
	}
	return resp, nil
}

func setupRouter() *gin.Engine {
	config.MockConfig(&config.Configuration{
		ProjectName: "Teller Test",
		Server:      config.ServerConfig{Port: "5001"},
	})
	return NewAPI(teller.NewTeller()).Router()
}

type accountResponse struct {
	Name    string `json:"name"`
	Balance int64  `json:"balance"`
}

func createAccount(t *testing.T, router *gin.Engine, name string) {
	t.Helper()
	payload, err := json.Marshal(model2.CreateAccount{AccountName: name})
	require.NoError(t, err)

	resp, err := SetUpTestRequest(TestRequest{
		Payload: bytes.NewBuffer(payload),
		Router:  router,
		Method:  http.MethodPost,
		Route:   "/accounts",
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.Code)
}

func TestCreateAccountAPI(t *testing.T) {
	router := setupRouter()

	tests := []struct {
		name         string
		payload      model2.CreateAccount
		expectedCode int
	}{
		{
			name:         "Valid Account",
			payload:      model2.CreateAccount{AccountName: gofakeit.Name()},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Empty Name",
			payload:      model2.CreateAccount{AccountName: ""},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := json.Marshal(tt.payload)
			require.NoError(t, err)

			var response accountResponse
			resp, err := SetUpTestRequest(TestRequest{
				Payload:  bytes.NewBuffer(payload),
				Router:   router,
				Response: &response,
				Method:   http.MethodPost,
				Route:    "/accounts",
			})
			require.NoError(t, err)
			assert.Equal(t, tt.expectedCode, resp.Code)
			if resp.Code == http.StatusCreated {
				assert.Equal(t, tt.payload.AccountName, response.Name)
				assert.Equal(t, int64(0), response.Balance)
			}
		})
	}
}

func TestGetAllAccountsAPI(t *testing.T) {
	router := setupRouter()
	createAccount(t, router, "a")
	createAccount(t, router, "b")

	var response []accountResponse
	resp, err := SetUpTestRequest(TestRequest{
		Router:   router,
		Response: &response,
		Method:   http.MethodGet,
		Route:    "/accounts",
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Code)
	require.Len(t, response, 2)
	assert.Equal(t, "a", response[0].Name)
	assert.Equal(t, "b", response[1].Name)
}

func TestGetAccountAPI(t *testing.T) {
	router := setupRouter()
	createAccount(t, router, "savings")

	var response accountResponse
	resp, err := SetUpTestRequest(TestRequest{
		Router:   router,
		Response: &response,
		Method:   http.MethodGet,
		Route:    "/accounts/savings",
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "savings", response.Name)
	assert.Equal(t, int64(0), response.Balance)
}

func TestGetAccountNotFoundAPI(t *testing.T) {
	router := setupRouter()

	var response map[string]interface{}
	resp, err := SetUpTestRequest(TestRequest{
		Router:   router,
		Response: &response,
		Method:   http.MethodGet,
		Route:    "/accounts/missing",
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Equal(t, "NOT_FOUND", response["code"])
}

func TestRecordDepositAPI(t *testing.T) {
	router := setupRouter()
	createAccount(t, router, "cheque")

	tests := []struct {
		name         string
		route        string
		body         string
		expectedCode int
		wantBalance  int64
	}{
		{
			name:         "Valid Deposit",
			route:        "/accounts/cheque/deposits",
			body:         `{"amount": 42}`,
			expectedCode: http.StatusOK,
			wantBalance:  42,
		},
		{
			name:         "Unknown Account",
			route:        "/accounts/missing/deposits",
			body:         `{"amount": 42}`,
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Missing Amount",
			route:        "/accounts/cheque/deposits",
			body:         `{}`,
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var response accountResponse
			resp, err := SetUpTestRequest(TestRequest{
				Payload:  bytes.NewBufferString(tt.body),
				Router:   router,
				Response: &response,
				Method:   http.MethodPost,
				Route:    tt.route,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.expectedCode, resp.Code)
			if resp.Code == http.StatusOK {
				assert.Equal(t, tt.wantBalance, response.Balance)
			}
		})
	}
}

func TestRecordWithdrawalAPI(t *testing.T) {
	router := setupRouter()
	createAccount(t, router, "credit")

	_, err := SetUpTestRequest(TestRequest{
		Payload: bytes.NewBufferString(`{"amount": 100}`),
		Router:  router,
		Method:  http.MethodPost,
		Route:   "/accounts/credit/deposits",
	})
	require.NoError(t, err)

	var response accountResponse
	resp, err := SetUpTestRequest(TestRequest{
		Payload:  bytes.NewBufferString(`{"amount": 73}`),
		Router:   router,
		Response: &response,
		Method:   http.MethodPost,
		Route:    "/accounts/credit/withdrawals",
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, int64(27), response.Balance)

	resp, err = SetUpTestRequest(TestRequest{
		Payload: bytes.NewBufferString(`{"amount": 1}`),
		Router:  router,
		Method:  http.MethodPost,
		Route:   fmt.Sprintf("/accounts/%s/withdrawals", "missing"),
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}
