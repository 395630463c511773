package utils_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SergeyBogomolovv/fulfillment-service/pkg/utils"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type quantityRequest struct {
	SkuCode  string `json:"sku_code" validate:"required"`
	Quantity int    `json:"quantity" validate:"min=1"`
}

func TestDecodeBody(t *testing.T) {
	testCases := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"single document", `{"sku_code":"MUG-WHITE","quantity":2}`, false},
		{"trailing whitespace", "{\"sku_code\":\"MUG-WHITE\"}\n", false},
		{"two documents", `{"sku_code":"A"}{"sku_code":"B"}`, true},
		{"malformed", `{"sku_code":`, true},
		{"too large", `{"sku_code":"` + strings.Repeat("x", utils.MaxBodyBytes) + `"}`, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))
			w := httptest.NewRecorder()

			var req quantityRequest
			err := utils.DecodeBody(w, r, &req)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "MUG-WHITE", req.SkuCode)
		})
	}
}

func TestWriteValidationError(t *testing.T) {
	err := validator.New().Struct(quantityRequest{Quantity: 0})
	require.Error(t, err)

	w := httptest.NewRecorder()
	require.NoError(t, utils.WriteValidationError(w, err))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var res utils.ValidationErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&res))
	assert.Equal(t, "invalid request", res.Message)
	assert.Equal(t, map[string]string{"SkuCode": "required", "Quantity": "min=1"}, res.Fields)
}
