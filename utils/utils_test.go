package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"no active connection", ErrNoActiveConnection, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("load connection: %w", NotFoundf("Connection not found")), http.StatusNotFound},
		{"validation", Invalidf("bad sid"), http.StatusBadRequest},
		{"connectivity", ConnectivityError(errors.New("ORA-12541: TNS:no listener")), http.StatusBadRequest},
		{"oracle failure", errors.New("ORA-00942: table or view does not exist"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFor(tt.err))
		})
	}
}

func TestErrorResponse_WritesDetail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	ErrorResponse(c, ConnectivityError(errors.New("ORA-12541: TNS:no listener")))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body ErrorDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Connectivity/Discovery failed: ORA-12541: TNS:no listener", body.Detail)
}

func TestLoggerMiddleware_RequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(LoggerMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("request_id"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	generated := w.Header().Get(RequestIDHeader)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "cli-42")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "cli-42", w.Header().Get(RequestIDHeader))
	assert.Equal(t, "cli-42", w.Body.String())
}

func TestValidateStruct(t *testing.T) {
	type profile struct {
		Host string `validate:"required,oracle_host"`
		Port string `validate:"required,port"`
	}
	assert.NoError(t, ValidateStruct(profile{Host: "db01.example.com", Port: "1521"}))

	err := ValidateStruct(profile{Host: "bad host!", Port: "1521"})
	assert.ErrorIs(t, err, ErrValidation)

	err = ValidateStruct(profile{Host: "db01", Port: "70000"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestIsValidOracleHost(t *testing.T) {
	valid := []string{"localhost", "10.0.0.5", "::1", "scan-prod.corp_net.local"}
	invalid := []string{"", "-leading", "trailing.", "double..dot", "has space", "semi;colon"}
	for _, h := range valid {
		assert.True(t, IsValidOracleHost(h), h)
	}
	for _, h := range invalid {
		assert.False(t, IsValidOracleHost(h), h)
	}
}

func TestCipher_RoundTrip(t *testing.T) {
	c, err := NewCipher("unit-test-key")
	require.NoError(t, err)

	sealed, err := c.Encrypt("tiger")
	require.NoError(t, err)
	assert.NotContains(t, sealed, "tiger")

	plain, err := c.Decrypt(sealed)
	require.NoError(t, err)
	assert.Equal(t, "tiger", plain)

	other, _ := NewCipher("another-key")
	_, err = other.Decrypt(sealed)
	assert.ErrorIs(t, err, ErrDecrypt)

	legacy, err := c.Decrypt("plaintext")
	require.NoError(t, err)
	assert.Equal(t, "plaintext", legacy)

	_, err = NewCipher("")
	assert.Error(t, err)
}

func TestParseHelpers(t *testing.T) {
	id, err := ParseID("id", "42")
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)

	_, err = ParseID("id", "0")
	assert.ErrorIs(t, err, ErrValidation)

	inst, err := OptionalInt("inst_id", "")
	require.NoError(t, err)
	assert.Nil(t, inst)

	inst, err = OptionalInt("inst_id", "2")
	require.NoError(t, err)
	assert.Equal(t, 2, *inst)

	assert.Equal(t, 7, IntOrDefault("x", 7))
	assert.True(t, BoolOrDefault("", true))
	assert.False(t, BoolOrDefault("false", true))
}
