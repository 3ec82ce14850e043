package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-advisor-api/internal/config"
	"github.com/vfg2006/sales-advisor-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-advisor-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthenticator(t *testing.T, enabled bool) authenticating.Authenticator {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3nha-forte"), bcrypt.MinCost)
	require.NoError(t, err)

	return authenticating.NewService(&config.Config{
		Auth: config.Auth{
			Enabled:      enabled,
			Secret:       "segredo",
			Username:     "admin",
			PasswordHash: string(hash),
			TokenTTL:     time.Hour,
		},
	})
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		enabled    bool
		body       string
		wantStatus int
		wantCode   string
	}{
		{
			name:       "login com sucesso",
			enabled:    true,
			body:       `{"username":"admin","password":"s3nha-forte"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "senha incorreta",
			enabled:    true,
			body:       `{"username":"admin","password":"errada"}`,
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrInvalidCredentials,
		},
		{
			name:       "corpo inválido",
			enabled:    true,
			body:       `{`,
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidRequest,
		},
		{
			name:       "autenticação desabilitada",
			enabled:    false,
			body:       `{"username":"admin","password":"s3nha-forte"}`,
			wantStatus: http.StatusNotFound,
			wantCode:   apiErrors.ErrAuthDisabled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authenticator := newTestAuthenticator(t, tt.enabled)
			req := httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			Login(authenticator).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantCode == "" {
				var got map[string]string
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))

				claims, err := authenticator.ValidateToken(got["token"])
				require.NoError(t, err)
				assert.Equal(t, "admin", claims.Username)
				return
			}

			var apiErr apiErrors.APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
			assert.Equal(t, tt.wantCode, apiErr.Code)
		})
	}
}
