package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-advisor-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-advisor-api/pkg/apiErrors"
	"github.com/vfg2006/sales-advisor-api/pkg/log"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		token, err := service.Login(req.Username, req.Password)
		if err != nil {
			handleLoginError(w, err)
			return
		}

		if err := writeJSON(w, map[string]string{"token": token}); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("auth: failed to encode token")
		}
	}
}

func handleLoginError(w http.ResponseWriter, err error) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao realizar login", nil)
}
