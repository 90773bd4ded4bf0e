package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"

	"github.com/rs/zerolog/log"

	"mesa/config"
	"mesa/infras/otel"
	"mesa/shared/constant"
	"mesa/shared/failure"
	"mesa/transport/http/response"
)

// Auth guards the staff endpoints. Callers present the shared venue API key
// in the X-API-Key header; guest-facing endpoints stay open.
type Auth interface {
	APIKey(next http.Handler) http.Handler
}

type authImpl struct {
	otel otel.Otel
	cfg  *config.Config
}

func NewAuthMiddleware(otel otel.Otel, cfg *config.Config) Auth {
	return &authImpl{
		otel: otel,
		cfg:  cfg,
	}
}

const staffUser = "staff"

func (m *authImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "apikey.middleware")
		defer scope.End()

		if m.cfg.App.APIKey == constant.Empty {
			log.Error().Msg("staff API key is not configured, rejecting request")

			err := failure.Unauthorized("staff access is not configured")
			scope.TraceError(err)
			response.WithError(writer, err)

			return
		}

		key := request.Header.Get(constant.RequestHeaderAPIKey)
		if subtle.ConstantTimeCompare([]byte(key), []byte(m.cfg.App.APIKey)) != 1 {
			err := failure.Unauthorized("invalid or missing API key")
			scope.TraceError(err)
			response.WithError(writer, err)

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyUserID, staffUser)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}
