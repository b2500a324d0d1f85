package middleware

import (
	"net/http"

	"github.com/mealbridge/mealbridge-backend/api/responses"
	"github.com/mealbridge/mealbridge-backend/pkg/enums"
	pkgerrors "github.com/mealbridge/mealbridge-backend/pkg/errors"
	"github.com/mealbridge/mealbridge-backend/pkg/logger"
)

// RequireKind rejects requests whose authenticated account is not of the
// expected kind, e.g. only donors may record donations.
func RequireKind(kind enums.AccountKind, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if AccountKindFromContext(r.Context()) != string(kind) {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "account kind not allowed"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
