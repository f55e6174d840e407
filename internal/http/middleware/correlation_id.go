package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/wingscafe/inventory/pkg/correlationid"
)

// CorrelationID propagates the incoming correlation ID header, generating a
// fresh one when the request carries none.
func CorrelationID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(correlationid.Header)
			if id == "" {
				id = uuid.NewString()
			}

			ctx := correlationid.NewContext(r.Context(), id)
			w.Header().Set(correlationid.Header, id)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
