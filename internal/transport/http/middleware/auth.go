package middleware

import (
	"context"
	"net/http"
	"strings"

	"payslipgen/internal/domain/auth"
)

type ctxKeyType string

const ctxKeyOperator ctxKeyType = "operator"

type Operator struct {
	Email string
}

// Auth populates the operator context from a bearer token when one is
// present and valid. Handlers decide whether an operator is required.
func Auth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := auth.ParseToken(secret, parts[1])
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyOperator, Operator{Email: claims.Email})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetOperator(ctx context.Context) (Operator, bool) {
	operator, ok := ctx.Value(ctxKeyOperator).(Operator)
	return operator, ok
}
