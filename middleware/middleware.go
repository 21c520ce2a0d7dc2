package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/pborman/uuid"
)

// type to create context.Context keys
type CtxKeyType string

const (
	// context.Context key to get the transaction ID from the request context
	CtxTransactionKey CtxKeyType = "ctxTransaction"
	// context.Context key to get the caller's bearer token from the request context
	CtxBearerTokenKey CtxKeyType = "ctxBearerToken"
)

const RequestIDHeader = "X-Request-Id"

// NewTransactionID adds a transaction ID to the request context. An inbound
// X-Request-Id is reused so a request can be followed across services.
func NewTransactionID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewRandom().String()
		}
		w.Header().Set(RequestIDHeader, id)
		r = r.WithContext(context.WithValue(r.Context(), CtxTransactionKey, id))
		next.ServeHTTP(w, r)
	})
}

func GetTransactionID(ctx context.Context) string {
	id, _ := ctx.Value(CtxTransactionKey).(string)
	return id
}

// BearerToken stores the caller's bearer token in the request context so it
// can be forwarded upstream. The token is never verified here.
func BearerToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token := parseBearer(r.Header.Get("Authorization")); token != "" {
			r = r.WithContext(WithBearerToken(r.Context(), token))
		}
		next.ServeHTTP(w, r)
	})
}

func WithBearerToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, CtxBearerTokenKey, token)
}

func GetBearerToken(ctx context.Context) string {
	token, _ := ctx.Value(CtxBearerTokenKey).(string)
	return token
}

func parseBearer(header string) string {
	const prefix = "bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

// TokenSubject returns the unverified "sub" claim of a JWT, or "" when the
// token cannot be decoded. Only used to label log entries.
func TokenSubject(token string) string {
	if token == "" {
		return ""
	}
	claims := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(token, claims); err != nil {
		return ""
	}
	sub, _ := claims["sub"].(string)
	return sub
}
