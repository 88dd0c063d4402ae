// Package context provides request-scoped values extraction.
// The core is stateless: caller identity is passed explicitly per request,
// never kept in any session or global.
package context

import (
	"context"
)

// UserContext contains the identity of the caller submitting a request.
// Authentication itself happens outside this service; the identity is
// accepted as-is and recorded on created order documents.
type UserContext struct {
	UserID string
	Name   string
}

type userContextKey struct{}

// WithUser adds UserContext to context.
func WithUser(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// GetUser returns UserContext from context.
func GetUser(ctx context.Context) *UserContext {
	if v, ok := ctx.Value(userContextKey{}).(*UserContext); ok {
		return v
	}
	return nil
}

// GetUserID returns user ID from context or empty string.
func GetUserID(ctx context.Context) string {
	if u := GetUser(ctx); u != nil {
		return u.UserID
	}
	return ""
}
