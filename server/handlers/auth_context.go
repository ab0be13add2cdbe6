package handlers

import "context"

type contextKey string

const phoneContextKey contextKey = "auth_phone"

// ContextWithPhone stores the authenticated phone number on the request
// context. The auth middleware is the only writer.
func ContextWithPhone(ctx context.Context, phone string) context.Context {
	return context.WithValue(ctx, phoneContextKey, phone)
}

// PhoneFromContext returns the authenticated phone number, or "" when
// the request did not pass the auth middleware.
func PhoneFromContext(ctx context.Context) string {
	phone, _ := ctx.Value(phoneContextKey).(string)
	return phone
}
