package contextkeys

// contextKey is an unexported type to prevent collisions with context keys
// defined in other packages.
type contextKey string

// String makes contextKey satisfy the Stringer interface to assist with debugging.
func (c contextKey) String() string {
	return "estatehub context key " + string(c)
}

// UserIDKey is the key for the authenticated admin's ID in context.Context.
const UserIDKey = contextKey("userID")

// UserEmailKey is the key for the authenticated admin's email in context.Context.
const UserEmailKey = contextKey("userEmail")

// RoleKey is the key for the authenticated admin's role in context.Context.
const RoleKey = contextKey("role")

// RequestIDKey is the key for the request ID in context.Context.
const RequestIDKey = contextKey("requestID")
