package contextkeys

// Custom key type to avoid collisions with other context values.
type contextKey string

// DBContextKey is the key under which the *gorm.DB handle (pool or
// transaction) travels through the request context.
const DBContextKey = contextKey("db")
