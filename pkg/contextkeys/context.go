package contextkeys

// Custom key type avoids context collisions.
type contextKey string

// DBContextKey is where DBMiddleware stores the *gorm.DB handle. Tests put a
// transaction under the same key to run requests isolated.
const DBContextKey = contextKey("db")
