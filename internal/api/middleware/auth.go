package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/easy-tripzy/Tripzy-BookingService/internal/api/handlers"
)

const (
	// HeaderUserID заголовок с ID аутентифицированного пользователя,
	// проставляется API-шлюзом после проверки токена
	HeaderUserID = "X-User-ID"
	// HeaderUserRole заголовок с ролью пользователя
	HeaderUserRole = "X-User-Role"

	// RoleAdmin роль администратора
	RoleAdmin = "admin"

	msgMissingUserID = "отсутствует или некорректен заголовок X-User-ID"
	msgAdminOnly     = "операция доступна только администраторам"
)

type ctxKey int

const (
	userIDKey ctxKey = iota
	isAdminKey
)

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Auth проверяет наличие валидного X-User-ID и кладёт идентификацию в контекст
func Auth(log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := uuid.Parse(r.Header.Get(HeaderUserID))
			if err != nil {
				log.Warn("%s %s - missing or invalid %s header", r.Method, r.URL.Path, HeaderUserID)
				handlers.RespondUnauthorized(w, msgMissingUserID)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			ctx = context.WithValue(ctx, isAdminKey, r.Header.Get(HeaderUserRole) == RoleAdmin)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin пропускает только запросы с ролью администратора.
// Должен стоять после Auth
func RequireAdmin(log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !IsAdmin(r.Context()) {
				log.Warn("%s %s - admin access required", r.Method, r.URL.Path)
				handlers.RespondForbidden(w, msgAdminOnly)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// GetUserID возвращает ID пользователя из контекста запроса
func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	return id, ok
}

// IsAdmin сообщает, является ли пользователь из контекста администратором
func IsAdmin(ctx context.Context) bool {
	isAdmin, ok := ctx.Value(isAdminKey).(bool)
	return ok && isAdmin
}
