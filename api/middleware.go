package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/shaj13/go-guardian/auth"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/linesmerrill/mergington-announcements-api/config"
	"github.com/linesmerrill/mergington-announcements-api/databases"
)

// RequestIDHeader carries the id assigned to every request
const RequestIDHeader = "X-Request-ID"

// TeacherUsernameParam is the query parameter naming the acting teacher
const TeacherUsernameParam = "teacher_username"

type contextKey int

const (
	teacherKey contextKey = iota
	requestIDKey
)

// MiddlewareDB is a struct that holds the teacher directory used to authorize requests
type MiddlewareDB struct {
	DB databases.TeacherDatabase
}

// RequestMiddleware sets the JSON content type and tags the request with an id,
// reusing one supplied by the client
func RequestMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		w.Header().Set(RequestIDHeader, requestID)
		ctx := context.WithValue(r.Context(), requestIDKey, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestIDFromContext returns the id set by RequestMiddleware
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// RequireTeacher only lets the request through when teacher_username names a
// teacher in the directory. The teacher is available to next through
// TeacherFromContext.
func (m MiddlewareDB) RequireTeacher(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username := r.URL.Query().Get(TeacherUsernameParam)
		if username == "" {
			zap.S().Debugw("missing teacher username", "url", r.URL.Path)
			config.ErrorStatus("Authentication required", http.StatusUnauthorized, w, nil)
			return
		}

		ctx, cancel := WithQueryTimeout(r.Context())
		defer cancel()
		teacher, err := m.DB.FindByUsername(ctx, username)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				zap.S().Infow("unknown teacher", "teacher_username", username, "url", r.URL.Path)
				config.ErrorStatus("Authentication required", http.StatusUnauthorized, w, nil)
				return
			}
			config.ErrorStatus("Failed to verify teacher", http.StatusInternalServerError, w, err)
			return
		}

		info := auth.NewDefaultUser(teacher.Username, teacher.Username, []string{teacher.Role}, nil)
		zap.S().Debugf("teacher %s authorized", info.UserName())
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), teacherKey, info)))
	})
}

// TeacherFromContext returns the teacher authorized by RequireTeacher
func TeacherFromContext(ctx context.Context) (auth.Info, bool) {
	info, ok := ctx.Value(teacherKey).(auth.Info)
	return info, ok
}

// ContextWithTeacher stores an authorized teacher the same way RequireTeacher does
func ContextWithTeacher(ctx context.Context, info auth.Info) context.Context {
	return context.WithValue(ctx, teacherKey, info)
}
