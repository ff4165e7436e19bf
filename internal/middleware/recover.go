package middleware

import (
	"fmt"
	"net/http"

	"github.com/serroba/web-toolbox/internal/apierror"
	"go.uber.org/zap"
)

// Recoverer turns a panic into a 500 error envelope.
func Recoverer(logger *zap.Logger, exposeDetails bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}

				if rec == http.ErrAbortHandler { //nolint:errorlint,err113 // sentinel compared as panic value
					panic(rec)
				}

				logger.Error("panic recovered",
					zap.String("request_id", RequestIDFromContext(r.Context())),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Any("panic", rec),
					zap.Stack("stack"),
				)

				apierror.Write(w, apierror.New(http.StatusInternalServerError, "Internal server error",
					exposeDetails, fmt.Errorf("panic: %v", rec)))
			}()

			next.ServeHTTP(w, r)
		})
	}
}
