package middleware

import (
	"log/slog"
	"net/http"

	"github.com/rohits-web03/folio/internal/logging"
	"github.com/rohits-web03/folio/internal/utils"
)

// Recover turns a handler panic into a 500 payload. Panic details stay in the log.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logging.From(r.Context()).LogAttrs(r.Context(), slog.LevelError, "panic",
					slog.String("path", r.URL.Path),
					slog.Any("reason", rec),
				)
				utils.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
