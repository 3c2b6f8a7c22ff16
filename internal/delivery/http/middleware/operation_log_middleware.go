package middleware

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"

	deliverycontext "panel/internal/delivery/context"
	"panel/internal/domain/entity"
	"panel/internal/usecase"
)

// OperationLogMiddleware records every request passing through the admin
// surface into the append-only operation log.
type OperationLogMiddleware struct {
	oplog  usecase.OperationLogUsecase
	logger *slog.Logger
}

// NewOperationLogMiddleware creates a new operation log middleware
func NewOperationLogMiddleware(oplog usecase.OperationLogUsecase, logger *slog.Logger) *OperationLogMiddleware {
	return &OperationLogMiddleware{
		oplog:  oplog,
		logger: logger,
	}
}

// Record captures method, path, caller, status and latency after the handler
// finishes. Logging failures never fail the request itself.
func (m *OperationLogMiddleware) Record(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		req := c.Request()
		entry := &entity.OperationLog{
			Method:    req.Method,
			Path:      req.URL.Path,
			Status:    responseStatus(c, err),
			LatencyMs: time.Since(start).Milliseconds(),
			IP:        c.RealIP(),
			UserAgent: req.UserAgent(),
		}
		if user := deliverycontext.GetUser(c); user != nil {
			userID := user.ID
			entry.UserID = &userID
		}

		if recordErr := m.oplog.Record(req.Context(), entry); recordErr != nil {
			m.logger.Warn("Failed to record operation log",
				slog.String("path", entry.Path),
				slog.Any("error", recordErr),
			)
		}

		return err
	}
}

// responseStatus reports the status the client will see. When the handler
// returned an error the response is not written yet, so the status comes
// from the error mapping instead of the recorder.
func responseStatus(c echo.Context, err error) int {
	if err == nil {
		return c.Response().Status
	}

	return statusFromError(err)
}
