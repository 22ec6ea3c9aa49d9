package events

import (
	"context"
	"log/slog"

	"github.com/phrazzld/tasks-api/internal/platform/logger"
)

// AuditLogHandler writes one INFO line per task event.
type AuditLogHandler struct {
	logger *slog.Logger
}

// NewAuditLogHandler creates an AuditLogHandler. If logger is nil, a default
// logger will be used.
func NewAuditLogHandler(l *slog.Logger) *AuditLogHandler {
	if l == nil {
		l = slog.Default()
	}
	return &AuditLogHandler{logger: l.With("component", "task_audit")}
}

var _ EventHandler = (*AuditLogHandler)(nil)

// HandleEvent implements EventHandler.
func (h *AuditLogHandler) HandleEvent(ctx context.Context, event *TaskEvent) error {
	log := h.logger
	if l := logger.FromContext(ctx); l != nil {
		log = l.With("component", "task_audit")
	}
	log.Info("task changed",
		slog.String("event_id", event.ID.String()),
		slog.String("event_type", event.Type),
		slog.Int("task_id", event.TaskID),
		slog.Time("occurred_at", event.OccurredAt))
	return nil
}
