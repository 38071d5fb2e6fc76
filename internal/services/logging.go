package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// ServiceLogger provides structured logging for service layer operations
type ServiceLogger struct {
	logger *slog.Logger
}

func NewServiceLogger(logger *slog.Logger, service string) *ServiceLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &ServiceLogger{logger: logger.With("service", service)}
}

// LogOperation logs the outcome of one service call. Validation failures
// log at warn, missing resources at info, everything else failing at error.
func (l *ServiceLogger) LogOperation(ctx context.Context, operation, resourceType, resourceID string, duration time.Duration, err error) {
	level := slog.LevelInfo
	status := "success"

	if err != nil {
		switch {
		case IsValidation(err):
			level, status = slog.LevelWarn, "validation_error"
		case IsNotFound(err):
			level, status = slog.LevelInfo, "not_found"
		default:
			level, status = slog.LevelError, "error"
		}
	}

	attrs := []slog.Attr{
		slog.String("operation", operation),
		slog.String("resource_type", resourceType),
		slog.String("resource_id", resourceID),
		slog.String("status", status),
		slog.Duration("duration", duration),
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
		if ve, ok := err.(ValidationErrors); ok {
			attrs = append(attrs, slog.Int("validation_errors_count", len(ve)))
		}
	}

	l.logger.LogAttrs(ctx, level, fmt.Sprintf("%s operation %s", operation, status), attrs...)
}

// OperationLogger times a single operation
type OperationLogger struct {
	logger       *ServiceLogger
	ctx          context.Context
	operation    string
	resourceType string
	startTime    time.Time
}

func (l *ServiceLogger) WithOperation(ctx context.Context, operation, resourceType string) *OperationLogger {
	return &OperationLogger{
		logger:       l,
		ctx:          ctx,
		operation:    operation,
		resourceType: resourceType,
		startTime:    time.Now(),
	}
}

func (ol *OperationLogger) LogResult(resourceID string, err error) {
	ol.logger.LogOperation(ol.ctx, ol.operation, ol.resourceType, resourceID, time.Since(ol.startTime), err)
}
