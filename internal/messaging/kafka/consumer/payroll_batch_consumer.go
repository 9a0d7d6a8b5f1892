package consumer

import (
	"context"
	"encoding/json"

	"go-payroll/internal/events"
	"go-payroll/internal/shared/contextutil"

	"go.uber.org/zap"
)

// BatchProcessor processes every unprocessed salary record of a period.
type BatchProcessor interface {
	ProcessPeriod(ctx context.Context, month, year int) (int, error)
}

// ConsumePayrollBatchRequested runs until ctx is done. A message is committed
// once its period has been processed; undecodable messages are committed and
// dropped, failed periods are left uncommitted for redelivery.
func ConsumePayrollBatchRequested(
	ctx context.Context,
	reader MessageReader,
	processor BatchProcessor,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.payroll_batch")
	log.Info("payroll batch consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("payroll batch consumer stopped")
				return
			}
			log.Error("fetch payroll batch message failed", zap.Error(err))
			continue
		}

		var event events.PayrollBatchRequestedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode payroll batch event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		rid := event.RequestID
		if rid == "" {
			rid = headerValue(msg, "request_id")
		}
		msgCtx := contextutil.WithRequestID(ctx, rid)

		processed, err := processor.ProcessPeriod(msgCtx, event.Month, event.Year)
		if err != nil {
			log.Error("process payroll period failed",
				zap.String("request_id", rid),
				zap.Int("month", event.Month),
				zap.Int("year", event.Year),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit payroll batch message failed", zap.Error(err))
			continue
		}

		log.Info("payroll period processed",
			zap.String("request_id", rid),
			zap.String("requested_by", event.RequestedBy),
			zap.Int("month", event.Month),
			zap.Int("year", event.Year),
			zap.Int("processed", processed),
		)
	}
}
