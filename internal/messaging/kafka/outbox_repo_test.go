package kafka_test

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"go-payroll/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestNewEvent(t *testing.T) {
	event, err := kafka.NewEvent("req-1", "salary", "sal-1", "salary_processed", "payroll.salary.processed.v1",
		map[string]any{"salary_id": "sal-1"})

	assert.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, kafka.OutboxStatusPending, event.Status)
	assert.Equal(t, "req-1", event.RequestID)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(event.Payload, &body))
	assert.Equal(t, "sal-1", body["salary_id"])
	assert.NoError(t, kafka.ValidateOutboxEvent(event))
}

func TestNewEvent_UnencodablePayload(t *testing.T) {
	_, err := kafka.NewEvent("", "salary", "sal-1", "salary_processed", "topic", make(chan int))
	assert.Error(t, err)
}

func TestValidateOutboxEvent(t *testing.T) {
	valid := kafka.OutboxEvent{ID: "1", Topic: "t", Payload: []byte(`{}`), Status: kafka.OutboxStatusPending}

	tests := []struct {
		name    string
		mutate  func(e *kafka.OutboxEvent)
		wantErr string
	}{
		{name: "valid", mutate: func(*kafka.OutboxEvent) {}},
		{name: "missing id", mutate: func(e *kafka.OutboxEvent) { e.ID = "" }, wantErr: "outbox id is required"},
		{name: "missing topic", mutate: func(e *kafka.OutboxEvent) { e.Topic = "" }, wantErr: "outbox topic is required"},
		{name: "missing payload", mutate: func(e *kafka.OutboxEvent) { e.Payload = nil }, wantErr: "outbox payload is required"},
		{name: "bad status", mutate: func(e *kafka.OutboxEvent) { e.Status = "queued" }, wantErr: "invalid outbox status: queued"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := valid
			tt.mutate(&e)
			err := kafka.ValidateOutboxEvent(e)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestOutboxRepository_CreateInTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := kafka.NewOutboxRepository(db)
	event := kafka.OutboxEvent{
		ID: "evt-1", RequestID: "req-1", AggregateType: "salary", AggregateID: "sal-1",
		EventType: "salary_processed", Topic: "payroll.salary.processed.v1",
		Payload: []byte(`{"salary_id":"sal-1"}`), Status: kafka.OutboxStatusPending,
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO outbox_events")).
		WithArgs(event.ID, event.RequestID, event.AggregateType, event.AggregateID,
			event.EventType, event.Topic, event.Payload, event.Status).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	tx, err := db.Begin()
	assert.NoError(t, err)
	assert.NoError(t, repo.WithTx(tx).Create(context.Background(), event))
	assert.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_CreateRejectsInvalidEvent(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	err = kafka.NewOutboxRepository(db).Create(context.Background(), kafka.OutboxEvent{ID: "evt-1"})
	assert.EqualError(t, err, "outbox topic is required")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_ListPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"id", "request_id", "aggregate_type", "aggregate_id", "event_type",
		"topic", "payload", "status", "retry_count", "next_retry_at",
	}).AddRow("evt-1", "req-1", "salary", "sal-1", "salary_processed",
		"payroll.salary.processed.v1", []byte(`{}`), kafka.OutboxStatusFailed, 2, now)

	mock.ExpectQuery(regexp.QuoteMeta("FROM outbox_events")).
		WithArgs(kafka.OutboxStatusPending, kafka.OutboxStatusFailed, 50).
		WillReturnRows(rows)

	events, err := kafka.NewOutboxRepository(db).ListPending(context.Background(), 50)

	assert.NoError(t, err)
	assert.Len(t, events, 1)
	assert.Equal(t, "req-1", events[0].RequestID)
	assert.Equal(t, 2, events[0].RetryCount)
	assert.Equal(t, now, events[0].NextRetryAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkSentAndFailed(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := kafka.NewOutboxRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE outbox_events")).
		WithArgs("evt-1", kafka.OutboxStatusSent).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE outbox_events")).
		WithArgs("evt-2", kafka.OutboxStatusFailed, "broker down", 10).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.MarkSent(context.Background(), "evt-1"))
	assert.NoError(t, repo.MarkFailed(context.Background(), "evt-2", "broker down"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
