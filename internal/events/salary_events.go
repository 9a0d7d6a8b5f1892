package events

import "time"

const (
	SalaryProcessedTopic       = "payroll.salary.processed.v1"
	PayrollBatchRequestedTopic = "payroll.batch.requested.v1"

	SalaryProcessedEventType       = "salary_processed"
	PayrollBatchRequestedEventType = "payroll_batch_requested"
)

// SalaryProcessedEvent is emitted once per record, on its first transition
// to processed.
type SalaryProcessedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	SalaryID   string    `json:"salary_id"`
	EmployeeID string    `json:"employee_id"`
	Month      int       `json:"month"`
	Year       int       `json:"year"`
	NetSalary  string    `json:"net_salary"`
	OccurredAt time.Time `json:"occurred_at"`
}

// PayrollBatchRequestedEvent asks the consumer to process every unprocessed
// record of a period.
type PayrollBatchRequestedEvent struct {
	EventType   string    `json:"event_type"`
	RequestID   string    `json:"request_id,omitempty"`
	Month       int       `json:"month"`
	Year        int       `json:"year"`
	RequestedBy string    `json:"requested_by"`
	OccurredAt  time.Time `json:"occurred_at"`
}
