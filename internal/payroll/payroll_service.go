package payroll

import (
	"context"
	"database/sql"
	"time"

	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka"
	payrollerrors "go-payroll/internal/payroll/errors"
	"go-payroll/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100

	salaryAggregate = "salary"
	periodAggregate = "payroll_period"
)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	CreateOrUpdate(ctx context.Context, employeeID string, req SalaryRequest) (SalaryResponse, error)
	GetHistory(ctx context.Context, employeeID string) ([]SalaryResponse, error)
	GetHistoryPaged(ctx context.Context, employeeID string, page, pageSize int) ([]SalaryResponse, int64, error)
	GetByID(ctx context.Context, id string) (SalaryResponse, error)
	GetByPeriod(ctx context.Context, employeeID string, month, year int) (SalaryResponse, error)
	GetAllByPeriod(ctx context.Context, month, year int) ([]SalaryResponse, error)
	GetAllByYear(ctx context.Context, year int) ([]SalaryResponse, error)
	GetPeriodSummary(ctx context.Context, month, year int) (PeriodSummaryResponse, error)
	GetUnprocessed(ctx context.Context) ([]SalaryResponse, error)
	Delete(ctx context.Context, id string) error
	MarkProcessed(ctx context.Context, id string) (SalaryResponse, error)
	RequestBatchProcess(ctx context.Context, month, year int, requestedBy string) (BatchProcessResponse, error)
	ProcessPeriod(ctx context.Context, month, year int) (int, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	employees EmployeeResolver
	outbox    kafka.OutboxRepository
	logger    *zap.Logger
}

func NewService(db *sql.DB, repo Repository, employees EmployeeResolver, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, employees, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	employees EmployeeResolver,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		employees: employees,
		outbox:    outboxRepo,
		logger:    l,
	}
}

func (s *service) CreateOrUpdate(
	ctx context.Context,
	employeeID string,
	req SalaryRequest,
) (SalaryResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("save salary requested",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.Int("month", req.Month),
		zap.Int("year", req.Year),
	)

	if err := validateEmployeeID(employeeID); err != nil {
		return SalaryResponse{}, err
	}
	taxPercent, err := validateSalaryRequest(req)
	if err != nil {
		s.logger.Warn("save salary invalid input", zap.String("request_id", rid), zap.Error(err))
		return SalaryResponse{}, err
	}

	profile, err := s.employees.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		if isNotFound(err) {
			return SalaryResponse{}, payrollerrors.ErrEmployeeNotFound.Withf("employee %s not found", employeeID)
		}
		s.logger.Error("save salary resolve employee failed", zap.String("request_id", rid), zap.Error(err))
		return SalaryResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("save salary begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return SalaryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	exists, err := qtx.ExistsByEmployeeAndPeriod(ctx, employeeID, req.Month, req.Year)
	if err != nil {
		s.logger.Error("save salary check existing failed", zap.Error(err))
		return SalaryResponse{}, err
	}

	now := time.Now().UTC()
	record := &SalaryRecord{
		ID:          uuid.New(),
		EmployeeID:  uuid.MustParse(employeeID),
		Month:       req.Month,
		Year:        req.Year,
		BasicSalary: *req.BasicSalary,
		Allowances:  req.Allowances,
		Deductions:  req.Deductions,
		TaxPercent:  taxPercent,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	record.Recompute()

	if err := qtx.Upsert(ctx, record); err != nil {
		s.logger.Error("save salary persist failed", zap.String("request_id", rid), zap.Error(err))
		return SalaryResponse{}, mapRepositoryError(err)
	}

	saved, err := qtx.FindByEmployeeAndPeriod(ctx, employeeID, req.Month, req.Year)
	if err != nil {
		s.logger.Error("save salary reload failed", zap.Error(err))
		return SalaryResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return SalaryResponse{}, err
	}

	action := "created"
	if exists {
		action = "updated"
	}
	s.logger.Info("salary "+action,
		zap.String("request_id", rid),
		zap.String("salary_id", saved.ID.String()),
		zap.String("employee_id", employeeID),
		zap.Int("month", saved.Month),
		zap.Int("year", saved.Year),
	)

	resp := mapToResponse(*saved)
	if resp.EmployeeName == "" {
		resp.EmployeeCode = profile.Code
		resp.EmployeeName = profile.FullName
	}
	return resp, nil
}

func (s *service) GetHistory(ctx context.Context, employeeID string) ([]SalaryResponse, error) {
	s.logger.Debug("get salary history requested", zap.String("employee_id", employeeID))
	if err := validateEmployeeID(employeeID); err != nil {
		return nil, err
	}

	records, err := s.repo.FindAllByEmployee(ctx, employeeID)
	if err != nil {
		s.logger.Error("get salary history failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(records), nil
}

func (s *service) GetHistoryPaged(
	ctx context.Context,
	employeeID string,
	page, pageSize int,
) ([]SalaryResponse, int64, error) {
	if err := validateEmployeeID(employeeID); err != nil {
		return nil, 0, err
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	records, total, err := s.repo.FindPageByEmployee(ctx, employeeID, page, pageSize)
	if err != nil {
		s.logger.Error("get salary history page failed", zap.Error(err))
		return nil, 0, mapRepositoryError(err)
	}

	return mapToListResponse(records), total, nil
}

func (s *service) GetByID(ctx context.Context, id string) (SalaryResponse, error) {
	if err := validateSalaryID(id); err != nil {
		return SalaryResponse{}, err
	}

	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return SalaryResponse{}, payrollerrors.ErrSalaryNotFound.Withf("salary record %s not found", id)
		}
		s.logger.Error("get salary by id failed", zap.String("salary_id", id), zap.Error(err))
		return SalaryResponse{}, err
	}

	return mapToResponse(*record), nil
}

func (s *service) GetByPeriod(ctx context.Context, employeeID string, month, year int) (SalaryResponse, error) {
	if err := validateEmployeeID(employeeID); err != nil {
		return SalaryResponse{}, err
	}
	if err := validatePeriod(month, year); err != nil {
		return SalaryResponse{}, err
	}

	record, err := s.repo.FindByEmployeeAndPeriod(ctx, employeeID, month, year)
	if err != nil {
		if isNotFound(err) {
			return SalaryResponse{}, payrollerrors.ErrSalaryNotFound.Withf(
				"salary record not found for employee %s in %02d/%d", employeeID, month, year)
		}
		s.logger.Error("get salary by period failed", zap.Error(err))
		return SalaryResponse{}, err
	}

	return mapToResponse(*record), nil
}

func (s *service) GetAllByPeriod(ctx context.Context, month, year int) ([]SalaryResponse, error) {
	if err := validatePeriod(month, year); err != nil {
		return nil, err
	}

	records, err := s.repo.FindAllByPeriod(ctx, month, year)
	if err != nil {
		s.logger.Error("get salaries by period failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(records), nil
}

func (s *service) GetAllByYear(ctx context.Context, year int) ([]SalaryResponse, error) {
	if err := validatePeriod(1, year); err != nil {
		return nil, err
	}

	records, err := s.repo.FindAllByYear(ctx, year)
	if err != nil {
		s.logger.Error("get salaries by year failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(records), nil
}

func (s *service) GetPeriodSummary(ctx context.Context, month, year int) (PeriodSummaryResponse, error) {
	if err := validatePeriod(month, year); err != nil {
		return PeriodSummaryResponse{}, err
	}

	records, err := s.repo.FindAllByPeriod(ctx, month, year)
	if err != nil {
		s.logger.Error("get period summary failed", zap.Error(err))
		return PeriodSummaryResponse{}, mapRepositoryError(err)
	}

	return summarizePeriod(month, year, records), nil
}

func (s *service) GetUnprocessed(ctx context.Context) ([]SalaryResponse, error) {
	records, err := s.repo.FindByProcessed(ctx, false)
	if err != nil {
		s.logger.Error("get unprocessed salaries failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(records), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	rid := contextutil.GetRequestID(ctx)
	if err := validateSalaryID(id); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete salary begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	record, err := qtx.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return payrollerrors.ErrSalaryNotFound.Withf("salary record %s not found", id)
		}
		return err
	}
	if record.Processed {
		s.logger.Warn("delete processed salary refused",
			zap.String("request_id", rid),
			zap.String("salary_id", id),
		)
		return payrollerrors.ErrCannotDeleteProcessed.Withf("cannot delete processed salary %s", id)
	}

	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete salary failed", zap.String("salary_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	s.logger.Info("salary deleted", zap.String("request_id", rid), zap.String("salary_id", id))
	return nil
}

func (s *service) MarkProcessed(ctx context.Context, id string) (SalaryResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	if err := validateSalaryID(id); err != nil {
		return SalaryResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("mark processed begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return SalaryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	record, err := qtx.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return SalaryResponse{}, payrollerrors.ErrSalaryNotFound.Withf("salary record %s not found", id)
		}
		return SalaryResponse{}, err
	}

	// Already processed: no write, no event.
	if record.Processed {
		return mapToResponse(*record), nil
	}

	record.Processed = true
	if err := qtx.Update(ctx, record); err != nil {
		s.logger.Error("mark processed persist failed", zap.String("salary_id", id), zap.Error(err))
		return SalaryResponse{}, mapRepositoryError(err)
	}
	if err := s.enqueueSalaryProcessed(ctx, tx, rid, record); err != nil {
		return SalaryResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return SalaryResponse{}, err
	}

	s.logger.Info("salary processed", zap.String("request_id", rid), zap.String("salary_id", id))
	return mapToResponse(*record), nil
}

func (s *service) RequestBatchProcess(
	ctx context.Context,
	month, year int,
	requestedBy string,
) (BatchProcessResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	if err := validatePeriod(month, year); err != nil {
		return BatchProcessResponse{}, err
	}

	resp := BatchProcessResponse{Month: month, Year: year}
	if s.outbox == nil {
		processed, err := s.ProcessPeriod(ctx, month, year)
		if err != nil {
			return BatchProcessResponse{}, err
		}
		resp.Processed = processed
		return resp, nil
	}

	event := events.PayrollBatchRequestedEvent{
		EventType:   events.PayrollBatchRequestedEventType,
		RequestID:   rid,
		Month:       month,
		Year:        year,
		RequestedBy: requestedBy,
		OccurredAt:  time.Now().UTC(),
	}
	outboxEvent, err := kafka.NewEvent(rid, periodAggregate, periodKey(month, year),
		event.EventType, events.PayrollBatchRequestedTopic, event)
	if err != nil {
		s.logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
		return BatchProcessResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("batch request begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return BatchProcessResponse{}, err
	}
	defer tx.Rollback()

	if err := s.outbox.WithTx(tx).Create(ctx, outboxEvent); err != nil {
		s.logger.Error("batch request outbox persist failed", zap.String("request_id", rid), zap.Error(err))
		return BatchProcessResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return BatchProcessResponse{}, err
	}

	s.logger.Info("payroll batch queued",
		zap.String("request_id", rid),
		zap.Int("month", month),
		zap.Int("year", year),
		zap.String("requested_by", requestedBy),
	)
	resp.Queued = true
	return resp, nil
}

// ProcessPeriod marks every unprocessed record of the period as processed
// in one transaction and returns how many changed.
func (s *service) ProcessPeriod(ctx context.Context, month, year int) (int, error) {
	rid := contextutil.GetRequestID(ctx)
	if err := validatePeriod(month, year); err != nil {
		return 0, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("process period begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return 0, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	records, err := qtx.FindUnprocessedByPeriod(ctx, month, year)
	if err != nil {
		s.logger.Error("process period load failed", zap.Error(err))
		return 0, mapRepositoryError(err)
	}

	for i := range records {
		record := &records[i]
		record.Processed = true
		if err := qtx.Update(ctx, record); err != nil {
			s.logger.Error("process period persist failed",
				zap.String("salary_id", record.ID.String()),
				zap.Error(err),
			)
			return 0, mapRepositoryError(err)
		}
		if err := s.enqueueSalaryProcessed(ctx, tx, rid, record); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return 0, err
	}

	s.logger.Info("payroll period processed",
		zap.String("request_id", rid),
		zap.Int("month", month),
		zap.Int("year", year),
		zap.Int("count", len(records)),
	)
	return len(records), nil
}

func (s *service) enqueueSalaryProcessed(ctx context.Context, tx *sql.Tx, rid string, record *SalaryRecord) error {
	if s.outbox == nil {
		return nil
	}

	event := events.SalaryProcessedEvent{
		EventType:  events.SalaryProcessedEventType,
		RequestID:  rid,
		SalaryID:   record.ID.String(),
		EmployeeID: record.EmployeeID.String(),
		Month:      record.Month,
		Year:       record.Year,
		NetSalary:  record.NetSalary.StringFixed(moneyScale),
		OccurredAt: time.Now().UTC(),
	}
	outboxEvent, err := kafka.NewEvent(rid, salaryAggregate, event.SalaryID,
		event.EventType, events.SalaryProcessedTopic, event)
	if err != nil {
		s.logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	if err := s.outbox.WithTx(tx).Create(ctx, outboxEvent); err != nil {
		s.logger.Error("salary processed outbox persist failed",
			zap.String("salary_id", event.SalaryID),
			zap.Error(err),
		)
		return err
	}
	return nil
}
