package datastore

import (
	"context"
	"errors"
	"sync"
	"time"

	"beeclaimer/internal/models"
)

var ErrWithdrawalNotFound = errors.New("withdrawal not found")
var ErrWithdrawalResolved = errors.New("withdrawal already resolved")

// Ledger is the in-memory, most-recent-first list of withdrawal records. It is
// process-local and reset on restart.
type Ledger struct {
	mu      sync.RWMutex
	records []*models.WithdrawalRecord
}

func NewLedger(seed ...*models.WithdrawalRecord) *Ledger {
	records := make([]*models.WithdrawalRecord, 0, len(seed))
	records = append(records, seed...)
	return &Ledger{records: records}
}

// InsertWithdrawal prepends the record so the newest submission is always at
// the head of the ledger.
func InsertWithdrawal(ctx context.Context, ledger *Ledger, record *models.WithdrawalRecord) error {
	ledger.mu.Lock()
	defer ledger.mu.Unlock()

	ledger.records = append([]*models.WithdrawalRecord{record}, ledger.records...)
	return nil
}

func ListWithdrawals(ctx context.Context, ledger *Ledger) ([]*models.WithdrawalRecord, error) {
	ledger.mu.RLock()
	defer ledger.mu.RUnlock()

	records := make([]*models.WithdrawalRecord, 0, len(ledger.records))
	for _, record := range ledger.records {
		clone := *record
		records = append(records, &clone)
	}
	return records, nil
}

func ListWithdrawalsByStatus(ctx context.Context, ledger *Ledger, status models.WithdrawalStatus) ([]*models.WithdrawalRecord, error) {
	ledger.mu.RLock()
	defer ledger.mu.RUnlock()

	records := []*models.WithdrawalRecord{}
	for _, record := range ledger.records {
		if record.Status != status {
			continue
		}
		clone := *record
		records = append(records, &clone)
	}
	return records, nil
}

func GetWithdrawal(ctx context.Context, ledger *Ledger, id string) (*models.WithdrawalRecord, error) {
	ledger.mu.RLock()
	defer ledger.mu.RUnlock()

	for _, record := range ledger.records {
		if record.ID == id {
			clone := *record
			return &clone, nil
		}
	}
	return nil, ErrWithdrawalNotFound
}

// UpdateWithdrawalStatus moves a record out of Pending. Records in a terminal
// status are immutable.
func UpdateWithdrawalStatus(ctx context.Context, ledger *Ledger, id string, status models.WithdrawalStatus) (*models.WithdrawalRecord, error) {
	ledger.mu.Lock()
	defer ledger.mu.Unlock()

	for _, record := range ledger.records {
		if record.ID != id {
			continue
		}
		if record.Status.Terminal() {
			return nil, ErrWithdrawalResolved
		}
		record.Status = status
		clone := *record
		return &clone, nil
	}
	return nil, ErrWithdrawalNotFound
}

func SumWithdrawalsByStatus(ctx context.Context, ledger *Ledger, status models.WithdrawalStatus) (float64, error) {
	ledger.mu.RLock()
	defer ledger.mu.RUnlock()

	var total float64
	for _, record := range ledger.records {
		if record.Status == status {
			total += record.Amount
		}
	}
	return total, nil
}

// SeedWithdrawals is the mock activity log the app boots with.
func SeedWithdrawals() []*models.WithdrawalRecord {
	return []*models.WithdrawalRecord{
		{ID: "2", Amount: 0.0050, Address: "UQAs...3f9X", Status: models.WithdrawalPending, Date: time.Date(2024, 5, 22, 0, 0, 0, 0, time.UTC)},
		{ID: "1", Amount: 0.0105, Address: "UQAs...3f9X", Status: models.WithdrawalCompleted, Date: time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)},
		{ID: "3", Amount: 0.0022, Address: "UQAs...88kP", Status: models.WithdrawalFailed, Date: time.Date(2024, 5, 18, 0, 0, 0, 0, time.UTC)},
	}
}
