package models

import "time"

type WithdrawalStatus string

const (
	WithdrawalPending   WithdrawalStatus = "Pending"
	WithdrawalCompleted WithdrawalStatus = "Completed"
	WithdrawalRejected  WithdrawalStatus = "Rejected"
	// WithdrawalFailed exists in the status taxonomy but no workflow produces
	// it; only seed data carries it.
	WithdrawalFailed WithdrawalStatus = "Failed"
)

func (status WithdrawalStatus) Terminal() bool {
	return status == WithdrawalCompleted || status == WithdrawalRejected || status == WithdrawalFailed
}

type WithdrawalRecord struct {
	ID      string           `json:"id"`
	Amount  float64          `json:"amount"`
	Address string           `json:"address"`
	Status  WithdrawalStatus `json:"status"`
	Date    time.Time        `json:"date"`
}
