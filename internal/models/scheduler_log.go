package models

import "time"

// Run states written by scheduled jobs
const (
	RunStart   = "START"
	RunRunning = "RUNNING"
	RunSuccess = "SUCCESS"
	RunFailed  = "FAILED"
)

// SchedulerLog is one state transition of a scheduled job run
type SchedulerLog struct {
	ID            string    `json:"id"`
	DocumentID    string    `json:"document_id"`
	SchedulerCode string    `json:"scheduler_code"`
	Message       string    `json:"message"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}
