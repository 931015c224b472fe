package repository

import "student-portal-svc/internal/models"

// SchedulerLogRepository defines the interface for scheduler run log operations
type SchedulerLogRepository interface {
	CreateSchedulerLog(log models.SchedulerLog)
	GetSchedulerLogs(schedulerCode string) []models.SchedulerLog
}

// schedulerLogRepository implements SchedulerLogRepository
type schedulerLogRepository struct {
	logs *collection[models.SchedulerLog]
}

// NewSchedulerLogRepository creates a new instance of SchedulerLogRepository
func NewSchedulerLogRepository() SchedulerLogRepository {
	return &schedulerLogRepository{
		logs: newCollection(nil, func(l models.SchedulerLog) string { return l.ID }),
	}
}

// CreateSchedulerLog appends a run log entry
func (r *schedulerLogRepository) CreateSchedulerLog(log models.SchedulerLog) {
	r.logs.add(log)
}

// GetSchedulerLogs returns the entries of one job, or every entry when schedulerCode is empty
func (r *schedulerLogRepository) GetSchedulerLogs(schedulerCode string) []models.SchedulerLog {
	var out []models.SchedulerLog
	for _, l := range r.logs.all() {
		if schedulerCode == "" || l.SchedulerCode == schedulerCode {
			out = append(out, l)
		}
	}
	return out
}
