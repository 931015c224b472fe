package repository

import (
	"fmt"
	"time"
)

// Store groups every in-memory repository of one running portal
type Store struct {
	Tuition       TuitionRepository
	Debts         DebtRepository
	OtherFees     OtherFeeRepository
	Deposits      DepositRepository
	Curriculum    CurriculumRepository
	SemesterPlans SemesterPlanRepository
	Notifications NotificationRepository
	OneStop       OneStopRepository
	DeviceReports DeviceReportRepository
	Payments      PaymentRepository
	Exports       ExportRepository
	Students      StudentRepository
	SchedulerLogs SchedulerLogRepository
}

// NewSeededStore creates a Store filled with the default fixtures, dated relative to now
func NewSeededStore(now time.Time) (*Store, error) {
	students, err := DefaultStudents()
	if err != nil {
		return nil, fmt.Errorf("failed to seed students: %w", err)
	}

	return &Store{
		Tuition:       NewTuitionRepository(DefaultTuitionItems(now)),
		Debts:         NewDebtRepository(DefaultDebts(now)),
		OtherFees:     NewOtherFeeRepository(DefaultOtherFees(now)),
		Deposits:      NewDepositRepository(DefaultDepositTransactions(now)),
		Curriculum:    NewCurriculumRepository(DefaultProgram(), DefaultCourses()),
		SemesterPlans: NewSemesterPlanRepository(DefaultSemesters(now), DefaultPlannedCourses(now)),
		Notifications: NewNotificationRepository(DefaultNotifications(now)),
		OneStop:       NewOneStopRepository(DefaultServices(), DefaultServiceRequests(now)),
		DeviceReports: NewDeviceReportRepository(DefaultDeviceReports(now)),
		Payments:      NewPaymentRepository(),
		Exports:       NewExportRepository(),
		Students:      NewStudentRepository(students),
		SchedulerLogs: NewSchedulerLogRepository(),
	}, nil
}
