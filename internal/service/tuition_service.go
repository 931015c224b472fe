package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"student-portal-svc/internal/models"
	"student-portal-svc/internal/models/response"
	"student-portal-svc/internal/repository"
	"student-portal-svc/internal/transport"
	"student-portal-svc/pkg/logger"
)

// TuitionService defines the interface for tuition operations
type TuitionService interface {
	GetSummary(ctx context.Context, semester string) (*response.TuitionSummary, error)
	GetList(ctx context.Context, filter models.TuitionFilter) ([]models.TuitionItem, error)
	GetSemesters(ctx context.Context) ([]string, error)
	Pay(ctx context.Context, req models.PaymentRequest) (*models.PaymentTransaction, error)
	GetReceiptURL(ctx context.Context, transactionID string) (string, error)
	ExportHistory(ctx context.Context, filter models.TuitionFilter) (string, error)
}

// tuitionService implements TuitionService
type tuitionService struct {
	tuitionRepo repository.TuitionRepository
	paymentRepo repository.PaymentRepository
	exporter    ExportService
	transport   *transport.Transport
	clock       Clock
	baseURL     string
	logger      *logger.Logger
}

// NewTuitionService creates a new instance of TuitionService.
// baseURL prefixes the receipt and download links it hands out.
func NewTuitionService(tuitionRepo repository.TuitionRepository, paymentRepo repository.PaymentRepository, exporter ExportService, t *transport.Transport, clock Clock, baseURL string, logger *logger.Logger) TuitionService {
	return &tuitionService{
		tuitionRepo: tuitionRepo,
		paymentRepo: paymentRepo,
		exporter:    exporter,
		transport:   t,
		clock:       clockOrNow(clock),
		baseURL:     strings.TrimRight(baseURL, "/"),
		logger:      logger,
	}
}

// GetSummary recomputes the totals of one semester. An empty semester or "all" sums every item.
func (s *tuitionService) GetSummary(ctx context.Context, semester string) (*response.TuitionSummary, error) {
	filter := models.TuitionFilter{Semester: semester}.Normalize()

	return call(ctx, s.transport, transport.Get(PathTuitionSummary, transport.Light), func() *response.TuitionSummary {
		summary := &response.TuitionSummary{Semester: filter.Semester}
		for _, item := range s.tuitionRepo.GetTuitionItems() {
			if !filter.Match(item) {
				continue
			}
			summary.ItemCount++
			summary.TotalCredits += item.Credits
			summary.TotalAmount += item.Amount
			summary.TotalPaid += item.Paid
		}
		summary.Remaining = summary.TotalAmount - summary.TotalPaid
		return summary
	})
}

// GetList returns the tuition items matching filter
func (s *tuitionService) GetList(ctx context.Context, filter models.TuitionFilter) ([]models.TuitionItem, error) {
	filter = filter.Normalize()
	if err := models.Validate(filter); err != nil {
		return nil, err
	}

	return call(ctx, s.transport, transport.Get(PathTuitionList, transport.Normal), func() []models.TuitionItem {
		return s.filter(filter)
	})
}

func (s *tuitionService) filter(filter models.TuitionFilter) []models.TuitionItem {
	out := []models.TuitionItem{}
	for _, item := range s.tuitionRepo.GetTuitionItems() {
		if filter.Match(item) {
			out = append(out, item)
		}
	}
	return out
}

// GetSemesters lists the distinct semesters with tuition, newest first
func (s *tuitionService) GetSemesters(ctx context.Context) ([]string, error) {
	return call(ctx, s.transport, transport.Get(PathTuitionSemesters, transport.Light), func() []string {
		seen := map[string]bool{}
		out := []string{}
		for _, item := range s.tuitionRepo.GetTuitionItems() {
			if !seen[item.Semester] {
				seen[item.Semester] = true
				out = append(out, item.Semester)
			}
		}
		sort.Slice(out, func(i, j int) bool { return semesterKey(out[i]) > semesterKey(out[j]) })
		return out
	})
}

// semesterKey turns "HK1 2024-2025" into "2024-2025 HK1" so codes sort chronologically
func semesterKey(code string) string {
	parts := strings.Fields(code)
	if len(parts) != 2 {
		return code
	}
	return parts[1] + " " + parts[0]
}

// Pay records a simulated payment against a tuition item
func (s *tuitionService) Pay(ctx context.Context, req models.PaymentRequest) (*models.PaymentTransaction, error) {
	if err := models.Validate(req); err != nil {
		return nil, err
	}

	return transport.Call(ctx, s.transport, transport.Post(PathTuitionPay, transport.Heavy), func() (*models.PaymentTransaction, error) {
		item, err := s.tuitionRepo.GetTuitionItemByID(req.EntityID)
		if err != nil {
			s.logger.WithError(err).WithField("tuition_id", req.EntityID).Error("Failed to get tuition item")
			return nil, fmt.Errorf("tuition item %s: %w", req.EntityID, err)
		}

		tx, err := recordPayment(s.paymentRepo, models.DomainTuition, payable{id: item.ID, status: item.Status}, req, s.receiptURL, s.clock())
		if err != nil {
			return nil, err
		}

		s.logger.WithFields(map[string]interface{}{
			"transaction_id": tx.ID,
			"course_code":    item.CourseCode,
			"amount":         tx.Amount,
		}).Info("Tuition payment recorded")

		return tx, nil
	})
}

func (s *tuitionService) receiptURL(transactionID string) string {
	return s.baseURL + "/api/v1/tuition/receipts/" + transactionID
}

// GetReceiptURL returns the receipt link of a tuition payment
func (s *tuitionService) GetReceiptURL(ctx context.Context, transactionID string) (string, error) {
	return transport.Call(ctx, s.transport, transport.Get(PathTuitionReceipt, transport.Light), func() (string, error) {
		tx, err := s.paymentRepo.GetPaymentByID(transactionID)
		if err != nil || tx.Domain != models.DomainTuition {
			return "", fmt.Errorf("tuition receipt %s: %w", transactionID, repository.ErrRecordNotFound)
		}
		return s.receiptURL(tx.ID), nil
	})
}

// ExportHistory renders the filtered tuition list to a spreadsheet and returns its download link
func (s *tuitionService) ExportHistory(ctx context.Context, filter models.TuitionFilter) (string, error) {
	filter = filter.Normalize()
	if err := models.Validate(filter); err != nil {
		return "", err
	}

	return transport.Call(ctx, s.transport, transport.Post(PathTuitionExport, transport.Heavy), func() (string, error) {
		file, err := s.exporter.ExportTuition(s.filter(filter))
		if err != nil {
			s.logger.WithError(err).Error("Failed to export tuition history")
			return "", fmt.Errorf("failed to export tuition history: %w", err)
		}
		return s.baseURL + "/api/v1/files/" + file.ID, nil
	})
}
