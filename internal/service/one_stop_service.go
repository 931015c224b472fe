package service

import (
	"context"
	"fmt"
	"sort"

	"student-portal-svc/internal/models"
	"student-portal-svc/internal/repository"
	"student-portal-svc/internal/transport"
	"student-portal-svc/pkg/logger"
)

// OneStopService defines the interface for one-stop administrative services
type OneStopService interface {
	GetServices(ctx context.Context, filter models.ServiceFilter) ([]models.Service, error)
	GetService(ctx context.Context, id string) (*models.Service, error)
	SubmitRequest(ctx context.Context, input models.ServiceRequestInput) (*models.ServiceRequest, error)
	GetRequests(ctx context.Context, filter models.ServiceRequestFilter) ([]models.ServiceRequest, error)
}

// oneStopService implements OneStopService
type oneStopService struct {
	oneStopRepo repository.OneStopRepository
	transport   *transport.Transport
	clock       Clock
	logger      *logger.Logger
}

// NewOneStopService creates a new instance of OneStopService
func NewOneStopService(oneStopRepo repository.OneStopRepository, t *transport.Transport, clock Clock, logger *logger.Logger) OneStopService {
	return &oneStopService{
		oneStopRepo: oneStopRepo,
		transport:   t,
		clock:       clockOrNow(clock),
		logger:      logger,
	}
}

// GetServices returns catalog entries matching filter
func (s *oneStopService) GetServices(ctx context.Context, filter models.ServiceFilter) ([]models.Service, error) {
	filter = filter.Normalize()
	if err := models.Validate(filter); err != nil {
		return nil, err
	}

	return call(ctx, s.transport, transport.Get(PathServiceList, transport.Normal), func() []models.Service {
		out := []models.Service{}
		for _, svc := range s.oneStopRepo.GetServices() {
			if filter.Match(svc) {
				out = append(out, svc)
			}
		}
		return out
	})
}

// GetService retrieves one catalog entry
func (s *oneStopService) GetService(ctx context.Context, id string) (*models.Service, error) {
	return transport.Call(ctx, s.transport, transport.Get(PathServiceDetail, transport.Light), func() (*models.Service, error) {
		svc, err := s.oneStopRepo.GetServiceByID(id)
		if err != nil {
			s.logger.WithError(err).WithField("service_id", id).Error("Failed to get service")
			return nil, fmt.Errorf("service %s: %w", id, err)
		}
		return svc, nil
	})
}

// SubmitRequest files a request for a catalog service.
// The expected date is the submission date plus the service's processing days.
func (s *oneStopService) SubmitRequest(ctx context.Context, input models.ServiceRequestInput) (*models.ServiceRequest, error) {
	if input.Copies == 0 {
		input.Copies = 1
	}
	if err := models.Validate(input); err != nil {
		return nil, err
	}

	return transport.Call(ctx, s.transport, transport.Post(PathServiceSubmit, transport.Heavy), func() (*models.ServiceRequest, error) {
		svc, err := s.oneStopRepo.GetServiceByID(input.ServiceID)
		if err != nil {
			s.logger.WithError(err).WithField("service_id", input.ServiceID).Error("Failed to get service")
			return nil, fmt.Errorf("service %s: %w", input.ServiceID, err)
		}

		now := s.clock()
		req := models.ServiceRequest{
			ID:           newID("req"),
			ServiceID:    svc.ID,
			ServiceName:  svc.Name,
			Copies:       input.Copies,
			Reason:       input.Reason,
			Status:       models.RequestPending,
			CreatedAt:    now,
			ExpectedDate: now.AddDate(0, 0, svc.ProcessingDays),
		}
		s.oneStopRepo.CreateRequest(req)

		s.logger.WithFields(map[string]interface{}{
			"request_id": req.ID,
			"service_id": svc.ID,
			"copies":     req.Copies,
		}).Info("Service request submitted")

		return &req, nil
	})
}

// GetRequests returns submitted requests matching filter, newest first
func (s *oneStopService) GetRequests(ctx context.Context, filter models.ServiceRequestFilter) ([]models.ServiceRequest, error) {
	filter = filter.Normalize()
	if err := models.Validate(filter); err != nil {
		return nil, err
	}

	return call(ctx, s.transport, transport.Get(PathServiceRequests, transport.Normal), func() []models.ServiceRequest {
		out := []models.ServiceRequest{}
		for _, r := range s.oneStopRepo.GetRequests() {
			if filter.Match(r) {
				out = append(out, r)
			}
		}
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
		return out
	})
}
