package repository

import "student-portal-svc/internal/models"

// OneStopRepository defines the interface for one-stop service data operations
type OneStopRepository interface {
	GetServices() []models.Service
	GetServiceByID(id string) (*models.Service, error)
	GetRequests() []models.ServiceRequest
	CreateRequest(req models.ServiceRequest)
}

// oneStopRepository implements OneStopRepository
type oneStopRepository struct {
	services *collection[models.Service]
	requests *collection[models.ServiceRequest]
}

// NewOneStopRepository creates a new instance of OneStopRepository
func NewOneStopRepository(services []models.Service, requests []models.ServiceRequest) OneStopRepository {
	return &oneStopRepository{
		services: newCollection(services, func(s models.Service) string { return s.ID }).withClone(cloneService),
		requests: newCollection(requests, func(r models.ServiceRequest) string { return r.ID }),
	}
}

// GetServices returns the service catalog
func (r *oneStopRepository) GetServices() []models.Service {
	return r.services.all()
}

// GetServiceByID retrieves a catalog entry by ID
func (r *oneStopRepository) GetServiceByID(id string) (*models.Service, error) {
	return r.services.find(id)
}

// GetRequests returns every submitted request
func (r *oneStopRepository) GetRequests() []models.ServiceRequest {
	return r.requests.all()
}

// CreateRequest appends a submitted request
func (r *oneStopRepository) CreateRequest(req models.ServiceRequest) {
	r.requests.add(req)
}
