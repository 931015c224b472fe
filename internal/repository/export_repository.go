package repository

import "student-portal-svc/internal/models"

// ExportRepository defines the interface for generated export files
type ExportRepository interface {
	SaveExport(file models.ExportFile)
	GetExportByID(id string) (*models.ExportFile, error)
}

// exportRepository implements ExportRepository
type exportRepository struct {
	files *collection[models.ExportFile]
}

// NewExportRepository creates an empty ExportRepository
func NewExportRepository() ExportRepository {
	return &exportRepository{
		files: newCollection(nil, func(f models.ExportFile) string { return f.ID }).withClone(cloneExportFile),
	}
}

// SaveExport stores a generated file
func (r *exportRepository) SaveExport(file models.ExportFile) {
	r.files.add(file)
}

// GetExportByID retrieves a generated file by ID
func (r *exportRepository) GetExportByID(id string) (*models.ExportFile, error) {
	return r.files.find(id)
}
