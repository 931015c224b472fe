package models

import "time"

// ExportFile is a generated spreadsheet kept in memory until restart
type ExportFile struct {
	ID          string    `json:"id"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	Content     []byte    `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}
