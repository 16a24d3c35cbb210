package models

import (
	"time"

	"gorm.io/datatypes"
)

// CertificateEntry is one certificate inside a portfolio record.
// File holds a data URI only in transit; after a successful save it is
// always a durable object-store URL.
type CertificateEntry struct {
	Name        string `json:"name"`
	File        string `json:"file"`
	Description string `json:"description"`
}

// PortfolioRecord is the single persisted document for one student.
// It is created on first save and overwritten wholesale on every
// subsequent save; certificates live in a JSON column so the record
// keeps document semantics.
type PortfolioRecord struct {
	StudentID    string                                 `gorm:"primaryKey" json:"student_id"`
	Name         string                                 `gorm:"not null" json:"name"`
	ProfileImage string                                 `json:"profile_image"`
	About        string                                 `gorm:"not null" json:"about"`
	Academics    string                                 `gorm:"not null" json:"academics"`
	Projects     string                                 `gorm:"not null" json:"projects"`
	Skills       string                                 `gorm:"not null" json:"skills"`
	Certificates datatypes.JSONType[[]CertificateEntry] `json:"certificates"`
	CreatedAt    time.Time                              `json:"created_at"`
	UpdatedAt    time.Time                              `gorm:"autoUpdateTime" json:"updated_at"`
}

func (PortfolioRecord) TableName() string {
	return "portfolio_records"
}

// CertificateList unwraps the JSON column.
func (r *PortfolioRecord) CertificateList() []CertificateEntry {
	return r.Certificates.Data()
}
