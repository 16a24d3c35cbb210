package dto

import (
	"time"

	"github.com/ommivivekanandsai/EduFolio/internal/models"
)

// Portfolio Request DTOs

// SavePortfolioRequest is the full form payload. File fields accept
// either inline data URIs (fresh selections) or already-resolved URLs
// (untouched fields on a re-submission).
type SavePortfolioRequest struct {
	Name         string               `json:"name" validate:"required,min=3,max=50"`
	ProfileImage string               `json:"profile_image" validate:"required,filedata"`
	About        string               `json:"about" validate:"required,min=10,max=500"`
	Academics    string               `json:"academics" validate:"required,min=10,max=500"`
	Projects     string               `json:"projects" validate:"required,min=10,max=1000"`
	Skills       string               `json:"skills" validate:"required,min=2,max=300,skills_list"`
	Certificates []CertificateRequest `json:"certificates" validate:"dive"`
}

type CertificateRequest struct {
	Name        string `json:"name" validate:"required"`
	File        string `json:"file" validate:"required,filedata"`
	FileName    string `json:"file_name"`
	Description string `json:"description" validate:"required,min=3,max=200"`
}

// Portfolio Response DTOs

type PortfolioResponse struct {
	StudentID    string                    `json:"student_id"`
	Name         string                    `json:"name"`
	ProfileImage string                    `json:"profile_image"`
	About        string                    `json:"about"`
	Academics    string                    `json:"academics"`
	Projects     string                    `json:"projects"`
	Skills       string                    `json:"skills"`
	Certificates []models.CertificateEntry `json:"certificates"`
	CreatedAt    time.Time                 `json:"created_at"`
	UpdatedAt    time.Time                 `json:"updated_at"`
}
