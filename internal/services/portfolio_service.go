package services

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/ommivivekanandsai/EduFolio/internal/cache"
	"github.com/ommivivekanandsai/EduFolio/internal/datauri"
	"github.com/ommivivekanandsai/EduFolio/internal/logger"
	"github.com/ommivivekanandsai/EduFolio/internal/models"
	"github.com/ommivivekanandsai/EduFolio/internal/repositories"
	"github.com/ommivivekanandsai/EduFolio/internal/services/dto"
	"github.com/ommivivekanandsai/EduFolio/internal/storage"
	"github.com/ommivivekanandsai/EduFolio/pkg/apperrors"
)

type PortfolioService interface {
	// SavePortfolio runs the whole submission pipeline: resolve inline
	// files to durable URLs, overwrite the document, mirror the cache
	SavePortfolio(ctx context.Context, db *gorm.DB, studentID string, req *dto.SavePortfolioRequest) (*dto.PortfolioResponse, error)
	GetPortfolio(ctx context.Context, db *gorm.DB, studentID string) (*dto.PortfolioResponse, error)
	DeletePortfolio(ctx context.Context, db *gorm.DB, studentID string) error
}

// UploadLimits bound the decoded inline files the pipeline accepts.
type UploadLimits struct {
	MaxSize      int64
	AllowedTypes []string
}

type portfolioService struct {
	portfolioRepo repositories.PortfolioRepository
	storage       storage.Storage
	recordCache   cache.RecordCache
	limits        UploadLimits
}

func NewPortfolioService(
	portfolioRepo repositories.PortfolioRepository,
	storageInstance storage.Storage,
	recordCache cache.RecordCache,
	limits UploadLimits,
) PortfolioService {
	return &portfolioService{
		portfolioRepo: portfolioRepo,
		storage:       storageInstance,
		recordCache:   recordCache,
		limits:        limits,
	}
}

func (s *portfolioService) SavePortfolio(ctx context.Context, db *gorm.DB, studentID string, req *dto.SavePortfolioRequest) (*dto.PortfolioResponse, error) {
	// 1. Profile image first, before any certificate upload
	profileURL, err := s.resolveProfileImage(ctx, studentID, req.ProfileImage)
	if err != nil {
		return nil, err
	}

	// 2. Certificates fan out concurrently, each upload independent;
	// the indexed slice keeps the submitted order
	certs, err := s.resolveCertificates(ctx, studentID, req.Certificates)
	if err != nil {
		return nil, err
	}

	// 3. Assemble the final record
	record := &models.PortfolioRecord{
		StudentID:    studentID,
		Name:         req.Name,
		ProfileImage: profileURL,
		About:        req.About,
		Academics:    req.Academics,
		Projects:     req.Projects,
		Skills:       req.Skills,
		Certificates: datatypes.NewJSONType(certs),
	}

	// 4. Full-overwrite document write
	if err := s.portfolioRepo.Save(db, record); err != nil {
		return nil, apperrors.ErrSaveFailed(err)
	}

	// 5. Mirror into the cache
	if err := s.recordCache.Put(ctx, record); err != nil {
		return nil, apperrors.ErrSaveFailed(err)
	}

	logger.CtxInfo(ctx, "portfolio saved", "certificates", len(certs))

	return buildPortfolioResponse(record), nil
}

func (s *portfolioService) GetPortfolio(ctx context.Context, db *gorm.DB, studentID string) (*dto.PortfolioResponse, error) {
	if record, err := s.recordCache.Get(ctx, studentID); err == nil {
		return buildPortfolioResponse(record), nil
	} else if err != cache.ErrCacheMiss {
		logger.CtxWarn(ctx, "cache read failed, falling back to store", "error", err.Error())
	}

	record, err := s.portfolioRepo.FindByStudentID(db, studentID)
	if err != nil {
		return nil, handlePortfolioError(err)
	}

	// Backfill the mirror; a failure here must not fail the read
	if err := s.recordCache.Put(ctx, record); err != nil {
		logger.CtxWarn(ctx, "cache backfill failed", "error", err.Error())
	}

	return buildPortfolioResponse(record), nil
}

func (s *portfolioService) DeletePortfolio(ctx context.Context, db *gorm.DB, studentID string) error {
	if err := s.portfolioRepo.Delete(db, studentID); err != nil {
		return handlePortfolioError(err)
	}

	if err := s.recordCache.Delete(ctx, studentID); err != nil {
		return apperrors.InternalError(err)
	}

	// The record is gone either way; orphaned objects are only logged
	if err := s.storage.DeletePrefix(ctx, objectPrefix(studentID)); err != nil {
		logger.CtxError(ctx, "failed to delete portfolio objects", "error", err.Error())
	}

	return nil
}

// Upload helpers

func (s *portfolioService) resolveProfileImage(ctx context.Context, studentID, value string) (string, error) {
	if !datauri.IsDataURI(value) {
		return value, nil
	}

	file, err := datauri.Parse(value)
	if err != nil {
		return "", apperrors.ErrSaveFailed(err)
	}
	if err := s.checkFile(file); err != nil {
		return "", err
	}

	objectPath := objectPrefix(studentID) + "/profile.jpg"
	return s.upload(ctx, objectPath, file)
}

func (s *portfolioService) resolveCertificates(ctx context.Context, studentID string, reqs []dto.CertificateRequest) ([]models.CertificateEntry, error) {
	certs := make([]models.CertificateEntry, len(reqs))

	g, gctx := errgroup.WithContext(ctx)
	for i, cr := range reqs {
		i, cr := i, cr
		certs[i] = models.CertificateEntry{
			Name:        cr.Name,
			File:        cr.File,
			Description: cr.Description,
		}
		if !datauri.IsDataURI(cr.File) {
			continue
		}

		g.Go(func() error {
			file, err := datauri.Parse(cr.File)
			if err != nil {
				return apperrors.ErrSaveFailed(err)
			}
			if err := s.checkFile(file); err != nil {
				return err
			}

			objectPath := objectPrefix(studentID) + "/certs/" + certFileName(cr, file)
			url, err := s.upload(gctx, objectPath, file)
			if err != nil {
				return err
			}
			certs[i].File = url
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return certs, nil
}

func (s *portfolioService) upload(ctx context.Context, objectPath string, file *datauri.File) (string, error) {
	if err := s.storage.Save(ctx, objectPath, bytes.NewReader(file.Data), file.MimeType); err != nil {
		return "", apperrors.ErrSaveFailed(err)
	}
	url, err := s.storage.GetURL(ctx, objectPath)
	if err != nil {
		return "", apperrors.ErrSaveFailed(err)
	}
	return url, nil
}

func (s *portfolioService) checkFile(file *datauri.File) error {
	if s.limits.MaxSize > 0 && int64(len(file.Data)) > s.limits.MaxSize {
		return apperrors.NewBadRequestError(fmt.Sprintf("file exceeds the %d byte limit", s.limits.MaxSize))
	}
	if len(s.limits.AllowedTypes) == 0 {
		return nil
	}
	for _, t := range s.limits.AllowedTypes {
		if t == file.MimeType {
			return nil
		}
	}
	return apperrors.NewBadRequestError(fmt.Sprintf("file type %s is not allowed", file.MimeType))
}

// certFileName keeps the client's original file name when provided,
// reduced to its base name; same-name uploads overwrite at the same path.
func certFileName(cr dto.CertificateRequest, file *datauri.File) string {
	name := strings.TrimSpace(cr.FileName)
	if name != "" {
		return path.Base(name)
	}
	return slugify(cr.Name) + file.Ext()
}

func slugify(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('-')
		}
	}
	if b.Len() == 0 {
		return "certificate"
	}
	return b.String()
}

func objectPrefix(studentID string) string {
	return "portfolios/" + studentID
}

func buildPortfolioResponse(record *models.PortfolioRecord) *dto.PortfolioResponse {
	return &dto.PortfolioResponse{
		StudentID:    record.StudentID,
		Name:         record.Name,
		ProfileImage: record.ProfileImage,
		About:        record.About,
		Academics:    record.Academics,
		Projects:     record.Projects,
		Skills:       record.Skills,
		Certificates: record.CertificateList(),
		CreatedAt:    record.CreatedAt,
		UpdatedAt:    record.UpdatedAt,
	}
}

func handlePortfolioError(err error) error {
	if apperrors.Is(err, gorm.ErrRecordNotFound) ||
		apperrors.Is(err, repositories.ErrPortfolioNotFound) {
		return apperrors.ErrNotFound(err)
	}
	return apperrors.InternalError(err)
}
