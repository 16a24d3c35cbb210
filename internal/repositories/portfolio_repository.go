package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ommivivekanandsai/EduFolio/internal/models"
)

var ErrPortfolioNotFound = errors.New("portfolio record not found")

type PortfolioRepository interface {
	// Save writes the whole record, inserting on first save and
	// replacing every column on later saves
	Save(db *gorm.DB, record *models.PortfolioRecord) error
	FindByStudentID(db *gorm.DB, studentID string) (*models.PortfolioRecord, error)
	Delete(db *gorm.DB, studentID string) error
	Exists(db *gorm.DB, studentID string) (bool, error)
}

type PortfolioRepositoryImpl struct{}

func NewPortfolioRepository() PortfolioRepository {
	return &PortfolioRepositoryImpl{}
}

func (r *PortfolioRepositoryImpl) Save(db *gorm.DB, record *models.PortfolioRecord) error {
	// gorm Save with a populated primary key is an upsert that rewrites
	// every column, which is exactly the full-overwrite contract
	return db.Save(record).Error
}

func (r *PortfolioRepositoryImpl) FindByStudentID(db *gorm.DB, studentID string) (*models.PortfolioRecord, error) {
	var record models.PortfolioRecord
	err := db.First(&record, "student_id = ?", studentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPortfolioNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (r *PortfolioRepositoryImpl) Delete(db *gorm.DB, studentID string) error {
	result := db.Delete(&models.PortfolioRecord{}, "student_id = ?", studentID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPortfolioNotFound
	}
	return nil
}

func (r *PortfolioRepositoryImpl) Exists(db *gorm.DB, studentID string) (bool, error) {
	var count int64
	err := db.Model(&models.PortfolioRecord{}).Where("student_id = ?", studentID).Count(&count).Error
	return count > 0, err
}
