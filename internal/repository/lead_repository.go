package repository

import (
	"jobmatch_backend/internal/model"

	"gorm.io/gorm"
)

type LeadRepository struct {
	DB *gorm.DB
}

func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

// CreateWithAnswers inserts the lead header and its answer rows inside one
// transaction. Either everything lands or nothing does.
func (r *LeadRepository) CreateWithAnswers(lead *model.Lead, answers []model.LeadAnswer) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(lead).Error; err != nil {
			return err
		}
		for i := range answers {
			answers[i].LeadID = lead.ID
			if err := tx.Create(&answers[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *LeadRepository) FindByID(id uint) (*model.Lead, error) {
	var lead model.Lead
	err := r.DB.
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("id asc")
		}).
		First(&lead, id).Error
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

func (r *LeadRepository) CountLeads() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Lead{}).Count(&count).Error
	return count, err
}

func (r *LeadRepository) CountAnswers() (int64, error) {
	var count int64
	err := r.DB.Model(&model.LeadAnswer{}).Count(&count).Error
	return count, err
}
