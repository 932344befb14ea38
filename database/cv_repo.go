package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/BicaMarius/digital-portofolio-sub001/models"
)

// CVRepo manages the singleton CV metadata row. At most one row exists at
// a time; Replace swaps the row atomically so a crash mid-replace can
// never leave the table empty while a valid upload exists.
type CVRepo struct {
	db *gorm.DB
}

func NewCVRepo(db *gorm.DB) *CVRepo {
	return &CVRepo{db}
}

// Current returns the CV row, or (nil, nil) when none exists.
func (r *CVRepo) Current() (*models.CV, error) {
	var cv models.CV
	err := r.db.Order("id DESC").First(&cv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cv, nil
}

// Replace deletes any existing row and inserts the fresh one in a single
// transaction. It returns the displaced row so the caller can clean up its
// remote object afterwards.
func (r *CVRepo) Replace(fresh *models.CV) (*models.CV, error) {
	var displaced *models.CV

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.CV
		err := tx.Order("id DESC").First(&existing).Error
		switch {
		case err == nil:
			displaced = &existing
			if err := tx.Delete(&models.CV{}, existing.ID).Error; err != nil {
				return err
			}
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}
		return tx.Create(fresh).Error
	})
	if err != nil {
		return nil, err
	}
	return displaced, nil
}

// Delete removes the current row and returns it, or gorm.ErrRecordNotFound
// when no CV exists.
func (r *CVRepo) Delete() (*models.CV, error) {
	var cv models.CV
	if err := r.db.Order("id DESC").First(&cv).Error; err != nil {
		return nil, err
	}
	if err := r.db.Delete(&models.CV{}, cv.ID).Error; err != nil {
		return nil, err
	}
	return &cv, nil
}
