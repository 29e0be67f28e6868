package storage

import (
	"menu-backend/internal/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts the user; a taken username surfaces as ErrConflict.
func (r *UserRepository) Create(user *models.User) error {
	return classify(r.db.Create(user).Error)
}

func (r *UserRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, classify(err)
	}
	return &user, nil
}

func (r *UserRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "username = ?", username).Error; err != nil {
		return nil, classify(err)
	}
	return &user, nil
}

// List returns users ordered by id. limit <= 0 means no limit.
func (r *UserRepository) List(limit, offset int) ([]models.User, error) {
	q := r.db.Order("id asc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	var users []models.User
	if err := q.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Delete removes the user and any sessions still attached to it, in one
// transaction, so a deleted account cannot keep a live login.
func (r *UserRepository) Delete(user *models.User) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.Session{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, user.ID).Error
	})
	return classify(err)
}
