package storage

import (
	"menu-backend/internal/models"

	"gorm.io/gorm"
)

type RestaurantRepository struct {
	db *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{db: db}
}

func (r *RestaurantRepository) Create(restaurant *models.Restaurant) error {
	return classify(r.db.Create(restaurant).Error)
}

func (r *RestaurantRepository) FindByID(id uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := r.db.First(&restaurant, "id = ?", id).Error; err != nil {
		return nil, classify(err)
	}
	return &restaurant, nil
}

func (r *RestaurantRepository) FindBySlug(slug string) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := r.db.First(&restaurant, "slug = ?", slug).Error; err != nil {
		return nil, classify(err)
	}
	return &restaurant, nil
}

// List returns restaurants ordered by id. limit <= 0 means no limit.
func (r *RestaurantRepository) List(limit, offset int) ([]models.Restaurant, error) {
	q := r.db.Order("id asc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	var restaurants []models.Restaurant
	if err := q.Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (r *RestaurantRepository) Update(restaurant *models.Restaurant) error {
	return classify(r.db.Save(restaurant).Error)
}

// Delete removes a restaurant unless it still owns items or users. The check
// and the delete run in one transaction so a concurrent item insert cannot
// slip between them.
func (r *RestaurantRepository) Delete(restaurant *models.Restaurant) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var items int64
		if err := tx.Model(&models.Item{}).Where("restaurant_id = ?", restaurant.ID).Count(&items).Error; err != nil {
			return err
		}
		var users int64
		if err := tx.Model(&models.User{}).Where("restaurant_id = ?", restaurant.ID).Count(&users).Error; err != nil {
			return err
		}
		if items > 0 || users > 0 {
			return ErrConflict
		}
		return tx.Delete(&models.Restaurant{}, restaurant.ID).Error
	})
	return classify(err)
}
