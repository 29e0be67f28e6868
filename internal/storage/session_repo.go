package storage

import (
	"time"

	"menu-backend/internal/models"

	"gorm.io/gorm"
)

type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(session *models.Session) error {
	return classify(r.db.Create(session).Error)
}

func (r *SessionRepository) Find(id string) (*models.Session, error) {
	var session models.Session
	if err := r.db.First(&session, "id = ?", id).Error; err != nil {
		return nil, classify(err)
	}
	return &session, nil
}

// Extend pushes the expiry forward. Called on every authenticated request,
// which is what makes the expiration sliding rather than absolute.
func (r *SessionRepository) Extend(id string, expiresAt time.Time) error {
	return classify(r.db.Model(&models.Session{}).Where("id = ?", id).Update("expires_at", expiresAt).Error)
}

func (r *SessionRepository) Delete(id string) error {
	return classify(r.db.Delete(&models.Session{}, "id = ?", id).Error)
}

// DeleteExpired drops sessions whose window has fully lapsed. Run
// opportunistically on login; there is no background sweeper.
func (r *SessionRepository) DeleteExpired(now time.Time) error {
	return classify(r.db.Where("expires_at < ?", now).Delete(&models.Session{}).Error)
}
