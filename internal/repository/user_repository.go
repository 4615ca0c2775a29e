package repository

import (
	"peregrine-backend/internal/model"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserRepository interface {
	GetAll() ([]model.User, error)
	FindByID(id uuid.UUID) (*model.User, error)
	FindByUsername(username string) (*model.User, error)
	Create(user *model.User, password string) error
	Update(user *model.User) error
	Delete(id uuid.UUID) error
	ValidateCredentials(username, password string) bool
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db}
}

func (r *userRepository) GetAll() ([]model.User, error) {
	var users []model.User
	err := r.db.Find(&users).Error
	return users, err
}

func (r *userRepository) FindByID(id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, classify(err)
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(username string) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, "username = ?", username).Error; err != nil {
		return nil, classify(err)
	}
	return &user, nil
}

// Create hashes the plaintext password before persisting. The plaintext
// is never stored.
func (r *userRepository) Create(user *model.User, password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.PasswordHash = string(hashed)
	return classify(r.db.Create(user).Error)
}

func (r *userRepository) Update(user *model.User) error {
	return classify(r.db.Save(user).Error)
}

// Delete removes the row permanently. Users are the only aggregate with
// a hard delete.
func (r *userRepository) Delete(id uuid.UUID) error {
	var user model.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return classify(err)
	}
	return classify(r.db.Unscoped().Delete(&user).Error)
}

// ValidateCredentials returns false uniformly for an unknown username
// and for a wrong password.
func (r *userRepository) ValidateCredentials(username, password string) bool {
	var user model.User
	if err := r.db.First(&user, "username = ?", username).Error; err != nil {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil
}
