package user

import (
	"Tastebook-Backend/entities"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	UserRepository interface {
		CreateUser(ctx context.Context, user *entities.User) error
		GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
		UpdateUser(ctx context.Context, user *entities.User) error
		CreateProfileIfAbsent(ctx context.Context, profile *entities.Profile) error
		GetProfileByID(ctx context.Context, id string) (*entities.Profile, error)
		UpdateProfile(ctx context.Context, id string, updates map[string]interface{}) (*entities.Profile, error)
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

// CreateProfileIfAbsent is the idempotent half of the dual profile-creation
// path: a conflicting row means the profile already exists and the insert is a
// no-op rather than an error.
func (r *userRepository) CreateProfileIfAbsent(ctx context.Context, profile *entities.Profile) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(profile).Error
}

func (r *userRepository) GetProfileByID(ctx context.Context, id string) (*entities.Profile, error) {
	var profile entities.Profile
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile applies a partial update and re-reads the row, so the caller
// always sees the server-authoritative state.
func (r *userRepository) UpdateProfile(ctx context.Context, id string, updates map[string]interface{}) (*entities.Profile, error) {
	if err := r.db.WithContext(ctx).
		Model(&entities.Profile{}).
		Where("id = ?", id).
		Updates(updates).Error; err != nil {
		return nil, err
	}

	var profile entities.Profile
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}
