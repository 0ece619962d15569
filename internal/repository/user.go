package repository

import (
	"context"
	"errors"

	"devconnector/internal/cache"
	"devconnector/internal/models"

	"gorm.io/gorm"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
	// GetByEmail returns (nil, nil) when no user has that email.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	// DeleteAccount removes the user and everything they own in one transaction.
	DeleteAccount(ctx context.Context, id uint) error
}

type userRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

// NewUserRepository returns a new UserRepository implementation. c may be nil.
func NewUserRepository(db *gorm.DB, c *cache.Cache) UserRepository {
	return &userRepository{db: db, cache: c}
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := r.cache.Aside(ctx, cache.UserKey(id), &user, cache.UserTTL, func() error {
		return translate(r.db.WithContext(ctx).First(&user, id).Error, "User not found")
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("User already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *userRepository) DeleteAccount(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ownPosts := tx.Model(&models.Post{}).Select("id").Where("user_id = ?", id)
		ownProfile := tx.Model(&models.Profile{}).Select("id").Where("user_id = ?", id)

		steps := []func() error{
			func() error { return tx.Where("post_id IN (?)", ownPosts).Delete(&models.Like{}).Error },
			func() error { return tx.Where("post_id IN (?)", ownPosts).Delete(&models.Comment{}).Error },
			func() error { return tx.Where("user_id = ?", id).Delete(&models.Post{}).Error },
			func() error { return tx.Where("user_id = ?", id).Delete(&models.Like{}).Error },
			func() error { return tx.Where("profile_id IN (?)", ownProfile).Delete(&models.Experience{}).Error },
			func() error { return tx.Where("profile_id IN (?)", ownProfile).Delete(&models.Education{}).Error },
			func() error { return tx.Where("user_id = ?", id).Delete(&models.Profile{}).Error },
		}
		for _, step := range steps {
			if err := step(); err != nil {
				return models.NewInternalError(err)
			}
		}

		res := tx.Delete(&models.User{}, id)
		if res.Error != nil {
			return models.NewInternalError(res.Error)
		}
		if res.RowsAffected == 0 {
			return models.NewNotFoundError("User not found")
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.cache.Invalidate(ctx, cache.UserKey(id))
	return nil
}
