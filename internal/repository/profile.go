package repository

import (
	"context"

	"devconnector/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const noProfileMsg = "There is no profile for this user"

// ProfileRepository defines persistence operations for profiles and their
// experience and education entries.
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID uint) (*models.Profile, error)
	List(ctx context.Context) ([]models.Profile, error)
	// Save inserts the profile, or updates its scalar columns when it exists.
	Save(ctx context.Context, profile *models.Profile) error
	AddExperience(ctx context.Context, exp *models.Experience) error
	DeleteExperience(ctx context.Context, profileID, expID uint) error
	AddEducation(ctx context.Context, edu *models.Education) error
	DeleteEducation(ctx context.Context, profileID, eduID uint) error
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository returns a new ProfileRepository implementation.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) withEntries(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Experience", newestFirst).
		Preload("Education", newestFirst)
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	var profile models.Profile
	if err := r.withEntries(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, translate(err, noProfileMsg)
	}
	if err := r.attachUsers(ctx, []*models.Profile{&profile}); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) List(ctx context.Context) ([]models.Profile, error) {
	var profiles []models.Profile
	if err := r.withEntries(ctx).Order("id ASC").Find(&profiles).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	ptrs := make([]*models.Profile, len(profiles))
	for i := range profiles {
		ptrs[i] = &profiles[i]
	}
	if err := r.attachUsers(ctx, ptrs); err != nil {
		return nil, err
	}
	return profiles, nil
}

// attachUsers fills the public user subset of each profile.
func (r *profileRepository) attachUsers(ctx context.Context, profiles []*models.Profile) error {
	if len(profiles) == 0 {
		return nil
	}
	ids := make([]uint, 0, len(profiles))
	for _, p := range profiles {
		ids = append(ids, p.UserID)
	}

	var users []models.UserSummary
	if err := r.db.WithContext(ctx).Select("id", "name", "avatar").Where("id IN ?", ids).Find(&users).Error; err != nil {
		return models.NewInternalError(err)
	}
	byID := make(map[uint]*models.UserSummary, len(users))
	for i := range users {
		byID[users[i].ID] = &users[i]
	}
	for _, p := range profiles {
		p.User = byID[p.UserID]
	}
	return nil
}

func (r *profileRepository) Save(ctx context.Context, profile *models.Profile) error {
	db := r.db.WithContext(ctx).Omit(clause.Associations)

	var err error
	if profile.ID == 0 {
		err = db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).Create(profile).Error
	} else {
		err = db.Save(profile).Error
	}
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *profileRepository) AddExperience(ctx context.Context, exp *models.Experience) error {
	if err := r.db.WithContext(ctx).Create(exp).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *profileRepository) DeleteExperience(ctx context.Context, profileID, expID uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND profile_id = ?", expID, profileID).
		Delete(&models.Experience{})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Experience not found")
	}
	return nil
}

func (r *profileRepository) AddEducation(ctx context.Context, edu *models.Education) error {
	if err := r.db.WithContext(ctx).Create(edu).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *profileRepository) DeleteEducation(ctx context.Context, profileID, eduID uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND profile_id = ?", eduID, profileID).
		Delete(&models.Education{})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Education not found")
	}
	return nil
}
