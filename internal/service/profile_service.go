package service

import (
	"context"
	"strings"
	"time"

	"devconnector/internal/models"
	"devconnector/internal/repository"
	"devconnector/internal/validation"
)

// ProfileInput is the body of POST /api/profile. Skills is a comma separated list.
type ProfileInput struct {
	UserID         uint   `json:"-"`
	Company        string `json:"company"`
	Website        string `json:"website"`
	Location       string `json:"location"`
	Bio            string `json:"bio"`
	Status         string `json:"status" validate:"notblank" msg:"Status is required"`
	GitHubUsername string `json:"githubusername"`
	Skills         string `json:"skills" validate:"notblank,taglist" msg:"Skills is required"`
	YouTube        string `json:"youtube"`
	Twitter        string `json:"twitter"`
	Facebook       string `json:"facebook"`
	LinkedIn       string `json:"linkedin"`
	Instagram      string `json:"instagram"`
}

// ExperienceInput is the body of PUT /api/profile/experience.
type ExperienceInput struct {
	UserID      uint   `json:"-"`
	Title       string `json:"title" validate:"notblank" msg:"Title is required"`
	Company     string `json:"company" validate:"notblank" msg:"Company is required"`
	Location    string `json:"location"`
	From        string `json:"from" validate:"required,date" msg:"From date is required"`
	To          string `json:"to" validate:"omitempty,date" msg:"To must be a valid date"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// EducationInput is the body of PUT /api/profile/education.
type EducationInput struct {
	UserID       uint   `json:"-"`
	School       string `json:"school" validate:"notblank" msg:"School is required"`
	Degree       string `json:"degree" validate:"notblank" msg:"Degree is required"`
	FieldOfStudy string `json:"fieldofstudy" validate:"notblank" msg:"Field of study is required"`
	From         string `json:"from" validate:"required,date" msg:"From date is required"`
	To           string `json:"to" validate:"required,date" msg:"To date is required"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

// ProfileService manages profiles, their entries, and account removal.
type ProfileService struct {
	profiles repository.ProfileRepository
	users    repository.UserRepository
}

func NewProfileService(profiles repository.ProfileRepository, users repository.UserRepository) *ProfileService {
	return &ProfileService{profiles: profiles, users: users}
}

func (s *ProfileService) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	return s.profiles.GetByUserID(ctx, userID)
}

func (s *ProfileService) List(ctx context.Context) ([]models.Profile, error) {
	return s.profiles.List(ctx)
}

// Upsert creates the caller's profile or merges in into the existing one.
// Empty scalar fields leave stored values untouched; skills and social links
// are replaced.
func (s *ProfileService) Upsert(ctx context.Context, in ProfileInput) (*models.Profile, error) {
	profile, err := s.profiles.GetByUserID(ctx, in.UserID)
	switch {
	case models.HasCode(err, models.CodeNotFound):
		profile = &models.Profile{UserID: in.UserID}
	case err != nil:
		return nil, err
	}

	skills := NormalizeSkills(in.Skills)
	if len(skills) == 0 {
		return nil, models.NewFieldErrors(models.FieldError{Field: "skills", Msg: "Skills is required"})
	}

	mergeString(&profile.Company, in.Company)
	mergeString(&profile.Website, in.Website)
	mergeString(&profile.Location, in.Location)
	mergeString(&profile.Bio, in.Bio)
	mergeString(&profile.Status, in.Status)
	mergeString(&profile.GitHubUsername, in.GitHubUsername)
	profile.Skills = skills
	profile.Social = models.SocialLinks{
		YouTube:   strings.TrimSpace(in.YouTube),
		Twitter:   strings.TrimSpace(in.Twitter),
		Facebook:  strings.TrimSpace(in.Facebook),
		LinkedIn:  strings.TrimSpace(in.LinkedIn),
		Instagram: strings.TrimSpace(in.Instagram),
	}

	if err := s.profiles.Save(ctx, profile); err != nil {
		return nil, err
	}
	return s.profiles.GetByUserID(ctx, in.UserID)
}

func mergeString(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}

// NormalizeSkills splits a comma separated list, trims each tag and drops empties.
func NormalizeSkills(raw string) []string {
	skills := []string{}
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

func (s *ProfileService) AddExperience(ctx context.Context, in ExperienceInput) (*models.Profile, error) {
	profile, err := s.profiles.GetByUserID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	from, to, err := parseRange(in.From, in.To)
	if err != nil {
		return nil, err
	}

	exp := &models.Experience{
		ProfileID:   profile.ID,
		Title:       strings.TrimSpace(in.Title),
		Company:     strings.TrimSpace(in.Company),
		Location:    strings.TrimSpace(in.Location),
		From:        from,
		To:          to,
		Current:     in.Current,
		Description: in.Description,
	}
	if err := s.profiles.AddExperience(ctx, exp); err != nil {
		return nil, err
	}
	return s.profiles.GetByUserID(ctx, in.UserID)
}

func (s *ProfileService) DeleteExperience(ctx context.Context, userID, expID uint) (*models.Profile, error) {
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.profiles.DeleteExperience(ctx, profile.ID, expID); err != nil {
		return nil, err
	}
	return s.profiles.GetByUserID(ctx, userID)
}

func (s *ProfileService) AddEducation(ctx context.Context, in EducationInput) (*models.Profile, error) {
	profile, err := s.profiles.GetByUserID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	from, to, err := parseRange(in.From, in.To)
	if err != nil {
		return nil, err
	}

	edu := &models.Education{
		ProfileID:    profile.ID,
		School:       strings.TrimSpace(in.School),
		Degree:       strings.TrimSpace(in.Degree),
		FieldOfStudy: strings.TrimSpace(in.FieldOfStudy),
		From:         from,
		To:           to,
		Current:      in.Current,
		Description:  in.Description,
	}
	if err := s.profiles.AddEducation(ctx, edu); err != nil {
		return nil, err
	}
	return s.profiles.GetByUserID(ctx, in.UserID)
}

func (s *ProfileService) DeleteEducation(ctx context.Context, userID, eduID uint) (*models.Profile, error) {
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.profiles.DeleteEducation(ctx, profile.ID, eduID); err != nil {
		return nil, err
	}
	return s.profiles.GetByUserID(ctx, userID)
}

// DeleteAccount removes the user together with their profile and posts.
func (s *ProfileService) DeleteAccount(ctx context.Context, userID uint) error {
	return s.users.DeleteAccount(ctx, userID)
}

func parseRange(fromRaw, toRaw string) (time.Time, *time.Time, error) {
	from, err := validation.ParseDate(fromRaw)
	if err != nil {
		return time.Time{}, nil, models.NewFieldErrors(models.FieldError{Field: "from", Msg: "From date is required"})
	}
	if strings.TrimSpace(toRaw) == "" {
		return from, nil, nil
	}
	to, err := validation.ParseDate(toRaw)
	if err != nil {
		return time.Time{}, nil, models.NewFieldErrors(models.FieldError{Field: "to", Msg: "To must be a valid date"})
	}
	return from, &to, nil
}
