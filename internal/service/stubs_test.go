package service

import (
	"context"
	"errors"
	"testing"

	"devconnector/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	createFn        func(context.Context, *models.User) error
	deleteAccountFn func(context.Context, uint) error
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) DeleteAccount(ctx context.Context, id uint) error {
	return s.deleteAccountFn(ctx, id)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Name: "User", Avatar: "//avatar"}, nil
		},
		getByEmailFn:    func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		createFn:        func(_ context.Context, u *models.User) error { u.ID = 1; return nil },
		deleteAccountFn: func(_ context.Context, _ uint) error { return nil },
	}
}

// profileRepoStub is a stub for repository.ProfileRepository.
type profileRepoStub struct {
	getByUserIDFn      func(context.Context, uint) (*models.Profile, error)
	listFn             func(context.Context) ([]models.Profile, error)
	saveFn             func(context.Context, *models.Profile) error
	addExperienceFn    func(context.Context, *models.Experience) error
	deleteExperienceFn func(context.Context, uint, uint) error
	addEducationFn     func(context.Context, *models.Education) error
	deleteEducationFn  func(context.Context, uint, uint) error
}

func (s *profileRepoStub) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	return s.getByUserIDFn(ctx, userID)
}
func (s *profileRepoStub) List(ctx context.Context) ([]models.Profile, error) {
	return s.listFn(ctx)
}
func (s *profileRepoStub) Save(ctx context.Context, p *models.Profile) error {
	return s.saveFn(ctx, p)
}
func (s *profileRepoStub) AddExperience(ctx context.Context, e *models.Experience) error {
	return s.addExperienceFn(ctx, e)
}
func (s *profileRepoStub) DeleteExperience(ctx context.Context, profileID, expID uint) error {
	return s.deleteExperienceFn(ctx, profileID, expID)
}
func (s *profileRepoStub) AddEducation(ctx context.Context, e *models.Education) error {
	return s.addEducationFn(ctx, e)
}
func (s *profileRepoStub) DeleteEducation(ctx context.Context, profileID, eduID uint) error {
	return s.deleteEducationFn(ctx, profileID, eduID)
}

// memProfileRepo keeps a single profile in memory behind a profileRepoStub.
func memProfileRepo() (*profileRepoStub, **models.Profile) {
	var stored *models.Profile
	stub := &profileRepoStub{
		getByUserIDFn: func(_ context.Context, userID uint) (*models.Profile, error) {
			if stored == nil || stored.UserID != userID {
				return nil, models.NewNotFoundError("There is no profile for this user")
			}
			cp := *stored
			return &cp, nil
		},
		listFn: func(_ context.Context) ([]models.Profile, error) { return nil, nil },
		saveFn: func(_ context.Context, p *models.Profile) error {
			if p.ID == 0 {
				p.ID = 10
			}
			cp := *p
			stored = &cp
			return nil
		},
		addExperienceFn: func(_ context.Context, e *models.Experience) error {
			stored.Experience = append([]models.Experience{*e}, stored.Experience...)
			return nil
		},
		deleteExperienceFn: func(_ context.Context, _, _ uint) error { return nil },
		addEducationFn: func(_ context.Context, e *models.Education) error {
			stored.Education = append([]models.Education{*e}, stored.Education...)
			return nil
		},
		deleteEducationFn: func(_ context.Context, _, _ uint) error { return nil },
	}
	return stub, &stored
}

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn        func(context.Context, *models.Post) error
	listFn          func(context.Context) ([]models.Post, error)
	getByIDFn       func(context.Context, uint) (*models.Post, error)
	deleteFn        func(context.Context, uint) error
	likeFn          func(context.Context, uint, uint) (bool, error)
	unlikeFn        func(context.Context, uint, uint) (bool, error)
	listLikesFn     func(context.Context, uint) ([]models.Like, error)
	addCommentFn    func(context.Context, *models.Comment) error
	getCommentFn    func(context.Context, uint, uint) (*models.Comment, error)
	deleteCommentFn func(context.Context, uint, uint) error
	listCommentsFn  func(context.Context, uint) ([]models.Comment, error)
}

func (s *postRepoStub) Create(ctx context.Context, p *models.Post) error { return s.createFn(ctx, p) }
func (s *postRepoStub) List(ctx context.Context) ([]models.Post, error) { return s.listFn(ctx) }
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error { return s.deleteFn(ctx, id) }
func (s *postRepoStub) Like(ctx context.Context, postID, userID uint) (bool, error) {
	return s.likeFn(ctx, postID, userID)
}
func (s *postRepoStub) Unlike(ctx context.Context, postID, userID uint) (bool, error) {
	return s.unlikeFn(ctx, postID, userID)
}
func (s *postRepoStub) ListLikes(ctx context.Context, postID uint) ([]models.Like, error) {
	return s.listLikesFn(ctx, postID)
}
func (s *postRepoStub) AddComment(ctx context.Context, c *models.Comment) error {
	return s.addCommentFn(ctx, c)
}
func (s *postRepoStub) GetComment(ctx context.Context, postID, commentID uint) (*models.Comment, error) {
	return s.getCommentFn(ctx, postID, commentID)
}
func (s *postRepoStub) DeleteComment(ctx context.Context, postID, commentID uint) error {
	return s.deleteCommentFn(ctx, postID, commentID)
}
func (s *postRepoStub) ListComments(ctx context.Context, postID uint) ([]models.Comment, error) {
	return s.listCommentsFn(ctx, postID)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn: func(_ context.Context, p *models.Post) error { p.ID = 1; return nil },
		listFn:   func(_ context.Context) ([]models.Post, error) { return []models.Post{}, nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Post, error) {
			return &models.Post{ID: id, UserID: 1}, nil
		},
		deleteFn:    func(_ context.Context, _ uint) error { return nil },
		likeFn:      func(_ context.Context, _, _ uint) (bool, error) { return true, nil },
		unlikeFn:    func(_ context.Context, _, _ uint) (bool, error) { return true, nil },
		listLikesFn: func(_ context.Context, _ uint) ([]models.Like, error) { return []models.Like{}, nil },
		addCommentFn: func(_ context.Context, c *models.Comment) error {
			c.ID = 1
			return nil
		},
		getCommentFn: func(_ context.Context, postID, commentID uint) (*models.Comment, error) {
			return &models.Comment{ID: commentID, PostID: postID, UserID: 1}, nil
		},
		deleteCommentFn: func(_ context.Context, _, _ uint) error { return nil },
		listCommentsFn:  func(_ context.Context, _ uint) ([]models.Comment, error) { return []models.Comment{}, nil },
	}
}

// assertAppError asserts that err is an AppError with the given code and message.
func assertAppError(t *testing.T, err error, code, msg string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, code, appErr.Code)
	if msg != "" {
		assert.Equal(t, msg, appErr.Message)
	}
}
