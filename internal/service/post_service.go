package service

import (
	"context"
	"strings"

	"devconnector/internal/models"
	"devconnector/internal/observability"
	"devconnector/internal/repository"
)

const notAuthorized = "User not authorized"

// CreatePostInput is the body of POST /api/posts.
type CreatePostInput struct {
	UserID uint   `json:"-"`
	Text   string `json:"text" validate:"notblank" msg:"Text is required"`
}

// CommentInput is the body of POST /api/posts/comment/:id.
type CommentInput struct {
	UserID uint   `json:"-"`
	PostID uint   `json:"-"`
	Text   string `json:"text" validate:"notblank" msg:"Text is required"`
}

type PostService struct {
	posts repository.PostRepository
	users repository.UserRepository
}

func NewPostService(posts repository.PostRepository, users repository.UserRepository) *PostService {
	return &PostService{posts: posts, users: users}
}

// Create stores a post with a snapshot of the author's name and avatar.
func (s *PostService) Create(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	author, err := s.users.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		UserID: author.ID,
		Text:   strings.TrimSpace(in.Text),
		Name:   author.Name,
		Avatar: author.Avatar,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) List(ctx context.Context) ([]models.Post, error) {
	return s.posts.List(ctx)
}

func (s *PostService) Get(ctx context.Context, postID uint) (*models.Post, error) {
	return s.posts.GetByID(ctx, postID)
}

// Delete removes the post when userID is its author. A missing post is
// reported as not found to every caller, before authorship is looked at.
func (s *PostService) Delete(ctx context.Context, userID, postID uint) error {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return models.NewUnauthorizedError(notAuthorized)
	}
	if err := s.posts.Delete(ctx, postID); err != nil {
		return err
	}
	observability.Logger.InfoContext(ctx, "post removed", "post_id", postID)
	return nil
}

// Like adds userID's like and returns the post's likes.
func (s *PostService) Like(ctx context.Context, userID, postID uint) ([]models.Like, error) {
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	added, err := s.posts.Like(ctx, postID, userID)
	if err != nil {
		return nil, err
	}
	if !added {
		return nil, models.NewBadRequestError("Post already liked")
	}
	return s.posts.ListLikes(ctx, postID)
}

// Unlike removes userID's like and returns the post's likes.
func (s *PostService) Unlike(ctx context.Context, userID, postID uint) ([]models.Like, error) {
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	removed, err := s.posts.Unlike(ctx, postID, userID)
	if err != nil {
		return nil, err
	}
	if !removed {
		return nil, models.NewBadRequestError("Post has not yet been liked")
	}
	return s.posts.ListLikes(ctx, postID)
}

// AddComment stores a comment with an author snapshot and returns the post's comments.
func (s *PostService) AddComment(ctx context.Context, in CommentInput) ([]models.Comment, error) {
	if _, err := s.posts.GetByID(ctx, in.PostID); err != nil {
		return nil, err
	}
	author, err := s.users.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID: in.PostID,
		UserID: author.ID,
		Text:   strings.TrimSpace(in.Text),
		Name:   author.Name,
		Avatar: author.Avatar,
	}
	if err := s.posts.AddComment(ctx, comment); err != nil {
		return nil, err
	}
	return s.posts.ListComments(ctx, in.PostID)
}

// DeleteComment removes the comment when userID wrote it and returns the remaining comments.
func (s *PostService) DeleteComment(ctx context.Context, userID, postID, commentID uint) ([]models.Comment, error) {
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	comment, err := s.posts.GetComment(ctx, postID, commentID)
	if err != nil {
		return nil, err
	}
	if comment.UserID != userID {
		return nil, models.NewUnauthorizedError(notAuthorized)
	}
	if err := s.posts.DeleteComment(ctx, postID, commentID); err != nil {
		return nil, err
	}
	return s.posts.ListComments(ctx, postID)
}
