package server

import (
	"devconnector/internal/service"

	"github.com/gofiber/fiber/v2"
)

const postNotFoundMsg = "Post not found"

func (s *Server) CreatePost(c *fiber.Ctx) error {
	var in service.CreatePostInput
	if err := parseBody(c, &in); err != nil {
		return s.respondError(c, err)
	}
	in.UserID = currentUserID(c)

	post, err := s.postService.Create(c.UserContext(), in)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(post)
}

func (s *Server) ListPosts(c *fiber.Ctx) error {
	posts, err := s.postService.List(c.UserContext())
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(posts)
}

func (s *Server) GetPost(c *fiber.Ctx) error {
	postID, err := parseID(c, "id", postNotFoundMsg)
	if err != nil {
		return s.respondError(c, err)
	}
	post, err := s.postService.Get(c.UserContext(), postID)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(post)
}

func (s *Server) DeletePost(c *fiber.Ctx) error {
	postID, err := parseID(c, "id", postNotFoundMsg)
	if err != nil {
		return s.respondError(c, err)
	}
	if err := s.postService.Delete(c.UserContext(), currentUserID(c), postID); err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(fiber.Map{"msg": "Post removed"})
}

func (s *Server) LikePost(c *fiber.Ctx) error {
	postID, err := parseID(c, "id", postNotFoundMsg)
	if err != nil {
		return s.respondError(c, err)
	}
	likes, err := s.postService.Like(c.UserContext(), currentUserID(c), postID)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(likes)
}

func (s *Server) UnlikePost(c *fiber.Ctx) error {
	postID, err := parseID(c, "id", postNotFoundMsg)
	if err != nil {
		return s.respondError(c, err)
	}
	likes, err := s.postService.Unlike(c.UserContext(), currentUserID(c), postID)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(likes)
}

func (s *Server) CreateComment(c *fiber.Ctx) error {
	postID, err := parseID(c, "id", postNotFoundMsg)
	if err != nil {
		return s.respondError(c, err)
	}

	in := service.CommentInput{}
	if err := parseBody(c, &in); err != nil {
		return s.respondError(c, err)
	}
	in.UserID = currentUserID(c)
	in.PostID = postID

	comments, err := s.postService.AddComment(c.UserContext(), in)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(comments)
}

func (s *Server) DeleteComment(c *fiber.Ctx) error {
	postID, err := parseID(c, "id", postNotFoundMsg)
	if err != nil {
		return s.respondError(c, err)
	}
	commentID, err := parseID(c, "comment_id", "Comment does not exist")
	if err != nil {
		return s.respondError(c, err)
	}

	comments, err := s.postService.DeleteComment(c.UserContext(), currentUserID(c), postID, commentID)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(comments)
}
