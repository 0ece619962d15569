package server

import (
	"devconnector/internal/service"

	"github.com/gofiber/fiber/v2"
)

const noProfileMsg = "There is no profile for this user"

func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	profile, err := s.profileService.GetByUserID(c.UserContext(), currentUserID(c))
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(profile)
}

func (s *Server) ListProfiles(c *fiber.Ctx) error {
	profiles, err := s.profileService.List(c.UserContext())
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(profiles)
}

func (s *Server) GetProfileByUser(c *fiber.Ctx) error {
	userID, err := parseID(c, "user_id", noProfileMsg)
	if err != nil {
		return s.respondError(c, err)
	}
	profile, err := s.profileService.GetByUserID(c.UserContext(), userID)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(profile)
}

func (s *Server) UpsertProfile(c *fiber.Ctx) error {
	var in service.ProfileInput
	if err := parseBody(c, &in); err != nil {
		return s.respondError(c, err)
	}
	in.UserID = currentUserID(c)

	profile, err := s.profileService.Upsert(c.UserContext(), in)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(profile)
}

// DeleteAccount handles DELETE /api/profile: the profile, posts and user go together.
func (s *Server) DeleteAccount(c *fiber.Ctx) error {
	if err := s.profileService.DeleteAccount(c.UserContext(), currentUserID(c)); err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(fiber.Map{"msg": "User deleted"})
}

func (s *Server) AddExperience(c *fiber.Ctx) error {
	var in service.ExperienceInput
	if err := parseBody(c, &in); err != nil {
		return s.respondError(c, err)
	}
	in.UserID = currentUserID(c)

	profile, err := s.profileService.AddExperience(c.UserContext(), in)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(profile)
}

func (s *Server) DeleteExperience(c *fiber.Ctx) error {
	expID, err := parseID(c, "exp_id", "Experience not found")
	if err != nil {
		return s.respondError(c, err)
	}
	profile, err := s.profileService.DeleteExperience(c.UserContext(), currentUserID(c), expID)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(profile)
}

func (s *Server) AddEducation(c *fiber.Ctx) error {
	var in service.EducationInput
	if err := parseBody(c, &in); err != nil {
		return s.respondError(c, err)
	}
	in.UserID = currentUserID(c)

	profile, err := s.profileService.AddEducation(c.UserContext(), in)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(profile)
}

func (s *Server) DeleteEducation(c *fiber.Ctx) error {
	eduID, err := parseID(c, "edu_id", "Education not found")
	if err != nil {
		return s.respondError(c, err)
	}
	profile, err := s.profileService.DeleteEducation(c.UserContext(), currentUserID(c), eduID)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(profile)
}

// GitHubRepos proxies the user's latest repositories from GitHub.
func (s *Server) GitHubRepos(c *fiber.Ctx) error {
	repos, err := s.githubService.Repos(c.UserContext(), c.Params("username"))
	if err != nil {
		return s.respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(repos)
}
