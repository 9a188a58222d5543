package http

import (
	pb "github.com/dmitrijs2005/profilekeeper/internal/proto"
	"github.com/gofiber/fiber/v2"
)

func HealthCheckHandler(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).SendString("Healthy")
}

func (s *HTTPServer) getSampleProfile(c *fiber.Ctx) error {
	p, err := s.profiles.Sample(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(pb.FromProfile(p))
}

func (s *HTTPServer) getProfile(c *fiber.Ctx) error {
	p, err := s.profiles.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(pb.FromProfile(p))
}

// findProfiles answers ?username=u with one profile and ?prefix=p[&limit=n]
// with a search result.
func (s *HTTPServer) findProfiles(c *fiber.Ctx) error {
	if username := c.Query("username"); username != "" {
		p, err := s.profiles.Lookup(c.UserContext(), username)
		if err != nil {
			return err
		}
		return c.JSON(pb.FromProfile(p))
	}

	prefix := c.Query("prefix")
	if prefix == "" {
		return fiber.NewError(fiber.StatusBadRequest, "username or prefix is required")
	}

	found, err := s.profiles.Search(c.UserContext(), prefix, c.QueryInt("limit", 0))
	if err != nil {
		return err
	}
	return c.JSON(pb.SearchProfilesResponse{Profiles: pb.FromProfiles(found)})
}
