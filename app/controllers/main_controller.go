package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/smartfixwerk/SmartfixWerk/app/models"
	"github.com/smartfixwerk/SmartfixWerk/app/repository"
	"github.com/smartfixwerk/SmartfixWerk/internal/pkg/statistics"
)

// HandleHome returns the start page content: hero slides, the latest
// announcements, the visible reviews and the published FAQ
func HandleHome(c *fiber.Ctx) error {
	repos := repository.GetGlobalRepositories()

	slides, err := repos.HeroSlide.GetActive()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "fetch_failed", "Failed to fetch hero slides")
	}

	announcements, err := repos.Announcement.GetPublished(0, 3)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "fetch_failed", "Failed to fetch announcements")
	}

	reviews, err := repos.Review.GetVisible(6)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "fetch_failed", "Failed to fetch reviews")
	}

	statistics.RecordPageView("home")

	return c.JSON(fiber.Map{
		"site_title":    models.GetAppSettings().SiteTitle,
		"slides":        slides,
		"announcements": announcements,
		"reviews":       reviews,
	})
}

// HandleFaq returns the published FAQ entries in display order
func HandleFaq(c *fiber.Ctx) error {
	entries, err := repository.GetGlobalFactory().GetFaqRepository().GetPublished()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "fetch_failed", "Failed to fetch FAQ entries")
	}

	statistics.RecordPageView("faq")

	return c.JSON(fiber.Map{"entries": entries})
}

// HandleAnnouncementIndex returns the published announcements
func HandleAnnouncementIndex(c *fiber.Ctx) error {
	announcements, err := repository.GetGlobalFactory().GetAnnouncementRepository().GetPublished(0, 20)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "fetch_failed", "Failed to fetch announcements")
	}

	statistics.RecordPageView("announcements")

	return c.JSON(fiber.Map{"announcements": announcements})
}

// HandleAnnouncementShow returns a single published announcement by slug
func HandleAnnouncementShow(c *fiber.Ctx) error {
	slug := c.Params("slug")

	announcement, err := repository.GetGlobalFactory().GetAnnouncementRepository().GetBySlug(slug)
	if err != nil || !announcement.Published {
		return jsonError(c, fiber.StatusNotFound, "not_found", "Announcement not found")
	}

	return c.JSON(announcement)
}

// HandlePageShow returns an active content page (legal texts, page copy)
// by slug
func HandlePageShow(c *fiber.Ctx) error {
	slug := c.Params("slug")

	page, err := repository.GetGlobalFactory().GetPageRepository().GetBySlug(slug)
	if err != nil {
		return jsonError(c, fiber.StatusNotFound, "not_found", "Page not found")
	}

	statistics.RecordPageView("page:" + slug)

	return c.JSON(page)
}

// HandleReviews returns the publicly visible reviews
func HandleReviews(c *fiber.Ctx) error {
	reviews, err := repository.GetGlobalFactory().GetReviewRepository().GetVisible(20)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "fetch_failed", "Failed to fetch reviews")
	}

	return c.JSON(fiber.Map{"reviews": reviews})
}
