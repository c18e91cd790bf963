package controllers

import (
	"log"
	"sync"

	"github.com/gofiber/fiber/v2"

	"github.com/smartfixwerk/SmartfixWerk/app/models"
	"github.com/smartfixwerk/SmartfixWerk/app/repository"
	"github.com/smartfixwerk/SmartfixWerk/internal/pkg/env"
	"github.com/smartfixwerk/SmartfixWerk/internal/pkg/hcaptcha"
	"github.com/smartfixwerk/SmartfixWerk/internal/pkg/mail"
	"github.com/smartfixwerk/SmartfixWerk/internal/pkg/quote"
	"github.com/smartfixwerk/SmartfixWerk/internal/pkg/search"
	"github.com/smartfixwerk/SmartfixWerk/internal/pkg/session"
)

// Session keys for the visitor's configurator selection
const (
	sessionKeyQuoteManufacturer = "quote_manufacturer"
	sessionKeyQuoteModel        = "quote_model"
)

// quoteRow is a catalog row with its rendered price text, as shown on
// cards, the detail panel and outbound messages
type quoteRow struct {
	models.RepairPrice
	PriceText string `json:"price_text"`
}

func toQuoteRows(rows []models.RepairPrice) []quoteRow {
	out := make([]quoteRow, len(rows))
	for i, row := range rows {
		out[i] = quoteRow{RepairPrice: row, PriceText: row.PriceText()}
	}
	return out
}

var (
	liveSearch     *search.LiveMatcher
	liveSearchOnce sync.Once
)

// quoteLiveSearch is the shared debounced search entry point for all
// visitors; slots are keyed per visitor inside the LiveMatcher
func quoteLiveSearch() *search.LiveMatcher {
	liveSearchOnce.Do(func() {
		matcher := search.NewMatcher(repository.GetGlobalFactory().GetRepairPriceRepository())
		liveSearch = search.NewLiveMatcher(matcher, search.DefaultQuietPeriod)
	})
	return liveSearch
}

// searchVisitorKey identifies the visitor for debounce bookkeeping
func searchVisitorKey(c *fiber.Ctx) string {
	if id := session.GetSessionID(c); id != "" {
		return id
	}
	return c.IP()
}

func quoteConfigurator(c *fiber.Ctx) *quote.Configurator {
	cf := quote.NewConfigurator(repository.GetGlobalFactory().GetRepairPriceRepository())
	cf.Restore(
		session.GetSessionValue(c, sessionKeyQuoteManufacturer),
		session.GetSessionValue(c, sessionKeyQuoteModel),
	)
	return cf
}

// HandleQuoteManufacturers returns step 1: the distinct manufacturers
// with their model counts
func HandleQuoteManufacturers(c *fiber.Ctx) error {
	cf := quoteConfigurator(c)
	summaries, err := cf.Manufacturers()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "fetch_failed", "Failed to fetch manufacturers")
	}
	return c.JSON(fiber.Map{"manufacturers": summaries})
}

// HandleQuoteSelectManufacturer applies the step 1 selection and returns
// the models for step 2
func HandleQuoteSelectManufacturer(c *fiber.Ctx) error {
	var body struct {
		Manufacturer string `json:"manufacturer"`
	}
	if err := c.BodyParser(&body); err != nil || body.Manufacturer == "" {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "manufacturer is required")
	}

	cf := quote.NewConfigurator(repository.GetGlobalFactory().GetRepairPriceRepository())
	modelNames, err := cf.SelectManufacturer(body.Manufacturer)
	if err != nil {
		return jsonError(c, fiber.StatusBadGateway, "fetch_failed", "Failed to fetch models, please try again")
	}

	_ = session.SetSessionValue(c, sessionKeyQuoteManufacturer, body.Manufacturer)
	_ = session.DeleteSessionValue(c, sessionKeyQuoteModel)

	return c.JSON(fiber.Map{
		"manufacturer": body.Manufacturer,
		"models":       modelNames,
	})
}

// HandleQuoteSelectModel applies the step 2 selection and returns the
// resolved repair list for step 3
func HandleQuoteSelectModel(c *fiber.Ctx) error {
	var body struct {
		Model string `json:"model"`
	}
	if err := c.BodyParser(&body); err != nil || body.Model == "" {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "model is required")
	}

	cf := quoteConfigurator(c)
	repairs, err := cf.SelectModel(body.Model)
	if err == quote.ErrNoManufacturer {
		return jsonError(c, fiber.StatusConflict, "no_manufacturer", "Select a manufacturer first")
	}
	if err != nil {
		return jsonError(c, fiber.StatusBadGateway, "fetch_failed", "Failed to fetch repairs, please try again")
	}

	_ = session.SetSessionValue(c, sessionKeyQuoteModel, body.Model)

	return c.JSON(fiber.Map{
		"manufacturer": cf.State().Manufacturer,
		"model":        body.Model,
		"repairs":      toQuoteRows(repairs),
	})
}

// HandleQuoteResolve is the search shortcut: it sets manufacturer and
// model from a chosen search result and jumps straight to step 3
func HandleQuoteResolve(c *fiber.Ctx) error {
	var body struct {
		Manufacturer string `json:"manufacturer"`
		Model        string `json:"model"`
	}
	if err := c.BodyParser(&body); err != nil || body.Manufacturer == "" || body.Model == "" {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "manufacturer and model are required")
	}

	cf := quote.NewConfigurator(repository.GetGlobalFactory().GetRepairPriceRepository())
	repairs, err := cf.ResolveSearch(body.Manufacturer, body.Model)
	if err != nil {
		return jsonError(c, fiber.StatusBadGateway, "fetch_failed", "Failed to fetch repairs, please try again")
	}

	_ = session.SetSessionValue(c, sessionKeyQuoteManufacturer, body.Manufacturer)
	_ = session.SetSessionValue(c, sessionKeyQuoteModel, body.Model)

	return c.JSON(fiber.Map{
		"manufacturer": body.Manufacturer,
		"model":        body.Model,
		"repairs":      toQuoteRows(repairs),
		"scroll_to":    "configurator",
	})
}

// HandleQuoteBack steps the configurator one step backwards
func HandleQuoteBack(c *fiber.Ctx) error {
	state := quoteConfigurator(c).Back()

	_ = session.DeleteSessionValue(c, sessionKeyQuoteModel)
	if state.Manufacturer == "" {
		_ = session.DeleteSessionValue(c, sessionKeyQuoteManufacturer)
	}

	return c.JSON(fiber.Map{
		"manufacturer": state.Manufacturer,
		"model":        state.Model,
	})
}

// HandleQuoteRestart resets the whole flow and drops any pending search
func HandleQuoteRestart(c *fiber.Ctx) error {
	quoteConfigurator(c).Restart()

	_ = session.DeleteSessionValue(c, sessionKeyQuoteManufacturer)
	_ = session.DeleteSessionValue(c, sessionKeyQuoteModel)
	quoteLiveSearch().Forget(searchVisitorKey(c))

	return c.JSON(fiber.Map{"manufacturer": "", "model": ""})
}

// HandleQuoteSearch is the free-text shortcut into the catalog. Rapid
// keystrokes are debounced per visitor: only the last query of a burst
// hits the store, earlier requests report superseded.
func HandleQuoteSearch(c *fiber.Ctx) error {
	rows, superseded, err := quoteLiveSearch().Search(c.Context(), searchVisitorKey(c), c.Query("q"))
	if superseded {
		return c.JSON(fiber.Map{"results": []quoteRow{}, "superseded": true})
	}
	if err != nil {
		return jsonError(c, fiber.StatusBadGateway, "search_failed", "Search failed, please try again")
	}
	return c.JSON(fiber.Map{"results": toQuoteRows(rows)})
}

// HandleQuoteRequest validates a quote request draft and builds the
// outbound deep link for the chosen channel. No network call is made for
// the message itself; the "submission" is message construction plus a
// navigation side effect on the client.
func HandleQuoteRequest(c *fiber.Ctx) error {
	var body struct {
		RepairPriceID uint   `json:"repair_price_id"`
		Channel       string `json:"channel"` // whatsapp or mail
		quote.RequestDraft
	}
	if err := c.BodyParser(&body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "invalid request body")
	}

	row, err := repository.GetGlobalFactory().GetRepairPriceRepository().GetByID(body.RepairPriceID)
	if err != nil {
		return jsonError(c, fiber.StatusNotFound, "not_found", "Repair not found")
	}

	if err := body.RequestDraft.Validate(); err != nil {
		return jsonError(c, fiber.StatusUnprocessableEntity, "validation_failed", err.Error())
	}

	if ok, err := hcaptcha.Verify(body.CaptchaToken); !ok {
		log.Printf("quote: captcha verification failed: %v", err)
		return jsonError(c, fiber.StatusUnprocessableEntity, "captcha_failed", "Captcha verification failed")
	}

	var link string
	switch body.Channel {
	case "whatsapp":
		link = quote.ComposeWhatsApp(row, &body.RequestDraft, env.GetEnv("SHOP_WHATSAPP_NUMBER", ""))
	case "mail":
		link = quote.ComposeMail(row, &body.RequestDraft, env.GetEnv("SHOP_EMAIL", ""))
	default:
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "channel must be whatsapp or mail")
	}

	// Best-effort copy to the shop inbox; never fails the request.
	if mail.IsConfigured() {
		subject := "New quote request: " + row.Manufacturer + " " + row.Model + " - " + row.RepairType
		bodyText := "Customer: " + body.FirstName + " " + body.LastName + " (" + body.Email + ", " + body.Phone + ")\n" +
			"Repair: " + row.RepairType + " - " + row.PriceText()
		go func() {
			_ = mail.SendMail(env.GetEnv("SHOP_EMAIL", ""), subject, bodyText)
		}()
	}

	return c.JSON(fiber.Map{
		"link":     link,
		"advisory": quote.AdvisoryFromSettings(models.GetAppSettings()),
	})
}
