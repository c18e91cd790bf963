package quote

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/smartfixwerk/SmartfixWerk/app/models"
)

// RequestDraft is the ephemeral quote request a visitor fills in after
// resolving a repair. It is never persisted; submission only ever builds a
// deep link (and optionally a notification mail).
type RequestDraft struct {
	Salutation    string `json:"salutation" validate:"max=50"`
	FirstName     string `json:"first_name" validate:"required,min=1,max=100"`
	LastName      string `json:"last_name" validate:"required,min=1,max=100"`
	Phone         string `json:"phone" validate:"required,min=3,max=50"`
	Email         string `json:"email" validate:"required,email"`
	Street        string `json:"street" validate:"required,min=1,max=255"`
	PostalCode    string `json:"postal_code" validate:"required,min=3,max=20"`
	City          string `json:"city" validate:"required,min=1,max=100"`
	PreferredDate string `json:"preferred_date" validate:"max=50"`
	Message       string `json:"message" validate:"max=2000"`
	Consent       bool   `json:"consent"`
	CaptchaToken  string `json:"captcha_token"`
}

var draftValidator = validator.New()

// Validate checks the submission preconditions: consent given, proof token
// present, required contact fields filled. Violations are caught before
// any side effect fires.
func (d *RequestDraft) Validate() error {
	if !d.Consent {
		return ErrConsentMissing
	}
	if strings.TrimSpace(d.CaptchaToken) == "" {
		return ErrProofTokenMissing
	}
	if err := draftValidator.Struct(d); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDraft, err)
	}
	return nil
}

// Advisory is the non-blocking out-of-office notice shown above the
// request panel while vacation mode is on
type Advisory struct {
	Active  bool   `json:"active"`
	Message string `json:"message,omitempty"`
	From    string `json:"from,omitempty"`
	Until   string `json:"until,omitempty"`
}

// AdvisoryFromSettings derives the request panel advisory from the current
// shop settings. It informs, it never blocks submission.
func AdvisoryFromSettings(settings *models.AppSettings) Advisory {
	if settings == nil || !settings.VacationMode {
		return Advisory{}
	}
	return Advisory{
		Active:  true,
		Message: settings.VacationMessage,
		From:    settings.VacationFrom,
		Until:   settings.VacationUntil,
	}
}

// ComposeWhatsApp builds the direct-messaging deep link: a single text
// blob interpolating device, repair and price text, URL-encoded into a
// wa.me link. phoneNumber is the shop's number in international format
// without the leading plus.
func ComposeWhatsApp(row *models.RepairPrice, draft *RequestDraft, phoneNumber string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello, I would like to request a repair quote.\n\n")
	fmt.Fprintf(&b, "Device: %s %s\n", row.Manufacturer, row.Model)
	fmt.Fprintf(&b, "Repair: %s\n", row.RepairType)
	fmt.Fprintf(&b, "Price: %s\n\n", row.PriceText())
	fmt.Fprintf(&b, "Name: %s %s\n", draft.FirstName, draft.LastName)
	fmt.Fprintf(&b, "Phone: %s", draft.Phone)
	if draft.Message != "" {
		fmt.Fprintf(&b, "\n\n%s", draft.Message)
	}

	return fmt.Sprintf("https://wa.me/%s?text=%s", phoneNumber, url.QueryEscape(b.String()))
}

// ComposeMail builds the mail-composition deep link: a structured
// multi-line body with device, customer and address blocks plus the
// optional preferred date and free-text lines, URL-encoded into a mailto
// link with subject.
func ComposeMail(row *models.RepairPrice, draft *RequestDraft, shopEmail string) string {
	subject := fmt.Sprintf("Repair quote request: %s %s - %s", row.Manufacturer, row.Model, row.RepairType)

	var b strings.Builder
	fmt.Fprintf(&b, "Device: %s %s\n", row.Manufacturer, row.Model)
	fmt.Fprintf(&b, "Repair: %s\n", row.RepairType)
	fmt.Fprintf(&b, "Price: %s\n\n", row.PriceText())
	if draft.Salutation != "" {
		fmt.Fprintf(&b, "Salutation: %s\n", draft.Salutation)
	}
	fmt.Fprintf(&b, "Name: %s %s\n", draft.FirstName, draft.LastName)
	fmt.Fprintf(&b, "Phone: %s\n", draft.Phone)
	fmt.Fprintf(&b, "Email: %s\n\n", draft.Email)
	fmt.Fprintf(&b, "Address:\n%s\n%s %s\n", draft.Street, draft.PostalCode, draft.City)
	if draft.PreferredDate != "" {
		fmt.Fprintf(&b, "\nPreferred date: %s\n", draft.PreferredDate)
	}
	if draft.Message != "" {
		fmt.Fprintf(&b, "\nMessage:\n%s\n", draft.Message)
	}

	// mailto uses query escaping for both subject and body; '+' must not
	// stand in for spaces there, so escape it the path way.
	return fmt.Sprintf("mailto:%s?subject=%s&body=%s",
		shopEmail,
		escapeMailtoComponent(subject),
		escapeMailtoComponent(b.String()),
	)
}

func escapeMailtoComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
