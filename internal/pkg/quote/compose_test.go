package quote

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartfixwerk/SmartfixWerk/app/models"
)

func validDraft() *RequestDraft {
	return &RequestDraft{
		Salutation:   "Mr",
		FirstName:    "Max",
		LastName:     "Mustermann",
		Phone:        "+49 170 1234567",
		Email:        "max@example.com",
		Street:       "Hauptstraße 1",
		PostalCode:   "10115",
		City:         "Berlin",
		Consent:      true,
		CaptchaToken: "token",
	}
}

func TestRequestDraftValidate(t *testing.T) {
	assert.NoError(t, validDraft().Validate())
}

func TestRequestDraftValidate_ConsentMissing(t *testing.T) {
	draft := validDraft()
	draft.Consent = false

	assert.ErrorIs(t, draft.Validate(), ErrConsentMissing)
}

func TestRequestDraftValidate_ProofTokenMissing(t *testing.T) {
	draft := validDraft()
	draft.CaptchaToken = "   "

	assert.ErrorIs(t, draft.Validate(), ErrProofTokenMissing)
}

func TestRequestDraftValidate_RequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RequestDraft)
	}{
		{"missing first name", func(d *RequestDraft) { d.FirstName = "" }},
		{"missing last name", func(d *RequestDraft) { d.LastName = "" }},
		{"missing phone", func(d *RequestDraft) { d.Phone = "" }},
		{"invalid email", func(d *RequestDraft) { d.Email = "not-an-email" }},
		{"missing street", func(d *RequestDraft) { d.Street = "" }},
		{"missing postal code", func(d *RequestDraft) { d.PostalCode = "" }},
		{"missing city", func(d *RequestDraft) { d.City = "" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			draft := validDraft()
			tc.mutate(draft)
			assert.ErrorIs(t, draft.Validate(), ErrInvalidDraft)
		})
	}
}

func TestRequestDraftValidate_OptionalFieldsMayBeEmpty(t *testing.T) {
	draft := validDraft()
	draft.Salutation = ""
	draft.PreferredDate = ""
	draft.Message = ""

	assert.NoError(t, draft.Validate())
}

func TestAdvisoryFromSettings(t *testing.T) {
	assert.False(t, AdvisoryFromSettings(nil).Active)

	settings := &models.AppSettings{VacationMode: false, VacationMessage: "closed"}
	assert.False(t, AdvisoryFromSettings(settings).Active)

	settings = &models.AppSettings{
		VacationMode:    true,
		VacationMessage: "We are on vacation",
		VacationFrom:    "2026-09-01",
		VacationUntil:   "2026-09-14",
	}
	advisory := AdvisoryFromSettings(settings)
	assert.True(t, advisory.Active)
	assert.Equal(t, "We are on vacation", advisory.Message)
	assert.Equal(t, "2026-09-01", advisory.From)
	assert.Equal(t, "2026-09-14", advisory.Until)
}

func TestComposeWhatsApp(t *testing.T) {
	row := &models.RepairPrice{
		Manufacturer: "Apple",
		Model:        "iPhone 14",
		RepairType:   "Display exchange",
		PriceCents:   24900,
	}
	draft := validDraft()
	draft.Message = "Screen is cracked"

	link := ComposeWhatsApp(row, draft, "4915112345678")

	require.True(t, strings.HasPrefix(link, "https://wa.me/4915112345678?text="), link)
	assert.Contains(t, link, "Apple+iPhone+14")
	assert.Contains(t, link, "Display+exchange")
	assert.Contains(t, link, "249.00")
	assert.Contains(t, link, "Max+Mustermann")
	assert.Contains(t, link, "Screen+is+cracked")
}

func TestComposeWhatsApp_MinimumPrice(t *testing.T) {
	row := &models.RepairPrice{
		Manufacturer: "Apple",
		Model:        "iPhone 14",
		RepairType:   "Backcover exchange",
		PriceCents:   9900,
	}

	link := ComposeWhatsApp(row, validDraft(), "4915112345678")
	assert.Contains(t, link, "from+99.00")
}

func TestComposeMail(t *testing.T) {
	row := &models.RepairPrice{
		Manufacturer: "Samsung",
		Model:        "Galaxy S23",
		RepairType:   "Battery exchange",
		PriceCents:   7900,
	}
	draft := validDraft()
	draft.PreferredDate = "next Tuesday"
	draft.Message = "Battery drains fast"

	link := ComposeMail(row, draft, "info@smartfixwerk.de")

	require.True(t, strings.HasPrefix(link, "mailto:info@smartfixwerk.de?subject="), link)
	// mailto components must not use '+' for spaces.
	assert.NotContains(t, link, "+")
	assert.Contains(t, link, "Galaxy%20S23")
	assert.Contains(t, link, "Battery%20exchange")
	assert.Contains(t, link, "79.00")
	assert.Contains(t, link, "Hauptstra%C3%9Fe%201")
	assert.Contains(t, link, "10115%20Berlin")
	assert.Contains(t, link, "next%20Tuesday")
	assert.Contains(t, link, "Battery%20drains%20fast")
}

func TestComposeMail_OmitsEmptyOptionalBlocks(t *testing.T) {
	row := &models.RepairPrice{
		Manufacturer: "Samsung",
		Model:        "Galaxy S23",
		RepairType:   "Battery exchange",
		PriceCents:   7900,
	}
	draft := validDraft()
	draft.Salutation = ""

	link := ComposeMail(row, draft, "info@smartfixwerk.de")
	assert.NotContains(t, link, "Salutation")
	assert.NotContains(t, link, "Preferred%20date")
	assert.NotContains(t, link, "Message%3A")
}
