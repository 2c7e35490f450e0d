// Package outbound prepares billing messages for delivery over WhatsApp. It only builds the
// link; opening it is up to the caller.
package outbound

import (
	"net/url"
	"strings"
	"unicode"

	"github.com/ttacon/libphonenumber"

	"github.com/mmynk/devarc/internal/models"
	"github.com/mmynk/devarc/internal/render"
)

// DefaultRegion is used to read numbers written without a country code.
const DefaultRegion = "BR"

const brazilCode = "55"

// Message is a composed text ready to be handed to a messaging app.
type Message struct {
	Phone string `json:"phone"`
	Text  string `json:"text"`
	Link  string `json:"link"`
}

// Normalize turns a phone number as typed by the user into international digits without
// the leading "+", e.g. "(11) 98765-4321" becomes "5511987654321". Numbers libphonenumber
// cannot validate are assumed to be Brazilian and get the country code prepended.
func Normalize(phone string) (string, error) {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, phone)
	if digits == "" {
		return "", models.Invalid("phone", "has no digits")
	}

	if p, err := libphonenumber.Parse(phone, DefaultRegion); err == nil && libphonenumber.IsValidNumber(p) {
		return strings.TrimPrefix(libphonenumber.Format(p, libphonenumber.E164), "+"), nil
	}
	return brazilCode + digits, nil
}

// Link returns the wa.me link that opens a chat with phone prefilled with text.
func Link(phone, text string) string {
	return "https://wa.me/" + phone + "?text=" + strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}

// Compose renders the billing message of the given kind and the link that sends it.
func Compose(client models.Client, project models.Project, kind render.MessageKind) (Message, error) {
	phone, err := Normalize(client.Phone)
	if err != nil {
		return Message{}, err
	}
	text, err := render.BillingMessage(kind, client, project)
	if err != nil {
		return Message{}, err
	}
	return Message{Phone: phone, Text: text, Link: Link(phone, text)}, nil
}
