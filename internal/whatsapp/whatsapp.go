// Package whatsapp builds the deep links used to hand a conversation off to
// the WhatsApp app on the engineer's phone.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"servicevale/internal/domain/entities"
)

const scheme = "whatsapp://send"

// Digits strips everything but 0-9 from a phone number. WhatsApp deep links
// only accept bare digits.
func Digits(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Link builds a whatsapp://send deep link for the given phone and prefilled
// message text.
func Link(phone, text string) string {
	return fmt.Sprintf("%s?phone=%s&text=%s", scheme, Digits(phone), url.QueryEscape(text))
}

// OrderLink builds the share link an engineer uses to tell the customer they
// are on the way, prefilled from the order.
func OrderLink(o entities.ServiceOrder) string {
	msg := fmt.Sprintf(
		"Hello %s, this is %s from Service Vale regarding your %s service scheduled on %s at %s. I am on my way.",
		o.ClientName, o.ServiceboyName, o.ServiceType, o.DisplayDate(), o.DisplayTime())
	return Link(o.PhoneNumber, msg)
}
