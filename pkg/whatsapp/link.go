// Package whatsapp builds the deep links used to hand a composed order over
// to a WhatsApp chat. The message itself is opaque here.
package whatsapp

import (
	"net/url"
	"strings"
)

// Link returns the wa.me URL that opens a chat with destination and the
// message prefilled. Spaces are escaped as %20; WhatsApp renders a literal
// plus sign otherwise.
func Link(destination, message string) string {
	escaped := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return "https://wa.me/" + destination + "?text=" + escaped
}
