// Package contact covers the two outward hand-offs the site makes:
// composing a contact email for the user's mail client and sharing an
// article link. Neither carries any delivery guarantee.
package contact

import (
	"net/url"
	"strings"
)

// Recipient is the fixed address the contact form writes to.
const Recipient = "vmac.gb.2025@gmail.com"

// crlf is the encoded line break mail clients expect in mailto bodies.
const crlf = "%0D%0A"

// BuildMailto formats a pre-filled message for the user's mail client.
// Pure formatting: handing the URL off to the OS is the caller's
// problem, and nothing confirms the mail was ever sent.
func BuildMailto(name, email, message string) string {
	subject := "V-MAC Comment from " + name
	body := "Name: " + name + crlf +
		"Email: " + email + crlf + crlf +
		"Message:" + crlf + message
	return "mailto:" + Recipient + "?subject=" + encodeComponent(subject) + "&body=" + body
}

// encodeComponent escapes a query component the way browsers do
// (spaces as %20, not +).
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
