// Package whatsapp builds the wa.me deep links that replace checkout:
// every purchase intent on the site opens a chat with the store.
package whatsapp

import "net/url"

// DefaultPhone is the storefront contact number.
const DefaultPhone = "+201013283570"

// Link builds a deep link that opens a chat with the message
// pre-filled. An empty phone falls back to the store number.
func Link(phone, message string) string {
	if phone == "" {
		phone = DefaultPhone
	}
	return "https://wa.me/" + phone + "?text=" + url.QueryEscape(message)
}
