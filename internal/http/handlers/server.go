package handlers

import (
	"github.com/alandalus/library-site/internal/cms"
	"github.com/alandalus/library-site/internal/whatsapp"
)

var (
	productSource cms.ProductSource = cms.NewInMemorySource()
	baseURL       string
	whatsAppPhone = whatsapp.DefaultPhone
)

// SetProductSource injects the catalog source used by every handler.
func SetProductSource(s cms.ProductSource) {
	productSource = s
}

// SetBaseURL sets the public site URL used by sitemap and robots
// output. Empty is tolerated and degrades to relative URLs.
func SetBaseURL(u string) {
	baseURL = u
}

// SetWhatsAppPhone overrides the contact number rendered into deep
// links.
func SetWhatsAppPhone(phone string) {
	if phone != "" {
		whatsAppPhone = phone
	}
}
