package seo

import (
	"fmt"
	"strings"
)

// robotsAgents lists the user agents that get an explicit rule block.
var robotsAgents = []string{"*", "Googlebot"}

// RobotsTxt renders the robots payload: crawl everything except the
// private and admin paths, and advertise the sitemap.
func RobotsTxt(baseURL string) string {
	var b strings.Builder
	for _, agent := range robotsAgents {
		fmt.Fprintf(&b, "User-agent: %s\n", agent)
		b.WriteString("Allow: /\n")
		b.WriteString("Disallow: /private/\n")
		b.WriteString("Disallow: /admin/\n\n")
	}
	fmt.Fprintf(&b, "Sitemap: %s/sitemap.xml\n", baseURL)
	return b.String()
}
