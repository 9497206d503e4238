package respond

import (
	"net/url"
	"strings"
)

// URLIssueKind names why a URL could not yield verifiable content
type URLIssueKind string

const (
	URLIssueSocialMedia   URLIssueKind = "social_media"
	URLIssueMessaging     URLIssueKind = "messaging"
	URLIssuePaywall       URLIssueKind = "paywall"
	URLIssueLoginRequired URLIssueKind = "login_required"
	URLIssueBroken        URLIssueKind = "broken"
)

var socialHosts = []string{
	"twitter.com", "x.com", "facebook.com", "instagram.com",
	"tiktok.com", "threads.net", "linkedin.com", "reddit.com",
}

var messagingHosts = []string{
	"t.me", "telegram.me", "wa.me", "whatsapp.com", "chat.whatsapp.com",
}

var paywallHosts = []string{
	"wsj.com", "ft.com", "bloomberg.com", "economist.com",
	"nytimes.com", "washingtonpost.com",
}

// ClassifyURL inspects a URL's host to anticipate fetch problems
// before spending a request on it. Unknown hosts return ok=true.
func ClassifyURL(rawURL string) (kind URLIssueKind, host string, ok bool) {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return URLIssueBroken, rawURL, false
	}

	host = strings.ToLower(parsed.Host)
	host = strings.TrimPrefix(host, "www.")

	if matchesHost(host, socialHosts) {
		return URLIssueSocialMedia, host, false
	}
	if matchesHost(host, messagingHosts) {
		return URLIssueMessaging, host, false
	}
	if matchesHost(host, paywallHosts) {
		return URLIssuePaywall, host, false
	}
	return "", host, true
}

// matchesHost checks exact or subdomain match against known hosts
func matchesHost(host string, known []string) bool {
	for _, k := range known {
		if host == k || strings.HasSuffix(host, "."+k) {
			return true
		}
	}
	return false
}
