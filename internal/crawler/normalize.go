package crawler

import (
	"strings"

	"github.com/TodayWantLook/Crawler/internal/domain"
)

// normalizeDetailURL rewrites a listing's detail URL into the form the
// browser should load: kakao pages need the profile tab suffix, naver
// listing URLs point at the mobile subdomain and are rewritten to the
// desktop path. Pure string rewriting, applied before navigation.
func normalizeDetailURL(service string, rawURL string) string {
	if rawURL == "" {
		return rawURL
	}
	switch domain.Service(service) {
	case domain.ServiceKakao:
		return rawURL + "?tab=profile"
	case domain.ServiceNaver:
		return strings.Replace(rawURL, "m.comic", "comic", 1)
	}
	return rawURL
}
