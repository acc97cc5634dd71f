package attendance

import "strings"

var mobileMarkers = []string{"okhttp", "dart", "android", "iphone", "mobile", "cfnetwork"}

// OriginFromUserAgent classifies the punch client from the request's
// User-Agent. The value is informational only and never gates a punch.
func OriginFromUserAgent(userAgent string) Origin {
	ua := strings.ToLower(userAgent)
	if strings.Contains(ua, "postman") {
		return OriginPostman
	}
	for _, marker := range mobileMarkers {
		if strings.Contains(ua, marker) {
			return OriginMobile
		}
	}
	return OriginWeb
}
