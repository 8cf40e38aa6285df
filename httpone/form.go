package httpone

import (
	"net/url"
	"strings"
)

// ParseForm decodes a URL-encoded form body into a flat key/value
// map. Pairs are split on "&", keys from values on the first "=", and
// both sides are percent-decoded. The last occurrence of a repeated
// key wins. A pair without "=" maps its key to "". Pairs that fail to
// percent-decode are skipped.
//
// ParseForm is never invoked by the router; handlers that expect form
// data call it on Request.Body themselves. No Content-Type check is
// performed.
func ParseForm(body string) map[string]string {
	form := make(map[string]string)
	for _, pair := range strings.Split(body, "&") {
		if pair == "" {
			continue
		}
		rawKey, rawVal, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(rawKey)
		if err != nil || key == "" {
			continue
		}
		val, err := url.QueryUnescape(rawVal)
		if err != nil {
			continue
		}
		form[key] = val
	}
	return form
}
