package logic

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Signs requests with OAuth 1.0a user context (HMAC-SHA1).
type oauth1Signer struct {
	consumerKey    string
	consumerSecret string
	accessToken    string
	accessSecret   string
	nowFn          func() time.Time
	nonceFn        func() string
}

func newOAuth1Signer(consumerKey, consumerSecret, accessToken, accessSecret string) *oauth1Signer {
	return &oauth1Signer{
		consumerKey:    consumerKey,
		consumerSecret: consumerSecret,
		accessToken:    accessToken,
		accessSecret:   accessSecret,
		nowFn:          time.Now,
		nonceFn:        func() string { return strconv.FormatInt(rand.Int63(), 36) },
	}
}

// sign sets the Authorization header. bodyParams are the form fields of a urlencoded body;
// pass nil for multipart or empty bodies. Query parameters are taken from the request URL.
func (s *oauth1Signer) sign(req *http.Request, bodyParams url.Values) {
	oauth := map[string]string{
		"oauth_consumer_key":     s.consumerKey,
		"oauth_nonce":            s.nonceFn(),
		"oauth_signature_method": "HMAC-SHA1",
		"oauth_timestamp":        strconv.FormatInt(s.nowFn().Unix(), 10),
		"oauth_token":            s.accessToken,
		"oauth_version":          "1.0",
	}

	// Collect encoded params; the same key may come with several values
	var pairs []string
	for k, v := range oauth {
		pairs = append(pairs, rfc3986(k)+"="+rfc3986(v))
	}
	for _, vals := range []url.Values{req.URL.Query(), bodyParams} {
		for k, vs := range vals {
			for _, v := range vs {
				pairs = append(pairs, rfc3986(k)+"="+rfc3986(v))
			}
		}
	}
	sort.Strings(pairs)
	paramStr := strings.Join(pairs, "&")

	baseUrl := req.URL.Scheme + "://" + req.URL.Host + req.URL.Path
	base := strings.ToUpper(req.Method) + "&" + rfc3986(baseUrl) + "&" + rfc3986(paramStr)
	signingKey := rfc3986(s.consumerSecret) + "&" + rfc3986(s.accessSecret)
	mac := hmac.New(sha1.New, []byte(signingKey))
	_, _ = mac.Write([]byte(base))
	oauth["oauth_signature"] = base64.StdEncoding.EncodeToString(mac.Sum(nil))

	hdrKeys := make([]string, 0, len(oauth))
	for k := range oauth {
		hdrKeys = append(hdrKeys, k)
	}
	sort.Strings(hdrKeys)
	authParts := make([]string, 0, len(hdrKeys))
	for _, k := range hdrKeys {
		authParts = append(authParts, fmt.Sprintf("%s=\"%s\"", rfc3986(k), rfc3986(oauth[k])))
	}
	req.Header.Set(headerAuthorize, "OAuth "+strings.Join(authParts, ", "))
}

// RFC 3986 percent-encoding for OAuth
func rfc3986(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(url.QueryEscape(s), "+", "%20"), "*", "%2A")
}
