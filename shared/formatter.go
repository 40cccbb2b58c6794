package shared

import (
	"github.com/microcosm-cc/bluemonday"
	"html"
	"strings"
	"unicode/utf8"
)

var stripPolicy = bluemonday.StrictPolicy()

// StripHtml removes all markup and resolves entities, leaving plain text.
func StripHtml(htmlStr string) string {
	res := stripPolicy.Sanitize(htmlStr)
	res = html.UnescapeString(res)
	return strings.TrimSpace(res)
}

// GetHashtagString renders each tag as "#tag " (trailing space included); empty for no tags.
func GetHashtagString(hashtags []string) string {
	var sb strings.Builder
	for _, tag := range hashtags {
		sb.WriteString("#")
		sb.WriteString(tag)
		sb.WriteString(" ")
	}
	return sb.String()
}

// BuildCaption composes "<title> <hashtags><permalink>". When the title does not fit the budget
// left by the permalink and hashtags it is cut hard at the budget and followed by "... ".
// Lengths count characters (runes), not bytes.
func BuildCaption(title, permalink string, hashtags []string, maxLen int) string {
	tagStr := GetHashtagString(hashtags)
	budget := maxLen - utf8.RuneCountInString(permalink) - utf8.RuneCountInString(tagStr) - 1
	if utf8.RuneCountInString(title) < budget {
		return title + " " + tagStr + permalink
	}
	if budget < 0 {
		budget = 0
	}
	return string([]rune(title)[:budget]) + "... " + tagStr + permalink
}
