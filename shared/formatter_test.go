package shared

import (
	"github.com/stretchr/testify/assert"
	"strings"
	"testing"
	"unicode/utf8"
)

const testPermalink = "https://redd.it/abc123"

func TestGetHashtagString(t *testing.T) {
	assert.Equal(t, "", GetHashtagString(nil))
	assert.Equal(t, "#cats ", GetHashtagString([]string{"cats"}))
	assert.Equal(t, "#cats #aww ", GetHashtagString([]string{"cats", "aww"}))
}

func TestBuildCaptionShortTitle(t *testing.T) {
	assert.Equal(t, "Hello https://redd.it/abc123", BuildCaption("Hello", testPermalink, nil, 280))
	assert.Equal(t, "Hello #cats #aww https://redd.it/abc123",
		BuildCaption("Hello", testPermalink, []string{"cats", "aww"}, 280))
}

func TestBuildCaptionTruncates(t *testing.T) {
	// budget = 40 - 22 - 0 - 1 = 17
	title := strings.Repeat("x", 30)
	caption := BuildCaption(title, testPermalink, nil, 40)
	assert.Equal(t, strings.Repeat("x", 17)+"... "+testPermalink, caption)
	assert.True(t, strings.HasSuffix(caption, testPermalink))
}

func TestBuildCaptionBudgetBoundary(t *testing.T) {
	// A title exactly at the budget is cut too
	title := strings.Repeat("y", 17)
	assert.Equal(t, title+"... "+testPermalink, BuildCaption(title, testPermalink, nil, 40))
	title = strings.Repeat("y", 16)
	assert.Equal(t, title+" "+testPermalink, BuildCaption(title, testPermalink, nil, 40))
}

func TestBuildCaptionHashtagsCountAgainstBudget(t *testing.T) {
	// budget = 40 - 22 - 6 - 1 = 11
	caption := BuildCaption("A somewhat longer title", testPermalink, []string{"cats"}, 40)
	assert.Equal(t, "A somewhat ... #cats "+testPermalink, caption)
}

func TestBuildCaptionNoRoomForTitle(t *testing.T) {
	caption := BuildCaption("Title", testPermalink, nil, 10)
	assert.Equal(t, "... "+testPermalink, caption)
}

func TestBuildCaptionPlatformVariants(t *testing.T) {
	title := strings.Repeat("word ", 100)
	tweet := BuildCaption(title, testPermalink, nil, 280)
	toot := BuildCaption(title, testPermalink, nil, 500)
	assert.LessOrEqual(t, len(tweet), 280+3)
	assert.LessOrEqual(t, len(toot), 500+3)
	assert.Greater(t, len(toot), len(tweet))
	assert.True(t, strings.HasSuffix(tweet, testPermalink))
	assert.True(t, strings.HasSuffix(toot, testPermalink))
}

func TestBuildCaptionCountsCharacters(t *testing.T) {
	// 200 characters fit in 500 even though they take 600 bytes
	title := strings.Repeat("猫", 200)
	caption := BuildCaption(title, testPermalink, nil, 500)
	assert.Equal(t, title+" "+testPermalink, caption)

	// budget = 280 - 22 - 0 - 1 = 257
	caption = BuildCaption(strings.Repeat("猫", 300), testPermalink, nil, 280)
	assert.Equal(t, strings.Repeat("猫", 257)+"... "+testPermalink, caption)
	assert.True(t, utf8.ValidString(caption))
	assert.Equal(t, 280+3, utf8.RuneCountInString(caption))

	caption = BuildCaption(strings.Repeat("🐈", 30), testPermalink, nil, 40)
	assert.Equal(t, strings.Repeat("🐈", 17)+"... "+testPermalink, caption)
	assert.True(t, utf8.ValidString(caption))
}

func TestStripHtml(t *testing.T) {
	assert.Equal(t, "Cats & dogs", StripHtml("  <b>Cats</b> &amp; dogs "))
	assert.Equal(t, "", StripHtml("<br/>"))
}
