package dal

import (
	"time"
)

type Post struct {
	Id        string // 1c0ffee
	Title     string
	Permalink string // https://redd.it/1c0ffee
	Url       string // https://i.redd.it/abcdef.png
	Over18    bool
	IsSelf    bool
	Spoiler   bool
	Stickied  bool
	Media     *PostMedia // nil if the feed reported no media metadata
}

type PostMedia struct {
	RedditVideoFallbackUrl string // https://v.redd.it/xyz/DASH_720.mp4?source=fallback
}

// Fidelity selects the media variant a platform can take.
type Fidelity int

const (
	FidelityCompact Fidelity = iota // Size-limited; animations as GIF
	FidelityHigh                    // Best available; animations as MP4
)

func (f Fidelity) String() string {
	if f == FidelityHigh {
		return "high"
	}
	return "compact"
}

type MediaKind int

const (
	MediaStatic MediaKind = iota
	MediaAnimated
	MediaVideo
)

func (k MediaKind) String() string {
	switch k {
	case MediaAnimated:
		return "animated-image"
	case MediaVideo:
		return "video"
	default:
		return "static-image"
	}
}

// ResolvedMedia is a downloaded file waiting to be published. A nil *ResolvedMedia means no media.
type ResolvedMedia struct {
	Path        string
	Kind        MediaKind
	ContentType string // MIME type sent with the upload
}

type LedgerEntry struct {
	PostId    string    `json:"post_id"`
	Timestamp time.Time `json:"timestamp"`
	Outcome   string    `json:"outcome"` // Status URL, or error text
}
