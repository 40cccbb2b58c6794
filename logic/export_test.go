package logic

import "time"

// SetPlaceholderHash swaps the known Giphy placeholder hash so tests can serve their own placeholder.
func SetPlaceholderHash(resolver IMediaResolver, hash string) {
	resolver.(*mediaResolver).placeholderHash = hash
}

func SetMastodonPollDelay(pub IPublisher, delay time.Duration) {
	pub.(*mastodonPublisher).pollDelay = delay
}
