package logic

import (
	"context"
	"fmt"
	"os"
	"reddit_parrot/dal"
	"reddit_parrot/dto"
	"reddit_parrot/shared"
	"strings"
	"sync"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_post_cycle.go -package mocks reddit_parrot/logic IPostCycle

const (
	panicSleepSec    = 10
	outcomeSeparator = " | "
)

// IPostCycle reposts the subreddit's hot posts, one cycle at a time.
type IPostCycle interface {
	// Run repeats cycles, sleeping between them, until ctx is cancelled.
	Run(ctx context.Context)
	// RunCycle fetches, filters and handles one batch of posts.
	RunCycle(ctx context.Context) error
	Status() dto.Status
}

type postCycle struct {
	cfg        *shared.Config
	logger     shared.ILogger
	metrics    IMetrics
	feed       IFeedSource
	resolver   IMediaResolver
	ledger     dal.ILedger
	publishers []IPublisher
	janitor    IMediaJanitor
	delay      time.Duration
	muStatus   sync.Mutex
	status     dto.Status
}

func NewPostCycle(
	cfg *shared.Config,
	logger shared.ILogger,
	metrics IMetrics,
	feed IFeedSource,
	resolver IMediaResolver,
	ledger dal.ILedger,
	publishers []IPublisher,
	janitor IMediaJanitor,
) IPostCycle {
	pc := postCycle{
		cfg:        cfg,
		logger:     logger,
		metrics:    metrics,
		feed:       feed,
		resolver:   resolver,
		ledger:     ledger,
		publishers: publishers,
		janitor:    janitor,
		delay:      time.Duration(cfg.DelayBetweenPostsSec) * time.Second,
	}
	pc.status.Subreddit = cfg.Subreddit
	pc.status.StartedAt = time.Now()
	for _, pub := range publishers {
		pc.status.Platforms = append(pc.status.Platforms, pub.Name())
	}
	return &pc
}

func (pc *postCycle) Status() dto.Status {
	pc.muStatus.Lock()
	defer pc.muStatus.Unlock()
	res := pc.status
	res.Platforms = append([]string(nil), pc.status.Platforms...)
	return res
}

func (pc *postCycle) Run(ctx context.Context) {
	for ctx.Err() == nil {
		pc.runCycleGuarded(ctx)
		pc.logger.Infof("Sleeping for %v", pc.delay)
		if !sleepCtx(ctx, pc.delay) {
			break
		}
	}
	pc.logger.Info("Post cycle stopped")
}

func (pc *postCycle) runCycleGuarded(ctx context.Context) {

	defer func() {
		if r := recover(); r != nil {
			pc.logger.Errorf("Post cycle panicked: %v", r)
			pc.logger.Infof("Sleeping %d seconds after panic", panicSleepSec)
			pc.setCycleEnd(fmt.Errorf("panic: %v", r))
			sleepCtx(ctx, panicSleepSec*time.Second)
		}
	}()

	pc.muStatus.Lock()
	pc.status.LastCycleStart = time.Now()
	pc.muStatus.Unlock()

	err := pc.RunCycle(ctx)
	if err != nil && ctx.Err() == nil {
		pc.logger.Errorf("Post cycle failed: %v", err)
	}
	pc.setCycleEnd(err)
}

func (pc *postCycle) setCycleEnd(err error) {
	pc.muStatus.Lock()
	defer pc.muStatus.Unlock()
	pc.status.LastCycleEnd = time.Now()
	pc.status.CyclesCompleted++
	pc.status.LastCycleError = ""
	if err != nil {
		pc.status.LastCycleError = err.Error()
	}
}

func (pc *postCycle) RunCycle(ctx context.Context) error {

	obs := pc.metrics.StartCycle()
	defer obs.Finish()

	if _, err := pc.janitor.PurgeStale(); err != nil {
		pc.logger.Warnf("Failed to purge stale media files: %v", err)
	}

	pc.logger.Infof("Retrieving posts from r/%s", pc.cfg.Subreddit)
	posts, err := pc.feed.FetchHot(ctx, pc.cfg.Subreddit, pc.cfg.PostLimit)
	if err != nil {
		return err
	}
	pc.metrics.PostsFetched(len(posts))

	for _, post := range pc.filterPosts(posts) {
		if err = ctx.Err(); err != nil {
			return err
		}
		var seen bool
		if seen, err = pc.ledger.Seen(post.Id); err != nil {
			return fmt.Errorf("failed to check ledger for %s: %w", post.Id, err)
		}
		if seen {
			pc.logger.Infof("Ignoring %s because it was already posted", post.Id)
			pc.metrics.DuplicateSkipped()
			continue
		}
		if err = pc.handlePost(ctx, post); err != nil {
			return err
		}
		pc.logger.Infof("Sleeping for %v", pc.delay)
		if !sleepCtx(ctx, pc.delay) {
			return ctx.Err()
		}
	}
	return nil
}

// Drops posts excluded by the content settings. Pinned posts are always dropped.
func (pc *postCycle) filterPosts(posts []*dal.Post) []*dal.Post {
	var res []*dal.Post
	for _, post := range posts {
		reason := ""
		switch {
		case post.Over18 && !pc.cfg.NsfwPostsAllowed:
			reason = "nsfw"
		case post.IsSelf && !pc.cfg.SelfPostsAllowed:
			reason = "self"
		case post.Spoiler && !pc.cfg.SpoilersAllowed:
			reason = "spoiler"
		case post.Stickied:
			reason = "stickied"
		}
		if reason != "" {
			pc.logger.Infof("Skipping %s because it is marked as %s", post.Id, reason)
			pc.metrics.PostFiltered(reason)
			continue
		}
		res = append(res, post)
	}
	return res
}

// Resolves media, publishes to every platform, records one ledger entry, and deletes the media.
func (pc *postCycle) handlePost(ctx context.Context, post *dal.Post) error {

	media := map[dal.Fidelity]*dal.ResolvedMedia{}
	defer pc.deleteMedia(media)

	for _, pub := range pc.publishers {
		fidelity := pub.Fidelity()
		if _, done := media[fidelity]; !done {
			media[fidelity] = pc.resolveMedia(ctx, post, fidelity)
		}
	}

	var outcomes []string
	for _, pub := range pc.publishers {
		outcomes = append(outcomes, pc.publish(ctx, pub, post, media[pub.Fidelity()]))
	}

	pc.muStatus.Lock()
	pc.status.PostsHandled++
	pc.muStatus.Unlock()

	if err := pc.ledger.Record(post.Id, strings.Join(outcomes, outcomeSeparator)); err != nil {
		return fmt.Errorf("failed to record %s in ledger: %w", post.Id, err)
	}
	return nil
}

// Returns nil if the post has no usable media; failures are logged, never returned.
func (pc *postCycle) resolveMedia(ctx context.Context, post *dal.Post, fidelity dal.Fidelity) *dal.ResolvedMedia {
	res, err := pc.resolver.Resolve(ctx, post, fidelity)
	if err == nil {
		return res
	}
	if shared.IsNonFatalMediaError(err) {
		pc.logger.Warnf("No %s media for %s: %v", fidelity, post.Id, err)
	} else {
		pc.logger.Errorf("Failed to resolve %s media for %s: %v", fidelity, post.Id, err)
	}
	return nil
}

// Publishes to one platform and returns the outcome to record: the new post's URL, or what went wrong.
func (pc *postCycle) publish(ctx context.Context, pub IPublisher, post *dal.Post, media *dal.ResolvedMedia) string {

	if pc.cfg.MediaPostsOnly && media == nil {
		pc.logger.Warnf("%s: Ignoring %s because non-media posts are disabled or the media file was not found",
			pub.Name(), post.Id)
		pc.metrics.PublishAttempted(pub.Name(), "skipped")
		return fmt.Sprintf("Skipped on %s: no media", pub.Name())
	}

	caption := shared.BuildCaption(post.Title, post.Permalink, pc.cfg.Hashtags, pub.MaxLength())
	postUrl, err := pub.Publish(ctx, post, caption, media)
	if err != nil {
		outcome := fmt.Sprintf("Error while posting %s: %v", pub.PostNoun(), err)
		pc.logger.Error(outcome)
		pc.metrics.PublishAttempted(pub.Name(), "error")
		return outcome
	}
	pc.logger.Infof("Posted %s on %s: %s", post.Id, pub.Name(), postUrl)
	pc.metrics.PublishAttempted(pub.Name(), "ok")
	return postUrl
}

func (pc *postCycle) deleteMedia(media map[dal.Fidelity]*dal.ResolvedMedia) {
	deleted := map[string]bool{}
	for _, m := range media {
		if m == nil || deleted[m.Path] {
			continue
		}
		deleted[m.Path] = true
		if err := os.Remove(m.Path); err != nil {
			pc.logger.Errorf("Error while deleting media file %s: %v", m.Path, err)
		} else {
			pc.logger.Infof("Deleted media file at %s", m.Path)
		}
	}
}

// Waits for d or until ctx is cancelled. Returns false if cancelled.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
