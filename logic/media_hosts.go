package logic

import (
	"context"
	"fmt"
	"github.com/spaolacci/murmur3"
	"mime"
	"net/url"
	"path"
	"reddit_parrot/dal"
	"reddit_parrot/shared"
	"regexp"
	"strconv"
	"strings"
)

var (
	reImgurId = regexp.MustCompile(`(?:.*)imgur\.com(?:\/gallery\/|\/a\/|\/)(.*?)(?:\/.*|\.|$)`)
	reGiphyId = regexp.MustCompile(`https?://((?:.*)giphy\.com/media/|giphy.com/gifs/|i.giphy.com/)(.*-)?(\w+)(/|\n|$)`)
)

var genericMediaTypes = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

const mediaTypeMp4 = "video/mp4"

// Images hosted by Reddit itself.
func resolveDirect(mr *mediaResolver, ctx context.Context, post *dal.Post, fidelity dal.Fidelity) (*dal.ResolvedMedia, error) {
	u, err := url.Parse(post.Url)
	if err != nil {
		return nil, fmt.Errorf("invalid media URL %s: %w", post.Url, err)
	}
	fileName := path.Base(u.Path)
	ext := strings.ToLower(path.Ext(u.Path))
	if ext == "" {
		// Some uploads come without an extension
		ext = ".jpg"
		u.Path += ext
		fileName += ext
	}
	if fidelity == dal.FidelityCompact && ext == ".gifv" {
		u.Path = strings.TrimSuffix(u.Path, path.Ext(u.Path)) + ".gif"
		fileName = strings.TrimSuffix(fileName, path.Ext(fileName)) + ".gif"
	}
	return mr.save(ctx, u.String(), fileName)
}

// Reddit-hosted video. Only the high fidelity variant exists.
func resolveRedditVideo(mr *mediaResolver, ctx context.Context, post *dal.Post, fidelity dal.Fidelity) (*dal.ResolvedMedia, error) {
	if fidelity == dal.FidelityCompact {
		mr.logger.Warnf("Reddit videos are not supported in compact fidelity; skipping media for %s", post.Id)
		return nil, nil
	}
	if post.Media == nil || post.Media.RedditVideoFallbackUrl == "" {
		return nil, shared.ErrNoMediaAvailable
	}
	return mr.save(ctx, post.Media.RedditVideoFallbackUrl, post.Id+".mp4")
}

func resolveImgur(mr *mediaResolver, ctx context.Context, post *dal.Post, fidelity dal.Fidelity) (*dal.ResolvedMedia, error) {

	if err := mr.imgur.Authenticate(ctx); err != nil {
		return nil, &shared.ServiceAuthError{Service: "Imgur", Err: err}
	}

	groups := reImgurId.FindStringSubmatch(post.Url)
	if groups == nil || groups[1] == "" {
		return nil, fmt.Errorf("imgur URL %s: %w", post.Url, shared.ErrUnresolvableIdentifier)
	}
	imgurId := groups[1]

	var link string
	if strings.Contains(post.Url, "/a/") || strings.Contains(post.Url, "/gallery/") {
		images, err := mr.imgur.GetAlbumImages(ctx, imgurId)
		if err != nil {
			return nil, &shared.ServiceAuthError{Service: "Imgur", Err: err}
		}
		// Only the first image of an album is ever posted
		if len(images) == 0 {
			return nil, shared.ErrNoMediaAvailable
		}
		link = images[0].Link
	} else {
		img, err := mr.imgur.GetImage(ctx, imgurId)
		if err != nil {
			return nil, &shared.ServiceAuthError{Service: "Imgur", Err: err}
		}
		link = img.Link
		if fidelity == dal.FidelityHigh && img.Type == "image/gif" && img.Mp4 != "" {
			link = img.Mp4
		}
	}
	if link == "" {
		return nil, shared.ErrNoMediaAvailable
	}

	if fidelity == dal.FidelityCompact {
		link = strings.Replace(link, ".gifv", ".gif", 1)
		link = strings.Replace(link, ".mp4", ".gif", 1)
	}
	ext := strings.ToLower(path.Ext(urlBaseName(link)))
	media, err := mr.save(ctx, link, imgurId+ext)
	if err != nil {
		return nil, err
	}
	// Imgur serves a static thumbnail when the GIF rendition isn't ready or is too large
	if fidelity == dal.FidelityCompact && ext == ".gif" {
		if err = mr.ensureRealGif(media); err != nil {
			return nil, err
		}
	}
	return media, nil
}

func resolveGfycat(mr *mediaResolver, ctx context.Context, post *dal.Post, fidelity dal.Fidelity) (*dal.ResolvedMedia, error) {
	name := urlBaseName(post.Url)
	if name == "" {
		return nil, fmt.Errorf("gfycat URL %s: %w", post.Url, shared.ErrUnresolvableIdentifier)
	}
	item, err := mr.gfycat.QueryByName(ctx, name)
	if err != nil {
		return nil, &shared.ServiceAuthError{Service: "Gfycat", Err: err}
	}
	if fidelity == dal.FidelityCompact {
		if item.Max2mbGif == "" {
			return nil, shared.ErrNoMediaAvailable
		}
		return mr.save(ctx, item.Max2mbGif, name+".gif")
	}
	if item.Mp4Url == "" {
		return nil, shared.ErrNoMediaAvailable
	}
	return mr.save(ctx, item.Mp4Url, name+".mp4")
}

func resolveGiphy(mr *mediaResolver, ctx context.Context, post *dal.Post, fidelity dal.Fidelity) (*dal.ResolvedMedia, error) {
	groups := reGiphyId.FindStringSubmatch(post.Url)
	if groups == nil || groups[3] == "" {
		return nil, fmt.Errorf("giphy URL %s: %w", post.Url, shared.ErrUnresolvableIdentifier)
	}
	giphyId := groups[3]

	if fidelity == dal.FidelityHigh {
		return mr.save(ctx, mr.urls.GiphyMp4(giphyId), giphyId+"-giphy.mp4")
	}
	media, err := mr.save(ctx, mr.urls.GiphyDownsized(giphyId), giphyId+"-downsized.gif")
	if err != nil {
		return nil, err
	}
	if err = mr.ensureNotPlaceholder(media); err != nil {
		return nil, err
	}
	return media, nil
}

// Any other URL: download only if the server says it's a supported media type.
func resolveGeneric(mr *mediaResolver, ctx context.Context, post *dal.Post, fidelity dal.Fidelity) (*dal.ResolvedMedia, error) {
	contentType, err := mr.downloader.ContentType(ctx, post.Url)
	if err != nil {
		return nil, err
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, fmt.Errorf("%s has content type '%s': %w", post.Url, contentType, shared.ErrNotMedia)
	}
	ext, ok := genericMediaTypes[mediaType]
	if !ok && fidelity == dal.FidelityHigh && mediaType == mediaTypeMp4 {
		ext, ok = ".mp4", true
	}
	if !ok {
		return nil, fmt.Errorf("%s has content type '%s': %w", post.Url, mediaType, shared.ErrNotMedia)
	}
	fileName := urlBaseName(post.Url)
	if fileName == "" {
		hash := murmur3.Sum64([]byte(post.Url))
		fileName = strconv.FormatUint(hash, 16)
	}
	if path.Ext(fileName) == "" {
		fileName += ext
	}
	return mr.save(ctx, post.Url, fileName)
}
