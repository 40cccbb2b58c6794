package logic

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	_ "golang.org/x/image/webp"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"reddit_parrot/dal"
	"reddit_parrot/shared"
	"strings"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_media_resolver.go -package mocks reddit_parrot/logic IMediaResolver

// MD5 of the "this GIF is not available" image Giphy serves instead of a real rendition
const giphyPlaceholderHash = "59a41d58693283c72d9da8ae0561e4e5"

// IMediaResolver turns a post's link into a local media file.
type IMediaResolver interface {
	// Resolve downloads the post's media in the requested fidelity. A nil result with a nil error
	// means the post has no usable media. Errors for which shared.IsNonFatalMediaError is true
	// also mean "no media"; the caller owns and deletes any returned file.
	Resolve(ctx context.Context, post *dal.Post, fidelity dal.Fidelity) (*dal.ResolvedMedia, error)
}

type resolveFunc func(mr *mediaResolver, ctx context.Context, post *dal.Post, fidelity dal.Fidelity) (*dal.ResolvedMedia, error)

// One entry of the host table: first entry whose matches returns true handles the URL.
type mediaHost struct {
	name    string
	matches func(srcUrl string) bool
	resolve resolveFunc
}

type mediaResolver struct {
	cfg             *shared.Config
	logger          shared.ILogger
	metrics         IMetrics
	downloader      IDownloader
	imgur           IImgurClient
	gfycat          IGfycatClient
	urls            *shared.UrlBuilder
	mediaDir        string
	placeholderHash string
	hosts           []mediaHost
}

func NewMediaResolver(
	cfg *shared.Config,
	logger shared.ILogger,
	metrics IMetrics,
	downloader IDownloader,
	imgur IImgurClient,
	gfycat IGfycatClient,
	urls *shared.UrlBuilder,
) IMediaResolver {
	return &mediaResolver{
		cfg:             cfg,
		logger:          logger,
		metrics:         metrics,
		downloader:      downloader,
		imgur:           imgur,
		gfycat:          gfycat,
		urls:            urls,
		mediaDir:        cfg.MediaDir,
		placeholderHash: giphyPlaceholderHash,
		hosts:           mediaHostTable(),
	}
}

func mediaHostTable() []mediaHost {
	contains := func(markers ...string) func(string) bool {
		return func(srcUrl string) bool {
			for _, m := range markers {
				if strings.Contains(srcUrl, m) {
					return true
				}
			}
			return false
		}
	}
	return []mediaHost{
		{"direct", contains("i.redd.it", "i.reddituploads.com"), resolveDirect},
		{"reddit-video", contains("v.redd.it"), resolveRedditVideo},
		{"imgur", contains("imgur.com"), resolveImgur},
		{"gfycat", contains("gfycat.com"), resolveGfycat},
		{"giphy", contains("giphy.com"), resolveGiphy},
		{"generic", func(string) bool { return true }, resolveGeneric},
	}
}

func (mr *mediaResolver) Resolve(ctx context.Context, post *dal.Post, fidelity dal.Fidelity) (*dal.ResolvedMedia, error) {

	if post.Url == "" {
		return nil, nil
	}

	var host *mediaHost
	for i := range mr.hosts {
		if mr.hosts[i].matches(post.Url) {
			host = &mr.hosts[i]
			break
		}
	}

	mr.logger.Debugf("Resolving %s media for %s via %s: %s", fidelity, post.Id, host.name, post.Url)
	res, err := host.resolve(mr, ctx, post, fidelity)
	mr.metrics.MediaResolved(host.name, resolveResultLabel(res, err))
	if err != nil {
		return nil, err
	}
	if res != nil {
		mr.logger.Infof("Media for %s saved to %s (%s)", post.Id, res.Path, res.Kind)
	}
	return res, nil
}

func resolveResultLabel(res *dal.ResolvedMedia, err error) string {
	switch {
	case errors.Is(err, shared.ErrPlaceholderAsset):
		return "placeholder"
	case err != nil:
		return "error"
	case res == nil:
		return "absent"
	default:
		return "ok"
	}
}

// Downloads srcUrl into the media directory under fileName.
func (mr *mediaResolver) save(ctx context.Context, srcUrl, fileName string) (*dal.ResolvedMedia, error) {
	filePath := filepath.Join(mr.mediaDir, fileName)
	if err := mr.downloader.Download(ctx, srcUrl, filePath); err != nil {
		return nil, err
	}
	media := &dal.ResolvedMedia{Path: filePath, Kind: kindFromName(fileName), ContentType: contentTypeFromName(fileName)}
	// Image signatures win over the extension: hosts serve WebP as .png, or images from .php URLs
	if format, err := imageFormat(filePath); err == nil {
		media.Kind = kindFromFormat(format)
		media.ContentType = "image/" + format
	}
	return media, nil
}

// Checks the saved file's signature and deletes it if it is not really a GIF.
func (mr *mediaResolver) ensureRealGif(media *dal.ResolvedMedia) error {
	format, err := imageFormat(media.Path)
	if err == nil && format == "gif" {
		return nil
	}
	if err != nil {
		mr.logger.Warnf("Could not detect image format of %s: %v", media.Path, err)
	} else {
		mr.logger.Warnf("File %s is %s, not GIF; deleting", media.Path, format)
	}
	mr.removeFile(media.Path)
	return shared.ErrPlaceholderAsset
}

// Compares the saved file's MD5 with the known placeholder and deletes it on a match.
func (mr *mediaResolver) ensureNotPlaceholder(media *dal.ResolvedMedia) error {
	hash, err := fileMd5(media.Path)
	if err != nil {
		mr.removeFile(media.Path)
		return fmt.Errorf("failed to hash %s: %w", media.Path, err)
	}
	if hash != mr.placeholderHash {
		return nil
	}
	mr.logger.Warnf("File %s is a placeholder image; deleting", media.Path)
	mr.removeFile(media.Path)
	return shared.ErrPlaceholderAsset
}

func (mr *mediaResolver) removeFile(filePath string) {
	if err := os.Remove(filePath); err != nil {
		mr.logger.Errorf("Error while deleting media file %s: %v", filePath, err)
	}
}

func imageFormat(filePath string) (string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return "", err
	}
	defer f.Close()
	_, format, err := image.DecodeConfig(f)
	return format, err
}

func fileMd5(filePath string) (string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return "", err
	}
	defer f.Close()
	h := md5.New()
	if _, err = io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func kindFromName(fileName string) dal.MediaKind {
	switch strings.ToLower(path.Ext(fileName)) {
	case ".gif":
		return dal.MediaAnimated
	case ".mp4":
		return dal.MediaVideo
	default:
		return dal.MediaStatic
	}
}

func kindFromFormat(format string) dal.MediaKind {
	if format == "gif" {
		return dal.MediaAnimated
	}
	return dal.MediaStatic
}

func contentTypeFromName(fileName string) string {
	ext := strings.ToLower(path.Ext(fileName))
	if ext == ".mp4" {
		return mediaTypeMp4
	}
	if contentType := mime.TypeByExtension(ext); contentType != "" {
		return contentType
	}
	return "application/octet-stream"
}

// Returns the last segment of the URL's path, without the query.
func urlBaseName(srcUrl string) string {
	u, err := url.Parse(srcUrl)
	if err != nil {
		return ""
	}
	base := path.Base(u.Path)
	if base == "." || base == "/" {
		return ""
	}
	return base
}
