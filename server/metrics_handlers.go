package server

import (
	"crypto/subtle"
	"fmt"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"net/http"
	"reddit_parrot/shared"
	"strings"
)

const bearerPrefix = "Bearer "

// Serves the post cycle's Prometheus metrics to a scraper holding the metrics_auth secret.
type metricsHandlerGroup struct {
	cfg         *shared.Config
	logger      shared.ILogger
	promHandler http.Handler
}

// Routes errors from promhttp into the bot's log.
type promErrorLog struct {
	logger shared.ILogger
}

func (l *promErrorLog) Println(v ...any) {
	l.logger.Error(fmt.Sprint(v...))
}

func NewMetricsHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
) IHandlerGroup {
	opts := promhttp.HandlerOpts{
		ErrorLog:      &promErrorLog{logger},
		ErrorHandling: promhttp.ContinueOnError,
	}
	return &metricsHandlerGroup{
		cfg:         cfg,
		logger:      logger,
		promHandler: promhttp.InstrumentMetricHandler(prometheus.DefaultRegisterer, promhttp.HandlerFor(prometheus.DefaultGatherer, opts)),
	}
}

func (hg *metricsHandlerGroup) Prefix() string {
	return "/"
}

func (hg *metricsHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"GET", "/metrics", func(w http.ResponseWriter, r *http.Request) { hg.promHandler.ServeHTTP(w, r) }},
	}
}

func (hg *metricsHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return hg.authMW
}

// Without a metrics_auth secret the endpoint does not exist.
func (hg *metricsHandlerGroup) authMW(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		secret := hg.cfg.Secrets.MetricsAuth
		if secret == "" {
			writeErrorResponse(w, notFoundStr, http.StatusNotFound)
			return
		}
		authHeader := r.Header.Get(metricsAuthHeader)
		given, hasBearer := strings.CutPrefix(authHeader, bearerPrefix)
		if !hasBearer || subtle.ConstantTimeCompare([]byte(given), []byte(secret)) != 1 {
			hg.logger.Warnf("Rejected metrics scrape from %s with token '%s'", r.RemoteAddr, redactSecret(given))
			writeErrorResponse(w, badAuthorization, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
