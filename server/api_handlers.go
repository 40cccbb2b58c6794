package server

import (
	"github.com/gorilla/mux"
	"net/http"
	"reddit_parrot/dal"
	"reddit_parrot/dto"
	"reddit_parrot/logic"
	"reddit_parrot/shared"
)

const (
	defaultEntriesLimit = 20
	maxEntriesLimit     = 100
)

type apiHandlerGroup struct {
	cfg     *shared.Config
	logger  shared.ILogger
	metrics logic.IMetrics
	ledger  dal.ILedger
	cycle   logic.IPostCycle
}

func NewApiHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
	metrics logic.IMetrics,
	ledger dal.ILedger,
	cycle logic.IPostCycle,
) IHandlerGroup {
	res := apiHandlerGroup{
		cfg:     cfg,
		logger:  logger,
		metrics: metrics,
		ledger:  ledger,
		cycle:   cycle,
	}
	return &res
}

func (hg *apiHandlerGroup) Prefix() string {
	return "/api"
}

func (hg *apiHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"GET", "/status", func(w http.ResponseWriter, r *http.Request) { hg.getStatus(w, r) }},
		{"GET", "/ledger", func(w http.ResponseWriter, r *http.Request) { hg.getLedgerEntries(w, r) }},
		{"GET", "/ledger/{postId}", func(w http.ResponseWriter, r *http.Request) { hg.getLedgerLookup(w, r) }},
	}
}

func (hg *apiHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return hg.authMW(next)
	}
}

func (hg *apiHandlerGroup) authMW(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var apiKey = r.Header.Get(apiKeyHeader)
		found := false
		for _, key := range hg.cfg.Secrets.ApiKeys {
			if apiKey != "" && apiKey == key {
				found = true
			}
		}
		if !found {
			hg.logger.Warnf("API request with missing or invalid key '%s': %s", redactSecret(apiKey), r.URL.Path)
			writeErrorResponse(w, badApiKeyStr, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (hg *apiHandlerGroup) getStatus(w http.ResponseWriter, r *http.Request) {
	obs := hg.metrics.StartWebRequestIn("api-status")
	defer obs.Finish()
	writeJsonResponse(hg.logger, w, hg.cycle.Status())
}

func (hg *apiHandlerGroup) getLedgerLookup(w http.ResponseWriter, r *http.Request) {
	obs := hg.metrics.StartWebRequestIn("api-ledger-lookup")
	defer obs.Finish()

	postId := mux.Vars(r)["postId"]
	seen, err := hg.ledger.Seen(postId)
	if err != nil {
		hg.logger.Errorf("Failed to look up %s in ledger: %v", postId, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	writeJsonResponse(hg.logger, w, &dto.LedgerLookup{PostId: postId, Seen: seen})
}

// Most recent entries first; ?limit=N caps the count.
func (hg *apiHandlerGroup) getLedgerEntries(w http.ResponseWriter, r *http.Request) {
	obs := hg.metrics.StartWebRequestIn("api-ledger-entries")
	defer obs.Finish()

	lister, ok := hg.ledger.(dal.IEntryLister)
	if !ok {
		writeErrorResponse(w, notSupportedStr, http.StatusNotImplemented)
		return
	}
	limit, ok := queryPositiveInt(r, "limit", defaultEntriesLimit, maxEntriesLimit)
	if !ok {
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}
	entries, err := lister.Entries(limit)
	if err != nil {
		hg.logger.Errorf("Failed to list ledger entries: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []*dal.LedgerEntry{}
	}
	writeJsonResponse(hg.logger, w, entries)
}
