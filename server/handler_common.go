package server

import (
	"encoding/json"
	"net/http"
	"reddit_parrot/shared"
	"strconv"
)

const (
	apiKeyHeader      = "X-API-KEY"
	metricsAuthHeader = "Authorization"
	contentTypeHeader = "Content-Type"
	jsonContentType   = "application/json"
	internalErrorStr  = "500 Internal Server Error"
	badRequestStr     = "400 Invalid Request"
	notFoundStr       = "404 Not Found"
	badApiKeyStr      = "401 Missing or Invalid API Key"
	badAuthorization  = "401 Missing or Invalid Authorization"
	notSupportedStr   = "501 Not Supported By This Ledger"
)

// Defines a single HTTP handler (endpoint)
type handlerDef struct {
	method  string
	pattern string
	handler func(http.ResponseWriter, *http.Request)
}

// IHandlerGroup is a set of endpoints under one path prefix, sharing one auth middleware.
type IHandlerGroup interface {
	Prefix() string
	GroupDefs() []handlerDef
	AuthMW() func(next http.Handler) http.Handler
}

// Writes obj as a 200 JSON response.
func writeJsonResponse(logger shared.ILogger, w http.ResponseWriter, obj any) {
	body, err := json.Marshal(obj)
	if err != nil {
		logger.Errorf("Failed to serialize %T for response: %v", obj, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	w.Header().Set(contentTypeHeader, jsonContentType)
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write(append(body, '\n')); err != nil {
		logger.Warnf("Failed to write response: %v", err)
	}
}

type errorResp struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}

func writeErrorResponse(w http.ResponseWriter, msg string, code int) {
	body, _ := json.Marshal(&errorResp{msg, code})
	w.Header().Set(contentTypeHeader, jsonContentType)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	_, _ = w.Write(append(body, '\n'))
}

// Keeps the first four characters of a credential for log lines.
func redactSecret(secret string) string {
	if len(secret) <= 4 {
		return secret
	}
	return secret[:4] + "..."
}

// Reads an optional positive integer query parameter, capped at upper.
// Returns def if the parameter is absent and false if it is not a positive number.
func queryPositiveInt(r *http.Request, name string, def, upper int) (int, bool) {
	str := r.URL.Query().Get(name)
	if str == "" {
		return def, true
	}
	val, err := strconv.Atoi(str)
	if err != nil || val <= 0 {
		return 0, false
	}
	return min(val, upper), true
}
