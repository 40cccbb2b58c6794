package logic

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	apiTimeoutSec     = 30
	maxErrorBodyLen   = 300
	contentTypeForm   = "application/x-www-form-urlencoded"
	headerAuthorize   = "Authorization"
	headerContentType = "Content-Type"
)

// Executes req and decodes a JSON response into obj. Any status outside 2xx is an error that
// carries the start of the response body.
func doJsonRequest(req *http.Request, timeoutSec int, obj any) error {

	client := http.Client{}
	client.Timeout = time.Duration(timeoutSec) * time.Second
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &httpStatusError{Status: resp.StatusCode, Body: truncateBody(body)}
	}
	if obj == nil {
		return nil
	}
	if err = json.Unmarshal(body, obj); err != nil {
		return fmt.Errorf("failed to parse response from %s: %w", req.URL.Host, err)
	}
	return nil
}

func truncateBody(body []byte) string {
	if len(body) > maxErrorBodyLen {
		return string(body[:maxErrorBodyLen]) + "..."
	}
	return string(body)
}

type httpStatusError struct {
	Status int
	Body   string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("request failed with status %v: %s", e.Status, e.Body)
}
