// Package hx holds the htmx request and response header vocabulary used by
// the demo routes.
package hx

import (
	"encoding/json"
	"net/http"
)

// Request headers sent by the htmx client.
const (
	HeaderRequest     = "HX-Request"
	HeaderTarget      = "HX-Target"
	HeaderTrigger     = "HX-Trigger"
	HeaderTriggerName = "HX-Trigger-Name"
	HeaderPrompt      = "HX-Prompt"
	HeaderBoosted     = "HX-Boosted"
	HeaderCurrentURL  = "HX-Current-URL"
	HeaderPreloaded   = "HX-Preloaded"
)

// Response headers interpreted by the htmx client.
const (
	HeaderRedirect           = "HX-Redirect"
	HeaderLocation           = "HX-Location"
	HeaderPushURL            = "HX-Push-Url"
	HeaderReplaceURL         = "HX-Replace-Url"
	HeaderRefresh            = "HX-Refresh"
	HeaderReswap             = "HX-Reswap"
	HeaderRetarget           = "HX-Retarget"
	HeaderReselect           = "HX-Reselect"
	HeaderTriggerAfterSwap   = "HX-Trigger-After-Swap"
	HeaderTriggerAfterSettle = "HX-Trigger-After-Settle"
)

// RequestHeaders returns the htmx request headers in display order. Headers
// the client did not send come back as empty strings so templates can show
// the full set.
func RequestHeaders(r *http.Request) map[string]string {
	return map[string]string{
		HeaderRequest:     r.Header.Get(HeaderRequest),
		HeaderTarget:      r.Header.Get(HeaderTarget),
		HeaderTrigger:     r.Header.Get(HeaderTrigger),
		HeaderTriggerName: r.Header.Get(HeaderTriggerName),
		HeaderPrompt:      r.Header.Get(HeaderPrompt),
		HeaderBoosted:     r.Header.Get(HeaderBoosted),
		HeaderCurrentURL:  r.Header.Get(HeaderCurrentURL),
	}
}

// TriggerPayload encodes a client event with its detail object, in the JSON
// shape the HX-Trigger family of headers expects.
func TriggerPayload(event string, detail any) (string, error) {
	raw, err := json.Marshal(map[string]any{event: detail})
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
