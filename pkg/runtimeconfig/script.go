package runtimeconfig

import (
	"net/http"

	"github.com/tidwall/sjson"
)

// Script renders the bootstrap script assigning cfg to the global config object.
// Absent fields are omitted from the payload.
func Script(cfg Config) []byte {
	payload := []byte("{}")
	for _, kv := range [...]struct{ key, value string }{
		{KeyAPIBaseURL, cfg.APIBaseURL},
		{KeyAuthAPIBaseURL, cfg.AuthAPIBaseURL},
		{KeyAppVersion, cfg.AppVersion},
	} {
		if kv.value == "" {
			continue
		}
		// Keys are constants, SetBytes cannot fail on them.
		payload, _ = sjson.SetBytes(payload, kv.key, kv.value)
	}

	out := make([]byte, 0, len(payload)+32)
	out = append(out, "window."+GlobalName+" = "...)
	out = append(out, payload...)
	out = append(out, ';')
	return out
}

// Handler serves the bootstrap script for cfg. The body is rendered once;
// responses are marked non-cacheable so a redeploy with new origins takes
// effect on the next page load.
func Handler(cfg Config) http.Handler {
	body := Script(cfg)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store, max-age=0")
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodHead {
			return
		}
		_, _ = w.Write(body)
	})
}
