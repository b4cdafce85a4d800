package runtimeconfig

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

const maxScriptSize = 64 << 10

// FromScript parses a bootstrap script of the form
// `window.__RUNTIME_CONFIG__ = {...};`. A bare JSON object is accepted too.
func FromScript(script []byte) (Config, error) {
	start := bytes.IndexByte(script, '{')
	end := bytes.LastIndexByte(script, '}')
	if start < 0 || end < start {
		return Config{}, ErrNoPayload
	}
	payload := script[start : end+1]
	if !gjson.ValidBytes(payload) {
		return Config{}, errors.Join(ErrNoPayload, errors.New("payload is not valid JSON"))
	}

	res := gjson.GetManyBytes(payload, KeyAPIBaseURL, KeyAuthAPIBaseURL, KeyAppVersion)
	return Config{
		APIBaseURL:     res[0].String(),
		AuthAPIBaseURL: res[1].String(),
		AppVersion:     res[2].String(),
	}, nil
}

// FromURL returns a Source that fetches and parses the bootstrap script at rawURL.
// If client is nil, http.DefaultClient is used.
func FromURL(ctx context.Context, client *http.Client, rawURL string) Source {
	if client == nil {
		client = http.DefaultClient
	}
	return func() (Config, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return Config{}, errors.Join(ErrFetchFailed, err)
		}
		req.Header.Set("Cache-Control", "no-cache")

		resp, err := client.Do(req)
		if err != nil {
			return Config{}, errors.Join(ErrFetchFailed, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return Config{}, errors.Join(ErrFetchFailed, fmt.Errorf("status=%d", resp.StatusCode))
		}

		body, err := io.ReadAll(io.LimitReader(resp.Body, maxScriptSize))
		if err != nil {
			return Config{}, errors.Join(ErrFetchFailed, err)
		}
		return FromScript(body)
	}
}

// FromFile returns a Source that reads a YAML file.
func FromFile(path string) Source {
	return func() (Config, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, errors.Join(ErrReadFailed, err)
		}
		var cfg Config
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, errors.Join(ErrReadFailed, fmt.Errorf("decode %s: %w", path, err))
		}
		return cfg, nil
	}
}

// FromEnv returns a Source that reads API_BASE_URL, AUTH_API_BASE_URL and APP_VERSION.
func FromEnv() Source {
	return func() (Config, error) {
		return Config{
			APIBaseURL:     os.Getenv(KeyAPIBaseURL),
			AuthAPIBaseURL: os.Getenv(KeyAuthAPIBaseURL),
			AppVersion:     os.Getenv(KeyAppVersion),
		}, nil
	}
}

// Merge returns a Source that layers sources: later non-empty fields win.
// Failing sources are skipped; an error is returned only if every source failed.
func Merge(sources ...Source) Source {
	return func() (Config, error) {
		var (
			out  Config
			errs []error
		)
		for _, src := range sources {
			cfg, err := src()
			if err != nil {
				errs = append(errs, err)
				continue
			}
			out = cfg.Resolve(Defaults(out))
		}
		if len(errs) == len(sources) && len(errs) > 0 {
			return Config{}, errors.Join(errs...)
		}
		return out, nil
	}
}
