package admission

import (
	"net/url"
	"strings"

	"github.com/vidnote/audiofetch/internal/model"
)

// MinURLLength is the cheap pre-filter threshold: anything shorter after
// trimming is treated as malformed without consulting the allow-list.
const MinURLLength = 10

// PlatformRule binds a platform to the hosts that identify it and the
// query parameters to strip from its URLs.
type PlatformRule struct {
	Platform model.Platform

	// Hosts are matched case-insensitively as substrings of the URL.
	Hosts []string

	// TrackingParams are query parameter names removed during
	// normalization. May be empty for platforms with clean URLs.
	TrackingParams []string
}

// Config holds the allow-list for an Admitter.
type Config struct {
	Rules []PlatformRule
}

// DefaultConfig returns the stock allow-list: bilibili plus the YouTube
// domains and their short-link alias. Bilibili URLs carry session and
// tracking parameters that must be stripped before use.
func DefaultConfig() Config {
	return Config{
		Rules: []PlatformRule{
			{
				Platform:       model.PlatformBilibili,
				Hosts:          []string{"bilibili.com"},
				TrackingParams: []string{"spm_id_from", "vd_source", "timestamp", "unique_k", "spm_id"},
			},
			{
				Platform: model.PlatformYouTube,
				Hosts:    []string{"youtube.com", "youtu.be", "m.youtube.com", "www.youtube.com"},
			},
		},
	}
}

// Admitter decides whether a URL may enter the pipeline. Admit is a pure
// function of its input; the admitter holds only immutable configuration.
type Admitter struct {
	rules []PlatformRule
}

// New creates an Admitter from the given allow-list configuration.
func New(cfg Config) *Admitter {
	return &Admitter{rules: cfg.Rules}
}

// Admit validates rawURL and returns its normalized form and platform.
// Implausibly short input fails with ErrInvalidInput; a host outside the
// allow-list fails with ErrUnsupportedPlatform. No network calls are made.
func (a *Admitter) Admit(rawURL string) (model.AdmittedURL, error) {
	trimmed := strings.TrimSpace(rawURL)
	if len(trimmed) < MinURLLength {
		return model.AdmittedURL{}, model.NewError(model.ErrInvalidInput,
			"url is missing or too short: %q", trimmed)
	}

	rule, ok := a.match(trimmed)
	if !ok {
		return model.AdmittedURL{}, model.NewError(model.ErrUnsupportedPlatform,
			"unsupported platform for url %q, supported hosts: %s",
			trimmed, strings.Join(a.supportedHosts(), ", "))
	}

	normalized, err := normalize(trimmed, rule.TrackingParams)
	if err != nil {
		return model.AdmittedURL{}, model.NewError(model.ErrInvalidInput,
			"unparsable url %q: %v", trimmed, err)
	}

	return model.AdmittedURL{Normalized: normalized, Platform: rule.Platform}, nil
}

// match finds the first rule whose host list matches the URL.
func (a *Admitter) match(rawURL string) (PlatformRule, bool) {
	lower := strings.ToLower(rawURL)
	for _, rule := range a.rules {
		for _, host := range rule.Hosts {
			if strings.Contains(lower, strings.ToLower(host)) {
				return rule, true
			}
		}
	}
	return PlatformRule{}, false
}

func (a *Admitter) supportedHosts() []string {
	var hosts []string
	for _, rule := range a.rules {
		hosts = append(hosts, rule.Hosts...)
	}
	return hosts
}

// normalize strips the designated tracking parameters and re-serializes
// the URL. Scheme, host, path, and all other query parameters are
// preserved. Normalizing an already-normalized URL yields the same string.
func normalize(rawURL string, trackingParams []string) (string, error) {
	if len(trackingParams) == 0 {
		return rawURL, nil
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	query := parsed.Query()
	for _, param := range trackingParams {
		query.Del(param)
	}
	parsed.RawQuery = query.Encode()

	return parsed.String(), nil
}
