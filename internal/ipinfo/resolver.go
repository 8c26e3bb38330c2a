// Package ipinfo resolves a client IP's coarse location for access-log rows.
// Lookups are best effort: any failure resolves to the Unknown sentinel and
// never blocks the decision path beyond the configured timeout.
package ipinfo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pmlaogao/portal/internal/domain"
	"github.com/pmlaogao/portal/internal/logger"
	"github.com/pmlaogao/portal/internal/utils"
)

// Resolver maps an IP address to a human-readable location.
type Resolver interface {
	Locate(ctx context.Context, ip string) string
}

// HTTPResolver queries an ip-api style JSON endpoint (GET <endpoint>/<ip>,
// response carrying "country" and optionally "city").
type HTTPResolver struct {
	endpoint string
	client   *http.Client
	log      logger.Logger
}

// NewHTTPResolver creates a resolver against endpoint with a hard timeout.
func NewHTTPResolver(endpoint string, timeout time.Duration, log logger.Logger) *HTTPResolver {
	return &HTTPResolver{
		endpoint: strings.TrimSuffix(endpoint, "/"),
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DisableKeepAlives: true,
			},
		},
		log: log,
	}
}

func (r *HTTPResolver) Locate(ctx context.Context, ip string) string {
	lookupURL := fmt.Sprintf("%s/%s", r.endpoint, url.PathEscape(ip))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, http.NoBody)
	if err != nil {
		return domain.UnknownValue
	}

	resp, err := r.client.Do(req)
	if err != nil {
		r.log.Debug("location lookup failed",
			logger.String("ip", ip),
			logger.Error(err))
		return domain.UnknownValue
	}
	defer utils.Close(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return domain.UnknownValue
	}

	var payload struct {
		Country string `json:"country"`
		City    string `json:"city"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domain.UnknownValue
	}
	if payload.Country == "" {
		return domain.UnknownValue
	}
	if payload.City != "" {
		return payload.Country + " " + payload.City
	}
	return payload.Country
}

// Static always answers with a fixed location. It backs tests and
// deployments without a lookup endpoint.
type Static string

func (s Static) Locate(context.Context, string) string {
	if s == "" {
		return domain.UnknownValue
	}
	return string(s)
}
