// Package metrics holds Prometheus instruments that are used across
// frontdoor.  All collectors are registered with the global registry, so
// importing this package in main.go is enough to expose them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Label values for LocaleRedirectsTotal.
const (
	SourcePreference = "preference"
	SourceFallback   = "fallback"
)

var (
	LocaleRedirectsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "locale_redirects_total",
			Help: "Root-route locale redirects, by where the locale came from.",
		}, []string{"source"})

	LocaleLookupErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "locale_lookup_errors_total",
			Help: "Locale preference lookups that failed.",
		})

	RedirectParamReadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "redirect_param_reads_total",
			Help: "One-shot reads of the redirect query parameter, by presence.",
		}, []string{"present"})

	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Served HTTP requests, by status class.",
		}, []string{"class"})
)

func init() {
	prometheus.MustRegister(
		LocaleRedirectsTotal,
		LocaleLookupErrorsTotal,
		RedirectParamReadsTotal,
		HTTPRequestsTotal,
	)
}
