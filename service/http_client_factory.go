package service

import (
	"crypto/tls"
	"net"
	"net/http"
	"time"

	"news-ingestor/config"
)

// NewFeedHTTPClient builds the pooled HTTP client shared by all feed
// fetches in a run. The client timeout is the transport-level bound; the
// fetcher layers its own watchdog on top of it.
func NewFeedHTTPClient(cfg *config.HTTPConfig) *http.Client {
	transport := &http.Transport{
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: false,
			MinVersion:         tls.VersionTLS12,
		},
		DialContext: (&net.Dialer{
			Timeout:   cfg.DialTimeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        cfg.MaxIdleConns,
		MaxConnsPerHost:     cfg.MaxConnsPerHost,
		IdleConnTimeout:     cfg.IdleConnTimeout,
		TLSHandshakeTimeout: cfg.TLSHandshakeTimeout,
	}

	return &http.Client{
		Transport: transport,
		Timeout:   cfg.Timeout,
	}
}
