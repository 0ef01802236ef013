package common

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Fetcher issues single-attempt GET requests and decodes JSON bodies.
// Failures are logged and reported as false, never returned as errors.
type Fetcher struct {
	client *resty.Client
	logger *zap.SugaredLogger
}

func NewFetcher(userAgent string, logger *zap.SugaredLogger) *Fetcher {
	if userAgent == "" {
		panic("Missing userAgent in fetcher")
	}
	client := resty.New().
		SetHeader("User-Agent", userAgent).
		SetRetryCount(0)

	return &Fetcher{
		client: client,
		logger: logger,
	}
}

// GetJSON requests reqUrl and decodes the body into out. Headers are merged
// over the client's identifying User-Agent. label prefixes the log line on failure.
func (f *Fetcher) GetJSON(ctx context.Context, reqUrl string, headers map[string]string, label string, out interface{}) bool {
	if err := f.getJSON(ctx, reqUrl, headers, out); err != nil {
		f.logger.Errorw(fmt.Sprintf("%s: %s", label, err.Error()),
			"url", reqUrl, "action", "GetJSON")
		return false
	}
	return true
}

func (f *Fetcher) getJSON(ctx context.Context, reqUrl string, headers map[string]string, out interface{}) error {
	resp, err := f.client.R().
		SetContext(ctx).
		SetHeaders(headers).
		Get(reqUrl)
	if err != nil {
		return errors.New(fmt.Sprintf("request failed: %s", err.Error()))
	}
	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return errors.New(fmt.Sprintf("error code %v returned", resp.StatusCode()))
	}

	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return errors.New(fmt.Sprintf("error unmarshalling response: %s", err.Error()))
	}
	return nil
}
