package common

import (
	"context"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type payload struct {
	Name string `json:"name"`
}

func newFetcher(t *testing.T) *Fetcher {
	return NewFetcher("weathercheck-test/1.0", zaptest.NewLogger(t).Sugar())
}

func newObservedFetcher() (*Fetcher, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewFetcher("weathercheck-test/1.0", zap.New(core).Sugar()), logs
}

func assertLabelLogged(t *testing.T, logs *observer.ObservedLogs, label string) {
	t.Helper()
	errs := logs.FilterLevelExact(zapcore.ErrorLevel).All()
	if len(errs) != 1 {
		t.Fatalf("expected one error log, got %d", len(errs))
	}
	if !strings.HasPrefix(errs[0].Message, label) {
		t.Errorf("expected error log to start with %q, got %q", label, errs[0].Message)
	}
}

func TestGetJSONSendsHeaders(t *testing.T) {
	var userAgent, lang string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userAgent = r.Header.Get("User-Agent")
		lang = r.Header.Get("Accept-Language")
		w.Write([]byte(`{"name":"tampa"}`))
	}))
	defer srv.Close()

	var out payload
	ok := newFetcher(t).GetJSON(context.Background(), srv.URL, map[string]string{"Accept-Language": "en"}, "Test error", &out)
	if !ok {
		t.Fatal("expected successful fetch")
	}
	if out.Name != "tampa" {
		t.Errorf("expected decoded name tampa, got %q", out.Name)
	}
	if userAgent != "weathercheck-test/1.0" {
		t.Errorf("expected identifying user agent, got %q", userAgent)
	}
	if lang != "en" {
		t.Errorf("expected caller header to be sent, got %q", lang)
	}
}

func TestGetJSONCallerOverridesSameKey(t *testing.T) {
	var userAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userAgent = r.Header.Get("User-Agent")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	var out payload
	newFetcher(t).GetJSON(context.Background(), srv.URL, map[string]string{"User-Agent": "custom"}, "Test error", &out)
	if userAgent != "custom" {
		t.Errorf("expected explicitly keyed header to win, got %q", userAgent)
	}
}

func TestGetJSONFailures(t *testing.T) {
	cases := map[string]http.HandlerFunc{
		"server error": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"name":"x"}`))
		},
		"not found": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		},
		"invalid json": func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<html>nope</html>`))
		},
	}
	for name, h := range cases {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(h)
			defer srv.Close()

			f, logs := newObservedFetcher()
			var out payload
			if f.GetJSON(context.Background(), srv.URL, nil, "Test error", &out) {
				t.Fatal("expected fetch to fail")
			}
			assertLabelLogged(t, logs, "Test error")
		})
	}
}

func TestGetJSONConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	f, logs := newObservedFetcher()
	var out payload
	if f.GetJSON(context.Background(), url, nil, "Test error", &out) {
		t.Fatal("expected fetch against closed server to fail")
	}
	assertLabelLogged(t, logs, "Test error")
}
