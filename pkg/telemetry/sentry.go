package telemetry

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	sentryhttp "github.com/getsentry/sentry-go/http"

	"github.com/ghuser/cartshop/pkg/config"
)

// SetupSentry initializes the Sentry SDK. No-ops if DSN is empty.
// Request bodies carry customer contact details, so default PII stays off.
func SetupSentry(cfg *config.Config) error {
	if cfg.SentryDSN == "" {
		return nil
	}
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.Environment,
		Release:          cfg.ServiceName + "@" + cfg.ServiceVersion,
		TracesSampleRate: productionSampleRatio,
		SendDefaultPII:   false,
		BeforeSend:       scrubCustomerData,
	}); err != nil {
		return fmt.Errorf("sentry init: %w", err)
	}
	sentry.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("node_id", strconv.FormatInt(cfg.NodeID, 10))
	})
	return nil
}

// filtered replaces values that may hold customer contact details.
const filtered = "[Filtered]"

// scrubCustomerData strips request bodies, search terms and identifying
// headers from an event. Customer create bodies carry phone, email and
// address, and ?q= searches are often a phone number.
func scrubCustomerData(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
	if event == nil || event.Request == nil {
		return event
	}
	req := event.Request
	if req.Data != "" {
		req.Data = filtered
	}
	if req.QueryString != "" {
		req.QueryString = filtered
	}
	req.Cookies = ""
	for name := range req.Headers {
		switch strings.ToLower(name) {
		case "cookie", "authorization", "x-forwarded-for", "x-real-ip":
			req.Headers[name] = filtered
		}
	}
	return event
}

// SentryFlush flushes buffered events before process exit.
func SentryFlush() {
	sentry.Flush(2 * time.Second)
}

// SentryMiddleware returns a net/http middleware that captures panics and errors.
// Repanic: true so the outer Recovery middleware still handles the 500 response.
func SentryMiddleware() func(http.Handler) http.Handler {
	h := sentryhttp.New(sentryhttp.Options{Repanic: true, Timeout: 2 * time.Second})
	return h.Handle
}
