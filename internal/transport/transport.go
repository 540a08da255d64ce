package transport

import (
	"net/http"
	"time"

	"github.com/staffihq/staffi-go/internal/nav"
	"github.com/staffihq/staffi-go/internal/notify"
	"github.com/staffihq/staffi-go/internal/session"
	"github.com/staffihq/staffi-go/internal/translate"
)

// Options wires the default stage stack. Everything is injected so tests can
// substitute fakes for the session, navigator, and notifier.
type Options struct {
	HTTPClient *http.Client
	Session    *session.Session
	Navigator  nav.Navigator
	Catalog    *translate.Catalog
	Notifier   notify.Notifier

	// PublicPaths are locations that never receive a returnUrl on a
	// 401-triggered redirect.
	PublicPaths []string

	// LoginEndpoint is the path suffix exempt from auto-notification.
	LoginEndpoint string

	// NotifyDuration is how long translated-error notifications are shown.
	NotifyDuration time.Duration
}

// New composes the full request pipeline, outermost first:
//
//	tracing -> auth-failure -> error-translation -> request-id -> bearer -> status-check -> http
//
// Auth-failure and error-translation both observe the *APIError produced by
// the innermost status check; each performs its side effect and re-returns
// the error, so their relative order does not change what the caller sees.
func New(opts Options) Handler {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return Chain(HTTPHandler(httpClient),
		Tracing(),
		AuthFailure(opts.Session, opts.Navigator, opts.PublicPaths),
		ErrorTranslation(opts.Catalog, opts.Notifier, TranslationConfig{
			LoginEndpoint: opts.LoginEndpoint,
			Duration:      opts.NotifyDuration,
		}),
		RequestID(),
		BearerAuth(opts.Session),
		StatusCheck(),
	)
}
