package transport

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/staffihq/staffi-go/internal/guard"
	"github.com/staffihq/staffi-go/internal/nav"
	"github.com/staffihq/staffi-go/internal/notify"
	"github.com/staffihq/staffi-go/internal/session"
	"github.com/staffihq/staffi-go/internal/translate"
)

// BearerAuth attaches the stored token as an Authorization header. Requests
// without a stored token go out unauthenticated; the backend decides what
// that means.
func BearerAuth(sess *session.Session) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, req *http.Request) (*http.Response, error) {
			if token := sess.Token(); token != "" {
				req.Header.Set("Authorization", "Bearer "+token)
			}
			return next(ctx, req)
		}
	}
}

// RequestID tags every request with a correlation ID so client logs can be
// matched against backend logs.
func RequestID() Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, req *http.Request) (*http.Response, error) {
			req.Header.Set("X-Request-Id", uuid.NewString())
			return next(ctx, req)
		}
	}
}

// AuthFailure reacts to 401 responses: the session is cleared and the user is
// sent to the login page, replacing the current history entry so back-nav
// cannot return to the now-invalid page. The original error is always
// re-returned so callers can still react locally.
//
// publicPaths is the set of locations that never get a returnUrl attached -
// there is nothing useful to return to from the login page itself.
func AuthFailure(sess *session.Session, navigator nav.Navigator, publicPaths []string) Middleware {
	public := make(map[string]struct{}, len(publicPaths))
	for _, p := range publicPaths {
		public[p] = struct{}{}
	}

	return func(next Handler) Handler {
		return func(ctx context.Context, req *http.Request) (*http.Response, error) {
			resp, err := next(ctx, req)
			apiErr := AsAPIError(err)
			if apiErr == nil || apiErr.StatusCode != http.StatusUnauthorized {
				return resp, err
			}

			authFailuresTotal.Add(ctx, 1,
				metric.WithAttributes(attribute.String("path", req.URL.Path)))

			// Both of these are idempotent, so concurrent 401s from
			// independent in-flight requests are safe.
			_ = sess.Logout()

			current := navigator.CurrentPath()
			if _, isPublic := public[current]; !isPublic {
				navigator.Navigate(guard.LoginPath,
					url.Values{guard.ReturnURLParam: {current}}, true)
			} else {
				navigator.Navigate(guard.LoginPath, nil, true)
			}

			return nil, err
		}
	}
}

// TranslationConfig tunes the error-translation stage.
type TranslationConfig struct {
	// LoginEndpoint is the path suffix of the login endpoint. Errors from it
	// are never auto-notified: the login view renders its own message.
	LoginEndpoint string

	// Duration is how long a notification stays visible.
	Duration time.Duration
}

// ErrorTranslation turns structured backend errors into user-facing
// notifications via the catalog. The stage is silent on anything it does not
// recognize and always re-returns the original error, so a form can still run
// its own field-level handling on top.
func ErrorTranslation(catalog *translate.Catalog, notifier notify.Notifier, cfg TranslationConfig) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, req *http.Request) (*http.Response, error) {
			resp, err := next(ctx, req)
			apiErr := AsAPIError(err)
			if apiErr == nil || apiErr.Message == "" {
				return resp, err
			}
			if cfg.LoginEndpoint != "" && strings.HasSuffix(req.URL.Path, cfg.LoginEndpoint) {
				return resp, err
			}

			if text, ok := catalog.Lookup(apiErr.Message); ok {
				translatedErrorsTotal.Add(ctx, 1)
				notifier.Show(notify.Notification{
					Text:     text,
					Duration: cfg.Duration,
					Severity: notify.SeverityError,
				})
			}
			return resp, err
		}
	}
}
