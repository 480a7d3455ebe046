package adapter

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/amishk599/skillmap/internal/model"
)

// newHTTPError converts a non-200 response into an *model.HTTPError.
// 401 wraps model.ErrUnauthorized so callers can tell bad credentials apart.
func newHTTPError(resp *http.Response) *model.HTTPError {
	httpErr := &model.HTTPError{
		StatusCode: resp.StatusCode,
		Reason:     reasonPhrase(resp),
	}
	if resp.StatusCode == http.StatusUnauthorized {
		httpErr.Err = model.ErrUnauthorized
	}
	return httpErr
}

// reasonPhrase returns the status text, e.g. "Bad Gateway" for "502 Bad Gateway".
func reasonPhrase(resp *http.Response) string {
	if len(resp.Status) > 4 {
		return resp.Status[4:]
	}
	return http.StatusText(resp.StatusCode)
}

// redactTransportError strips the request URL (which carries app_key) from
// *url.Error values.
func redactTransportError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s request: %w", urlErr.Op, urlErr.Err)
	}
	return err
}
