package wbtools

import (
	"errors"
	"fmt"

	"github.com/jonwraymond/wbdocs/wbapi"
)

// ValidationError reports input that fails validation before any network
// call is made. Field names the offending input; Reason states the violated
// constraint.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports a document-detail lookup that matched nothing.
type NotFoundError struct {
	DocumentID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("document %q not found", e.DocumentID)
}

// upstreamMessage wraps a gateway error with actionable guidance text.
func upstreamMessage(err error) string {
	var statusErr *wbapi.StatusError
	if errors.As(err, &statusErr) {
		return fmt.Sprintf(
			"World Bank API returned error %d: %s. "+
				"This usually means invalid parameters or the API is unavailable. "+
				"Try adjusting your search parameters or try again later.",
			statusErr.StatusCode, statusErr.Body)
	}
	var formatErr *wbapi.FormatError
	if errors.As(err, &formatErr) {
		return fmt.Sprintf(
			"World Bank API returned an unreadable response: %v. "+
				"The service may be degraded. Try again later.", formatErr)
	}
	var unavailErr *wbapi.UnavailableError
	if errors.As(err, &unavailErr) {
		return fmt.Sprintf(
			"Network error connecting to World Bank API: %v. "+
				"Check your internet connection and try again.", unavailErr.Err)
	}
	return fmt.Sprintf("Error contacting World Bank API: %v. Try again later.", err)
}
