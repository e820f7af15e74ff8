package services

import (
	"errors"

	"github.com/dmitrijs2005/gophauth/internal/client/client"
)

// NotLoggedInMessage is the exact message the API sends when the session
// cookie is missing or expired.
const NotLoggedInMessage = "You are not logged in"

const fallbackMessage = "Something went wrong"

// messageSources is the priority list used by ResolveMessage:
//
//  1. the nested response message ({"response":{"data":{"message":...}}})
//  2. the top-level message ({"message":...})
//  3. the error's own text
var messageSources = []func(error) string{
	func(err error) string {
		if apiErr, ok := asAPIError(err); ok {
			return apiErr.Body.Nested
		}
		return ""
	},
	func(err error) string {
		if apiErr, ok := asAPIError(err); ok {
			return apiErr.Body.Message
		}
		return ""
	},
	func(err error) string { return err.Error() },
}

// ResolveMessage picks the text shown for an unstructured failure.
func ResolveMessage(err error) string {
	if err == nil {
		return fallbackMessage
	}
	for _, src := range messageSources {
		if msg := src(err); msg != "" {
			return msg
		}
	}
	return fallbackMessage
}

// IsSessionLoss reports whether err says the session is gone. Only the
// top-level message is compared, and only exactly.
func IsSessionLoss(err error) bool {
	apiErr, ok := asAPIError(err)
	return ok && apiErr.Body.Message == NotLoggedInMessage
}

func asAPIError(err error) (*client.APIError, bool) {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
