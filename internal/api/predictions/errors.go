package predictions

import (
	"github.com/rotisserie/eris"

	platformhttp "github.com/Alias1177/SeasonOutlook/internal/platform/http"
)

// DecodeError is returned when a successful response carries a malformed JSON body.
type DecodeError struct {
	URL  string
	Body string
	Err  error
}

func (e *DecodeError) Error() string {
	return "decoding " + e.URL + ": " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }

// IsDecodeError reports whether err wraps a *DecodeError.
func IsDecodeError(err error) bool {
	var decodeErr *DecodeError
	return eris.As(err, &decodeErr)
}

// IsNetworkOrServerError reports whether err came from the transport or a non-2xx status.
func IsNetworkOrServerError(err error) bool {
	return platformhttp.IsRequestError(err)
}
