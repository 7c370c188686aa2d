package task

import "net/http"

// Kind classifies a gateway failure.
type Kind string

const (
	KindNetwork    Kind = "network"
	KindValidation Kind = "validation"
	KindNotFound   Kind = "not-found"
	KindServer     Kind = "server"
	KindMalformed  Kind = "malformed"
	KindUnknown    Kind = "unknown"
)

func (k Kind) sentinel() error {
	switch k {
	case KindNetwork:
		return ErrNetwork
	case KindValidation:
		return ErrValidation
	case KindNotFound:
		return ErrNotFound
	case KindServer:
		return ErrServer
	case KindMalformed:
		return ErrMalformed
	default:
		return ErrUnknown
	}
}

// KindForStatus maps an HTTP status code to a failure kind. Only 400 and
// 422 describe invalid fields; other 4xx codes (auth, conflicts, rate
// limits) are unknown.
func KindForStatus(status int) Kind {
	switch {
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusBadRequest, status == http.StatusUnprocessableEntity:
		return KindValidation
	case status >= 500:
		return KindServer
	default:
		return KindUnknown
	}
}
