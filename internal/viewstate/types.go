package viewstate

// State is the fetch lifecycle shared by the list and dashboard view models.
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateFailed  State = "failed"
)

// NoticeKind tells the presentation layer how to style a notice.
type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// Notice is a transient, dismissible message about a finished mutation.
type Notice struct {
	Kind    NoticeKind
	Message string
}

// Success builds a success notice.
func Success(msg string) *Notice {
	return &Notice{Kind: NoticeSuccess, Message: msg}
}

// Failure builds an error notice.
func Failure(msg string) *Notice {
	return &Notice{Kind: NoticeError, Message: msg}
}

// IsError reports whether n is an error notice. A nil notice is not.
func (n *Notice) IsError() bool {
	return n != nil && n.Kind == NoticeError
}
