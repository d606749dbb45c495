package domain

// ResponseKind discriminates the normalized outcome of an interaction.
type ResponseKind string

const (
	// ResponseText means an answer was obtained; Value carries its string form.
	ResponseText ResponseKind = "text"
	// ResponseCancel means the user canceled, the prompt produced no answer, or
	// the answer had a shape the player does not support.
	ResponseCancel ResponseKind = "cancel"
	// ResponseNone means no interaction was played for the action.
	ResponseNone ResponseKind = "none"
)

// Response is the normalized outcome of one interaction. Every completed
// prompt session maps to exactly text or cancel; none is reserved for actions
// that had no interaction at all.
type Response struct {
	Kind  ResponseKind `yaml:"kind" json:"kind"`
	Value string       `yaml:"value,omitempty" json:"value,omitempty"`
}

// TextResponse wraps an obtained answer.
func TextResponse(value string) Response {
	return Response{Kind: ResponseText, Value: value}
}

// CancelResponse marks a canceled or unsupported prompt outcome.
func CancelResponse() Response {
	return Response{Kind: ResponseCancel}
}

// NoneResponse marks an action that posed no prompt.
func NoneResponse() Response {
	return Response{Kind: ResponseNone}
}

// IsText reports whether an answer was obtained.
func (r Response) IsText() bool { return r.Kind == ResponseText }

// IsCancel reports whether the interaction was canceled.
func (r Response) IsCancel() bool { return r.Kind == ResponseCancel }
