package domain

// Question is the renderable form of an interaction, handed to a Surface.
// It carries everything a surface needs to pose the prompt without reaching
// back into the Interaction.
type Question struct {
	// Key identifies the question within one prompt session.
	Key string

	// Kind selects the prompt behavior.
	Kind InteractionKind

	// Prompt is the text to display.
	Prompt string

	// Options are the select choices. May be empty, which yields a selection
	// with nothing valid to pick.
	Options []string

	// Default, if set, pre-answers the question. Surfaces use it as the value
	// committed when the user accepts without editing.
	Default *Answer

	// AskIfAnswered forces the question to be posed even when Default is set.
	AskIfAnswered bool
}

// AnswerKind discriminates the raw reply shapes a surface can produce.
type AnswerKind string

const (
	// AnswerNone is the zero value: the prompt was aborted with no answer.
	AnswerNone AnswerKind = ""
	// AnswerString is a free-text reply; Text carries it.
	AnswerString AnswerKind = "string"
	// AnswerItem is a selected list item; Text is the label, Index its position.
	AnswerItem AnswerKind = "item"
	// AnswerBool is a confirmation; Confirmed carries it.
	AnswerBool AnswerKind = "bool"
)

// Answer is the raw reply a Surface produces for one Question, before the
// player normalizes it into a Response. The zero Answer means "no answer
// obtained" (the user aborted).
type Answer struct {
	Kind      AnswerKind
	Text      string
	Index     int
	Confirmed bool
}

// StringAnswer wraps a free-text reply.
func StringAnswer(text string) Answer {
	return Answer{Kind: AnswerString, Text: text}
}

// ItemAnswer wraps a selected option.
func ItemAnswer(index int, label string) Answer {
	return Answer{Kind: AnswerItem, Index: index, Text: label}
}

// BoolAnswer wraps a confirmation.
func BoolAnswer(confirmed bool) Answer {
	return Answer{Kind: AnswerBool, Confirmed: confirmed}
}
