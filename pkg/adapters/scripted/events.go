package scripted

// Key identifies the non-printable keys a scripted session can press.
type Key int

const (
	// KeyRune is a printable character; Event.Rune carries it.
	KeyRune Key = iota
	// KeyEnter commits the current answer.
	KeyEnter
	// KeyUp moves the select cursor up.
	KeyUp
	// KeyDown moves the select cursor down.
	KeyDown
	// KeyEsc aborts the prompt without an answer.
	KeyEsc
	// KeyBackspace deletes the last typed character.
	KeyBackspace
)

// Event is one scripted key press.
type Event struct {
	Key  Key
	Rune rune
}

// Type converts a string into rune events, without a trailing enter.
func Type(s string) []Event {
	events := make([]Event, 0, len(s))
	for _, r := range s {
		events = append(events, Event{Key: KeyRune, Rune: r})
	}
	return events
}

// Line converts a string into rune events followed by enter.
func Line(s string) []Event {
	return append(Type(s), Event{Key: KeyEnter})
}

// Down produces n down-arrow presses.
func Down(n int) []Event {
	events := make([]Event, n)
	for i := range events {
		events[i] = Event{Key: KeyDown}
	}
	return events
}

// Enter produces a single enter press.
func Enter() []Event {
	return []Event{{Key: KeyEnter}}
}

// Esc produces a single escape press.
func Esc() []Event {
	return []Event{{Key: KeyEsc}}
}

// Join concatenates event sequences into one script.
func Join(sequences ...[]Event) []Event {
	var out []Event
	for _, seq := range sequences {
		out = append(out, seq...)
	}
	return out
}
