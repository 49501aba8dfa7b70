package customid

import (
	"strings"
	"time"
)

// previewSequence is the illustrative ordinal used by Preview so operators
// can see a sample identifier without touching the real counter
const previewSequence = 42

// Compose renders every element of a format in order and concatenates the
// fragments with no delimiter. Element ordering is the only separation
// mechanism; adjacent elements without distinguishing fixed text can produce
// ambiguous (though still unique) strings, which is accepted.
func Compose(elements []Element, sequenceNumber int) string {
	return compose(elements, Context{
		SequenceNumber: sequenceNumber,
		Now:            time.Now(),
	})
}

// Preview runs the composition pipeline with a fixed illustrative sequence
// number. It never reads or mutates stored state.
func Preview(elements []Element) string {
	return compose(elements, Context{
		SequenceNumber: previewSequence,
		Now:            time.Now(),
	})
}

func compose(elements []Element, ctx Context) string {
	var b strings.Builder
	for _, el := range elements {
		b.WriteString(FormatElement(el, ctx))
	}
	return b.String()
}
