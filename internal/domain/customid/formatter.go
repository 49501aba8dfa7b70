package customid

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Context carries the per-composition state a single element may need
type Context struct {
	SequenceNumber int
	Now            time.Time
}

const (
	defaultDateFormat    = "YYYYMMDD"
	defaultSequenceWidth = 4
)

// FormatElement renders one element into its string fragment.
// It is pure apart from randomness and the clock, and total: an element of
// unknown type renders as the empty string instead of failing, so previews
// succeed for any syntactically well-formed element list.
func FormatElement(el Element, ctx Context) string {
	switch el.Type {
	case ElementFixedText:
		return el.Value
	case ElementRandom20:
		return formatRandomBits(20)
	case ElementRandom32:
		return formatRandomBits(32)
	case ElementRandom6:
		return formatRandomDigits(6, el.Format)
	case ElementRandom9:
		return formatRandomDigits(9, el.Format)
	case ElementGuid:
		return uuid.NewString()
	case ElementDateTime:
		return formatDateTime(ctx.Now, el.Format)
	case ElementSequence:
		return formatSequence(ctx.SequenceNumber, el.Format)
	default:
		return ""
	}
}

// formatRandomBits draws uniformly from [1, 2^bits-1] and renders it as a
// plain decimal string. Zero is never produced and no padding applies.
func formatRandomBits(bits int) string {
	max := int64(1)<<bits - 1
	return fmt.Sprintf("%d", rand.Int64N(max)+1)
}

// formatRandomDigits draws uniformly from [1, 10^digits-1], zero-padding to
// the digit count when leading zeros are requested
func formatRandomDigits(digits int, format *ElementFormat) string {
	max := int64(1)
	for i := 0; i < digits; i++ {
		max *= 10
	}
	n := rand.Int64N(max-1) + 1

	if format != nil && format.LeadingZeros {
		return fmt.Sprintf("%0*d", digits, n)
	}
	return fmt.Sprintf("%d", n)
}

// formatDateTime substitutes the tokens YYYY, MM, DD, HH and mm once each
// into the configured date format. Numeric components other than the year
// are two-digit zero-padded; hours use a 24-hour clock.
func formatDateTime(now time.Time, format *ElementFormat) string {
	layout := defaultDateFormat
	if format != nil && format.DateFormat != "" {
		layout = format.DateFormat
	}

	out := layout
	out = strings.Replace(out, "YYYY", fmt.Sprintf("%d", now.Year()), 1)
	out = strings.Replace(out, "MM", fmt.Sprintf("%02d", int(now.Month())), 1)
	out = strings.Replace(out, "DD", fmt.Sprintf("%02d", now.Day()), 1)
	out = strings.Replace(out, "HH", fmt.Sprintf("%02d", now.Hour()), 1)
	out = strings.Replace(out, "mm", fmt.Sprintf("%02d", now.Minute()), 1)
	return out
}

// formatSequence renders the ordinal, left-padded when leading zeros are
// requested. Padding only ever adds zeros: a value wider than the configured
// width renders in full rather than being truncated.
func formatSequence(seq int, format *ElementFormat) string {
	if format != nil && format.LeadingZeros {
		width := defaultSequenceWidth
		if format.Width > 0 {
			width = format.Width
		}
		return fmt.Sprintf("%0*d", width, seq)
	}
	return fmt.Sprintf("%d", seq)
}
