package overtime

import (
	"fmt"
	"strings"
	"time"
)

// ClockLayout is the HH:MM form clock-out times are stored in.
const ClockLayout = "15:04"

// clockParseLayout also takes single-digit hours and minutes, so "19:5" is 19:05.
const clockParseLayout = "15:4"

// DefaultStandardEnd is the end of the regular working day.
const DefaultStandardEnd = "17:00"

// Outcome tells how an overtime figure was reached.
type Outcome int

const (
	OutcomeOvertime Outcome = iota + 1
	OutcomeBeforeEnd
	OutcomeLeave
	OutcomeMissing
	OutcomeUnparseable
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOvertime:
		return "overtime"
	case OutcomeBeforeEnd:
		return "before_end"
	case OutcomeLeave:
		return "leave"
	case OutcomeMissing:
		return "missing"
	case OutcomeUnparseable:
		return "unparseable"
	default:
		return "unknown"
	}
}

// Calculator derives a day's overtime from its clock-out time.
type Calculator struct {
	StandardEnd time.Time
}

var defaultCalculator = MustNewCalculator(DefaultStandardEnd)

// NewCalculator builds a Calculator whose working day ends at standardEnd (HH:MM).
func NewCalculator(standardEnd string) (*Calculator, error) {
	end, err := time.Parse(clockParseLayout, strings.TrimSpace(standardEnd))
	if err != nil {
		return nil, fmt.Errorf("invalid standard end time %q: %w", standardEnd, err)
	}
	return &Calculator{StandardEnd: end}, nil
}

func MustNewCalculator(standardEnd string) *Calculator {
	c, err := NewCalculator(standardEnd)
	if err != nil {
		panic(err)
	}
	return c
}

// Compute returns the overtime hours for a day using the 17:00 boundary.
func Compute(clockOut string, isLeave bool) float64 {
	return defaultCalculator.Compute(clockOut, isLeave)
}

// Evaluate is Compute with the outcome that produced the figure.
func Evaluate(clockOut string, isLeave bool) (float64, Outcome) {
	return defaultCalculator.Evaluate(clockOut, isLeave)
}

func (c *Calculator) Compute(clockOut string, isLeave bool) float64 {
	hours, _ := c.Evaluate(clockOut, isLeave)
	return hours
}

// Evaluate never fails: a clock-out that does not parse yields zero
// hours with OutcomeUnparseable.
func (c *Calculator) Evaluate(clockOut string, isLeave bool) (float64, Outcome) {
	if isLeave {
		return 0, OutcomeLeave
	}

	clockOut = strings.TrimSpace(clockOut)
	if clockOut == "" {
		return 0, OutcomeMissing
	}

	out, ok := ParseClock(clockOut)
	if !ok {
		return 0, OutcomeUnparseable
	}

	diff := out.Sub(c.StandardEnd)
	if diff <= 0 {
		return 0, OutcomeBeforeEnd
	}

	return diff.Seconds() / 3600, OutcomeOvertime
}

// ParseClock parses an H:M time of day, one or two digits each.
func ParseClock(value string) (time.Time, bool) {
	t, err := time.Parse(clockParseLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
