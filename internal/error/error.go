package error

import "fmt"

const (
	CodeAttemptsExhausted uint8 = iota
	CodeSearchCancelled
)

var (
	ErrSearchExhausted = NewSearchErr(CodeAttemptsExhausted)
	ErrSearchCancelled = NewSearchErr(CodeSearchCancelled)
)

// SearchErr is returned when the rejection sampling search ends
// without an accepted candidate.
type SearchErr struct {
	code uint8
	desc string
}

func NewSearchErr(code uint8) SearchErr {
	return SearchErr{code: code}
}

func (s SearchErr) AddDesc(desc string) SearchErr {
	s.desc = desc
	return s
}

func (s SearchErr) Error() string {
	if s.desc == "" {
		return fmt.Sprintf("search error - code: %d", s.code)
	}
	return fmt.Sprintf("search error - code: %d\tdesc: %s", s.code, s.desc)
}

func (s SearchErr) Code() uint8 {
	return s.code
}

// Is matches on the code only so a described error still matches
// its sentinel.
func (s SearchErr) Is(target error) bool {
	t, ok := target.(SearchErr)
	return ok && t.code == s.code
}

func ErrAttemptsExhausted(attempts int) error {
	return ErrSearchExhausted.AddDesc(fmt.Sprintf("no candidate accepted after %d attempts", attempts))
}

func ErrCancelled(attempts int, cause error) error {
	return fmt.Errorf("%w: %w", ErrSearchCancelled.AddDesc(fmt.Sprintf("search stopped after %d attempts", attempts)), cause)
}

func ErrInvalidMaxAttempts(n int) error {
	return fmt.Errorf("max attempts must be zero (unbounded) or positive, got: %d", n)
}

func ErrInvalidWorkers(n int) error {
	return fmt.Errorf("workers must be at least 1, got: %d", n)
}

func ErrNoGrassCell() error {
	return fmt.Errorf("grid has no grass cell to place the castle on")
}

func ErrCastleIndexOutOfRange(index, grassCount int) error {
	return fmt.Errorf("castle index out of range\tindex: %d\tgrass cells: %d", index, grassCount)
}

func ErrInvalidStage(stage string) error {
	return fmt.Errorf("stage must be either dev or prod, got: %s", stage)
}

func ErrInvalidEnvInt(key, value string, lowest int) error {
	return fmt.Errorf("env value must be an integer of at least %d\tkey: %s\tvalue: %s", lowest, key, value)
}

func ErrInvalidFormat(format string) error {
	return fmt.Errorf("output format must be either text or json, got: %s", format)
}
