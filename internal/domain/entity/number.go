package entity

import (
	"bytes"
	"strconv"

	"github.com/pkg/errors"
)

// Number is a float64 that also accepts numeric JSON strings, so payloads
// like {"price":"100"} coerce to 100 on write. null decodes to zero.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	if bytes.Equal(raw, []byte("null")) {
		*n = 0

		return nil
	}

	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		raw = raw[1 : len(raw)-1]
	}
	if len(raw) == 0 {
		*n = 0

		return nil
	}

	value, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		return errors.Errorf("invalid numeric value: %s", data)
	}
	*n = Number(value)

	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(n), 'f', -1, 64)), nil
}

// Float64 returns the underlying value.
func (n Number) Float64() float64 {
	return float64(n)
}

// OptionalNumber coerces like Number but swallows non-numeric input as
// zero instead of failing, matching fields whose contract is "default 0
// when absent or non-numeric".
type OptionalNumber float64

func (n *OptionalNumber) UnmarshalJSON(data []byte) error {
	var value Number
	if err := value.UnmarshalJSON(data); err != nil {
		*n = 0

		return nil
	}
	*n = OptionalNumber(value)

	return nil
}

func (n OptionalNumber) MarshalJSON() ([]byte, error) {
	return Number(n).MarshalJSON()
}

// Float64 returns the underlying value.
func (n OptionalNumber) Float64() float64 {
	return float64(n)
}
