package billing

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/greenpalms/resort-api/pkg/apperror"
)

// Amount is a monetary value that tolerates the console's inconsistent wire
// encoding: some endpoints send "123.45", others 123.45. It always marshals
// back as a number rounded to two decimal places.
type Amount float64

// Float returns the amount as a float64
func (a Amount) Float() float64 {
	return float64(a)
}

// MarshalJSON encodes the amount as a plain number with two decimal places
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(Round2(float64(a)), 'f', 2, 64)), nil
}

// UnmarshalJSON accepts both numeric and quoted decimal representations
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == `""` {
		*a = 0
		return nil
	}

	if len(s) >= 2 && s[0] == '"' {
		var quoted string
		if err := json.Unmarshal(data, &quoted); err != nil {
			return err
		}
		s = strings.TrimSpace(quoted)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return apperror.NewBadRequestError("invalid monetary value: " + s)
	}

	*a = Amount(v)
	return nil
}
