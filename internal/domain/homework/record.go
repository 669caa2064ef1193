// internal/domain/homework/record.go
package homework

import (
	"time"

	"github.com/google/go-cmp/cmp"
)

// UpdatedAtLayout is the only timestamp format the API emits for date_updated.
const UpdatedAtLayout = "2006-01-02T15:04:05Z"

// Record is the latest homework entry of an API response.
type Record struct {
	Name      string
	Status    string
	UpdatedAt string
	Raw       map[string]any // the full homeworks[0] object
}

// Equal reports full value equality, including fields the bot does not render.
func (r Record) Equal(other Record) bool {
	return r.Name == other.Name &&
		r.Status == other.Status &&
		r.UpdatedAt == other.UpdatedAt &&
		cmp.Equal(r.Raw, other.Raw)
}

// UpdatedAtUnix parses UpdatedAt into Unix seconds.
func (r Record) UpdatedAtUnix() (int64, error) {
	t, err := time.Parse(UpdatedAtLayout, r.UpdatedAt)
	if err != nil {
		return 0, &ValidationError{Kind: ValidationBadTimestamp, Field: "date_updated", Err: err}
	}
	return t.Unix(), nil
}
