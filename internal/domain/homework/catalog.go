// internal/domain/homework/catalog.go
package homework

import "sort"

// Status is a review status code as reported by the homework API.
type Status string

const (
	StatusApproved  Status = "approved"
	StatusReviewing Status = "reviewing"
	StatusRejected  Status = "rejected"
)

// verdicts is the single source of truth for which statuses are valid.
var verdicts = map[Status]string{
	StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	StatusReviewing: "Работа взята на проверку ревьюером.",
	StatusRejected:  "Работа проверена: у ревьюера есть замечания.",
}

// Verdict returns the human-readable verdict for a status code.
// A miss means the status is unknown; there is no default text.
func Verdict(status string) (string, bool) {
	v, ok := verdicts[Status(status)]
	return v, ok
}

// KnownStatuses lists catalog codes in a stable order.
func KnownStatuses() []Status {
	statuses := make([]Status, 0, len(verdicts))
	for s := range verdicts {
		statuses = append(statuses, s)
	}
	sort.Slice(statuses, func(i, j int) bool { return statuses[i] < statuses[j] })
	return statuses
}
