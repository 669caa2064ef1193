// internal/domain/homework/notifier.go
package homework

import "fmt"

// Render turns a record into the chat message announcing its new status.
func Render(record Record) (string, error) {
	if record.Name == "" || record.Status == "" {
		return "", &NotifierError{Kind: NotifierMissingField}
	}

	verdict, ok := Verdict(record.Status)
	if !ok {
		return "", &NotifierError{Kind: NotifierUnknownStatus, Status: record.Status}
	}

	return fmt.Sprintf("Изменился статус проверки работы \"%s\". %s", record.Name, verdict), nil
}
