// internal/domain/homework/errors.go
package homework

import "fmt"

// ServiceErrorKind classifies a failed call to the homework API.
type ServiceErrorKind string

const (
	ServiceTransport           ServiceErrorKind = "TRANSPORT"
	ServiceEndpointUnavailable ServiceErrorKind = "ENDPOINT_UNAVAILABLE"
	ServiceBadStatus           ServiceErrorKind = "BAD_STATUS"
)

// ServiceError is returned by the API client for every failed fetch.
type ServiceError struct {
	Kind       ServiceErrorKind
	StatusCode int   // set for ServiceBadStatus and ServiceEndpointUnavailable
	Err        error // underlying cause for ServiceTransport
}

func (e *ServiceError) Error() string {
	switch e.Kind {
	case ServiceEndpointUnavailable:
		return "эндпоинт Практикум.Домашка недоступен (код ответа: 404)"
	case ServiceBadStatus:
		return fmt.Sprintf("при запросе к сервису Практикум.Домашка возникла ошибка (код ответа: %d)", e.StatusCode)
	default:
		return fmt.Sprintf("сбой при запросе к сервису Практикум.Домашка: %v", e.Err)
	}
}

func (e *ServiceError) Unwrap() error { return e.Err }

// ValidationErrorKind classifies a malformed API response.
type ValidationErrorKind string

const (
	ValidationNotAMapping     ValidationErrorKind = "NOT_A_MAPPING"
	ValidationMissingField    ValidationErrorKind = "MISSING_FIELD"
	ValidationWrongType       ValidationErrorKind = "WRONG_TYPE"
	ValidationEmptyCollection ValidationErrorKind = "EMPTY_COLLECTION"
	ValidationBadTimestamp    ValidationErrorKind = "BAD_TIMESTAMP"
)

// ValidationError reports the first shape check a response failed.
type ValidationError struct {
	Kind  ValidationErrorKind
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case ValidationNotAMapping:
		return "ответ сервиса не является словарем"
	case ValidationMissingField:
		return fmt.Sprintf("в полученном ответе отсутствует ключ `%s`", e.Field)
	case ValidationWrongType:
		return fmt.Sprintf("значение по ключу `%s` имеет неверный тип", e.Field)
	case ValidationEmptyCollection:
		return "значение по ключу `homeworks` - пустой список"
	case ValidationBadTimestamp:
		return fmt.Sprintf("не удалось разобрать время в ключе `%s`: %v", e.Field, e.Err)
	default:
		return fmt.Sprintf("некорректный ответ сервиса (%s)", e.Kind)
	}
}

func (e *ValidationError) Unwrap() error { return e.Err }

// NotifierErrorKind classifies a record that cannot be rendered.
type NotifierErrorKind string

const (
	NotifierMissingField  NotifierErrorKind = "MISSING_FIELD"
	NotifierUnknownStatus NotifierErrorKind = "UNKNOWN_STATUS"
)

// NotifierError is returned by Render.
type NotifierError struct {
	Kind   NotifierErrorKind
	Status string
}

func (e *NotifierError) Error() string {
	if e.Kind == NotifierUnknownStatus {
		return fmt.Sprintf("получен некорректный статус работы: %q", e.Status)
	}
	return "в ответе отсутствуют ключи `homework_name` и/или `status`"
}
