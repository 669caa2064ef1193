// internal/domain/homework/validator.go
package homework

// Extract checks the shape of a decoded API payload and returns homeworks[0].
// Checks run in a fixed order and stop at the first failure.
func Extract(payload any) (Record, error) {
	response, ok := payload.(map[string]any)
	if !ok {
		return Record{}, &ValidationError{Kind: ValidationNotAMapping}
	}

	if !truthy(response["current_date"]) {
		return Record{}, &ValidationError{Kind: ValidationMissingField, Field: "current_date"}
	}

	// An empty list counts as present so it is reported as an empty collection.
	rawHomeworks := response["homeworks"]
	homeworks, isList := rawHomeworks.([]any)
	if !isList && !truthy(rawHomeworks) {
		return Record{}, &ValidationError{Kind: ValidationMissingField, Field: "homeworks"}
	}
	if !isList {
		return Record{}, &ValidationError{Kind: ValidationWrongType, Field: "homeworks"}
	}
	if len(homeworks) == 0 {
		return Record{}, &ValidationError{Kind: ValidationEmptyCollection, Field: "homeworks"}
	}

	latest, ok := homeworks[0].(map[string]any)
	if !ok {
		return Record{}, &ValidationError{Kind: ValidationWrongType, Field: "homeworks[0]"}
	}

	return Record{
		Name:      stringField(latest, "homework_name"),
		Status:    stringField(latest, "status"),
		UpdatedAt: stringField(latest, "date_updated"),
		Raw:       latest,
	}, nil
}

// truthy mirrors JSON falsiness: null, false, 0, "" and {} are false.
func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case float64:
		return val != 0
	case string:
		return val != ""
	case map[string]any:
		return len(val) > 0
	case []any:
		return len(val) > 0
	default:
		return true
	}
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}
