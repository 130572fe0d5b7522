package entity

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var ErrNotAnObject = errors.New("validation response is not a JSON object")

// ValidationResponse is the sparse answer of the validation authority.
// Every field is optional and kept as raw JSON, its type is not fixed by the authority.
type ValidationResponse struct {
	Message   json.RawMessage `json:"Message,omitempty"`
	Winner    json.RawMessage `json:"Winner,omitempty"`
	Winnings  json.RawMessage `json:"Winnings,omitempty"`
	XPosition json.RawMessage `json:"xPosition,omitempty"`
	XValues   json.RawMessage `json:"xValues,omitempty"`
	YPosition json.RawMessage `json:"yPosition,omitempty"`
	YValues   json.RawMessage `json:"yValues,omitempty"`
	Error     json.RawMessage `json:"Error,omitempty"`
}

type responseField struct {
	name  string
	value *json.RawMessage
}

// fields lists the recognised keys in display order.
func (that *ValidationResponse) fields() []responseField {
	return []responseField{
		{"Message", &that.Message},
		{"Winner", &that.Winner},
		{"Winnings", &that.Winnings},
		{"xPosition", &that.XPosition},
		{"xValues", &that.XValues},
		{"yPosition", &that.YPosition},
		{"yValues", &that.YValues},
		{"Error", &that.Error},
	}
}

// ParseValidationResponse copies the recognised keys of a JSON object.
// Keys are matched case-sensitively, anything else is ignored.
func ParseValidationResponse(data []byte) (*ValidationResponse, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotAnObject, err)
	}

	if raw == nil {
		return nil, ErrNotAnObject
	}

	response := &ValidationResponse{}
	for _, field := range response.fields() {
		value, ok := raw[field.name]
		if !ok || isJSONNull(value) {
			continue
		}
		*field.value = value
	}

	return response, nil
}

// Render prints every present field as "<FieldName>: <value>", one per line.
func (that *ValidationResponse) Render() string {
	var sb strings.Builder

	for _, field := range that.fields() {
		if len(*field.value) == 0 {
			continue
		}

		value := formatValue(*field.value)
		if value == "" {
			continue
		}

		sb.WriteString(field.name)
		sb.WriteString(": ")
		sb.WriteString(value)
		sb.WriteString("\n")
	}

	return sb.String()
}

func (that *ValidationResponse) IsEmpty() bool {
	return that.Render() == ""
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}

func formatValue(value json.RawMessage) string {
	var decoded any
	if err := json.Unmarshal(value, &decoded); err != nil {
		return string(value)
	}

	return formatDecoded(decoded)
}

func formatDecoded(value any) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		return typed
	case bool:
		return strconv.FormatBool(typed)
	case float64:
		return formatNumber(typed)
	case []any:
		parts := make([]string, 0, len(typed))
		for _, item := range typed {
			parts = append(parts, formatDecoded(item))
		}
		return strings.Join(parts, ",")
	default:
		encoded, err := json.Marshal(typed)
		if err != nil {
			return fmt.Sprint(typed)
		}
		return string(encoded)
	}
}

// formatNumber prints plain digits, switching to exponent notation from 1e21 up and below 1e-6.
func formatNumber(value float64) string {
	abs := math.Abs(value)
	if abs == 0 || (abs < 1e21 && abs >= 1e-6) {
		return strconv.FormatFloat(value, 'f', -1, 64)
	}

	mantissa, exponent, _ := strings.Cut(strconv.FormatFloat(value, 'e', -1, 64), "e")

	return mantissa + "e" + exponent[:1] + strings.TrimLeft(exponent[1:], "0")
}
