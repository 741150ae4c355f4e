package otel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
)

func TestToAttribute(t *testing.T) {
	at := time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		value any
		want  attribute.Value
	}{
		{name: "bool", value: true, want: attribute.BoolValue(true)},
		{name: "string", value: "SELECT 1", want: attribute.StringValue("SELECT 1")},
		{name: "int", value: 7, want: attribute.IntValue(7)},
		{name: "int64", value: int64(9), want: attribute.Int64Value(9)},
		{name: "float64", value: 1.5, want: attribute.Float64Value(1.5)},
		{name: "string slice", value: []string{"a", "b"}, want: attribute.StringSliceValue([]string{"a", "b"})},
		{name: "time", value: at, want: attribute.StringValue("2024-05-01T10:30:00Z")},
		{name: "fallback", value: struct{ A int }{A: 1}, want: attribute.StringValue("{1}")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := toAttribute("key", tt.value)

			assert.Equal(t, attribute.Key("key"), kv.Key)
			assert.Equal(t, tt.want, kv.Value)
		})
	}
}
