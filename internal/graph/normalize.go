package graph

import (
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
)

// Serializable converts a single property value into a JSON-safe form.
// Temporal values become their ISO-8601 string representation; sequences
// and mappings are converted element-wise, recursively; everything else
// passes through unchanged.
func Serializable(value any) any {
	switch v := value.(type) {
	case time.Time:
		return v.Format(time.RFC3339Nano)
	case dbtype.Date:
		return v.Time().Format("2006-01-02")
	case dbtype.LocalTime:
		return v.Time().Format("15:04:05.999999999")
	case dbtype.Time:
		return v.Time().Format("15:04:05.999999999Z07:00")
	case dbtype.LocalDateTime:
		return v.Time().Format("2006-01-02T15:04:05.999999999")
	case dbtype.Duration:
		return v.String()
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = Serializable(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = Serializable(item)
		}
		return out
	default:
		return v
	}
}

// SerializableProperties converts every value of a property bag. Both
// adapters must route property maps through here before attaching them
// to a NodeElement or EdgeElement, so an ElementSet is always safe to
// hand to encoding/json as-is.
func SerializableProperties(props map[string]any) map[string]any {
	converted := make(map[string]any, len(props))
	for k, v := range props {
		converted[k] = Serializable(v)
	}
	return converted
}
