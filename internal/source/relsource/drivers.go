package relsource

import (
	"fmt"
	"strconv"
	"strings"

	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib" // Register pgx driver
	_ "github.com/marcboeker/go-duckdb" // Register DuckDB driver
	_ "modernc.org/sqlite"              // Register sqlite driver
)

// resolveDriver maps a connection string to a registered driver name
// and its DSN. A bare path with no scheme is treated as a sqlite file.
func resolveDriver(connString string) (driver, dsn string, err error) {
	scheme, rest, found := strings.Cut(connString, "://")
	if !found {
		return "sqlite", connString, nil
	}

	switch strings.ToLower(scheme) {
	case "sqlite", "sqlite3", "file":
		return "sqlite", rest, nil
	case "duckdb":
		return "duckdb", rest, nil
	case "postgres", "postgresql":
		// pgx parses the full URL itself.
		return "pgx", connString, nil
	default:
		return "", "", fmt.Errorf("unsupported connection scheme %q", scheme)
	}
}

// scanRow reads the current row into an open property bag keyed by
// column name. Byte slices are folded to strings so text columns from
// drivers that report raw bytes stay serializable.
func scanRow(rows *sql.Rows, cols []string) (map[string]any, error) {
	values := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range values {
		ptrs[i] = &values[i]
	}

	if err := rows.Scan(ptrs...); err != nil {
		return nil, err
	}

	row := make(map[string]any, len(cols))
	for i, col := range cols {
		v := values[i]
		if b, ok := v.([]byte); ok {
			v = string(b)
		}
		row[col] = v
	}
	return row, nil
}

// asString stringifies a mapped identity value. Integral floats keep
// their integer form so a NUMERIC id column still matches the text ids
// in the relationship rows.
func asString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case int:
		return strconv.Itoa(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprint(val)
	}
}
