package relsource

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"graphlens/internal/graph"
)

const (
	testNodesQuery = "SELECT * FROM nodes_view"
	testEdgesQuery = "SELECT * FROM relationships_view"
)

func testMapping() Mapping {
	return Mapping{
		NodeID:     "Node_ID",
		NodeLabel:  "Label",
		NodeName:   "Name",
		EdgeSource: "Source_ID",
		EdgeTarget: "Target_ID",
		EdgeType:   "Relationship_Type",
	}
}

func newMockSource(t *testing.T) (*Source, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewWithDB(db), mock
}

func TestLoadBuildsNodesAndEdges(t *testing.T) {
	src, mock := newMockSource(t)

	mock.ExpectQuery(testNodesQuery).WillReturnRows(
		sqlmock.NewRows([]string{"Node_ID", "Label", "Name", "Age"}).
			AddRow("n1", "Person", "Ada", int64(36)).
			AddRow("n2", "Company", "Initech", nil))
	mock.ExpectQuery(testEdgesQuery).WillReturnRows(
		sqlmock.NewRows([]string{"Source_ID", "Target_ID", "Relationship_Type"}).
			AddRow("n1", "n2", "WORKS_AT"))

	set, err := src.Load(context.Background(), testNodesQuery, testEdgesQuery, testMapping())
	require.NoError(t, err)
	require.Len(t, set.Nodes, 2)
	require.Len(t, set.Edges, 1)

	assert.Equal(t, "n1", set.Nodes[0].ID)
	assert.Equal(t, "Person", set.Nodes[0].Label)
	assert.Equal(t, "Ada", set.Nodes[0].Name)
	assert.Equal(t, int64(36), set.Nodes[0].Properties["Age"])

	edge := set.Edges[0]
	assert.Equal(t, "edge_0", edge.ID)
	assert.Equal(t, "n1", edge.Source)
	assert.Equal(t, "n2", edge.Target)
	assert.Equal(t, "WORKS_AT", edge.Label)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadDeduplicatesNodesByID(t *testing.T) {
	src, mock := newMockSource(t)

	mock.ExpectQuery(testNodesQuery).WillReturnRows(
		sqlmock.NewRows([]string{"Node_ID", "Label", "Name"}).
			AddRow("n1", "Person", "first").
			AddRow("n1", "Person", "second"))
	mock.ExpectQuery(testEdgesQuery).WillReturnRows(
		sqlmock.NewRows([]string{"Source_ID", "Target_ID", "Relationship_Type"}))

	set, err := src.Load(context.Background(), testNodesQuery, testEdgesQuery, testMapping())
	require.NoError(t, err)
	require.Len(t, set.Nodes, 1)
	assert.Equal(t, "first", set.Nodes[0].Name, "first occurrence wins")
}

func TestLoadSynthesizesSequentialEdgeIDs(t *testing.T) {
	src, mock := newMockSource(t)

	mock.ExpectQuery(testNodesQuery).WillReturnRows(
		sqlmock.NewRows([]string{"Node_ID", "Label", "Name"}))
	mock.ExpectQuery(testEdgesQuery).WillReturnRows(
		sqlmock.NewRows([]string{"Source_ID", "Target_ID", "Relationship_Type"}).
			AddRow("a", "b", "X").
			AddRow("b", "c", "Y").
			AddRow("c", "a", "Z"))

	set, err := src.Load(context.Background(), testNodesQuery, testEdgesQuery, testMapping())
	require.NoError(t, err)
	require.Len(t, set.Edges, 3)
	for i, want := range []string{"edge_0", "edge_1", "edge_2"} {
		assert.Equal(t, want, set.Edges[i].ID)
	}
}

func TestLoadDefaultsMissingColumns(t *testing.T) {
	src, mock := newMockSource(t)

	// No Label or Name columns at all; no Relationship_Type or Source_ID
	// in the edge rows either.
	mock.ExpectQuery(testNodesQuery).WillReturnRows(
		sqlmock.NewRows([]string{"Node_ID"}).AddRow("n1"))
	mock.ExpectQuery(testEdgesQuery).WillReturnRows(
		sqlmock.NewRows([]string{"Target_ID"}).AddRow("n1"))

	set, err := src.Load(context.Background(), testNodesQuery, testEdgesQuery, testMapping())
	require.NoError(t, err)

	require.Len(t, set.Nodes, 1)
	assert.Equal(t, graph.DefaultNodeLabel, set.Nodes[0].Label)
	assert.Equal(t, graph.DefaultNodeLabel, set.Nodes[0].Name, "name falls back to label")

	require.Len(t, set.Edges, 1)
	assert.Equal(t, graph.DefaultEdgeLabel, set.Edges[0].Label)
	assert.Equal(t, "", set.Edges[0].Source, "missing endpoint stays empty")
	assert.Equal(t, "n1", set.Edges[0].Target)
}

func TestLoadReturnsNoPartialSetOnError(t *testing.T) {
	src, mock := newMockSource(t)

	mock.ExpectQuery(testNodesQuery).WillReturnRows(
		sqlmock.NewRows([]string{"Node_ID", "Label", "Name"}).
			AddRow("n1", "Person", "Ada"))
	mock.ExpectQuery(testEdgesQuery).WillReturnError(errors.New("relation does not exist"))

	set, err := src.Load(context.Background(), testNodesQuery, testEdgesQuery, testMapping())
	require.Error(t, err)
	assert.Nil(t, set, "partial results must not escape")
	assert.Contains(t, err.Error(), "relationships query failed")
}

func TestLoadReportsRowIterationError(t *testing.T) {
	src, mock := newMockSource(t)

	mock.ExpectQuery(testNodesQuery).WillReturnRows(
		sqlmock.NewRows([]string{"Node_ID", "Label", "Name"}).
			AddRow("n1", "Person", "Ada").
			RowError(0, errors.New("connection reset")))

	set, err := src.Load(context.Background(), testNodesQuery, testEdgesQuery, testMapping())
	require.Error(t, err)
	assert.Nil(t, set)
}

func TestResolveDriver(t *testing.T) {
	cases := []struct {
		conn    string
		driver  string
		dsn     string
		wantErr bool
	}{
		{conn: "example.db", driver: "sqlite", dsn: "example.db"},
		{conn: "sqlite://example.db", driver: "sqlite", dsn: "example.db"},
		{conn: "sqlite3://example.db", driver: "sqlite", dsn: "example.db"},
		{conn: "file://graph.db", driver: "sqlite", dsn: "graph.db"},
		{conn: "duckdb://analytics.duckdb", driver: "duckdb", dsn: "analytics.duckdb"},
		{conn: "postgres://u:p@localhost:5432/graph", driver: "pgx", dsn: "postgres://u:p@localhost:5432/graph"},
		{conn: "postgresql://localhost/graph", driver: "pgx", dsn: "postgresql://localhost/graph"},
		{conn: "mysql://localhost/graph", wantErr: true},
	}

	for _, tc := range cases {
		driver, dsn, err := resolveDriver(tc.conn)
		if tc.wantErr {
			assert.Error(t, err, tc.conn)
			continue
		}
		require.NoError(t, err, tc.conn)
		assert.Equal(t, tc.driver, driver, tc.conn)
		assert.Equal(t, tc.dsn, dsn, tc.conn)
	}
}

func TestAsString(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"abc", "abc"},
		{[]byte("xyz"), "xyz"},
		{int64(42), "42"},
		{7, "7"},
		{float64(3), "3"},
		{2.5, "2.5"},
		{true, "true"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, asString(tc.in))
	}
}
