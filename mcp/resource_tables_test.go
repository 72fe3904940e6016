package mcp

import (
	"context"
	"errors"
	"testing"
)

func setupLister(t *testing.T) (*Lister, *Dispatcher) {
	t.Helper()
	cfg := testConfig(t)
	provider := NewSQLProvider(cfg, NewSQLiteDialect())
	return NewLister(provider, NewSQLiteDialect(), testLogger()),
		NewDispatcher(provider, cfg.Database, 0, testLogger())
}

func TestListTables(t *testing.T) {
	l, d := setupLister(t)
	seedUsers(t, d)
	mustExecute(t, d, "CREATE TABLE orders (id INTEGER PRIMARY KEY)")

	resources := l.List(context.Background())
	if len(resources) != 2 {
		t.Fatalf("expected 2 resources, got %d", len(resources))
	}

	for i, table := range []string{"orders", "users"} {
		r := resources[i]
		if r.URI != "mysql://"+table+"/data" {
			t.Errorf("uri = %q", r.URI)
		}
		if r.Name != "Table: "+table {
			t.Errorf("name = %q", r.Name)
		}
		if r.MIMEType != "text/plain" {
			t.Errorf("mime type = %q", r.MIMEType)
		}
		if r.Description != "Data in table: "+table {
			t.Errorf("description = %q", r.Description)
		}
	}
}

func TestListTablesEmptyDatabase(t *testing.T) {
	l, _ := setupLister(t)

	resources := l.List(context.Background())
	if resources == nil || len(resources) != 0 {
		t.Errorf("expected empty non-nil list, got %v", resources)
	}
}

func TestListTablesConnectionFailure(t *testing.T) {
	l := NewLister(failingProvider{err: errors.New("access denied")}, NewSQLiteDialect(), testLogger())

	resources := l.List(context.Background())
	if resources == nil || len(resources) != 0 {
		t.Errorf("expected empty non-nil list, got %v", resources)
	}
}

func TestReadTable(t *testing.T) {
	l, d := setupLister(t)
	seedUsers(t, d)

	got, err := l.Read(context.Background(), "mysql://users/data")
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if want := "id,name\n1,a\n2,b"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestReadTableLimitsRows(t *testing.T) {
	l, d := setupLister(t)
	mustExecute(t, d, "CREATE TABLE nums (n INTEGER)")
	mustExecute(t, d, "INSERT INTO nums (n) WITH RECURSIVE c(x) AS (SELECT 1 UNION ALL SELECT x + 1 FROM c WHERE x < 150) SELECT x FROM c")

	got, err := l.Read(context.Background(), TableURI("nums"))
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	var lines int
	for _, c := range got {
		if c == '\n' {
			lines++
		}
	}
	// header plus PreviewRowLimit rows, joined by newlines
	if lines != PreviewRowLimit {
		t.Errorf("expected %d newlines, got %d", PreviewRowLimit, lines)
	}
}

func TestReadTableMissing(t *testing.T) {
	l, _ := setupLister(t)

	_, err := l.Read(context.Background(), "mysql://ghost/data")
	if !errors.Is(err, ErrReadingResource) {
		t.Errorf("expected ErrReadingResource, got %v", err)
	}
}

func TestParseTableURI(t *testing.T) {
	tests := []struct {
		uri     string
		want    string
		wantErr error
	}{
		{"mysql://users/data", "users", nil},
		{"mysql://order_items/data", "order_items", nil},
		{"postgres://users/data", "", ErrInvalidResourceURI},
		{"mysql://users", "", ErrInvalidResourceURI},
		{"mysql:///data", "", ErrInvalidTableName},
		{"mysql://a/b/data", "", ErrInvalidTableName},
		{"mysql://users;drop/data", "", ErrInvalidTableName},
	}

	for _, tc := range tests {
		t.Run(tc.uri, func(t *testing.T) {
			got, err := ParseTableURI(tc.uri)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestListTablesSkipsUnaddressableNames(t *testing.T) {
	l, d := setupLister(t)
	seedUsers(t, d)
	mustExecute(t, d, `CREATE TABLE "order-items" (id INTEGER)`)

	resources := l.List(context.Background())
	if len(resources) != 1 || resources[0].URI != "mysql://users/data" {
		t.Fatalf("expected only users to be listed, got %v", resources)
	}

	for _, r := range resources {
		if _, err := l.Read(context.Background(), r.URI); err != nil {
			t.Errorf("listed resource %s is not readable: %v", r.URI, err)
		}
	}
}
