package mcp

import "testing"

func TestClassifyStatement(t *testing.T) {
	tests := []struct {
		query string
		want  StatementKind
	}{
		{"SHOW TABLES", KindShowTables},
		{"  show tables like 'u%'", KindShowTables},
		{"SELECT id, name FROM users", KindSelect},
		{"\n\tselect 1", KindSelect},
		{"SHOW DATABASES", KindShowDatabases},
		{"DESCRIBE users", KindDescribe},
		{"desc users", KindDescribe},
		{"SHOW COLUMNS FROM users", KindShowColumns},
		{"INSERT INTO users VALUES (1, 'a')", KindMutation},
		{"update users set name = 'b'", KindMutation},
		{"DELETE FROM users", KindMutation},
		{"CREATE TABLE t (id INT)", KindDDL},
		{"ALTER TABLE t ADD COLUMN c INT", KindDDL},
		{"DROP TABLE t", KindDDL},
		{"TRUNCATE TABLE t", KindDDL},
		{"SHOW TABLE STATUS", KindOther},
		{"SHOW INDEX FROM users", KindOther},
		{"EXPLAIN SELECT * FROM users", KindOther},
		{"WITH t AS (SELECT 1) SELECT * FROM t", KindOther},
		{"SET @x = 1", KindOther},
		{"", KindOther},
	}

	for _, tc := range tests {
		t.Run(tc.query, func(t *testing.T) {
			if got := ClassifyStatement(tc.query); got != tc.want {
				t.Errorf("ClassifyStatement(%q) = %s, want %s", tc.query, got, tc.want)
			}
		})
	}
}

func TestClassifyStatementIsPrefixBased(t *testing.T) {
	// Prefix matching is purely lexical, so these land in the matching bucket
	tests := []struct {
		query string
		want  StatementKind
	}{
		{"DESCRIPTION_TABLE_SCAN", KindDescribe},
		{"SELECTED", KindSelect},
		{"CREATED_AT", KindDDL},
	}

	for _, tc := range tests {
		t.Run(tc.query, func(t *testing.T) {
			if got := ClassifyStatement(tc.query); got != tc.want {
				t.Errorf("ClassifyStatement(%q) = %s, want %s", tc.query, got, tc.want)
			}
		})
	}
}

func TestStatementKindMutating(t *testing.T) {
	for _, k := range []StatementKind{KindMutation, KindDDL} {
		if !k.Mutating() {
			t.Errorf("%s should be mutating", k)
		}
	}
	for _, k := range []StatementKind{KindOther, KindShowTables, KindSelect, KindShowDatabases, KindDescribe, KindShowColumns} {
		if k.Mutating() {
			t.Errorf("%s should not be mutating", k)
		}
	}
}
