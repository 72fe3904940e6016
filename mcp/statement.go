package mcp

import "strings"

// StatementKind is the lexical category of a SQL statement
type StatementKind int

const (
	KindOther StatementKind = iota
	KindShowTables
	KindSelect
	KindShowDatabases
	KindDescribe
	KindShowColumns
	KindMutation
	KindDDL
)

var kindNames = map[StatementKind]string{
	KindOther:         "other",
	KindShowTables:    "show_tables",
	KindSelect:        "select",
	KindShowDatabases: "show_databases",
	KindDescribe:      "describe",
	KindShowColumns:   "show_columns",
	KindMutation:      "mutation",
	KindDDL:           "ddl",
}

func (k StatementKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Mutating reports whether statements of this kind are committed explicitly.
func (k StatementKind) Mutating() bool {
	return k == KindMutation || k == KindDDL
}

// statementPrefixes is evaluated in order, first match wins.
var statementPrefixes = []struct {
	prefix string
	kind   StatementKind
}{
	{"SHOW TABLES", KindShowTables},
	{"SELECT", KindSelect},
	{"SHOW DATABASES", KindShowDatabases},
	{"DESCRIBE", KindDescribe},
	{"DESC", KindDescribe},
	{"SHOW COLUMNS", KindShowColumns},
	{"INSERT", KindMutation},
	{"UPDATE", KindMutation},
	{"DELETE", KindMutation},
	{"CREATE", KindDDL},
	{"ALTER", KindDDL},
	{"DROP", KindDDL},
	{"TRUNCATE", KindDDL},
}

// ClassifyStatement matches the trimmed, upper-cased query against the
// prefix table.
func ClassifyStatement(query string) StatementKind {
	normalized := strings.ToUpper(strings.TrimSpace(query))
	for _, p := range statementPrefixes {
		if strings.HasPrefix(normalized, p.prefix) {
			return p.kind
		}
	}
	return KindOther
}
