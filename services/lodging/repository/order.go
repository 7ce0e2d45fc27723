package repository

import "strings"

// orderClause resolves a whitelisted order key into an ORDER BY expression. A leading "-"
// sorts descending; unknown keys fall back to def.
func orderClause(orderBy string, columns map[string]string, def string) string {
	key := strings.ToLower(strings.TrimSpace(orderBy))
	dir := "ASC"
	if strings.HasPrefix(key, "-") {
		key = key[1:]
		dir = "DESC"
	}
	col, ok := columns[key]
	if !ok {
		col, dir = columns[def], "ASC"
	}
	return col + " " + dir
}
