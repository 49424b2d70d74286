package orm

import (
	"strings"

	"gorm.io/gorm/schema"
)

// NamingStrategy drops the sql prefix of the row types from table and index names.
type NamingStrategy struct {
	schema.NamingStrategy
}

func (n *NamingStrategy) TableName(table string) string {
	return strings.TrimPrefix(n.NamingStrategy.TableName(table), "sql_")
}

func (n *NamingStrategy) IndexName(table, column string) string {
	return strings.ReplaceAll(n.NamingStrategy.IndexName(table, column), "_sql_", "_")
}
