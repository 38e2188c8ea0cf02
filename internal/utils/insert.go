package querybuilder

// InsertRows holds one argument slice per inserted row.
type InsertRows [][]interface{}
