// Package catalog holds an in-memory product catalog that can be searched,
// sorted and paginated. It backs the `catalog list`, `browse` and `sweep`
// commands.
package catalog
