// Package pagination computes page windows for paginated listings.
//
// Given a total item count, a page size and a requested page, Compute returns
// a Result describing:
//   - the total number of pages,
//   - the previous and next page numbers, when they exist,
//   - a bounded Series of tokens (Page, Current, Gap) ready to be rendered as
//     navigation links.
//
// The package is pure: every call works only on its arguments and returns a
// freshly allocated Result, so it can be used from any number of goroutines
// without synchronization. Rendering lives in the nav package.
package pagination
