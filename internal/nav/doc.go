// Package nav renders pagination results as navigation controls.
//
// Renderers receive a pagination.Result and, where links are needed, a URLFunc
// that maps a page number to a URL. Both are passed explicitly. QueryURL builds
// the usual URLFunc: it keeps every query parameter of the current request and
// overwrites only the page parameter.
package nav
