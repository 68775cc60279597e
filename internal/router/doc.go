// Package router maps request paths to the fixed set of HTML pages the
// server can produce. The lookup is a pure exact-string match over a
// table chosen once per server variant.
package router
