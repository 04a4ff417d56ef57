// Package schema holds the go-jet generated model and table definitions for
// the sqlite schema.
package schema

//go:generate go run github.com/go-jet/jet/v2/cmd/jet -source=sqlite -dsn=../../../../cinesync.sqlite -path=./gen
