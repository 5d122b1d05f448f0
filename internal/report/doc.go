// Package report renders a model listing for the terminal.
package report
