// Package output renders command results as styled terminal text.
//
// Each result type has a template under templates/. Templates mark text
// with semantic style names:
//
//	{{ style "Rule" (str .Name) }}
//
// and the styles are defined in embedded/styles.yaml as lipgloss styles
// with adaptive colors. With color disabled the style calls are no-ops.
package output
