// Package wizard collects the inputs for a new project through a
// line-oriented prompt session: free-text questions for name and
// description, numbered menus for project type and assistant. Invalid
// answers re-prompt until a valid one arrives; the reader and writer are
// injected so sessions can be scripted.
package wizard
