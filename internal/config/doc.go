// Package config manages optional user preferences stored at
// ~/.specforge/config.yaml: the description prompt default, styled output,
// and an advisory minimum CLI version. Preferences only tune presentation
// and defaults; project inputs are always gathered interactively, and a
// broken preferences file degrades to warnings rather than failures.
package config
