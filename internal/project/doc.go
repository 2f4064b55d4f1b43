// Package project derives and materializes the on-disk layout of a new
// spec-driven project. It turns the collected inputs into a deterministic
// plan of directories and catalog-backed files, writes that plan beneath a
// parent directory, and prints the post-creation guidance.
package project
