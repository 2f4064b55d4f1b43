// Package catalog holds the embedded document templates that make up a
// generated project. Entries ending in .tmpl are Go text templates rendered
// with per-project data (name, description, generation date); all other
// entries are emitted verbatim. The catalog is fixed at build time.
package catalog
