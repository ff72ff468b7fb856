// Package template defines the template engine seam used by the text preview
// renderer. The pongo subpackage provides the pongo2 implementation.
package template
