// Package loader reads question documents from an fs.FS. A document is JSON or
// YAML with a list of questions, each carrying its type, name and the
// choices.Config fields inline. The package also ships an fs.FS backed
// choices.Fetcher so choices-by-url descriptors can point at local files.
package loader
