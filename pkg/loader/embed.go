package loader

import (
	"embed"
	"io/fs"
)

//go:embed samples/questions/* samples/data/*
var samples embed.FS

// SampleFS returns the bundled example question documents.
func SampleFS() fs.FS {
	return mustSub("samples/questions")
}

// SampleDataFS returns the payloads the bundled choices-by-url descriptors
// point at.
func SampleDataFS() fs.FS {
	return mustSub("samples/data")
}

func mustSub(dir string) fs.FS {
	sub, err := fs.Sub(samples, dir)
	if err != nil {
		// The embed directive guarantees the subpath exists.
		panic(err)
	}
	return sub
}
