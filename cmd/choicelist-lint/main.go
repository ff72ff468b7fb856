package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goliatone/go-choicelist/pkg/loader"
)

func main() {
	strict := flag.Bool("strict", false, "treat warnings as failures")
	flag.Usage = func() {
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [dirs...]\n", filepath.Base(os.Args[0])); err != nil {
			panic(err)
		}
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "\nLint choice-list question documents.\n\n"); err != nil {
			panic(err)
		}
		flag.PrintDefaults()
	}
	flag.Parse()

	dirs := flag.Args()
	if len(dirs) == 0 {
		dirs = []string{"pkg/loader/samples/questions"}
	}

	var issues []loader.Issue
	for _, dir := range dirs {
		store, err := loader.LoadFS(os.DirFS(dir))
		if err != nil {
			fmt.Fprintf(os.Stderr, "lint %s: %v\n", dir, err)
			os.Exit(1)
		}
		for _, issue := range loader.Lint(store) {
			issue.File = filepath.Join(dir, issue.File)
			issues = append(issues, issue)
		}
	}

	for _, issue := range issues {
		fmt.Fprintln(os.Stderr, issue.String())
	}
	if loader.HasErrors(issues) || (*strict && len(issues) > 0) {
		os.Exit(1)
	}
}
