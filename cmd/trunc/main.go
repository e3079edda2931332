// Command trunc sets the size of files, truncate(1)-style, built on the
// trunckit packages.
//
// Usage:
//
//	trunc -s SIZE FILE...      truncate each FILE to SIZE bytes
//	trunc -m MANIFEST          apply a truncation manifest
//	trunc -schema              print the manifest JSON Schema
//
// Like the platform call it delegates to, -s may grow a file as well as
// shrink it. With -c, missing files are created first.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/iokit/trunckit/manifest"
	"github.com/iokit/trunckit/trunc"
)

func main() {
	var (
		size         = flag.Int64("s", -1, "target size in bytes")
		manifestPath = flag.String("m", "", "truncation manifest to apply (.yaml, .toml, or .json)")
		printSchema  = flag.Bool("schema", false, "print the manifest JSON Schema and exit")
		create       = flag.Bool("c", false, "create missing files before truncating")
	)
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: trunc -s SIZE [-c] FILE...")
		fmt.Fprintln(os.Stderr, "       trunc -m MANIFEST")
		fmt.Fprintln(os.Stderr, "       trunc -schema")
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(*size, *manifestPath, *printSchema, *create, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "trunc:", err)
		os.Exit(1)
	}
}

func run(size int64, manifestPath string, printSchema, create bool, files []string) error {
	switch {
	case printSchema:
		schema, err := manifest.Schema()
		if err != nil {
			return err
		}
		fmt.Println(string(schema))
		return nil

	case manifestPath != "":
		m, err := manifest.Load(manifestPath)
		if err != nil {
			return err
		}
		return m.Apply()

	default:
		if size < 0 {
			return errors.New("missing -s SIZE")
		}
		if len(files) == 0 {
			return errors.New("no files given")
		}
		for _, path := range files {
			if create {
				if err := ensureExists(path); err != nil {
					return err
				}
			}
			if err := trunc.ShrinkFile(path, size); err != nil {
				return err
			}
		}
		return nil
	}
}

func ensureExists(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE, 0o644)
	if err != nil {
		return err
	}
	return f.Close()
}
