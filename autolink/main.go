// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Autolink rewrites text, turning bare URLs, www hostnames, and email
// addresses into HTML links.
//
// Usage:
//
//	autolink [-mode all|urls|emails] [-attr attributes] [-short] [file...]
//
// Autolink reads the named files, or else standard input, as plain text
// or HTML and prints the rewritten text to standard output.
package main

import (
	"flag"
	"io"
	"log"
	"os"

	"rsc.io/linkify"
)

var (
	modeFlag  = flag.String("mode", "all", "link kinds to rewrite: all, urls, or emails")
	attrFlag  = flag.String("attr", "", "extra attributes for each generated <a> tag")
	shortFlag = flag.Bool("short", false, "accept URLs with dotless hosts such as http://localhost")
)

func main() {
	log.SetPrefix("autolink: ")
	log.SetFlags(0)
	flag.Parse()

	var l linkify.Linker
	switch *modeFlag {
	case "all":
		l.Mode = linkify.All
	case "urls":
		l.Mode = linkify.URLs
	case "emails":
		l.Mode = linkify.Emails
	default:
		log.Fatalf("unknown mode %q", *modeFlag)
	}
	l.LinkAttr = *attrFlag
	l.ShortDomains = *shortFlag

	args := flag.Args()
	if len(args) == 0 {
		do(&l, os.Stdin)
	} else {
		for _, arg := range args {
			f, err := os.Open(arg)
			if err != nil {
				log.Fatal(err)
			}
			do(&l, f)
			f.Close()
		}
	}
}

func do(l *linkify.Linker, f *os.File) {
	data, err := io.ReadAll(f)
	if err != nil {
		log.Fatal(err)
	}
	os.Stdout.WriteString(l.Link(string(data)))
}
