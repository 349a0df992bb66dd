package main

import (
	"fmt"
	"os"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "serve":
		err = runServe(optionalArg(2))
	case "new":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "Usage: flatblog new <directory>")
			os.Exit(1)
		}
		err = runNew(os.Args[2])
	case "export":
		err = runExport(os.Stdout, optionalArg(2))
	case "show":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "Usage: flatblog show <post-path> [config.yaml]")
			os.Exit(1)
		}
		err = runShow(os.Stdout, os.Args[2], optionalArg(3))
	case "version":
		fmt.Printf("flatblog %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func optionalArg(i int) string {
	if len(os.Args) > i {
		return os.Args[i]
	}
	return ""
}

func printUsage() {
	fmt.Println(`flatblog - a blog server over a directory of markdown files

Usage:
  flatblog <command> [arguments]

Commands:
  serve [config.yaml]              Start the HTTP server
  new <directory>                  Create a new blog directory
  export [config.yaml]             Print the /api/posts JSON to stdout
  show <post-path> [config.yaml]   Print a single post as JSON
  version                          Print the flatblog version
  help                             Show this help message

Configuration is read from the optional YAML file and then from
environment variables (SITE_NAME, SITE_URL, POSTS_DIR, ADDR, ...).`)
}
