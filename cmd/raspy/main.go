package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/raspyfmt/raspy/convert"
	"github.com/raspyfmt/raspy/generator"
	"github.com/raspyfmt/raspy/parser/ras"
	"github.com/raspyfmt/raspy/project"
	"github.com/raspyfmt/raspy/watch"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		return
	}

	cmd := os.Args[1]

	switch cmd {
	case "get":
		if len(os.Args) < 6 {
			fmt.Println("Usage: raspy get <file.ras> <list> <record> <field>")
			return
		}
		record, err := strconv.Atoi(os.Args[4])
		if err != nil {
			fmt.Printf("Invalid record index %q\n", os.Args[4])
			return
		}
		field, err := strconv.Atoi(os.Args[5])
		if err != nil {
			fmt.Printf("Invalid field index %q\n", os.Args[5])
			return
		}
		value, err := ras.GetFile(os.Args[2], os.Args[3], record, field)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("%s (%s)\n", value, value.Kind)

	case "show":
		if len(os.Args) < 3 {
			fmt.Println("Usage: raspy show <file.ras>")
			return
		}
		store, err := ras.Load(os.Args[2])
		if err != nil {
			fmt.Printf("Error reading file: %v\n", err)
			return
		}
		showStore(store)

	case "convert":
		if len(os.Args) < 5 {
			fmt.Println("Usage: raspy convert <file.ras> <format> <output>")
			return
		}
		if err := convert.File(os.Args[2], os.Args[3], os.Args[4]); err != nil {
			fmt.Printf("Error converting file: %v\n", err)
			return
		}
		fmt.Printf("Converted '%s' to %s and saved to '%s'\n", os.Args[2], os.Args[3], os.Args[4])

	case "init":
		if len(os.Args) < 3 {
			fmt.Println("Usage: raspy init <project-name>")
			return
		}
		projectName := os.Args[2]
		if err := project.Init(projectName); err != nil {
			fmt.Printf("Error initializing project: %v\n", err)
			return
		}
		fmt.Printf("Project '%s' initialized successfully!\n", projectName)
		fmt.Printf("   cd %s\n", projectName)
		fmt.Printf("   raspy build\n")

	case "build":
		if err := project.Build(); err != nil {
			fmt.Printf("Error building project: %v\n", err)
		} else {
			fmt.Println("Project built successfully!")
		}

	case "watch":
		cfg, err := project.LoadConfig(project.ConfigFile)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			return
		}
		fmt.Println("Watching for file changes...")
		if err := watch.Watch(context.Background(), cfg.DataDirs, project.Build); err != nil {
			fmt.Printf("Error watching files: %v\n", err)
		}

	case "gen":
		if len(os.Args) < 4 || os.Args[2] != "list" {
			fmt.Println("Usage: raspy gen list <ListName>")
			return
		}
		if err := generator.GenerateList(os.Args[3]); err != nil {
			fmt.Printf("Error generating list: %v\n", err)
		}

	case "version":
		fmt.Println("raspy v0.1.1 - RAS data format toolkit")

	case "help", "--help", "-h":
		printUsage()

	default:
		fmt.Printf("Unknown command: %s\n", cmd)
		printUsage()
	}
}

func printUsage() {
	fmt.Println(`raspy - RAS data format toolkit

USAGE:
    raspy <command> [arguments]

COMMANDS:
    get <file> <list> <record> <field>   Look up a single value
    show <file>                          Render each list as a table
    convert <file> <format> <output>     Convert a RAS file (json only)
    init <name>                          Initialize a new RAS project
    build                                Convert all project .ras files
    watch                                Rebuild on data file changes
    gen list <name>                      Generate a starter list
    version                              Show version information
    help                                 Show this help message

EXAMPLES:
    raspy init mydata
    raspy get data/example.ras products 0 2
    raspy convert data/example.ras json example.json
    raspy show data/example.ras`)
}
