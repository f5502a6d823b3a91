package main

import (
	"context"
	"io"
	"time"

	"github.com/kevinshome/pepper"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	BaseURL string

	Fetcher   pepper.Fetcher
	Headers   pepper.HeaderExtractor
	Index     pepper.IndexExtractor
	Abstracts pepper.AbstractExtractor
	Converter pepper.Converter
	Feed      pepper.FeedService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool          `short:"v" help:"Log requests and extraction to stderr"`
	Timeout time.Duration `short:"t" default:"10s" help:"Timeout per request"`

	Info   InfoCmd   `cmd:"" help:"Get basic info about the specified PEP"`
	Search SearchCmd `cmd:"" help:"Search for a PEP (searches for QUERY as substring in title)"`
	Recent RecentCmd `cmd:"" help:"List recently published PEPs"`
}

// arity maps every command name to the number of positional arguments it
// requires. Names missing from the table are not commands.
var arity = map[string]int{
	"help":   0,
	"info":   1,
	"search": 1,
	"recent": 0,
}

// valueFlags lists the flags that consume the following argument.
var valueFlags = map[string]bool{
	"-t":        true,
	"--timeout": true,
	"-n":        true,
	"--limit":   true,
}

// InfoCmd is the "info" subcommand.
type InfoCmd struct {
	ID       string `arg:"" name:"pep-number" help:"PEP number"`
	Abstract bool   `short:"a" help:"Also print the PEP abstract"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Terms []string `arg:"" name:"query" help:"Title substrings to search for"`
}

// RecentCmd is the "recent" subcommand.
type RecentCmd struct {
	Limit int `short:"n" default:"10" help:"Maximum number of PEPs to list"`
}
