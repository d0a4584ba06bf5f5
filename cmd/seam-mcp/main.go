package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/seam-carver-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("seam-carver-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("seam-carver-mcp - MCP server for content-aware image resizing")
			fmt.Println()
			fmt.Println("Usage: seam-carver-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  SEAM_MCP_LOG_LEVEL=debug      Log level (panic, fatal, error, warn, info, debug, trace)")
			fmt.Printf("  SEAM_MCP_MAX_SESSIONS=%d      Maximum open carving sessions\n", server.DefaultMaxSessions)
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.SetLevel(logrus.InfoLevel)

	if v := os.Getenv("SEAM_MCP_LOG_LEVEL"); v != "" {
		level, err := logrus.ParseLevel(v)
		if err != nil {
			logrus.WithError(err).Warn("ignoring SEAM_MCP_LOG_LEVEL")
		} else {
			logrus.SetLevel(level)
		}
	}

	cfg := server.Config{}
	if v := os.Getenv("SEAM_MCP_MAX_SESSIONS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			logrus.WithField("value", v).Warn("ignoring invalid SEAM_MCP_MAX_SESSIONS")
		} else {
			cfg.MaxSessions = n
		}
	}

	logrus.WithFields(logrus.Fields{
		"version": Version,
		"built":   BuildTime,
		"commit":  GitCommit,
	}).Debug("Seam Carver MCP Server starting")

	srv := server.New(cfg)
	if err := srv.Run(); err != nil {
		logrus.Fatalf("Server error: %v", err)
	}
}
