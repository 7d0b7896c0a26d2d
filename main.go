package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	flag "github.com/spf13/pflag"

	"github.com/kmacinski/revlog/internal/app"
	"github.com/kmacinski/revlog/internal/config"
	"github.com/kmacinski/revlog/internal/git"
)

var version = "dev"

var (
	limit       int
	showVersion bool
	showHelp    bool
)

func init() {
	flag.IntVarP(&limit, "limit", "n", 50, "Number of commits to load")
	flag.BoolVarP(&showVersion, "version", "v", false, "Show version")
	flag.BoolVarP(&showHelp, "help", "h", false, "Show help")
	flag.Usage = usage
}

func main() {
	flag.Parse()

	if showVersion {
		fmt.Printf("revlog %s\n", version)
		os.Exit(0)
	}
	if showHelp {
		usage()
		os.Exit(0)
	}

	startPath := ""
	if args := flag.Args(); len(args) > 0 {
		startPath = args[0]
	}

	prefs := config.Load()

	// A missing repository is not fatal: the UI starts with an empty
	// list and Enter does nothing.
	var repoClient git.Client
	var commits []git.Commit
	watchPath := ""
	if repo, err := git.Discover(startPath); err == nil {
		repoClient = repo
		watchPath = repo.GitDir()
		if list, err := repo.RecentCommits(limit); err == nil {
			commits = list
		}
	}

	application := app.New(&prefs, repoClient, commits, limit, watchPath)
	defer application.Cleanup()

	p := tea.NewProgram(application, tea.WithAltScreen())
	application.SetProgram(p)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Println(`revlog - browse a repository's commit history in the terminal

Usage:
  revlog [flags] [path]

Arguments:
  path              Start path for repository discovery (default: current dir)

Flags:
  -n, --limit       Number of commits to load (default: 50)
  -h, --help        Show help
  -v, --version     Show version

Keybindings:
  j/k               Move / scroll
  Enter             Open commit (list)
  Tab, d/p          Switch diff and pager views
  g/G               Go to top/bottom (pager/diff)
  w                 Toggle line wrapping
  y                 Toggle syntax highlighting
  c                 Copy commit id (list)
  q                 Back / quit`)
}
