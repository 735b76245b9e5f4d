package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arjenvk/threadbare/comments"
	"github.com/arjenvk/threadbare/infra/cache"
	"github.com/arjenvk/threadbare/infra/config"
	"github.com/arjenvk/threadbare/infra/reddit"
	"github.com/arjenvk/threadbare/infra/store"
	"github.com/arjenvk/threadbare/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type cliMode int

const (
	cliRun cliMode = iota
	cliVersion
	cliHelp
	cliInvalid
)

func parseCLIArgs(args []string) (cliMode, string) {
	if len(args) == 0 {
		return cliRun, ""
	}

	switch args[0] {
	case "--version", "-version", "-v":
		return cliVersion, ""
	case "--help", "-h", "help":
		return cliHelp, ""
	}
	if strings.HasPrefix(args[0], "-") {
		return cliInvalid, fmt.Sprintf("unexpected argument: %s", strings.Join(args, " "))
	}
	if len(args) > 1 {
		return cliInvalid, fmt.Sprintf("expected a single thread URL, got: %s", strings.Join(args, " "))
	}
	return cliRun, args[0]
}

func usage() string {
	return "Usage: threadbare [thread-url] [--version|-version|-v] [--help|-h]"
}

func resolveVersionInfo(v, c, d, moduleVersion string, settings map[string]string) (string, string, string) {
	if v == "dev" {
		mv := strings.TrimSpace(moduleVersion)
		if mv != "" && mv != "(devel)" {
			v = mv
		}
	}
	if c == "none" {
		rev := strings.TrimSpace(settings["vcs.revision"])
		if rev != "" {
			if len(rev) > 12 {
				rev = rev[:12]
			}
			c = rev
		}
	}
	if d == "unknown" {
		t := strings.TrimSpace(settings["vcs.time"])
		if t != "" {
			d = t
		}
	}
	return v, c, d
}

func buildSettingsMap(in []debug.BuildSetting) map[string]string {
	out := make(map[string]string, len(in))
	for _, s := range in {
		out[s.Key] = s.Value
	}
	return out
}

func resolvedRuntimeVersionInfo(v, c, d string) (string, string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok || info == nil {
		return v, c, d
	}
	return resolveVersionInfo(v, c, d, info.Main.Version, buildSettingsMap(info.Settings))
}

func main() {
	mode, arg := parseCLIArgs(os.Args[1:])
	switch mode {
	case cliVersion:
		v, c, d := resolvedRuntimeVersionInfo(version, commit, date)
		fmt.Printf("threadbare %s\ncommit: %s\nbuilt: %s\n", v, c, d)
		return
	case cliHelp:
		fmt.Println(usage())
		return
	case cliInvalid:
		fmt.Fprintf(os.Stderr, "%s\n%s\n", arg, usage())
		os.Exit(1)
	}

	// 1. Load config from environment.
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	prefs := config.LoadPrefs(cfg.PrefsPath)

	// 2. Build infrastructure.
	sessions, err := store.Open(cfg.SessionPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "session store: %v\n", err)
		os.Exit(1)
	}
	defer sessions.Close()

	client := reddit.NewClient(cfg.OriginURL)
	threads := reddit.NewThreadService(client)
	responses := cache.NewMemory()

	// 3. Resolve the thread to open, restoring its remembered settings.
	permalink := arg
	sort := reddit.DefaultSort
	limit := reddit.DefaultLimit
	if permalink != "" {
		if sess, err := sessions.Touch(context.Background(), permalink); err == nil {
			sort = sess.Sort
			limit = sess.Limit
		}
	}

	// 4. Wire root TUI model.
	rootModel := tui.NewApp(tui.Deps{
		Threads:   threads,
		Cache:     responses,
		Sessions:  sessions,
		Origin:    cfg.OriginURL,
		Permalink: permalink,
		Sort:      sort,
		Limit:     limit,
		Settings: comments.Settings{
			DepthLimit:   prefs.DepthLimit,
			HideLowScore: prefs.HideLowScore,
			AutoDepth:    prefs.AutoDepth,
		},
		ExportComments: prefs.ExportComments,
		SavePrefs: func(s comments.Settings, exportComments bool) error {
			return config.SavePrefs(cfg.PrefsPath, config.Prefs{
				DepthLimit:     s.DepthLimit,
				HideLowScore:   s.HideLowScore,
				AutoDepth:      s.AutoDepth,
				ExportComments: exportComments,
			})
		},
	})

	// 5. Run.
	p := tea.NewProgram(rootModel, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "threadbare: %v\n", err)
		os.Exit(1)
	}
}
