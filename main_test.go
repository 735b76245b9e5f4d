package main

import (
	"testing"
)

func TestParseCLIArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		mode cliMode
		arg  string
	}{
		{name: "run default", args: nil, mode: cliRun},
		{name: "thread url", args: []string{"https://www.reddit.com/r/golang/comments/abc/title/"}, mode: cliRun, arg: "https://www.reddit.com/r/golang/comments/abc/title/"},
		{name: "permalink path", args: []string{"/r/golang/comments/abc/title"}, mode: cliRun, arg: "/r/golang/comments/abc/title"},
		{name: "version long", args: []string{"--version"}, mode: cliVersion},
		{name: "version short", args: []string{"-v"}, mode: cliVersion},
		{name: "version single-dash", args: []string{"-version"}, mode: cliVersion},
		{name: "help long", args: []string{"--help"}, mode: cliHelp},
		{name: "help short", args: []string{"-h"}, mode: cliHelp},
		{name: "help word", args: []string{"help"}, mode: cliHelp},
		{name: "invalid flag", args: []string{"--bogus"}, mode: cliInvalid, arg: "unexpected argument: --bogus"},
		{name: "two urls", args: []string{"/r/a/comments/1/x", "/r/b/comments/2/y"}, mode: cliInvalid, arg: "expected a single thread URL, got: /r/a/comments/1/x /r/b/comments/2/y"},
		{name: "extra after version", args: []string{"--version", "extra"}, mode: cliVersion},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mode, arg := parseCLIArgs(tc.args)
			if mode != tc.mode {
				t.Fatalf("mode mismatch: got %v want %v", mode, tc.mode)
			}
			if tc.arg != "" && arg != tc.arg {
				t.Fatalf("arg mismatch: got %q want %q", arg, tc.arg)
			}
		})
	}
}

func TestResolveVersionInfo(t *testing.T) {
	settings := map[string]string{
		"vcs.revision": "0123456789abcdef0123",
		"vcs.time":     "2026-08-01T00:00:00Z",
	}

	v, c, d := resolveVersionInfo("dev", "none", "unknown", "v1.2.3", settings)
	if v != "v1.2.3" || c != "0123456789ab" || d != "2026-08-01T00:00:00Z" {
		t.Fatalf("build info should fill defaults: %q %q %q", v, c, d)
	}

	v, c, d = resolveVersionInfo("v2.0.0", "deadbeef", "yesterday", "v1.2.3", settings)
	if v != "v2.0.0" || c != "deadbeef" || d != "yesterday" {
		t.Fatalf("linker-set values should win: %q %q %q", v, c, d)
	}

	v, _, _ = resolveVersionInfo("dev", "none", "unknown", "(devel)", nil)
	if v != "dev" {
		t.Fatalf("(devel) module version should be ignored, got %q", v)
	}
}
