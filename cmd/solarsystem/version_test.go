package main

import (
	"bytes"
	"encoding/json"
	"runtime"
	"strings"
	"testing"
)

func TestVersionDefaults(t *testing.T) {
	origVersion := Version
	origGitCommit := GitCommit
	origBuildDate := BuildDate
	defer func() {
		Version = origVersion
		GitCommit = origGitCommit
		BuildDate = origBuildDate
	}()

	Version = "0.1.0-test"
	GitCommit = "abc123"
	BuildDate = "2025-11-20"

	info := currentVersion()
	if info.Version != "0.1.0-test" {
		t.Errorf("Version = %q, want %q", info.Version, "0.1.0-test")
	}
	if info.GitCommit != "abc123" {
		t.Errorf("GitCommit = %q, want %q", info.GitCommit, "abc123")
	}
	if info.BuildDate != "2025-11-20" {
		t.Errorf("BuildDate = %q, want %q", info.BuildDate, "2025-11-20")
	}
	if info.Platform != runtime.GOOS+"/"+runtime.GOARCH {
		t.Errorf("Platform = %q", info.Platform)
	}
}

func TestVersionCommandExists(t *testing.T) {
	if versionCmd == nil {
		t.Fatal("versionCmd is nil")
	}

	if versionCmd.Use != "version" {
		t.Errorf("versionCmd.Use = %q, want %q", versionCmd.Use, "version")
	}

	if versionCmd.Short == "" {
		t.Error("versionCmd.Short should not be empty")
	}

	if versionCmd.RunE == nil {
		t.Error("versionCmd.RunE should not be nil")
	}
}

func TestVersionCommandOutput(t *testing.T) {
	defer func() { versionOutput = "text" }()

	tests := []struct {
		name   string
		args   []string
		verify func(t *testing.T, out string)
	}{
		{
			name: "text",
			args: []string{"version"},
			verify: func(t *testing.T, out string) {
				if !strings.HasPrefix(out, "Solarsystem "+Version) {
					t.Errorf("output = %q, want version banner", out)
				}
				if !strings.Contains(out, "Go Version: "+runtime.Version()) {
					t.Errorf("output missing Go version: %q", out)
				}
			},
		},
		{
			name: "json",
			args: []string{"version", "--output", "json"},
			verify: func(t *testing.T, out string) {
				var info versionInfo
				if err := json.Unmarshal([]byte(out), &info); err != nil {
					t.Fatalf("output is not JSON: %v", err)
				}
				if info.Version != Version {
					t.Errorf("version = %q, want %q", info.Version, Version)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			rootCmd.SetOut(buf)
			rootCmd.SetArgs(tt.args)
			defer rootCmd.SetOut(nil)

			if err := rootCmd.Execute(); err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			tt.verify(t, buf.String())
		})
	}
}

func TestVersionCommandInvalidOutput(t *testing.T) {
	defer func() { versionOutput = "text" }()

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"version", "--output", "xml"})
	defer rootCmd.SetOut(nil)

	if err := rootCmd.Execute(); err == nil {
		t.Error("Execute() succeeded with an invalid output format")
	}
}
