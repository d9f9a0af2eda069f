package cmd

import (
	"testing"
)

func TestNew(t *testing.T) {
	cmd := New()
	if cmd == nil {
		t.Fatal("New() returned nil")
	}
	if cmd.Use != "ghdump <owner/repo> <item>..." {
		t.Errorf("unexpected Use: %q", cmd.Use)
	}

	for _, name := range []string{"config", "version", "ratelimit"} {
		found := false
		for _, sub := range cmd.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestNewRequiresRepoAndItems(t *testing.T) {
	cmd := New()
	if err := cmd.Args(cmd, []string{"acme/widgets"}); err == nil {
		t.Error("a repository with no items must be rejected")
	}
	if err := cmd.Args(cmd, []string{"acme/widgets", "42"}); err != nil {
		t.Errorf("repository plus one item must be accepted: %v", err)
	}
}

func TestNewCmdConfig(t *testing.T) {
	cmd := NewCmdConfig()
	if cmd == nil {
		t.Fatal("NewCmdConfig() returned nil")
	}
	if cmd.Use != "config" {
		t.Errorf("expected Use to be 'config', got %q", cmd.Use)
	}
}

func TestNewCmdVersion(t *testing.T) {
	cmd := NewCmdVersion()
	if cmd == nil {
		t.Fatal("NewCmdVersion() returned nil")
	}
	if cmd.Use != "version" {
		t.Errorf("expected Use to be 'version', got %q", cmd.Use)
	}
}

func TestNewCmdRateLimit(t *testing.T) {
	cmd := NewCmdRateLimit()
	if cmd == nil {
		t.Fatal("NewCmdRateLimit() returned nil")
	}
	if cmd.Use != "ratelimit" {
		t.Errorf("expected Use to be 'ratelimit', got %q", cmd.Use)
	}
}

func TestSetVersionInfo(t *testing.T) {
	SetVersionInfo("1.0.0", "abc123", "2024-01-01")
	// Just verify it doesn't panic - version info is in package vars
}

func TestNewOptions(t *testing.T) {
	opts := NewOptions(
		WithPrefix("review"),
		WithToken("ghp_test"),
		WithOutputDir("/tmp/out"),
		WithMaxDiffLines(200),
		WithPublic(true),
		WithVerbosity(2),
	)
	if opts.Prefix != "review" {
		t.Errorf("expected Prefix to be 'review', got %q", opts.Prefix)
	}
	if opts.Token != "ghp_test" {
		t.Errorf("expected Token to be 'ghp_test', got %q", opts.Token)
	}
	if opts.OutputDir != "/tmp/out" {
		t.Errorf("expected OutputDir to be '/tmp/out', got %q", opts.OutputDir)
	}
	if opts.MaxDiffLines != 200 {
		t.Errorf("expected MaxDiffLines to be 200, got %d", opts.MaxDiffLines)
	}
	if !opts.Public {
		t.Error("expected Public to be true")
	}
	if opts.Verbosity != 2 {
		t.Errorf("expected Verbosity to be 2, got %d", opts.Verbosity)
	}
}
