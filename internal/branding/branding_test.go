package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	if CLIName() != "scriptsync" {
		t.Errorf("CLIName = %q, want %q", CLIName(), "scriptsync")
	}
	if GitHubRepo() == "" {
		t.Error("GitHubRepo should not be empty")
	}
	if ConfigPath() == "" {
		t.Error("ConfigPath should not be empty")
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("repo"); got != "SCRIPTSYNC_REPO" {
		t.Errorf("EnvVar(repo) = %q, want %q", got, "SCRIPTSYNC_REPO")
	}
}
