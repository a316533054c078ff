package publishers

import (
	"os"
	"path/filepath"
	"testing"
)

func writeRegistryFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write registry file: %v", err)
	}
	return path
}

func TestLoadRegistryParsesYAML(t *testing.T) {
	path := writeRegistryFile(t, "publishers.yaml", `
publishers:
  - id: events-webhook
    type: http
    http:
      url: https://hooks.example/webtoons
  - id: events-topic
    type: sns
    enabled: false
    sns:
      topic_arn: arn:aws:sns:::webtoon-events
      region: ap-northeast-2
  - id: events-stream
    type: gcp_pubsub
    gcp:
      project_id: likeott
      topic: webtoon-events
`)

	reg, err := LoadRegistry(path)
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}
	if len(reg.All()) != 3 {
		t.Fatalf("expected 3 publishers, got %d", len(reg.All()))
	}

	cfg, ok := reg.ByID("events-webhook")
	if !ok {
		t.Fatalf("events-webhook missing")
	}
	if cfg.HTTP.Method != "POST" || cfg.HTTP.TimeoutSeconds != httpDefaultTimeoutSeconds {
		t.Fatalf("http defaults not applied: %#v", cfg.HTTP)
	}

	enabled := reg.Enabled()
	if len(enabled) != 2 {
		t.Fatalf("expected 2 enabled publishers, got %d", len(enabled))
	}
	for _, cfg := range enabled {
		if cfg.ID == "events-topic" {
			t.Fatalf("disabled publisher leaked into Enabled()")
		}
	}
}

func TestLoadRegistryRejectsIncompleteEntries(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"missing id", "publishers:\n  - type: http\n    http:\n      url: https://x\n"},
		{"missing sqs region", "publishers:\n  - id: q\n    type: sqs\n    sqs:\n      uri: https://sqs/q\n"},
		{"missing sns topic", "publishers:\n  - id: s\n    type: sns\n    sns:\n      region: us-east-1\n"},
		{"missing gcp topic", "publishers:\n  - id: g\n    type: gcp_pubsub\n    gcp:\n      project_id: p\n"},
		{"duplicate ids", "publishers:\n  - id: a\n    type: http\n    http:\n      url: https://x\n  - id: a\n    type: http\n    http:\n      url: https://y\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeRegistryFile(t, "publishers.yaml", tc.content)
			if _, err := LoadRegistry(path); err == nil {
				t.Fatalf("expected error for %s", tc.name)
			}
		})
	}
}

func TestLoadRegistryParsesJSON(t *testing.T) {
	path := writeRegistryFile(t, "publishers.json", `{
  "publishers": [
    {"id": "hook", "type": "http", "http": {"url": "https://hooks.example", "method": "put"}}
  ]
}`)

	reg, err := LoadRegistry(path)
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}
	cfg, _ := reg.ByID("hook")
	if cfg.HTTP.Method != "PUT" {
		t.Fatalf("method not normalized: %q", cfg.HTTP.Method)
	}
}
