package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
)

func TestCustomOutputForApplicationLog(t *testing.T) {
	var buf bytes.Buffer
	if err := Init(Options{ApplicationLogOutput: &buf}); err != nil {
		t.Fatal(err)
	}

	msg := "Hello, world!"
	log.Info(msg)
	if !strings.Contains(buf.String(), msg) {
		t.Error("failed to use custom output")
	}
}

func TestCustomPrefixForApplicationLog(t *testing.T) {
	var buf bytes.Buffer
	prefix := "[TEST_PREFIX]"
	Init(Options{
		ApplicationLogOutput: &buf,
		ApplicationLogPrefix: prefix})
	log.Infof("Hello, world!")
	got := buf.String()
	if !strings.HasPrefix(got, "[TEST_PREFIX]") || !strings.Contains(got, "Hello, world!") {
		t.Error("failed to use custom prefix")
	}
}

func TestJSONApplicationLog(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{
		ApplicationLogOutput:      &buf,
		ApplicationLogJSONEnabled: true})
	log.WithField("service", "viaroute").Info("parsed")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to log json: %v", err)
	}

	if entry["msg"] != "parsed" || entry["service"] != "viaroute" {
		t.Error("failed to log fields", entry)
	}
}

func TestApplicationLogLevel(t *testing.T) {
	defer log.SetLevel(log.InfoLevel)

	var buf bytes.Buffer
	if err := Init(Options{
		ApplicationLogOutput: &buf,
		ApplicationLogLevel:  "warn"}); err != nil {
		t.Fatal(err)
	}

	log.Info("hidden")
	log.Warn("visible")
	got := buf.String()
	if strings.Contains(got, "hidden") || !strings.Contains(got, "visible") {
		t.Error("failed to set log level", got)
	}
}

func TestInvalidApplicationLogLevel(t *testing.T) {
	if err := Init(Options{ApplicationLogLevel: "chatty"}); err == nil {
		t.Error("failed to fail on invalid level")
	}
}
