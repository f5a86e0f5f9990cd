package jdiff

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewConfig(t *testing.T) {
	cfg, err := NewConfig([]string{"a.json", "b.json", "out"})
	if err != nil {
		t.Fatal(err)
	}
	expect := &Config{FirstInput: "a.json", SecondInput: "b.json", OutputPrefix: "out"}
	if diff := cmp.Diff(expect, cfg, cmp.AllowUnexported(slog.Logger{})); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}

	for _, args := range [][]string{nil, {"a.json"}, {"a.json", "b.json"}, {"a", "b", "c", "d"}} {
		_, err := NewConfig(args)
		if err == nil {
			t.Errorf("%v: expected an argument error", args)
			continue
		}
		if !errors.Is(err, ErrArguments) {
			t.Errorf("%v: expected %s, got: %s", args, ErrArguments, err)
		}
		if errors.Is(err, ErrOpenInput) {
			t.Errorf("%v: argument error should not match %s", args, ErrOpenInput)
		}
		if !strings.Contains(err.Error(), Usage) {
			t.Errorf("%v: argument error should describe usage, got: %s", args, err)
		}
	}

	_, err = NewConfig([]string{"a.json", "b.json"})
	expectMsg := "jdiff.arguments: invalid number of arguments 2, usage: " + Usage
	if err == nil || err.Error() != expectMsg {
		t.Errorf("message mismatch.\nwant: %s\ngot:  %v", expectMsg, err)
	}
}

func readOutputs(t *testing.T, prefix string) (eq, ab, ba interface{}) {
	t.Helper()
	var err error
	if eq, err = ReadFile(prefix + "_eq.json"); err != nil {
		t.Fatal(err)
	}
	if ab, err = ReadFile(prefix + "_diff_ab.json"); err != nil {
		t.Fatal(err)
	}
	if ba, err = ReadFile(prefix + "_diff_ba.json"); err != nil {
		t.Fatal(err)
	}
	return eq, ab, ba
}

func TestRunSameFile(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "output1")
	cfg := &Config{
		FirstInput:   "testdata/user1.json",
		SecondInput:  "testdata/user1.json",
		OutputPrefix: prefix,
	}
	if err := Run(cfg); err != nil {
		t.Fatal(err)
	}

	user, err := ReadFile("testdata/user1.json")
	if err != nil {
		t.Fatal(err)
	}
	eq, ab, ba := readOutputs(t, prefix)
	if diff := cmp.Diff(user, eq); diff != "" {
		t.Errorf("eq mismatch (-want +got):\n%s", diff)
	}
	if ab != nil {
		t.Errorf("expected null diff_ab, got %v", ab)
	}
	if ba != nil {
		t.Errorf("expected null diff_ba, got %v", ba)
	}
}

func TestRunDifferentFile(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "output2")
	logs := &bytes.Buffer{}
	cfg := &Config{
		FirstInput:   "testdata/user1.json",
		SecondInput:  "testdata/user2.json",
		OutputPrefix: prefix,
		Logger:       slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug})),
	}
	if err := Run(cfg); err != nil {
		t.Fatal(err)
	}

	eq, ab, ba := readOutputs(t, prefix)
	for _, c := range []struct {
		name    string
		fixture string
		got     interface{}
	}{
		{"eq", "testdata/user1_user2_eq.json", eq},
		{"diff_ab", "testdata/user1_user2_diff.json", ab},
		{"diff_ba", "testdata/user2_user1_diff.json", ba},
	} {
		expect, err := ReadFile(c.fixture)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(expect, c.got); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", c.name, diff)
		}
	}

	for _, msg := range []string{"parsed input", "compared documents", "wrote output"} {
		if !strings.Contains(logs.String(), msg) {
			t.Errorf("expected log record %q, got:\n%s", msg, logs.String())
		}
	}
}

func TestRunIdempotent(t *testing.T) {
	dir := t.TempDir()
	first, second := filepath.Join(dir, "first"), filepath.Join(dir, "second")
	for _, prefix := range []string{first, second} {
		cfg := &Config{
			FirstInput:   "testdata/user1.json",
			SecondInput:  "testdata/user2.json",
			OutputPrefix: prefix,
		}
		if err := Run(cfg); err != nil {
			t.Fatal(err)
		}
	}

	for _, suffix := range []string{"_eq.json", "_diff_ab.json", "_diff_ba.json"} {
		a, err := os.ReadFile(first + suffix)
		if err != nil {
			t.Fatal(err)
		}
		b, err := os.ReadFile(second + suffix)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(a, b) {
			t.Errorf("%s differs between runs:\n%s\n%s", suffix, a, b)
		}
	}
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()

	cases := []struct {
		description string
		cfg         *Config
		expect      error
		other       error
	}{
		{"missing first input", &Config{FirstInput: "testdata/does_not_exist.json", SecondInput: "testdata/user1.json", OutputPrefix: filepath.Join(dir, "a")}, ErrOpenInput, ErrParseInput},
		{"missing second input", &Config{FirstInput: "testdata/user1.json", SecondInput: "testdata/does_not_exist.json", OutputPrefix: filepath.Join(dir, "b")}, ErrOpenInput, ErrWriteOutput},
		{"invalid input", &Config{FirstInput: "testdata/invalid_user.json", SecondInput: "testdata/user1.json", OutputPrefix: filepath.Join(dir, "c")}, ErrParseInput, ErrOpenInput},
		{"unwritable output", &Config{FirstInput: "testdata/user1.json", SecondInput: "testdata/user2.json", OutputPrefix: filepath.Join(dir, "missing", "d")}, ErrWriteOutput, ErrEncodeOutput},
	}

	for _, c := range cases {
		t.Run(c.description, func(t *testing.T) {
			err := Run(c.cfg)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, c.expect) {
				t.Errorf("expected %s, got: %s", c.expect, err)
			}
			if errors.Is(err, c.other) {
				t.Errorf("error should not match %s, got: %s", c.other, err)
			}
			if _, statErr := os.Stat(c.cfg.OutputPrefix + "_eq.json"); statErr == nil {
				t.Error("no output should be written when the run fails before writing")
			}
		})
	}
}
