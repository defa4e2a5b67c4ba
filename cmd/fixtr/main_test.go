/*
fixdecoder — FIX protocol decoder tools
Copyright (C) 2025 Steve Clarke <stephenlclarke@mac.com>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU Affero General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU Affero General Public License for more details.

You should have received a copy of the GNU Affero General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.

In accordance with section 13 of the AGPL, if you modify this program,
your modified version must prominently offer all users interacting with it
remotely through a computer network an opportunity to receive the source
code of your version.
*/
package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseFlagsArgsDefaults(t *testing.T) {
	var errOut strings.Builder

	opts, rest, err := parseFlagsArgs([]string{"a.log", "b.log"}, &errOut)
	if err != nil {
		t.Fatalf("parseFlagsArgs() error = %v", err)
	}

	if opts.Version != "" {
		t.Errorf("Version = %q, want empty (auto-detect) by default", opts.Version)
	}

	if opts.Redact {
		t.Errorf("Redact = true, want false by default")
	}

	if opts.HasColour {
		t.Errorf("HasColour = true, want false when -colour was never passed")
	}

	if len(rest) != 2 || rest[0] != "a.log" || rest[1] != "b.log" {
		t.Errorf("parseFlagsArgs() positional args = %v, want [a.log b.log]", rest)
	}
}

func TestParseFlagsArgsRecordsExplicitColour(t *testing.T) {
	var errOut strings.Builder

	opts, _, err := parseFlagsArgs([]string{"-colour"}, &errOut)
	if err != nil {
		t.Fatalf("parseFlagsArgs() error = %v", err)
	}

	if !opts.Colour || !opts.HasColour {
		t.Errorf("parseFlagsArgs() Colour/HasColour = %v/%v, want true/true", opts.Colour, opts.HasColour)
	}
}

func TestParseFlagsArgsRedactAndVersion(t *testing.T) {
	var errOut strings.Builder

	opts, _, err := parseFlagsArgs([]string{"-redact", "-S=42"}, &errOut)
	if err != nil {
		t.Fatalf("parseFlagsArgs() error = %v", err)
	}

	if !opts.Redact {
		t.Errorf("Redact = false, want true")
	}

	if opts.Version != "42" {
		t.Errorf("Version = %q, want %q", opts.Version, "42")
	}
}

func TestParseFlagsArgsUnknownFlag(t *testing.T) {
	var errOut strings.Builder

	if _, _, err := parseFlagsArgs([]string{"-bogus"}, &errOut); err == nil {
		t.Fatalf("parseFlagsArgs() should reject an unknown flag")
	}
}

func TestIsSetDetectsExplicitFlag(t *testing.T) {
	var errOut strings.Builder

	opts, _, err := parseFlagsArgs([]string{"-colour=false"}, &errOut)
	if err != nil {
		t.Fatalf("parseFlagsArgs() error = %v", err)
	}

	if !opts.HasColour {
		t.Errorf("HasColour = false, want true when -colour=false was passed explicitly")
	}
}

func TestExtractFileArgsOrStdinDefaultsToStdin(t *testing.T) {
	got := extractFileArgsOrStdin(nil)
	if len(got) != 1 || got[0] != "-" {
		t.Errorf("extractFileArgsOrStdin(nil) = %v, want [-]", got)
	}
}

func TestExtractFileArgsOrStdinPassesThroughFiles(t *testing.T) {
	got := extractFileArgsOrStdin([]string{"a.log", "b.log"})
	if len(got) != 2 || got[0] != "a.log" || got[1] != "b.log" {
		t.Errorf("extractFileArgsOrStdin() = %v, want [a.log b.log]", got)
	}
}

func TestReadAllConcatenatesFiles(t *testing.T) {
	dir := t.TempDir()

	pathA := filepath.Join(dir, "a.txt")
	pathB := filepath.Join(dir, "b.txt")

	if err := os.WriteFile(pathA, []byte("hello "), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if err := os.WriteFile(pathB, []byte("world"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	got, err := readAll([]string{pathA, pathB})
	if err != nil {
		t.Fatalf("readAll() error = %v", err)
	}

	if got != "hello world" {
		t.Errorf("readAll() = %q, want %q", got, "hello world")
	}
}

func TestReadAllMissingFile(t *testing.T) {
	if _, err := readAll([]string{"/no/such/file.log"}); err == nil {
		t.Fatalf("readAll() should fail on a missing file")
	}
}

func TestProcessTracesWellFormedMessageFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "trace.log")

	msg := "8=FIX.4.2\x019=5\x0135=0\x0110=161\x01"

	if err := os.WriteFile(path, []byte(msg), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	var out, errOut strings.Builder

	code := Process([]string{"-colour=false", path}, &out, &errOut)
	if code != 0 {
		t.Fatalf("Process() = %d, want 0, stderr: %s", code, errOut.String())
	}

	if !strings.Contains(out.String(), "MSG =") {
		t.Errorf("Process() output = %q, want a traced MSG banner", out.String())
	}
}

func TestProcessMissingFileReturnsError(t *testing.T) {
	var out, errOut strings.Builder

	code := Process([]string{"/no/such/file.log"}, &out, &errOut)
	if code != 1 {
		t.Errorf("Process() = %d, want 1 for a missing file", code)
	}
}

func TestProcessBadFlagReturnsError(t *testing.T) {
	var out, errOut strings.Builder

	code := Process([]string{"-bogus"}, &out, &errOut)
	if code != 1 {
		t.Errorf("Process() = %d, want 1 on a bad flag", code)
	}
}
