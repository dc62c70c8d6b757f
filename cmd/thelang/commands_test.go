package main

import (
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/example/thelang/internal/server"
	"github.com/example/thelang/internal/testutil"
	"github.com/example/thelang/internal/translit"
	"github.com/example/thelang/internal/vocab"
)

func TestEncodeCmd_Args(t *testing.T) {
	out, err := execute(t, nil, "encode", "hello", "world.")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	want := translit.EncodeText("hello world.") + "\n"
	if out != want {
		t.Errorf("encode output = %+q, want %+q", out, want)
	}
}

func TestEncodeCmd_Stdin(t *testing.T) {
	out, err := execute(t, strings.NewReader("hello\n"), "encode")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	if want := translit.EncodeText("hello") + "\n"; out != want {
		t.Errorf("encode output = %+q, want %+q", out, want)
	}
}

func TestEncodeCmd_EmptyInputFails(t *testing.T) {
	if _, err := execute(t, strings.NewReader("  \n"), "encode"); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestEncodeCmd_Discord(t *testing.T) {
	out, err := execute(t, nil, "encode", "--discord", "hi there")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	if !strings.HasSuffix(out, "\n-# hi there\n") {
		t.Errorf("expected discord subtext line, got %+q", out)
	}
}

func TestEncodeInput_PerSentence(t *testing.T) {
	got := encodeInput(nil, "hello world. how are you?", true, false)

	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %+q", len(lines), got)
	}
	if lines[0] != translit.EncodeText("hello world.") {
		t.Errorf("line 0 = %+q", lines[0])
	}
	if lines[1] != translit.EncodeText("how are you?") {
		t.Errorf("line 1 = %+q", lines[1])
	}
}

func TestWordsCmd_AddListCount(t *testing.T) {
	dict := testutil.MissingDict(t)

	out, err := execute(t, nil, "--paths-dict-path", dict, "words", "add", "Hello", "world", "hello")
	if err != nil {
		t.Fatalf("words add: %v", err)
	}
	if out != "added hello\nadded world\nexists hello\n" {
		t.Errorf("words add output = %q", out)
	}

	if lines := testutil.ReadLines(t, dict); len(lines) != 2 {
		t.Errorf("dictionary file = %q, want 2 words", lines)
	}

	out, err = execute(t, nil, "--paths-dict-path", dict, "words", "list", "--prefix", "w")
	if err != nil {
		t.Fatalf("words list: %v", err)
	}
	if out != "world\n" {
		t.Errorf("words list output = %q", out)
	}

	out, err = execute(t, nil, "--paths-dict-path", dict, "words", "count")
	if err != nil {
		t.Fatalf("words count: %v", err)
	}
	if out != "2\n" {
		t.Errorf("words count output = %q", out)
	}
}

func TestWordsCmd_AddInvalidWordFails(t *testing.T) {
	dict := testutil.MissingDict(t)

	out, err := execute(t, nil, "--paths-dict-path", dict, "words", "add", "ok", "?!")
	if err == nil {
		t.Fatal("expected error for invalid word")
	}
	if out != "added ok\n" {
		t.Errorf("valid words must still be added, got %q", out)
	}
}

func TestWordsCmd_Seed(t *testing.T) {
	dict := testutil.WriteDict(t, "hello")

	out, err := execute(t, nil, "--paths-dict-path", dict, "words", "seed")
	if err != nil {
		t.Fatalf("words seed: %v", err)
	}
	if !strings.HasPrefix(out, "seeded ") {
		t.Errorf("words seed output = %q", out)
	}
	if lines := testutil.ReadLines(t, dict); len(lines) != len(vocab.DefaultSeed) {
		t.Errorf("dictionary has %d words, want %d", len(lines), len(vocab.DefaultSeed))
	}
}

func TestWordsCmd_ExportFile(t *testing.T) {
	dict := testutil.WriteDict(t, "hello", "world")
	export := filepath.Join(t.TempDir(), "fulldict.txt")

	if _, err := execute(t, nil,
		"--paths-dict-path", dict,
		"--paths-export-path", export,
		"words", "export",
	); err != nil {
		t.Fatalf("words export: %v", err)
	}

	lines := testutil.ReadLines(t, export)
	want := []string{
		"hello - " + translit.EncodeWord("hello"),
		"world - " + translit.EncodeWord("world"),
	}
	if len(lines) != 2 || lines[0] != want[0] || lines[1] != want[1] {
		t.Errorf("export file = %q, want %q", lines, want)
	}
}

func TestWordsCmd_ExportYAMLToStdout(t *testing.T) {
	dict := testutil.WriteDict(t, "hello")

	out, err := execute(t, nil, "--paths-dict-path", dict, "words", "export", "--format", "yaml", "--output", "-")
	if err != nil {
		t.Fatalf("words export: %v", err)
	}

	var entries []vocab.Entry
	if err := yaml.Unmarshal([]byte(out), &entries); err != nil {
		t.Fatalf("yaml.Unmarshal: %v\n%s", err, out)
	}
	if len(entries) != 1 || entries[0].Word != "hello" || entries[0].The != translit.EncodeWord("hello") {
		t.Errorf("unexpected entries: %+v", entries)
	}
}

func TestWordsCmd_ExportUnknownFormatFails(t *testing.T) {
	dict := testutil.WriteDict(t, "hello")

	if _, err := execute(t, nil, "--paths-dict-path", dict, "words", "export", "--format", "csv"); err == nil {
		t.Fatal("expected error for unknown export format")
	}
}

func TestDecodeCmd_RoundTrip(t *testing.T) {
	dict := testutil.WriteDict(t, "hello", "world")

	encoded := translit.EncodeText("hello world! xyzzy")
	out, err := execute(t, nil, "--paths-dict-path", dict, "decode", encoded)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	want := "Hello world! " + translit.Capitalize(translit.EncodeWord("xyzzy")) + "\n"
	if out != want {
		t.Errorf("decode output = %+q, want %+q", out, want)
	}
}

func TestDecodeCmd_SeedFlag(t *testing.T) {
	dict := testutil.MissingDict(t)

	out, err := execute(t, strings.NewReader(translit.EncodeWord("cursed")),
		"--paths-dict-path", dict, "--vocab-seed", "decode")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out != "Cursed\n" {
		t.Errorf("decode output = %+q, want %q", out, "Cursed\n")
	}
	if _, err := os.Stat(dict); err != nil {
		t.Errorf("seeding must create the dictionary file: %v", err)
	}
}

func TestDecodeCmd_InMemoryDictionary(t *testing.T) {
	t.Chdir(t.TempDir())

	encoded := translit.EncodeText("hello world")
	out, err := execute(t, nil, "--paths-dict-path=", "--vocab-seed", "decode", encoded)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out != "Hello world\n" {
		t.Errorf("decode output = %+q, want %q", out, "Hello world\n")
	}

	entries, err := os.ReadDir(".")
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("in-memory dictionary wrote files: %v", entries)
	}
}

func TestWordsCmd_InMemoryDictionary(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := execute(t, nil, "--paths-dict-path=", "words", "add", "hello")
	if err != nil {
		t.Fatalf("words add: %v\n%s", err, out)
	}
	if _, err := os.Stat("dict.txt"); !os.IsNotExist(err) {
		t.Errorf("in-memory add must not create the default dictionary: %v", err)
	}
}

func TestHealthCmd(t *testing.T) {
	srv := httptest.NewServer(server.NewHandler(nil, vocab.NewMemory(nil)))
	defer srv.Close()

	addr := strings.TrimPrefix(srv.URL, "http://")
	out, err := execute(t, nil, "health", "--addr", addr)
	if err != nil {
		t.Fatalf("health: %v", err)
	}
	if out != "ok\n" {
		t.Errorf("health output = %q", out)
	}
}

func TestHealthCmd_FailsWithoutServer(t *testing.T) {
	srv := httptest.NewServer(nil)
	addr := strings.TrimPrefix(srv.URL, "http://")
	srv.Close()

	if _, err := execute(t, nil, "health", "--addr", addr); err == nil {
		t.Fatal("expected error when nothing is listening")
	}
}

func TestBenchCmd_JSON(t *testing.T) {
	dict := testutil.WriteDict(t, "hello", "world")

	out, err := execute(t, nil, "--paths-dict-path", dict, "bench", "--runs", "2", "--format", "json", "--text", "hello world")
	if err != nil {
		t.Fatalf("bench: %v", err)
	}

	var report struct {
		Runs []struct {
			Cold  bool `json:"cold"`
			Words int  `json:"words"`
		} `json:"runs"`
	}
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("bench output is not JSON: %v\n%s", err, out)
	}
	if len(report.Runs) != 2 || !report.Runs[0].Cold || report.Runs[1].Cold {
		t.Fatalf("unexpected runs: %+v", report.Runs)
	}
	if report.Runs[0].Words != 4 {
		t.Errorf("want 4 words per run (2 encoded, 2 decoded), got %d", report.Runs[0].Words)
	}
}

func TestBenchCmd_RejectsBadFlags(t *testing.T) {
	dict := testutil.MissingDict(t)

	for _, args := range [][]string{
		{"bench", "--runs", "0"},
		{"bench", "--format", "xml"},
		{"bench", "--text", "  "},
	} {
		if _, err := execute(t, nil, append([]string{"--paths-dict-path", dict}, args...)...); err == nil {
			t.Errorf("expected error for %v", args)
		}
	}
}

func TestDoctorCmd(t *testing.T) {
	dict := testutil.WriteDict(t, "hello", "world")

	out, err := execute(t, nil, "--paths-dict-path", dict, "doctor")
	if err != nil {
		t.Fatalf("doctor: %v\n%s", err, out)
	}
	if !strings.Contains(out, "doctor checks passed") {
		t.Errorf("unexpected doctor output:\n%s", out)
	}
}

func TestDoctorCmd_EmptyDictionaryFails(t *testing.T) {
	dict := testutil.MissingDict(t)

	if _, err := execute(t, nil, "--paths-dict-path", dict, "doctor"); err == nil {
		t.Fatal("expected doctor to fail for an empty dictionary")
	}
}
