package launcher

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func sampleRequest(root string) Request {
	return Request{
		OutputPath: filepath.Join(root, "out", "run.py"),
		MainClass:  "com.example.Main",
		Classpath: []string{
			filepath.Join(root, "out", "libs", "a.jar"),
			filepath.Join(root, "out", "libs", "b.jar"),
		},
		Interpreter: filepath.Join(root, "jdk", "bin", "java"),
		ProgramArgs: []string{"--verbose"},
	}
}

func TestRenderEmbedsRelativeLiterals(t *testing.T) {
	script, err := Render(sampleRequest(t.TempDir()))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	content := string(script.Content)

	for _, want := range []string{
		"#!/usr/bin/env python3\n",
		`classpath = ["libs/a.jar","libs/b.jar"]`,
		`extra_program_args = ["--verbose"]`,
		`java_path = "../jdk/bin/java"`,
		`main_class = "com.example.Main"`,
		"os.execvp(java_cmd[0], java_cmd)",
	} {
		if !strings.Contains(content, want) {
			t.Fatalf("expected %q in launcher:\n%s", want, content)
		}
	}
	if script.Mode != ScriptMode {
		t.Fatalf("unexpected mode %o", script.Mode)
	}
}

func TestRenderPreservesClasspathOrderAndDuplicates(t *testing.T) {
	root := t.TempDir()
	req := sampleRequest(root)
	req.Classpath = []string{
		filepath.Join(root, "out", "c.jar"),
		filepath.Join(root, "out", "a.jar"),
		filepath.Join(root, "out", "c.jar"),
	}
	script, err := Render(req)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(string(script.Content), `classpath = ["c.jar","a.jar","c.jar"]`) {
		t.Fatalf("classpath order not preserved:\n%s", script.Content)
	}
}

func TestRenderEscapesSpecialCharacters(t *testing.T) {
	root := t.TempDir()
	req := sampleRequest(root)
	req.Classpath = []string{filepath.Join(root, "out", "my libs", `q"uote.jar`)}
	req.ProgramArgs = []string{`it's "quoted" $HOME`, "line\nbreak"}

	script, err := Render(req)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	content := string(script.Content)
	if !strings.Contains(content, `classpath = ["my libs/q\"uote.jar"]`) {
		t.Fatalf("classpath not escaped:\n%s", content)
	}
	if !strings.Contains(content, `extra_program_args = ["it's \"quoted\" $HOME","line\nbreak"]`) {
		t.Fatalf("program args not escaped:\n%s", content)
	}
}

func TestRenderEmptyListsAreLiterals(t *testing.T) {
	req := sampleRequest(t.TempDir())
	req.Classpath = nil
	req.ProgramArgs = nil

	script, err := Render(req)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	content := string(script.Content)
	if !strings.Contains(content, "classpath = []\n") || !strings.Contains(content, "extra_program_args = []\n") {
		t.Fatalf("expected empty list literals:\n%s", content)
	}
	if strings.Contains(content, "null") {
		t.Fatalf("unexpected null literal:\n%s", content)
	}
}

func TestRenderDirectives(t *testing.T) {
	root := t.TempDir()

	plain, err := Render(sampleRequest(root))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if bytes.Contains(plain.Content, []byte("noverify")) || bytes.Contains(plain.Content, []byte("TieredStopAtLevel")) {
		t.Fatalf("unexpected directive text without flags:\n%s", plain.Content)
	}
	if !bytes.Contains(plain.Content, []byte("jar_arguments = unknown_args\njava_cmd.extend(['-classpath'")) {
		t.Fatalf("expected no placeholder between argument parsing and command:\n%s", plain.Content)
	}

	req := sampleRequest(root)
	req.Directives = []Directive{DirectiveTieredStopAtLevelOne, DirectiveNoVerify}
	flagged, err := Render(req)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := "jar_arguments = unknown_args\n" +
		"java_cmd.append(\"-noverify\")\n" +
		"java_cmd.append(\"-XX:TieredStopAtLevel=1\")\n" +
		"java_cmd.extend(['-classpath'"
	if !strings.Contains(string(flagged.Content), want) {
		t.Fatalf("expected ordered directives:\n%s", flagged.Content)
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	req := sampleRequest(t.TempDir())
	req.Directives = []Directive{DirectiveNoVerify}

	first, err := Render(req)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	second, err := Render(req)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !bytes.Equal(first.Content, second.Content) {
		t.Fatalf("render output differs between runs")
	}
}

func TestRenderKeepsBareInterpreter(t *testing.T) {
	req := sampleRequest(t.TempDir())
	req.Interpreter = "java"
	script, err := Render(req)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(string(script.Content), `java_path = "java"`) {
		t.Fatalf("bare interpreter rewritten:\n%s", script.Content)
	}
}

func TestRenderKeepsSeparatorForInterpreterBesideScript(t *testing.T) {
	root := t.TempDir()
	req := sampleRequest(root)
	req.Interpreter = filepath.Join(root, "out", "java")
	script, err := Render(req)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(string(script.Content), `java_path = "./java"`) {
		t.Fatalf("interpreter beside script lost its separator:\n%s", script.Content)
	}
}

func TestRenderPrintsClasspathBeforeRuntimeEntry(t *testing.T) {
	script, err := Render(sampleRequest(t.TempDir()))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	content := string(script.Content)
	printAt := strings.Index(content, "if known_args.print_classpath:")
	appendAt := strings.Index(content, "classpath.append(known_args.classpath)")
	if printAt < 0 || appendAt < 0 || printAt > appendAt {
		t.Fatalf("--print-classpath must be handled before the run-time entry is appended:\n%s", content)
	}
}

func TestRenderRejectsMissingMainClass(t *testing.T) {
	req := sampleRequest(t.TempDir())
	req.MainClass = ""
	if _, err := Render(req); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}
