package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/strogo/wok/pkg/testsupport"
)

func TestRunBuildsPages(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(root, "templates", "default.html"), "<h1>{{title}}</h1>{{content}}")
	src := filepath.Join(root, "hello.txt")
	testsupport.WriteFile(t, src, "title: Hello\nslug: hello\n---\nHi there")
	out := filepath.Join(root, "out")

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{
		"--template-dir", filepath.Join(root, "templates"),
		"-o", out,
		"-q",
		src,
	}, &stdout, &stderr)
	if code != exitOK {
		t.Fatalf("expected exit 0, got %d: %s", code, stderr.String())
	}

	if got := testsupport.LoadFixture(t, filepath.Join(out, "hello.html")); got != "<h1>Hello</h1>Hi there" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestRunConfigFileAndFlagOverride(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(root, "tpl", "default.html"), "{{ site.title }}:{{ content }}")
	cfgPath := filepath.Join(root, "wok.yaml")
	testsupport.WriteFile(t, cfgPath, "template_dir: "+filepath.Join(root, "tpl")+"\nsite_title: FromFile\noutput_dir: "+filepath.Join(root, "ignored")+"\n")
	src := filepath.Join(root, "a.txt")
	testsupport.WriteFile(t, src, "slug: a\n---\nx")
	out := filepath.Join(root, "out")

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-c", cfgPath, "-o", out, src}, &stdout, &stderr)
	if code != exitOK {
		t.Fatalf("expected exit 0, got %d: %s", code, stderr.String())
	}
	if got := testsupport.LoadFixture(t, filepath.Join(out, "a.html")); got != "FromFile:x" {
		t.Fatalf("unexpected output %q", got)
	}
	if !strings.Contains(stdout.String(), "a.html") {
		t.Fatalf("expected progress line, got %q", stdout.String())
	}
}

func TestRunReportsBuildFailure(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(root, "templates", "default.html"), "{{ content }}")
	src := filepath.Join(root, "bad.txt")
	testsupport.WriteFile(t, src, "author: nobody\n---\nbody")

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-t", filepath.Join(root, "templates"), "-o", root, src}, &stdout, &stderr)
	if code != exitBuild {
		t.Fatalf("expected exit %d, got %d", exitBuild, code)
	}
	if !strings.Contains(stderr.String(), "bad.txt") {
		t.Fatalf("expected failing path in stderr, got %q", stderr.String())
	}
}

func TestRunRequiresFiles(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run(context.Background(), nil, &stdout, &stderr); code != exitUsage {
		t.Fatalf("expected usage exit, got %d", code)
	}
}
