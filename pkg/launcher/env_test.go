package launcher_test

import (
	"fmt"
	"testing"

	"github.com/arch-ops/omega-launcher/pkg/launcher"
)

func TestBuildEnv_PassesThroughParent(t *testing.T) {
	parent := []string{
		"HOME=/home/me",
		"PATH=/usr/bin:/bin",
		"EMPTY=",
		"WITH_EQUALS=a=b=c",
		"UNICODE=ünïcødé",
	}

	env := launcher.BuildEnv(parent, "/opt/omega/src")

	want := map[string]string{
		"HOME":        "/home/me",
		"PATH":        "/usr/bin:/bin",
		"EMPTY":       "",
		"WITH_EQUALS": "a=b=c",
		"UNICODE":     "ünïcødé",
		"PYTHONPATH":  "/opt/omega/src",
	}
	if len(env) != len(want) {
		t.Fatalf("expected %d variables, got %d: %v", len(want), len(env), env)
	}
	for k, v := range want {
		got, ok := env[k]
		if !ok {
			t.Errorf("missing %s", k)
			continue
		}
		if got != v {
			t.Errorf("%s: expected %q, got %q", k, v, got)
		}
	}
}

func TestBuildEnv_OverridesModuleSearchPath(t *testing.T) {
	parent := []string{"PYTHONPATH=/somewhere/else:/and/more", "HOME=/home/me"}

	env := launcher.BuildEnv(parent, "/opt/omega/src")

	if env["PYTHONPATH"] != "/opt/omega/src" {
		t.Errorf("expected override, got %q", env["PYTHONPATH"])
	}
}

func TestBuildEnv_DoesNotMutateParent(t *testing.T) {
	parent := []string{"PYTHONPATH=/old", "HOME=/home/me"}
	before := fmt.Sprint(parent)

	launcher.BuildEnv(parent, "/new")

	if fmt.Sprint(parent) != before {
		t.Errorf("parent environment modified: %v", parent)
	}
}

func TestBuildEnv_IndependentCalls(t *testing.T) {
	parent := []string{"HOME=/home/me"}

	first := launcher.BuildEnv(parent, "/first")
	second := launcher.BuildEnv(parent, "/second")
	first["HOME"] = "/changed"

	if second["HOME"] != "/home/me" {
		t.Error("calls share state")
	}
	if second["PYTHONPATH"] != "/second" {
		t.Errorf("unexpected PYTHONPATH %q", second["PYTHONPATH"])
	}
}

func TestBuildEnv_SkipsMalformedEntries(t *testing.T) {
	env := launcher.BuildEnv([]string{"", "NOEQUALS", "=C:=C:\\dir"}, "/src")

	if _, ok := env["NOEQUALS"]; ok {
		t.Error("entry without '=' should be dropped")
	}
	if env["=C:"] != "C:\\dir" {
		t.Errorf("expected drive entry kept, got %v", env)
	}
	if len(env) != 2 {
		t.Errorf("expected 2 variables, got %v", env)
	}
}

func TestEnvToSlice_Sorted(t *testing.T) {
	got := launcher.EnvToSlice(map[string]string{"B": "2", "A": "1", "C": "x=y"})
	want := "[A=1 B=2 C=x=y]"
	if fmt.Sprint(got) != want {
		t.Errorf("expected %s, got %v", want, got)
	}
}
