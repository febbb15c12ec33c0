package commands

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/NielsdaWheelz/seedsearch/internal/exec"
	"github.com/NielsdaWheelz/seedsearch/internal/fs"
)

const sampleTranscript = "ModTheSpire 3.30.0\nSeed: ABC123 (42)\nNeow Options:\n[opt1][opt2][ Lose your starting Relic Obtain a random boss Relic ]\n" +
	"[enemy1,enemy2]\n[boss1]\nEvents:\n[event1]\nTrue map path:\n[node1,node2]\n" +
	"Card choices:\nFloor 1: [card1]\nPotions:\nFloor 2: [potion1]\nOther cards:\n" +
	"Raw common relic list:\n[rc1]\nRaw uncommon relic list:\n[ru1]\nRaw rare relic list:\n[rr1]\n" +
	"Raw boss relic list:\n[rb1]\nRaw shop relic list:\n[rs1]\n#####################################\n" +
	"1 seeds found:\n[ABC123]\n"

const allFlagsOn = `{
  "playerClass": "IRONCLAD",
  "startSeed": 0,
  "endSeed": 100,
  "verbose": true,
  "showNeowOptions": true,
  "showCombats": true,
  "showBosses": true,
  "showEvents": true,
  "showCardChoices": true,
  "showPotions": true,
  "showOtherCards": true,
  "showRawRelicPools": true
}`

var fixedNow = time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)

// install is a fake game installation on disk.
type install struct {
	Home        string
	Java        string
	ModTheSpire string
	ConfigPath  string
}

// overrides points every command at the fake installation.
func (in install) overrides() Overrides {
	return Overrides{
		ConfigPath:  in.ConfigPath,
		Home:        in.Home,
		Java:        in.Java,
		ModTheSpire: in.ModTheSpire,
		Env:         map[string]string{},
	}
}

// makeInstall creates a game dir with java, ModTheSpire.jar, an optional
// searchConfig.json, and an empty user config.
func makeInstall(t *testing.T, searchConfig string) install {
	t.Helper()
	root := t.TempDir()
	in := install{
		Home:        filepath.Join(root, "SlayTheSpire"),
		Java:        filepath.Join(root, "SlayTheSpire", "jre", "bin", "java"),
		ModTheSpire: filepath.Join(root, "workshop", "ModTheSpire.jar"),
		ConfigPath:  filepath.Join(root, "config", "config.yaml"),
	}
	writeTestFile(t, in.Java, "")
	writeTestFile(t, in.ModTheSpire, "")
	writeTestFile(t, in.ConfigPath, "")
	if searchConfig != "" {
		writeTestFile(t, filepath.Join(in.Home, "searchConfig.json"), searchConfig)
	}
	return in
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o755); err != nil {
		t.Fatal(err)
	}
}

func readTestFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

type runCall struct {
	name string
	args []string
	opts exec.RunOpts
}

// fakeRunner returns a canned result and records calls.
type fakeRunner struct {
	result exec.CmdResult
	err    error
	calls  []runCall
}

func (f *fakeRunner) Run(_ context.Context, name string, args []string, opts exec.RunOpts) (exec.CmdResult, error) {
	f.calls = append(f.calls, runCall{name: name, args: args, opts: opts})
	return f.result, f.err
}

func testDeps(t *testing.T, runner exec.CommandRunner) Deps {
	t.Helper()
	return Deps{
		Runner:  runner,
		FS:      fs.NewRealFS(),
		Now:     func() time.Time { return fixedNow },
		TempDir: t.TempDir(),
	}
}
