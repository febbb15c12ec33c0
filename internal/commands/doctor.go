package commands

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/NielsdaWheelz/seedsearch/internal/config"
	"github.com/NielsdaWheelz/seedsearch/internal/errors"
	"github.com/NielsdaWheelz/seedsearch/internal/exec"
	"github.com/NielsdaWheelz/seedsearch/internal/gamehome"
)

// javaVersionTimeout bounds `java -version`.
const javaVersionTimeout = 30 * time.Second

// DoctorReport holds all the data for doctor output.
type DoctorReport struct {
	// User config
	UserConfigPath  string
	UserConfigFound bool

	// Installation
	Home        string
	Java        string
	JavaVersion string
	ModTheSpire string

	// searchConfig.json
	SearchConfigPath string
	PlayerClass      string
	StartSeed        int64
	EndSeed          int64
	MissingFlags     []string
}

// DoctorOpts holds options for the doctor command.
type DoctorOpts struct {
	Overrides
}

// Doctor implements the `seedsearch doctor` command.
// Validates the game directory, java, ModTheSpire, and searchConfig.json.
// Flags that are off but needed for a parseable transcript are reported
// as warnings, not errors.
func Doctor(ctx context.Context, deps Deps, opts DoctorOpts, stdout io.Writer) error {
	s, err := LoadSettings(deps.FS, opts.Overrides)
	if err != nil {
		return err
	}

	home, err := gamehome.Resolve(deps.FS, s.Home, gamehome.Overrides{Java: s.Java, ModTheSpire: s.ModTheSpire})
	if err != nil {
		return err
	}

	javaVersion, err := checkJava(ctx, deps.Runner, home)
	if err != nil {
		return err
	}

	cfg, err := config.LoadSearchConfig(deps.FS, home.SearchConfigPath())
	if err != nil {
		return err
	}

	report := DoctorReport{
		UserConfigPath:   s.ConfigPath,
		UserConfigFound:  s.ConfigFound,
		Home:             home.Dir,
		Java:             home.Java,
		JavaVersion:      javaVersion,
		ModTheSpire:      home.ModTheSpire,
		SearchConfigPath: home.SearchConfigPath(),
		PlayerClass:      cfg.PlayerClass,
		StartSeed:        cfg.StartSeed,
		EndSeed:          cfg.EndSeed,
		MissingFlags:     config.MissingFlags(cfg),
	}

	writeDoctorOutput(stdout, report)
	return nil
}

// checkJava runs `java -version` and returns the first line it prints.
// java writes the version to stderr.
func checkJava(ctx context.Context, cr exec.CommandRunner, home gamehome.Home) (string, error) {
	result, err := cr.Run(ctx, home.Java, []string{"-version"}, exec.RunOpts{Dir: home.Dir, Timeout: javaVersionTimeout})
	if err != nil {
		return "", errors.WrapWithDetails(errors.EInvalidJava, "java could not be started", err,
			map[string]string{"path": home.Java})
	}
	if result.ExitCode != 0 || result.TimedOut {
		return "", errors.NewWithDetails(errors.EInvalidJava, "java -version failed",
			map[string]string{"path": home.Java, "exit_code": fmt.Sprintf("%d", result.ExitCode)})
	}
	out := result.Stderr
	if strings.TrimSpace(out) == "" {
		out = result.Stdout
	}
	line, _, _ := strings.Cut(strings.TrimSpace(out), "\n")
	return strings.TrimSpace(line), nil
}

// writeDoctorOutput writes the stable key: value output.
// All writes use explicit error ignoring since this is informational output
// where write failures cannot be meaningfully handled.
func writeDoctorOutput(w io.Writer, r DoctorReport) {
	_, _ = fmt.Fprintf(w, "user_config_path: %s\n", r.UserConfigPath)
	_, _ = fmt.Fprintf(w, "user_config_found: %s\n", boolStr(r.UserConfigFound))

	_, _ = fmt.Fprintf(w, "home: %s\n", r.Home)
	_, _ = fmt.Fprintf(w, "java: %s\n", r.Java)
	_, _ = fmt.Fprintf(w, "java_version: %s\n", r.JavaVersion)
	_, _ = fmt.Fprintf(w, "mod_the_spire: %s\n", r.ModTheSpire)

	_, _ = fmt.Fprintf(w, "search_config: %s\n", r.SearchConfigPath)
	_, _ = fmt.Fprintf(w, "player_class: %s\n", r.PlayerClass)
	_, _ = fmt.Fprintf(w, "seed_range: %d..%d\n", r.StartSeed, r.EndSeed)

	if len(r.MissingFlags) == 0 {
		_, _ = fmt.Fprintln(w, "missing_flags: none")
		_, _ = fmt.Fprintln(w, "status: ok")
		return
	}
	_, _ = fmt.Fprintf(w, "missing_flags: %s\n", strings.Join(r.MissingFlags, ", "))
	_, _ = fmt.Fprintln(w, "status: warn (enable the missing flags in searchConfig.json)")
}

func boolStr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
