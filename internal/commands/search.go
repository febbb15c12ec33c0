package commands

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/NielsdaWheelz/seedsearch/internal/config"
	"github.com/NielsdaWheelz/seedsearch/internal/errors"
	"github.com/NielsdaWheelz/seedsearch/internal/events"
	"github.com/NielsdaWheelz/seedsearch/internal/exec"
	"github.com/NielsdaWheelz/seedsearch/internal/gamehome"
	"github.com/NielsdaWheelz/seedsearch/internal/render"
	"github.com/NielsdaWheelz/seedsearch/internal/search"
	"github.com/NielsdaWheelz/seedsearch/internal/transcript"
)

// SearchOpts holds options for the search command.
type SearchOpts struct {
	Overrides

	// SaveTranscript is an explicit path for the raw transcript.
	// It takes precedence over transcript_dir.
	SaveTranscript string
}

// Search implements the `seedsearch search` command.
// Runs SeedSearch from the game directory, parses its transcript, and
// renders the records. A transcript that fails to parse is always saved
// and its path reported in the error.
func Search(ctx context.Context, deps Deps, opts SearchOpts, stdout io.Writer) error {
	log := deps.logger()

	s, err := LoadSettings(deps.FS, opts.Overrides)
	if err != nil {
		return err
	}

	home, err := gamehome.Resolve(deps.FS, s.Home, gamehome.Overrides{Java: s.Java, ModTheSpire: s.ModTheSpire})
	if err != nil {
		return err
	}
	log = log.With(zap.String("home", home.Dir))
	warnSearchConfig(log, deps, home)

	hist := newHistory(log, deps, s)
	hist.record(events.SearchStarted, events.SearchStartedData(home.Dir,
		exec.CommandLine(home.Java, search.Args(home)), s.Timeout.Milliseconds()))

	out, err := runSearch(ctx, log, deps, s, home, opts.SaveTranscript)
	code := errors.GetCode(err)
	if err != nil && code == "" {
		code = errors.EInternal
	}
	hist.record(events.SearchFinished, events.SearchFinishedData(out.duration.Milliseconds(),
		len(out.result.Records), out.saved, string(code)))
	if err != nil {
		return err
	}

	return render.Write(stdout, s.Format, out.result)
}

// searchOutcome is what a finished search produced, successful or not.
type searchOutcome struct {
	result   transcript.Result
	saved    string
	duration time.Duration
}

func runSearch(ctx context.Context, log *zap.Logger, deps Deps, s Settings, home gamehome.Home, explicit string) (searchOutcome, error) {
	var out searchOutcome

	log.Info("launching SeedSearch", zap.String("java", home.Java), zap.Duration("timeout", s.Timeout))
	capture, err := search.Launch(ctx, deps.Runner, home, search.Opts{Timeout: s.Timeout, Encoding: s.Encoding})
	if err != nil {
		return out, err
	}
	out.duration = capture.Duration
	log.Info("SeedSearch finished",
		zap.Duration("duration", capture.Duration),
		zap.Int("stdout_bytes", len(capture.Transcript)))

	if path := transcriptPath(deps, s, explicit); path != "" {
		if err := saveTranscript(deps.FS, path, capture.Transcript); err != nil {
			return out, err
		}
		out.saved = path
		log.Info("saved transcript", zap.String("path", path))
	}

	res, err := transcript.ParseTranscript(capture.Transcript)
	if err != nil {
		if out.saved == "" {
			path := filepath.Join(deps.tempDir(), transcriptName(deps.now()))
			if saveErr := saveTranscript(deps.FS, path, capture.Transcript); saveErr != nil {
				log.Warn("failed to save transcript", zap.Error(saveErr))
			} else {
				out.saved = path
			}
		}
		log.Error("transcript did not parse", zap.String("transcript", out.saved))
		return out, annotateParseError(err, out.saved)
	}
	log.Info("parsed transcript", zap.Int("records", len(res.Records)))

	out.result = res
	return out, nil
}

// history appends search events to events.jsonl in the transcript
// directory. It is a no-op when no transcript directory is configured.
type history struct {
	log   *zap.Logger
	now   func() time.Time
	runID string
	path  string
}

func newHistory(log *zap.Logger, deps Deps, s Settings) history {
	h := history{log: log, now: deps.now, runID: events.NewRunID()}
	if s.TranscriptDir != "" {
		h.path = filepath.Join(s.TranscriptDir, events.FileName)
	}
	return h
}

func (h history) record(name string, data map[string]any) {
	if h.path == "" {
		return
	}
	if err := events.AppendEvent(h.path, events.New(h.now(), h.runID, name, data)); err != nil {
		h.log.Warn("failed to append search event", zap.String("path", h.path), zap.Error(err))
	}
}

// transcriptPath returns where the raw transcript should be kept, or "".
func transcriptPath(deps Deps, s Settings, explicit string) string {
	if explicit != "" {
		return explicit
	}
	if s.TranscriptDir != "" {
		return filepath.Join(s.TranscriptDir, transcriptName(deps.now()))
	}
	return ""
}

// warnSearchConfig logs searchConfig.json problems that will make the
// transcript unparseable. It never fails the search.
func warnSearchConfig(log *zap.Logger, deps Deps, home gamehome.Home) {
	cfg, err := config.LoadSearchConfig(deps.FS, home.SearchConfigPath())
	if err != nil {
		log.Warn("cannot check searchConfig.json", zap.Error(err))
		return
	}
	log.Debug("search range",
		zap.Int64("start_seed", cfg.StartSeed),
		zap.Int64("end_seed", cfg.EndSeed),
		zap.String("player_class", cfg.PlayerClass))
	if missing := config.MissingFlags(cfg); len(missing) > 0 {
		log.Warn("searchConfig.json flags are off; the transcript will lack sections",
			zap.String("flags", strings.Join(missing, ", ")))
	}
}
