package commands

import (
	"context"
	"io"
	"os"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/NielsdaWheelz/seedsearch/internal/errors"
	"github.com/NielsdaWheelz/seedsearch/internal/render"
	"github.com/NielsdaWheelz/seedsearch/internal/search"
	"github.com/NielsdaWheelz/seedsearch/internal/transcript"
)

// StdinPath selects standard input as the transcript source.
const StdinPath = "-"

// maxParallelParse bounds how many transcripts are decoded at once.
const maxParallelParse = 4

// ParseOpts holds options for the parse command.
type ParseOpts struct {
	Overrides

	// Paths are saved transcripts. StdinPath may appear at most once.
	Paths []string
}

// Parse implements the `seedsearch parse` command.
// Decodes saved transcripts without launching the game and renders their
// records in argument order as a single result.
func Parse(ctx context.Context, deps Deps, opts ParseOpts, stdin io.Reader, stdout io.Writer) error {
	log := deps.logger()

	s, err := LoadSettings(deps.FS, opts.Overrides)
	if err != nil {
		return err
	}
	if err := checkPaths(opts.Paths); err != nil {
		return err
	}

	results := make([]transcript.Result, len(opts.Paths))
	errs := make([]error, len(opts.Paths))

	// Every file is parsed even after a failure; the earliest failing
	// argument is the one reported.
	var g errgroup.Group
	g.SetLimit(maxParallelParse)
	for i, path := range opts.Paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return err
			}
			res, err := parseOne(deps, path, s.Encoding, stdin)
			if err != nil {
				errs[i] = err
				return err
			}
			log.Debug("parsed transcript", zap.String("path", path), zap.Int("records", len(res.Records)))
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		for _, e := range errs {
			if e != nil {
				return e
			}
		}
		return err
	}

	res := mergeResults(results)
	log.Info("parsed transcripts", zap.Int("files", len(opts.Paths)), zap.Int("records", len(res.Records)))
	return render.Write(stdout, s.Format, res)
}

func checkPaths(paths []string) error {
	if len(paths) == 0 {
		return errors.New(errors.EUsage, "transcript path is required (use - for stdin)")
	}
	stdin := 0
	for _, p := range paths {
		switch p {
		case "":
			return errors.New(errors.EUsage, "transcript path must not be empty")
		case StdinPath:
			stdin++
		}
	}
	if stdin > 1 {
		return errors.New(errors.EUsage, "standard input (-) may be given only once")
	}
	return nil
}

// parseOne reads, decodes, and parses a single transcript.
func parseOne(deps Deps, path, encoding string, stdin io.Reader) (transcript.Result, error) {
	raw, err := readTranscript(deps, path, stdin)
	if err != nil {
		return transcript.Result{}, err
	}

	named := ""
	if path != StdinPath {
		named = path
	}

	text, err := search.Decode(string(raw), encoding)
	if err != nil {
		if named != "" {
			err = errors.WithDetail(err, "path", named)
		}
		return transcript.Result{}, err
	}

	res, err := transcript.ParseTranscript(text)
	if err != nil {
		return transcript.Result{}, annotateParseError(err, named)
	}
	return res, nil
}

// mergeResults concatenates records in order. A single result is returned
// as is; otherwise summaries present are combined by summing their counts.
func mergeResults(results []transcript.Result) transcript.Result {
	if len(results) == 1 {
		return results[0]
	}

	var merged transcript.Result
	merged.Records = []transcript.Record{}
	var summary *transcript.Summary
	total := 0
	for _, r := range results {
		merged.Records = append(merged.Records, r.Records...)
		if r.Summary == nil {
			continue
		}
		if summary == nil {
			summary = &transcript.Summary{Seeds: []string{}}
		}
		n, _ := strconv.Atoi(r.Summary.Count)
		total += n
		summary.Seeds = append(summary.Seeds, r.Summary.Seeds...)
	}
	if summary != nil {
		summary.Count = strconv.Itoa(total)
		merged.Summary = summary
	}
	return merged
}

func readTranscript(deps Deps, path string, stdin io.Reader) ([]byte, error) {
	if path == StdinPath {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, errors.Wrap(errors.EReadFailed, "failed to read transcript from stdin", err)
		}
		return data, nil
	}

	data, err := deps.FS.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewWithDetails(errors.EReadFailed, "transcript not found: "+path,
				map[string]string{"path": path})
		}
		return nil, errors.WrapWithDetails(errors.EReadFailed, "failed to read transcript", err,
			map[string]string{"path": path})
	}
	return data, nil
}
