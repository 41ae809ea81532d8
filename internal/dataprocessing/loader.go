package dataprocessing

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"

	"offerfeat/internal/errors"
	"offerfeat/pkg/contracts/domain"
)

// maxLineSize bounds a single newline-delimited record
const maxLineSize = 1 << 20

// Dataset holds the three raw inputs of a run
type Dataset struct {
	Offers     []domain.Offer
	Profiles   []domain.Profile
	Transcript []domain.TranscriptEvent
}

// Loader reads newline-delimited JSON datasets
type Loader struct {
	validate *validator.Validate
	logger   *slog.Logger
}

// NewLoader creates a new dataset loader
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

// LoadAll reads the portfolio, profile and transcript files concurrently.
// Any malformed or invalid record fails the whole load; nothing partial is
// returned.
func (l *Loader) LoadAll(ctx context.Context, portfolioPath, profilePath, transcriptPath string) (*Dataset, error) {
	ds := &Dataset{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		offers, err := readRecords[domain.Offer](gctx, l.validate, portfolioPath)
		ds.Offers = offers
		return err
	})
	g.Go(func() error {
		profiles, err := readRecords[domain.Profile](gctx, l.validate, profilePath)
		ds.Profiles = profiles
		return err
	})
	g.Go(func() error {
		events, err := readRecords[domain.TranscriptEvent](gctx, l.validate, transcriptPath)
		ds.Transcript = events
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	l.logger.InfoContext(ctx, "datasets loaded",
		slog.Int("offers", len(ds.Offers)),
		slog.Int("profiles", len(ds.Profiles)),
		slog.Int("events", len(ds.Transcript)))

	return ds, nil
}

// readRecords decodes one JSON object per line. Blank lines are skipped.
func readRecords[T any](ctx context.Context, validate *validator.Validate, path string) ([]T, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.NewParsingError(fmt.Sprintf("open %s", path), err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var records []T
	line := 0
	for scanner.Scan() {
		line++
		if line%10000 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}

		var rec T
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, errors.NewParsingError(fmt.Sprintf("%s line %d", path, line), err).
				WithContext("line", line)
		}
		if err := validate.Struct(rec); err != nil {
			return nil, errors.NewAppValidationError(fmt.Sprintf("%s line %d", path, line), err).
				WithContext("line", line)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.NewParsingError(fmt.Sprintf("read %s", path), err)
	}

	return records, nil
}
