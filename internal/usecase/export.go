package usecase

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/internal/render"
	"resume-builder/pkg/i18n"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// PDFRenderer converts prepared HTML into a fixed-page PDF.
type PDFRenderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// Notifier is the transient user-facing channel for export outcomes.
// Each export emits exactly one completion or failure notification.
type Notifier interface {
	Notify(level, message string)
}

// ErrNameRequired marks an export attempted with an empty name. The
// model is left untouched and no file is produced.
var ErrNameRequired = errors.New("name is required for export")

const (
	renderAttempts = 3
	exportTimeout  = 2 * time.Minute
)

// Exporter runs document exports as independent background jobs. A
// second request while one is in flight simply starts another job.
type Exporter struct {
	renderer PDFRenderer
	notifier Notifier
	dataDir  string
	log      zerolog.Logger

	mu   sync.Mutex
	jobs map[uuid.UUID]*domain.ExportJob

	// backoff between render attempts, overridable in tests
	backoff func(attempt int) time.Duration
}

func NewExporter(renderer PDFRenderer, notifier Notifier, dataDir string, log zerolog.Logger) *Exporter {
	return &Exporter{
		renderer: renderer,
		notifier: notifier,
		dataDir:  dataDir,
		log:      log.With().Str("component", "exporter").Logger(),
		jobs:     map[uuid.UUID]*domain.ExportJob{},
		backoff: func(attempt int) time.Duration {
			return time.Duration(1<<attempt) * time.Second
		},
	}
}

// ExportFileName derives the artifact name from the person's name with
// whitespace collapsed to underscores.
func ExportFileName(name string) string {
	return strings.Join(strings.Fields(name), "_") + "_Resume.pdf"
}

// Export produces the PDF synchronously. It shares the render core with
// the live preview, so section selection, dates, palette and the
// scannable code cannot diverge between the two paths.
func (e *Exporter) Export(ctx context.Context, r model.Resume, tr *i18n.Translator) ([]byte, string, error) {
	if strings.TrimSpace(r.PersonalInfo.Name) == "" {
		return nil, "", ErrNameRequired
	}

	doc, err := render.BuildDocument(r, tr)
	if err != nil {
		return nil, "", errors.Wrap(err, "building document")
	}
	html, err := render.RenderHTML(doc, true)
	if err != nil {
		return nil, "", errors.Wrap(err, "rendering html")
	}

	var pdf []byte
	var renderErr error
	for i := 0; i < renderAttempts; i++ {
		pdf, renderErr = e.renderer.RenderHTMLToPDF(ctx, html)
		if renderErr == nil {
			if len(pdf) > 0 && strings.HasPrefix(string(pdf), "%PDF") {
				break
			}
			renderErr = errors.Errorf("invalid PDF output (len=%d)", len(pdf))
		}
		e.log.Warn().Err(renderErr).Int("attempt", i+1).Msg("render attempt failed")
		if i < renderAttempts-1 {
			select {
			case <-time.After(e.backoff(i)):
			case <-ctx.Done():
				return nil, "", ctx.Err()
			}
		}
	}
	if renderErr != nil {
		return nil, "", errors.Wrapf(renderErr, "rendering failed after %d attempts", renderAttempts)
	}

	return pdf, ExportFileName(r.PersonalInfo.Name), nil
}

// StartExport spawns a background export and returns the tracking job
// immediately. The job reaches a terminal state exactly once.
func (e *Exporter) StartExport(r model.Resume, lang string) *domain.ExportJob {
	now := time.Now()
	job := &domain.ExportJob{
		ID:        uuid.New(),
		Status:    domain.ExportPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	e.mu.Lock()
	e.jobs[job.ID] = job
	e.mu.Unlock()

	go e.run(job.ID, r, lang)

	return e.snapshotJob(job.ID)
}

func (e *Exporter) run(id uuid.UUID, r model.Resume, lang string) {
	ctx, cancel := context.WithTimeout(context.Background(), exportTimeout)
	defer cancel()

	tr := i18n.New(lang)
	pdf, fileName, err := e.Export(ctx, r, tr)
	if err != nil {
		e.log.Error().Err(err).Str("job", id.String()).Msg("export failed")
		e.finish(id, func(j *domain.ExportJob) {
			j.Status = domain.ExportFailed
			j.Error = err.Error()
		})
		e.notify("error", tr.T("export.error"))
		return
	}

	// keep a copy on disk next to the snapshot data; the download
	// endpoint serves the in-memory bytes
	if e.dataDir != "" {
		genDir := filepath.Join(e.dataDir, "generated")
		if err := os.MkdirAll(genDir, 0o755); err == nil {
			if err := os.WriteFile(filepath.Join(genDir, fileName), pdf, 0o644); err != nil {
				e.log.Warn().Err(err).Msg("writing export artifact")
			}
		}
	}

	e.finish(id, func(j *domain.ExportJob) {
		j.Status = domain.ExportCompleted
		j.FileName = fileName
		j.PDF = pdf
	})
	e.notify("success", tr.T("export.success"))
}

func (e *Exporter) finish(id uuid.UUID, update func(*domain.ExportJob)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	job, ok := e.jobs[id]
	if !ok || job.Status != domain.ExportPending {
		return
	}
	update(job)
	job.UpdatedAt = time.Now()
}

func (e *Exporter) notify(level, message string) {
	if e.notifier != nil {
		e.notifier.Notify(level, message)
	}
}

// Job returns a copy of the tracked job.
func (e *Exporter) Job(id uuid.UUID) (domain.ExportJob, bool) {
	job := e.snapshotJob(id)
	if job == nil {
		return domain.ExportJob{}, false
	}
	return *job, true
}

func (e *Exporter) snapshotJob(id uuid.UUID) *domain.ExportJob {
	e.mu.Lock()
	defer e.mu.Unlock()
	job, ok := e.jobs[id]
	if !ok {
		return nil
	}
	copied := *job
	return &copied
}
