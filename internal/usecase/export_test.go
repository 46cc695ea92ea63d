package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/pkg/i18n"

	"github.com/google/uuid"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// fakeRenderer returns queued results in order, repeating the last one.
type fakeRenderer struct {
	mu      sync.Mutex
	results [][]byte
	errs    []error
	calls   int
}

func (f *fakeRenderer) RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.calls
	if i >= len(f.results) {
		i = len(f.results) - 1
	}
	f.calls++
	return f.results[i], f.errs[i]
}

type fakeNotifier struct {
	mu     sync.Mutex
	events []string
}

func (f *fakeNotifier) Notify(level, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, level)
}

func (f *fakeNotifier) snapshot() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string{}, f.events...)
}

func newTestExporter(r PDFRenderer, n Notifier) *Exporter {
	e := NewExporter(r, n, "", zerolog.Nop())
	e.backoff = func(int) time.Duration { return time.Millisecond }
	return e
}

func exportableResume() model.Resume {
	r := model.DefaultResume()
	r.PersonalInfo.Name = "Jane Doe"
	r.PersonalInfo.JobTitle = "Engineer"
	return r
}

var pdfBytes = []byte("%PDF-1.4 fake")

func TestExportProducesArtifactAndFileName(t *testing.T) {
	renderer := &fakeRenderer{results: [][]byte{pdfBytes}, errs: []error{nil}}
	e := newTestExporter(renderer, nil)

	pdf, name, err := e.Export(context.Background(), exportableResume(), i18n.New("en"))
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if string(pdf) != string(pdfBytes) {
		t.Errorf("unexpected pdf bytes")
	}
	if name != "Jane_Doe_Resume.pdf" {
		t.Errorf("file name = %q", name)
	}
	if renderer.calls != 1 {
		t.Errorf("renderer calls = %d, want 1", renderer.calls)
	}
}

func TestExportFileName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Jane Doe", "Jane_Doe_Resume.pdf"},
		{"  Jane   van  Doe ", "Jane_van_Doe_Resume.pdf"},
		{"Jane", "Jane_Resume.pdf"},
	}
	for _, tt := range tests {
		if got := ExportFileName(tt.in); got != tt.want {
			t.Errorf("ExportFileName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExportEmptyNameFails(t *testing.T) {
	renderer := &fakeRenderer{results: [][]byte{pdfBytes}, errs: []error{nil}}
	e := newTestExporter(renderer, nil)

	r := exportableResume()
	r.PersonalInfo.Name = "   "
	pdf, _, err := e.Export(context.Background(), r, i18n.New("en"))
	if !errors.Is(err, ErrNameRequired) {
		t.Fatalf("err = %v, want ErrNameRequired", err)
	}
	if pdf != nil {
		t.Error("pdf produced despite failure")
	}
	if renderer.calls != 0 {
		t.Error("renderer invoked despite missing name")
	}
}

func TestExportRetriesInvalidOutput(t *testing.T) {
	renderer := &fakeRenderer{
		results: [][]byte{[]byte("not a pdf"), nil, pdfBytes},
		errs:    []error{nil, errors.New("chrome crashed"), nil},
	}
	e := newTestExporter(renderer, nil)

	pdf, _, err := e.Export(context.Background(), exportableResume(), i18n.New("en"))
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if string(pdf) != string(pdfBytes) {
		t.Error("retry did not return the valid output")
	}
	if renderer.calls != 3 {
		t.Errorf("renderer calls = %d, want 3", renderer.calls)
	}
}

func TestExportGivesUpAfterAttempts(t *testing.T) {
	renderer := &fakeRenderer{results: [][]byte{nil}, errs: []error{errors.New("no chrome")}}
	e := newTestExporter(renderer, nil)

	_, _, err := e.Export(context.Background(), exportableResume(), i18n.New("en"))
	if err == nil {
		t.Fatal("expected error")
	}
	if renderer.calls != renderAttempts {
		t.Errorf("renderer calls = %d, want %d", renderer.calls, renderAttempts)
	}
}

func waitForTerminal(t *testing.T, e *Exporter, id uuid.UUID) domain.ExportJob {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if job, ok := e.Job(id); ok && job.Status != domain.ExportPending {
			return job
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("export job never reached a terminal state")
	return domain.ExportJob{}
}

func TestStartExportCompletes(t *testing.T) {
	renderer := &fakeRenderer{results: [][]byte{pdfBytes}, errs: []error{nil}}
	notifier := &fakeNotifier{}
	e := newTestExporter(renderer, notifier)

	job := e.StartExport(exportableResume(), "en")
	if job.Status != domain.ExportPending {
		t.Errorf("initial status = %q, want pending", job.Status)
	}

	done := waitForTerminal(t, e, job.ID)
	if done.Status != domain.ExportCompleted {
		t.Fatalf("status = %q (%s)", done.Status, done.Error)
	}
	if done.FileName != "Jane_Doe_Resume.pdf" {
		t.Errorf("file name = %q", done.FileName)
	}
	if len(done.PDF) == 0 {
		t.Error("completed job has no artifact")
	}
	if got := notifier.snapshot(); len(got) != 1 || got[0] != "success" {
		t.Errorf("notifications = %v, want one success", got)
	}
}

func TestStartExportFailureSurfacedOnce(t *testing.T) {
	renderer := &fakeRenderer{results: [][]byte{nil}, errs: []error{errors.New("no chrome")}}
	notifier := &fakeNotifier{}
	e := newTestExporter(renderer, notifier)

	job := e.StartExport(exportableResume(), "en")
	done := waitForTerminal(t, e, job.ID)
	if done.Status != domain.ExportFailed {
		t.Fatalf("status = %q, want failed", done.Status)
	}
	if done.Error == "" {
		t.Error("failed job carries no error message")
	}
	if len(done.PDF) != 0 {
		t.Error("failed job carries an artifact")
	}
	if got := notifier.snapshot(); len(got) != 1 || got[0] != "error" {
		t.Errorf("notifications = %v, want one error", got)
	}
}

func TestConcurrentExportsAreIndependent(t *testing.T) {
	renderer := &fakeRenderer{results: [][]byte{pdfBytes}, errs: []error{nil}}
	e := newTestExporter(renderer, nil)

	first := e.StartExport(exportableResume(), "en")
	second := e.StartExport(exportableResume(), "en")
	if first.ID == second.ID {
		t.Fatal("two exports share a job id")
	}
	for _, id := range []uuid.UUID{first.ID, second.ID} {
		if job := waitForTerminal(t, e, id); job.Status != domain.ExportCompleted {
			t.Errorf("job %v status = %q", id, job.Status)
		}
	}
}
