package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/talkvault/meetgest/internal/analyze"
	"github.com/talkvault/meetgest/internal/parser"
	"github.com/talkvault/meetgest/internal/redact"
)

// Worker processes a single transcript job.
type Worker struct {
	engine *analyze.Engine
	log    *slog.Logger
}

func NewWorker(engine *analyze.Engine, log *slog.Logger) *Worker {
	return &Worker{engine: engine, log: log}
}

// Process runs the full analysis pipeline for a job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "filename", job.Filename)

	if ctx.Err() != nil {
		job.AddError(ctx.Err().Error())
		job.SetStatus(StatusFailed, "cancelled")
		return
	}

	// Phase 1: Parse
	job.SetTotalStages(4)
	job.SetStatus(StatusParsing, "parsing")
	p, err := parser.ForFile(job.Filename)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "parsing")
		return
	}

	tr, err := p.Parse(bytes.NewReader(job.FileData()), job.Filename)
	if err != nil {
		log.Error("parse failed", "error", err)
		job.AddError(fmt.Sprintf("parse: %s", err))
		job.SetStatus(StatusFailed, "parsing")
		return
	}
	if job.Title == "" && tr.Title != "" {
		job.SetTitle(tr.Title)
	}
	text := tr.Text
	job.ContentHash = ContentHashHex([]byte(text))
	job.StageDone()

	if strings.TrimSpace(text) == "" {
		log.Warn("no extractable text")
		job.AddError("no extractable content")
		job.SetStatus(StatusFailed, "parsing")
		return
	}

	var res analyze.Result

	// Phase 2: Summarize
	job.SetStatus(StatusSummarizing, "summarizing")
	res.Summary = w.engine.Summarize(text, 0)
	job.StageDone()

	// Phase 3: Extract action items
	job.SetStatus(StatusExtracting, "extracting")
	res.ActionItems = w.engine.ExtractActions(text)
	job.StageDone()

	// Phase 4: Redact PII
	job.SetStatus(StatusRedacting, "redacting")
	res.Redacted = w.engine.Redact(text)
	res.RedactionStats = redact.GetStats(text, res.Redacted)
	job.StageDone()

	job.SetResult(&res)
	job.SetStatus(StatusCompleted, "done")
	log.Info("analysis complete",
		"action_items", len(res.ActionItems),
		"redactions", res.RedactionStats.TotalRedactions)
}
