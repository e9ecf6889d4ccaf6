package app

import (
	"context"
	"fmt"
	"log"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"edusight/domain/analysis"
	"edusight/domain/assessment"
	"edusight/domain/core"
	"edusight/internal/analyzer"
	"edusight/internal/ingest"
	"edusight/internal/interventions"
	"edusight/ports"
)

// AnalysisService orchestrates the batch pipeline: normalize each source,
// merge per student, then run classification, triangulation and intervention
// generation for every merged record.
type AnalysisService struct {
	normalizer  *ingest.Normalizer
	attitudinal *analyzer.Attitudinal
	cognitive   *analyzer.Cognitive
	academic    *analyzer.Academic
	comparator  *analyzer.Comparator
	engine      *interventions.Engine
	compound    *interventions.CompoundDetector
	repo        ports.SnapshotRepository
}

// BatchSources holds the raw rows of one upload. Any source may be nil; the
// pipeline carries absence through as available:false.
type BatchSources struct {
	Attitudinal []ingest.Row
	Cognitive   []ingest.Row
	Academic    []ingest.Row
}

// StudentFailure records one student whose transform failed. Failures are
// isolated: the rest of the batch proceeds.
type StudentFailure struct {
	StudentID core.StudentID `json:"student_id"`
	Reason    string         `json:"reason"`
}

// BatchResult is the outcome of one upload.
type BatchResult struct {
	BatchID      core.BatchID             `json:"batch_id"`
	ProcessedAt  core.Timestamp           `json:"processed_at"`
	Records      []analysis.AnalyzedRecord `json:"records"`
	Failures     []StudentFailure         `json:"failures,omitempty"`
	GradeSummary map[string]GradeSummary  `json:"grade_summary"`
	RuntimeMs    int64                    `json:"runtime_ms"`
}

// GradeSummary aggregates one grade level of a batch.
type GradeSummary struct {
	Students        int     `json:"students"`
	FragileLearners int     `json:"fragile_learners"`
	AtRiskStudents  int     `json:"at_risk_students"`
	AvgRiskAreas    float64 `json:"avg_risk_areas"`
}

// NewAnalysisService wires the pipeline components around one threshold
// policy. The repository may be nil when persistence is disabled.
func NewAnalysisService(thresholds assessment.Thresholds, repo ports.SnapshotRepository) *AnalysisService {
	return &AnalysisService{
		normalizer:  ingest.NewNormalizer(ingest.DefaultAliases()),
		attitudinal: analyzer.NewAttitudinal(thresholds),
		cognitive:   analyzer.NewCognitive(thresholds),
		academic:    analyzer.NewAcademic(thresholds),
		comparator:  analyzer.NewComparator(thresholds),
		engine:      interventions.NewEngine(thresholds),
		compound:    interventions.NewCompoundDetector(),
		repo:        repo,
	}
}

// AnalyzeBatch runs the full pipeline over one upload. Students are analyzed
// concurrently; a panic in one student's transform is recorded as a failure
// and never aborts the batch. The only batch-level error is an empty merge.
func (s *AnalysisService) AnalyzeBatch(ctx context.Context, sources BatchSources) (*BatchResult, error) {
	startTime := time.Now()
	batchID := core.BatchID(core.NewID())

	merged := ingest.Merge(
		s.normalizer.NormalizeAttitudinal(sources.Attitudinal),
		s.normalizer.NormalizeCognitive(sources.Cognitive),
		s.normalizer.NormalizeAcademic(sources.Academic),
	)
	log.Printf("[AnalysisService] Batch %s: %d students after merge", batchID, len(merged))
	if len(merged) == 0 {
		return nil, fmt.Errorf("analyze batch %s: %w", batchID, core.ErrInsufficientData)
	}

	recordedAt := core.Now()
	records := make([]*analysis.AnalyzedRecord, len(merged))
	failures := make([]*StudentFailure, len(merged))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i := range merged {
		i := i
		g.Go(func() error {
			rec, err := s.analyzeOne(&merged[i], recordedAt)
			if err != nil {
				failures[i] = &StudentFailure{
					StudentID: merged[i].StudentID,
					Reason:    err.Error(),
				}
				return nil
			}
			records[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("analyze batch %s: %w", batchID, err)
	}

	result := &BatchResult{
		BatchID:     batchID,
		ProcessedAt: recordedAt,
	}
	for i := range records {
		if records[i] != nil {
			result.Records = append(result.Records, *records[i])
		}
		if failures[i] != nil {
			result.Failures = append(result.Failures, *failures[i])
			log.Printf("[AnalysisService] Batch %s: student %s failed: %s", batchID, failures[i].StudentID, failures[i].Reason)
		}
	}
	result.GradeSummary = summarizeGrades(result.Records)

	if s.repo != nil && len(result.Records) > 0 {
		if err := s.repo.SaveBatch(ctx, batchID, result.Records); err != nil {
			return nil, fmt.Errorf("persist batch %s: %w", batchID, err)
		}
	}

	result.RuntimeMs = time.Since(startTime).Milliseconds()
	log.Printf("[AnalysisService] Batch %s: %d analyzed, %d failed in %dms",
		batchID, len(result.Records), len(result.Failures), result.RuntimeMs)
	return result, nil
}

// analyzeOne builds the complete snapshot for a single student. The recover
// turns a programmer-contract panic into that student's failure without
// corrupting the rest of the batch.
func (s *AnalysisService) analyzeOne(rec *assessment.StudentRecord, recordedAt core.Timestamp) (result *analysis.AnalyzedRecord, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("student %s: analysis panic: %v", rec.StudentID, r)
		}
	}()
	if rec == nil {
		return nil, core.ErrNilRecord
	}

	attitudinal := s.attitudinal.Analyze(rec)
	cognitive := s.cognitive.Analyze(rec)
	academic := s.academic.Analyze(rec)
	comparison := s.comparator.Compare(cognitive, academic)
	fragile := analyzer.ClassifyFragileLearner(attitudinal, cognitive, comparison)

	return &analysis.AnalyzedRecord{
		SnapshotID:            core.SnapshotID(core.NewID()),
		RecordedAt:            recordedAt,
		Student:               *rec,
		Attitudinal:           attitudinal,
		Cognitive:             cognitive,
		Academic:              academic,
		Performance:           comparison,
		IsFragileLearner:      fragile,
		Interventions:         s.engine.Generate(attitudinal, cognitive, academic, comparison, fragile),
		CompoundInterventions: s.compound.Detect(attitudinal, cognitive, academic, fragile),
	}, nil
}

// summarizeGrades rolls the batch up per grade level. A student counts as
// at-risk when any domain reports risk areas.
func summarizeGrades(records []analysis.AnalyzedRecord) map[string]GradeSummary {
	totals := map[string]struct {
		students, fragile, atRisk, riskAreas int
	}{}
	for i := range records {
		rec := &records[i]
		grade := rec.Student.Grade
		if grade == "" {
			grade = "Ungraded"
		}
		t := totals[grade]
		t.students++
		if rec.IsFragileLearner {
			t.fragile++
		}
		areas := len(rec.Attitudinal.RiskAreas) + len(rec.Cognitive.RiskAreas) + len(rec.Academic.RiskAreas)
		t.riskAreas += areas
		if areas > 0 {
			t.atRisk++
		}
		totals[grade] = t
	}

	summary := make(map[string]GradeSummary, len(totals))
	for grade, t := range totals {
		summary[grade] = GradeSummary{
			Students:        t.students,
			FragileLearners: t.fragile,
			AtRiskStudents:  t.atRisk,
			AvgRiskAreas:    float64(t.riskAreas) / float64(t.students),
		}
	}
	return summary
}
