package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"edusight/adapters/excel"
	"edusight/adapters/memory"
	"edusight/app"
	"edusight/domain/assessment"
	"edusight/domain/core"
	"edusight/internal/config"
	"edusight/internal/ingest"
	"edusight/internal/predictor"
	"edusight/internal/report"
	"edusight/ports"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "edusight",
		Short: "Edusight CLI for analyzing student assessment files",
	}

	rootCmd.AddCommand(
		newAnalyzeCmd(),
		newReportCmd(),
		newPredictCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// sourceFlags are the three assessment file paths shared by every command.
type sourceFlags struct {
	attitudinal string
	cognitive   string
	academic    string
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.attitudinal, "attitudinal", "a", "", "attitudinal survey file (xlsx or csv)")
	cmd.Flags().StringVarP(&f.cognitive, "cognitive", "c", "", "cognitive ability file (xlsx or csv)")
	cmd.Flags().StringVarP(&f.academic, "marks", "m", "", "academic marks file (xlsx or csv)")
}

func (f *sourceFlags) load() (app.BatchSources, error) {
	sources := app.BatchSources{}
	for _, src := range []struct {
		path string
		dst  *[]ingest.Row
	}{
		{f.attitudinal, &sources.Attitudinal},
		{f.cognitive, &sources.Cognitive},
		{f.academic, &sources.Academic},
	} {
		if src.path == "" {
			continue
		}
		var reader ports.TabularReader = excel.NewDataReader(src.path)
		rows, err := reader.Read()
		if err != nil {
			return sources, err
		}
		*src.dst = rows
	}
	if sources.Attitudinal == nil && sources.Cognitive == nil && sources.Academic == nil {
		return sources, fmt.Errorf("at least one assessment file is required")
	}
	return sources, nil
}

func loadThresholds() assessment.Thresholds {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v, using default thresholds\n", err)
		return assessment.DefaultThresholds()
	}
	return cfg.Thresholds
}

// analyzeFiles runs the batch pipeline over the given files into an
// in-memory store and returns the result.
func analyzeFiles(ctx context.Context, flags *sourceFlags) (*app.BatchResult, *memory.SnapshotRepository, error) {
	sources, err := flags.load()
	if err != nil {
		return nil, nil, err
	}
	repo := memory.NewSnapshotRepository()
	service := app.NewAnalysisService(loadThresholds(), repo)
	result, err := service.AnalyzeBatch(ctx, sources)
	if err != nil {
		return nil, nil, err
	}
	return result, repo, nil
}

func newAnalyzeCmd() *cobra.Command {
	flags := &sourceFlags{}
	var summaryOnly bool

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze assessment files and print the batch result as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, _, err := analyzeFiles(cmd.Context(), flags)
			if err != nil {
				return err
			}
			if summaryOnly {
				return printJSON(map[string]interface{}{
					"batch_id":      result.BatchID,
					"students":      len(result.Records),
					"failures":      len(result.Failures),
					"grade_summary": result.GradeSummary,
					"runtime_ms":    result.RuntimeMs,
				})
			}
			return printJSON(result)
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&summaryOnly, "summary", false, "print only the batch summary")
	return cmd
}

func newReportCmd() *cobra.Command {
	flags := &sourceFlags{}
	var asHTML bool

	cmd := &cobra.Command{
		Use:   "report [student-id]",
		Short: "Analyze assessment files and print one student's report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			studentID, err := core.ParseStudentID(args[0])
			if err != nil {
				return err
			}

			_, repo, err := analyzeFiles(cmd.Context(), flags)
			if err != nil {
				return err
			}
			rec, err := repo.Latest(cmd.Context(), studentID)
			if err != nil {
				return fmt.Errorf("student %s: %w", studentID, err)
			}

			generator := report.NewGenerator()
			md := generator.Markdown(rec, nil, nil)
			if asHTML {
				fmt.Println(string(generator.HTML(md)))
				return nil
			}
			fmt.Println(md)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&asHTML, "html", false, "render the report as HTML")
	return cmd
}

func newPredictCmd() *cobra.Command {
	flags := &sourceFlags{}

	cmd := &cobra.Command{
		Use:   "predict [student-id]",
		Short: "Analyze assessment files and print one student's risk prediction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			studentID, err := core.ParseStudentID(args[0])
			if err != nil {
				return err
			}

			_, repo, err := analyzeFiles(cmd.Context(), flags)
			if err != nil {
				return err
			}
			rec, err := repo.Latest(cmd.Context(), studentID)
			if err != nil {
				return fmt.Errorf("student %s: %w", studentID, err)
			}

			prediction := predictor.New(loadThresholds()).Predict(rec, nil)
			return printJSON(prediction)
		},
	}
	flags.register(cmd)
	return cmd
}

func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
