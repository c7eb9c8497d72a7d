package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/gofhir/models/pkg/issue"
	"github.com/gofhir/models/pkg/validation"
	"github.com/gofhir/models/worker"
)

var errInvalid = errors.New("validation failed")

// ValidationOutput is the JSON output of one validated document.
type ValidationOutput struct {
	Resource string        `json:"resource"`
	Valid    bool          `json:"valid"`
	Errors   int           `json:"errors"`
	Warnings int           `json:"warnings"`
	Info     int           `json:"info"`
	Issues   []IssueOutput `json:"issues,omitempty"`
	Duration string        `json:"duration"`
}

// IssueOutput is a single issue in JSON output.
type IssueOutput struct {
	Severity    string   `json:"severity"`
	Code        string   `json:"code"`
	Diagnostics string   `json:"diagnostics"`
	Expression  []string `json:"expression,omitempty"`
	Line        int      `json:"line,omitempty"`
	Column      int      `json:"column,omitempty"`
}

type document struct {
	name string
	data []byte
}

func validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate FILE...",
		Short: "Decode and validate FHIR JSON resources",
		Long: `validate decodes each file with the generated models and checks required
elements, choice groups, primitive formats and FHIRPath invariants.
Use - to read from stdin. Glob patterns are expanded.`,
		Example: `  fhirgen validate patient.json
  fhirgen validate --version STU3 --output json examples/*.json
  cat patient.json | fhirgen validate -`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runValidate(cmd, cfg, args)
		},
	}

	f := cmd.Flags()
	f.String("output", "text", "output format: text, json")
	f.Bool("strict", false, "treat warnings as errors")
	f.Int("max-issues", 0, "maximum issues per resource (0 = unlimited)")
	f.Int("workers", 0, "parallel validations (0 = number of CPUs)")
	return cmd
}

func runValidate(cmd *cobra.Command, cfg *Config, args []string) error {
	log := cfg.logger(cmd)
	release, err := cfg.release()
	if err != nil {
		return err
	}

	docs, readErrs := readDocuments(cmd.InOrStdin(), args)
	for _, err := range readErrs {
		log.Error("%v", err)
	}

	v, err := release.NewValidator(
		validation.WithStrictMode(cfg.Strict),
		validation.WithMaxIssues(cfg.MaxIssues),
		validation.WithWorkers(cfg.Workers),
		validation.WithLogger(log),
	)
	if err != nil {
		return fmt.Errorf("create validator: %w", err)
	}

	inputs := make([][]byte, len(docs))
	for i, d := range docs {
		inputs[i] = d.data
	}
	log.Debug("validating %d document(s) against FHIR %s", len(docs), release.FHIRVersionString())
	batch := v.ValidateBatch(cmd.Context(), inputs)
	byIndex := make(map[int]*worker.JobResult, len(batch.Results))
	for _, r := range batch.Results {
		byIndex[r.Index] = r
	}

	w := cmd.OutOrStdout()
	outputs := make([]ValidationOutput, 0, len(docs))
	for i, d := range docs {
		out := toOutput(d.name, byIndex[i])
		outputs = append(outputs, out)
		if cfg.Output != "json" {
			printTextResult(w, out, cfg.Strict)
		}
	}

	if cfg.Output == "json" {
		data, err := json.MarshalIndent(outputs, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(data))
	}

	if len(readErrs) > 0 {
		return errInvalid
	}
	for _, out := range outputs {
		if !out.Valid || (cfg.Strict && out.Warnings > 0) {
			return errInvalid
		}
	}
	return nil
}

// readDocuments reads args in order, expanding globs. "-" reads stdin.
func readDocuments(stdin io.Reader, args []string) ([]document, []error) {
	var docs []document
	var errs []error
	for _, arg := range args {
		if arg == "-" {
			data, err := io.ReadAll(stdin)
			if err != nil {
				errs = append(errs, fmt.Errorf("read stdin: %w", err))
				continue
			}
			docs = append(docs, document{name: "stdin", data: data})
			continue
		}

		matches, err := filepath.Glob(arg)
		if err != nil {
			errs = append(errs, fmt.Errorf("pattern %q: %w", arg, err))
			continue
		}
		if len(matches) == 0 {
			errs = append(errs, fmt.Errorf("no files match %s", arg))
			continue
		}
		for _, path := range matches {
			data, err := os.ReadFile(path)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			docs = append(docs, document{name: path, data: data})
		}
	}
	return docs, errs
}

func toOutput(name string, jr *worker.JobResult) ValidationOutput {
	out := ValidationOutput{Resource: name}
	switch {
	case jr == nil:
		out.Errors = 1
		out.Issues = []IssueOutput{{Severity: "error", Code: "exception", Diagnostics: "not validated"}}
		return out
	case jr.Error != nil:
		out.Errors = 1
		out.Issues = []IssueOutput{{Severity: "error", Code: "exception", Diagnostics: fmt.Sprintf("Validation failed: %v", jr.Error)}}
		return out
	}

	result := jr.Result
	out.Valid = !result.HasErrors()
	out.Errors = result.ErrorCount()
	out.Warnings = result.WarningCount()
	out.Info = result.InfoCount()
	out.Duration = time.Duration(jr.Duration).Round(time.Microsecond).String()
	for _, iss := range result.Issues {
		out.Issues = append(out.Issues, IssueOutput{
			Severity:    string(iss.Severity),
			Code:        string(iss.Code),
			Diagnostics: iss.Diagnostics,
			Expression:  iss.Expression,
			Line:        iss.Line,
			Column:      iss.Column,
		})
	}
	return out
}

func printTextResult(w io.Writer, out ValidationOutput, strict bool) {
	status := "VALID"
	if !out.Valid || (strict && out.Warnings > 0) {
		status = "INVALID"
	}

	fmt.Fprintf(w, "== %s ==\n", out.Resource)
	fmt.Fprintf(w, "Status: %s\n", status)
	fmt.Fprintf(w, "Errors: %d, Warnings: %d, Info: %d\n", out.Errors, out.Warnings, out.Info)
	if out.Duration != "" {
		fmt.Fprintf(w, "Duration: %s\n", out.Duration)
	}

	if len(out.Issues) > 0 {
		fmt.Fprintln(w, "\nIssues:")
		for _, iss := range out.Issues {
			location := ""
			if len(iss.Expression) > 0 {
				location = " @ " + strings.Join(iss.Expression, ", ")
			}
			if iss.Line > 0 {
				location += fmt.Sprintf(" (line %d, col %d)", iss.Line, iss.Column)
			}
			fmt.Fprintf(w, "  %s [%s] %s%s\n", severityLabel(issue.Severity(iss.Severity)), iss.Code, iss.Diagnostics, location)
		}
	}
	fmt.Fprintln(w)
}

func severityLabel(severity issue.Severity) string {
	switch severity {
	case issue.SeverityFatal, issue.SeverityError:
		return "ERROR"
	case issue.SeverityWarning:
		return "WARN "
	case issue.SeverityInformation:
		return "INFO "
	default:
		return "     "
	}
}
