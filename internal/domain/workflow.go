package domain

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/bva/internal/adapter"
	"github.com/mouse-blink/bva/internal/controller"
	m "github.com/mouse-blink/bva/internal/model"
)

// AnalyzeArgs selects one method of one file.
type AnalyzeArgs struct {
	Path   m.Path
	Method string // Name or Receiver.Name
	Line   int    // disambiguates overloads, 0 means any
	Save   bool
	// Reports is the directory saved reports go to.
	Reports m.Path
}

// ListArgs contains the parameters for scanning methods.
type ListArgs struct {
	Paths   []m.Path
	Exclude []string
	Threads int
}

// ViewArgs points at a saved report.
type ViewArgs struct {
	Report m.Path
}

// Workflow defines the commands of the bva CLI.
type Workflow interface {
	Analyze(args AnalyzeArgs) error
	List(args ListArgs) error
	View(args ViewArgs) error
}

// WorkflowOption configures a Workflow.
type WorkflowOption func(*workflow)

// WithLogger sets the workflow logger.
func WithLogger(logger *zap.Logger) WorkflowOption {
	return func(w *workflow) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithTypeAliases extends the built-in type tables per language.
func WithTypeAliases(aliases map[m.Language]map[string]m.PrimitiveType) WorkflowOption {
	return func(w *workflow) {
		w.aliases = aliases
	}
}

// WithLoopConditions includes for/while/do conditions in the analysis.
func WithLoopConditions(include bool) WorkflowOption {
	return func(w *workflow) {
		w.includeLoops = include
	}
}

type workflow struct {
	fsAdapter    adapter.SourceFSAdapter
	frontends    adapter.FrontendRegistry
	reportStore  adapter.ReportStore
	ui           controller.UI
	extractor    BoundaryExtractor
	logger       *zap.Logger
	aliases      map[m.Language]map[string]m.PrimitiveType
	includeLoops bool
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	frontends adapter.FrontendRegistry,
	reportStore adapter.ReportStore,
	ui controller.UI,
	extractor BoundaryExtractor,
	options ...WorkflowOption,
) Workflow {
	w := &workflow{
		fsAdapter:   fsAdapter,
		frontends:   frontends,
		reportStore: reportStore,
		ui:          ui,
		extractor:   extractor,
		logger:      zap.NewNop(),
	}

	for _, option := range options {
		option(w)
	}

	return w
}

// Analyze derives the boundary values of one method and displays them.
func (w *workflow) Analyze(args AnalyzeArgs) error {
	unit, err := w.parse(args.Path)
	if err != nil {
		return err
	}

	method, err := selectMethod(unit, args.Method, args.Line)
	if err != nil {
		return err
	}

	catalog := BuildCatalog(method, w.typeTable(unit.Language))
	conditions := w.conditions(method)

	w.logger.Debug("analyzing method",
		zap.String("path", string(args.Path)),
		zap.String("method", method.ID()),
		zap.Int("parameters", catalog.Len()),
		zap.Int("conditions", len(conditions)))

	result, err := w.extractor.Analyze(conditions, catalog)
	if err != nil {
		return fmt.Errorf("failed to analyze %s: %w", method.QualifiedName(), err)
	}

	report := m.NewReport(args.Path, unit.Language, method, result)

	if args.Save {
		path, err := w.reportStore.SaveReport(args.Reports, report)
		if err != nil {
			return fmt.Errorf("failed to save report: %w", err)
		}

		w.logger.Info("report saved", zap.String("path", string(path)))
	}

	return w.ui.DisplayResult(report)
}

// List scans paths and shows every method with its analyzable parameters.
func (w *workflow) List(args ListArgs) error {
	summaries, err := w.scan(args)

	return w.ui.DisplayMethods(summaries, err)
}

// View displays a report saved by Analyze.
func (w *workflow) View(args ViewArgs) error {
	report, err := w.reportStore.LoadReport(args.Report)
	if err != nil {
		return fmt.Errorf("failed to load report %s: %w", args.Report, err)
	}

	return w.ui.DisplayResult(report)
}

func (w *workflow) scan(args ListArgs) ([]m.MethodSummary, error) {
	exclude, err := compileExcludePatterns(args.Exclude)
	if err != nil {
		return nil, err
	}

	paths, err := w.fsAdapter.Get(args.Paths, w.frontends.Extensions(), exclude)
	if err != nil {
		return nil, fmt.Errorf("failed to collect sources: %w", err)
	}

	threads := args.Threads
	if threads <= 0 {
		threads = 1
	}

	perFile := make([][]m.MethodSummary, len(paths))

	var g errgroup.Group

	g.SetLimit(threads)

	for i, path := range paths {
		g.Go(func() error {
			unit, err := w.parse(path)
			if err != nil {
				return err
			}

			perFile[i] = w.summarize(unit)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var summaries []m.MethodSummary
	for _, s := range perFile {
		summaries = append(summaries, s...)
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		if summaries[i].Path != summaries[j].Path {
			return summaries[i].Path < summaries[j].Path
		}

		return summaries[i].Line < summaries[j].Line
	})

	return summaries, nil
}

func (w *workflow) summarize(unit m.Unit) []m.MethodSummary {
	table := w.typeTable(unit.Language)
	summaries := make([]m.MethodSummary, 0, len(unit.Methods))

	for _, method := range unit.Methods {
		summaries = append(summaries, m.MethodSummary{
			Path:       unit.Path,
			Language:   unit.Language,
			Method:     method.QualifiedName(),
			Line:       method.Line,
			Parameters: BuildCatalog(method, table).Len(),
			Conditions: len(w.conditions(method)),
		})
	}

	return summaries
}

// parse reads and parses path. A unit with conditions that could not be
// tied to a method is rejected.
func (w *workflow) parse(path m.Path) (m.Unit, error) {
	frontend, err := w.frontends.For(path)
	if err != nil {
		return m.Unit{}, err
	}

	src, err := w.fsAdapter.ReadFile(path)
	if err != nil {
		return m.Unit{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	unit, err := frontend.Parse(path, src)
	if err != nil {
		return m.Unit{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if len(unit.Unresolved) > 0 {
		return m.Unit{}, fmt.Errorf("%w: %s: condition at line %d has no enclosing method within reach",
			ErrStructuralAnomaly, path, unit.Unresolved[0].Line)
	}

	return unit, nil
}

func (w *workflow) typeTable(lang m.Language) TypeTable {
	return DefaultTypeTable(lang).With(w.aliases[lang])
}

func (w *workflow) conditions(method m.Method) []m.Condition {
	if w.includeLoops {
		return method.Conditions
	}

	conditions := make([]m.Condition, 0, len(method.Conditions))
	for _, cond := range method.Conditions {
		if cond.Kind == m.ConditionIf {
			conditions = append(conditions, cond)
		}
	}

	return conditions
}

// selectMethod finds name (plain or Receiver.Name) in unit. line, when not
// zero, must equal the declaration line.
func selectMethod(unit m.Unit, name string, line int) (m.Method, error) {
	var matches []m.Method

	for _, method := range unit.Methods {
		if method.Name != name && method.QualifiedName() != name {
			continue
		}

		if line != 0 && method.Line != line {
			continue
		}

		matches = append(matches, method)
	}

	switch len(matches) {
	case 0:
		if line != 0 {
			return m.Method{}, fmt.Errorf("%w: %s at line %d in %s", ErrMethodNotFound, name, line, unit.Path)
		}

		return m.Method{}, fmt.Errorf("%w: %s in %s", ErrMethodNotFound, name, unit.Path)
	case 1:
		return matches[0], nil
	default:
		lines := make([]string, 0, len(matches))
		for _, method := range matches {
			lines = append(lines, fmt.Sprintf("%d", method.Line))
		}

		return m.Method{}, fmt.Errorf("%w: %s is declared at lines %s, pass --line",
			ErrAmbiguousMethod, name, strings.Join(lines, ", "))
	}
}

func compileExcludePatterns(patterns []string) ([]*regexp.Regexp, error) {
	if len(patterns) == 0 {
		return nil, nil
	}

	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude regex %q: %w", p, err)
		}

		compiled = append(compiled, re)
	}

	return compiled, nil
}
