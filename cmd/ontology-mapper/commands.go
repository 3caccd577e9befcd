package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"gopkg.in/yaml.v3"

	"ontology-mapper/internal/common"
	"ontology-mapper/internal/diagnostic"
	"ontology-mapper/internal/graph"
	"ontology-mapper/internal/mapping"
	"ontology-mapper/internal/match"
	"ontology-mapper/internal/sample"
	"ontology-mapper/internal/suggest"
)

// errInvalid wraps the validation errors of an invalid mapping file.
var errInvalid = errors.New("mappings are invalid")

const listIndent = "  "

func runValidate(a *app, _ commandFlags, args []string) error {
	mf, err := mapping.LoadFile(args[0])
	if err != nil {
		return err
	}

	v := graph.NewValidator(a.cfg.Analysis.DeepChainDepth, a.logger)
	_, diags := v.ValidateDetailed(mf.Mappings)

	fmt.Fprintf(a.out, "Validated %d mappings from %s\n", len(mf.Mappings), args[0])

	for _, group := range [][]diagnostic.Diagnostic{diags.Errors, diags.Warnings, diags.Infos} {
		for _, d := range group {
			fmt.Fprintf(a.out, "%-7s %s\n", strings.ToUpper(d.Severity.String()), d)
		}
	}

	status := "valid"
	if diags.HasErrors() {
		status = "invalid"
	}

	fmt.Fprintf(a.out, "Result: %s (%d errors, %d warnings)\n", status, len(diags.Errors), len(diags.Warnings))

	if diags.HasErrors() {
		return fmt.Errorf("%w: %w", errInvalid, diags.Error())
	}

	return nil
}

func runGraph(a *app, f commandFlags, args []string) error {
	mf, err := mapping.LoadFile(args[0])
	if err != nil {
		return err
	}

	g := graph.NewBuilder(a.logger).Build(mf.Mappings)

	if f.dump {
		cs := spew.ConfigState{Indent: "  ", SortKeys: true, DisablePointerAddresses: true}
		cs.Fdump(a.out, g)

		return nil
	}

	if f.field != "" {
		return printField(a, g, f.field)
	}

	fmt.Fprintf(a.out, "Fields: %d, edges: %d\n", len(g.Fields), g.EdgeCount())

	if len(g.Cycles) > 0 {
		fmt.Fprintln(a.out, "Cycles:")

		for _, c := range g.Cycles {
			fmt.Fprintf(a.out, "%s%s\n", listIndent, strings.Join(c.Cycle, " → "))
		}
	}

	if len(g.Chains) > 0 {
		fmt.Fprintln(a.out, "Chains:")

		for _, ch := range g.Chains {
			fmt.Fprintf(a.out, "%s(%d) %s\n", listIndent, ch.Depth, strings.Join(ch.Chain, " → "))
		}
	}

	if len(g.Orphans) > 0 {
		fmt.Fprintln(a.out, "Orphans:")

		for _, id := range g.Orphans {
			fmt.Fprintf(a.out, "%s%s\n", listIndent, id)
		}
	}

	if g.HasCycles() {
		fmt.Fprintln(a.out, "Evaluation order: unavailable while dependency cycles exist")
		return nil
	}

	order, err := g.EvaluationOrder()
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Evaluation order:")

	for i, id := range order {
		fmt.Fprintf(a.out, "%s%d. %s\n", listIndent, i+1, id)
	}

	return nil
}

func printField(a *app, g *graph.DependencyGraph, id string) error {
	node, ok := g.Field(id)
	if !ok {
		return fmt.Errorf("field %q not found", id)
	}

	fmt.Fprintf(a.out, "Field %s (%s)\n", node.FieldID, node.FieldName)
	fmt.Fprintf(a.out, "%sdepends on:  %s\n", listIndent, joinOrNone(g.DependenciesOf(id)))
	fmt.Fprintf(a.out, "%sdepended on by: %s\n", listIndent, joinOrNone(node.DependedOnBy))
	fmt.Fprintf(a.out, "%simpacted:    %s\n", listIndent, joinOrNone(g.ImpactedBy(id)))

	return nil
}

func runSuggest(a *app, f commandFlags, args []string) error {
	if f.target == "" {
		return fmt.Errorf("%w: --target is required", errUsage)
	}

	if f.top < 0 {
		return fmt.Errorf("%w: --top must not be negative", errUsage)
	}

	entity, property, ok := mapping.SplitFieldID(f.target)
	if !ok {
		return fmt.Errorf("%w: --target must be entity.property, got %q", errUsage, f.target)
	}

	mf, err := mapping.LoadFile(args[0])
	if err != nil {
		return err
	}

	rows, err := sample.LoadFile(args[1], a.cfg.Suggest.PreviewRows)
	if err != nil {
		return err
	}

	proposed := mapping.FieldMapping{OntologyEntity: entity, OntologyProperty: property}
	targetColumn := f.target

	if m, found := mf.Find(f.target); found {
		proposed.DisplayName = m.DisplayName
		proposed.CSVColumn = m.CSVColumn

		if m.CSVColumn != "" {
			targetColumn = m.CSVColumn
		}
	}

	cfg := suggest.DefaultConfig()
	cfg.MaxLookupEntries = a.cfg.Suggest.MaxLookupEntries
	cfg.MinConfidence = a.cfg.Suggest.MinConfidence

	list := suggest.NewSuggester(cfg, a.logger).Suggest(targetColumn, sample.Columns(rows), rows)
	if f.column != "" {
		list = list.ForField(f.column)
	}

	if f.top > 0 {
		list = list.Top(f.top)
	}

	if len(list) == 0 {
		fmt.Fprintf(a.out, "No suggestions for %s from %d sample rows\n", f.target, len(rows))
		return nil
	}

	fmt.Fprintf(a.out, "Suggestions for %s from %d sample rows:\n", f.target, len(rows))

	for i, s := range list {
		proposed.BusinessRule = s.SuggestedRule

		out, err := yaml.Marshal(proposed)
		if err != nil {
			return fmt.Errorf("failed to render suggestion: %w", err)
		}

		fmt.Fprintf(a.out, "\n%d. %s rule on %q (confidence %.2f)\n", i+1, s.Kind, s.SourceField, s.Confidence)
		fmt.Fprintf(a.out, "%s%s\n", listIndent, s.Reason)
		fmt.Fprintf(a.out, "%s%s\n", listIndent, s.FieldAnalysisSummary)
		fmt.Fprint(a.out, indent(string(out), listIndent+listIndent))
	}

	return nil
}

func runColumns(a *app, f commandFlags, args []string) error {
	mf, err := mapping.LoadFile(args[0])
	if err != nil {
		return err
	}

	rows, err := sample.LoadFile(args[1], a.cfg.Suggest.PreviewRows)
	if err != nil {
		return err
	}

	columns := sample.Columns(rows)
	free := match.FreeColumns(mf.Mappings, columns)
	suggested := match.SuggestColumns(mf.Mappings, columns)
	unbound, updated := 0, 0

	for i := range mf.Mappings {
		m := &mf.Mappings[i]
		if !match.NeedsColumn(*m, columns) {
			continue
		}

		unbound++

		id := m.FieldID()
		if c, ok := suggested[id]; ok {
			fmt.Fprintf(a.out, "%s -> %s (score %.2f)\n", id, c.Column, c.Score)

			if f.write {
				m.CSVColumn = c.Column
				updated++
			}

			continue
		}

		contenders := match.RankColumns(*m, free).Contenders(match.DefaultMinScore, match.DefaultAmbiguityThreshold)
		if contenders != nil {
			fmt.Fprintf(a.out, "%s: ambiguous between %s\n", id, formatCandidates(contenders))
		} else {
			fmt.Fprintf(a.out, "%s: no confident match\n", id)
		}
	}

	if unbound == 0 {
		fmt.Fprintln(a.out, "All fields are bound to sample columns")
	}

	if updated > 0 {
		if err := mapping.WriteFile(mf, args[0]); err != nil {
			return err
		}

		fmt.Fprintf(a.out, "Bound %d fields in %s\n", updated, args[0])
	}

	return nil
}

func formatCandidates(list match.ColumnList) string {
	parts := make([]string, 0, len(list))
	for _, c := range list {
		parts = append(parts, fmt.Sprintf("%s (%.2f)", c.Column, c.Score))
	}

	return strings.Join(parts, ", ")
}

func joinOrNone(ids []string) string {
	if common.IsEmpty(ids) {
		return "(none)"
	}

	return strings.Join(ids, ", ")
}
