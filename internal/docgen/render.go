// Package docgen renders parsed pipeline documents as Markdown sections.
//
// The output is appended to a shared document by the caller, so everything
// here writes through an explicit io.Writer and never seeks or rewinds.
// The exact fragment formatting is load-bearing: downstream docs are
// diff-checked, so don't tidy the whitespace.
package docgen

import (
	"fmt"
	"io"
	"strings"

	"github.com/adf-tools/adfdoc/internal/pipeline"
)

// Render appends the documentation section for one pipeline: a heading with
// its name, its description if it has one, and a Steps list covering every
// activity in declaration order. A failure partway through leaves whatever
// was already written; the caller decides what to do with the truncated
// document.
func Render(w io.Writer, doc *pipeline.Document) error {
	if _, err := fmt.Fprintf(w, "\n\n ## %s \n", doc.Name); err != nil {
		return err
	}

	if desc := doc.Properties.Description; desc != "" {
		if _, err := fmt.Fprintf(w, "\n Description: %s \n", desc); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprint(w, "\n\n ### Steps \n"); err != nil {
		return err
	}

	for _, act := range doc.Properties.Activities {
		if err := renderActivity(w, act); err != nil {
			return err
		}
	}

	return nil
}

func renderActivity(w io.Writer, act pipeline.Activity) error {
	if _, err := fmt.Fprintf(w, "\n * Name: __%s__, Type: %s  \n", act.Name, act.Type); err != nil {
		return err
	}

	if act.Description != "" {
		if _, err := fmt.Fprintf(w, "Description: %s\n", act.Description); err != nil {
			return err
		}
	}

	if err := renderQuery(w, act); err != nil {
		return err
	}

	return renderDependencies(w, act)
}

// renderQuery writes the activity's query in a collapsible block. Only
// sources with a recognized kind carry a query; everything else is skipped
// silently.
func renderQuery(w io.Writer, act pipeline.Activity) error {
	source := act.TypeProperties.Source
	if source == nil {
		return nil
	}

	query, err := source.Query()
	if err != nil {
		return err
	}
	if query == nil {
		return nil
	}

	if _, err := fmt.Fprint(w, "\n<details>\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprint(w, "\n<summary>Query</summary>\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "\n``` sql\n%s\n```\n", query.Text()); err != nil {
		return err
	}
	_, err = fmt.Fprint(w, "\n</details>\n")
	return err
}

func renderDependencies(w io.Writer, act pipeline.Activity) error {
	if len(act.DependsOn) == 0 {
		return nil
	}

	if _, err := fmt.Fprint(w, "\n   Dependencies:"); err != nil {
		return err
	}

	for _, dep := range act.DependsOn {
		// Only the first dependency condition is rendered, even when
		// the export lists several.
		condition := ""
		if len(dep.DependencyConditions) > 0 {
			condition = dep.DependencyConditions[0]
		}

		if _, err := fmt.Fprintf(w, "\n   * [%s](%s) (%s) \n", dep.Activity, anchor(dep.Activity), condition); err != nil {
			return err
		}
	}

	return nil
}

// anchor builds the same-document link target for an activity heading.
func anchor(name string) string {
	return "#" + strings.ReplaceAll(name, " ", "-")
}
