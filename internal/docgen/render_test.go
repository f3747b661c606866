package docgen

import (
	"errors"
	"strings"
	"testing"

	"github.com/adf-tools/adfdoc/internal/pipeline"
)

func parseDocument(t *testing.T, contents string) *pipeline.Document {
	t.Helper()

	doc, err := pipeline.Parser{Contents: []byte(contents)}.Parse()
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return doc
}

func render(t *testing.T, doc *pipeline.Document) string {
	t.Helper()

	var sb strings.Builder
	if err := Render(&sb, doc); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return sb.String()
}

func TestRenderSinglePipeline(t *testing.T) {
	t.Parallel()

	doc := parseDocument(t, `{
		"name": "Load Sales",
		"properties": {
			"activities": [
				{
					"name": "Copy Data",
					"type": "Copy",
					"description": "copies rows",
					"dependsOn": []
				}
			]
		}
	}`)

	got := render(t, doc)
	want := "\n\n ## Load Sales \n" +
		"\n\n ### Steps \n" +
		"\n * Name: __Copy Data__, Type: Copy  \n" +
		"Description: copies rows\n"

	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderPipelineDescription(t *testing.T) {
	t.Parallel()

	doc := parseDocument(t, `{
		"name": "Load Sales",
		"properties": {
			"description": "Loads the sales tables",
			"activities": []
		}
	}`)

	got := render(t, doc)
	want := "\n\n ## Load Sales \n" +
		"\n Description: Loads the sales tables \n" +
		"\n\n ### Steps \n"

	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderActivityWithoutDescription(t *testing.T) {
	t.Parallel()

	doc := parseDocument(t, `{
		"name": "Load Sales",
		"properties": {
			"activities": [
				{"name": "Copy Data", "type": "Copy", "dependsOn": []}
			]
		}
	}`)

	got := render(t, doc)
	if strings.Contains(got, "Description:") {
		t.Errorf("Render() = %q, want no Description line for an activity without one", got)
	}
}

func TestRenderQueryBlock(t *testing.T) {
	t.Parallel()

	doc := parseDocument(t, `{
		"name": "Load Sales",
		"properties": {
			"activities": [
				{
					"name": "Copy Data",
					"type": "Copy",
					"typeProperties": {
						"source": {
							"type": "SqlServerSource",
							"sqlReaderQuery": {"type": "Expression", "value": "SELECT * FROM sales"}
						}
					},
					"dependsOn": []
				}
			]
		}
	}`)

	got := render(t, doc)
	want := "\n<details>\n" +
		"\n<summary>Query</summary>\n" +
		"\n``` sql\nSELECT * FROM sales\n```\n" +
		"\n</details>\n"

	if !strings.Contains(got, want) {
		t.Errorf("Render() = %q, want it to contain %q", got, want)
	}
}

func TestRenderSkipsUnrecognizedSources(t *testing.T) {
	t.Parallel()

	// A query-like field on an unrecognized source kind must not produce
	// a query block.
	doc := parseDocument(t, `{
		"name": "Load Sales",
		"properties": {
			"activities": [
				{
					"name": "Copy Data",
					"type": "Copy",
					"typeProperties": {
						"source": {
							"type": "BlobSource",
							"sqlReaderQuery": "SELECT * FROM sales"
						}
					},
					"dependsOn": []
				}
			]
		}
	}`)

	got := render(t, doc)
	if strings.Contains(got, "<details>") {
		t.Errorf("Render() = %q, want no query block for a BlobSource", got)
	}
}

func TestRenderDependencies(t *testing.T) {
	t.Parallel()

	doc := parseDocument(t, `{
		"name": "Load Sales",
		"properties": {
			"activities": [
				{
					"name": "Publish",
					"type": "ExecutePipeline",
					"dependsOn": [
						{"activity": "A", "dependencyConditions": ["Succeeded", "Completed"]},
						{"activity": "B 2", "dependencyConditions": ["Failed"]}
					]
				}
			]
		}
	}`)

	got := render(t, doc)

	// Only the first condition of each dependency appears, and spaces in
	// the upstream name become hyphens in the link target.
	want := "\n   Dependencies:" +
		"\n   * [A](#A) (Succeeded) \n" +
		"\n   * [B 2](#B-2) (Failed) \n"

	if !strings.Contains(got, want) {
		t.Errorf("Render() = %q, want it to contain %q", got, want)
	}
	if strings.Contains(got, "Completed") {
		t.Errorf("Render() = %q, want the second dependency condition ignored", got)
	}
}

func TestRenderEmptyDependsOn(t *testing.T) {
	t.Parallel()

	doc := parseDocument(t, `{
		"name": "Load Sales",
		"properties": {
			"activities": [
				{"name": "Copy Data", "type": "Copy", "dependsOn": []}
			]
		}
	}`)

	got := render(t, doc)
	if strings.Contains(got, "Dependencies:") {
		t.Errorf("Render() = %q, want no Dependencies label for an empty dependsOn", got)
	}
}

// failAfter fails every write after the first n.
type failAfter struct {
	n int
}

var errWriterBroken = errors.New("writer broken")

func (f *failAfter) Write(p []byte) (int, error) {
	if f.n <= 0 {
		return 0, errWriterBroken
	}
	f.n--
	return len(p), nil
}

func TestRenderPropagatesWriteErrors(t *testing.T) {
	t.Parallel()

	doc := parseDocument(t, `{
		"name": "Load Sales",
		"properties": {
			"activities": [
				{"name": "Copy Data", "type": "Copy", "dependsOn": []}
			]
		}
	}`)

	err := Render(&failAfter{n: 1}, doc)
	if !errors.Is(err, errWriterBroken) {
		t.Errorf("Render() error = %v, want %v", err, errWriterBroken)
	}
}
