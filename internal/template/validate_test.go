package template

import (
	"errors"
	"strings"
	"testing"
)

// mustParse decodes a document that is expected to be well-formed YAML.
func mustParse(t *testing.T, doc string) *Document {
	t.Helper()
	d, err := Parse([]byte(doc), "test.yaml")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return d
}

func validationIssues(t *testing.T, err error) []*Issue {
	t.Helper()
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("error is %T, want *ValidationError: %v", err, err)
	}
	return vErr.Issues
}

func hasIssue(issues []*Issue, pathContains, msgContains string) bool {
	for _, is := range issues {
		if strings.Contains(is.Path, pathContains) && strings.Contains(is.Message, msgContains) {
			return true
		}
	}
	return false
}

func TestValidate_CollectsAllIssues(t *testing.T) {
	doc := `description: broken on purpose
structure:
  - name: src
    type: folder
  - name: notes.txt
    type: file
    children:
      - name: nested
        type: directory
  - name: src
    type: directory
`
	_, _, err := mustParse(t, doc).Validate()
	issues := validationIssues(t, err)

	want := []struct {
		path string
		msg  string
	}{
		{"", "name is required"},
		{"structure[0]", `type must be "directory" or "file"`},
		{"structure[1]", "file node cannot have children"},
		{"structure", "duplicate sibling name"},
	}
	for _, w := range want {
		if !hasIssue(issues, w.path, w.msg) {
			t.Errorf("missing issue %q at path containing %q; got %v", w.msg, w.path, err)
		}
	}
	if len(issues) != len(want) {
		t.Errorf("issue count = %d, want %d:\n%v", len(issues), len(want), err)
	}
}

func TestValidate_StructureRules(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		path    string
		msg     string
		wantErr bool
	}{
		{
			name:    "structure absent",
			doc:     "name: t\n",
			msg:     "structure is required",
			wantErr: true,
		},
		{
			name:    "structure is a mapping",
			doc:     "name: t\nstructure:\n  src: {}\n",
			msg:     "structure must be a sequence, not a mapping",
			wantErr: true,
		},
		{
			name:    "structure is a scalar",
			doc:     "name: t\nstructure: yes\n",
			msg:     "structure must be a sequence, not a scalar",
			wantErr: true,
		},
		{
			name: "empty structure is valid",
			doc:  "name: t\nstructure: []\n",
		},
		{
			name:    "node is not a mapping",
			doc:     "name: t\nstructure:\n  - just-a-string\n",
			path:    "structure[0]",
			msg:     "node must be a mapping, not a scalar",
			wantErr: true,
		},
		{
			name:    "node name missing",
			doc:     "name: t\nstructure:\n  - type: file\n",
			path:    "structure[0]",
			msg:     "name is required",
			wantErr: true,
		},
		{
			name:    "node name empty",
			doc:     "name: t\nstructure:\n  - name: \"\"\n    type: file\n",
			path:    "structure[0]",
			msg:     "name is required",
			wantErr: true,
		},
		{
			name:    "node name with separator",
			doc:     "name: t\nstructure:\n  - name: a/b\n    type: file\n",
			path:    "structure[0]",
			msg:     "name cannot contain path separators",
			wantErr: true,
		},
		{
			name:    "node name parent reference",
			doc:     "name: t\nstructure:\n  - name: \"..\"\n    type: directory\n",
			path:    "structure[0]",
			msg:     `name cannot be ".."`,
			wantErr: true,
		},
		{
			name:    "node name numeric",
			doc:     "name: t\nstructure:\n  - name: 42\n    type: file\n",
			path:    "structure[0]",
			msg:     "name must be a string",
			wantErr: true,
		},
		{
			name:    "node type missing",
			doc:     "name: t\nstructure:\n  - name: src\n",
			path:    "structure[0]",
			msg:     "type is required",
			wantErr: true,
		},
		{
			name:    "node type wrong case",
			doc:     "name: t\nstructure:\n  - name: src\n    type: Directory\n",
			path:    "structure[0]",
			msg:     `type must be "directory" or "file"`,
			wantErr: true,
		},
		{
			name:    "children not a sequence",
			doc:     "name: t\nstructure:\n  - name: src\n    type: directory\n    children: nope\n",
			path:    "structure[0]",
			msg:     "children must be a sequence, not a scalar",
			wantErr: true,
		},
		{
			name: "file with empty children list",
			doc:  "name: t\nstructure:\n  - name: f\n    type: file\n    children: []\n",
		},
		{
			name: "directory with no children",
			doc:  "name: t\nstructure:\n  - name: src\n    type: directory\n",
		},
		{
			name: "sibling names differing by case",
			doc:  "name: t\nstructure:\n  - name: Src\n    type: directory\n  - name: src\n    type: directory\n",
		},
		{
			name: "same name in different directories",
			doc: `name: t
structure:
  - name: a
    type: directory
    children:
      - name: main.go
        type: file
  - name: b
    type: directory
    children:
      - name: main.go
        type: file
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := mustParse(t, tt.doc).Validate()
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}
			issues := validationIssues(t, err)
			if !hasIssue(issues, tt.path, tt.msg) {
				t.Errorf("missing issue %q at path containing %q; got %v", tt.msg, tt.path, err)
			}
		})
	}
}

func TestValidate_NestedPathLabels(t *testing.T) {
	doc := `name: t
structure:
  - name: src
    type: directory
    children:
      - name: ok.go
        type: file
      - name: bad
        type: blob
`
	_, _, err := mustParse(t, doc).Validate()
	issues := validationIssues(t, err)

	if !hasIssue(issues, "structure[0].children[1]", "type must be") {
		t.Errorf("issue path should point at the nested child; got %v", err)
	}
}

func TestValidate_DuplicateReportsParentPath(t *testing.T) {
	doc := `name: t
structure:
  - name: src
    type: directory
    children:
      - name: app.go
        type: file
      - name: app.go
        type: file
`
	_, _, err := mustParse(t, doc).Validate()
	issues := validationIssues(t, err)

	found := false
	for _, is := range issues {
		if is.Path == "structure[0].children" && is.Value == "app.go" &&
			strings.Contains(is.Message, "duplicate sibling name") {
			found = true
		}
	}
	if !found {
		t.Errorf("duplicate issue should carry parent path and name; got %v", err)
	}
}

func TestValidate_TemplateNameRules(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		msg  string
	}{
		{"name absent", "structure: []\n", "name is required"},
		{"name empty", "name: \"\"\nstructure: []\n", "name is required"},
		{"name with slash", "name: a/b\nstructure: []\n", "name cannot contain path separators"},
		{"name with backslash", "name: a\\b\nstructure: []\n", "name cannot contain path separators"},
		{"name is dot", "name: .\nstructure: []\n", `name cannot be "."`},
		{"name not a string", "name: 7\nstructure: []\n", "name must be a string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := mustParse(t, tt.doc).Validate()
			issues := validationIssues(t, err)
			if !hasIssue(issues, "", tt.msg) {
				t.Errorf("missing issue %q; got %v", tt.msg, err)
			}
		})
	}
}

func TestValidate_Variables(t *testing.T) {
	t.Run("non-mapping variables", func(t *testing.T) {
		_, _, err := mustParse(t, "name: t\nvariables:\n  - a\nstructure: []\n").Validate()
		issues := validationIssues(t, err)
		if !hasIssue(issues, "", "variables must be a mapping, not a sequence") {
			t.Errorf("missing variables issue; got %v", err)
		}
	})

	t.Run("non-scalar value", func(t *testing.T) {
		_, _, err := mustParse(t, "name: t\nvariables:\n  author:\n    nested: x\nstructure: []\n").Validate()
		issues := validationIssues(t, err)
		if !hasIssue(issues, "variables.author", "value must be a scalar") {
			t.Errorf("missing variables.author issue; got %v", err)
		}
	})

	t.Run("null value becomes empty string", func(t *testing.T) {
		tmpl, _, err := mustParse(t, "name: t\nvariables:\n  author:\nstructure: []\n").Validate()
		if err != nil {
			t.Fatalf("Validate() error = %v", err)
		}
		if got, ok := tmpl.Variables["author"]; !ok || got != "" {
			t.Errorf("Variables[author] = %q, %v; want empty string present", got, ok)
		}
	})

	t.Run("empty variables section", func(t *testing.T) {
		tmpl, _, err := mustParse(t, "name: t\nvariables:\nstructure: []\n").Validate()
		if err != nil {
			t.Fatalf("Validate() error = %v", err)
		}
		if len(tmpl.Variables) != 0 {
			t.Errorf("Variables = %v, want empty", tmpl.Variables)
		}
	})
}

func TestValidate_Warnings(t *testing.T) {
	t.Run("unknown top-level key warns", func(t *testing.T) {
		tmpl, warnings, err := mustParse(t, "name: t\nlicense: MIT\nstructure: []\n").Validate()
		if err != nil {
			t.Fatalf("Validate() error = %v", err)
		}
		if tmpl == nil {
			t.Fatal("expected template despite warning")
		}
		if len(warnings) != 1 || !strings.Contains(warnings[0], `unknown key "license"`) {
			t.Errorf("warnings = %v, want unknown-key warning", warnings)
		}
	})

	t.Run("unknown node key warns", func(t *testing.T) {
		_, warnings, err := mustParse(t, "name: t\nstructure:\n  - name: f\n    type: file\n    mode: 0755\n").Validate()
		if err != nil {
			t.Fatalf("Validate() error = %v", err)
		}
		found := false
		for _, w := range warnings {
			if strings.Contains(w, "structure[0]") && strings.Contains(w, `unknown key "mode"`) {
				found = true
			}
		}
		if !found {
			t.Errorf("warnings = %v, want node unknown-key warning", warnings)
		}
	})

	t.Run("directory content warns", func(t *testing.T) {
		_, warnings, err := mustParse(t, "name: t\nstructure:\n  - name: src\n    type: directory\n    content: huh\n").Validate()
		if err != nil {
			t.Fatalf("Validate() error = %v", err)
		}
		found := false
		for _, w := range warnings {
			if strings.Contains(w, "content is ignored for directory nodes") {
				found = true
			}
		}
		if !found {
			t.Errorf("warnings = %v, want directory-content warning", warnings)
		}
	})

	t.Run("warnings survive validation failure", func(t *testing.T) {
		_, warnings, err := mustParse(t, "license: MIT\nstructure: []\n").Validate()
		if err == nil {
			t.Fatal("expected validation error for missing name")
		}
		if len(warnings) != 1 {
			t.Errorf("warnings = %v, want unknown-key warning alongside error", warnings)
		}
	})
}

func TestValidationError_Rendering(t *testing.T) {
	_, _, err := mustParse(t, "structure:\n  - name: a\n    type: x\n").Validate()
	msg := err.Error()

	if !strings.Contains(msg, "2 validation issues") {
		t.Errorf("error = %q, want aggregated header", msg)
	}
	if !strings.Contains(msg, "structure[0]") {
		t.Errorf("error = %q, want node path", msg)
	}
	if !strings.Contains(msg, `(got "x")`) {
		t.Errorf("error = %q, want offending value", msg)
	}
}

func TestCheckName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"simple", "web-api", ""},
		{"with dots", "v1.2-layout", ""},
		{"empty", "", "name is required"},
		{"slash", "a/b", "path separators"},
		{"backslash", `a\b`, "path separators"},
		{"dot", ".", `cannot be "."`},
		{"dotdot", "..", `cannot be ".."`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckName(tt.input)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("CheckName(%q) = %v, want nil", tt.input, err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("CheckName(%q) = %v, want error containing %q", tt.input, err, tt.wantErr)
			}
		})
	}
}
