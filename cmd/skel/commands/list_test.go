package commands

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestListTemplates_Empty(t *testing.T) {
	setupHome(t)

	var out bytes.Buffer
	if err := listTemplates(&out, "", false, false, false); err != nil {
		t.Fatalf("listTemplates() error = %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "(no templates)") {
		t.Errorf("output = %q, want empty notice", got)
	}
	if !strings.Contains(got, "skel create") {
		t.Errorf("output = %q, want create hint", got)
	}
}

func TestListTemplates_ShowsEntries(t *testing.T) {
	setupHome(t)
	seedTemplate(t, "web-api", sampleDoc)
	seedTemplate(t, "cli-tool", docNamed("cli-tool"))

	var out bytes.Buffer
	if err := listTemplates(&out, "", false, false, false); err != nil {
		t.Fatalf("listTemplates() error = %v", err)
	}
	got := out.String()
	for _, want := range []string{"web-api", "cli-tool", "demo project", "(2 templates)"} {
		if !strings.Contains(got, want) {
			t.Errorf("output = %q, want contain %q", got, want)
		}
	}
}

func TestListTemplates_Query(t *testing.T) {
	setupHome(t)
	seedTemplate(t, "web-api", sampleDoc)
	seedTemplate(t, "cli-tool", docNamed("cli-tool"))

	var out bytes.Buffer
	if err := listTemplates(&out, "web", false, false, false); err != nil {
		t.Fatalf("listTemplates() error = %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "web-api") {
		t.Errorf("output = %q, want matching entry", got)
	}
	if strings.Contains(got, "cli-tool") {
		t.Errorf("output = %q, must not contain non-matching entry", got)
	}
}

func TestListTemplates_Partitions(t *testing.T) {
	setupHome(t)
	st := seedTemplate(t, "active-one", docNamed("active-one"))
	seedTemplate(t, "archived-one", docNamed("archived-one"))
	if err := st.Archive("archived-one"); err != nil {
		t.Fatalf("archiving: %v", err)
	}

	var active bytes.Buffer
	if err := listTemplates(&active, "", false, false, false); err != nil {
		t.Fatalf("listTemplates() error = %v", err)
	}
	if strings.Contains(active.String(), "archived-one") {
		t.Error("active listing must not show archived templates")
	}

	var archived bytes.Buffer
	if err := listTemplates(&archived, "", true, false, false); err != nil {
		t.Fatalf("listTemplates() error = %v", err)
	}
	if !strings.Contains(archived.String(), "archived-one") {
		t.Error("archived listing must show archived templates")
	}
	if strings.Contains(archived.String(), "active-one") {
		t.Error("archived listing must not show active templates")
	}

	var all bytes.Buffer
	if err := listTemplates(&all, "", false, true, false); err != nil {
		t.Fatalf("listTemplates() error = %v", err)
	}
	got := all.String()
	for _, want := range []string{"active-one", "archived-one", "Status"} {
		if !strings.Contains(got, want) {
			t.Errorf("output = %q, want contain %q", got, want)
		}
	}
}

func TestListTemplates_JSON(t *testing.T) {
	setupHome(t)
	st := seedTemplate(t, "web-api", sampleDoc)
	seedTemplate(t, "old", docNamed("old"))
	if err := st.Archive("old"); err != nil {
		t.Fatalf("archiving: %v", err)
	}

	var out bytes.Buffer
	if err := listTemplates(&out, "", false, true, true); err != nil {
		t.Fatalf("listTemplates() error = %v", err)
	}

	var entries []summaryJSON
	if err := json.Unmarshal(out.Bytes(), &entries); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out.String())
	}
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	byName := map[string]summaryJSON{}
	for _, entry := range entries {
		byName[entry.Name] = entry
	}
	if got := byName["web-api"]; got.Description != "demo project" || got.Version != "1.0" || got.Archived {
		t.Errorf("web-api entry = %+v", got)
	}
	if got := byName["old"]; !got.Archived {
		t.Errorf("old entry = %+v, want archived", got)
	}
}

func TestListTemplates_BrokenEntrySurvives(t *testing.T) {
	home := setupHome(t)
	seedTemplate(t, "good", docNamed("good"))
	breakStoredTemplate(t, home, "broken.yaml")

	var out bytes.Buffer
	if err := listTemplates(&out, "", false, false, false); err != nil {
		t.Fatalf("listTemplates() error = %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "good") || !strings.Contains(got, "broken") {
		t.Errorf("output = %q, want both entries", got)
	}
	if !strings.Contains(got, "invalid") {
		t.Errorf("output = %q, want the broken entry marked invalid", got)
	}
}

func TestListCmd_Metadata(t *testing.T) {
	if got := listCmd.Use; !strings.HasPrefix(got, "list") {
		t.Errorf("Use = %q, want list", got)
	}
	for _, flag := range []string{"archived", "all", "json"} {
		if listCmd.Flags().Lookup(flag) == nil {
			t.Errorf("missing --%s flag", flag)
		}
	}
}
