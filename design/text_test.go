package design

import "testing"

func TestFlattenRuns(t *testing.T) {
	tests := []struct {
		name     string
		run      *TextRun
		expected string
	}{
		{"nil run", nil, ""},
		{"single leaf", &TextRun{Text: "hello"}, "hello"},
		{
			"nested containers in document order",
			&TextRun{Children: []TextRun{
				{Text: "A"},
				{Children: []TextRun{{Text: "B"}}},
				{Text: "C"},
			}},
			"ABC",
		},
		{"empty container", &TextRun{Children: []TextRun{{}, {}}}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FlattenRuns(tt.run); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestFlattenValue(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{
			"mixed leaves and containers",
			map[string]any{"children": []any{
				map[string]any{"text": "A"},
				map[string]any{"children": []any{map[string]any{"text": "B"}}},
				map[string]any{"text": "C"},
			}},
			"ABC",
		},
		{"bare string", "plain", "plain"},
		{"list of strings", []any{"a", "b"}, "ab"},
		{"unrecognized shape", 42, ""},
		{"unrecognized nested shape", map[string]any{"children": []any{3.14, "x"}}, "x"},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FlattenValue(tt.value); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestRunsFromValue(t *testing.T) {
	run := RunsFromValue(map[string]any{"children": []any{
		map[string]any{"text": "A"},
		"B",
		map[string]any{"bogus": true},
	}})
	if run == nil {
		t.Fatal("expected runs")
	}
	if got := FlattenRuns(run); got != "AB" {
		t.Errorf("expected AB, got %q", got)
	}

	if RunsFromValue(12) != nil {
		t.Error("expected nil for unrecognized shape")
	}
}
