package mdtable

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		minFields int
		want      [][]string
	}{
		{
			name: "well formed rows",
			text: "| Title | URL |\n|---|---|\n| Docs | https://docs.example.com |\n| Blog | https://blog.example.com |",
			minFields: 2,
			want: [][]string{
				{"Docs", "https://docs.example.com"},
				{"Blog", "https://blog.example.com"},
			},
		},
		{
			name:      "header and separator only",
			text:      "| Title | URL |\n|---|---|",
			minFields: 2,
			want:      nil,
		},
		{
			name:      "empty text",
			text:      "",
			minFields: 2,
			want:      nil,
		},
		{
			name:      "malformed row dropped, well formed kept",
			text:      "| A | B | C |\n|---|---|---|\n| only two | fields |\n| one | two | three |",
			minFields: 3,
			want:      [][]string{{"one", "two", "three"}},
		},
		{
			name:      "lines without delimiter ignored",
			text:      "| A | B |\n|---|---|\nthis is prose, not a row\n| x | y |",
			minFields: 2,
			want:      [][]string{{"x", "y"}},
		},
		{
			name:      "whitespace trimmed and outer delimiters stripped",
			text:      "|A|B|\n|---|---|\n  |  padded  |fields |  ",
			minFields: 2,
			want:      [][]string{{"padded", "fields"}},
		},
		{
			name:      "row without leading delimiter still splits",
			text:      "| A | B |\n|---|---|\nleft | right",
			minFields: 2,
			want:      [][]string{{"left", "right"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.text, tt.minFields)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseIsRestartable(t *testing.T) {
	text := "| A | B |\n|---|---|\n| 1 | 2 |\n| 3 | 4 |"

	first := Parse(text, 2)
	second := Parse(text, 2)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Parse() not deterministic: %v vs %v", first, second)
	}
}

func TestGenerateParseRoundTrip(t *testing.T) {
	header := []string{"Title", "URL", "Description"}
	rows := [][]string{
		{"个人简历分析", "https://analysisresume.netlify.app/", "上传简历产出分析报告"},
		{"Docs", "https://docs.example.com", "plain ascii"},
	}

	text := Generate(header, rows)
	got := Parse(text, 3)
	if !reflect.DeepEqual(got, rows) {
		t.Errorf("parse(generate(rows)) = %v, want %v", got, rows)
	}
}

func TestGenerateEmptyTable(t *testing.T) {
	text := Generate([]string{"A", "B"}, nil)
	want := "| A | B |\n|---|---|"
	if text != want {
		t.Errorf("Generate() = %q, want %q", text, want)
	}
	if rows := Parse(text, 2); rows != nil {
		t.Errorf("Parse() of empty table = %v, want nil", rows)
	}
}

func TestHeader(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "five column header",
			text: "| Actor | IP | Location | Time | Count |\n|---|---|---|---|---|",
			want: []string{"Actor", "IP", "Location", "Time", "Count"},
		},
		{
			name: "legacy four column header",
			text: "| IP | Location | Time | Count |\n|---|---|---|---|",
			want: []string{"IP", "Location", "Time", "Count"},
		},
		{
			name: "no delimiter anywhere",
			text: "just text",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Header(tt.text); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Header() = %v, want %v", got, tt.want)
			}
		})
	}
}
