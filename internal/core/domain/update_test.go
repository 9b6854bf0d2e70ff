package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestParseUpdateRecord(t *testing.T) {
	tests := []struct {
		name string
		line string
		want UpdateRecord
		ok   bool
	}{
		{
			name: "yolk_format",
			line: "Django 1.3 (1.4)",
			want: UpdateRecord{Name: "Django", Installed: "1.3", Available: "1.4", Raw: "Django 1.3 (1.4)"},
			ok:   true,
		},
		{
			name: "plain_format",
			line: "  pkgX 1.0 1.1",
			want: UpdateRecord{Name: "pkgX", Installed: "1.0", Available: "1.1", Raw: "pkgX 1.0 1.1"},
			ok:   true,
		},
		{
			name: "name_only",
			line: "pkgY",
			want: UpdateRecord{Name: "pkgY", Raw: "pkgY"},
			ok:   true,
		},
		{
			name: "blank",
			line: "   ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseUpdateRecord(tt.line)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseUpdateRecords_SkipsBlankLines(t *testing.T) {
	records := ParseUpdateRecords([]byte("a 1.0 1.1\n\nb 2.0 (3.0)\n"))

	require.Len(t, records, 2)
	assert.Equal(t, "a", records[0].Name)
	assert.Equal(t, "b", records[1].Name)
}

func TestUpdateRecord_Bump(t *testing.T) {
	tests := []struct {
		installed string
		available string
		want      Bump
	}{
		{"1.0", "2.0", BumpMajor},
		{"1.0", "1.1", BumpMinor},
		{"1.0.1", "1.0.2", BumpPatch},
		{"1.0", "1.0", BumpUnknown},
		{"dev", "1.0", BumpUnknown},
		{"", "", BumpUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.installed+"_"+tt.available, func(t *testing.T) {
			record := UpdateRecord{Name: "pkg", Installed: tt.installed, Available: tt.available}
			assert.Equal(t, tt.want, record.Bump())
		})
	}
}

func TestParseUpdateRecord_NameIsFirstField(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		name := rapid.StringMatching(`[A-Za-z][A-Za-z0-9_.-]{0,15}`).Draw(t, "name")
		installed := rapid.StringMatching(`[0-9]{1,2}\.[0-9]{1,2}`).Draw(t, "installed")
		available := rapid.StringMatching(`[0-9]{1,2}\.[0-9]{1,2}`).Draw(t, "available")

		record, ok := ParseUpdateRecord(" " + name + " " + installed + " (" + available + ")")
		if !ok {
			t.Fatalf("record not parsed")
		}
		if record.Name != name || record.Installed != installed || record.Available != available {
			t.Fatalf("unexpected record %+v", record)
		}
	})
}
