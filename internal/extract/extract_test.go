// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PhycomEspol/SSC/internal/pattern"
)

func compileAll(t *testing.T, sources ...string) []pattern.Pattern {
	t.Helper()
	pats := make([]pattern.Pattern, 0, len(sources))
	for _, src := range sources {
		p, err := pattern.Compile(src)
		require.NoError(t, err)
		pats = append(pats, p)
	}
	return pats
}

func TestName(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		sources []string
		want    string
		wantOK  bool
	}{
		{
			name:    "extracts capture group one",
			text:    "Se certifica que\nOtorga a: María Pérez\nPor su participación",
			sources: []string{`Otorga a:\s*(.+?)(?:\n|$)`},
			want:    "María Pérez",
			wantOK:  true,
		},
		{
			name:    "first matching pattern wins",
			text:    "Otorga a: Primera Persona\nCertifica a: Segunda Persona",
			sources: []string{`Certifica a:\s*(.+?)(?:\n|$)`, `Otorga a:\s*(.+?)(?:\n|$)`},
			want:    "Segunda Persona",
			wantOK:  true,
		},
		{
			name:    "line break truncates the capture",
			text:    "Otorga a: Jane Doe\nPor su excelente labor",
			sources: []string{`Otorga a:\s*(.+)`},
			want:    "Jane Doe",
			wantOK:  true,
		},
		{
			name:    "internal whitespace collapses to single spaces",
			text:    "Otorga a: Ana \t  Sofía   Ruiz",
			sources: []string{`Otorga a:\s*(.+?)$`},
			want:    "Ana Sofía Ruiz",
			wantOK:  true,
		},
		{
			name:    "capture of two runes or fewer is rejected",
			text:    "Otorga a: Jo\nCertifica a: Joaquín",
			sources: []string{`Otorga a:\s*(.+?)(?:\n|$)`, `Certifica a:\s*(.+?)(?:\n|$)`},
			want:    "Joaquín",
			wantOK:  true,
		},
		{
			name:    "no pattern matches",
			text:    "Diploma de asistencia sin nombre",
			sources: []string{`Otorga a:\s*(.+?)(?:\n|$)`},
			wantOK:  false,
		},
		{
			name:    "empty pattern set",
			text:    "Otorga a: Jane Doe",
			sources: nil,
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Name(tt.text, compileAll(t, tt.sources...))
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNameWithDefaults(t *testing.T) {
	pats := pattern.Defaults()

	got, ok := Name("CERTIFICA A: Ana Ruiz\n", pats)
	require.True(t, ok)
	assert.Equal(t, "Ana Ruiz", got)

	got, ok = Name("Se otorga el presente reconocimiento a:\nCarlos Vera Por su dedicación", pats)
	require.True(t, ok)
	assert.Equal(t, "Carlos Vera", got)
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain name passes through",
			in:   "María Pérez",
			want: "María Pérez",
		},
		{
			name: "reserved characters are stripped",
			in:   `Jane<>:"/\|?*Doe`,
			want: "JaneDoe",
		},
		{
			name: "whitespace runs collapse and edges trim",
			in:   "  Jane \t\n Doe  ",
			want: "Jane Doe",
		},
		{
			name: "all-invalid input yields the placeholder",
			in:   `<>:"/\|?*`,
			want: Placeholder,
		},
		{
			name: "empty input yields the placeholder",
			in:   "",
			want: Placeholder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.in))
		})
	}
}

func TestSanitizeCapsLength(t *testing.T) {
	got := Sanitize(strings.Repeat("á", 150))
	assert.Equal(t, strings.Repeat("á", 100), got)
}
