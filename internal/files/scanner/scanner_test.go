package scanner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/linkaudit/internal/files/loader"
	"github.com/vvka-141/linkaudit/pkg/linkaudit"
)

func scan(t *testing.T, lines ...string) linkaudit.Result {
	t.Helper()
	src := linkaudit.Source{
		Path:  "scales.ts",
		Lines: loader.SplitLines(strings.Join(lines, "\n") + "\n"),
	}
	return NewScanner().Scan(src, linkaudit.DefaultRules())
}

func TestScan_NoMarkers(t *testing.T) {
	result := scan(t,
		"export const SCALES = [",
		"  {",
		`    id: "d_kurd_9",`,
		`    productUrl: "https://smartstore.naver.com/sndhandpan/products/1",`,
		"  },",
		"];",
	)

	assert.Equal(t, 0, result.PrimaryCount)
	assert.Equal(t, 0, result.ViolationCount)
	assert.Empty(t, result.Findings)
	assert.False(t, result.HasFindings())
	assert.Equal(t, linkaudit.ModeLine, result.Mode)
}

func TestScan_ForbiddenPrimary(t *testing.T) {
	result := scan(t,
		"  {",
		`  ownUrl: "https://smartstore.naver.com/x",`,
		`  ownUrlEn: "https://shop.example.com/x/en",`,
		"  },",
	)

	assert.Equal(t, 1, result.PrimaryCount)
	assert.Equal(t, 1, result.ViolationCount)
	require.Len(t, result.Findings, 1)
	f := result.Findings[0]
	assert.Equal(t, 2, f.Line)
	assert.Equal(t, linkaudit.KindForbiddenDomain, f.Kind)
	assert.Equal(t, "ownUrl", f.Field)
	assert.Equal(t, `ownUrl points to Smart Store! ownUrl: "https://smartstore.naver.com/x",`, f.Message)
}

func TestScan_ViolationCountMatchesLines(t *testing.T) {
	result := scan(t,
		`ownUrl: "https://smartstore.naver.com/a",`,
		`ownUrlEn: "https://shop.example.com/a",`,
		`ownUrl: "https://shop.example.com/b",`,
		`ownUrlEn: "https://shop.example.com/b",`,
		`ownUrl: "https://smartstore.naver.com/c",`,
		`ownUrlEn: "https://shop.example.com/c",`,
	)

	assert.Equal(t, 3, result.PrimaryCount)
	assert.Equal(t, 2, result.ViolationCount)
	require.Len(t, result.Findings, 2)
	assert.Equal(t, 1, result.Findings[0].Line)
	assert.Equal(t, 5, result.Findings[1].Line)
}

func TestScan_MissingSeparator(t *testing.T) {
	result := scan(t,
		`  ownUrl: "https://shop.example.com/y"`,
		"  price: 10,",
	)

	assert.Equal(t, 1, result.PrimaryCount)
	assert.Equal(t, 0, result.ViolationCount)
	require.Len(t, result.Findings, 1)
	f := result.Findings[0]
	assert.Equal(t, 1, f.Line)
	assert.Equal(t, linkaudit.KindMissingSeparator, f.Kind)
	assert.Equal(t, `ownUrl missing comma? ownUrl: "https://shop.example.com/y"`, f.Message)
}

func TestScan_SeparatorHeuristicAccepts(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
	}{
		{"terminated and followed by secondary", []string{
			`  ownUrl: "https://shop.example.com/y",`,
			`  ownUrlEn: "https://shop.example.com/y/en",`,
		}},
		{"unterminated followed by secondary", []string{
			`  ownUrl: "https://shop.example.com/y"`,
			`  ownUrlEn: "https://shop.example.com/y/en",`,
		}},
		{"unterminated followed by closing brace", []string{
			`  ownUrl: "https://shop.example.com/y"`,
			"  },",
		}},
		{"unterminated on the last line", []string{
			`  ownUrl: "https://shop.example.com/y"`,
		}},
		{"terminated followed by anything", []string{
			`  ownUrl: "https://shop.example.com/y",`,
			"  price: 10,",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := scan(t, tt.lines...)
			assert.Equal(t, 1, result.PrimaryCount)
			assert.Empty(t, result.Findings)
		})
	}
}

func TestScan_ForbiddenSecondaryDoesNotCount(t *testing.T) {
	result := scan(t,
		`  ownUrl: "https://shop.example.com/y",`,
		`  ownUrlEn: "https://smartstore.naver.com/y",`,
	)

	assert.Equal(t, 1, result.PrimaryCount)
	assert.Equal(t, 0, result.ViolationCount)
	require.Len(t, result.Findings, 1)
	f := result.Findings[0]
	assert.Equal(t, 2, f.Line)
	assert.Equal(t, "ownUrlEn", f.Field)
	assert.Equal(t, `ownUrlEn points to Smart Store! ownUrlEn: "https://smartstore.naver.com/y",`, f.Message)
}

func TestScan_SecondaryOnlyIsNotPrimary(t *testing.T) {
	result := scan(t, `ownUrlEn: "https://shop.example.com/y"`, "price: 1,")
	assert.Equal(t, 0, result.PrimaryCount)
	assert.Empty(t, result.Findings)
}

func TestScan_DetectionOrderWithinLine(t *testing.T) {
	result := scan(t,
		`ownUrl: "https://smartstore.naver.com/y"`,
		"price: 10,",
	)

	require.Len(t, result.Findings, 2)
	assert.Equal(t, linkaudit.KindForbiddenDomain, result.Findings[0].Kind)
	assert.Equal(t, linkaudit.KindMissingSeparator, result.Findings[1].Kind)
	assert.Equal(t, 1, result.ViolationCount)
}

func TestScan_CustomRules(t *testing.T) {
	rules := linkaudit.DefaultRules()
	rules.PrimaryField = "shopUrl"
	rules.SecondaryField = "shopUrlEn"
	rules.ForbiddenDomains = []linkaudit.ForbiddenDomain{{Host: "coupang.com", Label: "Coupang"}}

	src := linkaudit.Source{Path: "x.ts", Lines: loader.SplitLines(
		"shopUrl: \"https://www.coupang.com/1\",\nownUrl: \"https://smartstore.naver.com/2\",\n")}
	result := NewScanner().Scan(src, rules)

	assert.Equal(t, 1, result.PrimaryCount)
	assert.Equal(t, 1, result.ViolationCount)
	require.Len(t, result.Findings, 1)
	assert.Equal(t, `shopUrl points to Coupang! shopUrl: "https://www.coupang.com/1",`, result.Findings[0].Message)
	assert.Equal(t, "shopUrl", result.PrimaryField)
	assert.Equal(t, "Coupang", result.ViolationLabel)
}

func TestScan_Idempotent(t *testing.T) {
	lines := []string{
		`ownUrl: "https://smartstore.naver.com/a"`,
		"price: 1,",
		`ownUrlEn: "https://smartstore.naver.com/a",`,
	}
	assert.Equal(t, scan(t, lines...), scan(t, lines...))
}

func TestScan_CROnlyLineEndings(t *testing.T) {
	content := "x {\r  ownUrl: \"https://smartstore.naver.com/x\"\r  price: 1\r}\r"
	src := linkaudit.Source{Path: "scales.ts", Content: []byte(content), Lines: loader.SplitLines(content)}

	result := NewScanner().Scan(src, linkaudit.DefaultRules())

	assert.Equal(t, 1, result.PrimaryCount)
	assert.Equal(t, 1, result.ViolationCount)
	require.Len(t, result.Findings, 2)
	assert.Equal(t, `Line 2: ownUrl points to Smart Store! ownUrl: "https://smartstore.naver.com/x"`, result.Findings[0].String())
	assert.Equal(t, `Line 2: ownUrl missing comma? ownUrl: "https://smartstore.naver.com/x"`, result.Findings[1].String())
}

func TestScan_FindingColumns(t *testing.T) {
	result := scan(t,
		`  ownUrl: "https://smartstore.naver.com/x", ownUrlEn: "https://smartstore.naver.com/y",`,
	)

	require.Len(t, result.Findings, 2)
	assert.Equal(t, 3, result.Findings[0].Column)
	assert.Equal(t, 45, result.Findings[1].Column)
}
