// Package report renders audit results as text, JSON or YAML.
//
// The plain text report is the canonical output:
//
//	Total ownUrl found: 12
//	Total Smart Store in ownUrl: 1
//	Errors found:
//	Line 40: ownUrl points to Smart Store! ownUrl: "https://smartstore.naver.com/x",
//
// Rendering the same result twice produces identical bytes.
package report
