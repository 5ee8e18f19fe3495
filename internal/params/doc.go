// Package params parses repeatable command-line values into rule types.
//
// Forbidden domains are passed as --forbidden-domain flags in host=Label
// form. The label is optional; reports fall back to the host when it is
// missing:
//
//	--forbidden-domain smartstore.naver.com="Smart Store"
//	--forbidden-domain coupang.com
//
// Order is preserved so that the first matching domain names a finding.
package params
