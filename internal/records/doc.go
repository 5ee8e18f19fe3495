// Package records validates product links on parsed records instead of raw lines.
//
// # Overview
//
// The line scanner guesses structure from commas and braces. This package
// tokenizes the data file, extracts every object literal with its
// properties, and runs the same checks on the parsed model:
//
//	{
//	    id: "d_kurd_9",
//	    ownUrl: "https://handpan.co.kr/shop/?idx=75",
//	    ownUrlEn: "https://handpanen.imweb.me/shop/?idx=75"
//	}
//
// Because properties are known exactly, a primary field that is the last
// property of its object never needs a separator, and a missing separator
// is found wherever the next property starts, regardless of field order.
//
// # Scope
//
// The parser is tolerant rather than complete. It understands comments,
// string and template literals, identifiers, numbers and punctuation, and
// recovers from malformed input by reporting a SyntaxError and moving on.
// It does not evaluate expressions, resolve spreads, or follow imports.
// Both the configured separator and ';' terminate a property, so type
// literals such as interface bodies parse cleanly.
package records
