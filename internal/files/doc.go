// Package files groups the data-file plumbing into sub-packages:
//   - filesystem: Filesystem abstraction (OS and in-memory)
//   - loader: Reads a data file, checks UTF-8 and splits it into lines
//   - scanner: The line-oriented product-link checks
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/linkaudit/internal/files/loader"
//	    "github.com/vvka-141/linkaudit/internal/files/scanner"
//	)
//
//	src, err := loader.NewLoader().Load("data/handpan-data/scales.ts")
//	if err != nil {
//	    return err
//	}
//	result := scanner.NewScanner().Scan(src, linkaudit.DefaultRules())
package files
