package services

import (
	"context"
	"fmt"

	"github.com/vvka-141/linkaudit/internal/checksum"
	"github.com/vvka-141/linkaudit/internal/files/loader"
	"github.com/vvka-141/linkaudit/internal/files/scanner"
	"github.com/vvka-141/linkaudit/internal/records"
	"github.com/vvka-141/linkaudit/pkg/linkaudit"
)

// AuditService implements the Auditor interface.
// Thread-Safety: safe for concurrent Audit() calls as long as the injected
// loader and engines are.
type AuditService struct {
	loader    linkaudit.SourceLoader
	engines   map[linkaudit.Mode]linkaudit.Engine
	checksums checksum.Calculator
	logger    linkaudit.Logger
	rules     linkaudit.Rules
	mode      linkaudit.Mode
}

var _ linkaudit.Auditor = (*AuditService)(nil)

// NewAuditService creates an AuditService with all dependencies injected.
// Panics on nil dependencies; rule and mode problems are returned by Audit.
func NewAuditService(
	sourceLoader linkaudit.SourceLoader,
	engines map[linkaudit.Mode]linkaudit.Engine,
	checksums checksum.Calculator,
	logger linkaudit.Logger,
	rules linkaudit.Rules,
	mode linkaudit.Mode,
) *AuditService {
	if sourceLoader == nil {
		panic("sourceLoader cannot be nil")
	}
	if len(engines) == 0 {
		panic("engines cannot be empty")
	}
	if checksums == nil {
		panic("checksums cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	if mode == "" {
		mode = linkaudit.ModeLine
	}

	return &AuditService{
		loader:    sourceLoader,
		engines:   engines,
		checksums: checksums,
		logger:    logger,
		rules:     rules,
		mode:      mode,
	}
}

// DefaultEngines returns the line scanner and the structural validator keyed by mode.
func DefaultEngines() map[linkaudit.Mode]linkaudit.Engine {
	return map[linkaudit.Mode]linkaudit.Engine{
		linkaudit.ModeLine:       scanner.NewScanner(),
		linkaudit.ModeStructural: records.NewValidator(),
	}
}

// NewDefaultAuditService wires the OS loader, both engines and SHA-256 checksums.
func NewDefaultAuditService(logger linkaudit.Logger, rules linkaudit.Rules, mode linkaudit.Mode) *AuditService {
	return NewAuditService(loader.NewLoader(), DefaultEngines(), checksum.New(), logger, rules, mode)
}

// Audit loads the file at path and scans it. The only runtime failures are
// invalid rules, an unknown mode, an unreadable file and cancellation;
// data problems are returned as findings.
func (s *AuditService) Audit(ctx context.Context, path string) (linkaudit.Result, error) {
	if err := s.rules.Validate(); err != nil {
		return linkaudit.Result{}, err
	}
	engine, ok := s.engines[s.mode]
	if !ok {
		return linkaudit.Result{}, fmt.Errorf("no engine for mode %q: %w", s.mode, linkaudit.ErrUsage)
	}

	if err := ctx.Err(); err != nil {
		return linkaudit.Result{}, err
	}

	s.logger.Verbose("Loading %s", path)
	src, err := s.loader.Load(path)
	if err != nil {
		return linkaudit.Result{}, err
	}
	s.logger.Verbose("Read %d lines (%d bytes)", len(src.Lines), len(src.Content))

	if err := ctx.Err(); err != nil {
		return linkaudit.Result{}, err
	}

	s.logger.Verbose("Scanning in %s mode", s.mode)
	result := engine.Scan(src, s.rules)
	result.Checksum = s.checksums.CalculateRaw(src.Content)
	result.ContentChecksum = s.checksums.CalculateNormalized(src.Content)

	for i := range result.Findings {
		result.Findings[i].ID = linkaudit.FindingID(src.Path, result.Findings[i])
	}

	s.logger.Verbose("Found %d %s fields, %d on %s, %d findings",
		result.PrimaryCount, result.PrimaryField, result.ViolationCount, result.ViolationLabel, len(result.Findings))
	return result, nil
}
