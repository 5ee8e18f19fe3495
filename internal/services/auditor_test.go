package services

import (
	"context"
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/linkaudit/internal/checksum"
	"github.com/vvka-141/linkaudit/internal/files/filesystem"
	"github.com/vvka-141/linkaudit/internal/files/loader"
	"github.com/vvka-141/linkaudit/internal/logging"
	"github.com/vvka-141/linkaudit/pkg/linkaudit"
)

const scalesPath = "/data/scales.ts"

const scalesFixture = `export const scales = [
  {
    name: "Kurd",
    ownUrl: "https://smartstore.naver.com/handpan/1"
    ownUrlEn: "https://example.com/en/kurd",
  },
  {
    name: "Celtic",
    ownUrl: "https://example.com/celtic",
    ownUrlEn: "https://smartstore.naver.com/handpan/2",
  },
];
`

func newTestService(t *testing.T, mode linkaudit.Mode, rules linkaudit.Rules) (*AuditService, *filesystem.MemoryFileSystem) {
	t.Helper()
	mfs := filesystem.NewMemoryFileSystem("/")
	mfs.AddFile(scalesPath, scalesFixture)
	svc := NewAuditService(loader.NewLoaderWithFS(mfs), DefaultEngines(), checksum.New(), logging.NewNullLogger(), rules, mode)
	return svc, mfs
}

func TestAudit_LineMode(t *testing.T) {
	svc, _ := newTestService(t, linkaudit.ModeLine, linkaudit.DefaultRules())

	result, err := svc.Audit(context.Background(), scalesPath)
	require.NoError(t, err)

	assert.Equal(t, scalesPath, result.Source)
	assert.Equal(t, linkaudit.ModeLine, result.Mode)
	assert.Equal(t, 2, result.PrimaryCount)
	assert.Equal(t, 1, result.ViolationCount)
	// A primary line followed by the secondary field is not flagged in line mode.
	require.Len(t, result.Findings, 2)

	assert.Equal(t, "Line 4: ownUrl points to Smart Store! ownUrl: \"https://smartstore.naver.com/handpan/1\"", result.Findings[0].String())
	assert.Equal(t, "Line 10: ownUrlEn points to Smart Store! ownUrlEn: \"https://smartstore.naver.com/handpan/2\",", result.Findings[1].String())
}

func TestAudit_StructuralMode(t *testing.T) {
	svc, _ := newTestService(t, linkaudit.ModeStructural, linkaudit.DefaultRules())

	result, err := svc.Audit(context.Background(), scalesPath)
	require.NoError(t, err)

	assert.Equal(t, linkaudit.ModeStructural, result.Mode)
	assert.Equal(t, 2, result.PrimaryCount)
	assert.Equal(t, 1, result.ViolationCount)
	require.Len(t, result.Findings, 3)
	assert.Equal(t, linkaudit.KindMissingSeparator, result.Findings[1].Kind)
	assert.Equal(t, 4, result.Findings[1].Line)
}

func TestAudit_ChecksumsAndIDs(t *testing.T) {
	svc, _ := newTestService(t, linkaudit.ModeLine, linkaudit.DefaultRules())

	first, err := svc.Audit(context.Background(), scalesPath)
	require.NoError(t, err)
	second, err := svc.Audit(context.Background(), scalesPath)
	require.NoError(t, err)

	calc := checksum.New()
	assert.Equal(t, calc.CalculateRaw([]byte(scalesFixture)), first.Checksum)
	assert.Equal(t, calc.CalculateNormalized([]byte(scalesFixture)), first.ContentChecksum)

	assert.Equal(t, first, second, "repeated audits of an unchanged file must be identical")

	ids := map[string]bool{}
	for _, f := range first.Findings {
		assert.Equal(t, linkaudit.FindingID(scalesPath, f), f.ID)
		ids[f.ID.String()] = true
	}
	assert.Len(t, ids, len(first.Findings), "finding IDs must be unique")
}

func TestAudit_UnreadableInput(t *testing.T) {
	svc, mfs := newTestService(t, linkaudit.ModeLine, linkaudit.DefaultRules())
	mfs.AddUnreadableFile("/data/locked.ts", fs.ErrPermission)

	tests := []struct {
		name string
		path string
	}{
		{name: "missing", path: "/data/absent.ts"},
		{name: "permission denied", path: "/data/locked.ts"},
		{name: "empty path", path: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.Audit(context.Background(), tt.path)
			require.Error(t, err)
			assert.ErrorIs(t, err, linkaudit.ErrUnreadableInput)
			assert.Equal(t, linkaudit.Result{}, result, "no partial result on failure")
		})
	}
}

func TestAudit_InvalidRules(t *testing.T) {
	rules := linkaudit.DefaultRules()
	rules.ForbiddenDomains = nil
	svc, mfs := newTestService(t, linkaudit.ModeLine, rules)

	_, err := svc.Audit(context.Background(), scalesPath)
	assert.ErrorIs(t, err, linkaudit.ErrInvalidConfig)
	assert.Zero(t, mfs.Reads(), "rules are validated before the file is read")
}

func TestAudit_UnknownMode(t *testing.T) {
	svc, _ := newTestService(t, linkaudit.Mode("xml"), linkaudit.DefaultRules())

	_, err := svc.Audit(context.Background(), scalesPath)
	assert.ErrorIs(t, err, linkaudit.ErrUsage)
}

func TestAudit_CancelledBeforeLoad(t *testing.T) {
	svc, mfs := newTestService(t, linkaudit.ModeLine, linkaudit.DefaultRules())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Audit(ctx, scalesPath)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Zero(t, mfs.Reads())
}

func TestAudit_UsesSelectedEngine(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/")
	mfs.AddFile(scalesPath, scalesFixture)
	line := &mockEngine{result: linkaudit.Result{Mode: linkaudit.ModeLine}}
	structural := &mockEngine{result: linkaudit.Result{
		Mode:     linkaudit.ModeStructural,
		Findings: []linkaudit.Finding{{Line: 2, Kind: linkaudit.KindSyntax, Message: "bad"}},
	}}
	logger := &recordingLogger{}

	svc := NewAuditService(loader.NewLoaderWithFS(mfs), map[linkaudit.Mode]linkaudit.Engine{
		linkaudit.ModeLine:       line,
		linkaudit.ModeStructural: structural,
	}, checksum.New(), logger, linkaudit.DefaultRules(), linkaudit.ModeStructural)

	result, err := svc.Audit(context.Background(), scalesPath)
	require.NoError(t, err)

	assert.Equal(t, 0, line.calls)
	assert.Equal(t, 1, structural.calls)
	require.Len(t, result.Findings, 1)
	assert.NotEqual(t, [16]byte{}, [16]byte(result.Findings[0].ID))
	assert.NotEmpty(t, logger.messages)
}

func TestAudit_DefaultsToLineMode(t *testing.T) {
	svc, _ := newTestService(t, "", linkaudit.DefaultRules())

	result, err := svc.Audit(context.Background(), scalesPath)
	require.NoError(t, err)
	assert.Equal(t, linkaudit.ModeLine, result.Mode)
}

func TestNewAuditService_PanicsOnNil(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/")
	l := loader.NewLoaderWithFS(mfs)
	rules := linkaudit.DefaultRules()

	assert.Panics(t, func() {
		NewAuditService(nil, DefaultEngines(), checksum.New(), logging.NewNullLogger(), rules, linkaudit.ModeLine)
	})
	assert.Panics(t, func() {
		NewAuditService(l, nil, checksum.New(), logging.NewNullLogger(), rules, linkaudit.ModeLine)
	})
	assert.Panics(t, func() {
		NewAuditService(l, DefaultEngines(), nil, logging.NewNullLogger(), rules, linkaudit.ModeLine)
	})
	assert.Panics(t, func() {
		NewAuditService(l, DefaultEngines(), checksum.New(), nil, rules, linkaudit.ModeLine)
	})
}

func TestAudit_SameLineFindingsGetDistinctIDs(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{
			name:    "nested forbidden links",
			content: `{ ownUrl: "https://smartstore.naver.com/a", x: { ownUrl: "https://smartstore.naver.com/b" } }`,
			want:    2,
		},
		{name: "unclosed braces", content: "{ a: { b: {", want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mfs := filesystem.NewMemoryFileSystem("/")
			mfs.AddFile(scalesPath, tt.content)
			svc := NewAuditService(loader.NewLoaderWithFS(mfs), DefaultEngines(), checksum.New(),
				logging.NewNullLogger(), linkaudit.DefaultRules(), linkaudit.ModeStructural)

			result, err := svc.Audit(context.Background(), scalesPath)
			require.NoError(t, err)
			require.Len(t, result.Findings, tt.want)

			ids := map[string]bool{}
			for _, f := range result.Findings {
				ids[f.ID.String()] = true
			}
			assert.Len(t, ids, tt.want)
		})
	}
}
