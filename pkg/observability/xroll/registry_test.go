package xroll

import (
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uint32Ptr(v uint32) *uint32 { return &v }

func TestDefaultRegistry_Kinds(t *testing.T) {
	assert.Equal(t, []string{KindDelete, KindFixedWindow}, DefaultRegistry().Kinds())
	assert.Empty(t, NewRegistry().Kinds())
}

func TestRegistry_Register(t *testing.T) {
	reg := DefaultRegistry()
	custom := func(Config, ...Option) (Roller, error) { return DeleteRoller{}, nil }

	require.NoError(t, reg.Register("custom", custom))
	assert.Contains(t, reg.Kinds(), "custom")

	err := reg.Register("custom", custom)
	require.ErrorIs(t, err, ErrDuplicateKind)
	assert.ErrorIs(t, err, ErrConfig)

	assert.ErrorIs(t, reg.Register(KindFixedWindow, custom), ErrDuplicateKind)
	assert.ErrorIs(t, reg.Register("", custom), ErrInvalidFactory)
	assert.ErrorIs(t, reg.Register("nil", nil), ErrInvalidFactory)

	// 各注册表相互独立
	assert.NotContains(t, DefaultRegistry().Kinds(), "custom")
}

func TestRegistry_Build(t *testing.T) {
	reg := DefaultRegistry()

	tests := []struct {
		name    string
		cfg     Config
		check   func(t *testing.T, r Roller)
		wantErr error
	}{
		{
			name: "空类型默认为固定窗口",
			cfg:  Config{Pattern: "foo.{}.log", Count: 3, Base: uint32Ptr(2), Mode: ModeShift},
			check: func(t *testing.T, r Roller) {
				fw, ok := r.(*FixedWindowRoller)
				require.True(t, ok)
				assert.Equal(t, uint32(2), fw.Base())
				assert.Equal(t, uint32(3), fw.Count())
				assert.Equal(t, ModeShift, fw.Mode())
			},
		},
		{
			name: "后台包装",
			cfg:  Config{Kind: KindFixedWindow, Pattern: "foo.{}.log.gz", Count: 3, Background: true},
			check: func(t *testing.T, r Roller) {
				b, ok := r.(*Background)
				require.True(t, ok)
				fw, ok := b.Inner().(*FixedWindowRoller)
				require.True(t, ok)
				assert.Equal(t, "gzip", fw.Compression())
				require.NoError(t, b.Close())
			},
		},
		{
			name: "仅删除不做后台包装",
			cfg:  Config{Pattern: "foo.{}.log", Count: 0, Background: true},
			check: func(t *testing.T, r Roller) {
				_, ok := r.(*FixedWindowRoller)
				assert.True(t, ok)
			},
		},
		{
			name: "删除类型",
			cfg:  Config{Kind: KindDelete},
			check: func(t *testing.T, r Roller) {
				assert.Equal(t, Roller(DeleteRoller{}), r)
			},
		},
		{
			name:    "未知类型",
			cfg:     Config{Kind: "size_based"},
			wantErr: ErrUnknownKind,
		},
		{
			name:    "缺少占位符",
			cfg:     Config{Pattern: "foo.log", Count: 1},
			wantErr: ErrMissingPlaceholder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := reg.Build(tt.cfg)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, ErrConfig)
				assert.Nil(t, r)
				return
			}
			require.NoError(t, err)
			tt.check(t, r)
		})
	}
}

func TestRegistry_BuildOptionsOverrideConfig(t *testing.T) {
	r, err := Build(Config{Pattern: "foo.{}.log", Count: 2, Base: uint32Ptr(5)}, WithBase(9))
	require.NoError(t, err)
	assert.Equal(t, uint32(9), r.(*FixedWindowRoller).Base())
}

func TestRegistry_BackgroundUsesOnError(t *testing.T) {
	dir := t.TempDir()
	diag := &errCollector{}

	r, err := Build(Config{
		Pattern:    filepath.Join(dir, "foo.{}.gz"),
		Count:      2,
		Background: true,
	}, WithOnError(diag.add), WithClock(fixedClock))
	require.NoError(t, err)
	b := r.(*Background)

	// 临时文件在压缩前被删除，后台归档失败
	b.move = func(_, dst string) error { return nil }
	require.NoError(t, b.Roll(filepath.Join(dir, "foo.log"), RollToday))
	require.NoError(t, b.Close())

	errs := diag.all()
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], ErrRotation)
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	reg := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			kind := string(rune('a' + i))
			_ = reg.Register(kind, func(Config, ...Option) (Roller, error) {
				return nil, errors.New(kind)
			})
			_ = reg.Kinds()
			_, _ = reg.Build(Config{Kind: kind})
		}(i)
	}
	wg.Wait()
	assert.Len(t, reg.Kinds(), 16)
}
