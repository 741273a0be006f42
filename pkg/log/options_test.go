package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptions_Validate(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		opts    Options
		wantErr string
	}{
		{name: "성공: 운영 옵션", opts: NewProductionOptions("app")},
		{name: "성공: 개발 옵션", opts: NewDevelopmentOptions("app")},
		{name: "실패: Name 누락", opts: Options{}, wantErr: "Name"},
		{name: "실패: Dir이 파일", opts: Options{Name: "app", Dir: file}, wantErr: "파일로 존재"},
		{name: "실패: 음수 MaxAge", opts: Options{Name: "app", MaxAge: -1}, wantErr: "0 이상"},
		{name: "실패: 음수 MaxBackups", opts: Options{Name: "app", MaxBackups: -1}, wantErr: "0 이상"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.opts.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestProfiles(t *testing.T) {
	t.Parallel()

	prod := NewProductionOptions("svc")
	assert.Equal(t, "svc", prod.Name)
	assert.Equal(t, InfoLevel, prod.Level)
	assert.True(t, prod.EnableCriticalLog)
	assert.False(t, prod.EnableConsoleLog)

	dev := NewDevelopmentOptions("svc")
	assert.Equal(t, TraceLevel, dev.Level)
	assert.True(t, dev.EnableConsoleLog)
}
