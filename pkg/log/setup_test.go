package log

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetForTest Setup()을 다시 수행할 수 있도록 패키지 전역 상태를 초기화합니다.
func resetForTest(t *testing.T) {
	t.Helper()

	setupOnce = sync.Once{}
	globalCloser = nil
	globalSetupErr = nil

	logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks))
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(InfoLevel)
	logrus.SetReportCaller(false)
	logrus.SetFormatter(&logrus.TextFormatter{})
}

func TestSetup(t *testing.T) {
	resetForTest(t)
	t.Cleanup(func() { resetForTest(t) })

	dir := t.TempDir()
	opts := NewProductionOptions("scraper-test")
	opts.Dir = dir

	c, err := Setup(opts)
	require.NoError(t, err)
	require.NotNil(t, c)

	WithComponentAndFields("test", Fields{"count": 3}).Info("정보 로그")
	WithComponent("test").Error("에러 로그")

	require.NoError(t, c.Close())
	assert.NoError(t, c.Close(), "두 번째 Close는 아무 동작도 하지 않아야 합니다")

	mainLog, err := os.ReadFile(filepath.Join(dir, "scraper-test.log"))
	require.NoError(t, err)
	assert.Contains(t, string(mainLog), "정보 로그")
	assert.Contains(t, string(mainLog), "component=test")
	assert.Contains(t, string(mainLog), "count=3")

	criticalLog, err := os.ReadFile(filepath.Join(dir, "scraper-test.critical.log"))
	require.NoError(t, err)
	assert.Contains(t, string(criticalLog), "에러 로그")
	assert.NotContains(t, string(criticalLog), "정보 로그")
}

func TestSetup_OnlyOnce(t *testing.T) {
	resetForTest(t)
	t.Cleanup(func() { resetForTest(t) })

	_, err := Setup(Options{})
	require.Error(t, err)

	// 최초 결과가 유지되므로 올바른 옵션으로 다시 호출해도 같은 에러를 반환합니다.
	opts := NewDevelopmentOptions("again")
	opts.Dir = t.TempDir()
	_, err2 := Setup(opts)
	assert.Equal(t, err, err2)
}

func TestWithComponentAndFields_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	fields := Fields{"key": "value"}
	entry := WithComponentAndFields("api", fields)

	assert.Equal(t, "api", entry.Data[componentKey])
	assert.Equal(t, "value", entry.Data["key"])
	assert.NotContains(t, fields, componentKey)
}

func TestSetDebugMode(t *testing.T) {
	original := logrus.GetLevel()
	t.Cleanup(func() { logrus.SetLevel(original) })

	SetDebugMode(true)
	assert.Equal(t, TraceLevel, logrus.GetLevel())

	SetDebugMode(false)
	assert.Equal(t, InfoLevel, logrus.GetLevel())
}
