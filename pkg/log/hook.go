package log

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

// hook 하나의 로그 이벤트를 레벨에 따라 여러 Writer로 분배합니다.
//
//   - main: 모든 레벨
//   - critical: ERROR 이상
//   - console: 모든 레벨 (개발 환경)
//
// Writer 쓰기 실패는 표준 에러로만 알리고 호출자에게는 영향을 주지 않습니다.
type hook struct {
	formatter logrus.Formatter

	main     io.Writer
	critical io.Writer
	console  io.Writer

	mu     sync.RWMutex
	closed bool
}

func (h *hook) Levels() []Level {
	return logrus.AllLevels
}

func (h *hook) Fire(entry *Entry) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return nil
	}

	msg, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}

	h.write(h.console, msg, "Console")
	if entry.Level <= ErrorLevel {
		h.write(h.critical, msg, "Critical")
	}
	h.write(h.main, msg, "Main")

	return nil
}

func (h *hook) write(w io.Writer, msg []byte, name string) {
	if w == nil {
		return
	}
	if _, err := w.Write(msg); err != nil {
		fmt.Fprintf(os.Stderr, "[LOG-SYSTEM-WARN] %s 로그 쓰기 실패: %v\n", name, err)
	}
}

// Close 이후의 로그 기록을 모두 무시하도록 전환합니다.
func (h *hook) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
}
