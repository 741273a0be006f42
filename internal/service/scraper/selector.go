package scraper

import (
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"
	apperrors "github.com/matjazbravc/screen-scraping-server/internal/pkg/errors"
)

// Selector 추출 대상 요소를 태그 이름과 class 속성의 부분 문자열로 지정합니다.
//
// class 비교는 대소문자를 구분하는 단순 부분 문자열 일치입니다. 따라서 ClassContains가
// "title"이면 "subtitle", "title-bar"처럼 "title"을 포함하는 모든 class가 함께 선택됩니다.
type Selector struct {
	Tag           string
	ClassContains string
}

// DefaultSelector class에 "title"을 포함하는 모든 td 요소
var DefaultSelector = Selector{Tag: "td", ClassContains: "title"}

// String CSS 선택자 표현을 반환합니다. (예: td[class*="title"])
func (s Selector) String() string {
	tag := strings.TrimSpace(s.Tag)
	if s.ClassContains == "" {
		return tag
	}
	return fmt.Sprintf("%s[class*=%q]", tag, s.ClassContains)
}

func (s Selector) compile() (cascadia.Matcher, error) {
	if strings.TrimSpace(s.Tag) == "" {
		return nil, apperrors.New(apperrors.InvalidInput, "선택자의 태그 이름이 비어 있습니다")
	}

	m, err := cascadia.Compile(s.String())
	if err != nil {
		return nil, apperrors.Wrapf(err, apperrors.InvalidInput, "CSS 선택자(%s)를 해석할 수 없습니다", s.String())
	}

	return m, nil
}
