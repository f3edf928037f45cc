// Package main provides localization for the shotframe CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Korean translations for CLI messages and the summary report.
	l10n.Register("ko", l10n.LexiconMap{
		// Runtime messages
		"Framing screenshots in %s...":  "%s 의 스크린샷을 프레임 처리하는 중...",
		"Interrupted, shutting down...": "중단되었습니다. 종료하는 중...",
		"shotframe version %s":          "shotframe 버전 %s",

		// Summary output
		"Failed to write summary: %s": "요약 저장에 실패했습니다: %s",

		// Summary content
		"Screenshot Summary": "스크린샷 요약",
		"Generated":          "생성 일시",
		"Settings":           "설정",
		"Item":               "항목",
		"Value":              "값",

		// Settings section
		"Canvas Size":          "캔버스 크기",
		"Screenshot Directory": "스크린샷 디렉터리",
		"Output Directory":     "출력 디렉터리",
		"Output Suffix":        "출력 접미사",
		"Background":           "배경",
		"Generated gradient":   "생성된 그라데이션",
		"Keyword Font":         "키워드 폰트",
		"Title Font":           "제목 폰트",
		"requested":            "지정 폰트",
		"system":               "시스템 폰트",
		"builtin":              "내장 폰트",

		// Screenshots section
		"Screenshots": "스크린샷",
		"File":        "파일",
		"Output":      "출력",
		"Status":      "상태",
		"Scale":       "배율",
		"Size":        "크기",
		"Hash":        "해시",
		"OK":          "성공",
		"Failed":      "실패",
		"Result":      "결과",
		"saved":       "저장",
		"failed":      "실패",
	})
}
