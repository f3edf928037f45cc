package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ko", l10n.LexiconMap{
		// Batch (info)
		"Starting batch of %d screenshots": "스크린샷 %d개 일괄 처리를 시작합니다",
		"Using keyword font: %s (%s)":      "키워드 폰트 사용: %s (%s)",
		"Using title font: %s (%s)":        "제목 폰트 사용: %s (%s)",
		"Processing %s...":                 "%s 처리 중...",
		"  Saved: %s":                      "  저장됨: %s",
		"  Failed to process %s: %s":       "  %s 처리 실패: %s",
		"Done! %d saved, %d failed":        "완료! %d개 저장, %d개 실패",
		"Interrupted, stopping batch...":   "중단되었습니다. 일괄 처리를 멈춥니다...",
		"Summary written to %s":            "요약을 %s에 저장했습니다",

		// Fonts
		"Loaded font %s at %.0fpt":       "폰트 %s 로드 (%.0fpt)",
		"Could not load font %s: %s":     "폰트 %s를 불러올 수 없습니다: %s",
		"System font %s unavailable: %s": "시스템 폰트 %s 사용 불가: %s",
		"Using system font %s":           "시스템 폰트 %s 사용",
		"Using builtin default font":     "기본 내장 폰트 사용",

		// Background
		"Loading gradient %s":                  "그라디언트 %s 불러오는 중",
		"Gradient not found, generating %dx%d": "그라디언트가 없어 %dx%d 크기로 생성합니다",

		// Compose
		"Screenshot not found: %s":                      "스크린샷을 찾을 수 없습니다: %s",
		"Measured keyword %dx%d, title %dx%d":           "키워드 %dx%d, 제목 %dx%d 측정",
		"Scaled screenshot %dx%d -> %dx%d (scale %.4f)": "스크린샷 크기 조정 %dx%d -> %dx%d (배율 %.4f)",

		// Errors
		"Failed to save debug output: %s": "디버그 출력 저장 실패: %s",
		"Failed to hash %s: %s":           "%s 해시 계산 실패: %s",
	})
}
