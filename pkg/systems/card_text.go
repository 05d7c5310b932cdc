package systems

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// CardFonts 卡片使用的字体
type CardFonts struct {
	Title *text.GoTextFace
	Body  *text.GoTextFace
	Small *text.GoTextFace
}

// LoadCardFonts 从内置的 Go Regular 字体创建卡片字体
func LoadCardFonts() (*CardFonts, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source: %w", err)
	}

	face := func(size float64) *text.GoTextFace {
		return &text.GoTextFace{
			Source:    source,
			Size:      size,
			Direction: text.DirectionLeftToRight,
		}
	}

	return &CardFonts{
		Title: face(24),
		Body:  face(18),
		Small: face(14),
	}, nil
}

// MeasureFunc 测量单行文本宽度（像素）
type MeasureFunc func(s string) float64

// FaceMeasure 返回使用指定字体的测量函数
func FaceMeasure(face *text.GoTextFace) MeasureFunc {
	return func(s string) float64 {
		width, _ := text.Measure(s, face, 0)
		return width
	}
}

// WrapText 将文本按指定宽度自动换行
//
// 换行规则:
//   - 优先在空格处断行
//   - 单词本身超过最大宽度时按字符强制断行
func WrapText(s string, measure MeasureFunc, maxWidth float64) []string {
	if s == "" || measure == nil || maxWidth <= 0 || measure(s) <= maxWidth {
		return []string{s}
	}

	var lines []string
	current := ""
	for _, word := range strings.Fields(s) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if measure(candidate) <= maxWidth {
			current = candidate
			continue
		}

		if current != "" {
			lines = append(lines, current)
			current = ""
		}

		if measure(word) <= maxWidth {
			current = word
			continue
		}

		// 超长单词
		for _, r := range word {
			next := current + string(r)
			if current != "" && measure(next) > maxWidth {
				lines = append(lines, current)
				next = string(r)
			}
			current = next
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// LimitLines 最多保留 n 行，截断时最后一行以省略号结尾
func LimitLines(lines []string, n int) []string {
	if n <= 0 || len(lines) <= n {
		return lines
	}
	out := make([]string, n)
	copy(out, lines[:n])
	out[n-1] = strings.TrimRight(out[n-1], " ") + "…"
	return out
}
