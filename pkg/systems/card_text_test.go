package systems

import (
	"reflect"
	"testing"
)

// runeMeasure 每个字符宽 10 像素
func runeMeasure(s string) float64 {
	return float64(len([]rune(s))) * 10
}

// TestWrapText 测试文本换行功能
func TestWrapText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth float64
		want     []string
	}{
		{"短文本不换行", "Go dev", 100, []string{"Go dev"}},
		{"空文本", "", 100, []string{""}},
		{"按空格换行", "Desenvolvedor Go Senior", 140, []string{"Desenvolvedor", "Go Senior"}},
		{"超长单词强制断行", "abcdefghij", 40, []string{"abcd", "efgh", "ij"}},
		{"超长单词前有短词", "ab cdefgh", 40, []string{"ab", "cdef", "gh"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapText(tt.input, runeMeasure, tt.maxWidth)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("WrapText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestLimitLines 测试行数截断
func TestLimitLines(t *testing.T) {
	lines := []string{"a", "b", "c"}

	if got := LimitLines(lines, 5); len(got) != 3 {
		t.Errorf("LimitLines(5) len = %d, want 3", len(got))
	}

	got := LimitLines(lines, 2)
	want := []string{"a", "b…"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LimitLines(2) = %q, want %q", got, want)
	}
	if lines[1] != "b" {
		t.Error("LimitLines should not modify its input")
	}
}
