package embedded

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"
)

func initTestFS(t *testing.T) {
	t.Helper()
	Init(fstest.MapFS{
		"data/deck.yaml":     {Data: []byte("commitThreshold: 100\n")},
		"data/listings.yaml": {Data: []byte("listings: []\n")},
	})
	t.Cleanup(func() {
		dataFS = nil
		initialized = false
	})
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	initialized = false
	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	initTestFS(t)
	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}
}

// TestNotInitialized 测试未初始化时的调用
func TestNotInitialized(t *testing.T) {
	initialized = false

	if _, err := Open("data/deck.yaml"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Open() error = %v, want ErrNotInitialized", err)
	}
	if _, err := ReadFile("data/deck.yaml"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("ReadFile() error = %v, want ErrNotInitialized", err)
	}
	if Exists("data/deck.yaml") {
		t.Error("Expected Exists() to return false before Init()")
	}
}

// TestReadFile 测试读取与路径规则
func TestReadFile(t *testing.T) {
	initTestFS(t)

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{"正常路径", "data/deck.yaml", "commitThreshold: 100\n", false},
		{"./ 前缀", "./data/listings.yaml", "listings: []\n", false},
		{"未知前缀", "assets/deck.yaml", "", true},
		{"文件不存在", "data/missing.yaml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if string(data) != tt.want {
				t.Errorf("ReadFile(%q) = %q, want %q", tt.path, data, tt.want)
			}
		})
	}

	t.Run("不存在的文件返回 ErrNotExist", func(t *testing.T) {
		_, err := ReadFile("data/missing.yaml")
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("error = %v, want fs.ErrNotExist", err)
		}
	})
}

// TestExists 测试文件存在检查
func TestExists(t *testing.T) {
	initTestFS(t)

	if !Exists("data/deck.yaml") {
		t.Error("data/deck.yaml should exist")
	}
	if Exists("data/nope.yaml") {
		t.Error("data/nope.yaml should not exist")
	}
}
