package embedded

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"assets/sounds/crack.au": {Data: []byte("crack")},
		"assets/sounds/hit.au":   {Data: []byte("hit")},
		"data/arcade.yaml":       {Data: []byte("window:\n  width: 1280\n")},
	}
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	Reset()
	defer Reset()

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	fsys := testFS()
	Init(fsys, fsys)

	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}
}

// TestNotInitialized 测试未初始化时的各个访问函数
func TestNotInitialized(t *testing.T) {
	Reset()

	if _, err := Open("assets/test.png"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Open() error = %v, want ErrNotInitialized", err)
	}
	if _, err := ReadFile("assets/test.txt"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("ReadFile() error = %v, want ErrNotInitialized", err)
	}
	if _, err := Glob("assets/*.png"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Glob() error = %v, want ErrNotInitialized", err)
	}
	if _, err := ReadDir("data"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("ReadDir() error = %v, want ErrNotInitialized", err)
	}
	if Exists("assets/test.png") {
		t.Error("Expected Exists() to return false before Init()")
	}
}

// TestRouting 测试按前缀路由到正确的文件系统
func TestRouting(t *testing.T) {
	Reset()
	defer Reset()

	assets := fstest.MapFS{"assets/a.txt": {Data: []byte("asset")}}
	data := fstest.MapFS{"data/b.yaml": {Data: []byte("data")}}
	Init(assets, data)

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{"assets prefix", "assets/a.txt", "asset", false},
		{"data prefix", "data/b.yaml", "data", false},
		{"dot slash prefix", "./data/b.yaml", "data", false},
		{"asset in data fs", "data/a.txt", "", true},
		{"unknown prefix", "other/a.txt", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if string(got) != tt.want {
				t.Errorf("ReadFile(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestGlobAndReadDir(t *testing.T) {
	Reset()
	defer Reset()

	fsys := testFS()
	Init(fsys, fsys)

	matches, err := Glob("assets/sounds/*.au")
	if err != nil {
		t.Fatalf("Glob() error: %v", err)
	}
	if len(matches) != 2 {
		t.Errorf("Glob() = %v, want 2 matches", matches)
	}

	entries, err := ReadDir("assets/sounds")
	if err != nil {
		t.Fatalf("ReadDir() error: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("ReadDir() returned %d entries, want 2", len(entries))
	}

	info, err := Stat("data/arcade.yaml")
	if err != nil {
		t.Fatalf("Stat() error: %v", err)
	}
	if info.IsDir() {
		t.Error("Stat() reports a file as directory")
	}
}

// TestLoadFallsBackToDisk 测试未初始化时 Load 从磁盘读取
func TestLoadFallsBackToDisk(t *testing.T) {
	Reset()

	path := filepath.Join(t.TempDir(), "arcade.yaml")
	if err := os.WriteFile(path, []byte("ok"), 0o644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if string(got) != "ok" {
		t.Errorf("Load() = %q, want %q", got, "ok")
	}
	if !LoadExists(path) {
		t.Error("LoadExists() = false for an existing file")
	}
	if LoadExists(filepath.Join(t.TempDir(), "missing.yaml")) {
		t.Error("LoadExists() = true for a missing file")
	}
}

func TestLoadUsesEmbeddedWhenInitialized(t *testing.T) {
	Reset()
	defer Reset()

	fsys := testFS()
	Init(fsys, fsys)

	got, err := Load("data/arcade.yaml")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(got) == 0 {
		t.Error("Load() returned empty content")
	}
	if !LoadExists("assets/sounds/hit.au") {
		t.Error("LoadExists() = false for an embedded file")
	}
}
