package game

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Global audio context shared by all tests
// Ebitengine only allows one audio context to be created
var testAudioContext *audio.Context

// TestMain sets up the shared audio context before running tests
func TestMain(m *testing.M) {
	testAudioContext = audio.NewContext(48000)
	os.Exit(m.Run())
}

// createTestImage writes a 10x10 blue PNG.
func createTestImage(t *testing.T, dir, name string) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	blue := color.RGBA{R: 0, G: 0, B: 255, A: 255}
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			img.Set(x, y, blue)
		}
	}

	path := filepath.Join(dir, name)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("Failed to write test image: %v", err)
	}
	return path
}

// createTestAU writes a mono μ-law AU file of the given length.
func createTestAU(t *testing.T, dir, name string, rate uint32, seconds float64) string {
	t.Helper()

	samples := int(float64(rate) * seconds)
	var buf bytes.Buffer
	for _, v := range []uint32{0x2e736e64, 24, uint32(samples), 1, rate, 1} {
		binary.Write(&buf, binary.BigEndian, v)
	}
	buf.Write(bytes.Repeat([]byte{0xFF}, samples))

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("Failed to write test AU: %v", err)
	}
	return path
}

func TestNewResourceManager(t *testing.T) {
	rm := NewResourceManager(testAudioContext)

	if rm == nil {
		t.Fatal("NewResourceManager returned nil")
	}
	if rm.imageCache == nil || rm.pixelCache == nil || rm.audioCache == nil {
		t.Error("caches not initialized")
	}
	if rm.audioContext != testAudioContext {
		t.Error("audioContext not set correctly")
	}
}

func TestLoadPixels(t *testing.T) {
	path := createTestImage(t, t.TempDir(), "cookie.png")
	rm := NewResourceManager(nil)

	img, err := rm.LoadPixels(path)
	if err != nil {
		t.Fatalf("LoadPixels failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 10 || b.Dy() != 10 {
		t.Errorf("Image dimensions incorrect: got %dx%d, want 10x10", b.Dx(), b.Dy())
	}

	again, err := rm.LoadPixels(path)
	if err != nil {
		t.Fatalf("second LoadPixels failed: %v", err)
	}
	if again != img {
		t.Error("pixels are not cached - different instances returned")
	}
}

func TestLoadImage_CachingMechanism(t *testing.T) {
	path := createTestImage(t, t.TempDir(), "cache.png")
	rm := NewResourceManager(testAudioContext)

	if rm.GetImage(path) != nil {
		t.Error("GetImage should return nil for non-loaded image")
	}

	img1, err := rm.LoadImage(path)
	if err != nil {
		t.Fatalf("First LoadImage failed: %v", err)
	}
	img2, err := rm.LoadImage(path)
	if err != nil {
		t.Fatalf("Second LoadImage failed: %v", err)
	}

	if img1 != img2 {
		t.Error("Images are not cached - different instances returned")
	}
	if rm.GetImage(path) != img1 {
		t.Error("GetImage returned different instance than LoadImage")
	}
}

func TestLoadPixels_Errors(t *testing.T) {
	dir := t.TempDir()
	invalid := filepath.Join(dir, "invalid.png")
	if err := os.WriteFile(invalid, []byte("not a valid png"), 0o644); err != nil {
		t.Fatalf("Failed to create invalid file: %v", err)
	}

	rm := NewResourceManager(nil)

	if _, err := rm.LoadPixels(filepath.Join(dir, "nonexistent.png")); err == nil {
		t.Error("Expected error for non-existent file, got nil")
	}
	if _, err := rm.LoadPixels(invalid); err == nil {
		t.Error("Expected error for invalid image format, got nil")
	}
}

func TestLoadSoundEffect_AU(t *testing.T) {
	path := createTestAU(t, t.TempDir(), "crack.au", 22050, 0.5)
	rm := NewResourceManager(testAudioContext)

	player, err := rm.LoadSoundEffect(path)
	if err != nil {
		t.Fatalf("LoadSoundEffect failed: %v", err)
	}
	if player == nil {
		t.Fatal("LoadSoundEffect returned nil player")
	}
	if rm.GetAudioPlayer(path) != player {
		t.Error("player not cached")
	}

	d, err := rm.AudioDuration(path)
	if err != nil {
		t.Fatalf("AudioDuration failed: %v", err)
	}
	if d != 500*time.Millisecond {
		t.Errorf("AudioDuration = %v, want 500ms", d)
	}
}

func TestLoadSoundEffect_Errors(t *testing.T) {
	dir := t.TempDir()
	unsupported := filepath.Join(dir, "test.wav")
	if err := os.WriteFile(unsupported, []byte("dummy data"), 0o644); err != nil {
		t.Fatalf("Failed to create dummy file: %v", err)
	}

	rm := NewResourceManager(testAudioContext)

	if _, err := rm.LoadSoundEffect(filepath.Join(dir, "nonexistent.mp3")); err == nil {
		t.Error("Expected error for non-existent audio file, got nil")
	}
	if _, err := rm.LoadSoundEffect(unsupported); err == nil {
		t.Error("Expected error for unsupported audio format, got nil")
	}
	if rm.GetAudioPlayer("test.mp3") != nil {
		t.Error("GetAudioPlayer should return nil for non-loaded audio")
	}
}

func TestSoundWithoutAudioContext(t *testing.T) {
	path := createTestAU(t, t.TempDir(), "hit.au", 8000, 0.25)
	rm := NewResourceManager(nil)

	if _, err := rm.LoadSoundEffect(path); err == nil {
		t.Error("expected an error without audio context")
	}
	d, err := rm.AudioDuration(path)
	if err != nil {
		t.Fatalf("AudioDuration failed: %v", err)
	}
	if d != 250*time.Millisecond {
		t.Errorf("AudioDuration = %v, want 250ms", d)
	}
}

func TestShippedSounds(t *testing.T) {
	rm := NewResourceManager(testAudioContext)

	for _, name := range []string{"scratch", "crack", "hit", "win", "poem", "glass"} {
		path := filepath.Join("..", "..", "assets", "sounds", name+".au")
		if _, err := rm.LoadSoundEffect(path); err != nil {
			t.Errorf("shipped sound %s: %v", name, err)
		}
	}

	poem, err := rm.AudioDuration(filepath.Join("..", "..", "assets", "sounds", "poem.au"))
	if err != nil {
		t.Fatalf("AudioDuration(poem) failed: %v", err)
	}
	if poem < 3*time.Second || poem > 6*time.Second {
		t.Errorf("poem duration = %v, want a few seconds", poem)
	}
}
