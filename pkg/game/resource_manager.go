package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"log"
	"path/filepath"
	"strings"
	"time"

	auformat "github.com/decker502/squidarcade/internal/audio"
	"github.com/decker502/squidarcade/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"gopkg.in/yaml.v3"
)

// ResourceManager is responsible for centralized management of game resources.
// It provides loading and caching mechanisms for images and audio assets,
// ensuring that resources are loaded only once and reused throughout the game.
//
// Files are read through the embedded package: from the embedded file systems
// when embedded.Init has been called, from disk otherwise.
//
// The ResourceManager implements the following key features:
//   - Image loading and caching (PNG/JPEG), both as decoded pixels for the
//     tracing minigames and as GPU textures for drawing
//   - Audio loading and caching (MP3, OGG Vorbis and Sun AU)
//   - Resource IDs resolved through data/resources.yaml
//
// Thread Safety Note:
// This implementation is NOT thread-safe. All calls are expected from the
// game loop goroutine.
//
// Usage:
//
//	audioContext := audio.NewContext(48000)
//	rm := NewResourceManager(audioContext)
//	if err := rm.LoadResourceConfig("data/resources.yaml"); err != nil {
//	    log.Printf("Failed to load resource config: %v", err)
//	}
//	player, err := rm.LoadSoundByID("SOUND_CRACK")
type ResourceManager struct {
	pixelCache    map[string]image.Image    // Cache for decoded images: path -> pixels
	imageCache    map[string]*ebiten.Image  // Cache for GPU textures: path -> Image
	audioCache    map[string]*audio.Player  // Cache for audio players: path -> Player
	durationCache map[string]time.Duration  // Playback length of loaded audio: path -> duration
	audioContext  *audio.Context            // Global audio context, nil in headless tools

	// YAML resource configuration
	config      *ResourceConfig   // Parsed YAML configuration
	resourceMap map[string]string // Resource ID -> file path mapping for quick lookup
}

// NewResourceManager creates and initializes a new ResourceManager instance.
// The audioContext parameter is required for audio playback; it may be nil
// when only images and configuration are needed.
//
// Parameters:
//   - audioContext: The global audio context used for decoding and playing audio files.
//
// Returns:
//   - A pointer to a newly initialized ResourceManager with empty caches.
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		pixelCache:    make(map[string]image.Image),
		imageCache:    make(map[string]*ebiten.Image),
		audioCache:    make(map[string]*audio.Player),
		durationCache: make(map[string]time.Duration),
		audioContext:  audioContext,
		resourceMap:   make(map[string]string),
	}
}

// LoadPixels decodes an image file and caches the decoded pixels.
// The returned image is shared; callers that modify pixels must copy it first.
//
// Parameters:
//   - path: The file path to the image resource (e.g., "assets/images/circle.png").
//
// Returns:
//   - The decoded image.
//   - An error if the file cannot be read or decoded.
func (rm *ResourceManager) LoadPixels(path string) (image.Image, error) {
	if cached, exists := rm.pixelCache[path]; exists {
		return cached, nil
	}

	data, err := embedded.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	rm.pixelCache[path] = img
	return img, nil
}

// LoadImage loads an image file from the specified path and caches it as an
// Ebitengine texture. If the image has already been loaded, it returns the
// cached version.
//
// Parameters:
//   - path: The file path to the image resource.
//
// Returns:
//   - A pointer to the loaded ebiten.Image.
//   - An error if the file cannot be read or decoded.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	img, err := rm.LoadPixels(path)
	if err != nil {
		return nil, err
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg
	return ebitenImg, nil
}

// GetImage retrieves a previously loaded texture from the cache, or nil.
func (rm *ResourceManager) GetImage(path string) *ebiten.Image {
	return rm.imageCache[path]
}

// pcmStream is a decoded stream in the audio context's sample rate.
type pcmStream struct {
	io.ReadSeeker
	length   int64
	duration time.Duration
}

// decodeAudio decodes an audio file by extension.
// Supported formats: MP3 (.mp3), OGG Vorbis (.ogg) and Sun AU (.au).
func (rm *ResourceManager) decodeAudio(path string) (*pcmStream, error) {
	data, err := embedded.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio file %s: %w", path, err)
	}
	reader := bytes.NewReader(data)

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".mp3":
		s, err := mp3.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 audio %s: %w", path, err)
		}
		return &pcmStream{ReadSeeker: s, length: s.Length(), duration: bytesToDuration(s.Length(), int64(s.SampleRate()))}, nil
	case ".ogg":
		s, err := vorbis.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG audio %s: %w", path, err)
		}
		return &pcmStream{ReadSeeker: s, length: s.Length(), duration: bytesToDuration(s.Length(), int64(s.SampleRate()))}, nil
	case ".au":
		s, err := auformat.DecodeAU(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode AU audio %s: %w", path, err)
		}
		return rm.resampleAU(s)
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .mp3, .ogg, .au)", ext)
	}
}

// resampleAU converts an AU stream to the audio context's sample rate.
// The resampled PCM is kept in memory so its length is exact for looping.
func (rm *ResourceManager) resampleAU(s *auformat.AUDecoder) (*pcmStream, error) {
	duration := s.Duration()
	if rm.audioContext == nil || int64(rm.audioContext.SampleRate()) == s.SampleRate() {
		return &pcmStream{ReadSeeker: s, length: s.Length(), duration: duration}, nil
	}

	resampled := audio.Resample(s, s.Length(), int(s.SampleRate()), rm.audioContext.SampleRate())
	pcm, err := io.ReadAll(resampled)
	if err != nil {
		return nil, fmt.Errorf("failed to resample AU audio: %w", err)
	}
	pcm = pcm[:len(pcm)/4*4]
	return &pcmStream{ReadSeeker: bytes.NewReader(pcm), length: int64(len(pcm)), duration: duration}, nil
}

// bytesToDuration converts a 16-bit stereo PCM byte length into a duration.
func bytesToDuration(length, sampleRate int64) time.Duration {
	if sampleRate <= 0 {
		return 0
	}
	return time.Duration(length/4) * time.Second / time.Duration(sampleRate)
}

func (rm *ResourceManager) newPlayer(path string, src io.Reader) (*audio.Player, error) {
	if rm.audioContext == nil {
		return nil, fmt.Errorf("no audio context for %s", path)
	}
	player, err := rm.audioContext.NewPlayer(src)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}
	return player, nil
}

// LoadSoundEffect loads a one-shot sound effect (no loop) and caches it by path.
//
// Parameters:
//   - path: The file path to the sound effect resource (e.g., "assets/sounds/crack.au").
//
// Returns:
//   - A pointer to the audio player (ready to play, but not started).
//   - An error if the file cannot be read, decoded, or the format is unsupported.
func (rm *ResourceManager) LoadSoundEffect(path string) (*audio.Player, error) {
	if cachedPlayer, exists := rm.audioCache[path]; exists {
		return cachedPlayer, nil
	}

	stream, err := rm.decodeAudio(path)
	if err != nil {
		return nil, err
	}

	player, err := rm.newPlayer(path, stream)
	if err != nil {
		return nil, err
	}

	rm.audioCache[path] = player
	rm.durationCache[path] = stream.duration
	return player, nil
}

// AudioDuration decodes an audio file and returns its playback length
// without creating a player. Cached durations are returned directly.
func (rm *ResourceManager) AudioDuration(path string) (time.Duration, error) {
	if d, exists := rm.durationCache[path]; exists {
		return d, nil
	}

	stream, err := rm.decodeAudio(path)
	if err != nil {
		return 0, err
	}
	rm.durationCache[path] = stream.duration
	return stream.duration, nil
}

// GetAudioPlayer retrieves a previously loaded audio player from the cache, or nil.
func (rm *ResourceManager) GetAudioPlayer(path string) *audio.Player {
	return rm.audioCache[path]
}

// LoadResourceConfig loads and parses the YAML resource configuration file.
// The configuration defines resource groups and ID -> path mappings.
//
// Parameters:
//   - configPath: Path to the YAML configuration file (e.g., "data/resources.yaml")
//
// Returns:
//   - An error if the file cannot be read or parsed
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	data, err := embedded.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to read resource config %s: %w", configPath, err)
	}

	var config ResourceConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse resource config %s: %w", configPath, err)
	}

	rm.config = &config
	rm.buildResourceMap()

	log.Printf("[ResourceManager] Loaded resource config %s (%d resources)", configPath, len(rm.resourceMap))
	return nil
}

// buildResourceMap constructs a mapping from resource IDs to full file paths.
//
//	SOUND_CRACK -> assets/sounds/crack.au
//	IMAGE_COOKIE_STAR -> assets/images/star.png
func (rm *ResourceManager) buildResourceMap() {
	if rm.config == nil {
		return
	}

	rm.resourceMap = make(map[string]string)

	for _, group := range rm.config.Groups {
		for _, img := range group.Images {
			fullPath := buildFullPath(rm.config.BasePath, img.Path)
			if filepath.Ext(fullPath) == "" {
				fullPath += ".png" // Default to PNG for images
			}
			rm.resourceMap[img.ID] = fullPath
		}

		for _, sound := range group.Sounds {
			fullPath := buildFullPath(rm.config.BasePath, sound.Path)
			if filepath.Ext(fullPath) == "" {
				fullPath += ".au" // Default to AU for sounds
			}
			rm.resourceMap[sound.ID] = fullPath
		}
	}
}

// ResolvePath returns the file path of a resource ID.
func (rm *ResourceManager) ResolvePath(resourceID string) (string, bool) {
	path, ok := rm.resourceMap[resourceID]
	return path, ok
}

func (rm *ResourceManager) lookup(resourceID string) (string, error) {
	if rm.config == nil {
		return "", fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}
	filePath, exists := rm.resourceMap[resourceID]
	if !exists {
		return "", fmt.Errorf("resource ID not found: %s", resourceID)
	}
	return filePath, nil
}

// LoadPixelsByID decodes an image resource by ID.
func (rm *ResourceManager) LoadPixelsByID(resourceID string) (image.Image, error) {
	filePath, err := rm.lookup(resourceID)
	if err != nil {
		return nil, err
	}
	return rm.LoadPixels(filePath)
}

// LoadImageByID loads an image texture by resource ID.
func (rm *ResourceManager) LoadImageByID(resourceID string) (*ebiten.Image, error) {
	filePath, err := rm.lookup(resourceID)
	if err != nil {
		return nil, err
	}
	return rm.LoadImage(filePath)
}

// LoadSoundByID loads a one-shot sound effect by resource ID.
func (rm *ResourceManager) LoadSoundByID(resourceID string) (*audio.Player, error) {
	filePath, err := rm.lookup(resourceID)
	if err != nil {
		return nil, err
	}
	return rm.LoadSoundEffect(filePath)
}

// SoundDuration returns the playback length of a sound resource.
func (rm *ResourceManager) SoundDuration(resourceID string) (time.Duration, error) {
	filePath, err := rm.lookup(resourceID)
	if err != nil {
		return 0, err
	}
	return rm.AudioDuration(filePath)
}

// LoadResourceGroup loads all resources in a specified group.
//
// Parameters:
//   - groupName: The name of the resource group (e.g., "init")
//
// Returns:
//   - An error if the group is not found or any resource fails to load
func (rm *ResourceManager) LoadResourceGroup(groupName string) error {
	if rm.config == nil {
		return fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}

	group, exists := rm.config.Groups[groupName]
	if !exists {
		return fmt.Errorf("resource group not found: %s", groupName)
	}

	for _, img := range group.Images {
		if _, err := rm.LoadImageByID(img.ID); err != nil {
			return fmt.Errorf("failed to load image %s in group %s: %w", img.ID, groupName, err)
		}
	}

	for _, sound := range group.Sounds {
		if _, err := rm.LoadSoundByID(sound.ID); err != nil {
			return fmt.Errorf("failed to load sound %s in group %s: %w", sound.ID, groupName, err)
		}
	}

	return nil
}

// Close stops every cached audio player.
func (rm *ResourceManager) Close() {
	for path, player := range rm.audioCache {
		if err := player.Close(); err != nil {
			log.Printf("[ResourceManager] Warning: failed to close player %s: %v", path, err)
		}
	}
	rm.audioCache = make(map[string]*audio.Player)
}
