package game

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// 音效资源 ID（定义在 data/resources.yaml）
const (
	SoundScratch = "SOUND_SCRATCH"
	SoundCrack   = "SOUND_CRACK"
	SoundHit     = "SOUND_HIT"
	SoundWin     = "SOUND_WIN"
	SoundPoem    = "SOUND_POEM"
	SoundGlass   = "SOUND_GLASS"
)

// AudioManager 音频管理器
// 职责：
//   - 统一管理所有音效的播放
//   - 应用 SettingsManager 中的音量和开关
//   - 通过资源 ID 播放，缺失的音效只记录警告
type AudioManager struct {
	resourceManager *ResourceManager
	settingsManager *SettingsManager
	soundPlayers    map[string]*audio.Player // 音效播放器缓存（资源ID -> 播放器）
	missing         map[string]bool          // 加载失败的资源ID，避免每帧重试
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - rm: ResourceManager 实例（用于加载音频文件）
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
func NewAudioManager(rm *ResourceManager, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		resourceManager: rm,
		settingsManager: sm,
		soundPlayers:    make(map[string]*audio.Player),
		missing:         make(map[string]bool),
	}
}

// PlaySound 从头播放一次音效
//
// 参数：
//   - soundID: 音效资源ID（如 SoundCrack）
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(soundID string) bool {
	if !am.soundEnabled() {
		return false
	}

	player := am.getSoundPlayer(soundID)
	if player == nil {
		return false
	}

	player.SetVolume(am.getSoundVolume())
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()
	return true
}

// PlaySoundIfIdle 仅在该音效没有正在播放时播放
// 用于每帧都可能触发的音效（例如刮擦声），避免每帧重新开始
func (am *AudioManager) PlaySoundIfIdle(soundID string) bool {
	if player := am.soundPlayers[soundID]; player != nil && player.IsPlaying() {
		return false
	}
	return am.PlaySound(soundID)
}

// StopSound 停止音效
func (am *AudioManager) StopSound(soundID string) {
	if player := am.soundPlayers[soundID]; player != nil {
		player.Pause()
	}
}

// StopAllSounds 停止所有音效
func (am *AudioManager) StopAllSounds() {
	for _, player := range am.soundPlayers {
		player.Pause()
	}
}

// SoundDuration 返回音效时长
func (am *AudioManager) SoundDuration(soundID string) (time.Duration, bool) {
	d, err := am.resourceManager.SoundDuration(soundID)
	if err != nil {
		log.Printf("[AudioManager] Warning: no duration for %s: %v", soundID, err)
		return 0, false
	}
	return d, true
}

// SetSoundVolume 设置音效音量，影响之后播放的音效
func (am *AudioManager) SetSoundVolume(volume float64) {
	if am.settingsManager != nil {
		am.settingsManager.SetSoundVolume(volume)
	}
	volume = am.getSoundVolume()
	for _, player := range am.soundPlayers {
		player.SetVolume(volume)
	}
}

// ToggleSound 切换音效开关并返回新值
func (am *AudioManager) ToggleSound() bool {
	if am.settingsManager == nil {
		return true
	}
	enabled := !am.settingsManager.GetSettings().SoundEnabled
	am.settingsManager.SetSoundEnabled(enabled)
	if !enabled {
		am.StopAllSounds()
	}
	return enabled
}

func (am *AudioManager) soundEnabled() bool {
	if am.settingsManager == nil {
		return true
	}
	return am.settingsManager.GetSettings().SoundEnabled
}

// getSoundPlayer 获取或加载音效播放器
func (am *AudioManager) getSoundPlayer(soundID string) *audio.Player {
	if player, exists := am.soundPlayers[soundID]; exists {
		return player
	}
	if am.missing[soundID] {
		return nil
	}

	player, err := am.resourceManager.LoadSoundByID(soundID)
	if err != nil {
		log.Printf("[AudioManager] Warning: Failed to load sound %s: %v", soundID, err)
		am.missing[soundID] = true
		return nil
	}
	am.soundPlayers[soundID] = player
	return player
}

func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return 0.8
}
