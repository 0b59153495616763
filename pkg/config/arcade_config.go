package config

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/decker502/squidarcade/pkg/embedded"
	"github.com/decker502/squidarcade/pkg/shapes"
	"github.com/decker502/squidarcade/pkg/trace"
	"gopkg.in/yaml.v3"
)

// DefaultArcadeConfigPath 默认配置文件位置
const DefaultArcadeConfigPath = "data/arcade.yaml"

// ArcadeConfig 街机合集配置
//
// 每个小游戏一个配置段。未出现在 YAML 中的字段保留 DefaultArcadeConfig 的值。
//
// 配置文件位置: data/arcade.yaml
type ArcadeConfig struct {
	Window   WindowConfig   `yaml:"window"`
	Dalgona  DalgonaConfig  `yaml:"dalgona"`
	Boundary BoundaryConfig `yaml:"boundary"`
	RedLight RedLightConfig `yaml:"redLight"`
	Bridge   BridgeConfig   `yaml:"bridge"`
	Marbles  MarblesConfig  `yaml:"marbles"`
	TugOfWar TugOfWarConfig `yaml:"tugOfWar"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Title string `yaml:"title"`
	// TPS 每秒逻辑帧数，场景更新的 dt = 1/TPS
	TPS int `yaml:"tps"`
}

// TracingPreset 描边追踪参数
//
// 对应一次描边会话的 trace.Config 和 trace.Rules。
type TracingPreset struct {
	// Threshold 轮廓亮度阈值（0-255），亮度不高于该值的不透明像素视为轮廓
	Threshold int `yaml:"threshold"`
	// InsideRadius / OutsideRadius 容差半径（图像像素）
	InsideRadius  int `yaml:"insideRadius"`
	OutsideRadius int `yaml:"outsideRadius"`
	// Cooldown 两次计数裂纹之间的最短间隔（秒）
	Cooldown float64 `yaml:"cooldown"`
	// Goal 成功所需的进度（0-1）
	Goal float64 `yaml:"goal"`
	// MaxCracks 失败的裂纹数，0 表示不会失败
	MaxCracks int `yaml:"maxCracks"`
	// OffImage 指针在图像外按住时的策略："ignore" 或 "crack"
	OffImage string `yaml:"offImage"`
}

// TraceConfig 转换为追踪器配置
func (p TracingPreset) TraceConfig() (trace.Config, error) {
	policy, err := trace.ParseOffImagePolicy(p.OffImage)
	if err != nil {
		return trace.Config{}, err
	}
	return trace.Config{
		Threshold:     p.Threshold,
		InsideRadius:  p.InsideRadius,
		OutsideRadius: p.OutsideRadius,
		Cooldown:      p.Cooldown,
		OffImage:      policy,
	}, nil
}

// Rules 返回胜负判定规则
func (p TracingPreset) Rules() trace.Rules {
	return trace.Rules{Goal: p.Goal, MaxCracks: p.MaxCracks}
}

// Validate 检查描边参数
func (p TracingPreset) Validate() error {
	if p.Threshold < 0 || p.Threshold > 255 {
		return fmt.Errorf("threshold %d out of range [0, 255]", p.Threshold)
	}
	if p.InsideRadius < 0 || p.OutsideRadius < 0 {
		return fmt.Errorf("radius must not be negative (inside=%d, outside=%d)", p.InsideRadius, p.OutsideRadius)
	}
	if p.Cooldown < 0 {
		return fmt.Errorf("cooldown %.2f must not be negative", p.Cooldown)
	}
	if p.Goal <= 0 || p.Goal > 1 {
		return fmt.Errorf("goal %.2f out of range (0, 1]", p.Goal)
	}
	if p.MaxCracks < 0 {
		return fmt.Errorf("maxCracks %d must not be negative", p.MaxCracks)
	}
	if _, err := trace.ParseOffImagePolicy(p.OffImage); err != nil {
		return err
	}
	return nil
}

// DalgonaConfig 椪糖小游戏配置
type DalgonaConfig struct {
	Tracing TracingPreset `yaml:"tracing"`
	// Boxes 可选的神秘盒子数量
	Boxes int `yaml:"boxes"`
	// RevealDuration 揭示形状的时长（秒）
	RevealDuration float64 `yaml:"revealDuration"`
	// Shapes 随机抽取的形状列表（circle / triangle / umbrella / star）
	Shapes []string `yaml:"shapes"`
	// ImageSize 程序生成的饼干图片边长（像素）
	ImageSize int `yaml:"imageSize"`
	// DisplayFraction 饼干在屏幕上最多占据的宽高比例
	DisplayFraction float64 `yaml:"displayFraction"`
	// Images 可选：形状名到 resources.yaml 图片资源 ID 的映射，未配置的形状使用程序生成的图片
	Images map[string]string `yaml:"images"`
}

// ShapeKinds 解析形状列表
func (c DalgonaConfig) ShapeKinds() ([]shapes.Kind, error) {
	kinds := make([]shapes.Kind, 0, len(c.Shapes))
	for _, name := range c.Shapes {
		k, err := shapes.ParseKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

// BoundaryConfig 边界描线小游戏配置
type BoundaryConfig struct {
	Tracing   TracingPreset `yaml:"tracing"`
	Shape     string        `yaml:"shape"`
	Size      int           `yaml:"size"`
	Thickness float64       `yaml:"thickness"`
}

// PlayerConfig 红绿灯玩家配置
type PlayerConfig struct {
	Name string `yaml:"name"`
	// Key 移动键名称（ebiten 键名，如 "ArrowRight"、"D"）
	Key string `yaml:"key"`
	// Color 十六进制颜色，如 "#0079F1"
	Color string `yaml:"color"`
}

// RedLightConfig 红绿灯小游戏配置
type RedLightConfig struct {
	// Duration 整局时长（秒）
	Duration float64 `yaml:"duration"`
	// GreenDuration 绿灯时长（秒），0 表示使用童谣音效的长度
	GreenDuration float64 `yaml:"greenDuration"`
	RedDuration   float64 `yaml:"redDuration"`
	// Speed 玩家移动速度（像素/秒）
	Speed   float64        `yaml:"speed"`
	StartX  float64        `yaml:"startX"`
	StartY  float64        `yaml:"startY"`
	GapY    float64        `yaml:"gapY"`
	FinishX float64        `yaml:"finishX"`
	Players []PlayerConfig `yaml:"players"`
}

// BridgeConfig 玻璃桥小游戏配置
type BridgeConfig struct {
	Rows int `yaml:"rows"`
}

// MarblesConfig 弹珠小游戏配置
type MarblesConfig struct {
	Start  int `yaml:"start"`
	MaxBet int `yaml:"maxBet"`
	// AIDelay 玩家下注后等待 AI 出手的时间（秒）
	AIDelay float64 `yaml:"aiDelay"`
	// ResultDelay AI 猜测结果展示时长（秒）
	ResultDelay float64 `yaml:"resultDelay"`
}

// TugOfWarConfig 拔河小游戏配置
type TugOfWarConfig struct {
	// PullForce 每次净拉动对应的绳子位移（像素/帧）
	PullForce float64 `yaml:"pullForce"`
	// ResetInterval 拉动计数清零间隔（秒）
	ResetInterval float64 `yaml:"resetInterval"`
	// ArenaWidth 绳子可移动的区域宽度
	ArenaWidth float64 `yaml:"arenaWidth"`
	RopeWidth  float64 `yaml:"ropeWidth"`
	Player1Key string  `yaml:"player1Key"`
	Player2Key string  `yaml:"player2Key"`
}

// DefaultArcadeConfig 返回内置默认配置
func DefaultArcadeConfig() *ArcadeConfig {
	return &ArcadeConfig{
		Window: WindowConfig{
			Title: "Squid Arcade",
			TPS:   60,
		},
		Dalgona: DalgonaConfig{
			Tracing: TracingPreset{
				Threshold:     110,
				InsideRadius:  2,
				OutsideRadius: 2,
				Cooldown:      0.35,
				Goal:          0.60,
				MaxCracks:     30,
				OffImage:      "ignore",
			},
			Boxes:           4,
			RevealDuration:  1.2,
			Shapes:          []string{"circle", "triangle", "umbrella", "star"},
			ImageSize:       360,
			DisplayFraction: 0.6,
		},
		Boundary: BoundaryConfig{
			Tracing: TracingPreset{
				Threshold:     10,
				InsideRadius:  8,
				OutsideRadius: 8,
				Cooldown:      0.25,
				Goal:          0.85,
				MaxCracks:     10,
				OffImage:      "crack",
			},
			Shape:     "triangle",
			Size:      420,
			Thickness: 18,
		},
		RedLight: RedLightConfig{
			Duration:    30,
			RedDuration: 2,
			Speed:       240,
			StartX:      80,
			StartY:      200,
			GapY:        100,
			FinishX:     GameWindowWidth - 150,
			Players: []PlayerConfig{
				{Name: "456", Key: "ArrowRight", Color: "#0079F1"},
				{Name: "222", Key: "D", Color: "#E62937"},
				{Name: "333", Key: "E", Color: "#00E430"},
				{Name: "388", Key: "S", Color: "#FFCB00"},
			},
		},
		Bridge: BridgeConfig{Rows: 5},
		Marbles: MarblesConfig{
			Start:       10,
			MaxBet:      5,
			AIDelay:     1.5,
			ResultDelay: 2.0,
		},
		TugOfWar: TugOfWarConfig{
			PullForce:     2.5,
			ResetInterval: 0.5,
			ArenaWidth:    900,
			RopeWidth:     300,
			Player1Key:    "A",
			Player2Key:    "L",
		},
	}
}

// LoadArcadeConfig 加载街机配置
//
// 参数:
//   - path: 配置文件路径（如 "data/arcade.yaml"）；embedded 已初始化时从嵌入资源读取
//
// 返回:
//   - *ArcadeConfig: 默认值叠加文件内容后的配置
//   - error: 读取、解析或验证失败时返回错误
func LoadArcadeConfig(path string) (*ArcadeConfig, error) {
	data, err := embedded.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read arcade config: %w", err)
	}
	return ParseArcadeConfig(data)
}

// ParseArcadeConfig 解析 YAML 内容并验证
func ParseArcadeConfig(data []byte) (*ArcadeConfig, error) {
	cfg := DefaultArcadeConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse arcade config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid arcade config: %w", err)
	}

	return cfg, nil
}

// Validate 验证配置有效性
func (c *ArcadeConfig) Validate() error {
	if c.Window.TPS <= 0 {
		return fmt.Errorf("window tps must be positive, got %d", c.Window.TPS)
	}

	// 椪糖
	if err := c.Dalgona.Tracing.Validate(); err != nil {
		return fmt.Errorf("dalgona tracing: %w", err)
	}
	if c.Dalgona.Boxes <= 0 {
		return fmt.Errorf("dalgona boxes must be positive, got %d", c.Dalgona.Boxes)
	}
	if len(c.Dalgona.Shapes) == 0 {
		return fmt.Errorf("dalgona shapes must not be empty")
	}
	if _, err := c.Dalgona.ShapeKinds(); err != nil {
		return fmt.Errorf("dalgona shapes: %w", err)
	}
	for name := range c.Dalgona.Images {
		if _, err := shapes.ParseKind(name); err != nil {
			return fmt.Errorf("dalgona images: %w", err)
		}
	}
	if c.Dalgona.ImageSize < 16 {
		return fmt.Errorf("dalgona imageSize %d too small", c.Dalgona.ImageSize)
	}
	if c.Dalgona.DisplayFraction <= 0 || c.Dalgona.DisplayFraction > 1 {
		return fmt.Errorf("dalgona displayFraction %.2f out of range (0, 1]", c.Dalgona.DisplayFraction)
	}

	// 边界描线
	if err := c.Boundary.Tracing.Validate(); err != nil {
		return fmt.Errorf("boundary tracing: %w", err)
	}
	if _, err := shapes.ParseKind(c.Boundary.Shape); err != nil {
		return fmt.Errorf("boundary shape: %w", err)
	}
	if c.Boundary.Size < 16 || c.Boundary.Thickness <= 0 {
		return fmt.Errorf("boundary size/thickness invalid: size=%d thickness=%.1f", c.Boundary.Size, c.Boundary.Thickness)
	}

	// 红绿灯
	rl := c.RedLight
	if rl.Duration <= 0 || rl.RedDuration <= 0 || rl.GreenDuration < 0 {
		return fmt.Errorf("redLight durations invalid: duration=%.1f green=%.1f red=%.1f",
			rl.Duration, rl.GreenDuration, rl.RedDuration)
	}
	if rl.Speed <= 0 {
		return fmt.Errorf("redLight speed must be positive, got %.1f", rl.Speed)
	}
	if rl.FinishX <= rl.StartX {
		return fmt.Errorf("redLight finishX(%.1f) must be greater than startX(%.1f)", rl.FinishX, rl.StartX)
	}
	if len(rl.Players) == 0 {
		return fmt.Errorf("redLight players must not be empty")
	}
	for i, p := range rl.Players {
		if p.Name == "" || p.Key == "" {
			return fmt.Errorf("redLight player %d needs a name and a key", i)
		}
		if _, err := ParseHexColor(p.Color); err != nil {
			return fmt.Errorf("redLight player %s: %w", p.Name, err)
		}
	}

	if c.Bridge.Rows <= 0 {
		return fmt.Errorf("bridge rows must be positive, got %d", c.Bridge.Rows)
	}

	if c.Marbles.Start <= 0 || c.Marbles.MaxBet <= 0 {
		return fmt.Errorf("marbles start(%d) and maxBet(%d) must be positive", c.Marbles.Start, c.Marbles.MaxBet)
	}
	if c.Marbles.AIDelay < 0 || c.Marbles.ResultDelay < 0 {
		return fmt.Errorf("marbles delays must not be negative")
	}

	tw := c.TugOfWar
	if tw.PullForce <= 0 || tw.ResetInterval <= 0 {
		return fmt.Errorf("tugOfWar pullForce(%.2f) and resetInterval(%.2f) must be positive", tw.PullForce, tw.ResetInterval)
	}
	if tw.RopeWidth <= 0 || tw.ArenaWidth <= tw.RopeWidth {
		return fmt.Errorf("tugOfWar arenaWidth(%.1f) must exceed ropeWidth(%.1f)", tw.ArenaWidth, tw.RopeWidth)
	}
	if tw.Player1Key == "" || tw.Player2Key == "" {
		return fmt.Errorf("tugOfWar keys must not be empty")
	}

	return nil
}

// ParseHexColor 解析 "#RRGGBB" 或 "#RRGGBBAA" 格式的颜色
func ParseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	c := color.NRGBA{A: 255}

	var err error
	switch len(hex) {
	case 6:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x", &c.R, &c.G, &c.B)
	case 8:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A)
	default:
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return c, nil
}
