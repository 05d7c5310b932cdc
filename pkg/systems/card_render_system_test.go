package systems

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/jobdeck/pkg/components"
	"github.com/decker502/jobdeck/pkg/config"
	"github.com/decker502/jobdeck/pkg/ecs"
	"github.com/decker502/jobdeck/pkg/entities"
	"github.com/decker502/jobdeck/pkg/types"
)

// TestCardGeoM 测试卡片几何变换
// GeoM 内部使用 float32，比较时留出误差
func TestCardGeoM(t *testing.T) {
	originX, originY := config.CardOrigin()

	tests := []struct {
		name      string
		transform types.CardTransform
		// 卡片局部坐标
		localX, localY float64
		wantX, wantY   float64
	}{
		{"静止时左上角", types.CardTransform{}, 0, 0, originX, originY},
		{"静止时中心", types.CardTransform{}, config.CardWidth / 2, config.CardHeight / 2, config.CardCenterX(), config.CardCenterY},
		{"平移不影响中心Y", types.CardTransform{TranslateX: 100}, config.CardWidth / 2, config.CardHeight / 2, config.CardCenterX() + 100, config.CardCenterY},
		{"旋转绕中心", types.CardTransform{TranslateX: -50, RotateDeg: 30}, config.CardWidth / 2, config.CardHeight / 2, config.CardCenterX() - 50, config.CardCenterY},
		{
			"旋转90度右上角",
			types.CardTransform{RotateDeg: 90},
			config.CardWidth, 0,
			config.CardCenterX() + config.CardHeight/2, config.CardCenterY + config.CardWidth/2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			geoM := CardGeoM(tt.transform)
			x, y := geoM.Apply(tt.localX, tt.localY)
			if math.Abs(x-tt.wantX) > 0.01 || math.Abs(y-tt.wantY) > 0.01 {
				t.Errorf("Apply(%v, %v) = (%v, %v), want (%v, %v)", tt.localX, tt.localY, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

// TestCardRenderSystemDuplicateIDs 条目 ID 重复时每张卡片仍有自己的画面
func TestCardRenderSystemDuplicateIDs(t *testing.T) {
	fonts, err := LoadCardFonts()
	if err != nil {
		t.Fatalf("LoadCardFonts() error: %v", err)
	}

	items := []types.ListingItem{
		{ID: "dup", Title: "Primeira"},
		{ID: "dup", Title: "Segunda"},
		{ID: "dup", Title: "Terceira"},
	}
	cursor := 0
	peek := func(n int) []types.ListingItem {
		rest := items[cursor+1:]
		if n < len(rest) {
			rest = rest[:n]
		}
		return rest
	}

	em := ecs.NewEntityManager()
	system := NewCardRenderSystem(em, fonts, peek, 2)
	screen := ebiten.NewImage(config.WindowWidth, config.WindowHeight)

	active := entities.NewCardEntity(em, items[0], 0)
	system.Draw(screen)

	if len(system.peekSurfaces) != 2 {
		t.Fatalf("peek cache holds %d surfaces, want 2", len(system.peekSurfaces))
	}
	second, third := system.peekSurfaces[1], system.peekSurfaces[2]
	if second == nil || third == nil || second == third {
		t.Fatal("peek cards with the same ID share one surface")
	}
	card, _ := ecs.GetComponent[*components.CardComponent](em, active)
	if card.Surface == nil || card.Surface == second || card.Surface == third {
		t.Error("active card reused a peek surface")
	}

	// 提交后下一张卡片接管它在预览缓存中的画面
	em.DestroyEntity(active)
	em.RemoveMarkedEntities()
	cursor = 1
	active = entities.NewCardEntity(em, items[1], 1)
	system.Draw(screen)

	card, _ = ecs.GetComponent[*components.CardComponent](em, active)
	if card.Surface != second {
		t.Error("new active card did not take over its own peek surface")
	}
	if len(system.peekSurfaces) != 1 || system.peekSurfaces[2] != third {
		t.Errorf("peek cache = %v, want only index 2 with the original surface", system.peekSurfaces)
	}

	system.Dispose()
	if len(system.peekSurfaces) != 0 {
		t.Error("Dispose() left peek surfaces behind")
	}
}

// TestApplyButtonContains 测试申请按钮命中检测随卡片变换
func TestApplyButtonContains(t *testing.T) {
	bx, by, bw, bh := ApplyButtonBounds()
	localX, localY := bx+bw/2, by+bh/2
	restGeoM := CardGeoM(types.CardTransform{})
	restX, restY := restGeoM.Apply(localX, localY)

	tests := []struct {
		name      string
		transform types.CardTransform
		x, y      float64
		want      bool
	}{
		{"静止时按钮中心", types.CardTransform{}, restX, restY, true},
		{"静止时按钮上方", types.CardTransform{}, restX, restY - bh, false},
		{"静止时卡片外", types.CardTransform{}, restX, float64(config.WindowHeight) - 1, false},
		{"平移后跟随", types.CardTransform{TranslateX: 120}, restX + 120, restY, true},
		{"平移后原位置按钮左端", types.CardTransform{TranslateX: 120}, restX - bw/2 + 10, restY, false},
		{"旋转180度按钮在上方", types.CardTransform{RotateDeg: 180}, config.CardCenterX(), 2*config.CardCenterY - restY, true},
		{"旋转180度原位置", types.CardTransform{RotateDeg: 180}, restX, restY, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApplyButtonContains(tt.transform, tt.x, tt.y); got != tt.want {
				t.Errorf("ApplyButtonContains(%+v, %v, %v) = %v, want %v", tt.transform, tt.x, tt.y, got, tt.want)
			}
		})
	}
}
