package scenes

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/decker502/jobdeck/pkg/game"
	"github.com/decker502/jobdeck/pkg/listing"
	"github.com/decker502/jobdeck/pkg/types"
)

const frame = 1.0 / 60.0

// funcSource 用函数实现 listing.Source
type funcSource func(ctx context.Context) ([]types.ListingItem, error)

func (f funcSource) Fetch(ctx context.Context) ([]types.ListingItem, error) {
	return f(ctx)
}

// pollUntil 每帧更新场景直到条件满足或超时
func pollUntil(t *testing.T, scene game.Scene, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("timed out waiting for loading scene")
		}
		time.Sleep(time.Millisecond)
		scene.Update(frame)
	}
}

// TestLoadingSceneSuccess 测试加载成功后切换到卡片堆场景
func TestLoadingSceneSuccess(t *testing.T) {
	sm := game.NewSceneManager()
	items := []types.ListingItem{{ID: "1", Title: "Go"}}

	var received []types.ListingItem
	deckScene := &stubScene{}

	loading := NewLoadingScene(sm, funcSource(func(ctx context.Context) ([]types.ListingItem, error) {
		return items, nil
	}), nil, func(got []types.ListingItem) game.Scene {
		received = got
		return deckScene
	})
	sm.SwitchTo(loading)

	pollUntil(t, loading, func() bool { return sm.GetCurrentScene() != loading })

	if sm.GetCurrentScene() != deckScene {
		t.Errorf("current scene = %T, want deck scene", sm.GetCurrentScene())
	}
	if len(received) != 1 || received[0].ID != "1" {
		t.Errorf("factory received %+v", received)
	}
	if loading.Failed() != nil {
		t.Errorf("Failed() = %v, want nil", loading.Failed())
	}
}

// TestLoadingSceneFailure 测试加载失败时停留在“无数据”状态
func TestLoadingSceneFailure(t *testing.T) {
	sm := game.NewSceneManager()
	factoryCalled := false

	loading := NewLoadingScene(sm, listing.NewFallbackSource(), nil, func([]types.ListingItem) game.Scene {
		factoryCalled = true
		return &stubScene{}
	})
	sm.SwitchTo(loading)

	pollUntil(t, loading, func() bool { return loading.Failed() != nil })

	if !errors.Is(loading.Failed(), listing.ErrSourceUnavailable) {
		t.Errorf("Failed() = %v, want ErrSourceUnavailable", loading.Failed())
	}
	if factoryCalled {
		t.Error("deck scene must not be created when loading fails")
	}
	if sm.GetCurrentScene() != loading {
		t.Error("loading scene should stay active")
	}
}

// TestLoadingSceneDisposeCancels 测试释放场景时取消请求
func TestLoadingSceneDisposeCancels(t *testing.T) {
	cancelled := make(chan struct{})

	loading := NewLoadingScene(game.NewSceneManager(), funcSource(func(ctx context.Context) ([]types.ListingItem, error) {
		<-ctx.Done()
		close(cancelled)
		return nil, ctx.Err()
	}), nil, func([]types.ListingItem) game.Scene { return &stubScene{} })

	loading.Dispose()

	select {
	case <-cancelled:
	case <-time.After(2 * time.Second):
		t.Fatal("fetch context was not cancelled")
	}
}
