package utils

import "testing"

// mockPointerSource 用于测试的 mock 指针输入
type mockPointerSource struct {
	pressed bool
	x, y    int
}

func (m *mockPointerSource) PointerState() (bool, int, int) {
	return m.pressed, m.x, m.y
}

const frame = 1.0 / 60.0

func TestDragManagerInitialState(t *testing.T) {
	dm := NewDragManager(&mockPointerSource{})

	if dm.GetState() != DragStateNone {
		t.Errorf("Expected initial state to be DragStateNone, got %v", dm.GetState())
	}
	if dm.IsDragging() || dm.JustStarted() || dm.JustEnded() || dm.JustCancelled() {
		t.Error("Expected no drag flags initially")
	}
}

func TestDragManagerLifecycle(t *testing.T) {
	src := &mockPointerSource{}
	dm := NewDragManager(src)

	// 按下
	src.pressed, src.x, src.y = true, 200, 300
	dm.Update(frame)
	if !dm.JustStarted() {
		t.Fatalf("Expected DragStateStarted, got %v", dm.GetState())
	}

	// 移动
	src.x = 260
	dm.Update(frame)
	if !dm.IsDragging() {
		t.Fatalf("Expected DragStateDragging, got %v", dm.GetState())
	}
	if dx, _ := dm.GetDragDistance(); dx != 60 {
		t.Errorf("Expected dx=60, got %d", dx)
	}

	src.x = 350
	dm.Update(frame)

	// 释放：保留最后位置
	src.pressed, src.x = false, 0
	dm.Update(frame)
	if !dm.JustEnded() {
		t.Fatalf("Expected DragStateEnded, got %v", dm.GetState())
	}
	if dx, _ := dm.GetDragDistance(); dx != 150 {
		t.Errorf("Expected dx=150 after release, got %d", dx)
	}
	if ms := dm.ElapsedMs(); ms < 49 || ms > 51 {
		t.Errorf("Expected ~50ms elapsed, got %v", ms)
	}

	// 结束状态只持续一帧
	dm.Update(frame)
	if dm.GetState() != DragStateNone {
		t.Errorf("Expected DragStateNone after ended frame, got %v", dm.GetState())
	}
}

func TestDragManagerCancelWaitsForRelease(t *testing.T) {
	src := &mockPointerSource{pressed: true, x: 100}
	dm := NewDragManager(src)

	dm.Update(frame)
	dm.Update(frame)
	dm.Cancel()
	if !dm.JustCancelled() {
		t.Fatalf("Expected DragStateCancelled, got %v", dm.GetState())
	}

	// 指针仍按下：不会立即开始新拖拽
	dm.Update(frame)
	dm.Update(frame)
	if dm.GetState() != DragStateNone {
		t.Errorf("Expected DragStateNone while pointer held after cancel, got %v", dm.GetState())
	}

	// 释放后再按下才开始新拖拽
	src.pressed = false
	dm.Update(frame)
	src.pressed = true
	dm.Update(frame)
	if !dm.JustStarted() {
		t.Errorf("Expected new drag after release, got %v", dm.GetState())
	}
}

func TestDragManagerCancelIgnoredWhenIdle(t *testing.T) {
	dm := NewDragManager(&mockPointerSource{})
	dm.Cancel()
	if dm.GetState() != DragStateNone {
		t.Errorf("Cancel on idle manager should be a no-op, got %v", dm.GetState())
	}
}
