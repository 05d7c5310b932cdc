// Package entities 提供实体工厂函数
package entities

import (
	"github.com/decker502/jobdeck/pkg/components"
	"github.com/decker502/jobdeck/pkg/ecs"
	"github.com/decker502/jobdeck/pkg/types"
)

// NewCardEntity 创建活动卡片实体
//
// 参数：
//   - em: 实体管理器
//   - item: 卡片展示的职位条目
//   - index: 条目在卡片堆中的位置
//
// 返回：
//   - 卡片实体ID（CardComponent + CardTransformComponent，变换处于静止状态）
func NewCardEntity(em *ecs.EntityManager, item types.ListingItem, index int) ecs.EntityID {
	entity := em.CreateEntity()
	em.AddComponent(entity, &components.CardComponent{Item: item, Index: index})
	em.AddComponent(entity, &components.CardTransformComponent{})
	return entity
}
