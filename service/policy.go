package service

import (
	"Agora/config"
	"Agora/models"
	"time"
)

// EditPolicy 编辑窗口策略
// 发帖后的一段时间内允许作者修改 时长走配置
type EditPolicy struct {
	Config *config.Config
}

// CanEdit 帖子是否仍可被 actor 编辑
// 只有作者本人且在发布后的编辑窗口内才返回 true 纯函数无副作用
func (p *EditPolicy) CanEdit(post *models.Post, actorID uint64, now time.Time) bool {
	if actorID == 0 || actorID != post.AuthorID {
		return false
	}
	return now.Before(post.CreatedAt.Add(p.Window()))
}

// Window 编辑窗口时长
func (p *EditPolicy) Window() time.Duration {
	return time.Duration(p.Config.Forum.EditWindowMinutes) * time.Minute
}
