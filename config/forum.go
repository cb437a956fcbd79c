package config

// Forum 论坛计数引擎配置
type Forum struct {
	// 帖子发布后允许作者编辑的时长(分钟)
	EditWindowMinutes int `json:"edit_window_minutes" yaml:"edit_window_minutes"`
	// 发主题帖时是否计入作者的发帖总数
	CountThreadPost bool `json:"count_thread_post" yaml:"count_thread_post"`
	// 对账(重算计数)周期(秒) 0 表示不开启定时对账
	ReconcileIntervalSeconds int `json:"reconcile_interval_seconds" yaml:"reconcile_interval_seconds"`
	// 活动事件流名称
	ActivityStream string `json:"activity_stream" yaml:"activity_stream"`
}

func (f *Forum) applyDefaults() {
	if f.EditWindowMinutes <= 0 {
		f.EditWindowMinutes = 30
	}
	if f.ActivityStream == "" {
		f.ActivityStream = "agora:activity"
	}
}
