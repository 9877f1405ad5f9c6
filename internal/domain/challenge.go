package domain

import "time"

// Canonical challenge task statuses. The store accepts any status string;
// these are the values the clients send.
const (
	TaskStatusNotStarted = "待开始"
	TaskStatusInProgress = "进行中"
	TaskStatusDone       = "已完成"
)

// Defaults for the challenge task every user starts with.
const (
	DefaultTaskStage       = "入门"
	DefaultTaskTitle       = "使用AI整理本周工作复盘"
	DefaultTaskDescription = "10分钟内产出一页总结并保存到语料库"
	DefaultTaskWindow      = 24 * time.Hour
)

// ChallengeTask is a per-user guided action. Only Status ever changes.
type ChallengeTask struct {
	ID          string `json:"id"`
	Stage       string `json:"stage"`
	Title       string `json:"title"`
	Status      string `json:"status"`
	Description string `json:"description"`
	Deadline    string `json:"deadline"`
}

// NewDefaultChallengeTask builds the starter task, due DefaultTaskWindow after now.
func NewDefaultChallengeTask(now time.Time) ChallengeTask {
	return ChallengeTask{
		ID:          NewID(),
		Stage:       DefaultTaskStage,
		Title:       DefaultTaskTitle,
		Status:      TaskStatusNotStarted,
		Description: DefaultTaskDescription,
		Deadline:    FormatTimestamp(now.Add(DefaultTaskWindow)),
	}
}

// WithStatus returns a copy of the task carrying the new status.
func (t ChallengeTask) WithStatus(status string) ChallengeTask {
	t.Status = status
	return t
}
