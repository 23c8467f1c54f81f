package models

type TaskStatus string

const (
	TaskStatusPending TaskStatus = "pending"
	TaskStatusDone    TaskStatus = "done"
)

type Task struct {
	Status   TaskStatus `json:"status"`
	TaskID   uint64     `json:"taskId"`
	BucketID uint64     `json:"bucketId"`
	Text     string     `json:"text"`
}

// Toggle flips the task between pending and done.
func (t *Task) Toggle() {
	if t.Status == TaskStatusDone {
		t.Status = TaskStatusPending
	} else {
		t.Status = TaskStatusDone
	}
}

// Clone returns an independent copy of the task.
func (t *Task) Clone() *Task {
	clone := *t
	return &clone
}
