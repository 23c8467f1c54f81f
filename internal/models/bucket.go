package models

import "sort"

type Bucket struct {
	Title      string           `json:"title"`
	BucketID   uint64           `json:"bucketId"`
	Tasks      map[uint64]*Task `json:"tasks"`
	LastTaskID uint64           `json:"lastTaskId"`
}

// AppendTask creates a pending task with the next task id and registers it.
func (b *Bucket) AppendTask(text string) *Task {
	if b.Tasks == nil {
		b.Tasks = make(map[uint64]*Task)
	}
	b.LastTaskID++
	task := &Task{
		Status:   TaskStatusPending,
		TaskID:   b.LastTaskID,
		BucketID: b.BucketID,
		Text:     text,
	}
	b.Tasks[task.TaskID] = task
	return task
}

// Task returns the task with the given id, if present.
func (b *Bucket) Task(taskID uint64) (*Task, bool) {
	task, ok := b.Tasks[taskID]
	return task, ok
}

// DeleteTask removes the task with the given id and reports whether it existed.
func (b *Bucket) DeleteTask(taskID uint64) bool {
	if _, ok := b.Tasks[taskID]; !ok {
		return false
	}
	delete(b.Tasks, taskID)
	return true
}

// OrderedTasks returns the bucket's tasks in ascending task id order.
func (b *Bucket) OrderedTasks() []*Task {
	tasks := make([]*Task, 0, len(b.Tasks))
	for _, task := range b.Tasks {
		tasks = append(tasks, task)
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].TaskID < tasks[j].TaskID })
	return tasks
}

// Clone returns an independent copy of the bucket and its tasks.
func (b *Bucket) Clone() *Bucket {
	clone := &Bucket{
		Title:      b.Title,
		BucketID:   b.BucketID,
		Tasks:      make(map[uint64]*Task, len(b.Tasks)),
		LastTaskID: b.LastTaskID,
	}
	for id, task := range b.Tasks {
		clone.Tasks[id] = task.Clone()
	}
	return clone
}
