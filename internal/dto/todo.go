package dto

import "github.com/yamadori/todolog/internal/models"

// TaskView is the template-facing shape of a task.
type TaskView struct {
	TaskID   uint64
	BucketID uint64
	Text     string
	Status   string
	Done     bool
}

// BucketView is the template-facing shape of a bucket with its tasks in id
// order.
type BucketView struct {
	BucketID uint64
	Title    string
	Tasks    []TaskView
}

// TodoView is the data handed to the todo page and bucket list templates.
type TodoView struct {
	Username string
	Buckets  []BucketView
}

// ToTaskView converts a task model for rendering.
func ToTaskView(task *models.Task) TaskView {
	return TaskView{
		TaskID:   task.TaskID,
		BucketID: task.BucketID,
		Text:     task.Text,
		Status:   string(task.Status),
		Done:     task.Status == models.TaskStatusDone,
	}
}

// ToBucketView converts a bucket model for rendering.
func ToBucketView(bucket *models.Bucket) BucketView {
	view := BucketView{
		BucketID: bucket.BucketID,
		Title:    bucket.Title,
	}
	for _, task := range bucket.OrderedTasks() {
		view.Tasks = append(view.Tasks, ToTaskView(task))
	}
	return view
}

// ToBucketViews converts an ordered bucket listing for rendering.
func ToBucketViews(buckets []*models.Bucket) []BucketView {
	views := make([]BucketView, 0, len(buckets))
	for _, bucket := range buckets {
		views = append(views, ToBucketView(bucket))
	}
	return views
}
