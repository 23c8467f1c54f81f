package models

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrBucketNotFound = errors.New("bucket not found")
	ErrTaskNotFound   = errors.New("task not found")
)

// TodoLog is one user's full collection of buckets. Bucket and task ids are
// monotonic counters, unique within their parent for the lifetime of the log.
type TodoLog struct {
	Buckets      map[uint64]*Bucket `json:"buckets"`
	LastBucketID uint64             `json:"lastBucketId"`
}

func NewTodoLog() *TodoLog {
	return &TodoLog{
		Buckets: make(map[uint64]*Bucket),
	}
}

// Append creates a bucket with the next bucket id and one seed pending task,
// registers it, and returns it.
func (l *TodoLog) Append(title, seedText string) *Bucket {
	if l.Buckets == nil {
		l.Buckets = make(map[uint64]*Bucket)
	}
	l.LastBucketID++
	bucket := &Bucket{
		Title:    title,
		BucketID: l.LastBucketID,
		Tasks:    make(map[uint64]*Task),
	}
	bucket.AppendTask(seedText)
	l.Buckets[bucket.BucketID] = bucket
	return bucket
}

// DeleteBucket removes the bucket and all its tasks.
func (l *TodoLog) DeleteBucket(bucketID uint64) error {
	if _, ok := l.Buckets[bucketID]; !ok {
		return ErrBucketNotFound
	}
	delete(l.Buckets, bucketID)
	return nil
}

// EditBucketTitle replaces the bucket's title in place.
func (l *TodoLog) EditBucketTitle(bucketID uint64, title string) error {
	bucket, ok := l.Buckets[bucketID]
	if !ok {
		return ErrBucketNotFound
	}
	bucket.Title = title
	return nil
}

// AppendTask creates a pending task inside the given bucket.
func (l *TodoLog) AppendTask(bucketID uint64, text string) (*Task, error) {
	bucket, ok := l.Buckets[bucketID]
	if !ok {
		return nil, ErrBucketNotFound
	}
	return bucket.AppendTask(text), nil
}

// DeleteTask removes a task from its bucket.
func (l *TodoLog) DeleteTask(bucketID, taskID uint64) error {
	bucket, ok := l.Buckets[bucketID]
	if !ok {
		return ErrBucketNotFound
	}
	if !bucket.DeleteTask(taskID) {
		return ErrTaskNotFound
	}
	return nil
}

// EditTask replaces a task's text in place.
func (l *TodoLog) EditTask(bucketID, taskID uint64, text string) error {
	bucket, ok := l.Buckets[bucketID]
	if !ok {
		return ErrBucketNotFound
	}
	task, ok := bucket.Task(taskID)
	if !ok {
		return ErrTaskNotFound
	}
	task.Text = text
	return nil
}

// ChangeTaskStatus toggles a task between pending and done.
func (l *TodoLog) ChangeTaskStatus(bucketID, taskID uint64) (*Task, error) {
	bucket, ok := l.Buckets[bucketID]
	if !ok {
		return nil, ErrBucketNotFound
	}
	task, ok := bucket.Task(taskID)
	if !ok {
		return nil, ErrTaskNotFound
	}
	task.Toggle()
	return task, nil
}

// SearchTitle returns the buckets whose title contains the given substring.
// Matching is case-sensitive and recomputed on every call.
func (l *TodoLog) SearchTitle(substr string) []*Bucket {
	var matches []*Bucket
	for _, bucket := range l.orderedBuckets() {
		if strings.Contains(bucket.Title, substr) {
			matches = append(matches, bucket)
		}
	}
	return matches
}

// SearchTask returns the buckets containing at least one task whose text
// matches, each narrowed to its matching tasks. The returned buckets are
// copies; the stored log is untouched.
func (l *TodoLog) SearchTask(substr string) []*Bucket {
	var matches []*Bucket
	for _, bucket := range l.orderedBuckets() {
		narrowed := &Bucket{
			Title:      bucket.Title,
			BucketID:   bucket.BucketID,
			Tasks:      make(map[uint64]*Task),
			LastTaskID: bucket.LastTaskID,
		}
		for _, task := range bucket.Tasks {
			if strings.Contains(task.Text, substr) {
				narrowed.Tasks[task.TaskID] = task.Clone()
			}
		}
		if len(narrowed.Tasks) > 0 {
			matches = append(matches, narrowed)
		}
	}
	return matches
}

// AllBuckets returns every bucket in ascending bucket id order.
func (l *TodoLog) AllBuckets() []*Bucket {
	return l.orderedBuckets()
}

func (l *TodoLog) orderedBuckets() []*Bucket {
	buckets := make([]*Bucket, 0, len(l.Buckets))
	for _, bucket := range l.Buckets {
		buckets = append(buckets, bucket)
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].BucketID < buckets[j].BucketID })
	return buckets
}

// Clone returns an independent copy of the log and everything it owns.
func (l *TodoLog) Clone() *TodoLog {
	clone := &TodoLog{
		Buckets:      make(map[uint64]*Bucket, len(l.Buckets)),
		LastBucketID: l.LastBucketID,
	}
	for id, bucket := range l.Buckets {
		clone.Buckets[id] = bucket.Clone()
	}
	return clone
}
