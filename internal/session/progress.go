package session

import (
	"context"
	"fmt"
	"math"
	"os"
	"slices"
	"sync"

	"github.com/abhisek/cyberhunter/internal/catalog"
	"github.com/abhisek/cyberhunter/internal/store"
)

// Tracker holds the completion mapping (course ID → completed topics) in
// memory and persists it through a ProgressRepo. The mapping is saved
// wholesale on every accepted change.
type Tracker struct {
	mu        sync.Mutex
	repo      store.ProgressRepo
	completed map[string][]string
}

// NewTracker loads the stored mapping and returns a tracker over it.
func NewTracker(ctx context.Context, repo store.ProgressRepo) *Tracker {
	return &Tracker{
		repo:      repo,
		completed: repo.Load(ctx),
	}
}

// MarkComplete records a topic as completed and saves synchronously.
// Marking an already-completed topic is a no-op with no persistence write.
// A topic absent from the course's declared topic list is rejected.
func (t *Tracker) MarkComplete(ctx context.Context, courseID, topic string) error {
	course, err := catalog.FindCourse(courseID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: progress for unknown course %q ignored\n", courseID)
		return nil
	}
	if !course.HasTopic(topic) {
		fmt.Fprintf(os.Stderr, "warning: topic %q not in course %q, ignored\n", topic, courseID)
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if slices.Contains(t.completed[courseID], topic) {
		return nil
	}
	t.completed[courseID] = append(t.completed[courseID], topic)

	if err := t.repo.Save(ctx, t.completed); err != nil {
		return fmt.Errorf("persist completion: %w", err)
	}
	return nil
}

// Completed reports whether a topic has been completed.
func (t *Tracker) Completed(courseID, topic string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return slices.Contains(t.completed[courseID], topic)
}

// CompletedCount returns the number of completed topics in a course.
func (t *Tracker) CompletedCount(courseID string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.completed[courseID])
}

// CompletionPercent returns the course completion as a rounded percentage.
// A course with no topics is 0% complete.
func (t *Tracker) CompletionPercent(courseID string) int {
	course, err := catalog.FindCourse(courseID)
	if err != nil || len(course.Topics) == 0 {
		return 0
	}
	done := t.CompletedCount(courseID)
	return int(math.Round(100 * float64(done) / float64(len(course.Topics))))
}

// OverallPercent returns completion across every course in the catalog.
func (t *Tracker) OverallPercent() int {
	total := catalog.TotalTopics()
	if total == 0 {
		return 0
	}

	t.mu.Lock()
	done := 0
	for _, topics := range t.completed {
		done += len(topics)
	}
	t.mu.Unlock()

	return int(math.Round(100 * float64(done) / float64(total)))
}
