// Package session owns the exclusive content slot behind the active training
// session. One slot exists at a time; each Begin claims it, nulls the previous
// content and bumps an epoch counter. Generation responses carry the epoch
// they were issued under, so a response that arrives after a Close or a newer
// Begin is discarded instead of clobbering the new session. In-flight requests
// are never cancelled, only their results dropped.
package session

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/abhisek/cyberhunter/internal/catalog"
)

// Controller guards the single content slot.
type Controller struct {
	mu    sync.Mutex
	epoch uint64
	state State
}

// NewController creates an idle controller.
func NewController() *Controller {
	return &Controller{}
}

// BeginTool claims the slot for a tool session. The returned epoch must be
// passed back to Complete with the generated content.
func (c *Controller) BeginTool(tool catalog.Tool) (uint64, State) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.epoch++
	c.state = State{
		Phase:     PhaseLoading,
		Kind:      KindTool,
		SessionID: uuid.New().String(),
		Title:     tool.Name,
		ToolName:  tool.Name,
	}
	return c.epoch, c.state
}

// BeginTopic claims the slot for a course topic session. An empty or unknown
// topic falls back to the course's first topic.
func (c *Controller) BeginTopic(course catalog.CourseModule, topic string) (uint64, State) {
	if topic == "" || !course.HasTopic(topic) {
		topic = course.FirstTopic()
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.epoch++
	c.state = State{
		Phase:     PhaseLoading,
		Kind:      KindTopic,
		SessionID: uuid.New().String(),
		Title:     fmt.Sprintf("%s : %s", course.Title, topic),
		CourseID:  course.ID,
		Topic:     topic,
	}
	return c.epoch, c.state
}

// Complete installs generated content into the slot, replacing it wholesale.
// It reports false when the epoch is stale, meaning a Close or a newer Begin
// happened since the content was requested; stale content is discarded.
func (c *Controller) Complete(epoch uint64, content Content) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if epoch != c.epoch || c.state.Phase == PhaseIdle {
		return false
	}

	c.state.Phase = PhaseReady
	c.state.Content = content
	return true
}

// Close resets the slot to idle. The epoch bump invalidates any response
// still in flight.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.epoch++
	c.state = State{}
}

// State returns a snapshot of the slot.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}
