package gateway

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// FetchToolContent issues the three tool-session requests concurrently and
// joins on all of them. Individual failures contribute their typed defaults;
// the join itself always produces a complete ToolContent.
func (s *Service) FetchToolContent(ctx context.Context, toolName string) ToolContent {
	var tc ToolContent

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		tc.Guide = s.Guide(gctx, toolName)
		return nil
	})
	g.Go(func() error {
		tc.Scenario = s.Scenario(gctx, toolName)
		return nil
	})
	g.Go(func() error {
		tc.Videos = s.Videos(gctx, toolName)
		return nil
	})
	_ = g.Wait() // sub-ops never fail; Wait only joins

	return tc
}

// FetchTopicContent issues the lesson and video requests concurrently and
// joins on both.
func (s *Service) FetchTopicContent(ctx context.Context, topic, courseContext string) TopicContent {
	var tc TopicContent

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		tc.Lesson = s.Lesson(gctx, topic, courseContext)
		return nil
	})
	g.Go(func() error {
		tc.Videos = s.Videos(gctx, topic)
		return nil
	})
	_ = g.Wait()

	return tc
}
