package platform

import (
	"context"
	"fmt"
	"net/url"
)

func (c *Client) Subjects(ctx context.Context) ([]Subject, error) {
	var ss []Subject
	if err := c.getJSON(ctx, "fetch subjects", "/subjects", &ss); err != nil {
		return nil, err
	}
	if ss == nil {
		ss = []Subject{}
	}
	return ss, nil
}

func (c *Client) Subject(ctx context.Context, id string) (Subject, error) {
	if id == "" {
		return Subject{}, fmt.Errorf("fetch subject: %w", ErrMissingParameter)
	}
	var s Subject
	if err := c.getJSON(ctx, "fetch subject", "/subjects/"+url.PathEscape(id), &s); err != nil {
		return Subject{}, err
	}
	return s, nil
}

func (c *Client) Lessons(ctx context.Context, subjectID string) ([]Lesson, error) {
	if subjectID == "" {
		return nil, fmt.Errorf("fetch lessons: %w", ErrMissingParameter)
	}
	var ls []Lesson
	path := "/subjects/" + url.PathEscape(subjectID) + "/lessons"
	if err := c.getJSON(ctx, "fetch lessons", path, &ls); err != nil {
		return nil, err
	}
	if ls == nil {
		ls = []Lesson{}
	}
	return ls, nil
}

// SubmitLessonResults posts a bulk result summary. Kept from the earlier
// API revision; the per-question answer flow is authoritative.
func (c *Client) SubmitLessonResults(ctx context.Context, lessonID string, r LessonResult) error {
	if lessonID == "" {
		return fmt.Errorf("submit results: %w", ErrMissingParameter)
	}
	path := "/lessons/" + url.PathEscape(lessonID) + "/results"
	return c.postJSON(ctx, "submit results", path, r, nil)
}
