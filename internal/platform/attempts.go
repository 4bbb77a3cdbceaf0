package platform

import (
	"context"
	"fmt"
	"net/url"
)

// CreateAttempt opens a scoring session for the student/subject/lesson
// triple and returns the server-assigned attempt. Not idempotent:
// calling twice creates two attempt records.
func (c *Client) CreateAttempt(ctx context.Context, studentID, subjectID, lessonID string) (Attempt, error) {
	if studentID == "" || subjectID == "" || lessonID == "" {
		return Attempt{}, fmt.Errorf("create attempt: %w", ErrMissingParameter)
	}
	path := fmt.Sprintf("/students/%s/subjects/%s/lessons/%s/attempts",
		url.PathEscape(studentID), url.PathEscape(subjectID), url.PathEscape(lessonID))
	var a Attempt
	if err := c.postJSON(ctx, "create attempt", path, struct{}{}, &a); err != nil {
		return Attempt{}, err
	}
	return a, nil
}

// RandomQuestions fetches the server-randomized question sample for a
// lesson. An empty slice is a valid outcome, distinct from an error.
// Re-invoking yields a different sample; call once per session.
func (c *Client) RandomQuestions(ctx context.Context, subjectID, lessonID string) ([]Question, error) {
	if subjectID == "" || lessonID == "" {
		return nil, fmt.Errorf("fetch questions: %w", ErrMissingParameter)
	}
	path := fmt.Sprintf("/subjects/%s/lessons/%s/questions/random",
		url.PathEscape(subjectID), url.PathEscape(lessonID))
	var qs []Question
	if err := c.getJSON(ctx, "fetch questions", path, &qs); err != nil {
		return nil, err
	}
	if qs == nil {
		qs = []Question{}
	}
	return qs, nil
}

// SubmitAnswer sends one chosen option and returns the server's verdict.
func (c *Client) SubmitAnswer(ctx context.Context, attemptID, questionID, chosenOptionID string) (AnswerResult, error) {
	if attemptID == "" || questionID == "" || chosenOptionID == "" {
		return AnswerResult{}, fmt.Errorf("submit answer: %w", ErrMissingParameter)
	}
	path := fmt.Sprintf("/attempts/%s/questions/%s/answers",
		url.PathEscape(attemptID), url.PathEscape(questionID))
	body := struct {
		ChosenOptionID string `json:"chosenOptionId"`
	}{ChosenOptionID: chosenOptionID}
	var res AnswerResult
	if err := c.postJSON(ctx, "submit answer", path, body, &res); err != nil {
		return AnswerResult{}, err
	}
	return res, nil
}
