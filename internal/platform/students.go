package platform

import (
	"context"
	"fmt"
	"net/url"
)

// SignIn exchanges credentials for a bearer token (custom token flow).
func (c *Client) SignIn(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", fmt.Errorf("sign in: %w", ErrMissingParameter)
	}
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}
	var out struct {
		Token string `json:"token"`
	}
	if err := c.postJSON(ctx, "sign in", "/students/sign-in", body, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

func (c *Client) Student(ctx context.Context, id string) (StudentProfile, error) {
	if id == "" {
		return StudentProfile{}, fmt.Errorf("fetch student: %w", ErrMissingParameter)
	}
	var p StudentProfile
	if err := c.getJSON(ctx, "fetch student", "/students/"+url.PathEscape(id), &p); err != nil {
		return StudentProfile{}, err
	}
	return p, nil
}

func (c *Client) Friends(ctx context.Context, studentID string) ([]Friend, error) {
	if studentID == "" {
		return nil, fmt.Errorf("fetch friends: %w", ErrMissingParameter)
	}
	var fs []Friend
	path := "/students/" + url.PathEscape(studentID) + "/friends"
	if err := c.getJSON(ctx, "fetch friends", path, &fs); err != nil {
		return nil, err
	}
	if fs == nil {
		fs = []Friend{}
	}
	return fs, nil
}

func (c *Client) FriendRequests(ctx context.Context, studentID string) ([]FriendRequest, error) {
	if studentID == "" {
		return nil, fmt.Errorf("fetch friend requests: %w", ErrMissingParameter)
	}
	var rs []FriendRequest
	path := "/students/" + url.PathEscape(studentID) + "/friends/requests"
	if err := c.getJSON(ctx, "fetch friend requests", path, &rs); err != nil {
		return nil, err
	}
	if rs == nil {
		rs = []FriendRequest{}
	}
	return rs, nil
}

// SearchStudents finds students by name. Queries shorter than two
// characters return empty without touching the network.
func (c *Client) SearchStudents(ctx context.Context, name string) ([]StudentSearchResult, error) {
	if len(name) < 2 {
		return []StudentSearchResult{}, nil
	}
	var rs []StudentSearchResult
	if err := c.getJSON(ctx, "search students", "/students?Name="+url.QueryEscape(name), &rs); err != nil {
		return nil, err
	}
	if rs == nil {
		rs = []StudentSearchResult{}
	}
	return rs, nil
}
