package lesson

import "time"

type Option struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type Question struct {
	ID       string   `json:"id"`
	LessonID string   `json:"-"`
	Text     string   `json:"text"`
	Options  []Option `json:"options"`
	// CorrectOptionID never leaves the server on the student path.
	CorrectOptionID string `json:"correctOptionId,omitempty"`
}

// StudentView strips the correct option before serving.
func (q Question) StudentView() Question {
	q.CorrectOptionID = ""
	return q
}

type Subject struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   int    `json:"completed"`
	Total       int    `json:"total"`
	Icon        string `json:"icon"`
}

type Lesson struct {
	ID        string `json:"id"`
	SubjectID string `json:"subjectId"`
	Title     string `json:"title"`
	Questions int    `json:"questions"`
	Completed bool   `json:"completed"`
	Locked    bool   `json:"locked"`
}

type Attempt struct {
	ID        string    `json:"id"`
	StudentID string    `json:"studentId"`
	SubjectID string    `json:"subjectId"`
	LessonID  string    `json:"lessonId"`
	CreatedAt time.Time `json:"createdAt"`
}

// Verdict is the server's answer to one submission.
type Verdict struct {
	QuestionID      string `json:"questionId"`
	ChosenOptionID  string `json:"chosenOptionId"`
	CorrectOptionID string `json:"correctOptionId"`
	IsCorrect       bool   `json:"isCorrect"`
}

type Student struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Phone              string  `json:"phone"`
	Email              string  `json:"email"`
	PasswordHash       string  `json:"-"`
	Status             string  `json:"status"`
	Level              int     `json:"level"`
	XP                 int     `json:"xp"`
	NextLevelXPNeeded  int     `json:"nextLevelXPNeeded"`
	DaysStreak         int     `json:"daysStreak"`
	FriendsCount       int     `json:"friendsCount"`
	DateOfBirth        string  `json:"dateOfBirth"`
	LastLessonAnswered *string `json:"lastLessonAnswered"`
	CreatedAt          string  `json:"createdAt"`
}

type FriendRequest struct {
	ID        string `json:"id"`
	StudentID string `json:"studentId"`
	FriendID  string `json:"friendId"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}
