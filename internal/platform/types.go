package platform

// Wire types for the AstroLearn platform API. Field names follow the
// platform's JSON contract (camelCase).

type Option struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type Question struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Options []Option `json:"options"`
}

// Attempt is the server's record of one scoring session. Only ID is
// guaranteed by the contract; the rest is informational.
type Attempt struct {
	ID        string `json:"id"`
	StudentID string `json:"studentId,omitempty"`
	SubjectID string `json:"subjectId,omitempty"`
	LessonID  string `json:"lessonId,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// AnswerResult is the server's verdict on a single submission.
type AnswerResult struct {
	QuestionID      string `json:"questionId"`
	ChosenOptionID  string `json:"chosenOptionId"`
	CorrectOptionID string `json:"correctOptionId"`
	IsCorrect       bool   `json:"isCorrect"`
}

type StudentProfile struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Phone              string  `json:"phone"`
	Email              string  `json:"email"`
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

type Friend struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Level      int    `json:"level"`
	DaysStreak int    `json:"daysStreak"`
}

type FriendRequest struct {
	ID        string `json:"id"`
	StudentID string `json:"studentId"`
	FriendID  string `json:"friendId"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

type StudentSearchResult struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
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

// LessonResult is the bulk result summary from the earlier API revision.
// The per-question answer flow supersedes it; the endpoint is kept for
// compatibility.
type LessonResult struct {
	CorrectAnswers int `json:"correctAnswers"`
	TotalQuestions int `json:"totalQuestions"`
}
