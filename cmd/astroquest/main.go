// astroquest is the terminal quiz client. It signs a student in, lets
// them pick a subject and lesson, and runs the attempt flow against the
// platform API (or a local practiced instance).
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/astrolearn/astrolearn-client/internal/authsession"
	"github.com/astrolearn/astrolearn-client/internal/config"
	"github.com/astrolearn/astrolearn-client/internal/platform"
	"github.com/astrolearn/astrolearn-client/internal/quiz"
	"github.com/astrolearn/astrolearn-client/internal/rank"
)

type printNotifier struct{}

func (printNotifier) Notify(msg string) { fmt.Println("! " + msg) }

type printNavigator struct{}

func (printNavigator) LessonFinished(t quiz.Tally) {
	fmt.Printf("\nLesson finished: %d/%d correct (%d%%)\n", t.Correct, t.Total, t.Percent())
}

func main() {
	cfg := config.FromEnv()
	in := bufio.NewReader(os.Stdin)
	ctx := context.Background()

	tokens := authsession.NewTokenStore()
	client := platform.New(platform.Config{
		BaseURL: cfg.APIBaseURL,
		Timeout: cfg.CallTimeout,
		Tokens:  tokens,
	})

	cache, err := authsession.NewFileCache(cfg.TokenCachePath)
	if err != nil {
		log.Fatalf("token cache: %v", err)
	}

	var issuer authsession.TokenIssuer = client
	if cfg.EnableIdP {
		issuer = authsession.NewIdentityProvider(cfg.IdPClientID, cfg.IdPSecret, cfg.IdPTokenURL)
	}
	auth := authsession.New(tokens, issuer, client, cache)

	if !auth.Restore(ctx) {
		if err := signIn(ctx, in, auth); err != nil {
			log.Fatalf("sign in: %v", err)
		}
	}
	d := auth.Display()
	fmt.Printf("Signed in as %s (level %d)\n\n", d.Name, d.Level)

	subject, err := pickSubject(ctx, in, client)
	if err != nil {
		log.Fatalf("subjects: %v", err)
	}
	ls, err := pickLesson(ctx, in, client, subject)
	if err != nil {
		log.Fatalf("lessons: %v", err)
	}

	if err := runLesson(ctx, in, client, auth.StudentID(), subject.ID, ls, cfg); err != nil {
		log.Fatalf("lesson: %v", err)
	}

	printLeaderboard(ctx, client, auth)
}

func signIn(ctx context.Context, in *bufio.Reader, auth *authsession.Session) error {
	fmt.Print("email: ")
	email, _ := in.ReadString('\n')
	fmt.Print("password: ")
	password, _ := in.ReadString('\n')
	return auth.SignIn(ctx, strings.TrimSpace(email), strings.TrimSpace(password))
}

func pickSubject(ctx context.Context, in *bufio.Reader, c *platform.Client) (platform.Subject, error) {
	subjects, err := c.Subjects(ctx)
	if err != nil {
		return platform.Subject{}, err
	}
	if len(subjects) == 0 {
		return platform.Subject{}, fmt.Errorf("no subjects available")
	}
	fmt.Println("Subjects:")
	for i, s := range subjects {
		fmt.Printf("  %d) %s (%d/%d lessons done)\n", i+1, s.Title, s.Completed, s.Total)
	}
	return subjects[choose(in, len(subjects))], nil
}

func pickLesson(ctx context.Context, in *bufio.Reader, c *platform.Client, s platform.Subject) (platform.Lesson, error) {
	lessons, err := c.Lessons(ctx, s.ID)
	if err != nil {
		return platform.Lesson{}, err
	}
	if len(lessons) == 0 {
		return platform.Lesson{}, fmt.Errorf("subject %s has no lessons", s.Title)
	}
	fmt.Printf("\nLessons in %s:\n", s.Title)
	for i, l := range lessons {
		mark := " "
		if l.Completed {
			mark = "*"
		}
		fmt.Printf("  %d) %s %s\n", i+1, mark, l.Title)
	}
	return lessons[choose(in, len(lessons))], nil
}

func runLesson(ctx context.Context, in *bufio.Reader, c *platform.Client, studentID, subjectID string, l platform.Lesson, cfg config.Config) error {
	sess, err := quiz.NewSession(c, printNotifier{}, printNavigator{}, quiz.Options{
		StudentID:    studentID,
		SubjectID:    subjectID,
		LessonID:     l.ID,
		AdvanceDelay: cfg.AdvanceDelay,
		CallTimeout:  cfg.CallTimeout,
	})
	if err != nil {
		return err
	}
	defer sess.Close()

	if err := sess.Start(ctx); err != nil {
		return err
	}

	for {
		q, idx, ok := sess.Current()
		if !ok {
			break
		}
		fmt.Printf("\nQuestion %d of %d\n%s\n", idx+1, sess.TotalQuestions(), q.Text)
		for i, o := range q.Options {
			fmt.Printf("  %d) %s\n", i+1, o.Text)
		}
		choice := q.Options[choose(in, len(q.Options))]

		res, err := sess.Submit(ctx, choice.ID)
		if err != nil {
			// notifier already told the user; let them answer again
			continue
		}
		if res.IsCorrect {
			fmt.Println("Correct!")
		} else {
			fmt.Printf("Wrong. The right answer was: %s\n", optionText(q, res.CorrectOptionID))
		}
		// keep the verdict on screen while the session advances
		if cfg.AdvanceDelay > 0 {
			time.Sleep(cfg.AdvanceDelay + 100*time.Millisecond)
		}
	}

	t := sess.Tally()
	err = c.SubmitLessonResults(ctx, l.ID, platform.LessonResult{
		CorrectAnswers: t.Correct,
		TotalQuestions: t.Total,
	})
	if err != nil {
		fmt.Println("! Could not record the lesson result.")
	}
	return nil
}

func printLeaderboard(ctx context.Context, c *platform.Client, auth *authsession.Session) {
	profile, ok := auth.Profile()
	if !ok {
		return
	}
	friends, err := c.Friends(ctx, profile.ID)
	if err != nil {
		return
	}
	fmt.Println("\nLeaderboard:")
	for _, row := range rank.Build(profile, friends) {
		you := ""
		if row.You {
			you = "  <- you"
		}
		fmt.Printf("  %2d. %-20s level %d%s\n", row.Position, row.Name, row.Level, you)
	}
}

func optionText(q platform.Question, optionID string) string {
	for _, o := range q.Options {
		if o.ID == optionID {
			return o.Text
		}
	}
	return optionID
}

// choose reads a 1-based selection and returns the zero-based index.
func choose(in *bufio.Reader, n int) int {
	for {
		fmt.Printf("> ")
		line, err := in.ReadString('\n')
		if err != nil {
			os.Exit(1)
		}
		i, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && i >= 1 && i <= n {
			return i - 1
		}
		fmt.Printf("enter a number between 1 and %d\n", n)
	}
}
