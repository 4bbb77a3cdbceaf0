package http

import (
	"github.com/go-chi/chi/v5"

	auth "github.com/astrolearn/astrolearn-client/internal/auth/middleware"
	"github.com/astrolearn/astrolearn-client/internal/lesson"
)

// Routes builds the /api/v1 surface. Sign-in is open; everything else
// requires a bearer token.
func Routes(store lesson.Store, svc *auth.AuthService, sample int) chi.Router {
	r := chi.NewRouter()

	r.Post("/students/sign-in", auth.SignInHandler(svc, store))

	r.Group(func(r chi.Router) {
		r.Use(auth.JWTMiddleware(svc))

		r.Get("/subjects", ListSubjectsHandler(store))
		r.Get("/subjects/{subjectID}", GetSubjectHandler(store))
		r.Get("/subjects/{subjectID}/lessons", ListLessonsHandler(store))
		r.Get("/subjects/{subjectID}/lessons/{lessonID}/questions/random", RandomQuestionsHandler(store, sample))

		r.Post("/students/{studentID}/subjects/{subjectID}/lessons/{lessonID}/attempts", CreateAttemptHandler(store))
		r.Post("/attempts/{attemptID}/questions/{questionID}/answers", SubmitAnswerHandler(store))
		r.Post("/lessons/{lessonID}/results", SaveLessonResultHandler(store))

		r.Get("/students", SearchStudentsHandler(store))
		r.Get("/students/{studentID}", GetStudentHandler(store))
		r.Get("/students/{studentID}/friends", ListFriendsHandler(store))
		r.Get("/students/{studentID}/friends/requests", ListFriendRequestsHandler(store))
	})

	return r
}
