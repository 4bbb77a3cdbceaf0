package authsession

import "github.com/astrolearn/astrolearn-client/internal/platform"

// DisplayProfile is the canonical display record: either resolved from
// a fetched profile or a stub built from the bare student id. Callers
// branch on Resolved instead of chaining optional fields.
type DisplayProfile struct {
	StudentID string
	Name      string
	Level     int
	Resolved  bool
}

func Resolve(studentID string, p *platform.StudentProfile) DisplayProfile {
	if p == nil || p.Name == "" {
		return DisplayProfile{StudentID: studentID, Name: stubName(studentID)}
	}
	return DisplayProfile{StudentID: studentID, Name: p.Name, Level: p.Level, Resolved: true}
}

// ResolveFriend produces a display record for a friend-request
// counterpart, falling back to a stub when the profile is unknown.
func ResolveFriend(req platform.FriendRequest, profiles map[string]platform.StudentProfile) DisplayProfile {
	if p, ok := profiles[req.FriendID]; ok {
		return Resolve(req.FriendID, &p)
	}
	return Resolve(req.FriendID, nil)
}

func stubName(studentID string) string {
	if studentID == "" {
		return "student"
	}
	if len(studentID) > 8 {
		studentID = studentID[:8]
	}
	return "student-" + studentID
}
