package respond

// UserInfoRespond is the public profile shape returned everywhere a
// user appears.
type UserInfoRespond struct {
	Uuid             string `json:"uuid"`
	FullName         string `json:"fullName"`
	Email            string `json:"email,omitempty"`
	Bio              string `json:"bio"`
	ProfilePic       string `json:"profilePic"`
	NativeLanguage   string `json:"nativeLanguage"`
	LearningLanguage string `json:"learningLanguage"`
	EducationalPath  string `json:"educationalPath"`
	Location         string `json:"location"`
	Gender           string `json:"gender"`
	IsOnboarded      bool   `json:"isOnboarded"`
}
