package request

// OnboardRequest completes the profile after signup.
// Used by:
//   - handler/auth_handler.go: OnboardHandler
type OnboardRequest struct {
	FullName         string `json:"fullName" binding:"required"`
	Bio              string `json:"bio" binding:"required"`
	NativeLanguage   string `json:"nativeLanguage" binding:"required"`
	LearningLanguage string `json:"learningLanguage" binding:"required"`
	EducationalPath  string `json:"educationalPath"`
	Location         string `json:"location" binding:"required"`
	Gender           string `json:"gender" binding:"omitempty,oneof=male female other"`
	ProfilePic       string `json:"profilePic"`
}
