package request

// RecommendedQuery narrows the recommended-partner listing. All fields
// are optional; zero values disable the corresponding filter.
type RecommendedQuery struct {
	NativeLanguage   string `form:"nativeLang"`
	LearningLanguage string `form:"learningLang"`
	Track            string `form:"track"`
	Query            string `form:"q"`
	Page             int    `form:"page"`
	Limit            int    `form:"limit"`
}
