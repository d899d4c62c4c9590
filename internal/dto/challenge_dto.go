package dto

type CreateChallengeRequest struct {
	Title                  string `json:"title"`
	Context                string `json:"context"`
	FunctionalRequirements string `json:"functional_requirements"`
	TechnicalRequirements  string `json:"technical_requirements"`
	SeniorityTier          string `json:"seniority_tier"`
	Stack                  string `json:"stack"`
}

type CreateSolutionRequest struct {
	AuthorName     string `json:"author_name"`
	RepositoryLink string `json:"repository_link"`
}

type CreateEvaluationRequest struct {
	Score   int    `json:"score"`
	Comment string `json:"comment"`
}
