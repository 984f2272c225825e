package service

import (
	"context"
	"errors"
)

// ErrAdvisory marks every failure of the advisory provider, including empty
// or malformed payloads.
var ErrAdvisory = errors.New("advisory service failure")

// Advisor turns structured career data into scored, structured guidance.
type Advisor interface {
	AnalyzeCareerFit(ctx context.Context, in CareerAssessmentInput) (*CareerFitResult, error)
	AnalyzeResume(ctx context.Context, content string) (*ResumeAnalysisResult, error)
	GenerateInterviewQuestions(ctx context.Context, jobTitle, company string) ([]InterviewQuestion, error)
	GenerateCareerRecommendations(ctx context.Context, currentRole, targetRole, industry string) (*CareerPlanResult, error)
	AnalyzeInterviewPerformance(ctx context.Context, questions []InterviewQuestion, responses []string) (*InterviewPerformanceResult, error)
	AnalyzeSkillGaps(ctx context.Context, skills []SkillSnapshot, targetRole, industry string) (*SkillGapResult, error)
}

type CareerAssessmentInput struct {
	Interests  []string `json:"interests"`
	Skills     []string `json:"skills"`
	Values     []string `json:"values"`
	WorkStyle  string   `json:"workStyle"`
	Experience string   `json:"experience"`
	Education  string   `json:"education"`
	Goals      string   `json:"goals"`
}

type CareerFitResult struct {
	OverallScore        float64  `json:"overallScore"`
	RecommendedRoles    []string `json:"recommendedRoles"`
	Strengths           []string `json:"strengths"`
	AreasForImprovement []string `json:"areasForImprovement"`
	CareerSuggestions   []string `json:"careerSuggestions"`
}

type ResumeAnalysis struct {
	Strengths   []string `json:"strengths"`
	Weaknesses  []string `json:"weaknesses"`
	Suggestions []string `json:"suggestions"`
}

type ResumeAnalysisResult struct {
	Score       float64        `json:"score"`
	Analysis    ResumeAnalysis `json:"analysis"`
	Suggestions []string       `json:"suggestions"`
}

const (
	CategoryBehavioral  = "Behavioral"
	CategoryTechnical   = "Technical"
	CategorySituational = "Situational"
	CategoryCultureFit  = "Culture Fit"
	CategoryGeneral     = "General"
)

type InterviewQuestion struct {
	Question   string `json:"question"`
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
}

type CareerStep struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Duration    string   `json:"duration"`
	Tasks       []string `json:"tasks,omitempty"`
}

type CareerTimeline struct {
	TotalMonths float64  `json:"totalMonths"`
	Phases      []string `json:"phases,omitempty"`
}

type SkillGap struct {
	Name         string   `json:"name"`
	CurrentLevel *float64 `json:"currentLevel,omitempty"`
	TargetLevel  *float64 `json:"targetLevel,omitempty"`
	Priority     string   `json:"priority"`
}

type LearningResource struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Type        string   `json:"type"`
	Duration    string   `json:"duration,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
}

type CareerPlanResult struct {
	Steps        []CareerStep       `json:"steps"`
	Timeline     CareerTimeline     `json:"timeline"`
	SkillGaps    []SkillGap         `json:"skillGaps"`
	LearningPlan []LearningResource `json:"learningPlan"`
}

type InterviewFeedback struct {
	Strengths       []string `json:"strengths"`
	Improvements    []string `json:"improvements"`
	Recommendations []string `json:"recommendations"`
}

type QuestionScore struct {
	Question string  `json:"question"`
	Score    float64 `json:"score"`
	Feedback string  `json:"feedback"`
}

type InterviewPerformanceResult struct {
	OverallScore   float64           `json:"overallScore"`
	Feedback       InterviewFeedback `json:"feedback"`
	QuestionScores []QuestionScore   `json:"questionScores"`
}

// SkillSnapshot is the slice of a stored skill the gap analysis needs.
type SkillSnapshot struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Level    int    `json:"level"`
}

type SkillGapAnalysis struct {
	StrengthAreas   []string `json:"strengthAreas"`
	GapAreas        []string `json:"gapAreas"`
	Recommendations []string `json:"recommendations"`
}

type MissingSkill struct {
	Skill       string `json:"skill"`
	Importance  string `json:"importance"`
	Difficulty  string `json:"difficulty"`
	TimeToLearn string `json:"timeToLearn,omitempty"`
}

type LearningPhase struct {
	Phase     string   `json:"phase"`
	Skills    []string `json:"skills"`
	Duration  string   `json:"duration"`
	Resources []string `json:"resources,omitempty"`
}

type SkillGapResult struct {
	Analysis     SkillGapAnalysis `json:"analysis"`
	SkillGaps    []MissingSkill   `json:"skillGaps"`
	LearningPath []LearningPhase  `json:"learningPath"`
}
