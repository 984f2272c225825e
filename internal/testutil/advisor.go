package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/fadilmartias/career-coach/internal/service"
)

// FakeAdvisor returns canned results. Setting Err makes every call fail with
// an error wrapping service.ErrAdvisory.
type FakeAdvisor struct {
	mu    sync.Mutex
	Err   error
	Calls map[string]int

	// ResumeScore is returned by AnalyzeResume; it defaults to the content
	// length capped at 100 so different contents score differently.
	ResumeScore func(content string) float64
}

func NewFakeAdvisor() *FakeAdvisor {
	return &FakeAdvisor{Calls: map[string]int{}}
}

func (f *FakeAdvisor) SetErr(err error) {
	f.mu.Lock()
	f.Err = err
	f.mu.Unlock()
}

func (f *FakeAdvisor) CallCount(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Calls[op]
}

func (f *FakeAdvisor) record(op string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Calls == nil {
		f.Calls = map[string]int{}
	}
	f.Calls[op]++
	if f.Err != nil {
		return fmt.Errorf("%w: %v", service.ErrAdvisory, f.Err)
	}
	return nil
}

func (f *FakeAdvisor) AnalyzeCareerFit(_ context.Context, in service.CareerAssessmentInput) (*service.CareerFitResult, error) {
	if err := f.record("AnalyzeCareerFit"); err != nil {
		return nil, err
	}
	return &service.CareerFitResult{
		OverallScore:        78.6,
		RecommendedRoles:    []string{"Data Engineer"},
		Strengths:           append([]string{}, in.Skills...),
		AreasForImprovement: []string{"Public speaking"},
		CareerSuggestions:   []string{"Contribute to open source"},
	}, nil
}

func (f *FakeAdvisor) AnalyzeResume(_ context.Context, content string) (*service.ResumeAnalysisResult, error) {
	if err := f.record("AnalyzeResume"); err != nil {
		return nil, err
	}
	score := float64(len(content))
	if f.ResumeScore != nil {
		score = f.ResumeScore(content)
	}
	if score > 100 {
		score = 100
	}
	return &service.ResumeAnalysisResult{
		Score: score,
		Analysis: service.ResumeAnalysis{
			Strengths:   []string{"Clear structure"},
			Weaknesses:  []string{"Few metrics"},
			Suggestions: []string{"Quantify impact"},
		},
		Suggestions: []string{"Add a summary", content},
	}, nil
}

func (f *FakeAdvisor) GenerateInterviewQuestions(_ context.Context, jobTitle, company string) ([]service.InterviewQuestion, error) {
	if err := f.record("GenerateInterviewQuestions"); err != nil {
		return nil, err
	}
	return []service.InterviewQuestion{
		{Question: "Tell me about a hard bug you fixed as a " + jobTitle, Category: service.CategoryBehavioral, Difficulty: "Medium"},
		{Question: "Why " + company + "?", Category: service.CategoryCultureFit, Difficulty: "Easy"},
	}, nil
}

func (f *FakeAdvisor) GenerateCareerRecommendations(_ context.Context, currentRole, targetRole, industry string) (*service.CareerPlanResult, error) {
	if err := f.record("GenerateCareerRecommendations"); err != nil {
		return nil, err
	}
	return &service.CareerPlanResult{
		Steps:        []service.CareerStep{{Title: "Learn the basics of " + targetRole, Description: "Foundations", Duration: "3 months"}},
		Timeline:     service.CareerTimeline{TotalMonths: 12, Phases: []string{"Learn", "Practice"}},
		SkillGaps:    []service.SkillGap{{Name: "Statistics", Priority: "High"}},
		LearningPlan: []service.LearningResource{{Title: "Intro course", Type: "Course"}},
	}, nil
}

func (f *FakeAdvisor) AnalyzeInterviewPerformance(_ context.Context, questions []service.InterviewQuestion, responses []string) (*service.InterviewPerformanceResult, error) {
	if err := f.record("AnalyzeInterviewPerformance"); err != nil {
		return nil, err
	}
	scores := make([]service.QuestionScore, len(questions))
	for i, q := range questions {
		scores[i] = service.QuestionScore{Question: q.Question, Score: 70, Feedback: "Good"}
	}
	return &service.InterviewPerformanceResult{
		OverallScore: 71.4,
		Feedback: service.InterviewFeedback{
			Strengths:       []string{"Concise"},
			Improvements:    []string{"More examples"},
			Recommendations: []string{"Use STAR"},
		},
		QuestionScores: scores,
	}, nil
}

func (f *FakeAdvisor) AnalyzeSkillGaps(_ context.Context, skills []service.SkillSnapshot, targetRole, industry string) (*service.SkillGapResult, error) {
	if err := f.record("AnalyzeSkillGaps"); err != nil {
		return nil, err
	}
	strengths := make([]string, 0, len(skills))
	for _, s := range skills {
		strengths = append(strengths, s.Name)
	}
	return &service.SkillGapResult{
		Analysis:     service.SkillGapAnalysis{StrengthAreas: strengths, GapAreas: []string{"Machine learning"}, Recommendations: []string{"Build a project"}},
		SkillGaps:    []service.MissingSkill{{Skill: "Python", Importance: "Critical", Difficulty: "Intermediate"}},
		LearningPath: []service.LearningPhase{{Phase: "Foundations", Skills: []string{"Python"}, Duration: "2 months"}},
	}, nil
}

var _ service.Advisor = (*FakeAdvisor)(nil)
