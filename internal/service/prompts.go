package service

import (
	"fmt"
	"strings"
)

const systemInstruction = "You are an experienced career coach. Answer only with JSON that matches the requested schema."

func orUnspecified(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Not specified"
	}
	return s
}

func joinOrUnspecified(items []string) string {
	if len(items) == 0 {
		return "Not specified"
	}
	return strings.Join(items, ", ")
}

func careerFitPrompt(in CareerAssessmentInput) string {
	return fmt.Sprintf(`You are a career counselor analyzing a professional's career assessment.

Assessment Data:
- Interests: %s
- Skills: %s
- Values: %s
- Work Style: %s
- Experience: %s
- Education: %s
- Goals: %s

Provide a comprehensive career analysis with specific, actionable recommendations.`,
		joinOrUnspecified(in.Interests),
		joinOrUnspecified(in.Skills),
		joinOrUnspecified(in.Values),
		orUnspecified(in.WorkStyle),
		orUnspecified(in.Experience),
		orUnspecified(in.Education),
		orUnspecified(in.Goals),
	)
}

func resumePrompt(content string) string {
	return fmt.Sprintf(`You are an expert resume reviewer. Analyze this resume and give detailed feedback.

Resume Content:
%s

Include strengths, weaknesses, concrete improvement suggestions and an overall score from 0 to 100.`, content)
}

func interviewQuestionsPrompt(jobTitle, company string) string {
	target := jobTitle
	if strings.TrimSpace(company) != "" {
		target = fmt.Sprintf("%s at %s", jobTitle, company)
	}
	return fmt.Sprintf(`Generate interview questions for a %s position.

Include:
- 3-4 behavioral questions
- 3-4 technical or role-specific questions
- 2-3 situational questions
- 1-2 culture fit questions

Give each question a category and a difficulty level.`, target)
}

func careerPlanPrompt(currentRole, targetRole, industry string) string {
	from := currentRole
	if strings.TrimSpace(from) == "" {
		from = "current position"
	}
	scope := ""
	if strings.TrimSpace(industry) != "" {
		scope = fmt.Sprintf(" in the %s industry", industry)
	}
	return fmt.Sprintf(`Create a career transition plan from %s to %s%s.

Provide:
- Step-by-step progression with a duration for each step
- An overall timeline in months
- Skill gaps to address, with priority
- Learning resources (courses, certifications, books, projects)

Keep it actionable and realistic.`, from, targetRole, scope)
}

func interviewPerformancePrompt(questions []InterviewQuestion, responses []string) string {
	var b strings.Builder
	for i, q := range questions {
		answer := "No response provided"
		if i < len(responses) && strings.TrimSpace(responses[i]) != "" {
			answer = responses[i]
		}
		fmt.Fprintf(&b, "Q%d: %s\nResponse: %s\n\n", i+1, q.Question, answer)
	}
	return fmt.Sprintf(`Analyze this mock interview and give detailed feedback.

Questions and Responses:
%s
Score each answer from 0 to 100, then give an overall score, strengths, improvements and recommendations.`, b.String())
}

func skillGapPrompt(skills []SkillSnapshot, targetRole, industry string) string {
	var b strings.Builder
	for _, s := range skills {
		fmt.Fprintf(&b, "- %s: Level %d/10 (%s)\n", s.Name, s.Level, orUnspecified(s.Category))
	}
	if b.Len() == 0 {
		b.WriteString("- None recorded\n")
	}
	scope := ""
	if strings.TrimSpace(industry) != "" {
		scope = fmt.Sprintf(" in %s", industry)
	}
	return fmt.Sprintf(`Analyze skill gaps for moving into a %s role%s.

Current Skills:
%s
Identify missing skills, areas to improve and a phased learning path.`, targetRole, scope, b.String())
}
