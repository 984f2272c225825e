package service

import (
	"strings"

	"google.golang.org/genai"
)

func stringList(max int64) *genai.Schema {
	return &genai.Schema{
		Type:     genai.TypeArray,
		Items:    &genai.Schema{Type: genai.TypeString},
		MaxItems: genai.Ptr(max),
	}
}

func boundedNumber(min, max float64) *genai.Schema {
	return &genai.Schema{
		Type:    genai.TypeNumber,
		Minimum: genai.Ptr(min),
		Maximum: genai.Ptr(max),
	}
}

func enumString(values ...string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeString, Enum: values}
}

var careerFitSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"overallScore":        boundedNumber(0, 100),
		"recommendedRoles":    stringList(5),
		"strengths":           stringList(5),
		"areasForImprovement": stringList(5),
		"careerSuggestions":   stringList(5),
	},
	Required: []string{"overallScore", "recommendedRoles", "strengths", "areasForImprovement", "careerSuggestions"},
}

var resumeAnalysisSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"score": boundedNumber(0, 100),
		"analysis": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"strengths":   stringList(5),
				"weaknesses":  stringList(5),
				"suggestions": stringList(5),
			},
			Required: []string{"strengths", "weaknesses", "suggestions"},
		},
		"suggestions": stringList(8),
	},
	Required: []string{"score", "analysis", "suggestions"},
}

var interviewQuestionsSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"question":   {Type: genai.TypeString},
			"category":   enumString(CategoryBehavioral, CategoryTechnical, CategorySituational, CategoryCultureFit, CategoryGeneral),
			"difficulty": enumString("Easy", "Medium", "Hard"),
		},
		Required: []string{"question", "category", "difficulty"},
	},
	MaxItems: genai.Ptr[int64](12),
}

var careerPlanSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"steps": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"title":       {Type: genai.TypeString},
					"description": {Type: genai.TypeString},
					"duration":    {Type: genai.TypeString},
					"tasks":       stringList(5),
				},
				Required: []string{"title", "description", "duration"},
			},
			MaxItems: genai.Ptr[int64](6),
		},
		"timeline": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"totalMonths": {Type: genai.TypeNumber},
				"phases":      stringList(4),
			},
			Required: []string{"totalMonths"},
		},
		"skillGaps": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"name":         {Type: genai.TypeString},
					"currentLevel": boundedNumber(1, 10),
					"targetLevel":  boundedNumber(1, 10),
					"priority":     enumString("High", "Medium", "Low"),
				},
				Required: []string{"name", "priority"},
			},
			MaxItems: genai.Ptr[int64](8),
		},
		"learningPlan": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"title":       {Type: genai.TypeString},
					"description": {Type: genai.TypeString},
					"type":        enumString("Course", "Certification", "Book", "Workshop", "Project", "Mentorship"),
					"duration":    {Type: genai.TypeString},
					"rating":      boundedNumber(1, 5),
				},
				Required: []string{"title", "type"},
			},
			MaxItems: genai.Ptr[int64](10),
		},
	},
	Required: []string{"steps", "timeline", "skillGaps", "learningPlan"},
}

var interviewPerformanceSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"overallScore": boundedNumber(0, 100),
		"feedback": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"strengths":       stringList(5),
				"improvements":    stringList(5),
				"recommendations": stringList(5),
			},
			Required: []string{"strengths", "improvements", "recommendations"},
		},
		"questionScores": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"question": {Type: genai.TypeString},
					"score":    boundedNumber(0, 100),
					"feedback": {Type: genai.TypeString},
				},
				Required: []string{"question", "score", "feedback"},
			},
		},
	},
	Required: []string{"overallScore", "feedback", "questionScores"},
}

var skillGapSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"analysis": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"strengthAreas":   stringList(5),
				"gapAreas":        stringList(5),
				"recommendations": stringList(5),
			},
			Required: []string{"strengthAreas", "gapAreas", "recommendations"},
		},
		"skillGaps": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"skill":       {Type: genai.TypeString},
					"importance":  enumString("Critical", "Important", "Nice to Have"),
					"difficulty":  enumString("Beginner", "Intermediate", "Advanced"),
					"timeToLearn": {Type: genai.TypeString},
				},
				Required: []string{"skill", "importance", "difficulty"},
			},
			MaxItems: genai.Ptr[int64](10),
		},
		"learningPath": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"phase":     {Type: genai.TypeString},
					"skills":    stringList(3),
					"duration":  {Type: genai.TypeString},
					"resources": stringList(3),
				},
				Required: []string{"phase", "skills", "duration"},
			},
			MaxItems: genai.Ptr[int64](4),
		},
	},
	Required: []string{"analysis", "skillGaps", "learningPath"},
}

// jsonSchema renders a genai schema as a draft-07 JSON Schema document so the
// same contract can be enforced on any provider's output.
func jsonSchema(s *genai.Schema) map[string]any {
	if s == nil {
		return map[string]any{}
	}
	out := map[string]any{}
	if s.Type != "" && s.Type != genai.TypeUnspecified {
		out["type"] = strings.ToLower(string(s.Type))
	}
	if len(s.Enum) > 0 {
		out["enum"] = s.Enum
	}
	if s.Minimum != nil {
		out["minimum"] = *s.Minimum
	}
	if s.Maximum != nil {
		out["maximum"] = *s.Maximum
	}
	if s.MaxItems != nil {
		out["maxItems"] = *s.MaxItems
	}
	if s.Items != nil {
		out["items"] = jsonSchema(s.Items)
	}
	if len(s.Properties) > 0 {
		props := make(map[string]any, len(s.Properties))
		for name, prop := range s.Properties {
			props[name] = jsonSchema(prop)
		}
		out["properties"] = props
	}
	if len(s.Required) > 0 {
		out["required"] = s.Required
	}
	return out
}
