package extraction

import "github.com/projectbridge/projectbridge/internal/normalize"

// skillsShape declares the expected structure of a categorized skills object.
// Field names match the JSON tags on types.ExtractedSkills.
func skillsShape() normalize.Shape {
	shape := normalize.Shape{}
	for _, category := range []string{
		"technical", "soft", "tools", "frameworks", "languages",
		"databases", "methodologies", "platforms", "other",
		"ai_frameworks", "ai_concepts",
	} {
		shape[category] = normalize.FieldSpec{Kind: normalize.StringList}
	}
	return shape
}

// enhancedSkillsShape mirrors skillsShape with confident-skill objects instead
// of bare strings. Field names match the JSON tags on
// types.EnhancedExtractedSkills, which carries no AI categories.
func enhancedSkillsShape() normalize.Shape {
	entry := normalize.Shape{
		"name":       {Kind: normalize.String},
		"confidence": {Kind: normalize.Number},
	}
	shape := normalize.Shape{}
	for _, category := range []string{
		"technical", "soft", "tools", "frameworks", "languages",
		"databases", "methodologies", "platforms", "other",
	} {
		shape[category] = normalize.FieldSpec{Kind: normalize.ObjectList, Fields: entry}
	}
	return shape
}

func experienceShape() normalize.Shape {
	return normalize.Shape{
		"title":        {Kind: normalize.String},
		"company":      {Kind: normalize.String},
		"duration":     {Kind: normalize.String},
		"technologies": {Kind: normalize.StringList},
		"highlights":   {Kind: normalize.StringList},
	}
}

func resumeShape() normalize.Shape {
	return normalize.Shape{
		"skills":         {Kind: normalize.Object, Fields: skillsShape()},
		"experience":     {Kind: normalize.ObjectList, Fields: experienceShape()},
		"qualifications": {Kind: normalize.StringList},
		"summary":        {Kind: normalize.String},
	}
}

func jobShape() normalize.Shape {
	return normalize.Shape{
		"role_title": {Kind: normalize.String},
		"company":    {Kind: normalize.String},
		"skills":     {Kind: normalize.Object, Fields: skillsShape()},
		"qualifications": {Kind: normalize.Object, Fields: normalize.Shape{
			"required":  {Kind: normalize.StringList},
			"preferred": {Kind: normalize.StringList},
		}},
		"experience": {Kind: normalize.StringList},
		"summary":    {Kind: normalize.String},
	}
}

func gapShape() normalize.Shape {
	return normalize.Shape{
		"match_percentage": {Kind: normalize.Number},
		"matched_skills": {Kind: normalize.ObjectList, Fields: normalize.Shape{
			"name":        {Kind: normalize.String},
			"proficiency": {Kind: normalize.String},
			"relevance":   {Kind: normalize.String},
		}},
		"missing_skills": {Kind: normalize.ObjectList, Fields: normalize.Shape{
			"name":     {Kind: normalize.String},
			"level":    {Kind: normalize.String},
			"priority": {Kind: normalize.String, Default: "Medium"},
			"context":  {Kind: normalize.String},
		}},
		"missing_qualifications": {Kind: normalize.StringList},
		"missing_experience":     {Kind: normalize.StringList},
		"recommendations": {Kind: normalize.ObjectList, Fields: normalize.Shape{
			"type":            {Kind: normalize.String},
			"description":     {Kind: normalize.String},
			"time_to_acquire": {Kind: normalize.String},
			"priority":        {Kind: normalize.String, Default: "Medium"},
		}},
		"summary": {Kind: normalize.String},
	}
}

func qualComparisonShape() normalize.Shape {
	return normalize.Shape{
		"met":   {Kind: normalize.StringList},
		"unmet": {Kind: normalize.StringList},
	}
}
