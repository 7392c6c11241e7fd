package roles

import "career-backend/internal/match"

// builtinTemplates seed the registry. Template order encodes priority for
// entries without an explicit one.
var builtinTemplates = []match.RoleTemplate{
	{
		Role: "Software Engineer",
		Skills: []match.TemplateSkill{
			{Name: "programming fundamentals", Priority: match.PriorityHigh},
			{Name: "data structures", Priority: match.PriorityHigh},
			{Name: "git", Priority: match.PriorityHigh},
			{Name: "sql", Priority: match.PriorityMedium},
			{Name: "testing", Priority: match.PriorityMedium},
			{Name: "debugging", Priority: match.PriorityLow},
		},
	},
	{
		Role: "Frontend Developer",
		Skills: []match.TemplateSkill{
			{Name: "react", Priority: match.PriorityHigh},
			{Name: "javascript", Priority: match.PriorityHigh},
			{Name: "css", Priority: match.PriorityMedium},
			{Name: "typescript", Priority: match.PriorityMedium},
			{Name: "accessibility", Priority: match.PriorityLow},
		},
	},
	{
		Role: "Backend Developer",
		Skills: []match.TemplateSkill{
			{Name: "go", Priority: match.PriorityHigh},
			{Name: "sql", Priority: match.PriorityHigh},
			{Name: "rest apis", Priority: match.PriorityHigh},
			{Name: "docker", Priority: match.PriorityMedium},
			{Name: "message queues", Priority: match.PriorityLow},
		},
	},
	{
		Role: "Full Stack Developer",
		Skills: []match.TemplateSkill{
			{Name: "javascript", Priority: match.PriorityHigh},
			{Name: "react", Priority: match.PriorityHigh},
			{Name: "node.js", Priority: match.PriorityHigh},
			{Name: "sql", Priority: match.PriorityMedium},
			{Name: "rest apis", Priority: match.PriorityMedium},
			{Name: "docker", Priority: match.PriorityLow},
		},
	},
	{
		Role: "Data Scientist",
		Skills: []match.TemplateSkill{
			{Name: "python", Priority: match.PriorityHigh},
			{Name: "statistics", Priority: match.PriorityHigh},
			{Name: "machine learning", Priority: match.PriorityHigh},
			{Name: "sql", Priority: match.PriorityMedium},
			{Name: "data visualization", Priority: match.PriorityLow},
		},
	},
	{
		Role: "Data Engineer",
		Skills: []match.TemplateSkill{
			{Name: "python", Priority: match.PriorityHigh},
			{Name: "sql", Priority: match.PriorityHigh},
			{Name: "spark", Priority: match.PriorityMedium},
			{Name: "airflow", Priority: match.PriorityMedium},
			{Name: "data modeling", Priority: match.PriorityLow},
		},
	},
	{
		Role: "DevOps Engineer",
		Skills: []match.TemplateSkill{
			{Name: "linux", Priority: match.PriorityHigh},
			{Name: "docker", Priority: match.PriorityHigh},
			{Name: "kubernetes", Priority: match.PriorityHigh},
			{Name: "ci/cd", Priority: match.PriorityMedium},
			{Name: "terraform", Priority: match.PriorityMedium},
			{Name: "aws", Priority: match.PriorityLow},
		},
	},
	{
		Role: "Product Manager",
		Skills: []match.TemplateSkill{
			{Name: "product strategy", Priority: match.PriorityHigh},
			{Name: "user research", Priority: match.PriorityHigh},
			{Name: "roadmapping", Priority: match.PriorityMedium},
			{Name: "analytics", Priority: match.PriorityMedium},
			{Name: "stakeholder communication", Priority: match.PriorityLow},
		},
	},
	{
		Role: "UX Designer",
		Skills: []match.TemplateSkill{
			{Name: "figma", Priority: match.PriorityHigh},
			{Name: "user research", Priority: match.PriorityHigh},
			{Name: "wireframing", Priority: match.PriorityMedium},
			{Name: "prototyping", Priority: match.PriorityMedium},
			{Name: "design systems", Priority: match.PriorityLow},
		},
	},
}
