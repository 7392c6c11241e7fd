package match

import "sort"

// TemplateSkill is one entry in a role's required-skill template. Template
// order encodes priority unless an explicit Priority is set.
type TemplateSkill struct {
	Name     string        `json:"name"`
	Priority SkillPriority `json:"priority,omitempty"`
}

// RoleTemplate is the required-skill template for a target role.
type RoleTemplate struct {
	Role   string          `json:"role"`
	Skills []TemplateSkill `json:"skills"`
}

// RoleRegistry resolves role names to skill templates. Unknown roles must
// resolve to a default template rather than failing; the registry is
// configuration data the analyzer reads but does not own.
type RoleRegistry interface {
	Template(role string) (RoleTemplate, bool)
	Default() RoleTemplate
}

// SkillGap is a missing template skill with its priority.
type SkillGap struct {
	Name     string        `json:"name"`
	Priority SkillPriority `json:"priority"`
}

// MonthRange is an inclusive estimated duration in months.
type MonthRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// SkillGapReport compares a profile's skills against a target role template.
type SkillGapReport struct {
	TargetRole       string     `json:"targetRole"`
	OverallReadiness int        `json:"overallReadiness"`
	SkillGaps        []SkillGap `json:"skillGaps"`
	Strengths        []string   `json:"existingStrengths"`
	PrioritySkills   []SkillGap `json:"prioritySkills"`
	EstimatedMonths  MonthRange `json:"estimatedTimeMonths"`
}

// AnalyzeGaps partitions the target role's template into gaps and strengths
// for the given skills. An unset role and a registry miss both fall back to
// the registry default; neither is an error. Empty skills simply turn every
// template entry into a gap.
func (s *Scorer) AnalyzeGaps(skills []Skill, targetRole string, registry RoleRegistry) SkillGapReport {
	template := resolveTemplate(registry, targetRole)

	have := make(map[string]bool, len(skills))
	for _, sk := range skills {
		if key := normalizeSkillName(sk.Name); key != "" {
			have[key] = true
		}
	}

	gaps := make([]SkillGap, 0, len(template.Skills))
	strengths := make([]string, 0, len(template.Skills))
	for _, ts := range template.Skills {
		if have[normalizeSkillName(ts.Name)] {
			strengths = append(strengths, ts.Name)
			continue
		}
		gaps = append(gaps, SkillGap{Name: ts.Name, Priority: ts.Priority})
	}

	orderGaps(gaps)

	readiness := 100 - s.Config.ReadinessDecayPerGap*len(gaps)
	if readiness < 0 {
		readiness = 0
	}

	priorityCount := s.Config.PrioritySkillCount
	if priorityCount > len(gaps) {
		priorityCount = len(gaps)
	}

	return SkillGapReport{
		TargetRole:       template.Role,
		OverallReadiness: readiness,
		SkillGaps:        gaps,
		Strengths:        strengths,
		PrioritySkills:   gaps[:priorityCount],
		EstimatedMonths: MonthRange{
			Min: s.Config.MonthsPerGapMin * len(gaps),
			Max: s.Config.MonthsPerGapMax * len(gaps),
		},
	}
}

func resolveTemplate(registry RoleRegistry, targetRole string) RoleTemplate {
	if targetRole != "" {
		if template, ok := registry.Template(targetRole); ok {
			return template
		}
	}
	return registry.Default()
}

// orderGaps sorts by explicit priority descending when any entry carries
// one, keeping template order as the tie-break. Templates without explicit
// priorities keep their order untouched, since that order already encodes
// priority.
func orderGaps(gaps []SkillGap) {
	explicit := false
	for _, g := range gaps {
		if g.Priority != "" {
			explicit = true
			break
		}
	}
	if !explicit {
		return
	}
	sort.SliceStable(gaps, func(i, j int) bool {
		return gaps[i].Priority.Rank() > gaps[j].Priority.Rank()
	})
}
