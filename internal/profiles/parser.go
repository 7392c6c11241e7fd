package profiles

import (
	"regexp"
	"strings"
	"time"

	"career-backend/internal/match"
)

// ParseResumeText builds a draft profile from extracted resume text using
// section-based line scanning. The output is a starting point for the user
// to review, not a finished profile. Parsing is deterministic: the same
// text always yields the same draft.
func ParseResumeText(text string, now time.Time) Profile {
	sections := splitSections(text)

	draft := Profile{}
	draft.Skills = parseSkills(sections["skills"])
	draft.Experience = parseExperience(sections["experience"], now)
	draft.Education = parseEducation(sections["education"])
	return draft
}

var sectionHeaders = map[string]string{
	"skills":               "skills",
	"technical skills":     "skills",
	"core skills":          "skills",
	"experience":           "experience",
	"work experience":      "experience",
	"employment history":   "experience",
	"professional history": "experience",
	"education":            "education",
	"academic background":  "education",
}

// splitSections groups lines under the most recent recognized header.
func splitSections(text string) map[string][]string {
	sections := make(map[string][]string)
	current := ""
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		header := strings.ToLower(strings.TrimRight(trimmed, ":"))
		if key, ok := sectionHeaders[header]; ok {
			current = key
			continue
		}
		if current != "" {
			sections[current] = append(sections[current], trimmed)
		}
	}
	return sections
}

var skillSeparators = regexp.MustCompile(`[,;•|]`)

func parseSkills(lines []string) []match.Skill {
	seen := make(map[string]bool)
	var skills []match.Skill
	for _, line := range lines {
		for _, part := range skillSeparators.Split(line, -1) {
			name := strings.Trim(strings.TrimSpace(part), "-– ")
			if name == "" || len(name) > 40 {
				continue
			}
			key := strings.ToLower(name)
			if seen[key] {
				continue
			}
			seen[key] = true
			skills = append(skills, match.Skill{
				Name:         name,
				Category:     match.CategoryTechnical,
				Proficiency:  match.ProficiencyIntermediate,
				Verification: match.VerificationUnverified,
			})
		}
	}
	return skills
}

var yearRange = regexp.MustCompile(`(\d{4})\s*[-–—]\s*(\d{4}|[Pp]resent|[Cc]urrent)`)

// parseExperience turns lines carrying a year range into entries. The text
// before the range is split on the first separator into position and company.
func parseExperience(lines []string, now time.Time) []match.ExperienceEntry {
	var entries []match.ExperienceEntry
	for _, line := range lines {
		m := yearRange.FindStringSubmatchIndex(line)
		if m == nil {
			continue
		}
		startYear := line[m[2]:m[3]]
		endYear := strings.ToLower(line[m[4]:m[5]])

		entry := match.ExperienceEntry{
			StartDate: yearStart(startYear),
		}
		if endYear != "present" && endYear != "current" {
			end := yearStart(endYear)
			entry.EndDate = &end
		}

		head := strings.Trim(strings.TrimSpace(line[:m[0]]), "-–—,| ")
		position, company := splitTitleLine(head)
		entry.Position = position
		entry.Company = company
		if entry.StartDate.After(now) {
			continue
		}
		if entry.EndDate != nil && entry.EndDate.Before(entry.StartDate) {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

func splitTitleLine(head string) (position, company string) {
	for _, sep := range []string{" at ", " @ ", " - ", " – ", ", ", " | "} {
		if idx := strings.Index(head, sep); idx > 0 {
			return strings.TrimSpace(head[:idx]), strings.TrimSpace(head[idx+len(sep):])
		}
	}
	return head, ""
}

func parseEducation(lines []string) []match.EducationEntry {
	var entries []match.EducationEntry
	for _, line := range lines {
		if match.DegreeLevel(line) == match.EducationHighSchool && !containsDegreeWord(line) {
			continue
		}
		degree, institution := splitTitleLine(yearRange.ReplaceAllString(line, ""))
		entries = append(entries, match.EducationEntry{
			Institution: strings.Trim(institution, "-–—,| "),
			Degree:      strings.Trim(degree, "-–—,| "),
		})
	}
	return entries
}

func containsDegreeWord(line string) bool {
	lower := strings.ToLower(line)
	for _, word := range []string{"diploma", "ged", "high school", "degree", "certificate"} {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

func yearStart(year string) time.Time {
	t, err := time.Parse("2006", year)
	if err != nil {
		return time.Time{}
	}
	return t
}
