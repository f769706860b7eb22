package profile

import (
	"fmt"
	"strings"
)

// MaxBioLength is the longest bio accepted on a profile.
const MaxBioLength = 500

// MaxExperience is the upper bound on years of experience.
const MaxExperience = 50

// Profile is the subject profile a question set is generated for.
// It is owned by the caller and passed into the quiz explicitly.
type Profile struct {
	Industry    string   `mapstructure:"industry"`
	SubIndustry string   `mapstructure:"sub_industry"`
	Experience  int      `mapstructure:"experience"`
	Skills      []string `mapstructure:"skills"`
	Bio         string   `mapstructure:"bio"`
}

// IndustryKey joins industry and sub-industry the way profiles are keyed,
// e.g. "tech-software-development".
func (p Profile) IndustryKey() string {
	industry := slug(p.Industry)
	sub := slug(p.SubIndustry)
	if sub == "" {
		return industry
	}
	return industry + "-" + sub
}

// DisplayIndustry returns a human-readable industry label.
func (p Profile) DisplayIndustry() string {
	if p.SubIndustry == "" {
		return strings.TrimSpace(p.Industry)
	}
	return fmt.Sprintf("%s (%s)", strings.TrimSpace(p.Industry), strings.TrimSpace(p.SubIndustry))
}

// Validate reports the first problem with the profile, if any.
func (p Profile) Validate() error {
	if strings.TrimSpace(p.Industry) == "" {
		return fmt.Errorf("industry is required")
	}
	if p.Experience < 0 || p.Experience > MaxExperience {
		return fmt.Errorf("experience must be between 0 and %d years", MaxExperience)
	}
	if len(p.Bio) > MaxBioLength {
		return fmt.Errorf("bio exceeds %d characters", MaxBioLength)
	}
	return nil
}

// ParseSkills splits a comma-separated skills string, trimming blanks and
// dropping duplicates while keeping the first occurrence's order.
func ParseSkills(s string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, part := range strings.Split(s, ",") {
		skill := strings.TrimSpace(part)
		if skill == "" {
			continue
		}
		key := strings.ToLower(skill)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, skill)
	}
	return out
}

func slug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Join(strings.Fields(s), "-")
}
