package course

import (
	"sort"

	"github.com/amishk599/skillmap/internal/model"
	"github.com/amishk599/skillmap/internal/skill"
)

// Catalog maps a lowercase skill to its ordered course links.
type Catalog map[string][]model.CourseLink

// DefaultCatalog returns the built-in one-course-per-skill catalog.
func DefaultCatalog() Catalog {
	return Catalog{
		"python":             {{Title: "Python for Everybody", URL: "https://www.coursera.org/specializations/python"}},
		"java":               {{Title: "Java Programming", URL: "https://www.coursera.org/specializations/java-programming"}},
		"sql":                {{Title: "SQL for Data Science", URL: "https://www.coursera.org/learn/sql-for-data-science"}},
		"excel":              {{Title: "Excel for Business", URL: "https://www.coursera.org/specializations/excel"}},
		"communication":      {{Title: "Communication Skills", URL: "https://www.coursera.org/learn/wharton-communication-skills"}},
		"teamwork":           {{Title: "Teamwork Skills", URL: "https://www.coursera.org/learn/teamwork-skills"}},
		"project management": {{Title: "Project Management", URL: "https://www.coursera.org/learn/project-management-principles"}},
		"data analysis":      {{Title: "Data Analysis with Python", URL: "https://www.coursera.org/learn/data-analysis-with-python"}},
		"machine learning":   {{Title: "Machine Learning", URL: "https://www.coursera.org/learn/machine-learning"}},
		"aws":                {{Title: "AWS Fundamentals", URL: "https://www.coursera.org/specializations/aws-fundamentals"}},
		"javascript":         {{Title: "Intro to JavaScript", URL: "https://www.codecademy.com/learn/introduction-to-javascript"}},
		"c++":                {{Title: "C++ Basics", URL: "https://www.udemy.com/course/beginning-c-plus-plus-programming/"}},
		"linux":              {{Title: "Intro to Linux", URL: "https://www.edx.org/course/introduction-to-linux"}},
		"git":                {{Title: "Version Control with Git", URL: "https://www.coursera.org/learn/version-control-with-git"}},
		"docker":             {{Title: "Docker for Beginners", URL: "https://www.coursera.org/learn/docker"}},
	}
}

// Recommender looks up courses for ranked skills in a fixed catalog.
type Recommender struct {
	catalog Catalog
}

// NewRecommender returns a recommender over catalog. Keys are normalized the
// same way the extractor normalizes its vocabulary, so "Python " in a catalog
// file still matches the ranked skill "python". Keys that collide after
// normalization have their courses merged in key order.
func NewRecommender(catalog Catalog) *Recommender {
	keys := make([]string, 0, len(catalog))
	for k := range catalog {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	normalized := make(Catalog, len(catalog))
	for _, k := range keys {
		name := skill.Normalize(k)
		if name == "" {
			continue
		}
		normalized[name] = append(normalized[name], catalog[k]...)
	}
	return &Recommender{catalog: normalized}
}

// Catalog returns the catalog backing this recommender.
func (r *Recommender) Catalog() Catalog {
	return r.catalog
}

// Recommend returns courses for every ranked skill that has a catalog entry,
// in ranking order. Skills without an entry are skipped.
func (r *Recommender) Recommend(skills []model.SkillFrequency) model.Recommendations {
	recs := make(model.Recommendations, 0, len(skills))
	for _, sf := range skills {
		courses, ok := r.catalog[sf.Skill]
		if !ok {
			continue
		}
		recs = append(recs, model.Recommendation{Skill: sf.Skill, Courses: courses})
	}
	return recs
}
