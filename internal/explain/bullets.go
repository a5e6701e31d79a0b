package explain

import "strings"

const bulletCount = 3

// roleFamilies map role-pattern keywords to tailored bullet sets. Checked in
// declaration order; the first family whose keywords appear wins.
var roleFamilies = []struct {
	keywords []string
	bullets  []string
}{
	{
		keywords: []string{"backend", "api", "microservices", "database", "sql"},
		bullets: []string{
			"Designed and implemented RESTful APIs serving 10K+ requests/day with 99.9% uptime",
			"Optimized database queries reducing average response time by 40% through indexing and query restructuring",
			"Built microservices architecture enabling independent deployment and horizontal scaling",
		},
	},
	{
		keywords: []string{"frontend", "react", "angular", "vue", "ui", "ux"},
		bullets: []string{
			"Developed responsive web interfaces using React/Vue achieving 95+ Lighthouse performance scores",
			"Implemented component-based architecture reducing code duplication by 30% across the application",
			"Collaborated with UX team to improve user engagement metrics by 25% through iterative design improvements",
		},
	},
	{
		keywords: []string{"full stack", "fullstack", "full-stack"},
		bullets: []string{
			"Built end-to-end features from database design to frontend implementation, reducing development cycles by 20%",
			"Integrated third-party APIs and payment gateways handling 1000+ daily transactions securely",
			"Maintained 85% code coverage through comprehensive unit and integration testing",
		},
	},
	{
		keywords: []string{"data", "analytics", "machine learning", "ml", "ai"},
		bullets: []string{
			"Developed data pipelines processing 1M+ records daily using Python and SQL for business analytics",
			"Built predictive models achieving 85% accuracy, enabling data-driven decision making",
			"Created interactive dashboards visualizing key metrics for stakeholder reporting",
		},
	},
	{
		keywords: []string{"devops", "cloud", "aws", "azure", "kubernetes", "docker"},
		bullets: []string{
			"Implemented CI/CD pipelines reducing deployment time from hours to minutes with automated testing",
			"Managed cloud infrastructure on AWS/Azure supporting 99.9% application availability",
			"Containerized applications using Docker and Kubernetes for consistent development and production environments",
		},
	},
	{
		keywords: []string{"qa", "quality", "testing", "test automation"},
		bullets: []string{
			"Developed automated test suites covering 500+ test cases, reducing regression testing time by 60%",
			"Implemented API testing framework using Postman/RestAssured ensuring 100% endpoint coverage",
			"Collaborated with development team to identify and resolve 200+ bugs before production release",
		},
	},
}

var genericBullets = []string{
	"Developed and maintained scalable software components aligned with product requirements and best practices",
	"Applied problem-solving skills to design efficient algorithms, improving system performance by 25%",
	"Collaborated with cross-functional teams to deliver features on time with comprehensive documentation",
}

// ResumeBullets returns exactly three ATS-oriented resume bullets tailored to
// the role family detected in the job description.
func ResumeBullets(text string) []string {
	lower := strings.ToLower(text)
	for _, fam := range roleFamilies {
		for _, kw := range fam.keywords {
			if strings.Contains(lower, kw) {
				out := make([]string, bulletCount)
				copy(out, fam.bullets)
				return out
			}
		}
	}
	out := make([]string, bulletCount)
	copy(out, genericBullets)
	return out
}

// EnsureBullets normalizes an LLM-provided bullet list to exactly three
// entries, falling back to the templates when fewer than three usable bullets
// arrive.
func EnsureBullets(bullets []string, text string) []string {
	trimmed := bullets[:0:0]
	for _, b := range bullets {
		if s := strings.TrimSpace(b); s != "" {
			trimmed = append(trimmed, s)
		}
	}
	if len(trimmed) < bulletCount {
		trimmed = ResumeBullets(text)
	}
	return trimmed[:bulletCount]
}
