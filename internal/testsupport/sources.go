package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"sourcehub/internal/source"
)

// SampleSources returns a small fresh collection covering every category.
func SampleSources() []source.Source {
	return []source.Source{
		{
			ID:          "src-age-verification",
			Title:       "Age Verification Risks",
			Author:      "Privacy Lab",
			Date:        "2024-03-01",
			URL:         "https://example.org/age-verification",
			Category:    source.CategoryAcademic,
			Tags:        []string{"privacy", "biometrics"},
			Sections:    []source.Section{source.Section2},
			KeyInsight:  "Centralized ID stores concentrate breach risk.",
			Citation:    "Privacy Lab (2024). Age Verification Risks.",
			Description: "Survey of verification approaches and their data exposure.",
		},
		{
			ID:          "src-discord-statement",
			Title:       "Discord Statement",
			Author:      "Discord",
			Date:        "2025-10-08",
			URL:         "https://example.org/discord",
			Category:    source.CategoryOfficial,
			Tags:        []string{"compliance", "breach"},
			Sections:    []source.Section{source.Section1, source.Section3},
			KeyInsight:  "Vendor compromise exposed ID images.",
			Citation:    "Discord (2025). Update on a security incident.",
			Description: "Platform statement on a third-party support vendor incident.",
		},
		{
			ID:          "src-osa-guidance",
			Title:       "Online Safety Act Guidance",
			Date:        "2024-12-16",
			URL:         "https://example.org/osa",
			Category:    source.CategoryPolicy,
			Tags:        []string{"uk", "compliance"},
			Sections:    []source.Section{source.Section1, source.Section5},
			KeyInsight:  "Highly effective age assurance is mandatory.",
			Citation:    "Ofcom (2024). Guidance on highly effective age assurance.",
			Description: "Regulator guidance for service providers.",
		},
		{
			ID:          "src-breach-coverage",
			Title:       "ID Images Leaked",
			Author:      "Tech Desk",
			URL:         "https://example.org/news",
			Category:    source.CategoryNews,
			Tags:        []string{"breach"},
			Sections:    []source.Section{source.Section3},
			KeyInsight:  "Roughly 70,000 ID photos were exposed.",
			Citation:    "Tech Desk. ID Images Leaked.",
			Description: "Coverage of the breach and its aftermath.",
		},
		{
			ID:          "src-estimation-accuracy",
			Title:       "Facial Age Estimation Accuracy",
			Author:      "Standards Group",
			Date:        "2023-06-30",
			URL:         "https://example.org/fae",
			Category:    source.CategoryTechnical,
			Tags:        []string{"biometrics"},
			Sections:    []source.Section{source.Section4},
			KeyInsight:  "Error rates vary by demographic.",
			Citation:    "Standards Group (2023). Facial Age Estimation.",
			Description: "Benchmark of estimation models.",
		},
	}
}

// WriteText writes contents to path, creating parent directories.
func WriteText(t testing.TB, path, contents string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
