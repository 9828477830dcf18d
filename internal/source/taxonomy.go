package source

// CategoryInfo is display metadata for a category.
type CategoryInfo struct {
	Value       Category
	Label       string
	Description string
}

// SectionInfo is display metadata for a section.
type SectionInfo struct {
	Value       Section
	Label       string
	Description string
}

var categoryTable = []CategoryInfo{
	{Value: CategoryOfficial, Label: "Official", Description: "Company statements, regulator publications"},
	{Value: CategoryAcademic, Label: "Academic Papers", Description: "Peer-reviewed research and preprints"},
	{Value: CategoryNews, Label: "News & Media", Description: "Press coverage and investigative reporting"},
	{Value: CategoryPolicy, Label: "Policy & Legal", Description: "Legislation, guidance, legal analysis"},
	{Value: CategoryTechnical, Label: "Technical", Description: "Standards, security write-ups, vendor docs"},
}

var sectionTable = []SectionInfo{
	{Value: Section1, Label: "1.0 Introduction", Description: "Context and background of the regulation"},
	{Value: Section2, Label: "2.0 Risk Analysis", Description: "Security and privacy risks of compliance"},
	{Value: Section3, Label: "3.0 Case Study", Description: "Incidents and platform responses"},
	{Value: Section4, Label: "4.0 Evaluation", Description: "Effectiveness and trade-offs"},
	{Value: Section5, Label: "5.0 Recommendations", Description: "Mitigations and policy proposals"},
}

// Categories returns category metadata in display order.
func Categories() []CategoryInfo {
	out := make([]CategoryInfo, len(categoryTable))
	copy(out, categoryTable)
	return out
}

// Sections returns section metadata in display order.
func Sections() []SectionInfo {
	out := make([]SectionInfo, len(sectionTable))
	copy(out, sectionTable)
	return out
}

// CategoryLabel returns the display label, falling back to the raw value for
// categories that arrived through an unvalidated import.
func CategoryLabel(c Category) string {
	for _, info := range categoryTable {
		if info.Value == c {
			return info.Label
		}
	}
	return string(c)
}

// CategoryValues lists the accepted category names.
func CategoryValues() []string {
	out := make([]string, len(categoryTable))
	for i, info := range categoryTable {
		out[i] = string(info.Value)
	}
	return out
}

// SectionValues lists the accepted section names.
func SectionValues() []string {
	out := make([]string, len(sectionTable))
	for i, info := range sectionTable {
		out[i] = string(info.Value)
	}
	return out
}
