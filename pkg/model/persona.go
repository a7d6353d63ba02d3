package model

import "fmt"

// Persona parametrizes a single synthesis call. It is never persisted; the
// admin fills it per proxy publication.
type Persona struct {
	Proficiency     string `json:"proficiency" binding:"required"`
	ScamExperience  string `json:"scam_experience"`
	SideIncomeYears string `json:"side_income_years"`
	Attitude        string `json:"attitude"`
	Occupation      string `json:"occupation"`
	MaritalStatus   string `json:"marital_status"`
	HasChildren     bool   `json:"has_children"`
}

// PromptLines renders the trait sheet embedded into the synthesis prompt.
func (p Persona) PromptLines() []string {
	children := "없음"
	if p.HasChildren {
		children = "있음"
	}
	return []string{
		fmt.Sprintf("- 숙련도: %s", p.Proficiency),
		fmt.Sprintf("- 사기 피해 경험: %s", p.ScamExperience),
		fmt.Sprintf("- 부업 경력: %s", p.SideIncomeYears),
		fmt.Sprintf("- 성향: %s", p.Attitude),
		fmt.Sprintf("- 직업: %s", p.Occupation),
		fmt.Sprintf("- 결혼 여부: %s", p.MaritalStatus),
		fmt.Sprintf("- 자녀: %s", children),
	}
}

type ProxyPublishReq struct {
	TargetEmail string  `json:"target_email" binding:"required,email"`
	Category    string  `json:"category" binding:"required"`
	Persona     Persona `json:"persona" binding:"required"`
}
