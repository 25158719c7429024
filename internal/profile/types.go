// Package profile renders the externally supplied JSON profile document
// (skills, projects, work history, education, links) into the portfolio
// page.
package profile

// Document mirrors the external profile JSON. Field names follow the
// upstream document verbatim, including the misspelled "experince" key,
// which is part of the published contract.
type Document struct {
	PersonalInfo PersonalInfo  `json:"personalInfo"`
	Summary      string        `json:"summary"`
	Skills       []Skill       `json:"skills"`
	Projects     []Project     `json:"projects"`
	Experience   []Experience  `json:"experince"`
	Educations   []Education   `json:"educations"`
	ProfileLinks []ProfileLink `json:"profileLinks"`
	Likes        []Like        `json:"likes"`
}

// PersonalInfo is the header block of the profile page.
type PersonalInfo struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Email    string `json:"email"`
	Location string `json:"location"`
	Photo    string `json:"photo"`
}

// Skill is one entry in the skills grid. SN is the explicit sort key;
// entries render in ascending SN order regardless of JSON order.
type Skill struct {
	SN   int    `json:"sn"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// Project is one portfolio project card.
type Project struct {
	SN          int    `json:"sn"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Link        string `json:"link"`
	Stack       string `json:"stack"`
}

// Experience is one work-history entry.
type Experience struct {
	SN          int    `json:"sn"`
	Company     string `json:"company"`
	Role        string `json:"role"`
	Period      string `json:"period"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

// Education is one education entry with its nested course list.
type Education struct {
	SN          int      `json:"sn"`
	Institution string   `json:"institution"`
	Degree      string   `json:"degree"`
	Period      string   `json:"period"`
	Courses     []Course `json:"courses"`
}

// Course is one course inside an education entry.
type Course struct {
	SN   int    `json:"sn"`
	Name string `json:"name"`
}

// ProfileLink is one external profile link (GitHub, LinkedIn, ...).
type ProfileLink struct {
	SN   int    `json:"sn"`
	Name string `json:"name"`
	Link string `json:"link"`
	Icon string `json:"icon"`
}

// Like is one entry in the interests list.
type Like struct {
	SN   int    `json:"sn"`
	Name string `json:"name"`
}
