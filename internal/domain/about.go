package domain

// AboutContent is the static About page.
type AboutContent struct {
	Title     string         `json:"title"`
	Summary   string         `json:"summary"`
	Sections  []AboutSection `json:"sections"`
	TechStack []TechItem     `json:"techStack"`
	Footnote  string         `json:"footnote"`
}

// AboutSection is a titled block of intro text and bullet points.
type AboutSection struct {
	Title  string   `json:"title"`
	Intro  string   `json:"intro"`
	Points []string `json:"points"`
}

// TechItem is one entry of the technology stack grid.
type TechItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// About returns the About page content.
func About() AboutContent {
	return AboutContent{
		Title: "About Our Project",
		Summary: "Rove Rewards Redemption Optimizer helps travelers maximize the value of their airline " +
			"miles and points through analysis and synthetic routing.",
		Sections: []AboutSection{
			{
				Title: "GDS vs NDC Systems",
				Intro: "We compared traditional Global Distribution Systems (GDS) with New Distribution Capability (NDC) systems.",
				Points: []string{
					"GDS: legacy systems used by travel agents and booking sites. Limited fare options but established infrastructure.",
					"NDC: airline-direct systems offering dynamic pricing and ancillary services.",
					"Our approach: analyze both systems to find the best redemption values across channels.",
				},
			},
			{
				Title: "Synthetic Routing Logic",
				Intro: "Synthetic routing looks for hidden value in airline redemptions.",
				Points: []string{
					"Layover optimization: strategic connection points that reduce overall mile requirements.",
					"Multi-carrier analysis: compare redemptions across airline partnerships and alliances.",
					"Value calculation: cash prices against mile requirements to maximize savings.",
				},
			},
			{
				Title: "Understanding Your Results",
				Intro: "Results mix two kinds of options.",
				Points: []string{
					"Direct flights: non-stop routes that get you there fastest. Usually require more miles.",
					"Synthetic routes: layover combinations that can offer better value per mile. Take longer.",
				},
			},
		},
		TechStack: []TechItem{
			{Name: "Go Service", Description: "Search intake, option synthesis and ranking"},
			{Name: "REST APIs", Description: "JSON endpoints for every page"},
			{Name: "Redemption Engine", Description: "Value per mile and savings figures"},
			{Name: "Web Frontend", Description: "Search, results, about and feedback pages"},
		},
		Footnote: "Developed as part of the Rove Internship Program.",
	}
}
