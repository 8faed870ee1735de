// Package seed holds the bootstrap officer roster used by cmd/seed and the
// admin seed endpoint.
package seed

import "clubhub/internal/model"

// Officers is the default 2025-2026 roster.
func Officers() []model.Officer {
	return []model.Officer{
		{
			Name:         "Mr. Mark Anthony D. Madalipay, MT",
			Position:     "SSITE Adviser",
			Term:         "2025-2026",
			Image:        "https://ibb.co/Pz98hd69",
			DisplayOrder: 1,
		},
		{
			Name:         "Avan Jae S. Garcia",
			Position:     "President",
			Course:       "BSIT",
			Section:      "3A",
			YearLevel:    "3rd Year",
			Term:         "2025-2026",
			Image:        "https://ibb.co/tpqrQ1cC",
			DisplayOrder: 2,
		},
		{
			Name:         "Kimberly O. Manaloto",
			Position:     "Executive Assistant to the President",
			Course:       "BSIT",
			Section:      "4B",
			YearLevel:    "4th Year",
			Term:         "2025-2026",
			Image:        "https://ibb.co/hx69mX9Q",
			DisplayOrder: 3,
		},
		{
			Name:         "Yaslee GJ M. Guevarra",
			Position:     "Vice President for Internal",
			Course:       "BSIT",
			Section:      "3A",
			YearLevel:    "3rd Year",
			Term:         "2025-2026",
			Image:        "https://ibb.co/Zp8SfKvs",
			DisplayOrder: 4,
		},
		{
			Name:         "Ernz Danielle D. Manalo",
			Position:     "Vice President for External",
			Course:       "BSIT",
			Section:      "4B",
			YearLevel:    "4th Year",
			Term:         "2025-2026",
			Image:        "https://ibb.co/wF9ktmgy",
			DisplayOrder: 5,
		},
		{
			Name:         "Joaquin Cyrus A. Panililio",
			Position:     "Secretary",
			Course:       "WMD",
			Section:      "2C",
			YearLevel:    "2nd Year",
			Term:         "2025-2026",
			Image:        "https://ibb.co/RZmQw1b",
			DisplayOrder: 6,
		},
		{
			Name:         "Patricia Alizah G. Henson",
			Position:     "Treasurer",
			Course:       "BSIT",
			Section:      "3A",
			YearLevel:    "3rd Year",
			Term:         "2025-2026",
			Image:        "https://ibb.co/xtL6WdMd",
			DisplayOrder: 7,
		},
		{
			Name:         "Sean Glenn B. Magcalas",
			Position:     "Auditor",
			Course:       "BSIT",
			Section:      "4B",
			YearLevel:    "4th Year",
			Term:         "2025-2026",
			Image:        "https://ibb.co/93mmhq8H",
			DisplayOrder: 8,
		},
		{
			Name:         "Graciella E. Pastoral",
			Position:     "Public Information Officer",
			Course:       "BSIT",
			Section:      "3A",
			YearLevel:    "3rd Year",
			Term:         "2025-2026",
			Image:        "https://ibb.co/QvvM0M3c",
			DisplayOrder: 9,
		},
		{
			Name:         "Theoanna Jether D. Alejos",
			Position:     "Creative Director",
			Course:       "BSIT",
			Section:      "3A",
			YearLevel:    "3rd Year",
			Term:         "2025-2026",
			Image:        "https://ibb.co/HTnF0yg4",
			DisplayOrder: 10,
		},
		{
			Name:         "Joe Peter M. Briola",
			Position:     "Sergeant",
			Course:       "BSIT",
			Section:      "4B",
			YearLevel:    "4th Year",
			Term:         "2025-2026",
			Image:        "https://ibb.co/JRT0tMrZ",
			DisplayOrder: 11,
		},
		{
			Name:         "Justin Vince M. Sunga",
			Position:     "Assistant Business Manager",
			Course:       "BSIT",
			Section:      "3A",
			YearLevel:    "3rd Year",
			Term:         "2025-2026",
			Image:        "https://ibb.co/MkNNPdnP",
			DisplayOrder: 12,
		},
		{
			Name:         "CJ Kyle C. Judilla",
			Position:     "1st Year Student Dev Coordinator",
			Course:       "WMD",
			Section:      "1A",
			YearLevel:    "1st Year",
			Term:         "2025-2026",
			Image:        "https://ibb.co/zHxHsj0s",
			DisplayOrder: 13,
		},
		{
			Name:         "Hanna Samantha N. Lising",
			Position:     "1st Year Sports Coordinator",
			Course:       "WMD",
			Section:      "1B",
			YearLevel:    "1st Year",
			Term:         "2025-2026",
			Image:        "https://ibb.co/Xr179X66",
			DisplayOrder: 14,
		},
		{
			Name:         "Siegfred M. Pineda",
			Position:     "2nd Year Student Dev Coordinator",
			Course:       "WMD",
			Section:      "2A",
			YearLevel:    "2nd Year",
			Term:         "2025-2026",
			Image:        "https://ibb.co/VYxrv37X",
			DisplayOrder: 15,
		},
		{
			Name:         "Jan Andrei O. Teresa",
			Position:     "2nd Year Sports Coordinator",
			Course:       "WMD",
			Section:      "2A",
			YearLevel:    "2nd Year",
			Term:         "2025-2026",
			Image:        "https://ibb.co/Q3LQmBCB",
			DisplayOrder: 16,
		},
		{
			Name:         "Glenn P. Peña",
			Position:     "3rd Year Sports Coordinator",
			Course:       "BSIT",
			Section:      "3A",
			YearLevel:    "3rd Year",
			Term:         "2025-2026",
			Image:        "https://ibb.co/nsZsBZhZ",
			DisplayOrder: 17,
		},
		{
			Name:         "Stephany Ann S. Dela Peña",
			Position:     "3rd Year Student Dev Coordinator",
			Course:       "BSIT",
			Section:      "3A",
			YearLevel:    "3rd Year",
			Term:         "2025-2026",
			Image:        "https://ibb.co/S7G9TB53",
			DisplayOrder: 18,
		},
		{
			Name:         "Lawrence Mhael M. Bakuyot",
			Position:     "4th Year Student Dev Coordinator",
			Course:       "BSIT",
			Section:      "4A",
			YearLevel:    "4th Year",
			Term:         "2025-2026",
			Image:        "https://ibb.co/jvWFSJGW",
			DisplayOrder: 19,
		},
		{
			Name:         "Justine Jay A. Enriquez",
			Position:     "4th Year Sports Coordinator",
			Course:       "BSIT",
			Section:      "4B",
			YearLevel:    "4th Year",
			Term:         "2025-2026",
			Image:        "https://ibb.co/35yRpCv1",
			DisplayOrder: 20,
		},
	}
}
