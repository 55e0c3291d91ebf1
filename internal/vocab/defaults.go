package vocab

// defaultVocabulary is the built-in term database. A YAML file given via
// VOCAB_PATH replaces individual lists wholesale; lists absent from the file
// keep these defaults.
func defaultVocabulary() *Vocabulary {
	return &Vocabulary{
		HardSkills: []string{
			// Programming & development
			"python", "java", "javascript", "typescript", "c++", "c#", "ruby", "go", "rust",
			"swift", "kotlin", "php", "scala", "r", "matlab", "sql", "nosql", "graphql",
			"html", "css", "sass", "less", "react", "angular", "vue", "svelte", "next.js",
			"node.js", "express", "django", "flask", "spring", "laravel", "rails",
			"docker", "kubernetes", "terraform", "ansible", "jenkins", "github actions",
			"aws", "azure", "gcp", "google cloud", "heroku", "vercel",
			"mongodb", "postgresql", "mysql", "redis", "elasticsearch", "dynamodb",
			"git", "linux", "bash", "powershell", "rest api", "microservices",
			"machine learning", "deep learning", "nlp", "computer vision", "tensorflow",
			"pytorch", "scikit-learn", "pandas", "numpy", "spark", "hadoop",
			// Design & creative
			"figma", "sketch", "adobe suite", "photoshop", "illustrator", "indesign",
			"after effects", "premiere pro", "blender", "autocad", "solidworks",
			// Business & analytics
			"excel", "power bi", "tableau", "salesforce", "hubspot", "sap", "oracle",
			"google analytics", "data analysis", "data visualization", "business intelligence",
			"financial modeling", "forecasting", "budgeting",
			// Methodologies
			"agile", "scrum", "kanban", "waterfall", "six sigma", "lean", "devops",
			"ci/cd", "tdd", "bdd", "oop", "functional programming",
			// Marketing & digital
			"seo", "sem", "ppc", "google ads", "facebook ads", "content marketing",
			"email marketing", "social media marketing", "copywriting", "a/b testing",
			// Other
			"jira", "confluence", "trello", "asana", "slack", "microsoft office",
			"project management", "product management", "ux design", "ui design",
			"user research", "wireframing", "prototyping", "usability testing",
			"blockchain", "cybersecurity", "networking", "cloud computing",
		},
		SoftSkills: []string{
			"communication", "leadership", "teamwork", "problem solving", "problem-solving",
			"critical thinking", "time management", "adaptability", "creativity",
			"collaboration", "negotiation", "conflict resolution", "decision making",
			"decision-making", "attention to detail", "strategic thinking", "mentoring",
			"coaching", "presentation", "public speaking", "writing", "interpersonal",
			"organizational", "multitasking", "self-motivated", "initiative",
			"analytical", "research", "planning", "customer service", "empathy",
			"emotional intelligence", "flexibility", "resilience", "accountability",
			"work ethic", "verbal communication", "written communication",
		},
		TitleKeywords: []string{
			"manager", "director", "engineer", "developer", "analyst", "specialist",
			"coordinator", "consultant", "administrator", "architect", "designer",
			"lead", "senior", "junior", "intern", "associate", "vice president", "vp",
			"chief", "ceo", "cto", "cfo", "coo", "president", "founder", "co-founder",
			"supervisor", "technician", "officer", "executive", "head of", "team lead",
		},
		Synonyms: map[string]string{
			"golang":         "go",
			"js":             "javascript",
			"ts":             "typescript",
			"k8s":            "kubernetes",
			"postgres":       "postgresql",
			"reactjs":        "react",
			"react.js":       "react",
			"nodejs":         "node.js",
			"node":           "node.js",
			"vuejs":          "vue",
			"vue.js":         "vue",
			"nextjs":         "next.js",
			"ml":             "machine learning",
			"amazon web services": "aws",
			"ms office":      "microsoft office",
			"es":             "elasticsearch",
			"mongo":          "mongodb",
			"tf":             "terraform",
			"restful api":    "rest api",
			"restful apis":   "rest api",
			"rest apis":      "rest api",
			"cicd":           "ci/cd",
			"continuous integration": "ci/cd",
			"g suite":        "google cloud",
			"sklearn":        "scikit-learn",
			"problem-solving skills": "problem solving",
		},
		Sections: SectionHeadings{
			All: []string{
				"work experience", "experience", "professional experience", "employment history",
				"employment", "career history",
				"education", "academic background", "academic", "qualifications",
				"skills", "technical skills", "core competencies", "competencies", "key skills",
				"certifications", "certificates", "licenses", "credentials",
				"summary", "professional summary", "objective", "career objective", "profile",
				"about me", "overview",
				"projects", "portfolio", "key projects",
				"awards", "honors", "achievements", "accomplishments",
				"references",
				"volunteer", "volunteering", "volunteer experience",
				"languages",
				"publications",
				"contact", "contact information", "personal information", "personal details",
			},
			Experience: []string{
				"experience", "work experience", "professional experience",
				"employment history", "employment",
			},
			Education: []string{"education", "academic background", "qualifications"},
			Skills:    []string{"skills", "technical skills", "core competencies", "competencies", "key skills"},
		},
		DegreeLevels: map[string]int{
			"phd": 5, "ph.d": 5, "doctorate": 5, "doctoral": 5,
			"master": 4, "masters": 4, "master's": 4, "mba": 4, "msc": 4, "m.s.": 4,
			"bachelor": 3, "bachelors": 3, "bachelor's": 3, "bsc": 3, "b.s.": 3, "b.a.": 3,
			"associate": 2, "associates": 2, "associate's": 2,
			"diploma": 1, "certificate": 1, "certification": 1,
		},
		Certifications: []string{
			"pmp", "capm", "prince2", "itil", "cissp", "cism", "cisa",
			"aws certified", "azure certified", "google certified",
			"comptia", "security+", "network+",
			"cpa", "cfa", "cfp", "frm",
			"phr", "sphr", "shrm",
			"ccna", "ccnp", "ccie",
			"scrum master", "csm", "safe",
			"six sigma", "green belt", "black belt",
			"google analytics certified", "hubspot certified",
			"salesforce certified", "tableau certified",
		},
		Institutions: []string{
			"university", "college", "institute", "school", "academy", "polytechnic",
		},
		ActionVerbs: []string{
			"achieved", "accelerated", "accomplished", "administered", "advanced",
			"analyzed", "architected", "automated", "built", "championed",
			"collaborated", "consolidated", "coordinated", "created", "decreased",
			"delivered", "designed", "developed", "directed", "drove",
			"eliminated", "engineered", "established", "exceeded", "executed",
			"expanded", "facilitated", "generated", "grew", "headed",
			"implemented", "improved", "increased", "initiated", "innovated",
			"integrated", "launched", "led", "managed", "mentored",
			"modernized", "negotiated", "optimized", "orchestrated", "organized",
			"overhauled", "oversaw", "partnered", "pioneered", "planned",
			"produced", "propelled", "reduced", "re-engineered", "resolved",
			"restructured", "revamped", "scaled", "secured", "simplified",
			"spearheaded", "streamlined", "strengthened", "supervised", "surpassed",
			"trained", "transformed", "upgraded",
		},
		Buzzwords: []string{
			"synergy", "paradigm", "leverage", "utilize", "facilitate", "ecosystem",
			"disrupt", "bandwidth", "touchpoint", "circle back", "deep dive",
			"move the needle", "low-hanging fruit", "best of breed",
		},
		Stopwords: []string{
			"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for",
			"of", "with", "by", "from", "is", "are", "was", "were", "be", "been",
			"being", "have", "has", "had", "do", "does", "did", "will", "would",
			"could", "should", "may", "might", "shall", "can", "need", "must",
			"this", "that", "these", "those", "it", "its", "we", "our", "you",
			"your", "they", "their", "he", "she", "him", "her", "who", "which",
			"what", "when", "where", "how", "why", "all", "each", "every", "both",
			"few", "more", "most", "other", "some", "such", "no", "not", "only",
			"same", "so", "than", "too", "very", "just", "about", "above", "also",
			"as", "if", "then", "up", "out", "into", "over", "after", "before",
			"between", "under", "again", "further", "once", "here", "there",
			"any", "able", "work", "working", "experience", "including",
			"within", "across", "well", "role", "position", "candidate",
			"required", "preferred", "minimum", "strong", "excellent",
			"ability", "skills", "knowledge", "requirements", "qualifications",
			"responsibilities", "duties", "looking", "seeking", "join",
		},
	}
}
