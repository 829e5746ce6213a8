package skillgraph

// seedNodes is the built-in skill taxonomy. It is intentionally compact: the
// graph is a lookup dataset, and deployments with richer taxonomies load them
// from a JSON file via LoadFile.
var seedNodes = []Node{
	{ID: "javascript", Name: "JavaScript", Aliases: []string{"JS", "ECMAScript"}, Category: CategoryProgrammingLanguage, Domains: []Domain{DomainFrontend, DomainFullstack}, Popularity: 95},
	{ID: "typescript", Name: "TypeScript", Aliases: []string{"TS"}, Category: CategoryProgrammingLanguage, Domains: []Domain{DomainFrontend, DomainFullstack}, Popularity: 85},
	{ID: "python", Name: "Python", Category: CategoryProgrammingLanguage, Domains: []Domain{DomainBackend, DomainData, DomainAIML}, Popularity: 95},
	{ID: "go", Name: "Go", Aliases: []string{"Golang"}, Category: CategoryProgrammingLanguage, Domains: []Domain{DomainBackend, DomainDevOps}, Popularity: 75},
	{ID: "java", Name: "Java", Category: CategoryProgrammingLanguage, Domains: []Domain{DomainBackend}, Popularity: 80},
	{ID: "sql", Name: "SQL", Category: CategoryProgrammingLanguage, Domains: []Domain{DomainBackend, DomainData}, Popularity: 90},
	{ID: "html", Name: "HTML", Aliases: []string{"HTML5"}, Category: CategoryProgrammingLanguage, Domains: []Domain{DomainFrontend}, Popularity: 90},
	{ID: "css", Name: "CSS", Aliases: []string{"CSS3"}, Category: CategoryProgrammingLanguage, Domains: []Domain{DomainFrontend}, Popularity: 88},

	{ID: "react", Name: "React", Aliases: []string{"React.js", "ReactJS"}, Category: CategoryFramework, Domains: []Domain{DomainFrontend}, Popularity: 90},
	{ID: "nextjs", Name: "Next.js", Aliases: []string{"NextJS"}, Category: CategoryFramework, Domains: []Domain{DomainFullstack}, Popularity: 80},
	{ID: "vue", Name: "Vue", Aliases: []string{"Vue.js", "VueJS"}, Category: CategoryFramework, Domains: []Domain{DomainFrontend}, Popularity: 70},
	{ID: "angular", Name: "Angular", Aliases: []string{"AngularJS"}, Category: CategoryFramework, Domains: []Domain{DomainFrontend}, Popularity: 65},
	{ID: "nodejs", Name: "Node.js", Aliases: []string{"Node", "NodeJS"}, Category: CategoryPlatform, Domains: []Domain{DomainBackend}, Popularity: 85},
	{ID: "express", Name: "Express", Aliases: []string{"Express.js"}, Category: CategoryFramework, Domains: []Domain{DomainBackend}, Popularity: 70},
	{ID: "django", Name: "Django", Category: CategoryFramework, Domains: []Domain{DomainBackend}, Popularity: 65},
	{ID: "spring", Name: "Spring", Aliases: []string{"Spring Boot"}, Category: CategoryFramework, Domains: []Domain{DomainBackend}, Popularity: 70},

	{ID: "postgresql", Name: "PostgreSQL", Aliases: []string{"Postgres"}, Category: CategoryDatabase, Domains: []Domain{DomainBackend, DomainData}, Popularity: 85},
	{ID: "mysql", Name: "MySQL", Category: CategoryDatabase, Domains: []Domain{DomainBackend, DomainData}, Popularity: 80},
	{ID: "mongodb", Name: "MongoDB", Aliases: []string{"Mongo"}, Category: CategoryDatabase, Domains: []Domain{DomainBackend}, Popularity: 75},
	{ID: "redis", Name: "Redis", Category: CategoryDatabase, Domains: []Domain{DomainBackend}, Popularity: 70},

	{ID: "docker", Name: "Docker", Category: CategoryTool, Domains: []Domain{DomainDevOps}, Popularity: 85},
	{ID: "kubernetes", Name: "Kubernetes", Aliases: []string{"K8s"}, Category: CategoryPlatform, Domains: []Domain{DomainDevOps}, Popularity: 80},
	{ID: "git", Name: "Git", Category: CategoryTool, Domains: []Domain{DomainFullstack, DomainDevOps}, Popularity: 95},
	{ID: "aws", Name: "AWS", Aliases: []string{"Amazon Web Services"}, Category: CategoryPlatform, Domains: []Domain{DomainDevOps, DomainBackend}, Popularity: 85},
	{ID: "gcp", Name: "Google Cloud", Aliases: []string{"GCP", "Google Cloud Platform"}, Category: CategoryPlatform, Domains: []Domain{DomainDevOps}, Popularity: 70},
	{ID: "terraform", Name: "Terraform", Category: CategoryTool, Domains: []Domain{DomainDevOps}, Popularity: 65},
	{ID: "cicd", Name: "CI/CD", Aliases: []string{"Continuous Integration", "Continuous Deployment"}, Category: CategoryConcept, Domains: []Domain{DomainDevOps}, Popularity: 75},

	{ID: "graphql", Name: "GraphQL", Category: CategoryConcept, Domains: []Domain{DomainBackend, DomainFrontend}, Popularity: 60},
	{ID: "rest", Name: "REST", Aliases: []string{"REST API", "RESTful"}, Category: CategoryConcept, Domains: []Domain{DomainBackend}, Popularity: 85},
	{ID: "machine-learning", Name: "Machine Learning", Aliases: []string{"ML"}, Category: CategoryConcept, Domains: []Domain{DomainAIML, DomainData}, Popularity: 80},
	{ID: "tensorflow", Name: "TensorFlow", Category: CategoryLibrary, Domains: []Domain{DomainAIML}, Popularity: 60},
	{ID: "pytorch", Name: "PyTorch", Category: CategoryLibrary, Domains: []Domain{DomainAIML}, Popularity: 65},

	{ID: "agile", Name: "Agile", Aliases: []string{"Agile Development"}, Category: CategoryMethodology, Domains: []Domain{DomainManagement}, Popularity: 80},
	{ID: "scrum", Name: "Scrum", Category: CategoryMethodology, Domains: []Domain{DomainManagement}, Popularity: 70},
	{ID: "communication", Name: "Communication", Category: CategorySoftSkill, Domains: []Domain{DomainManagement}, Popularity: 90},
	{ID: "leadership", Name: "Leadership", Category: CategorySoftSkill, Domains: []Domain{DomainManagement}, Popularity: 75},
}

// seedRelationships are the built-in edges. Inverses are materialized by
// AddRelationship, so only one direction is listed here.
var seedRelationships = []Relationship{
	{SourceID: "react", TargetID: "javascript", Type: Requires, Strength: 1.0},
	{SourceID: "nextjs", TargetID: "react", Type: Requires, Strength: 1.0},
	{SourceID: "vue", TargetID: "javascript", Type: Requires, Strength: 1.0},
	{SourceID: "angular", TargetID: "typescript", Type: Requires, Strength: 0.9},
	{SourceID: "express", TargetID: "nodejs", Type: Requires, Strength: 1.0},
	{SourceID: "django", TargetID: "python", Type: Requires, Strength: 1.0},
	{SourceID: "spring", TargetID: "java", Type: Requires, Strength: 1.0},
	{SourceID: "nodejs", TargetID: "javascript", Type: Requires, Strength: 1.0},
	{SourceID: "kubernetes", TargetID: "docker", Type: Requires, Strength: 0.9},
	{SourceID: "tensorflow", TargetID: "python", Type: Requires, Strength: 0.9},
	{SourceID: "pytorch", TargetID: "python", Type: Requires, Strength: 0.9},
	{SourceID: "tensorflow", TargetID: "machine-learning", Type: Requires, Strength: 0.8},
	{SourceID: "pytorch", TargetID: "machine-learning", Type: Requires, Strength: 0.8},

	{SourceID: "react", TargetID: "vue", Type: AlternativeTo, Strength: 0.8},
	{SourceID: "react", TargetID: "angular", Type: AlternativeTo, Strength: 0.7},
	{SourceID: "vue", TargetID: "angular", Type: AlternativeTo, Strength: 0.7},
	{SourceID: "postgresql", TargetID: "mysql", Type: AlternativeTo, Strength: 0.9},
	{SourceID: "tensorflow", TargetID: "pytorch", Type: AlternativeTo, Strength: 0.9},
	{SourceID: "aws", TargetID: "gcp", Type: AlternativeTo, Strength: 0.8},
	{SourceID: "graphql", TargetID: "rest", Type: AlternativeTo, Strength: 0.6},

	{SourceID: "typescript", TargetID: "javascript", Type: SimilarTo, Strength: 0.8},
	{SourceID: "mysql", TargetID: "sql", Type: SimilarTo, Strength: 0.7},

	{SourceID: "javascript", TargetID: "typescript", Type: PredecessorOf, Strength: 0.9},
	{SourceID: "agile", TargetID: "scrum", Type: ParentOf, Strength: 0.9},
	{SourceID: "sql", TargetID: "postgresql", Type: ParentOf, Strength: 0.8},
	{SourceID: "sql", TargetID: "mysql", Type: ParentOf, Strength: 0.8},
	{SourceID: "machine-learning", TargetID: "tensorflow", Type: ParentOf, Strength: 0.7},
	{SourceID: "machine-learning", TargetID: "pytorch", Type: ParentOf, Strength: 0.7},

	{SourceID: "docker", TargetID: "cicd", Type: UsedWith, Strength: 0.7},
	{SourceID: "aws", TargetID: "terraform", Type: UsedWith, Strength: 0.8},
	{SourceID: "css", TargetID: "react", Type: UsedWith, Strength: 0.8},
	{SourceID: "html", TargetID: "css", Type: UsedWith, Strength: 0.9},
}

// NewDefault builds the graph from the built-in taxonomy.
func NewDefault() *Graph {
	g := New()
	for _, node := range seedNodes {
		g.AddSkill(node)
	}
	for _, rel := range seedRelationships {
		// Seed IDs are all registered above; skip rather than abort if an
		// edit ever breaks that, matching how sub-graph merges behave.
		_ = g.AddRelationship(rel)
	}
	return g
}
