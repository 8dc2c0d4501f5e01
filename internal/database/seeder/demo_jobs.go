package seeder

import (
	"context"

	"jobpilot/internal/domain/job"
	"jobpilot/internal/repository"
)

// cacheInvalidator clears cached job listings after seeding.
type cacheInvalidator interface {
	DeleteByPrefix(ctx context.Context, prefix string) error
}

// DemoJobs upserts a fixed set of demo job listings so a fresh environment
// has data to browse, score, and apply against. Re-running is idempotent:
// rows are keyed by title+company.
type DemoJobs struct {
	jobs  repository.JobRepository
	cache cacheInvalidator
}

func NewDemoJobs(jobs repository.JobRepository, cache cacheInvalidator) *DemoJobs {
	return &DemoJobs{jobs: jobs, cache: cache}
}

func (s *DemoJobs) Name() string { return "demo_jobs" }

func (s *DemoJobs) Run(ctx context.Context) error {
	for _, j := range demoJobs() {
		if _, err := s.jobs.Upsert(ctx, j); err != nil {
			return err
		}
	}
	if s.cache != nil {
		_ = s.cache.DeleteByPrefix(ctx, "jobs:")
	}
	return nil
}

func demoJobs() []job.Job {
	return []job.Job{
		{
			Title:        "Senior Software Engineer",
			Company:      "TechCorp",
			Location:     "Remote",
			LocationType: "remote",
			MinSalary:    intPtr(120000),
			MaxSalary:    intPtr(160000),
			Description:  "We are looking for a skilled software engineer to join our growing team. You will be responsible for developing scalable web applications using modern technologies including React, Node.js, and cloud platforms. The ideal candidate will have experience with microservices architecture and CI/CD pipelines.",
			Requirements: "Bachelor's degree in Computer Science or related field. 5+ years of experience in software development. Strong experience with React, Node.js, TypeScript, and AWS. Experience with microservices and containerization (Docker, Kubernetes). Knowledge of CI/CD pipelines and DevOps practices.",
			Skills:       []string{"React", "Node.js", "TypeScript", "AWS", "Docker", "Kubernetes"},
			Keywords:     []string{"software engineer", "react", "nodejs", "typescript", "aws", "docker", "kubernetes", "microservices", "cicd"},
			IsRemote:     true,
			ExternalURL:  strPtr("https://techcorp.com/careers/senior-software-engineer"),
		},
		{
			Title:        "Full Stack Developer",
			Company:      "StartupXYZ",
			Location:     "San Francisco, CA",
			LocationType: "onsite",
			MinSalary:    intPtr(100000),
			MaxSalary:    intPtr(140000),
			Description:  "Join our innovative startup building the next generation of fintech solutions. We're looking for a passionate full-stack developer who can work across our entire technology stack. You'll be working on user-facing applications, APIs, and data processing systems.",
			Requirements: "3+ years of full-stack development experience. Proficiency in Vue.js or React, Python/Django, PostgreSQL. Experience with financial systems is a plus. Strong problem-solving skills and ability to work in a fast-paced environment.",
			Skills:       []string{"Vue.js", "Django", "Python", "PostgreSQL", "JavaScript", "HTML", "CSS"},
			Keywords:     []string{"full stack", "vuejs", "django", "python", "postgresql", "javascript", "fintech"},
			ExternalURL:  strPtr("https://startupxyz.com/jobs/fullstack-developer"),
		},
		{
			Title:        "DevOps Engineer",
			Company:      "CloudTech",
			Location:     "Austin, TX",
			LocationType: "hybrid",
			MinSalary:    intPtr(110000),
			MaxSalary:    intPtr(150000),
			Description:  "We're seeking a DevOps engineer to help scale our infrastructure and improve our deployment pipelines. You'll work with containerization, orchestration, and cloud infrastructure to ensure our applications run smoothly at scale.",
			Requirements: "4+ years of DevOps/Infrastructure experience. Strong knowledge of Kubernetes, Terraform, Jenkins. Experience with AWS or Azure cloud platforms. Familiarity with monitoring tools like Prometheus and Grafana.",
			Skills:       []string{"Kubernetes", "Terraform", "Jenkins", "AWS", "Docker", "Prometheus", "Grafana"},
			Keywords:     []string{"devops", "kubernetes", "terraform", "jenkins", "aws", "docker", "infrastructure", "cicd"},
			ExternalURL:  strPtr("https://cloudtech.com/careers/devops-engineer"),
		},
		{
			Title:        "Frontend Developer",
			Company:      "Microsoft",
			Location:     "Seattle, WA",
			LocationType: "hybrid",
			MinSalary:    intPtr(90000),
			MaxSalary:    intPtr(130000),
			Description:  "Join Microsoft's web development team to build cutting-edge user interfaces for our enterprise products. You'll work with the latest frontend technologies and contribute to products used by millions of users worldwide.",
			Requirements: "Bachelor's degree and 3+ years frontend development experience. Expert-level knowledge of React, TypeScript, and modern CSS. Experience with accessibility standards and cross-browser compatibility. Knowledge of testing frameworks.",
			Skills:       []string{"React", "TypeScript", "JavaScript", "CSS", "HTML", "Jest", "Webpack"},
			Keywords:     []string{"frontend", "react", "typescript", "javascript", "css", "html", "accessibility"},
			ExternalURL:  strPtr("https://careers.microsoft.com/frontend-developer"),
		},
		{
			Title:        "Product Engineer",
			Company:      "Meta",
			Location:     "Menlo Park, CA",
			LocationType: "onsite",
			MinSalary:    intPtr(130000),
			MaxSalary:    intPtr(180000),
			Description:  "Build products that connect billions of people around the world. As a Product Engineer at Meta, you'll work on features that impact how people communicate, share, and discover content across our family of apps.",
			Requirements: "BS/MS in Computer Science or equivalent experience. 4+ years of software engineering experience. Experience with React, React Native, or similar frameworks. Strong understanding of system design and scalability.",
			Skills:       []string{"React", "React Native", "JavaScript", "Python", "GraphQL", "MySQL"},
			Keywords:     []string{"product engineer", "react", "react native", "javascript", "python", "graphql", "mysql", "mobile"},
			ExternalURL:  strPtr("https://www.metacareers.com/jobs/product-engineer"),
		},
		{
			Title:        "Backend Engineer",
			Company:      "Stripe",
			Location:     "Remote",
			LocationType: "remote",
			MinSalary:    intPtr(120000),
			MaxSalary:    intPtr(170000),
			Description:  "Help us build the economic infrastructure for the internet. You'll work on systems that process billions of dollars in transactions, building reliable and scalable backend services that power online commerce globally.",
			Requirements: "5+ years of backend development experience. Strong knowledge of distributed systems, databases, and API design. Experience with Ruby, Python, or Go. Understanding of payment systems and financial services is a plus.",
			Skills:       []string{"Ruby", "Python", "Go", "PostgreSQL", "Redis", "Kubernetes", "gRPC"},
			Keywords:     []string{"backend", "ruby", "python", "go", "postgresql", "redis", "kubernetes", "grpc", "payments", "fintech"},
			IsRemote:     true,
			ExternalURL:  strPtr("https://stripe.com/jobs/backend-engineer"),
		},
	}
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
