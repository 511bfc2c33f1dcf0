package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/pushpakoirala/portfolio-api/pkg/auth"
)

// Seeds the schema, the admin account and the initial CV content. Safe to
// re-run: existing rows are left alone.

const schema = `
CREATE TABLE IF NOT EXISTS admins (
	id            UUID PRIMARY KEY,
	username      TEXT NOT NULL UNIQUE,
	email         TEXT NOT NULL,
	password_hash TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS profile (
	id            INT PRIMARY KEY CHECK (id = 1),
	name          TEXT NOT NULL,
	title         TEXT NOT NULL,
	headline      TEXT NOT NULL DEFAULT '',
	about         TEXT NOT NULL DEFAULT '',
	email         TEXT NOT NULL DEFAULT '',
	phone         TEXT NOT NULL DEFAULT '',
	location      TEXT NOT NULL DEFAULT '',
	linkedin      TEXT NOT NULL DEFAULT '',
	github        TEXT NOT NULL DEFAULT '',
	profile_photo TEXT,
	resume_url    TEXT,
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS skills (
	id         UUID PRIMARY KEY,
	name       TEXT NOT NULL,
	category   TEXT NOT NULL,
	sort_order INT NOT NULL DEFAULT 0,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS projects (
	id                UUID PRIMARY KEY,
	title             TEXT NOT NULL,
	problem_statement TEXT NOT NULL DEFAULT '',
	description       TEXT NOT NULL DEFAULT '',
	technologies      TEXT[] NOT NULL DEFAULT '{}',
	role              TEXT NOT NULL DEFAULT '',
	outcome           TEXT NOT NULL DEFAULT '',
	status            TEXT NOT NULL DEFAULT 'Completed',
	visible           BOOLEAN NOT NULL DEFAULT TRUE,
	sort_order        INT NOT NULL DEFAULT 0,
	image_url         TEXT,
	project_url       TEXT,
	github_url        TEXT,
	created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS experience (
	id               UUID PRIMARY KEY,
	title            TEXT NOT NULL,
	company          TEXT NOT NULL,
	location         TEXT NOT NULL DEFAULT '',
	period           TEXT NOT NULL DEFAULT '',
	responsibilities TEXT[] NOT NULL DEFAULT '{}',
	sort_order       INT NOT NULL DEFAULT 0,
	created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS education (
	id             UUID PRIMARY KEY,
	degree         TEXT NOT NULL,
	institution    TEXT NOT NULL,
	field_of_study TEXT NOT NULL DEFAULT '',
	location       TEXT NOT NULL DEFAULT '',
	period         TEXT NOT NULL DEFAULT '',
	description    TEXT NOT NULL DEFAULT '',
	highlights     TEXT[] NOT NULL DEFAULT '{}',
	sort_order     INT NOT NULL DEFAULT 0,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS certifications (
	id                   UUID PRIMARY KEY,
	name                 TEXT NOT NULL,
	issuing_organization TEXT NOT NULL DEFAULT '',
	year                 TEXT NOT NULL DEFAULT '',
	certificate_url      TEXT,
	sort_order           INT NOT NULL DEFAULT 0,
	created_at           TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at           TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS messages (
	id         UUID PRIMARY KEY,
	name       TEXT NOT NULL,
	email      TEXT NOT NULL,
	body       TEXT NOT NULL,
	status     TEXT NOT NULL DEFAULT 'unread',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	read_at    TIMESTAMPTZ
);
`

type seedSkill struct {
	name     string
	category string
	order    int
}

type seedProject struct {
	title, problem, description string
	technologies                []string
	role, outcome, status       string
	imageURL                    string
	order                       int
}

type seedExperience struct {
	title, company, location, period string
	responsibilities                 []string
	order                            int
}

func main() {
	fmt.Println("Seeding portfolio database...")

	if err := godotenv.Load(); err != nil {
		log.Println("warning: .env file not found, using system environment variables")
	}

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("FATAL: DB_DSN is not set")
	}

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "Admin@2025"
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("FATAL: cannot connect DB: %v", err)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schema); err != nil {
		log.Fatalf("FATAL: cannot create schema: %v", err)
	}
	fmt.Println("schema ready")

	seedAdmin(ctx, pool, adminPassword)
	seedProfile(ctx, pool)
	seedSkills(ctx, pool)
	seedProjects(ctx, pool)
	seedExperienceEntries(ctx, pool)
	seedEducation(ctx, pool)
	seedCertifications(ctx, pool)

	fmt.Println("done. admin username: admin (change the password after first login)")
}

func seedAdmin(ctx context.Context, pool *pgxpool.Pool, password string) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Fatalf("FATAL: cannot hash password: %v", err)
	}

	query := `
		INSERT INTO admins (id, username, email, password_hash)
		VALUES ($1, 'admin', 'thepushpaco@outlook.com', $2)
		ON CONFLICT (username) DO NOTHING
	`
	mustExec(ctx, pool, "admin", query, uuid.New(), hash)
}

func seedProfile(ctx context.Context, pool *pgxpool.Pool) {
	query := `
		INSERT INTO profile (id, name, title, headline, about, email, phone, location, linkedin, github, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO NOTHING
	`
	mustExec(ctx, pool, "profile", query,
		"Pushpa Koirala",
		"Automation & Electrical Engineer",
		"Crafting innovative automation solutions where technologies meet precision",
		"Automation & Electrical Engineering student with a strong background in Electronics & Artificial Intelligence, Cybersecurity, Mine Robotics, and Siemens Programming. Experienced in implementing robotic systems, looking to enhance knowledge and skills to fit in the modernizing world.",
		"thepushpaco@outlook.com",
		"+358 408795424",
		"Helsinki, Finland",
		"https://linkedin.com/in/pushpa-koirala",
		"https://github.com/pushpakoirala",
		time.Now().UTC(),
	)
}

func seedSkills(ctx context.Context, pool *pgxpool.Pool) {
	if tableHasRows(ctx, pool, "skills") {
		return
	}

	skills := []seedSkill{
		{"PLC Programming", "Automation", 1},
		{"Siemens TIA Portal", "Automation", 2},
		{"Valmet DNA", "Automation", 3},
		{"DCS Systems", "Automation", 4},
		{"HMI Development", "Automation", 5},
		{"Profibus DP", "Automation", 6},
		{"Fieldbus Communication", "Automation", 7},
		{"Neural Networks (CNN, RNN, LSTM)", "AI & ML", 1},
		{"Transfer Learning", "AI & ML", 2},
		{"Machine Vision", "AI & ML", 3},
		{"NLP", "AI & ML", 4},
		{"Prediction Models", "AI & ML", 5},
		{"Python", "Programming", 1},
		{"C Programming", "Programming", 2},
		{"MATLAB/SIMULINK", "Programming", 3},
		{"AutoCAD", "Design Tools", 1},
		{"LTSpice", "Design Tools", 2},
		{"VisualComponents", "Design Tools", 3},
		{"PCB Design", "Design Tools", 4},
		{"LabVIEW", "Testing", 1},
		{"TestStand", "Testing", 2},
		{"NI LabVIEW", "Testing", 3},
		{"Power BI", "Testing", 4},
		{"Collaborative Robots", "Industry 4.0", 1},
		{"AGV Systems", "Industry 4.0", 2},
		{"Machine Vision", "Industry 4.0", 3},
		{"3D Printing", "Industry 4.0", 4},
	}

	query := `INSERT INTO skills (id, name, category, sort_order) VALUES ($1, $2, $3, $4)`
	for _, s := range skills {
		mustExec(ctx, pool, "skill "+s.name, query, uuid.New(), s.name, s.category, s.order)
	}
	fmt.Printf("seeded %d skills\n", len(skills))
}

func seedProjects(ctx context.Context, pool *pgxpool.Pool) {
	if tableHasRows(ctx, pool, "projects") {
		return
	}

	projects := []seedProject{
		{
			title:        "Industrial Automation System",
			problem:      "Need for efficient PLC-based automation in manufacturing",
			description:  "Designed and implemented PLC-based automation system for manufacturing processes using Siemens TIA Portal.",
			technologies: []string{"Siemens TIA Portal", "PLC", "HMI", "Profibus"},
			role:         "Automation Engineer",
			outcome:      "Improved manufacturing efficiency by 30%",
			status:       "Completed",
			imageURL:     "https://images.unsplash.com/photo-1581091226825-a6a2a5aee158?w=800",
			order:        1,
		},
		{
			title:        "AI-Powered Machine Vision",
			problem:      "Quality control challenges in production line",
			description:  "Developed machine vision system using CNN for quality control in production line.",
			technologies: []string{"Python", "TensorFlow", "OpenCV", "CNN"},
			role:         "AI Engineer",
			outcome:      "Reduced defect rate by 40%",
			status:       "In Progress",
			imageURL:     "https://images.unsplash.com/photo-1677442136019-21780ecad995?w=800",
			order:        2,
		},
		{
			title:        "IoT Monitoring Dashboard",
			problem:      "Need for real-time industrial IoT monitoring",
			description:  "Created real-time monitoring dashboard for industrial IoT devices with data visualization.",
			technologies: []string{"Python", "Power BI", "IoT", "Data Networks"},
			role:         "IoT Developer",
			outcome:      "Real-time monitoring of 50+ devices",
			status:       "Completed",
			imageURL:     "https://images.unsplash.com/photo-1551288049-bebda4e38f71?w=800",
			order:        3,
		},
		{
			title:        "Embedded System Prototype",
			problem:      "Custom embedded solution requirement",
			description:  "Designed PCB and developed firmware for custom embedded system application.",
			technologies: []string{"PCB Design", "Firmware", "C Programming", "3D Printing"},
			role:         "Embedded Engineer",
			outcome:      "Functional prototype delivered",
			status:       "Completed",
			imageURL:     "https://images.unsplash.com/photo-1518770660439-4636190af475?w=800",
			order:        4,
		},
	}

	query := `
		INSERT INTO projects (id, title, problem_statement, description, technologies, role, outcome, status, visible, sort_order, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, TRUE, $9, $10)
	`
	for _, p := range projects {
		mustExec(ctx, pool, "project "+p.title, query,
			uuid.New(), p.title, p.problem, p.description, p.technologies,
			p.role, p.outcome, p.status, p.order, p.imageURL,
		)
	}
	fmt.Printf("seeded %d projects\n", len(projects))
}

func seedExperienceEntries(ctx context.Context, pool *pgxpool.Pool) {
	if tableHasRows(ctx, pool, "experience") {
		return
	}

	entries := []seedExperience{
		{
			title:    "Technical Support",
			company:  "A3Z Electronic Store",
			location: "Nepal",
			period:   "03/2023 – 08/2023",
			responsibilities: []string{
				"Diagnostic Testing and Component Level Repairing",
				"BIOS Recovery & Update Thermal Management",
				"Data Recovery and Software Troubleshooting",
				"Motherboard Repair and PC/Phone Assembly",
				"Electronic Device Repair with Safety Procedures",
			},
			order: 1,
		},
		{
			title:    "Embedded System Support Engineer",
			company:  "SupaNirman Engineering & Construction PVT LTD.",
			location: "Remote",
			period:   "03/2023 – 08/2023",
			responsibilities: []string{
				"PCB Design & Firmware Development",
				"Prototype Development and Testing",
				"3D Printer Firmware Setup",
				"Industrial Liquid-Filling Machines Manufacturing",
				"Machine Installation and Supervision",
			},
			order: 2,
		},
		{
			title:    "Service Technician Assistance",
			company:  "Vianet Communication",
			location: "Nepal",
			period:   "12/2021 – 02/2023",
			responsibilities: []string{
				"Optical Fiber Line Installation for Enhanced Connectivity",
				"Routine Maintenance on Optical Fiber Systems",
				"Fiber Optic Cable Cutting and Splicing",
				"OTDR Device Usage for Diagnostics",
				"Network Repairs and Device Troubleshooting",
			},
			order: 3,
		},
	}

	query := `
		INSERT INTO experience (id, title, company, location, period, responsibilities, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	for _, e := range entries {
		mustExec(ctx, pool, "experience "+e.company, query,
			uuid.New(), e.title, e.company, e.location, e.period, e.responsibilities, e.order,
		)
	}
	fmt.Printf("seeded %d experience entries\n", len(entries))
}

func seedEducation(ctx context.Context, pool *pgxpool.Pool) {
	if tableHasRows(ctx, pool, "education") {
		return
	}

	query := `
		INSERT INTO education (id, degree, institution, field_of_study, location, period, description, highlights, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	mustExec(ctx, pool, "education", query,
		uuid.New(),
		"Automation & Electrical Engineering",
		"JAMK University of Applied Science",
		"Automation & Electrical Engineering",
		"Jyväskylä, Finland",
		"08/2024 – Present",
		"Comprehensive studies in automation systems, PLC programming, robotics, AI, and control systems. Completed practical training in Siemens Programming, Valmet DNA, DCS Systems, and HMI Programming.",
		[]string{
			"Siemens TIA Portal Programming",
			"MATLAB/SIMULINK Modeling & Simulation",
			"Neural Networks & Machine Learning",
			"AutoCAD & Electrical Documentation",
			"LabVIEW & PC-based Measurement Applications",
		},
		1,
	)
	fmt.Println("seeded 1 education entry")
}

func seedCertifications(ctx context.Context, pool *pgxpool.Pool) {
	if tableHasRows(ctx, pool, "certifications") {
		return
	}

	certs := []string{
		"Oracle Autonomous Database Cloud 2025 Certified Professional",
		"Electrical Safety Training SF6000",
		"Occupational Safety Card",
		"Emergency First Aid Training",
		"Python Programming",
		"AI & Cybersecurity",
		"Mine Robotics",
		"Invent For The Planet",
	}

	query := `INSERT INTO certifications (id, name, sort_order) VALUES ($1, $2, $3)`
	for i, name := range certs {
		mustExec(ctx, pool, "certification "+name, query, uuid.New(), name, i+1)
	}
	fmt.Printf("seeded %d certifications\n", len(certs))
}

func tableHasRows(ctx context.Context, pool *pgxpool.Pool, table string) bool {
	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM "+table).Scan(&count); err != nil {
		log.Fatalf("FATAL: cannot count %s: %v", table, err)
	}
	if count > 0 {
		fmt.Printf("%s already has %d rows, skipping\n", table, count)
		return true
	}
	return false
}

func mustExec(ctx context.Context, pool *pgxpool.Pool, what, query string, args ...any) {
	if _, err := pool.Exec(ctx, query, args...); err != nil {
		log.Fatalf("FATAL: cannot seed %s: %v", what, err)
	}
}
